package records

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kitawise-server/src/apperrors"
	"kitawise-server/src/db"
	"kitawise-server/src/models"
)

func TestProjectCreateDefaults(t *testing.T) {
	svc := NewProjectService(db.NewMemoryStore())

	p, err := svc.Create(context.Background(), []byte(`{"name":"Brand site","client":"Acme","expectedIncome":"50000"}`))
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Brand site", p.Name)
	assert.Equal(t, models.Number(50000), p.ExpectedIncome, "string amounts coerce to numbers")
	assert.Equal(t, models.ProjectStatusActive, p.Status)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestProjectCreateRejectsNonNumericIncome(t *testing.T) {
	svc := NewProjectService(db.NewMemoryStore())

	_, err := svc.Create(context.Background(), []byte(`{"name":"Bad","expectedIncome":"a lot"}`))
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestProjectCreateRequiresName(t *testing.T) {
	svc := NewProjectService(db.NewMemoryStore())

	_, err := svc.Create(context.Background(), []byte(`{"client":"Acme"}`))
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestProjectUpdateShallowMerge(t *testing.T) {
	svc := NewProjectService(db.NewMemoryStore())
	ctx := context.Background()

	created, err := svc.Create(ctx, []byte(`{"name":"Brand site","client":"Acme","expectedIncome":50000,"description":"logo + site"}`))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, []byte(`{"actualIncome":45000,"status":"completed"}`))
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID, "id survives updates")
	assert.Equal(t, models.Number(45000), updated.ActualIncome)
	assert.Equal(t, "completed", updated.Status)
	// fields absent from the patch are preserved, not cleared
	assert.Equal(t, "Acme", updated.Client)
	assert.Equal(t, "logo + site", updated.Description)
	assert.Equal(t, models.Number(50000), updated.ExpectedIncome)
}

func TestProjectUpdateCannotOverwriteID(t *testing.T) {
	svc := NewProjectService(db.NewMemoryStore())
	ctx := context.Background()

	created, err := svc.Create(ctx, []byte(`{"name":"Brand site"}`))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, []byte(`{"id":"hijacked","_id":"hijacked","name":"Renamed"}`))
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Renamed", updated.Name)
}

func TestProjectUpdateUnknownIDLeavesCollectionUnchanged(t *testing.T) {
	svc := NewProjectService(db.NewMemoryStore())
	ctx := context.Background()

	created, err := svc.Create(ctx, []byte(`{"name":"Only project"}`))
	require.NoError(t, err)

	_, err = svc.Update(ctx, "nope", []byte(`{"name":"Ghost"}`))
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))

	projects, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, created.Name, projects[0].Name)
}

func TestProjectDeleteTwice(t *testing.T) {
	svc := NewProjectService(db.NewMemoryStore())
	ctx := context.Background()

	created, err := svc.Create(ctx, []byte(`{"name":"Short-lived"}`))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	err = svc.Delete(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestExpenseCreateDefaultsAndCoercion(t *testing.T) {
	svc := NewExpenseService(db.NewMemoryStore())

	e, err := svc.Create(context.Background(), []byte(`{"description":"Figma","amount":"1500","date":"2024-03-15","category":"Software Tools"}`))
	require.NoError(t, err)

	assert.NotEmpty(t, e.ID)
	assert.Equal(t, models.Number(1500), e.Amount)
	assert.Equal(t, models.ExpenseTypePersonal, e.Type)
}

func TestExpenseCreateRequiredFields(t *testing.T) {
	svc := NewExpenseService(db.NewMemoryStore())
	ctx := context.Background()

	cases := []string{
		`{"amount":100,"date":"2024-01-01","category":"Other"}`,
		`{"description":"x","amount":100,"category":"Other"}`,
		`{"description":"x","amount":100,"date":"2024-01-01"}`,
		`{"description":"x","amount":"not a number","date":"2024-01-01","category":"Other"}`,
		`{"description":"x","date":"2024-01-01","category":"Other"}`,
		`{"description":"x","amount":0,"date":"2024-01-01","category":"Other"}`,
		`{"description":"x","amount":-5,"date":"2024-01-01","category":"Other"}`,
	}
	for _, body := range cases {
		_, err := svc.Create(ctx, []byte(body))
		require.Error(t, err, body)
		assert.True(t, apperrors.IsValidation(err), body)
	}
}

func TestGoalCreateDefaults(t *testing.T) {
	svc := NewGoalService(db.NewMemoryStore())

	g, err := svc.Create(context.Background(), []byte(`{"title":"Emergency Fund","targetAmount":"5000"}`))
	require.NoError(t, err)

	assert.NotEmpty(t, g.ID)
	assert.Equal(t, models.Number(5000), g.TargetAmount)
	assert.Equal(t, models.Number(0), g.CurrentAmount)
	assert.Equal(t, models.GoalStatusActive, g.Status)
}

func TestGoalStatusNotRecomputed(t *testing.T) {
	svc := NewGoalService(db.NewMemoryStore())
	ctx := context.Background()

	g, err := svc.Create(ctx, []byte(`{"title":"Camera","targetAmount":100000,"currentAmount":0}`))
	require.NoError(t, err)

	// Fully funding the goal does not flip its status; that stays with the
	// caller.
	updated, err := svc.Update(ctx, g.ID, []byte(`{"currentAmount":100000}`))
	require.NoError(t, err)
	assert.Equal(t, models.GoalStatusActive, updated.Status)
}

func TestGoalCreateRejectsZeroTarget(t *testing.T) {
	svc := NewGoalService(db.NewMemoryStore())

	_, err := svc.Create(context.Background(), []byte(`{"title":"Nothing","targetAmount":0}`))
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestGoalUpdateRejectsZeroTarget(t *testing.T) {
	svc := NewGoalService(db.NewMemoryStore())
	ctx := context.Background()

	g, err := svc.Create(ctx, []byte(`{"title":"Camera","targetAmount":100000}`))
	require.NoError(t, err)

	// A patch can't drive the target invalid either.
	_, err = svc.Update(ctx, g.ID, []byte(`{"targetAmount":0}`))
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	goals, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, models.Number(100000), goals[0].TargetAmount)
}

func TestExpenseUpdateRejectsNonPositiveAmount(t *testing.T) {
	svc := NewExpenseService(db.NewMemoryStore())
	ctx := context.Background()

	e, err := svc.Create(ctx, []byte(`{"description":"Figma","amount":1500,"date":"2024-03-15","category":"Software Tools"}`))
	require.NoError(t, err)

	_, err = svc.Update(ctx, e.ID, []byte(`{"amount":-10}`))
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestListEmptyCollections(t *testing.T) {
	store := db.NewMemoryStore()
	ctx := context.Background()

	projects, err := NewProjectService(store).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)

	expenses, err := NewExpenseService(store).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestUserCreateAndLookup(t *testing.T) {
	svc := NewUserService(db.NewMemoryStore())
	ctx := context.Background()

	u, err := svc.Create(ctx, "Kita", "kita@example.com", "hash")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)

	found, err := svc.GetByEmail(ctx, "KITA@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	_, err = svc.Create(ctx, "Dup", "kita@example.com", "hash2")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.GetByEmail(ctx, "nobody@example.com")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
