package records

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"kitawise-server/src/apperrors"
	"kitawise-server/src/db"
	"kitawise-server/src/models"
)

type ExpenseService struct {
	store db.Store
}

func NewExpenseService(store db.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

func (s *ExpenseService) List(ctx context.Context) ([]models.Expense, error) {
	docs, err := s.store.List(ctx, db.CollectionExpenses)
	if err != nil {
		return nil, storeErr(err, "expense", "")
	}
	return decodeList[models.Expense](docs, "expense")
}

func (s *ExpenseService) Create(ctx context.Context, body []byte) (models.Expense, error) {
	var e models.Expense
	if err := json.Unmarshal(body, &e); err != nil {
		return models.Expense{}, apperrors.Validation("invalid expense: %v", err)
	}

	if strings.TrimSpace(e.Description) == "" {
		return models.Expense{}, apperrors.Validation("expense description is required")
	}
	if strings.TrimSpace(e.Date) == "" {
		return models.Expense{}, apperrors.Validation("expense date is required")
	}
	if strings.TrimSpace(e.Category) == "" {
		return models.Expense{}, apperrors.Validation("expense category is required")
	}
	if e.Amount <= 0 {
		return models.Expense{}, apperrors.Validation("expense amount must be positive")
	}
	if e.Type == "" {
		e.Type = models.ExpenseTypePersonal
	}

	e.ID = uuid.NewString()
	e.CreatedAt = time.Now().UTC()

	doc, err := json.Marshal(e)
	if err != nil {
		return models.Expense{}, err
	}
	if err := s.store.Insert(ctx, db.CollectionExpenses, e.ID, doc); err != nil {
		return models.Expense{}, storeErr(err, "expense", e.ID)
	}
	return e, nil
}

func (s *ExpenseService) Update(ctx context.Context, id string, body []byte) (models.Expense, error) {
	stored, err := s.store.Get(ctx, db.CollectionExpenses, id)
	if err != nil {
		return models.Expense{}, storeErr(err, "expense", id)
	}

	merged, err := mergeDocument(stored, body)
	if err != nil {
		return models.Expense{}, err
	}

	var e models.Expense
	if err := json.Unmarshal(merged, &e); err != nil {
		return models.Expense{}, apperrors.Validation("invalid expense: %v", err)
	}
	if e.Amount <= 0 {
		return models.Expense{}, apperrors.Validation("expense amount must be positive")
	}
	e.ID = id

	doc, err := json.Marshal(e)
	if err != nil {
		return models.Expense{}, err
	}
	if err := s.store.Replace(ctx, db.CollectionExpenses, id, doc); err != nil {
		return models.Expense{}, storeErr(err, "expense", id)
	}
	return e, nil
}

func (s *ExpenseService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, db.CollectionExpenses, id); err != nil {
		return storeErr(err, "expense", id)
	}
	return nil
}
