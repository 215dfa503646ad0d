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

type GoalService struct {
	store db.Store
}

func NewGoalService(store db.Store) *GoalService {
	return &GoalService{store: store}
}

func (s *GoalService) List(ctx context.Context) ([]models.Goal, error) {
	docs, err := s.store.List(ctx, db.CollectionGoals)
	if err != nil {
		return nil, storeErr(err, "goal", "")
	}
	return decodeList[models.Goal](docs, "goal")
}

func (s *GoalService) Create(ctx context.Context, body []byte) (models.Goal, error) {
	var g models.Goal
	if err := json.Unmarshal(body, &g); err != nil {
		return models.Goal{}, apperrors.Validation("invalid goal: %v", err)
	}

	if strings.TrimSpace(g.Title) == "" {
		return models.Goal{}, apperrors.Validation("goal title is required")
	}
	if g.TargetAmount <= 0 {
		return models.Goal{}, apperrors.Validation("goal target amount must be positive")
	}
	// Status stays caller-supplied; the store never recomputes it from
	// currentAmount or the deadline.
	if g.Status == "" {
		g.Status = models.GoalStatusActive
	}

	g.ID = uuid.NewString()
	g.CreatedAt = time.Now().UTC()

	doc, err := json.Marshal(g)
	if err != nil {
		return models.Goal{}, err
	}
	if err := s.store.Insert(ctx, db.CollectionGoals, g.ID, doc); err != nil {
		return models.Goal{}, storeErr(err, "goal", g.ID)
	}
	return g, nil
}

func (s *GoalService) Update(ctx context.Context, id string, body []byte) (models.Goal, error) {
	stored, err := s.store.Get(ctx, db.CollectionGoals, id)
	if err != nil {
		return models.Goal{}, storeErr(err, "goal", id)
	}

	merged, err := mergeDocument(stored, body)
	if err != nil {
		return models.Goal{}, err
	}

	var g models.Goal
	if err := json.Unmarshal(merged, &g); err != nil {
		return models.Goal{}, apperrors.Validation("invalid goal: %v", err)
	}
	if g.TargetAmount <= 0 {
		return models.Goal{}, apperrors.Validation("goal target amount must be positive")
	}
	g.ID = id

	doc, err := json.Marshal(g)
	if err != nil {
		return models.Goal{}, err
	}
	if err := s.store.Replace(ctx, db.CollectionGoals, id, doc); err != nil {
		return models.Goal{}, storeErr(err, "goal", id)
	}
	return g, nil
}

func (s *GoalService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, db.CollectionGoals, id); err != nil {
		return storeErr(err, "goal", id)
	}
	return nil
}
