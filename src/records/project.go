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

type ProjectService struct {
	store db.Store
}

func NewProjectService(store db.Store) *ProjectService {
	return &ProjectService{store: store}
}

func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	docs, err := s.store.List(ctx, db.CollectionProjects)
	if err != nil {
		return nil, storeErr(err, "project", "")
	}
	return decodeList[models.Project](docs, "project")
}

func (s *ProjectService) Create(ctx context.Context, body []byte) (models.Project, error) {
	var p models.Project
	if err := json.Unmarshal(body, &p); err != nil {
		return models.Project{}, apperrors.Validation("invalid project: %v", err)
	}

	if strings.TrimSpace(p.Name) == "" {
		return models.Project{}, apperrors.Validation("project name is required")
	}
	if p.Status == "" {
		p.Status = models.ProjectStatusActive
	}

	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()

	doc, err := json.Marshal(p)
	if err != nil {
		return models.Project{}, err
	}
	if err := s.store.Insert(ctx, db.CollectionProjects, p.ID, doc); err != nil {
		return models.Project{}, storeErr(err, "project", p.ID)
	}
	return p, nil
}

func (s *ProjectService) Update(ctx context.Context, id string, body []byte) (models.Project, error) {
	stored, err := s.store.Get(ctx, db.CollectionProjects, id)
	if err != nil {
		return models.Project{}, storeErr(err, "project", id)
	}

	merged, err := mergeDocument(stored, body)
	if err != nil {
		return models.Project{}, err
	}

	var p models.Project
	if err := json.Unmarshal(merged, &p); err != nil {
		return models.Project{}, apperrors.Validation("invalid project: %v", err)
	}
	p.ID = id

	doc, err := json.Marshal(p)
	if err != nil {
		return models.Project{}, err
	}
	if err := s.store.Replace(ctx, db.CollectionProjects, id, doc); err != nil {
		return models.Project{}, storeErr(err, "project", id)
	}
	return p, nil
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, db.CollectionProjects, id); err != nil {
		return storeErr(err, "project", id)
	}
	return nil
}
