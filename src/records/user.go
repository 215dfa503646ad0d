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

type UserService struct {
	store db.Store
}

func NewUserService(store db.Store) *UserService {
	return &UserService{store: store}
}

func (s *UserService) Create(ctx context.Context, name, email, passwordHash string) (models.User, error) {
	if _, err := s.GetByEmail(ctx, email); err == nil {
		return models.User{}, apperrors.Validation("email already registered")
	} else if !apperrors.IsNotFound(err) {
		return models.User{}, err
	}

	u := models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	doc, err := json.Marshal(u)
	if err != nil {
		return models.User{}, err
	}
	if err := s.store.Insert(ctx, db.CollectionUsers, u.ID, doc); err != nil {
		return models.User{}, storeErr(err, "user", u.ID)
	}
	return u, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (models.User, error) {
	docs, err := s.store.List(ctx, db.CollectionUsers)
	if err != nil {
		return models.User{}, storeErr(err, "user", "")
	}

	users, err := decodeList[models.User](docs, "user")
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return models.User{}, apperrors.NotFound("user %s not found", email)
}
