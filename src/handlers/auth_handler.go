package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"kitawise-server/src/apperrors"
	"kitawise-server/src/logging"
	"kitawise-server/src/models"
	"kitawise-server/src/records"
	"kitawise-server/src/util"
)

type authRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Register(users *records.UserService, jwtSecret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req authRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, "account", apperrors.Validation("invalid request body"))
			return
		}

		req.Name = strings.TrimSpace(req.Name)
		req.Email = strings.TrimSpace(req.Email)

		if !util.ValidateName(req.Name) {
			writeError(w, "account", apperrors.Validation("name is required (max 60 characters)"))
			return
		}
		if !util.ValidateEmail(req.Email) {
			writeError(w, "account", apperrors.Validation("invalid email format"))
			return
		}
		if !util.ValidatePassword(req.Password) {
			writeError(w, "account", apperrors.Validation("password must be at least 8 characters"))
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logging.Logger.Errorf("Failed to hash password for %s: %v", req.Email, err)
			writeError(w, "account", err)
			return
		}

		user, err := users.Create(r.Context(), req.Name, req.Email, string(hash))
		if err != nil {
			logging.Logger.Errorf("Failed to register %s: %v", req.Email, err)
			writeError(w, "account", err)
			return
		}

		token, err := signToken(user, jwtSecret)
		if err != nil {
			logging.Logger.Errorf("Failed to sign token for %s: %v", user.Email, err)
			writeError(w, "account", err)
			return
		}

		logging.Logger.Infof("Registered user %s", user.Email)
		writeJSON(w, http.StatusCreated, models.AuthResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Token: token,
		})
	}
}

func Login(users *records.UserService, jwtSecret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req authRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, "account", apperrors.Validation("invalid request body"))
			return
		}

		user, err := users.GetByEmail(r.Context(), strings.TrimSpace(req.Email))
		if err != nil {
			logging.Logger.Errorf("Login failed for %s: %v", req.Email, err)
			writeJSON(w, http.StatusUnauthorized, apperrors.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "invalid email or password",
			})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			logging.Logger.Errorf("Bad password for %s", req.Email)
			writeJSON(w, http.StatusUnauthorized, apperrors.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "invalid email or password",
			})
			return
		}

		token, err := signToken(user, jwtSecret)
		if err != nil {
			logging.Logger.Errorf("Failed to sign token for %s: %v", user.Email, err)
			writeError(w, "account", err)
			return
		}

		logging.Logger.Infof("Logged in user %s", user.Email)
		writeJSON(w, http.StatusOK, models.AuthResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Token: token,
		})
	}
}

func signToken(user models.User, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(time.Hour * 168).Unix(),
	})
	return token.SignedString([]byte(secret))
}
