package user

import (
	"context"
	"fmt"

	userRepo "github.com/ArafatSadi1/doctors-portal/database/repository/user"
	"github.com/ArafatSadi1/doctors-portal/models"
	"github.com/ArafatSadi1/doctors-portal/utils"

	"go.uber.org/zap"
)

// UserService defines business logic for user operations.
type UserService interface {
	// UpsertUser creates or refreshes the profile for email and issues a fresh token.
	UpsertUser(ctx context.Context, email string, req models.UserUpsertRequest) (*models.UserUpsertResponse, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	// IsAdmin reports false for unknown emails.
	IsAdmin(ctx context.Context, email string) (bool, error)
	GrantAdmin(ctx context.Context, email string) (*models.UpdateResult, error)
}

// TokenIssuer signs identity tokens.
type TokenIssuer interface {
	Issue(email string) (string, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Tokens TokenIssuer
	Logger *zap.Logger
}

func NewDefaultUserService(repo userRepo.UserRepository, tokens TokenIssuer, logger *zap.Logger) *DefaultUserService {
	return &DefaultUserService{Repo: repo, Tokens: tokens, Logger: logger}
}

func (s *DefaultUserService) UpsertUser(ctx context.Context, email string, req models.UserUpsertRequest) (*models.UserUpsertResponse, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", utils.ErrBadRequest)
	}
	// The path identity wins over whatever the body says.
	req.Email = email

	result, err := s.Repo.Upsert(ctx, email, req)
	if err != nil {
		return nil, err
	}

	token, err := s.Tokens.Issue(email)
	if err != nil {
		s.Logger.Error("UpsertUser: failed to issue token", zap.String("email", email), zap.Error(err))
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.Logger.Info("UpsertUser: user signed in",
		zap.String("email", email),
		zap.Int64("matched", result.MatchedCount),
		zap.Int64("upserted", result.UpsertedCount))
	return &models.UserUpsertResponse{Result: result, Token: token}, nil
}

// GetAllUsers retrieves all users for admin access.
func (s *DefaultUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (s *DefaultUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user != nil && user.Role.IsAdmin(), nil
}

// GrantAdmin sets role=admin on an existing user. It never creates a user.
func (s *DefaultUserService) GrantAdmin(ctx context.Context, email string) (*models.UpdateResult, error) {
	result, err := s.Repo.SetRole(ctx, email, models.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("%w: no user with email %s", utils.ErrNotFound, email)
	}
	s.Logger.Info("GrantAdmin: role updated", zap.String("email", email))
	return result, nil
}
