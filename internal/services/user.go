package services

import (
	"context"

	"gearguard/internal/entities"
	"gearguard/internal/repositories"

	"go.uber.org/zap"
)

type UserServiceInterface interface {
	GetUsers(ctx context.Context, role string) ([]entities.User, error)
	FindUser(ctx context.Context, id string) (*entities.User, error)
}

type UserService struct {
	userRepo repositories.UserRepositoryInterface
	logger   *zap.Logger
}

func NewUserService(userRepo repositories.UserRepositoryInterface, logger *zap.Logger) UserServiceInterface {
	return &UserService{userRepo: userRepo, logger: logger}
}

func (s *UserService) GetUsers(ctx context.Context, role string) ([]entities.User, error) {
	return s.userRepo.GetUsers(ctx, role)
}

func (s *UserService) FindUser(ctx context.Context, id string) (*entities.User, error) {
	return s.userRepo.FindUserByID(ctx, id)
}
