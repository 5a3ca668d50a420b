package service

import (
	"github.com/mkaraca/go-task-keeper/internal/auth"
	"github.com/mkaraca/go-task-keeper/internal/config"
	"github.com/mkaraca/go-task-keeper/internal/logger"
	"github.com/mkaraca/go-task-keeper/internal/store"
)

type Services struct {
	AuthService AuthService
	UserService UserService
	TaskService TaskService
}

func NewServices(storages *store.Storages, cfg config.Auth, logger *logger.Logger) *Services {
	hasher := auth.NewBcryptHasher()

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, storages.TokenRepository, hasher, cfg, logger),
		UserService: NewUserService(storages.UserRepository, storages.TokenRepository, storages.TaskRepository, hasher, logger),
		TaskService: NewTaskService(storages.TaskRepository, logger),
	}
}
