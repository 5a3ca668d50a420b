package store

import "github.com/mkaraca/go-task-keeper/internal/logger"

type Storages struct {
	UserRepository  UserRepository
	TokenRepository TokenRepository
	TaskRepository  TaskRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:  NewUserRepository(db, logger),
		TokenRepository: NewTokenRepository(db, logger),
		TaskRepository:  NewTaskRepository(db, logger),
	}
}
