package db

import (
	"context"

	"github.com/askarpov/loginward/internal/server/credentials"
)

type InMemoryManager struct {
	creds credentials.Repository
}

func (m *InMemoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *InMemoryManager) Credentials() credentials.Repository {
	return m.creds
}

func (m *InMemoryManager) Close() error {
	return nil
}

func NewInMemoryManager() Manager {
	return &InMemoryManager{creds: credentials.NewInMemoryRepository()}
}
