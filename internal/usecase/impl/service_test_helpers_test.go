package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"placebook/config"
	"placebook/internal/domain/repository"
	mockRepo "placebook/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.Collections.MaxCollectionsPerOwner = 3
	cfg.Collections.MaxLocationsPerCollection = 2
	cfg.QRCode.BaseURL = "https://placebook.test"

	return cfg
}

type txMocks struct {
	txManager      *mockRepo.MockTransactionManager
	factory        *mockRepo.MockRepositoryFactory
	locationRepo   *mockRepo.MockLocationRepository
	collectionRepo *mockRepo.MockCollectionRepository
}

// newTxMocks wires a transaction manager that runs the callback against
// repository mocks. Only the repositories the callback asks for are expected.
func newTxMocks(t *testing.T) *txMocks {
	t.Helper()

	m := &txMocks{
		txManager:      mockRepo.NewMockTransactionManager(t),
		factory:        mockRepo.NewMockRepositoryFactory(t),
		locationRepo:   mockRepo.NewMockLocationRepository(t),
		collectionRepo: mockRepo.NewMockCollectionRepository(t),
	}

	m.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		}).
		Maybe()
	m.factory.EXPECT().LocationRepo().Return(m.locationRepo).Maybe()
	m.factory.EXPECT().CollectionRepo().Return(m.collectionRepo).Maybe()

	return m
}
