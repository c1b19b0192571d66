package impl

import (
	"io"
	"log/slog"
	"testing"

	"gameapi/internal/domain/entity"
	"gameapi/internal/domain/service"
	mockRepo "gameapi/internal/mocks/repository"
	mockSvc "gameapi/internal/mocks/service"
	mockUsecase "gameapi/internal/mocks/usecase"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T {
	return &v
}

// playerServiceFixtures holds all test dependencies for player service tests.
type playerServiceFixtures struct {
	service      *playerService
	txManager    *mockRepo.MockTransactionManager
	playerRepo   *mockRepo.MockPlayerRepository
	playerCache  *mockRepo.MockPlayerCache
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	idGenerator  *mockSvc.MockIDGenerator
	publisher    *mockSvc.MockEventPublisher
}

func createTestPlayerService(t *testing.T) playerServiceFixtures {
	f := playerServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		playerRepo:   mockRepo.NewMockPlayerRepository(t),
		playerCache:  mockRepo.NewMockPlayerCache(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
		idGenerator:  mockSvc.NewMockIDGenerator(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}

	srv, ok := NewPlayerService(PlayerServiceParams{
		TxManager:    f.txManager,
		PlayerRepo:   f.playerRepo,
		PlayerCache:  f.playerCache,
		Hasher:       f.hasher,
		TokenService: f.tokenService,
		IDGenerator:  f.idGenerator,
		Publisher:    f.publisher,
		Logger:       newDiscardLogger(),
	}).(*playerService)
	if !ok {
		t.Fatal("NewPlayerService returned an unexpected type")
	}
	f.service = srv

	return f
}

// saveServiceFixtures holds all test dependencies for save service tests.
type saveServiceFixtures struct {
	service     *saveService
	txManager   *mockRepo.MockTransactionManager
	saveRepo    *mockRepo.MockSaveRepository
	players     *mockUsecase.MockPlayerUsecase
	idGenerator *mockSvc.MockIDGenerator
	publisher   *mockSvc.MockEventPublisher
}

func createTestSaveService(t *testing.T) saveServiceFixtures {
	f := saveServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		saveRepo:    mockRepo.NewMockSaveRepository(t),
		players:     mockUsecase.NewMockPlayerUsecase(t),
		idGenerator: mockSvc.NewMockIDGenerator(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}

	srv, ok := NewSaveService(SaveServiceParams{
		TxManager:   f.txManager,
		SaveRepo:    f.saveRepo,
		Players:     f.players,
		IDGenerator: f.idGenerator,
		Publisher:   f.publisher,
		Logger:      newDiscardLogger(),
	}).(*saveService)
	if !ok {
		t.Fatal("NewSaveService returned an unexpected type")
	}
	f.service = srv

	return f
}

func newTestPlayer(id, username string) *entity.Player {
	return &entity.Player{
		ID:           id,
		Username:     username,
		Email:        ptr(username + "@example.com"),
		PasswordHash: "stored-hash",
		Salt:         "stored-salt",
	}
}

func eventOfType(eventType string) any {
	return mock.MatchedBy(func(event *service.GameEvent) bool {
		return event.Type == eventType
	})
}
