package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "gameapi/internal/delivery/context"
	"gameapi/internal/domain/entity"
	domainerrors "gameapi/internal/domain/errors"
	"gameapi/internal/domain/repository"
	"gameapi/internal/domain/service"
	"gameapi/internal/errors"
	"gameapi/internal/usecase"

	"go.uber.org/fx"
)

type saveService struct {
	txManager   repository.TransactionManager
	saveRepo    repository.SaveRepository
	players     usecase.PlayerUsecase
	idGenerator service.IDGenerator
	publisher   service.EventPublisher
	logger      *slog.Logger
	now         func() time.Time
}

// SaveServiceParams holds dependencies for SaveService, injected by Fx.
type SaveServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	SaveRepo    repository.SaveRepository
	Players     usecase.PlayerUsecase
	IDGenerator service.IDGenerator
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewSaveService is the constructor for saveService. It receives all dependencies as interfaces.
func NewSaveService(params SaveServiceParams) usecase.SaveUsecase {
	return &saveService{
		txManager:   params.TxManager,
		saveRepo:    params.SaveRepo,
		players:     params.Players,
		idGenerator: params.IDGenerator,
		publisher:   params.Publisher,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *saveService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateSave flattens the snapshot into a new save document owned by the token's player.
func (srv *saveService) CreateSave(ctx context.Context, token string, snapshot *entity.Snapshot) (*usecase.CreateSaveOutput, error) {
	player, err := srv.players.ResolveToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if snapshot == nil {
		return nil, domainerrors.ErrInvalidRequest
	}

	savedAt := srv.now().UTC()

	var saveID string
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		saveRepo := repoFactory.NewSaveRepository()

		id, err := srv.idGenerator.Generate(ctx, saveRepo.ExistsByID)
		if err != nil {
			return errors.Wrap(err, "failed to generate save id")
		}

		doc, err := entity.NewSaveDocument(id, player.PlayerID, savedAt, snapshot)
		if err != nil {
			return domainerrors.ErrInvalidRequest.WrapMessage(err.Error())
		}

		if err := saveRepo.Create(ctx, doc); err != nil {
			return errors.Wrap(err, "failed to create save")
		}
		saveID = id

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Save creation failed", slog.String("player_id", player.PlayerID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Save created", slog.String("player_id", player.PlayerID), slog.String("save_id", saveID))
	srv.publish(ctx, service.EventSaveCreated, player.PlayerID, saveID)

	return &usecase.CreateSaveOutput{SaveID: saveID}, nil
}

// GetSave returns the full document. Saves of other players are reported as not found.
func (srv *saveService) GetSave(ctx context.Context, token, saveID string) (*entity.SaveDocument, error) {
	player, err := srv.players.ResolveToken(ctx, token)
	if err != nil {
		return nil, err
	}

	doc, err := srv.saveRepo.FindByIDAndOwner(ctx, saveID, player.PlayerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find save")
	}
	if doc == nil {
		return nil, domainerrors.ErrSaveNotFound
	}

	return doc, nil
}

// ListSaves returns the summaries of the token's player. An empty list is reported as ErrNoSavesFound.
func (srv *saveService) ListSaves(ctx context.Context, token string) ([]*entity.SaveSummary, error) {
	player, err := srv.players.ResolveToken(ctx, token)
	if err != nil {
		return nil, err
	}

	summaries, err := srv.saveRepo.ListSummariesByOwner(ctx, player.PlayerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list saves")
	}
	if len(summaries) == 0 {
		return nil, domainerrors.ErrNoSavesFound
	}

	return summaries, nil
}

// DeleteSave removes a save owned by the token's player.
func (srv *saveService) DeleteSave(ctx context.Context, token, saveID string) error {
	player, err := srv.players.ResolveToken(ctx, token)
	if err != nil {
		return err
	}

	deleted, err := srv.saveRepo.DeleteByIDAndOwner(ctx, saveID, player.PlayerID)
	if err != nil {
		return errors.Wrap(err, "failed to delete save")
	}
	if deleted == 0 {
		return domainerrors.ErrSaveNotFound
	}

	srv.log(ctx).Info("Save deleted", slog.String("player_id", player.PlayerID), slog.String("save_id", saveID))
	srv.publish(ctx, service.EventSaveDeleted, player.PlayerID, saveID)

	return nil
}

func (srv *saveService) publish(ctx context.Context, eventType, playerID, saveID string) {
	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.GameEvent{
		Type:       eventType,
		PlayerID:   playerID,
		SaveID:     saveID,
		OccurredAt: srv.now().UTC(),
	})
}
