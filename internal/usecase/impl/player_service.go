// Package impl contains the implementation of the application's business logic.
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

// playerService implements the PlayerUsecase interface.
type playerService struct {
	txManager    repository.TransactionManager
	playerRepo   repository.PlayerRepository
	playerCache  repository.PlayerCache
	hasher       service.PasswordHasher
	tokenService service.TokenService
	idGenerator  service.IDGenerator
	publisher    service.EventPublisher
	logger       *slog.Logger
	now          func() time.Time
}

// PlayerServiceParams holds dependencies for PlayerService, injected by Fx.
type PlayerServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	PlayerRepo   repository.PlayerRepository
	PlayerCache  repository.PlayerCache
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	IDGenerator  service.IDGenerator
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewPlayerService is the constructor for playerService. It receives all dependencies as interfaces.
func NewPlayerService(params PlayerServiceParams) usecase.PlayerUsecase {
	return &playerService{
		txManager:    params.TxManager,
		playerRepo:   params.PlayerRepo,
		playerCache:  params.PlayerCache,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		idGenerator:  params.IDGenerator,
		publisher:    params.Publisher,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *playerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate resolves the login to exactly one player and checks the password.
func (srv *playerService) Authenticate(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil || input.Login == "" || input.Password == "" {
		return nil, domainerrors.ErrCredentialsRequired
	}

	players, err := srv.playerRepo.FindByLogin(ctx, input.Login)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find player by login")
	}

	if len(players) != 1 {
		srv.log(ctx).Info("Login rejected", slog.Int("matches", len(players)))

		return nil, domainerrors.ErrAuthenticationFailed
	}

	player := players[0]
	if !srv.hasher.Verify(input.Password, player.Salt, player.PasswordHash) {
		srv.log(ctx).Info("Login rejected", slog.String("player_id", player.ID))

		return nil, domainerrors.ErrAuthenticationFailed
	}

	token, err := srv.tokenService.Issue(player.Username, player.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.remember(ctx, player.View())
	srv.log(ctx).Info("Player logged in", slog.String("player_id", player.ID))

	return &usecase.LoginOutput{Token: token}, nil
}

// Register creates the player inside one transaction so the id check and the insert see the same state.
func (srv *playerService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if input == nil || input.Username == "" || input.Password == "" {
		return nil, domainerrors.ErrRegistrationFieldsRequired
	}

	salt, err := srv.hasher.GenerateSalt()
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	player := &entity.Player{
		Username:     input.Username,
		Email:        entity.NormalizeEmail(input.Email),
		PasswordHash: srv.hasher.Hash(input.Password, salt),
		Salt:         salt,
		Created:      srv.now().UTC(),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		playerRepo := repoFactory.NewPlayerRepository()

		id, err := srv.idGenerator.Generate(ctx, playerRepo.ExistsByID)
		if err != nil {
			return errors.Wrap(err, "failed to generate player id")
		}
		player.ID = id

		if err := playerRepo.Create(ctx, player); err != nil {
			return errors.Wrap(err, "failed to create player")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Player registered", slog.String("player_id", player.ID), slog.String("username", player.Username))
	srv.publish(ctx, service.EventPlayerRegistered, player.ID, "")

	return &usecase.RegisterOutput{Player: player.View()}, nil
}

// ListPlayers returns the safe view of every player.
func (srv *playerService) ListPlayers(ctx context.Context) ([]*entity.PlayerView, error) {
	players, err := srv.playerRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list players")
	}

	views := make([]*entity.PlayerView, 0, len(players))
	for _, player := range players {
		views = append(views, player.View())
	}

	return views, nil
}

// ResolveToken verifies the token, then checks that its id and username pair still names exactly one player.
// The store is always asked; the cache only receives the confirmed view.
func (srv *playerService) ResolveToken(ctx context.Context, token string) (*entity.PlayerView, error) {
	claims, err := srv.tokenService.Verify(token)
	if err != nil {
		return nil, err
	}

	players, err := srv.playerRepo.FindByIDAndUsername(ctx, claims.PlayerID, claims.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve token owner")
	}

	if len(players) != 1 {
		srv.log(ctx).Info("Token no longer names a player", slog.String("player_id", claims.PlayerID))
		srv.forget(ctx, claims.PlayerID)

		return nil, domainerrors.ErrTokenStale
	}

	view := players[0].View()
	srv.remember(ctx, view)

	return view, nil
}

func (srv *playerService) forget(ctx context.Context, playerID string) {
	if err := srv.playerCache.Delete(ctx, playerID); err != nil {
		srv.log(ctx).Warn("Player cache evict failed", slog.String("player_id", playerID), slog.Any("error", err))
	}
}

func (srv *playerService) remember(ctx context.Context, view *entity.PlayerView) {
	if err := srv.playerCache.Set(ctx, view); err != nil {
		srv.log(ctx).Warn("Player cache write failed", slog.String("player_id", view.PlayerID), slog.Any("error", err))
	}
}

func (srv *playerService) publish(ctx context.Context, eventType, playerID, saveID string) {
	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.GameEvent{
		Type:       eventType,
		PlayerID:   playerID,
		SaveID:     saveID,
		OccurredAt: srv.now().UTC(),
	})
}

// publishEvent sends the event and only logs failures; the write it reports has already committed.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.GameEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish game event",
			slog.String("type", event.Type),
			slog.String("player_id", event.PlayerID),
			slog.Any("error", err),
		)
	}
}
