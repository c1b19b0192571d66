package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"gameapi/config"
	domainerrors "gameapi/internal/domain/errors"
	"gameapi/internal/domain/service"
	"gameapi/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte           // Secret key for signing player tokens.
	ttl    time.Duration    // Time-to-live for player tokens.
	now    func() time.Time // Clock used for issuing and validating.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Token == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	ttl := time.Duration(0)
	if cfg.Auth != nil {
		ttl = cfg.Auth.TokenTTL
	}
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}

	return newJWTService(cfg.SecretKey.Token, ttl, time.Now), nil
}

func newJWTService(secret string, ttl time.Duration, now func() time.Time) *jwtService {
	return &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
	}
}

// Issue signs an HS256 token for the player.
func (s *jwtService) Issue(username, playerID string) (string, error) {
	if username == "" || playerID == "" {
		return "", domainerrors.ErrMissingClaims
	}

	issuedAt := s.now()
	claims := &service.Claims{
		Username: username,
		PlayerID: playerID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// Verify parses the token and classifies every failure as a token error.
func (s *jwtService) Verify(token string) (*service.Claims, error) {
	if token == "" {
		return nil, domainerrors.NewTokenError(domainerrors.TokenAbsent, nil)
	}

	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}

		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))

	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, domainerrors.NewTokenError(domainerrors.TokenExpired, err)
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return nil, domainerrors.NewTokenError(domainerrors.TokenNotYetValid, err)
	default:
		return nil, domainerrors.NewTokenError(domainerrors.TokenInvalid, err)
	}

	if claims.Username == "" && claims.PlayerID == "" {
		return nil, domainerrors.NewTokenError(domainerrors.TokenInvalid, errors.New("token carries no player claims"))
	}

	return claims, nil
}
