// Package idgen generates random hex identifiers that are checked against the store before use.
package idgen

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"io"
	"time"

	"gameapi/config"
	domainerrors "gameapi/internal/domain/errors"
	"gameapi/internal/domain/service"
	"gameapi/internal/errors"
)

const (
	idBytes        = 8
	defaultTimeout = 10 * time.Second
)

// generator retries random ids until one is free or the time budget is spent.
// The existence check only makes collisions rare; the store's primary key is what rejects duplicates.
type generator struct {
	timeout time.Duration
	random  io.Reader
	now     func() time.Time
}

// NewGenerator is the constructor for generator.
func NewGenerator(cfg *config.Config) service.IDGenerator {
	timeout := defaultTimeout
	if cfg.Auth != nil && cfg.Auth.IDGenerationTimeout > 0 {
		timeout = cfg.Auth.IDGenerationTimeout
	}

	return &generator{
		timeout: timeout,
		random:  rand.Reader,
		now:     time.Now,
	}
}

// Generate returns a 16-character hex id for which exists reported false.
func (g *generator) Generate(ctx context.Context, exists service.ExistsFunc) (string, error) {
	started := g.now()
	for {
		if err := ctx.Err(); err != nil {
			return "", errors.Wrap(err, "id generation cancelled")
		}

		id, err := g.randomID()
		if err != nil {
			return "", err
		}

		taken, err := exists(ctx, id)
		if err != nil {
			return "", errors.Wrap(err, "check id existence")
		}
		if !taken {
			return id, nil
		}

		if g.now().Sub(started) >= g.timeout {
			return "", domainerrors.ErrIDGenerationFailed.WithDetails("timed out after " + g.timeout.String())
		}
	}
}

func (g *generator) randomID() (string, error) {
	buf := make([]byte, idBytes)
	if _, err := io.ReadFull(g.random, buf); err != nil {
		return "", errors.Wrap(err, "read random id")
	}

	return hex.EncodeToString(buf), nil
}
