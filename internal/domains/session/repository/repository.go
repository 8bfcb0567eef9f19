package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"borrowdung/config"
	"borrowdung/infras/otel"
	authModel "borrowdung/internal/domains/auth/model"
	"borrowdung/internal/domains/session/model"
	"borrowdung/shared/cache"
	"borrowdung/shared/constant"

	"github.com/rs/zerolog/log"
)

// Session persists the two records of a session, the token and the user,
// under keys scoped by the session id.
type Session interface {
	Save(ctx context.Context, session *model.Session) error
	SaveUser(ctx context.Context, id string, user authModel.User) error
	// Get returns nil when the session has no token or no usable user record.
	// An unparsable user record is discarded together with the token.
	Get(ctx context.Context, id string) (*model.Session, error)
	// Delete removes every record stored under the session's key prefix.
	Delete(ctx context.Context, id string) error
	// Invalidate clears the stored session if it still holds session.Token.
	// It reports whether this call was the one that cleared it.
	Invalidate(ctx context.Context, session *model.Session) (bool, error)
}

type repositoryImpl struct {
	cache cache.Cache
	cfg   *config.Config
	otel  otel.Otel
	mu    sync.Mutex
}

func New(cache cache.Cache, cfg *config.Config, otel otel.Otel) Session {
	return &repositoryImpl{
		cache: cache,
		cfg:   cfg,
		otel:  otel,
	}
}

func (r *repositoryImpl) Save(ctx context.Context, session *model.Session) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Session.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.cache.Save(ctx, model.TokenKey(session.ID), session.Token, r.cfg.Session.TTLSeconds); err != nil {
		log.Error().Err(err).Msg("failed to save session token")

		return fmt.Errorf("failed to save session token: %w", err)
	}

	return r.SaveUser(ctx, session.ID, session.User)
}

func (r *repositoryImpl) SaveUser(ctx context.Context, id string, user authModel.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session user: %w", err)
	}

	if err = r.cache.Save(ctx, model.UserKey(id), string(raw), r.cfg.Session.TTLSeconds); err != nil {
		log.Error().Err(err).Msg("failed to save session user")

		return fmt.Errorf("failed to save session user: %w", err)
	}

	return nil
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (res *model.Session, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Session.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	token, found, err := r.getString(ctx, model.TokenKey(id))
	if err != nil || !found {
		return nil, err
	}

	rawUser, found, err := r.getString(ctx, model.UserKey(id))
	if err != nil || !found {
		return nil, err
	}

	var user authModel.User
	if jsonErr := json.Unmarshal([]byte(rawUser), &user); jsonErr != nil {
		log.Warn().Err(jsonErr).Str("session", id).Msg("discarding session with unparsable user record")

		return nil, r.Delete(ctx, id)
	}

	return model.New(id, token, user), nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Session.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if id == constant.Empty {
		return nil
	}

	if err = r.cache.Clear(ctx, model.KeyPrefix(id)); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

func (r *repositoryImpl) Invalidate(ctx context.Context, session *model.Session) (bool, error) {
	if session == nil || !session.Expire() {
		return false, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, found, err := r.getString(ctx, model.TokenKey(session.ID))
	if err != nil {
		return false, err
	}

	if !found || stored != session.Token {
		return false, nil
	}

	if err = r.Delete(ctx, session.ID); err != nil {
		return false, err
	}

	return true, nil
}

func (r *repositoryImpl) getString(ctx context.Context, key string) (string, bool, error) {
	var value string

	err := r.cache.Get(ctx, key, &value)
	if errors.Is(err, cache.Nil) {
		return "", false, nil
	}

	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to read session")

		return "", false, fmt.Errorf("failed to read session: %w", err)
	}

	return value, true, nil
}
