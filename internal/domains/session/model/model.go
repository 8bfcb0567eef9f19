package model

import (
	"context"
	"sync/atomic"

	authModel "borrowdung/internal/domains/auth/model"
	"borrowdung/shared"
)

const (
	EntityName = "session"

	keyToken = "token"
	keyUser  = "user"
)

// Session is one browser's sign-in: the API token and the user record stored
// under the session id. It is shared by pointer within a request.
type Session struct {
	ID    string
	Token string
	User  authModel.User

	expired atomic.Bool
}

func New(id, token string, user authModel.User) *Session {
	return &Session{
		ID:    id,
		Token: token,
		User:  user,
	}
}

// Authenticated reports whether requests can be made on behalf of the session.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != "" && !s.expired.Load()
}

// Expire latches the session as rejected by the API. Only the first caller
// gets true.
func (s *Session) Expire() bool {
	return s.expired.CompareAndSwap(false, true)
}

func (s *Session) Expired() bool {
	return s != nil && s.expired.Load()
}

// KeyPrefix matches every record stored for the session and nothing of
// another session whose id merely starts with id.
func KeyPrefix(id string) string {
	return shared.BuildCacheKeyPrefix(EntityName, id)
}

func TokenKey(id string) string {
	return shared.BuildCacheKey(EntityName, id, keyToken)
}

func UserKey(id string) string {
	return shared.BuildCacheKey(EntityName, id, keyUser)
}

type contextKey struct{}

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the request's session, or nil for anonymous requests.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(contextKey{}).(*Session)

	return s
}
