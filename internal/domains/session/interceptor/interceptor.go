// Package interceptor attaches the session's token to booking API calls and
// ends the session when the API rejects it.
package interceptor

import (
	"context"
	"net/http"

	"borrowdung/infras/api"
	"borrowdung/infras/jwt"
	"borrowdung/internal/domains/session/model"
	"borrowdung/internal/domains/session/service"
	"borrowdung/shared/constant"

	"github.com/rs/zerolog/log"
)

func New(authFailure service.AuthFailure) api.Interceptors {
	return api.Interceptors{
		Request:  bearer,
		Response: unauthorized(authFailure),
	}
}

func bearer(ctx context.Context, req *http.Request) error {
	if session := model.FromContext(ctx); session != nil && session.Token != constant.Empty {
		req.Header.Set(constant.RequestHeaderAuthorization, jwt.BearerToken(session.Token))
	}

	return nil
}

// unauthorized only acts on calls made for a session. A 401 for an anonymous
// call such as a failed login is left to the caller.
func unauthorized(authFailure service.AuthFailure) api.ResponseInterceptor {
	return func(ctx context.Context, res *http.Response) error {
		if res.StatusCode != http.StatusUnauthorized {
			return nil
		}

		session := model.FromContext(ctx)
		if session == nil || session.Token == constant.Empty {
			return nil
		}

		// The clear must finish even when a sibling fetch already cancelled ctx.
		if err := authFailure.HandleAuthFailure(context.WithoutCancel(ctx), session); err != nil {
			log.Warn().Err(err).Str("session", session.ID).Msg("expired session left in store")
		}

		return api.ErrUnauthenticated
	}
}
