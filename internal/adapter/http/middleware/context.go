package middleware

import (
	"context"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/corebank/ledgerengine/internal/domain"
	"github.com/corebank/ledgerengine/internal/infrastructure/logger"
)

// ActorHeader carries the teller or system posting on behalf of the caller.
const ActorHeader = "X-Actor-ID"

// RequestContext stores the request id, actor and caller metadata in the
// request context and attaches a logger carrying them. It must run after
// chi's RequestID.
func RequestContext(base zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			reqID := chimw.GetReqID(ctx)
			if reqID != "" {
				ctx = context.WithValue(ctx, logger.RequestIDKey, reqID)
				w.Header().Set(chimw.RequestIDHeader, reqID)
			}
			ctx = domain.WithRequestMeta(ctx, domain.RequestMeta{
				RequestID: reqID,
				IPAddress: clientIP(r),
				UserAgent: r.UserAgent(),
			})
			if actor := r.Header.Get(ActorHeader); actor != "" {
				ctx = context.WithValue(ctx, logger.ActorIDKey, actor)
				ctx = domain.WithActor(ctx, actor)
			}
			ctx = logger.WithContext(ctx, base)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
