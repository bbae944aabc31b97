package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/sales-panel-api/internal/domain"
	"github.com/vfg2006/sales-panel-api/pkg/apiErrors"
	"github.com/vfg2006/sales-panel-api/pkg/log"
)

type contextKeySession string

const sessionIDKey contextKeySession = "sessionID"

// SessionEnsurer cria ou renova sessões a partir do ID do cookie
type SessionEnsurer interface {
	Ensure(id string) (domain.SessionState, bool, error)
}

// Session garante que toda requisição tenha uma sessão. Uma sessão nova é
// devolvida ao cliente em um cookie HttpOnly com validade ttl.
func Session(store SessionEnsurer, cookieName string, ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if cookie, err := r.Cookie(cookieName); err == nil {
				id = cookie.Value
			}

			state, created, err := store.Ensure(id)
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Error("session: failed to create session")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao criar sessão", nil)
				return
			}

			if created {
				cookie := &http.Cookie{
					Name:     cookieName,
					Value:    state.ID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				}
				if ttl > 0 {
					cookie.MaxAge = int(ttl.Seconds())
				}
				http.SetCookie(w, cookie)

				log.ForContext(r.Context()).WithField("session_id", state.ID).Debug("session: created")
			}

			next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), state.ID)))
		})
	}
}

// WithSessionID grava o ID da sessão no contexto
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}

// SessionID lê o ID da sessão do contexto, "" quando ausente
func SessionID(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey).(string); ok {
		return id
	}
	return ""
}
