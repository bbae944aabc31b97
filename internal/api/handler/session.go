package handler

import (
	"net/http"

	"github.com/vfg2006/sales-panel-api/internal/domain"
	"github.com/vfg2006/sales-panel-api/internal/session"
	"github.com/vfg2006/sales-panel-api/pkg/log"
	"github.com/vfg2006/sales-panel-api/pkg/middleware"
)

// SessionStore é o estado de interface por sessão usado pelas rotas de sessão
type SessionStore interface {
	middleware.SessionEnsurer
	Get(id string) (domain.SessionState, bool)
	ToggleSidebar(id string) (domain.SessionState, error)
}

// GetSession devolve o estado da sessão do cookie
func GetSession(store SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, ok := store.Get(middleware.SessionID(r.Context()))
		if !ok {
			writeServiceError(w, r, session.ErrSessionNotFound)
			return
		}

		writeJSON(w, r, http.StatusOK, state)
	}
}

// ToggleSidebar abre ou fecha a barra lateral de filtros
func ToggleSidebar(store SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := middleware.SessionID(r.Context())

		state, err := store.ToggleSidebar(sessionID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"session_id":      sessionID,
			"session_sidebar": state.ShowSidebar,
		}).Debug("session: sidebar toggled")

		writeJSON(w, r, http.StatusOK, state)
	}
}
