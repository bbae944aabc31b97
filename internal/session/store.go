// Package session guarda o estado de interface de cada sessão do painel em memória
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/vfg2006/sales-panel-api/internal/domain"
	"github.com/vfg2006/sales-panel-api/pkg/utils"
)

const idSize = 21

var ErrSessionNotFound = errors.New("sessão não encontrada")

// Store mantém o estado por sessão. Sessões sem acesso por mais de ttl são descartadas.
type Store struct {
	mu     sync.RWMutex
	states map[string]domain.SessionState
	ttl    time.Duration
	now    func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		states: make(map[string]domain.SessionState),
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock troca o relógio do store
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) expired(state domain.SessionState, now time.Time) bool {
	return s.ttl > 0 && now.Sub(state.UpdatedAt) >= s.ttl
}

// Ensure devolve a sessão id renovando seu acesso, ou cria uma nova quando id é
// desconhecido ou expirou. A barra lateral começa fechada.
func (s *Store) Ensure(id string) (domain.SessionState, bool, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if state, ok := s.states[id]; ok && !s.expired(state, now) {
		state.UpdatedAt = now
		s.states[id] = state
		return state, false, nil
	}

	newID, err := utils.GenerateID(idSize)
	if err != nil {
		return domain.SessionState{}, false, err
	}

	state := domain.SessionState{ID: newID, ShowSidebar: false, UpdatedAt: now}
	s.states[newID] = state
	return state, true, nil
}

// Get devolve o estado atual da sessão
func (s *Store) Get(id string) (domain.SessionState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[id]
	if !ok || s.expired(state, s.now()) {
		return domain.SessionState{}, false
	}
	return state, true
}

// ToggleSidebar inverte a visibilidade da barra lateral de filtros
func (s *Store) ToggleSidebar(id string) (domain.SessionState, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[id]
	if !ok || s.expired(state, now) {
		return domain.SessionState{}, ErrSessionNotFound
	}

	state.ShowSidebar = !state.ShowSidebar
	state.UpdatedAt = now
	s.states[id] = state

	return state, nil
}

func (s *Store) Name() string {
	return "sessions"
}

// PurgeExpired remove as sessões expiradas e devolve quantas foram removidas
func (s *Store) PurgeExpired() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, state := range s.states {
		if s.expired(state, now) {
			delete(s.states, id)
			removed++
		}
	}
	return removed
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.states)
}
