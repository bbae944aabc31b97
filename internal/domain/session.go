package domain

import "time"

// SessionState é o estado de interface de uma sessão do painel
type SessionState struct {
	ID          string    `json:"id"`
	ShowSidebar bool      `json:"show_sidebar"`
	UpdatedAt   time.Time `json:"updated_at"`
}
