package health

import (
	"context"
	"time"
)

const pingTimeout = 2 * time.Second

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Service encapsulates health-related checks.
type Service struct {
	DB Pinger
}

// NewService constructs a new health service. db may be nil when the app
// runs on in-memory repositories.
func NewService(db Pinger) *Service {
	return &Service{DB: db}
}

// Status reports liveness and the database state: "up", "down" or "memory".
// ok is false only when a configured database does not answer.
func (s *Service) Status(ctx context.Context) (ok bool, database string) {
	if s == nil || s.DB == nil {
		return true, "memory"
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := s.DB.PingContext(ctx); err != nil {
		return false, "down"
	}
	return true, "up"
}
