package engine

import (
	"context"
	"database/sql"
	"io"
	"log"
	"time"

	"peak/internal/storage"
)

type Service struct {
	db        *sql.DB
	state     *storage.StateRepo
	now       func() time.Time
	logger    *log.Logger
	vitals    *Vitals
	calendar  *Calendar
	academics *Academics
}

type Option func(*Service)

// WithClock overrides the wall clock used for rollover and "today".
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithLogger(l *log.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService loads every container from db, applying the daily rollover.
func NewService(ctx context.Context, db *sql.DB, opts ...Option) *Service {
	s := &Service{
		db:     db,
		state:  storage.NewStateRepo(db),
		now:    time.Now,
		logger: discardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Reload(ctx)
	return s
}

func (s *Service) StateRepo() *storage.StateRepo { return s.state }
func (s *Service) Vitals() *Vitals               { return s.vitals }
func (s *Service) Calendar() *Calendar           { return s.calendar }
func (s *Service) Academics() *Academics         { return s.academics }
func (s *Service) Logger() *log.Logger           { return s.logger }

func (s *Service) Now() time.Time { return s.now() }

// Today is local midnight of the current day.
func (s *Service) Today() time.Time { return dayStart(s.now()) }

// Reload re-reads every container. Rollover is evaluated against the clock
// at this moment only.
func (s *Service) Reload(ctx context.Context) {
	s.vitals = LoadVitals(ctx, s.state, s.now(), s.logger)
	s.calendar = LoadCalendar(ctx, s.state, s.logger)
	s.academics = LoadAcademics(ctx, s.state, s.logger)
}

// ResetAll wipes every container. Callers must have confirmed with the user.
// Memory is reset even when clearing storage fails.
func (s *Service) ResetAll(ctx context.Context) error {
	s.vitals.reset(DateKey(s.now()))
	s.calendar.reset()
	s.academics.reset()
	if err := s.state.ClearAll(ctx); err != nil {
		s.logger.Printf("reset all: %v", err)
		return err
	}
	s.logger.Printf("reset all: stores cleared")
	return nil
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}
