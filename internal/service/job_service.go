package service

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// JobService runs the background maintenance work: keeping the session fresh
// and the agenda snapshot warm so the admin UI never waits on a cold cache.
type JobService struct {
	sessions *SessionService
	calendar *CalendarController
	log      *zap.Logger
}

func NewJobService(sessions *SessionService, calendar *CalendarController, log *zap.Logger) *JobService {
	return &JobService{sessions: sessions, calendar: calendar, log: log}
}

// RefreshAgenda refetches and re-reconciles the currently visible range.
// Skipped while logged out, since every agenda endpoint needs the token.
func (s *JobService) RefreshAgenda() {
	if !s.sessions.IsAuthenticated() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.calendar.Refresh(ctx); err != nil {
		s.log.Warn("scheduled agenda refresh failed", zap.Error(err))
		return
	}
	s.log.Debug("scheduled agenda refresh done")
}

// ReverifySession revalidates the token so an expired session is noticed
// before the next user interaction trips over it.
func (s *JobService) ReverifySession() {
	if s.sessions.Token() == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if _, err := s.sessions.Verify(ctx); err != nil {
		s.log.Info("scheduled session verify failed, session cleared", zap.Error(err))
	}
}

// Schedule registers both jobs on the given cron using one spec.
func (s *JobService) Schedule(c *cron.Cron, spec string) error {
	if _, err := c.AddFunc(spec, s.RefreshAgenda); err != nil {
		return err
	}
	if _, err := c.AddFunc(spec, s.ReverifySession); err != nil {
		return err
	}
	return nil
}
