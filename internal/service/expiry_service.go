package service

import (
	"context"
	"time"

	"nurse-call-backend/internal/repository"

	"go.uber.org/zap"
)

// ExpiryService is the background sweep that transitions ACTIVE calls past
// their expiry to EXPIRED.
type ExpiryService struct {
	callRepo *repository.CallRepository
	interval time.Duration
	logger   *zap.Logger
}

func NewExpiryService(callRepo *repository.CallRepository, interval time.Duration, logger *zap.Logger) *ExpiryService {
	return &ExpiryService{
		callRepo: callRepo,
		interval: interval,
		logger:   logger,
	}
}

// Start runs the sweep loop until the context is cancelled
func (s *ExpiryService) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("call expiry sweep started", zap.Duration("interval", s.interval))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("call expiry sweep stopped")
			return
		case <-ticker.C:
			s.SweepOnce()
		}
	}
}

// SweepOnce expires every overdue active call
func (s *ExpiryService) SweepOnce() {
	expired, err := s.callRepo.ExpireOverdueCalls(time.Now().UTC())
	if err != nil {
		s.logger.Error("expiry sweep failed", zap.Error(err))
		return
	}
	if expired > 0 {
		s.logger.Info("expired overdue calls", zap.Int64("count", expired))
	}
}
