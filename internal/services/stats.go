package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aaravmahajanofficial/templatehub/internal/events"
	"github.com/aaravmahajanofficial/templatehub/internal/models"
	repository "github.com/aaravmahajanofficial/templatehub/internal/repositories"
)

// ChangeNotifier is implemented by the store.
type ChangeNotifier interface {
	OnChange(fn func(repository.Change)) func()
}

type StatsService interface {
	GetStats(ctx context.Context) *models.AdminStats
	Subscribe() *events.Subscription
	// Start recomputes and broadcasts stats after catalog and order changes
	// until Stop is called.
	Start(notifier ChangeNotifier)
	Stop()
}

type statsService struct {
	repo   repository.OrderRepository
	broker *events.StatsBroker
	logger *slog.Logger

	mu          sync.Mutex
	trigger     chan struct{}
	done        chan struct{}
	unsubscribe func()
	wg          sync.WaitGroup
}

func NewStatsService(repo repository.OrderRepository, broker *events.StatsBroker, logger *slog.Logger) StatsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &statsService{repo: repo, broker: broker, logger: logger}
}

func (s *statsService) GetStats(ctx context.Context) *models.AdminStats {
	return s.repo.GetAdminStats(ctx)
}

func (s *statsService) Subscribe() *events.Subscription {
	return s.broker.Subscribe()
}

func (s *statsService) Start(notifier ChangeNotifier) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done != nil {
		return
	}

	s.trigger = make(chan struct{}, 1)
	s.done = make(chan struct{})

	trigger := s.trigger
	s.unsubscribe = notifier.OnChange(func(change repository.Change) {
		if change.Kind != repository.ChangeCatalog && change.Kind != repository.ChangeOrder {
			return
		}
		// Never block the mutation; a pending trigger already covers this change.
		select {
		case trigger <- struct{}{}:
		default:
		}
	})

	s.wg.Add(1)
	go s.run(s.trigger, s.done)
}

func (s *statsService) Stop() {
	s.mu.Lock()
	if s.done == nil {
		s.mu.Unlock()
		return
	}
	s.unsubscribe()
	close(s.done)
	s.done = nil
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *statsService) run(trigger <-chan struct{}, done <-chan struct{}) {
	defer s.wg.Done()

	for {
		select {
		case <-done:
			return
		case <-trigger:
			s.broadcast()
		}
	}
}

func (s *statsService) broadcast() {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Stats broadcast failed", slog.Any("error", fmt.Errorf("panic: %v", r)))
		}
	}()

	if s.broker.Subscribers() == 0 {
		return
	}

	s.broker.Publish(s.repo.GetAdminStats(context.Background()))
}
