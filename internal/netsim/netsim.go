// Package netsim fakes a connectivity indicator. There is no real
// network dependency anywhere in the application; the simulator rolls a
// die on a fixed interval and reports online or offline so the status
// surface has something truthful to display.
package netsim

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/Jaze-bot/finquest-budget-manager/internal/listener"
	"github.com/Jaze-bot/finquest-budget-manager/internal/log"
)

// onlineThreshold keeps the simulated link up roughly 70% of the time.
const onlineThreshold = 0.3

// Status is one connectivity reading.
type Status struct {
	Online bool
	At     time.Time
}

// Simulator periodically re-rolls the connectivity status and notifies
// listeners when it flips. The first roll happens on Run's first tick,
// so a freshly constructed simulator reports online.
type Simulator struct {
	interval  time.Duration
	logger    *log.Logger
	listeners *listener.Registry[Status]

	mu     sync.Mutex
	roll   func() float64
	online bool
}

func New(interval time.Duration, logger *log.Logger) *Simulator {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Simulator{
		interval:  interval,
		logger:    logger.WithComponent(log.ComponentNetSim),
		listeners: listener.NewRegistry[Status](),
		roll:      rng.Float64,
		online:    true,
	}
}

// Online returns the latest reading.
func (s *Simulator) Online() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.online
}

// AddListener subscribes fn to status flips under id.
func (s *Simulator) AddListener(id string, fn func(Status)) {
	s.listeners.Add(id, fn)
}

// RemoveListener drops the subscription for id.
func (s *Simulator) RemoveListener(id string) {
	s.listeners.Remove(id)
}

// Check rolls once and, if the status flipped, notifies listeners. It
// returns the new status.
func (s *Simulator) Check() bool {
	s.mu.Lock()
	online := s.roll() > onlineThreshold
	changed := online != s.online
	s.online = online
	s.mu.Unlock()

	if changed {
		s.logger.Info("Connectivity changed", "online", online)
		s.listeners.Notify(Status{Online: online, At: time.Now()})
	}
	return online
}

// Run re-rolls on every interval tick until ctx is cancelled.
func (s *Simulator) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("Connectivity simulator started", "interval", s.interval)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Connectivity simulator stopped")
			return ctx.Err()
		case <-ticker.C:
			s.Check()
		}
	}
}
