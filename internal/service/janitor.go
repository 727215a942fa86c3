package service

import (
	"context"
	"sync"
	"time"

	"github.com/attune-health/attune/internal/domain"
	"go.uber.org/zap"
)

const defaultJanitorInterval = 5 * time.Minute

// Janitor periodically prunes expired conversation contexts from the store.
// Backends with native expiry make the sweep a no-op.
type Janitor struct {
	contexts domain.ContextStore
	logger   *zap.Logger

	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

func NewJanitor(contexts domain.ContextStore, logger *zap.Logger) *Janitor {
	return &Janitor{
		contexts: contexts,
		logger:   logger,
		interval: defaultJanitorInterval,
		stopCh:   make(chan struct{}),
	}
}

func (j *Janitor) SetInterval(d time.Duration) {
	j.interval = d
}

// Start runs the sweep on a periodic schedule in a background goroutine.
func (j *Janitor) Start() {
	j.wg.Add(1)
	go func() {
		defer j.wg.Done()
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		j.logger.Info("context janitor started", zap.Duration("interval", j.interval))

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				j.run(ctx)
				cancel()
			case <-j.stopCh:
				j.logger.Info("context janitor stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the janitor.
func (j *Janitor) Stop() {
	close(j.stopCh)
	j.wg.Wait()
}

func (j *Janitor) run(ctx context.Context) {
	pruned, err := j.contexts.PruneExpired(ctx)
	if err != nil {
		j.logger.Error("failed to prune expired contexts", zap.Error(err))
		return
	}
	if pruned > 0 {
		j.logger.Info("pruned expired contexts", zap.Int("count", pruned))
	}
}
