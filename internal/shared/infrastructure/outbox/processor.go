package outbox

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/sbhunu/landadmin/internal/shared/infrastructure/eventbus"
)

// ProcessorConfig tunes the publish loop.
type ProcessorConfig struct {
	PollInterval     time.Duration
	BatchSize        int
	MaxRetries       int
	RetryBackoffBase time.Duration
	RetryBackoffMax  time.Duration
}

// DefaultProcessorConfig returns the defaults used by the worker binary.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		PollInterval:     250 * time.Millisecond,
		BatchSize:        100,
		MaxRetries:       5,
		RetryBackoffBase: time.Second,
		RetryBackoffMax:  time.Minute,
	}
}

// Processor polls the outbox and publishes stored events to the broker.
// Publication is best-effort with bounded exponential backoff; messages that
// exhaust their retries are dead-lettered, never dropped.
type Processor struct {
	repo      Repository
	publisher eventbus.Publisher
	config    ProcessorConfig
	logger    *slog.Logger

	mu       sync.Mutex
	running  bool
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewProcessor creates an outbox processor.
func NewProcessor(repo Repository, publisher eventbus.Publisher, config ProcessorConfig, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		repo:      repo,
		publisher: publisher,
		config:    config,
		logger:    logger,
		stopChan:  make(chan struct{}),
	}
}

// Start launches the polling loop.
func (p *Processor) Start(ctx context.Context) {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return
	}
	p.running = true
	p.stopChan = make(chan struct{})
	p.mu.Unlock()

	p.wg.Add(1)
	go p.run(ctx)

	p.logger.Info("outbox processor started",
		"poll_interval", p.config.PollInterval,
		"batch_size", p.config.BatchSize,
	)
}

// Stop waits for the loop to drain and exit.
func (p *Processor) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	close(p.stopChan)
	p.mu.Unlock()

	p.wg.Wait()
	p.logger.Info("outbox processor stopped")
}

// IsRunning reports whether the loop is active.
func (p *Processor) IsRunning() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

func (p *Processor) run(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.config.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopChan:
			return
		case <-ticker.C:
			if err := p.processBatch(ctx); err != nil {
				p.logger.Error("outbox batch failed", "error", err)
			}
		}
	}
}

// ProcessOnce runs a single batch synchronously.
func (p *Processor) ProcessOnce(ctx context.Context) error {
	return p.processBatch(ctx)
}

func (p *Processor) processBatch(ctx context.Context) error {
	messages, err := p.repo.GetUnpublished(ctx, p.config.BatchSize)
	if err != nil {
		return err
	}

	for _, msg := range messages {
		if err := p.publisher.Publish(ctx, msg.RoutingKey, msg.Payload); err != nil {
			p.handlePublishFailure(ctx, msg, err)
			continue
		}
		if err := p.repo.MarkPublished(ctx, msg.ID); err != nil {
			p.logger.Error("failed to mark message published",
				"id", msg.ID,
				"event_id", msg.EventID,
				"error", err,
			)
		}
	}
	return nil
}

func (p *Processor) handlePublishFailure(ctx context.Context, msg *Message, pubErr error) {
	p.logger.Warn("failed to publish outbox message",
		"id", msg.ID,
		"routing_key", msg.RoutingKey,
		"retry_count", msg.RetryCount,
		"error", pubErr,
	)

	if p.config.MaxRetries <= 0 || msg.RetryCount+1 >= p.config.MaxRetries {
		if err := p.repo.MarkDead(ctx, msg.ID, pubErr.Error()); err != nil {
			p.logger.Error("failed to dead-letter message", "id", msg.ID, "error", err)
		}
		return
	}

	nextRetryAt := time.Now().UTC().Add(p.backoff(msg.RetryCount + 1))
	if err := p.repo.MarkFailed(ctx, msg.ID, pubErr.Error(), nextRetryAt); err != nil {
		p.logger.Error("failed to mark message failed", "id", msg.ID, "error", err)
	}
}

func (p *Processor) backoff(attempt int) time.Duration {
	base := p.config.RetryBackoffBase
	if base <= 0 {
		base = time.Second
	}
	maxBackoff := p.config.RetryBackoffMax
	if maxBackoff <= 0 {
		maxBackoff = time.Minute
	}
	if attempt < 1 {
		attempt = 1
	}
	if attempt > 20 {
		attempt = 20
	}

	d := base << (attempt - 1)
	if d > maxBackoff {
		return maxBackoff
	}
	return d
}
