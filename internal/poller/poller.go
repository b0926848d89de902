package poller

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"worldcup-stats-service/internal/logging"
	"worldcup-stats-service/internal/providers"
)

const defaultRetryInterval = 30 * time.Second

// Loader fetches every dataset in one go.
type Loader interface {
	Load(ctx context.Context) (providers.Dataset, error)
}

// Sink receives each successfully loaded dataset.
type Sink interface {
	Replace(ds providers.Dataset) error
}

// Poller loads the datasets at start, retries until the first success, then
// optionally reloads them every interval.
type Poller struct {
	loader        Loader
	sink          Sink
	logger        *slog.Logger
	interval      time.Duration
	retryInterval time.Duration
	now           func() time.Time

	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool
	wg       sync.WaitGroup

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the load loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether a dataset has been loaded and the loop is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller. A non-positive interval loads once; failures are
// still retried every retryInterval until the first success.
func New(loader Loader, sink Sink, logger *slog.Logger, interval, retryInterval time.Duration) *Poller {
	if retryInterval <= 0 {
		retryInterval = defaultRetryInterval
	}
	return &Poller{
		loader:        loader,
		sink:          sink,
		logger:        logger,
		interval:      interval,
		retryInterval: retryInterval,
		now:           time.Now,
		done:          make(chan struct{}),
	}
}

// Start begins loading until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		logging.Info(p.logger, "dataset poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		defer logging.Info(p.logger, "dataset poller stopped")

		for {
			err := p.Refresh(ctx)
			wait := p.interval
			if err != nil && p.Status().LastSuccess.IsZero() {
				wait = p.retryInterval
			}
			if wait <= 0 {
				return
			}

			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-p.done:
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
}

// Stop halts the loop and waits for an in-flight load to return or ctx to expire.
func (p *Poller) Stop(ctx context.Context) error {
	p.stopOnce.Do(func() {
		close(p.done)
	})

	finished := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(finished)
	}()
	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Refresh loads the datasets once and hands them to the sink.
func (p *Poller) Refresh(ctx context.Context) error {
	start := p.now()
	p.recordAttempt(start)

	ds, err := p.loader.Load(ctx)
	if err == nil && p.sink != nil {
		err = p.sink.Replace(ds)
	}
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			logging.Error(p.logger, "dataset load failed", err, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		}
		p.recordFailure(err, start)
		return err
	}

	p.recordSuccess(start)
	logging.Info(p.logger, "datasets loaded",
		logging.FieldCount, len(ds.Teams),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return nil
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the loop's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
