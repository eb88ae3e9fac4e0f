package guestbook

import (
	"context"
	"sync"
	"time"
)

type Fetcher interface {
	FetchEntries(ctx context.Context) (err error)
}

// Poller mounts a view: it fetches the entries once when started
// and then at each period, until it is stopped.
type Poller struct {
	// Injected fields
	fetcher Fetcher
	period  time.Duration
	logger  Logger
	timeNow func() time.Time

	// Internal fields
	statusMutex sync.RWMutex
	mountedAt   time.Time
	lastSuccess time.Time
	cancel      context.CancelFunc
	done        <-chan struct{}
}

func NewPoller(fetcher Fetcher, period time.Duration,
	logger Logger, timeNow func() time.Time) *Poller {
	return &Poller{
		fetcher: fetcher,
		period:  period,
		logger:  logger,
		timeNow: timeNow,
	}
}

func (p *Poller) String() string {
	return "poller"
}

func (p *Poller) Start(ctx context.Context) (runError <-chan error, startErr error) {
	runCtx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	ready := make(chan struct{})
	done := make(chan struct{})
	p.done = done

	p.statusMutex.Lock()
	p.mountedAt = p.timeNow()
	p.lastSuccess = time.Time{}
	p.statusMutex.Unlock()

	go p.run(runCtx, ready, done)

	select {
	case <-ready:
	case <-ctx.Done():
		_ = p.Stop()
		return nil, ctx.Err()
	}
	// polling errors are only logged, the run error channel is never written to.
	return make(chan error), nil
}

func (p *Poller) run(ctx context.Context, ready chan<- struct{},
	done chan<- struct{}) {
	defer close(done)

	p.logger.Info("fetching entries every " + p.period.String())
	ticker := time.NewTicker(p.period)
	defer ticker.Stop()
	close(ready)

	p.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	err := p.fetcher.FetchEntries(ctx)
	if err != nil {
		return // already logged
	}
	p.statusMutex.Lock()
	p.lastSuccess = p.timeNow()
	p.statusMutex.Unlock()
}

// Stop cancels any request in flight and waits for the polling
// to exit. No fetch is started once Stop returns. Stopping a poller
// never started is a no-op.
func (p *Poller) Stop() (err error) {
	if p.cancel == nil {
		return nil
	}
	p.cancel()
	<-p.done
	return nil
}

// Status returns the time the poller was started at and the
// time of the last successful fetch, which is zero if none succeeded.
func (p *Poller) Status() (mountedAt, lastSuccess time.Time) {
	p.statusMutex.RLock()
	defer p.statusMutex.RUnlock()
	return p.mountedAt, p.lastSuccess
}

// Period returns the polling period.
func (p *Poller) Period() time.Duration {
	return p.period
}
