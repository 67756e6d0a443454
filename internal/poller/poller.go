package poller

import (
	"sync"
	"sync/atomic"
	"time"
)

const DefaultInterval = 30 * time.Second

// Poller delivers wall-clock ticks at a fixed interval for the
// reminder scan. Ticks are dropped rather than buffered without bound
// when the consumer falls behind; a reminder check against a slightly
// later clock is equivalent.
type Poller struct {
	interval time.Duration
	out      chan time.Time
	wakeup   chan struct{}
	stopCh   chan struct{}
	doneCh   chan struct{}

	mu      sync.Mutex
	started bool
	stopped bool
	dropped uint64
}

func New(interval time.Duration, bufferSize int) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Poller{
		interval: interval,
		out:      make(chan time.Time, bufferSize),
		wakeup:   make(chan struct{}, 1),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

func (p *Poller) C() <-chan time.Time {
	return p.out
}

func (p *Poller) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return
	}
	p.started = true
	go p.loop()
}

func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.started || p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.stopCh)
	p.mu.Unlock()
	<-p.doneCh
}

// Kick forces an immediate tick, used right after startup so pending
// reminders do not wait a full interval.
func (p *Poller) Kick() {
	select {
	case p.wakeup <- struct{}{}:
	default:
	}
}

func (p *Poller) Dropped() uint64 {
	return atomic.LoadUint64(&p.dropped)
}

func (p *Poller) loop() {
	defer close(p.doneCh)
	defer close(p.out)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case at := <-ticker.C:
			p.emit(at)
		case <-p.wakeup:
			p.emit(time.Now())
		case <-p.stopCh:
			return
		}
	}
}

func (p *Poller) emit(at time.Time) {
	select {
	case p.out <- at:
	default:
		atomic.AddUint64(&p.dropped, 1)
	}
}
