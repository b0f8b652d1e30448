package ui

import (
	"context"
	"time"
)

// Relay queue defaults
const (
	RelayQueueSize    = 256
	RelayPollInterval = 100 * time.Millisecond
)

// Relay is an ordered queue from workers to the single UI consumer.
// Workers only Send; the consumer drains the queue on a fixed tick.
type Relay struct {
	queue    chan Message
	interval time.Duration
}

// NewRelay creates a relay with the default queue size and poll interval
func NewRelay() *Relay {
	return &Relay{
		queue:    make(chan Message, RelayQueueSize),
		interval: RelayPollInterval,
	}
}

// Send enqueues msg, blocking while the queue is full
func (r *Relay) Send(msg Message) {
	r.queue <- msg
}

// Drain returns every queued message in posting order without blocking
func (r *Relay) Drain() []Message {
	var batch []Message
	for {
		select {
		case msg := <-r.queue:
			batch = append(batch, msg)
		default:
			return batch
		}
	}
}

// Run drains the queue every interval and hands non-empty batches to apply
// until ctx is done.
func (r *Relay) Run(ctx context.Context, apply func([]Message)) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if batch := r.Drain(); len(batch) > 0 {
				apply(batch)
			}
		}
	}
}
