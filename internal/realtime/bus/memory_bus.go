package bus

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/yungbote/degreeplan-backend/internal/realtime"
)

// MemoryBus delivers events in-process. It backs single-node deployments
// without REDIS_ADDR and keeps a bounded history for inspection.
type MemoryBus struct {
	mu        sync.Mutex
	listeners []listener
	nextID    int
	history   []realtime.PlanEvent
	limit     int
}

type listener struct {
	id int
	fn func(realtime.PlanEvent)
}

func NewMemoryBus(historyLimit int) *MemoryBus {
	if historyLimit <= 0 {
		historyLimit = 256
	}
	return &MemoryBus{limit: historyLimit}
}

func (b *MemoryBus) Publish(ctx context.Context, evt realtime.PlanEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.Lock()
	b.history = append(b.history, evt)
	if over := len(b.history) - b.limit; over > 0 {
		b.history = append([]realtime.PlanEvent(nil), b.history[over:]...)
	}
	listeners := slices.Clone(b.listeners)
	b.mu.Unlock()

	for _, l := range listeners {
		l.fn(evt)
	}
	return nil
}

func (b *MemoryBus) StartForwarder(ctx context.Context, onEvt func(e realtime.PlanEvent)) error {
	if onEvt == nil {
		return fmt.Errorf("onEvt callback required")
	}
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.listeners = append(b.listeners, listener{id: id, fn: onEvt})
	b.mu.Unlock()

	// The listener lives as long as ctx, matching the redis forwarder.
	if ctx.Done() == nil {
		return nil
	}
	go func() {
		<-ctx.Done()
		b.removeListener(id)
	}()
	return nil
}

func (b *MemoryBus) removeListener(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = slices.DeleteFunc(b.listeners, func(l listener) bool { return l.id == id })
}

// Events returns a copy of the retained history, oldest first.
func (b *MemoryBus) Events() []realtime.PlanEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]realtime.PlanEvent(nil), b.history...)
}

func (b *MemoryBus) Close() error { return nil }
