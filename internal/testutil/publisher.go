package testutil

import (
	"context"
	"sync"

	"github.com/vk/framegraph/internal/inspect"
)

// MemoryPublisher keeps every published snapshot. Err, when set, is returned
// from Publish instead.
type MemoryPublisher struct {
	mu        sync.Mutex
	snapshots []inspect.Snapshot
	Err       error
	Closed    bool
}

func (p *MemoryPublisher) Publish(_ context.Context, s inspect.Snapshot) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.snapshots = append(p.snapshots, s)
	return nil
}

func (p *MemoryPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Closed = true
	return nil
}

// Snapshots returns the published snapshots in order.
func (p *MemoryPublisher) Snapshots() []inspect.Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]inspect.Snapshot(nil), p.snapshots...)
}
