package compiler

import (
	"sync"
	"time"

	"go.trai.ch/slswebpack/internal/core/domain"
	"go.trai.ch/slswebpack/internal/core/ports"
)

// unit is the mutable state of one build unit.
type unit struct {
	name     string
	compiler ports.BundleCompiler

	mu     sync.RWMutex
	state  domain.UnitState
	stats  domain.BuildStats
	builds int
	chunks map[string]string
}

func newUnit(name string, compiler ports.BundleCompiler) *unit {
	return &unit{
		name:     name,
		compiler: compiler,
		state:    domain.UnitIdle,
		chunks:   make(map[string]string),
	}
}

// begin marks the unit running and returns how many builds it started before.
func (u *unit) begin(now time.Time) int {
	u.mu.Lock()
	defer u.mu.Unlock()

	prev := u.builds
	u.builds++
	u.state = domain.UnitRunning
	u.stats = domain.BuildStats{Start: now}
	return prev
}

func (u *unit) finish(now time.Time, ok bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.stats.End = now
	if ok {
		u.state = domain.UnitSucceeded
	} else {
		u.state = domain.UnitFailed
	}
}

func (u *unit) currentState() domain.UnitState {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.state
}

func (u *unit) buildStats() domain.BuildStats {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.stats
}

// chunkChanged records the chunk's hash and reports whether it differs from the last one seen.
func (u *unit) chunkChanged(chunk domain.Chunk) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	if prev, ok := u.chunks[chunk.Name]; ok && prev == chunk.Hash {
		return false
	}
	u.chunks[chunk.Name] = chunk.Hash
	return true
}
