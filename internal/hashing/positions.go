package hashing

import (
	"sync"

	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// PositionCounter counts how often each position hash was seen.
type PositionCounter struct {
	seen        map[uint64]int
	maxCapacity int // 0 = unlimited
}

// NewPositionCounter creates a counter. Once maxCapacity distinct hashes
// are stored, new hashes are counted but not remembered; 0 means no limit.
func NewPositionCounter(maxCapacity int) *PositionCounter {
	return &PositionCounter{
		seen:        make(map[uint64]int),
		maxCapacity: maxCapacity,
	}
}

// Add records one occurrence of hash and returns how often it has now been
// seen.
func (pc *PositionCounter) Add(hash uint64) int {
	n, ok := pc.seen[hash]
	if !ok && pc.IsFull() {
		return 1
	}
	pc.seen[hash] = n + 1
	return n + 1
}

// Count returns how often hash was seen.
func (pc *PositionCounter) Count(hash uint64) int {
	return pc.seen[hash]
}

// UniqueCount returns the number of distinct hashes remembered.
func (pc *PositionCounter) UniqueCount() int {
	return len(pc.seen)
}

// IsFull returns true if the counter has reached its capacity limit.
func (pc *PositionCounter) IsFull() bool {
	return pc.maxCapacity > 0 && len(pc.seen) >= pc.maxCapacity
}

// Reset forgets every hash.
func (pc *PositionCounter) Reset() {
	pc.seen = make(map[uint64]int)
}

// ThreadSafePositionCounter wraps PositionCounter with mutex protection for
// concurrent access.
type ThreadSafePositionCounter struct {
	counter *PositionCounter
	mu      sync.RWMutex
}

// NewThreadSafePositionCounter creates a counter safe for concurrent use.
func NewThreadSafePositionCounter(maxCapacity int) *ThreadSafePositionCounter {
	return &ThreadSafePositionCounter{counter: NewPositionCounter(maxCapacity)}
}

// Add atomically records one occurrence of hash.
func (c *ThreadSafePositionCounter) Add(hash uint64) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counter.Add(hash)
}

// Count returns how often hash was seen.
func (c *ThreadSafePositionCounter) Count(hash uint64) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.counter.Count(hash)
}

// UniqueCount returns the number of distinct hashes remembered.
func (c *ThreadSafePositionCounter) UniqueCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.counter.UniqueCount()
}

// Repetitions returns how many times the current position of gs has
// occurred in its history, counting the current occurrence. gs is not
// changed.
func Repetitions(gs *engine.GameState) int {
	work := gs.QuietClone()
	target := Hash(work)
	n := 1
	for work.Ply() > 0 {
		work.Undo()
		if Hash(work) == target {
			n++
		}
	}
	return n
}
