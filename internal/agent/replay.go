package agent

import "math/rand"

// Experience is one transition observed by the agent.
type Experience struct {
	State    []float64
	Action   int
	Reward   float64
	Next     []float64
	Terminal bool
}

// ReplayBuffer is a bounded FIFO store of experiences. When full, adding a
// new experience evicts the oldest one.
type ReplayBuffer struct {
	items []Experience
	cap   int
	next  int
	full  bool
}

// NewReplayBuffer creates a buffer with the given capacity.
func NewReplayBuffer(capacity int) *ReplayBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &ReplayBuffer{
		items: make([]Experience, 0, capacity),
		cap:   capacity,
	}
}

// Add stores an experience, evicting the oldest when at capacity.
func (b *ReplayBuffer) Add(e Experience) {
	if !b.full && len(b.items) < b.cap {
		b.items = append(b.items, e)
		if len(b.items) == b.cap {
			b.full = true
		}
		return
	}
	b.items[b.next] = e
	b.next = (b.next + 1) % b.cap
}

// Len returns the number of stored experiences.
func (b *ReplayBuffer) Len() int {
	return len(b.items)
}

// Sample returns n experiences drawn uniformly without replacement within
// the batch. n is capped at the buffer length.
func (b *ReplayBuffer) Sample(rng *rand.Rand, n int) []Experience {
	if n > len(b.items) {
		n = len(b.items)
	}
	out := make([]Experience, 0, n)
	for _, idx := range rng.Perm(len(b.items))[:n] {
		out = append(out, b.items[idx])
	}
	return out
}
