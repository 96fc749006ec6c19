package qa

import (
	"github.com/google/uuid"
	"github.com/ragqa/ragqa-api/internal/domain"
)

// ChunkState tracks one chunk's progress through the orchestrator.
type ChunkState string

// Per-chunk states. Pending chunks wait in the queue, InFlight marks
// the single request currently issued, Succeeded means at least one
// new non-duplicate pair was extracted, Failed means an attempt
// yielded zero new pairs, and Exhausted means a Failed chunk has used
// its whole retry budget.
const (
	ChunkPending   ChunkState = "pending"
	ChunkInFlight  ChunkState = "in_flight"
	ChunkSucceeded ChunkState = "succeeded"
	ChunkFailed    ChunkState = "failed"
	ChunkExhausted ChunkState = "exhausted"
)

// session is the bookkeeping state for one chunked-generation call.
// It is owned exclusively by that call and destroyed when it returns;
// concurrent callers each get their own.
type session struct {
	id     uuid.UUID
	target int

	// needed strictly decreases as pairs are accepted; reaching zero
	// terminates the session. This is what guarantees no chunk is ever
	// asked for more output after the target is met.
	needed int

	pairs []domain.QAPair
	seen  map[string]struct{}

	states   []ChunkState
	attempts []int
	shares   []int

	totalAttempts int
	maxAttempts   int
}

func newSession(target, chunkCount, perChunkCap, maxAttempts int) *session {
	s := &session{
		id:       uuid.New(),
		target:   target,
		needed:   target,
		seen:     make(map[string]struct{}, target),
		states:   make([]ChunkState, chunkCount),
		attempts: make([]int, chunkCount),
		shares:   distribute(target, chunkCount, perChunkCap),

		maxAttempts: maxAttempts,
	}
	for i := range s.states {
		s.states[i] = ChunkPending
	}
	return s
}

// distribute splits the global target evenly across chunks, assigning
// the remainder to the first chunks, with each share capped at
// perChunkCap. Shares sum to at most target; when the cap binds, the
// session can only complete with a shortfall.
func distribute(target, chunkCount, perChunkCap int) []int {
	shares := make([]int, chunkCount)
	base := target / chunkCount
	rem := target % chunkCount

	for i := range shares {
		share := base
		if i < rem {
			share++
		}
		if perChunkCap > 0 && share > perChunkCap {
			share = perChunkCap
		}
		shares[i] = share
	}
	return shares
}

// accept adds pairs to the session, skipping duplicates by normalized
// question text and stopping once the target is reached. It returns
// how many pairs were genuinely new.
func (s *session) accept(pairs []domain.QAPair) int {
	accepted := 0
	for _, pair := range pairs {
		if s.needed == 0 {
			break
		}
		key := pair.NormalizedQuestion()
		if _, dup := s.seen[key]; dup {
			continue
		}
		s.seen[key] = struct{}{}
		s.pairs = append(s.pairs, pair)
		s.needed--
		accepted++
	}
	return accepted
}

func (s *session) attempted() int {
	n := 0
	for _, a := range s.attempts {
		if a > 0 {
			n++
		}
	}
	return n
}

func (s *session) exhausted() int {
	n := 0
	for _, st := range s.states {
		if st == ChunkExhausted {
			n++
		}
	}
	return n
}

// Result is what a generation call hands back to its caller: the
// ordered pairs plus enough session metadata to tell how complete the
// outcome is. ActualCount below RequestedCount is a shortfall, not a
// failure.
type Result struct {
	Pairs           []domain.QAPair `json:"qa_pairs"`
	RequestedCount  int             `json:"requested_count"`
	ActualCount     int             `json:"actual_count"`
	ChunksAttempted int             `json:"chunks_attempted"`
	ChunksExhausted int             `json:"chunks_exhausted"`

	// Aborted is set when the global attempt ceiling was reached
	// before the target; the pairs gathered so far are still returned.
	Aborted bool `json:"aborted"`
}

func (s *session) result(aborted bool) *Result {
	return &Result{
		Pairs:           s.pairs,
		RequestedCount:  s.target,
		ActualCount:     len(s.pairs),
		ChunksAttempted: s.attempted(),
		ChunksExhausted: s.exhausted(),
		Aborted:         aborted,
	}
}
