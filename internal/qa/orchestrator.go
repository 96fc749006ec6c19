package qa

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ragqa/ragqa-api/internal/chunk"
	"github.com/ragqa/ragqa-api/internal/domain"
	"github.com/ragqa/ragqa-api/internal/generation"
	"github.com/ragqa/ragqa-api/internal/parser"
)

// MaxTarget is the largest pair count the core accepts for one call.
// Callers usually impose tighter bounds; this one rejects requests no
// provider budget could serve.
const MaxTarget = 100

// Options configures one orchestrator. Zero delays are valid and mean
// no pacing, which tests rely on.
type Options struct {
	MaxChunkSize int
	Overlap      int
	MaxChunks    int

	// MaxPairsPerChunk caps the share of the target any single chunk
	// is asked for in one request.
	MaxPairsPerChunk int

	// ChunkRetries is the per-chunk retry limit: a chunk is attempted
	// at most ChunkRetries+1 times before it is marked exhausted.
	ChunkRetries int

	// MaxTotalAttempts is the global attempt ceiling. Zero means the
	// natural bound of chunk count times (ChunkRetries+1).
	MaxTotalAttempts int

	// CallDelay spaces consecutive provider calls to stay under rate
	// limits. MaxRetryWait bounds the exponential cooldown applied
	// after a rate-limited attempt.
	CallDelay    time.Duration
	MaxRetryWait time.Duration
}

// Orchestrator runs chunked Q&A generation sessions. It is stateless
// across calls: every Generate invocation owns a fresh session.
type Orchestrator struct {
	client generation.Client
	logger *slog.Logger
	opts   Options
}

// NewOrchestrator creates an orchestrator using the given generation
// client.
func NewOrchestrator(client generation.Client, logger *slog.Logger, opts Options) (*Orchestrator, error) {
	if client == nil {
		return nil, errors.New("generation client cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &Orchestrator{client: client, logger: logger, opts: opts}, nil
}

// Generate produces up to target question/answer pairs covering text.
// The text is chunked, each chunk is asked for its share of the
// target, pairs are deduplicated across chunks by normalized question,
// and failed chunks are retried within per-chunk and global budgets.
//
// A below-target outcome is returned as a valid Result with a
// shortfall, not an error. The returned error is non-nil only for
// invalid input (wrapped domain.ErrConfiguration) or context
// cancellation, in which case the partial Result is still returned.
func (o *Orchestrator) Generate(ctx context.Context, text string, target int) (*Result, error) {
	if target <= 0 || target > MaxTarget {
		return nil, fmt.Errorf("%w: target pair count must be in 1..%d, got %d",
			domain.ErrConfiguration, MaxTarget, target)
	}
	if text == "" {
		return nil, fmt.Errorf("%w: %v", domain.ErrConfiguration, domain.ErrEmptyDocument)
	}

	chunks, err := chunk.Split(text, o.opts.MaxChunkSize, o.opts.Overlap, o.opts.MaxChunks)
	if err != nil {
		return nil, err
	}

	maxAttempts := o.opts.MaxTotalAttempts
	if maxAttempts <= 0 {
		maxAttempts = len(chunks) * (o.opts.ChunkRetries + 1)
	}

	sess := newSession(target, len(chunks), o.opts.MaxPairsPerChunk, maxAttempts)

	logger := o.logger.With("session_id", sess.id, "target", target, "chunks", len(chunks))
	logger.InfoContext(ctx, "starting chunked generation",
		"text_length", len(text),
		"max_attempts", maxAttempts)

	// FIFO queue of chunk indices. Failed chunks re-enter at the back
	// so other chunks get a turn before any retry.
	queue := make([]int, len(chunks))
	for i := range queue {
		queue[i] = i
	}

	aborted := false
	for len(queue) > 0 {
		// Termination is checked before issuing a request, never
		// mid-flight: that is the unit of cancellation.
		if sess.needed == 0 {
			break
		}
		if sess.totalAttempts >= sess.maxAttempts {
			logger.WarnContext(ctx, "global attempt ceiling reached, aborting session",
				"total_attempts", sess.totalAttempts,
				"pairs_gathered", len(sess.pairs))
			aborted = true
			break
		}
		if err := ctx.Err(); err != nil {
			return sess.result(true), err
		}

		idx := queue[0]
		queue = queue[1:]

		ask := sess.shares[idx]
		if ask > sess.needed {
			ask = sess.needed
		}
		if ask == 0 {
			// A zero share can only happen when target < chunk count;
			// the chunk has nothing to contribute.
			continue
		}

		delay := o.attemptChunk(ctx, sess, chunks[idx], ask, logger)

		switch sess.states[idx] {
		case ChunkFailed:
			if sess.attempts[idx] <= o.opts.ChunkRetries {
				sess.states[idx] = ChunkPending
				queue = append(queue, idx)
			} else {
				sess.states[idx] = ChunkExhausted
				logger.WarnContext(ctx, "chunk retry budget exhausted",
					"chunk", idx,
					"attempts", sess.attempts[idx])
			}
		}

		if len(queue) > 0 && sess.needed > 0 {
			if err := o.wait(ctx, delay); err != nil {
				return sess.result(true), err
			}
		}
	}

	result := sess.result(aborted)
	logger.InfoContext(ctx, "chunked generation finished",
		"requested", result.RequestedCount,
		"actual", result.ActualCount,
		"chunks_attempted", result.ChunksAttempted,
		"chunks_exhausted", result.ChunksExhausted,
		"aborted", result.Aborted)

	return result, nil
}

// attemptChunk issues one generation request for a chunk, parses and
// accepts the outcome, and records the resulting chunk state. It
// returns the pacing delay to apply before the next request.
func (o *Orchestrator) attemptChunk(
	ctx context.Context,
	sess *session,
	ch chunk.Chunk,
	ask int,
	logger *slog.Logger,
) time.Duration {
	idx := ch.Index
	sess.states[idx] = ChunkInFlight
	sess.attempts[idx]++
	sess.totalAttempts++

	logger.DebugContext(ctx, "attempting chunk",
		"chunk", idx,
		"attempt", sess.attempts[idx],
		"ask", ask,
		"chunk_length", len(ch.Text))

	delay := o.opts.CallDelay

	res, err := o.client.Generate(ctx, generation.Request{Text: ch.Text, PairCount: ask})
	if err != nil {
		logger.WarnContext(ctx, "chunk generation failed",
			"chunk", idx,
			"attempt", sess.attempts[idx],
			"error", err)
		sess.states[idx] = ChunkFailed

		if errors.Is(err, generation.ErrRateLimited) {
			if d := o.backoff(sess.attempts[idx]); d > delay {
				delay = d
			}
		}
		return delay
	}

	// An unparseable or empty completion is a soft failure: same retry
	// path as a provider error, never an exception.
	accepted := sess.accept(parser.Parse(res.RawText))
	if accepted == 0 {
		logger.WarnContext(ctx, "chunk produced no new pairs",
			"chunk", idx,
			"attempt", sess.attempts[idx],
			"raw_length", len(res.RawText))
		sess.states[idx] = ChunkFailed
		return delay
	}

	sess.states[idx] = ChunkSucceeded
	logger.DebugContext(ctx, "chunk succeeded",
		"chunk", idx,
		"accepted", accepted,
		"still_needed", sess.needed)
	return delay
}

// backoff returns the cooldown after the nth rate-limited attempt:
// 2^attempt seconds, bounded by MaxRetryWait.
func (o *Orchestrator) backoff(attempt int) time.Duration {
	if o.opts.MaxRetryWait <= 0 {
		return 0
	}
	d := time.Duration(1<<uint(attempt)) * time.Second
	if d > o.opts.MaxRetryWait {
		d = o.opts.MaxRetryWait
	}
	return d
}

func (o *Orchestrator) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
