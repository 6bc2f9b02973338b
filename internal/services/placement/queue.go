// Package placement defers entity creation requested by patrons to the end of
// the player's turn, so a whole batch can be narrated at once and new allies
// do not act on the turn they appear.
package placement

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-pantheon/internal/engine"
	"github.com/KirkDiggler/rpg-pantheon/internal/entities/pantheon"
	"github.com/KirkDiggler/rpg-pantheon/internal/errors"
)

// Result is handed to a request's OnPlaced callback
type Result struct {
	Patron   pantheon.Patron
	Placed   bool
	EntityID string
	// PlacedSoFar counts entities placed for this patron earlier in the
	// batch, not including this one
	PlacedSoFar int
}

// Request asks for one entity at the next flush
type Request struct {
	Patron   pantheon.Patron
	Spec     engine.EntitySpec
	OnPlaced func(ctx context.Context, res *Result)
}

// BatchDone is called once after a batch resolves
type BatchDone func(ctx context.Context, patron pantheon.Patron, placed int)

type batchEnd struct {
	success string
	failure string
	onDone  BatchDone
}

type entry struct {
	req *Request
	end *batchEnd
}

// Config configures a Queue
type Config struct {
	World  engine.World
	Logger *slog.Logger
}

// Validate checks the queue config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.World == nil {
		vb.RequiredField("World")
	}
	return vb.Build()
}

// Queue holds pending placement requests until Flush. It is single-threaded
// and Flush must not be re-entered.
type Queue struct {
	world    engine.World
	logger   *slog.Logger
	entries  []entry
	pending  int
	flushing bool
}

// NewQueue creates an empty queue
func NewQueue(cfg *Config) (*Queue, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Queue{world: cfg.World, logger: logger}, nil
}

// Enqueue adds a request. Requests enqueued from a callback during Flush
// wait for the next flush.
func (q *Queue) Enqueue(req *Request) {
	errors.Assert(req != nil, "nil placement request")
	q.entries = append(q.entries, entry{req: req})
	q.pending++
}

// EnqueueBatchEnd closes the batch made of every request enqueued since the
// previous batch end. Templates may use @a@, @an@ and @s@, and a template
// starting with a space or apostrophe is spoken by the patron.
func (q *Queue) EnqueueBatchEnd(success, failure string, onDone BatchDone) {
	errors.Assert(q.pending > 0, "batch end without any queued placement")
	q.entries = append(q.entries, entry{end: &batchEnd{success: success, failure: failure, onDone: onDone}})
	q.pending = 0
}

// Discard drops every queued request made by patron, along with any batch
// end left without requests. It returns the number of requests dropped.
func (q *Queue) Discard(patron pantheon.Patron) int {
	kept := q.entries[:0]
	dropped, inBatch := 0, 0
	for _, e := range q.entries {
		switch {
		case e.end != nil:
			if inBatch > 0 {
				kept = append(kept, e)
			}
			inBatch = 0
		case e.req.Patron == patron:
			dropped++
		default:
			kept = append(kept, e)
			inBatch++
		}
	}
	clear(q.entries[len(kept):])
	q.entries = kept
	q.pending = inBatch
	return dropped
}

// Len reports the number of queued requests and batch ends
func (q *Queue) Len() int {
	return len(q.entries)
}

// FlushOutput summarizes a flush
type FlushOutput struct {
	Attempted int
	Placed    int
	Messages  []string
}

// Flush attempts every request in insertion order and resolves batch ends.
// The queue is empty afterwards.
func (q *Queue) Flush(ctx context.Context) *FlushOutput {
	errors.Assert(!q.flushing, "placement queue flushed re-entrantly")
	q.flushing = true

	entries := q.entries
	q.entries = nil
	q.pending = 0
	defer func() { q.flushing = false }()

	out := &FlushOutput{}
	placed := 0
	prev := pantheon.None
	for _, e := range entries {
		if e.end != nil {
			if msg := q.resolveBatch(ctx, prev, placed, e.end); msg != "" {
				out.Messages = append(out.Messages, msg)
			}
			prev = pantheon.None
			placed = 0
			continue
		}

		req := e.req
		if req.Patron != prev {
			placed = 0
			prev = req.Patron
		}

		res := &Result{Patron: req.Patron, PlacedSoFar: placed}
		created, err := q.world.CreateEntity(ctx, &engine.CreateEntityInput{Patron: req.Patron, Spec: req.Spec})
		switch {
		case err != nil:
			q.logger.Warn("entity creation failed",
				"patron", req.Patron.Key(),
				"kind", req.Spec.Kind,
				"error", err)
		case created != nil && created.Placed:
			res.Placed = true
			res.EntityID = created.EntityID
		}
		out.Attempted++

		if req.OnPlaced != nil {
			req.OnPlaced(ctx, res)
		}
		if res.Placed {
			placed++
			out.Placed++
		}
	}
	return out
}

func (q *Queue) resolveBatch(ctx context.Context, patron pantheon.Patron, placed int, end *batchEnd) string {
	msg := end.failure
	if placed > 0 {
		msg = end.success
	}
	msg = Pluralize(msg, placed)

	if msg == "" {
		if end.onDone != nil {
			end.onDone(ctx, patron, placed)
		}
		return ""
	}

	msg = strings.TrimSpace(patron.Says(msg))

	q.world.Narrate(ctx, &engine.Narration{Patron: patron, Kind: engine.NarrationGod, Message: msg})
	if end.onDone != nil {
		end.onDone(ctx, patron, placed)
	}
	return msg
}

// Pluralize resolves the article and plural tokens of a template for count
func Pluralize(msg string, count int) string {
	if count == 1 {
		msg = strings.ReplaceAll(msg, "@a@", "a")
		msg = strings.ReplaceAll(msg, "@an@", "an")
		return strings.ReplaceAll(msg, "@s@", "")
	}
	msg = strings.ReplaceAll(msg, " @a@", "")
	msg = strings.ReplaceAll(msg, " @an@", "")
	return strings.ReplaceAll(msg, "@s@", "s")
}
