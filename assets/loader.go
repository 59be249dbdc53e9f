package assets

import (
	"fmt"

	"github.com/panjf2000/ants/v2"
)

// Kind identifies what a background job produced.
type Kind int

const (
	KindModel Kind = iota
	KindMusic
)

func (k Kind) String() string {
	switch k {
	case KindModel:
		return "model"
	case KindMusic:
		return "music"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Result is the outcome of one background load. Value holds an image.Image for
// KindModel and PCM bytes for KindMusic.
type Result struct {
	Kind  Kind
	Path  string
	Value any
	Err   error
}

// Loader runs decode jobs on a small worker pool. Results are handed back through
// Poll so that world state is only touched from the update goroutine.
type Loader struct {
	pool    *ants.Pool
	results chan Result
	pending int
}

// NewLoader creates a loader with the given number of workers.
func NewLoader(workers int) (*Loader, error) {
	if workers < 1 {
		workers = 1
	}
	pool, err := ants.NewPool(workers, ants.WithPreAlloc(true))
	if err != nil {
		return nil, fmt.Errorf("failed to create asset pool: %w", err)
	}
	return &Loader{
		pool:    pool,
		results: make(chan Result, 16),
	}, nil
}

// Submit schedules fn. A panic inside fn is reported as the job's error.
func (l *Loader) Submit(kind Kind, path string, fn func() (any, error)) error {
	err := l.pool.Submit(func() {
		res := Result{Kind: kind, Path: path}
		defer func() {
			if p := recover(); p != nil {
				res.Value = nil
				res.Err = fmt.Errorf("loading %s panicked: %v", kind, p)
			}
			l.results <- res
		}()
		res.Value, res.Err = fn()
	})
	if err != nil {
		return fmt.Errorf("failed to submit %s load: %w", kind, err)
	}
	l.pending++
	return nil
}

// Poll returns every finished result without blocking.
func (l *Loader) Poll() []Result {
	var out []Result
	for {
		select {
		case res := <-l.results:
			l.pending--
			out = append(out, res)
		default:
			return out
		}
	}
}

// Pending reports how many submitted jobs have not been polled yet.
func (l *Loader) Pending() int {
	return l.pending
}

// Release stops the workers. Jobs still running finish in the background.
func (l *Loader) Release() {
	l.pool.Release()
}
