// Package batch hashes many files concurrently.
package batch

import (
	"errors"
	"sync"

	cmap "github.com/orcaman/concurrent-map"
	"github.com/panjf2000/ants"
	"massnet.org/shadigest/logging"
	"massnet.org/shadigest/sha256"
	"massnet.org/shadigest/source"
)

const maxPoolWorker = 256

var (
	ErrInvalidWorkers = errors.New("worker count must be between 1 and 256")
)

// Result is the outcome for one requested path.
type Result struct {
	Path   string
	Hash   sha256.Hash
	Size   int64
	Cached bool
	Err    error
}

// Hasher runs file digests on a bounded worker pool. Each file is hashed
// independently; no state is shared between digests.
type Hasher struct {
	digester   *source.Digester
	workerPool *ants.Pool
}

// NewHasher starts a pool of the given size.
func NewHasher(workers int, digester *source.Digester) (*Hasher, error) {
	if workers < 1 || workers > maxPoolWorker {
		return nil, ErrInvalidWorkers
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, err
	}
	return &Hasher{
		digester:   digester,
		workerPool: pool,
	}, nil
}

// Release stops the worker pool.
func (h *Hasher) Release() {
	h.workerPool.Release()
}

func (h *Hasher) hashOne(path string) *Result {
	fd, err := h.digester.File(path)
	if err != nil {
		logging.VPrint(logging.DEBUG, "batch digest failed", logging.LogFormat{"path": path, "err": err})
		return &Result{Path: path, Err: err}
	}
	return &Result{Path: path, Hash: fd.Hash, Size: fd.Size, Cached: fd.Cached}
}

// HashFiles digests every path and returns the results in the order of
// paths. A path listed twice is hashed once.
func (h *Hasher) HashFiles(paths []string) []Result {
	results := cmap.New()

	var wg sync.WaitGroup
	for _, path := range paths {
		p := path
		if !results.SetIfAbsent(p, (*Result)(nil)) {
			continue
		}
		wg.Add(1)
		if err := h.workerPool.Submit(func() {
			defer wg.Done()
			results.Set(p, h.hashOne(p))
		}); err != nil {
			results.Set(p, &Result{Path: p, Err: err})
			wg.Done()
		}
	}
	wg.Wait()

	ordered := make([]Result, 0, len(paths))
	for _, path := range paths {
		v, _ := results.Get(path)
		ordered = append(ordered, *v.(*Result))
	}
	return ordered
}
