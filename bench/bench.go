// Package bench compares the structures in this module on the same workloads.
package bench

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"pq_structures/bst"
	"pq_structures/pq"
	"pq_structures/treap"
)

// Config describes one benchmarking run.
type Config struct {
	// Count is the number of keys inserted into each structure.
	Count uint64
	// Seed drives key generation and treap priorities.
	Seed int64
	// Kinds selects the queues to run; empty means all of pq.Kinds().
	Kinds []string
	// Sorted inserts the keys in increasing order instead of shuffled.
	Sorted bool
}

// QueueResult is the outcome of inserting Count keys into a queue and then
// draining it.
type QueueResult struct {
	Kind   string
	Insert time.Duration
	Drain  time.Duration
}

// TreeResult is the outcome of inserting the same keys into a search tree.
type TreeResult struct {
	Kind   string
	Insert time.Duration
	Height uint64
}

type Report struct {
	Queues []QueueResult
	Trees  []TreeResult
}

var ErrNoKeys = errors.New("bench: count must be positive")

// Keys returns the workload for cfg: 0..Count-1, shuffled unless cfg.Sorted.
func Keys(cfg Config) []uint64 {
	keys := make([]uint64, cfg.Count)
	for i := range keys {
		keys[i] = uint64(i)
	}
	if !cfg.Sorted {
		r := rand.New(rand.NewSource(cfg.Seed))
		r.Shuffle(len(keys), func(i, j int) {
			keys[i], keys[j] = keys[j], keys[i]
		})
	}
	return keys
}

func runQueue(kind string, keys []uint64) (QueueResult, error) {
	q, err := pq.New(kind)
	if err != nil {
		return QueueResult{}, err
	}
	res := QueueResult{Kind: kind}

	start := time.Now()
	pq.InsertAll(q, keys)
	res.Insert = time.Since(start)

	start = time.Now()
	out := pq.Drain(q)
	res.Drain = time.Since(start)

	if len(out) != len(keys) {
		return res, fmt.Errorf("bench: %s drained %d of %d keys", kind, len(out), len(keys))
	}
	for i := 1; i < len(out); i++ {
		if out[i-1] > out[i] {
			return res, fmt.Errorf("bench: %s drained %d before %d", kind, out[i-1], out[i])
		}
	}
	log.Debugf("%s: insert %v, drain %v", kind, res.Insert, res.Drain)
	return res, nil
}

func runTrees(keys []uint64, seed int64) []TreeResult {
	var results []TreeResult

	start := time.Now()
	tree := bst.NewSearchTree()
	for _, k := range keys {
		tree = tree.Insert(k)
	}
	results = append(results, TreeResult{
		Kind:   "bst",
		Insert: time.Since(start),
		Height: tree.Height(),
	})
	log.Debugf("bst: released %d nodes", tree.Destroy())

	r := rand.New(rand.NewSource(seed))
	start = time.Now()
	tr := treap.New(r.Uint64)
	for _, k := range keys {
		tr.Insert(k)
	}
	results = append(results, TreeResult{
		Kind:   "treap",
		Insert: time.Since(start),
		Height: tr.Height(),
	})

	for _, res := range results {
		log.Debugf("%s: insert %v, height %d", res.Kind, res.Insert, res.Height)
	}
	return results
}

// Run executes the queue and tree workloads described by cfg.
func Run(cfg Config) (*Report, error) {
	if cfg.Count == 0 {
		return nil, ErrNoKeys
	}
	kinds := cfg.Kinds
	if len(kinds) == 0 {
		kinds = pq.Kinds()
	}
	keys := Keys(cfg)
	log.Infof("Running %d keys (sorted=%v) over %v", cfg.Count, cfg.Sorted, kinds)

	report := &Report{}
	for _, kind := range kinds {
		res, err := runQueue(kind, keys)
		if err != nil {
			return nil, err
		}
		report.Queues = append(report.Queues, res)
	}
	report.Trees = runTrees(keys, cfg.Seed)
	return report, nil
}
