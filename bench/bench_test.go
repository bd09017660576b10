package bench

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	assert := assert.New(t)

	sorted := Keys(Config{Count: 5, Sorted: true})
	assert.Equal([]uint64{0, 1, 2, 3, 4}, sorted)

	shuffled := Keys(Config{Count: 50, Seed: 3})
	assert.ElementsMatch(Keys(Config{Count: 50, Sorted: true}), shuffled)
	assert.Equal(shuffled, Keys(Config{Count: 50, Seed: 3}), "same seed, same keys")
}

func TestRun(t *testing.T) {
	assert := assert.New(t)

	report, err := Run(Config{Count: 500, Seed: 1})
	if !assert.NoError(err) {
		return
	}
	var kinds []string
	for _, res := range report.Queues {
		kinds = append(kinds, res.Kind)
	}
	assert.Equal([]string{"arrayheap", "binomial", "leftist", "skew"}, kinds)
	assert.Len(report.Trees, 2)
}

func TestRunSortedDegeneratesBST(t *testing.T) {
	assert := assert.New(t)

	report, err := Run(Config{Count: 300, Seed: 9, Sorted: true, Kinds: []string{"skew"}})
	if !assert.NoError(err) {
		return
	}
	assert.Len(report.Queues, 1)
	i := slices.IndexFunc(report.Trees, func(r TreeResult) bool { return r.Kind == "bst" })
	j := slices.IndexFunc(report.Trees, func(r TreeResult) bool { return r.Kind == "treap" })
	assert.Equal(uint64(300), report.Trees[i].Height)
	assert.Less(report.Trees[j].Height, uint64(60))
}

func TestRunErrors(t *testing.T) {
	_, err := Run(Config{})
	assert.ErrorIs(t, err, ErrNoKeys)

	_, err = Run(Config{Count: 3, Kinds: []string{"pairing"}})
	assert.ErrorContains(t, err, "pairing")
}
