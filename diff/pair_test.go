package diff

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keyed struct {
	ID    string
	Value int
}

func keyOf(k keyed) string { return k.ID }

func TestPairByKey(t *testing.T) {
	old := []keyed{{"a", 1}, {"b", 2}, {"c", 3}}
	new := []keyed{{"b", 20}, {"d", 40}, {"a", 10}}

	pairs := PairByKey(old, new, keyOf)
	require.Len(t, pairs, 4)

	// old-order pairs first
	assert.Equal(t, keyed{"a", 1}, *pairs[0].Old)
	require.NotNil(t, pairs[0].New)
	assert.Equal(t, keyed{"a", 10}, *pairs[0].New)

	assert.Equal(t, keyed{"b", 2}, *pairs[1].Old)
	require.NotNil(t, pairs[1].New)
	assert.Equal(t, keyed{"b", 20}, *pairs[1].New)

	// removed
	assert.Equal(t, keyed{"c", 3}, *pairs[2].Old)
	assert.Nil(t, pairs[2].New)

	// added, in new order, after all old pairs
	assert.Nil(t, pairs[3].Old)
	assert.Equal(t, keyed{"d", 40}, *pairs[3].New)
}

func TestPairByKeyEmpty(t *testing.T) {
	assert.Empty(t, PairByKey(nil, nil, keyOf))

	pairs := PairByKey([]keyed{{"a", 1}}, nil, keyOf)
	require.Len(t, pairs, 1)
	assert.Nil(t, pairs[0].New)

	pairs = PairByKey(nil, []keyed{{"a", 1}}, keyOf)
	require.Len(t, pairs, 1)
	assert.Nil(t, pairs[0].Old)
}

// Every element of old and of new must appear in exactly one pair.
func TestPairByKeyPartition(t *testing.T) {
	old := []keyed{{"a", 1}, {"b", 2}, {"c", 3}, {"d", 4}}
	new := []keyed{{"c", 30}, {"e", 50}, {"a", 10}, {"f", 60}}

	pairs := PairByKey(old, new, keyOf)

	oldSeen := map[string]int{}
	newSeen := map[string]int{}
	for _, p := range pairs {
		if p.Old != nil {
			oldSeen[p.Old.ID]++
		}
		if p.New != nil {
			newSeen[p.New.ID]++
		}
	}
	for _, v := range old {
		assert.Equal(t, 1, oldSeen[v.ID], "old %q", v.ID)
	}
	for _, v := range new {
		assert.Equal(t, 1, newSeen[v.ID], "new %q", v.ID)
	}
	assert.Len(t, pairs, len(oldSeen)+len(newSeen)-2) // a and c matched
}

// Reordering the inputs must not change the multiset of output pairs.
func TestPairByKeyStableUnderReordering(t *testing.T) {
	old := []keyed{{"a", 1}, {"b", 2}, {"c", 3}, {"d", 4}}
	new := []keyed{{"b", 20}, {"c", 30}, {"e", 50}}

	type valuePair struct {
		Old, New keyed
		HasOld   bool
		HasNew   bool
	}
	collect := func(pairs []Pair[keyed]) map[valuePair]int {
		m := map[valuePair]int{}
		for _, p := range pairs {
			var vp valuePair
			if p.Old != nil {
				vp.Old, vp.HasOld = *p.Old, true
			}
			if p.New != nil {
				vp.New, vp.HasNew = *p.New, true
			}
			m[vp]++
		}
		return m
	}

	want := collect(PairByKey(old, new, keyOf))

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		o := append([]keyed(nil), old...)
		n := append([]keyed(nil), new...)
		rng.Shuffle(len(o), func(i, j int) { o[i], o[j] = o[j], o[i] })
		rng.Shuffle(len(n), func(i, j int) { n[i], n[j] = n[j], n[i] })
		assert.Equal(t, want, collect(PairByKey(o, n, keyOf)))
	}
}
