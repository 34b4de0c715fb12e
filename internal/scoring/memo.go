package scoring

import (
	"strconv"

	"github.com/mitchellh/hashstructure/v2"
	"github.com/patrickmn/go-cache"

	"github.com/abhisek/daycheck/internal/questionset"
)

// Memo caches Score results for a single question set, keyed by a
// fingerprint of the answer map. Any write to the answers changes the key,
// so a stale result is never returned.
type Memo struct {
	set   *questionset.Set
	cache *cache.Cache

	hits   int
	misses int
}

// NewMemo creates a Memo bound to set. Entries never expire and no janitor
// goroutine is started.
func NewMemo(set *questionset.Set) *Memo {
	return &Memo{
		set:   set,
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// Fingerprint hashes an answer map independent of iteration order.
func Fingerprint(answers map[int]int) (string, error) {
	h, err := hashstructure.Hash(answers, hashstructure.FormatV2, nil)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(h, 16), nil
}

// Score returns the aggregates for answers. set must be the Memo's set; it
// is accepted so Score matches the signature of the package-level function.
func (m *Memo) Score(set *questionset.Set, answers map[int]int) []Aggregate {
	if set != m.set {
		return Score(set, answers)
	}

	key, err := Fingerprint(answers)
	if err != nil {
		m.misses++
		return Score(set, answers)
	}

	if v, ok := m.cache.Get(key); ok {
		m.hits++
		return clone(v.([]Aggregate))
	}

	m.misses++
	aggs := Score(set, answers)
	m.cache.Set(key, clone(aggs), cache.NoExpiration)
	return aggs
}

// Stats reports cache hits and misses since creation or the last Flush.
func (m *Memo) Stats() (hits, misses int) {
	return m.hits, m.misses
}

// Flush drops every cached entry.
func (m *Memo) Flush() {
	m.cache.Flush()
	m.hits, m.misses = 0, 0
}

func clone(a []Aggregate) []Aggregate {
	return append([]Aggregate(nil), a...)
}
