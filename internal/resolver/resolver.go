// Package resolver answers football questions locally from the knowledge base.
//
// Resolution is a fixed cascade: keyword table, FAQ table, domain-token fact,
// out-of-domain message. It never performs I/O and never fails.
package resolver

import (
	"math/rand"
	"strings"
	"sync"

	"github.com/ppiankov/footbot/internal/knowledge"
)

// RandomSource picks an index in [0, n)
type RandomSource interface {
	Intn(n int) int
}

// Resolver maps free text to an answer using the ordered knowledge tables
type Resolver struct {
	base *knowledge.Base
	rnd  RandomSource
}

// New creates a resolver over base. A nil base uses knowledge.Default();
// a nil rnd uses a time-seeded source.
func New(base *knowledge.Base, rnd RandomSource) *Resolver {
	if base == nil {
		base = knowledge.Default()
	}
	if rnd == nil {
		rnd = newLockedRand(rand.Int63())
	}
	return &Resolver{base: base, rnd: rnd}
}

// WithSeed creates a resolver whose random choices are reproducible
func WithSeed(base *knowledge.Base, seed int64) *Resolver {
	return New(base, newLockedRand(seed))
}

// Source identifies which table produced an answer
type Source string

const (
	SourceKeyword Source = "keyword"
	SourceFAQ     Source = "faq"
	SourceFact    Source = "fact"
	SourceDefault Source = "default"
)

// Resolve returns an answer for message. The result is never empty.
func (r *Resolver) Resolve(message string) string {
	answer, _ := r.ResolveWithSource(message)
	return answer
}

// ResolveWithSource is Resolve plus the table that matched
func (r *Resolver) ResolveWithSource(message string) (string, Source) {
	input := strings.ToLower(message)

	for _, e := range r.base.Keywords {
		if strings.Contains(input, e.Key) {
			return r.pick(e.Answers), SourceKeyword
		}
	}

	// An empty input is a substring of every question, so it only gets the
	// "input contains question" direction.
	blank := strings.TrimSpace(input) == ""
	for _, e := range r.base.FAQ {
		if strings.Contains(input, e.Key) || (!blank && strings.Contains(e.Key, input)) {
			return r.pick(e.Answers), SourceFAQ
		}
	}

	if len(r.base.Facts) > 0 {
		for _, token := range r.base.DomainTokens {
			if strings.Contains(input, token) {
				return r.base.FactPrefix + r.pick(r.base.Facts) + r.base.FactSuffix, SourceFact
			}
		}
	}

	return r.base.OutOfDomain, SourceDefault
}

// Suggestions returns the suggested questions shown to new users
func (r *Resolver) Suggestions() []string {
	return r.base.Suggestions
}

// SampleSuggestions returns up to n distinct suggestions in random order
func (r *Resolver) SampleSuggestions(n int) []string {
	pool := append([]string(nil), r.base.Suggestions...)
	if n > len(pool) {
		n = len(pool)
	}
	for i := 0; i < n; i++ {
		j := i + r.rnd.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

func (r *Resolver) pick(answers []string) string {
	if len(answers) == 1 {
		return answers[0]
	}
	return answers[r.rnd.Intn(len(answers))]
}

// lockedRand makes *rand.Rand safe for the server's concurrent handlers.
type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func newLockedRand(seed int64) *lockedRand {
	return &lockedRand{rnd: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rnd.Intn(n)
}
