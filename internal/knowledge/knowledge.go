// Package knowledge holds the static football data FootBot answers from.
//
// Every table is an ordered slice: the position of an entry is its match
// priority, so resolution never depends on map iteration order.
package knowledge

import (
	"fmt"
	"strings"
)

// Entry maps a lowercase keyword (or normalized question) to candidate answers
type Entry struct {
	Key     string   `yaml:"key"`
	Answers []string `yaml:"answers"`
}

// Base is the complete knowledge set used by the resolver
type Base struct {
	Keywords     []Entry  `yaml:"keywords"`
	FAQ          []Entry  `yaml:"faq"`
	Facts        []string `yaml:"facts"`
	DomainTokens []string `yaml:"domain_tokens"`
	FactPrefix   string   `yaml:"fact_prefix"`
	FactSuffix   string   `yaml:"fact_suffix"`
	OutOfDomain  string   `yaml:"out_of_domain"`
	Suggestions  []string `yaml:"suggestions"`
	QuickAnswers []Entry  `yaml:"quick_answers"`
}

// Default returns the built-in knowledge base
func Default() *Base {
	return &Base{
		Keywords:     keywordTable,
		FAQ:          faqTable,
		Facts:        factPool,
		DomainTokens: domainTokens,
		FactPrefix:   factPrefix,
		FactSuffix:   factSuffix,
		OutOfDomain:  outOfDomainMessage,
		Suggestions:  suggestedQuestions,
		QuickAnswers: quickAnswers,
	}
}

// Validate checks the table invariants: unique lowercase keys and non-empty answer lists
func (b *Base) Validate() error {
	if err := validateTable("keywords", b.Keywords); err != nil {
		return err
	}
	if err := validateTable("faq", b.FAQ); err != nil {
		return err
	}
	if err := validateTable("quick_answers", b.QuickAnswers); err != nil {
		return err
	}
	if len(b.Facts) == 0 && len(b.DomainTokens) > 0 {
		return fmt.Errorf("facts: domain tokens configured but fact pool is empty")
	}
	if strings.TrimSpace(b.OutOfDomain) == "" {
		return fmt.Errorf("out_of_domain message cannot be empty")
	}
	return nil
}

func validateTable(name string, entries []Entry) error {
	seen := make(map[string]bool, len(entries))
	for i, e := range entries {
		if e.Key == "" {
			return fmt.Errorf("%s[%d]: empty key", name, i)
		}
		if e.Key != strings.ToLower(e.Key) {
			return fmt.Errorf("%s[%d]: key %q must be lowercase", name, i, e.Key)
		}
		if seen[e.Key] {
			return fmt.Errorf("%s[%d]: duplicate key %q", name, i, e.Key)
		}
		seen[e.Key] = true
		if len(e.Answers) == 0 {
			return fmt.Errorf("%s[%d]: key %q has no answers", name, i, e.Key)
		}
		for j, a := range e.Answers {
			if strings.TrimSpace(a) == "" {
				return fmt.Errorf("%s[%d]: key %q answer %d is empty", name, i, e.Key, j)
			}
		}
	}
	return nil
}

// QuickAnswer returns the exact-match quick answer for a message, if any
func (b *Base) QuickAnswer(message string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(message))
	for _, e := range b.QuickAnswers {
		if e.Key == key {
			return e.Answers[0], true
		}
	}
	return "", false
}
