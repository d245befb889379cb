package cache

import (
	"encoding/json"
	"fmt"
	"time"
)

// Answer is a cached backend reply
type Answer struct {
	Question  string    `json:"question"`
	Text      string    `json:"text"`
	Provider  string    `json:"provider"`
	CreatedAt time.Time `json:"created_at"`
}

// AnswerCache stores answers keyed by normalized question
type AnswerCache struct {
	store Cache
	ttl   time.Duration
}

// NewAnswerCache wraps store. ttl is used for every entry.
func NewAnswerCache(store Cache, ttl time.Duration) *AnswerCache {
	return &AnswerCache{store: store, ttl: ttl}
}

// Get looks up question. Undecodable entries are dropped and reported as misses.
func (c *AnswerCache) Get(question string) (*Answer, bool) {
	key := Key(question)
	data, ok := c.store.Get(key)
	if !ok {
		return nil, false
	}

	var a Answer
	if err := json.Unmarshal(data, &a); err != nil {
		_ = c.store.Delete(key)
		return nil, false
	}
	return &a, true
}

// Put stores the answer to question
func (c *AnswerCache) Put(question, text, provider string) error {
	data, err := json.Marshal(Answer{
		Question:  Normalize(question),
		Text:      text,
		Provider:  provider,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal answer: %w", err)
	}
	return c.store.Set(Key(question), data, c.ttl)
}

// Clear drops every cached answer
func (c *AnswerCache) Clear() error {
	return c.store.Clear()
}
