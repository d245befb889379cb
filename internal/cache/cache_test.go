package cache

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestKey_Normalizes(t *testing.T) {
	a := Key("  Quem ganhou a   Copa de 1970? ")
	b := Key("quem ganhou a copa de 1970?")
	if a != b {
		t.Errorf("expected equal keys, got %s and %s", a, b)
	}
	if !strings.HasPrefix(a, "footbot:v1:") {
		t.Errorf("unexpected key prefix: %s", a)
	}
	if Key("pelé") == Key("pele") {
		t.Error("expected accents to produce distinct keys")
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, ok := c.Get("missing"); ok {
		t.Error("expected miss")
	}

	if err := c.Set("k", []byte("v"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if v, ok := c.Get("k"); !ok || string(v) != "v" {
		t.Errorf("expected hit with v, got %q %v", v, ok)
	}
	_ = c.Delete("k")
	if _, ok := c.Get("k"); ok {
		t.Error("expected miss after delete")
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	_ = c.Set("k", []byte("v"), 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Error("expected expired entry to miss")
	}
}

func TestDiskCache(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)

	key := Key("qual seleção tem mais títulos")
	if err := c.Set(key, []byte("Brasil"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if v, ok := c.Get(key); !ok || string(v) != "Brasil" {
		t.Errorf("expected hit, got %q %v", v, ok)
	}

	// Survives a new instance over the same directory.
	if _, ok := NewDiskCache(dir, time.Hour).Get(key); !ok {
		t.Error("expected entry to persist on disk")
	}

	if err := c.Delete(key); err != nil {
		t.Errorf("delete failed: %v", err)
	}
	if err := c.Delete(key); err != nil {
		t.Errorf("expected deleting a missing key to succeed, got %v", err)
	}
}

func TestDiskCache_ExpiredAndCorrupt(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)

	_ = c.Set("old", []byte("x"), -time.Second)
	if _, ok := c.Get("old"); ok {
		t.Error("expected expired entry to miss")
	}

	if err := os.WriteFile(c.path("bad"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, ok := c.Get("bad"); ok {
		t.Error("expected corrupt entry to miss")
	}
	if _, err := os.Stat(c.path("bad")); !os.IsNotExist(err) {
		t.Error("expected corrupt entry to be removed")
	}
}

func TestDiskCache_ClearKeepsOtherFiles(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)
	_ = c.Set("a", []byte("1"), 0)
	_ = c.Set("b", []byte("2"), 0)

	other := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(other, []byte("keep"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if _, ok := c.Get("a"); ok {
		t.Error("expected cleared entry to miss")
	}
	if _, err := os.Stat(other); err != nil {
		t.Errorf("expected unrelated file to survive: %v", err)
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	_ = NewDiskCache(dir, time.Hour).Set("k", []byte("v"), 0)

	c := NewLayeredCache(time.Hour, dir)
	if v, ok := c.Get("k"); !ok || string(v) != "v" {
		t.Fatalf("expected disk hit, got %q %v", v, ok)
	}
	if _, ok := c.memory.Get("k"); !ok {
		t.Error("expected disk hit to be promoted to memory")
	}

	if err := c.Delete("k"); err != nil {
		t.Errorf("delete failed: %v", err)
	}
	if _, ok := c.Get("k"); ok {
		t.Error("expected miss after delete")
	}
}

func TestAnswerCache(t *testing.T) {
	c := NewAnswerCache(NewMemoryCache(time.Hour, time.Hour), time.Hour)

	if _, ok := c.Get("quem ganhou em 2002?"); ok {
		t.Error("expected miss")
	}

	if err := c.Put("Quem ganhou em 2002?", "O Brasil.", "groq"); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	a, ok := c.Get("  quem ganhou em 2002? ")
	if !ok {
		t.Fatal("expected hit for normalized question")
	}
	if a.Text != "O Brasil." || a.Provider != "groq" {
		t.Errorf("unexpected answer: %+v", a)
	}
	if a.Question != "quem ganhou em 2002?" {
		t.Errorf("expected normalized question, got %q", a.Question)
	}
}

func TestAnswerCache_CorruptEntry(t *testing.T) {
	store := NewMemoryCache(time.Hour, time.Hour)
	_ = store.Set(Key("oi"), []byte("garbage"), 0)

	c := NewAnswerCache(store, time.Hour)
	if _, ok := c.Get("oi"); ok {
		t.Error("expected corrupt entry to miss")
	}
	if _, ok := store.Get(Key("oi")); ok {
		t.Error("expected corrupt entry to be dropped")
	}
}
