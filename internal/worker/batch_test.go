package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func echoAnswer(ctx context.Context, question string) (string, error) {
	// Later questions finish first so completion order differs from input order.
	time.Sleep(time.Duration(10-len(question)%10) * time.Millisecond)
	if strings.Contains(question, "erro") {
		return "", errors.New("backend down")
	}
	return "resposta: " + question, nil
}

func TestBatchProcessor_ProcessQuestions(t *testing.T) {
	processor := NewBatchProcessor(echoAnswer, 3)

	questions := []string{"messi", "quem ganhou a copa de 1970", "pelé", "erro aqui", "brasileirão"}
	results := processor.ProcessQuestions(context.Background(), questions)

	if len(results) != len(questions) {
		t.Fatalf("expected %d results, got %d", len(questions), len(results))
	}

	for i, res := range results {
		if res.Index != i || res.Question != questions[i] {
			t.Errorf("result %d out of order: %+v", i, res)
		}
		if questions[i] == "erro aqui" {
			if res.Error == nil {
				t.Errorf("expected error for %q", questions[i])
			}
			continue
		}
		if res.Error != nil {
			t.Errorf("unexpected error for %q: %v", questions[i], res.Error)
		}
		if res.Answer != "resposta: "+questions[i] {
			t.Errorf("unexpected answer for %q: %s", questions[i], res.Answer)
		}
	}
}

func TestBatchProcessor_Empty(t *testing.T) {
	processor := NewBatchProcessor(echoAnswer, 2)
	if results := processor.ProcessQuestions(context.Background(), nil); len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestBatchProcessor_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	processor := NewBatchProcessor(echoAnswer, 1)
	questions := []string{"a", "b", "c"}
	results := processor.ProcessQuestions(ctx, questions)

	if len(results) != len(questions) {
		t.Fatalf("expected a result per question, got %d", len(results))
	}
	for i, res := range results {
		if res.Index != i {
			t.Errorf("expected index %d, got %d", i, res.Index)
		}
	}
}

func TestReadQuestionsFromFile(t *testing.T) {
	content := `# perguntas do dia
Quem ganhou a Copa de 1970?

Qual a história do Pelé?
Quem ganhou a Copa de 1970?
   Quantas Champions League o Real Madrid tem?
`
	path := filepath.Join(t.TempDir(), "questions.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	questions, err := ReadQuestionsFromFile(path)
	if err != nil {
		t.Fatalf("ReadQuestionsFromFile failed: %v", err)
	}

	want := []string{
		"Quem ganhou a Copa de 1970?",
		"Qual a história do Pelé?",
		"Quantas Champions League o Real Madrid tem?",
	}
	if len(questions) != len(want) {
		t.Fatalf("expected %d questions, got %d: %v", len(want), len(questions), questions)
	}
	for i := range want {
		if questions[i] != want[i] {
			t.Errorf("question %d: expected %q, got %q", i, want[i], questions[i])
		}
	}
}

func TestProcessFile_Missing(t *testing.T) {
	processor := NewBatchProcessor(echoAnswer, 1)
	if _, err := processor.ProcessFile(context.Background(), filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}
