package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// AnswerFunc answers a single question
type AnswerFunc func(ctx context.Context, question string) (string, error)

// QuestionJob asks one question from a batch
type QuestionJob struct {
	Index    int
	Question string
	Answer   AnswerFunc
}

// Execute executes the question job
func (j *QuestionJob) Execute(ctx context.Context) Result {
	start := time.Now()
	answer, err := j.Answer(ctx, j.Question)
	return &QuestionResult{
		Index:    j.Index,
		Question: j.Question,
		Answer:   answer,
		Elapsed:  time.Since(start),
		Error:    err,
	}
}

// QuestionResult is the outcome of a QuestionJob
type QuestionResult struct {
	Index    int
	Question string
	Answer   string
	Elapsed  time.Duration
	Error    error
}

// GetError returns the error from the question result
func (r *QuestionResult) GetError() error {
	return r.Error
}

// BatchProcessor answers many questions concurrently
type BatchProcessor struct {
	answer      AnswerFunc
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(answer AnswerFunc, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		answer:      answer,
		concurrency: concurrency,
	}
}

// ProcessQuestions answers questions and returns results in input order.
// Questions never submitted because ctx was canceled get ctx's error.
func (b *BatchProcessor) ProcessQuestions(ctx context.Context, questions []string) []*QuestionResult {
	if len(questions) == 0 {
		return []*QuestionResult{}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	submitted := make([]bool, len(questions))
	for i, q := range questions {
		submitted[i] = pool.Submit(&QuestionJob{Index: i, Question: q, Answer: b.answer})
		if !submitted[i] {
			break
		}
	}

	results := pool.Wait()

	out := make([]*QuestionResult, 0, len(questions))
	done := make(map[int]bool, len(results))
	for _, r := range results {
		qr := r.(*QuestionResult)
		done[qr.Index] = true
		out = append(out, qr)
	}
	for i, q := range questions {
		if !done[i] {
			out = append(out, &QuestionResult{Index: i, Question: q, Error: fmt.Errorf("not processed: %w", context.Cause(ctx))})
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// ProcessFile reads questions from a file and answers them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*QuestionResult, error) {
	questions, err := ReadQuestionsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read questions: %w", err)
	}

	return b.ProcessQuestions(ctx, questions), nil
}

// ReadQuestionsFromFile reads one question per line, skipping blank lines,
// # comments and duplicates
func ReadQuestionsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var questions []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			questions = append(questions, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return questions, nil
}
