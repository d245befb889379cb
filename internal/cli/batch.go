package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/footbot/internal/worker"
)

var (
	concurrency  int
	batchTimeout time.Duration
	jsonOutput   bool
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Answer questions from a file in parallel",
	Long: `Batch answers many questions concurrently:
- Read questions from input file (one per line, # for comments)
- Answer them with a configurable number of workers
- Throttle backend requests with a token-bucket limiter
- Print answers in input order

Example:
  footbot batch questions.txt
  footbot batch questions.txt --concurrency 8 --timeout 5m
  footbot batch questions.txt --mode mock --json`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", 0, "number of concurrent workers (default: batch.concurrency)")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().BoolVar(&jsonOutput, "json", false, "print results as JSON")
}

type batchOutput struct {
	Question string  `json:"question"`
	Answer   string  `json:"answer,omitempty"`
	Error    string  `json:"error,omitempty"`
	Seconds  float64 `json:"seconds"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	limiter := worker.NewLimiter(cfg.Batch.RequestsPerSecond, cfg.Batch.Burst)

	a, err := newApp(limiter)
	if err != nil {
		return err
	}
	defer func() { _ = a.logger.Sync() }()

	workers := cfg.Batch.Concurrency
	if concurrency > 0 {
		workers = concurrency
	}

	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	answer := func(ctx context.Context, question string) (string, error) {
		reply, err := a.answerer.Answer(ctx, question)
		if err != nil {
			return "", err
		}
		return reply.Text, nil
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  FootBot Batch\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Mode:         %s\n", cfg.Mode)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", workers)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	processor := worker.NewBatchProcessor(answer, workers)
	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	failures := 0
	out := make([]batchOutput, 0, len(results))
	for _, r := range results {
		o := batchOutput{Question: r.Question, Answer: r.Answer, Seconds: r.Elapsed.Seconds()}
		if r.Error != nil {
			failures++
			o.Error = r.Error.Error()
		}
		out = append(out, o)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode results: %w", err)
		}
	} else {
		for i, o := range out {
			fmt.Printf("%d. %s\n", i+1, o.Question)
			if o.Error != "" {
				fmt.Printf("   ✗ %s\n\n", o.Error)
				continue
			}
			fmt.Printf("   %s\n\n", o.Answer)
		}
	}

	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d questions\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", len(results)-failures)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failures)
	fmt.Fprintf(os.Stderr, "\n")

	if failures > 0 {
		return fmt.Errorf("%d of %d questions failed", failures, len(results))
	}
	return nil
}
