package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppiankov/footbot/internal/chat"
)

var errAnswerFailed = errors.New("question could not be answered")

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a single question",
	Long: `Ask one question and print the answer.

Example:
  footbot ask "Quem ganhou a Copa de 1970?"
  footbot ask --mode mock messi`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	a, err := newApp(nil)
	if err != nil {
		return err
	}
	defer func() { _ = a.logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := chat.NewSession(a.answerer, a.logger)
	reply, err := session.Send(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	if reply == nil {
		return fmt.Errorf("empty question")
	}

	fmt.Println(reply.Content)
	if reply.IsError {
		return errAnswerFailed
	}
	return nil
}
