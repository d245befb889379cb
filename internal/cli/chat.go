package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/footbot/internal/chat"
	"github.com/ppiankov/footbot/internal/health"
	"github.com/ppiankov/footbot/internal/model"
)

const (
	welcomeTitle    = "⚽ Bem-vindo ao FootBot!"
	welcomeSubtitle = "Sou seu assistente especializado em futebol. Posso responder sobre jogadores, times, competições, história e curiosidades do mundo do futebol."
	inputHint       = "Pergunte sobre futebol... (Ex: Quando foi a última Copa do Mundo?)"
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat",
	Long: `Start an interactive conversation with FootBot.

Commands inside the chat:
  /status     show backend connectivity
  /limpar     clear the conversation
  /sair       quit`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a, err := newApp(nil, health.OnChange(func(r model.HealthReport) {
		fmt.Fprintf(os.Stderr, "\n[%s] %s\n", statusLabel(r.Status), r.Message)
	}))
	if err != nil {
		return err
	}
	defer func() { _ = a.logger.Sync() }()

	if a.monitor != nil {
		a.monitor.Start(ctx)
	}

	session := chat.NewSession(a.answerer, a.logger)
	printWelcome(os.Stdout, a)
	return chatLoop(ctx, os.Stdin, os.Stdout, session, a)
}

func printWelcome(w io.Writer, a *app) {
	fmt.Fprintln(w, welcomeTitle)
	fmt.Fprintln(w, welcomeSubtitle)
	fmt.Fprintln(w)

	if a.client != nil {
		fmt.Fprintf(w, "  Modo: remoto (%s)\n\n", a.client.Endpoint())
	} else {
		fmt.Fprintf(w, "  Modo: local\n\n")
	}

	fmt.Fprintln(w, "Sugestões:")
	for _, s := range a.resolver.SampleSuggestions(4) {
		fmt.Fprintf(w, "  • %s\n", s)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, inputHint)
}

// chatLoop reads one message per line until EOF, /sair or ctx is done
func chatLoop(ctx context.Context, in io.Reader, out io.Writer, session *chat.Session, a *app) error {
	lines := make(chan string)
	var scanErr error
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr = scanner.Err()
	}()

	for {
		fmt.Fprint(out, "\n> ")

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return nil
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				return scanErr
			}
			line = strings.TrimSpace(l)
		}

		switch line {
		case "":
			continue
		case "/sair", "/exit", "/quit":
			return nil
		case "/limpar":
			session.Reset()
			fmt.Fprintln(out, "Conversa limpa.")
			continue
		case "/status":
			printStatus(out, a)
			continue
		}

		reply, err := awaitReply(ctx, out, session, line)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if reply != nil {
			fmt.Fprintf(out, "\n%s\n", reply.Content)
		}
	}
}

// typingDelay is how long a reply may take before the typing line is shown
var typingDelay = 300 * time.Millisecond

// awaitReply sends line and shows the typing indicator while the session
// reports a pending reply
func awaitReply(ctx context.Context, out io.Writer, session *chat.Session, line string) (*model.Message, error) {
	type result struct {
		reply *model.Message
		err   error
	}
	done := make(chan result, 1)
	go func() {
		reply, err := session.Send(ctx, line)
		done <- result{reply, err}
	}()

	ticker := time.NewTicker(typingDelay)
	defer ticker.Stop()

	shown := false
	for {
		select {
		case r := <-done:
			return r.reply, r.err
		case <-ticker.C:
			if !shown && session.Typing() {
				fmt.Fprintln(out, "FootBot está digitando...")
				shown = true
			}
		}
	}
}

func printStatus(w io.Writer, a *app) {
	if a.monitor == nil {
		fmt.Fprintln(w, "Modo local: nenhum servidor em uso.")
		return
	}
	report := a.monitor.Report()
	fmt.Fprintf(w, "%s  %s\n", statusLabel(report.Status), a.client.Endpoint())
	if report.Message != "" {
		fmt.Fprintf(w, "  %s\n", report.Message)
	}
}
