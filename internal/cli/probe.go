package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/footbot/internal/model"
)

// healthCmd represents the health command
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check backend connectivity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c := newClient(cfg, newLogger(cfg), nil)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Health.Timeout)
		defer cancel()

		report := c.CheckHealth(ctx)
		fmt.Printf("%s  %s\n", statusLabel(report.Status), c.Endpoint())
		if report.Message != "" {
			fmt.Printf("  %s\n", report.Message)
		}
		if report.Status != model.HealthHealthy {
			return fmt.Errorf("backend unhealthy")
		}
		return nil
	},
}

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show backend metadata (GET /)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printMetadata(func(ctx context.Context, cfg *model.Config) map[string]any {
			return newClient(cfg, newLogger(cfg), nil).GetInfo(ctx)
		})
	},
}

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show detailed backend status (GET /status)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printMetadata(func(ctx context.Context, cfg *model.Config) map[string]any {
			return newClient(cfg, newLogger(cfg), nil).GetStatus(ctx)
		})
	},
}

func printMetadata(fetch func(context.Context, *model.Config) map[string]any) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Health.Timeout)
	defer cancel()

	data := fetch(ctx, cfg)
	if data == nil {
		return fmt.Errorf("backend at %s did not answer", cfg.Backend.Endpoint)
	}

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("format response: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(statusCmd)
}
