package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/footbot/internal/logger"
	"github.com/ppiankov/footbot/internal/model"
)

var (
	cfgFile  string
	verbose  bool
	mode     string
	endpoint string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "footbot",
	Short: "FootBot - football trivia chat assistant",
	Long: `FootBot answers football and FIFA World Cup questions.

Answers come either from a local keyword table (mock mode) or from a
FootBot backend over HTTP (remote mode). The same binary can host that
backend with 'footbot serve'.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("footbot v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.footbot/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&mode, "mode", "", "answer mode: mock or remote")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "backend base URL (remote mode)")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("mode", rootCmd.PersistentFlags().Lookup("mode"))
	_ = viper.BindPFlag("backend.endpoint", rootCmd.PersistentFlags().Lookup("endpoint"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in .env, config file and ENV variables
func initConfig() {
	// A missing .env is normal
	_ = godotenv.Load()

	if err := setDefaults(model.DefaultConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading defaults: %v\n", err)
	}

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.footbot")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match FOOTBOT_*, e.g. FOOTBOT_BACKEND_ENDPOINT
	viper.SetEnvPrefix("FOOTBOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	_ = viper.BindEnv("llm.api_key", "FOOTBOT_LLM_API_KEY", "GROQ_API_KEY")

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// setDefaults registers every field of cfg as a viper default so that env
// variables can override keys absent from the config file
func setDefaults(cfg *model.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal defaults: %w", err)
	}

	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return fmt.Errorf("unmarshal defaults: %w", err)
	}

	var walk func(prefix string, m map[string]any)
	walk = func(prefix string, m map[string]any) {
		for k, v := range m {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			if sub, ok := v.(map[string]any); ok {
				walk(key, sub)
				continue
			}
			viper.SetDefault(key, v)
		}
	}
	walk("", tree)
	return nil
}

// loadConfig merges defaults, config file, env and flags, then validates
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.Mode = strings.ToLower(cfg.Mode)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the CLI logger; --verbose forces debug
func newLogger(cfg *model.Config) *zap.Logger {
	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}

	l, err := logger.New(logger.Options{Level: level, Console: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		return zap.NewNop()
	}
	return l
}
