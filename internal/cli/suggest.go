package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var suggestCount int

// suggestCmd represents the suggest command
var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Print suggested questions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		res, err := newResolver(cfg)
		if err != nil {
			return err
		}

		suggestions := res.Suggestions()
		if suggestCount > 0 {
			suggestions = res.SampleSuggestions(suggestCount)
		}
		for _, s := range suggestions {
			fmt.Println(s)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)
	suggestCmd.Flags().IntVarP(&suggestCount, "random", "n", 0, "print n random suggestions instead of all")
}
