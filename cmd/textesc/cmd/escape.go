package cmd

import (
	"github.com/spf13/cobra"
)

var escapeCmd = &cobra.Command{
	Use:   "escape [file]",
	Short: "Escape literal text",
	Long: `Reads text from a file or standard input, escapes it in the chosen
format and writes the result to standard output.

Most formats stream, so arbitrarily large input is fine. The csv
format treats each input line as one value to quote.

Examples:
  textesc escape --format java notes.txt
  echo 'He said "hi"' | textesc escape -f json
  textesc escape -f csv values.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEscape,
}

func init() {
	rootCmd.AddCommand(escapeCmd)
}

func runEscape(cmd *cobra.Command, args []string) error {
	return runTranslate(cmd, args, directionEscape)
}
