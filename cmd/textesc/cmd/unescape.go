package cmd

import (
	"github.com/spf13/cobra"
)

var unescapeCmd = &cobra.Command{
	Use:   "unescape [file]",
	Short: "Decode escaped text",
	Long: `Reads escaped text from a file or standard input, decodes it and
writes the literal form to standard output.

The java, ecmascript and json formats share one decoder and fail on a
truncated or malformed \uXXXX sequence. The other formats leave
anything they do not recognize untouched.

Examples:
  textesc unescape --format java strings.txt
  echo '&lt;b&gt;' | textesc unescape -f html4
  textesc unescape -f csv values.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUnescape,
}

func init() {
	rootCmd.AddCommand(unescapeCmd)
}

func runUnescape(cmd *cobra.Command, args []string) error {
	return runTranslate(cmd, args, directionUnescape)
}
