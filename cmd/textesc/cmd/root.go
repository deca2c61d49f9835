package cmd

import (
	"github.com/spf13/cobra"
)

var (
	formatName string
	tableFile  string
)

var rootCmd = &cobra.Command{
	Use:   "textesc",
	Short: "Escape and unescape text for Java, HTML, XML and CSV",
	Long: `textesc rewrites text between its literal and escaped forms.

Examples:
  textesc escape --format java notes.txt      # escape a file
  echo '<b>bold</b>' | textesc unescape -f html4
  textesc escape -f csv values.txt            # quote one value per line
  textesc escape --table subst.toml in.txt    # apply a custom table`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&formatName, "format", "f", "java", "escaping format (run 'textesc formats' for the list)")
	rootCmd.PersistentFlags().StringVarP(&tableFile, "table", "t", "", "TOML file with a [replace] table of custom substitutions")
}
