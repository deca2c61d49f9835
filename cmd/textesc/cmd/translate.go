package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"golang.org/x/text/transform"

	"github.com/commonkit/lang/escape"
	"github.com/commonkit/lang/validate"
)

type direction int

const (
	directionEscape direction = iota
	directionUnescape
)

// format pairs the translators for one escaping style. Whole-value
// formats are applied line by line instead of streamed.
type format struct {
	describe   string
	escaper    escape.Translator
	unescaper  escape.Translator
	wholeValue bool
}

var formats = map[string]format{
	"java": {
		describe:  "Java string literal escapes",
		escaper:   escape.JavaEscaper(),
		unescaper: escape.JavaUnescaper(),
	},
	"ecmascript": {
		describe:  "ECMAScript string literal escapes (also escapes ' and /)",
		escaper:   escape.ECMAScriptEscaper(),
		unescaper: escape.JavaUnescaper(),
	},
	"json": {
		describe:  "JSON string escapes",
		escaper:   escape.JSONEscaper(),
		unescaper: escape.JavaUnescaper(),
	},
	"html3": {
		describe:  "HTML 3.2 named entities",
		escaper:   escape.HTML3Escaper(),
		unescaper: escape.HTML3Unescaper(),
	},
	"html4": {
		describe:  "HTML 4.0 named entities",
		escaper:   escape.HTML4Escaper(),
		unescaper: escape.HTML4Unescaper(),
	},
	"xml10": {
		describe:  "XML 1.0 entities, removing prohibited codepoints",
		escaper:   escape.XML10Escaper(),
		unescaper: escape.XMLUnescaper(),
	},
	"xml11": {
		describe:  "XML 1.1 entities, removing prohibited codepoints",
		escaper:   escape.XML11Escaper(),
		unescaper: escape.XMLUnescaper(),
	},
	"csv": {
		describe:   "CSV column quoting, one value per line",
		escaper:    escape.CSVEscaper(),
		unescaper:  escape.CSVUnescaper(),
		wholeValue: true,
	},
}

func runTranslate(cmd *cobra.Command, args []string, dir direction) error {
	f, ok := formats[formatName]
	if !ok {
		return fmt.Errorf("unknown format %q; run 'textesc formats' for the list", formatName)
	}
	tr := f.escaper
	if dir == directionUnescape {
		tr = f.unescaper
	}

	in := io.Reader(os.Stdin)
	name := "stdin"
	if len(args) == 1 {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()
		in = file
		name = args[0]
	}

	if f.wholeValue {
		if tableFile != "" {
			return fmt.Errorf("--table cannot be combined with the %s format", formatName)
		}
		return translateLines(in, name, tr)
	}

	if tableFile != "" {
		custom, err := loadTable(tableFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("format") {
			tr = escape.Chain(custom, tr)
		} else {
			tr = custom
		}
	}
	return translateStream(in, name, tr)
}

func translateStream(in io.Reader, name string, tr escape.Translator) error {
	r := transform.NewReader(in, escape.NewTransformer(tr))
	if _, err := io.Copy(os.Stdout, r); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func translateLines(in io.Reader, name string, tr escape.Translator) error {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	w := bufio.NewWriter(os.Stdout)
	for sc.Scan() {
		out, err := escape.Translate(tr, sc.Text())
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		fmt.Fprintln(w, out)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return w.Flush()
}

// loadTable reads a TOML file whose [replace] table maps patterns to
// replacement text and builds a Lookup translator from it.
func loadTable(path string) (escape.Translator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg struct {
		Replace map[string]string `toml:"replace"`
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(cfg.Replace) == 0 {
		return nil, fmt.Errorf("%s: no [replace] table", path)
	}
	for pat := range cfg.Replace {
		if err := validate.NotEmptyString(pat); err != nil {
			return nil, fmt.Errorf("%s: replace pattern: %w", path, err)
		}
	}
	return escape.Lookup(cfg.Replace), nil
}
