package escape

import "fmt"

// The chain for each flavor is assembled once and never mutated, so
// the package-level functions are safe for concurrent use.

var escapeJava = Chain(
	Lookup(map[string]string{
		`"`: `\"`,
		`\`: `\\`,
	}),
	Lookup(javaCtrlEscapes),
	UnicodeEscaperOutside(Between(0x20, 0x7e)),
)

var escapeECMAScript = Chain(
	Lookup(map[string]string{
		`'`: `\'`,
		`"`: `\"`,
		`\`: `\\`,
		`/`: `\/`,
	}),
	Lookup(javaCtrlEscapes),
	UnicodeEscaperOutside(Between(0x20, 0x7e)),
)

var escapeJSON = Chain(
	Lookup(map[string]string{
		`"`: `\"`,
		`\`: `\\`,
		`/`: `\/`,
	}),
	Lookup(javaCtrlEscapes),
	UnicodeEscaperOutside(Between(0x20, 0x7e)),
)

// unescapeJava reverses all three of the Java-family flavors. The order
// matters: octal and unicode sequences must be tried before the
// single-character lookups so that \101 and A are not mistaken
// for a dropped backslash followed by ordinary text.
var unescapeJava = Chain(
	OctalUnescaper(),
	UnicodeUnescaper(),
	Lookup(invert(javaCtrlEscapes)),
	Lookup(map[string]string{
		`\\`: `\`,
		`\"`: `"`,
		`\'`: `'`,
		`\`:  "",
	}),
)

var escapeHTML3 = Chain(
	Lookup(basicEntities),
	Lookup(iso8859Entities),
)

var unescapeHTML3 = Chain(
	Lookup(invert(basicEntities)),
	Lookup(invert(iso8859Entities)),
	EntityUnescaper(SemicolonRequired),
)

var escapeHTML4 = Chain(
	Lookup(basicEntities),
	Lookup(iso8859Entities),
	Lookup(html4Entities),
)

var unescapeHTML4 = Chain(
	Lookup(invert(basicEntities)),
	Lookup(invert(iso8859Entities)),
	Lookup(invert(html4Entities)),
	EntityUnescaper(SemicolonRequired),
)

var escapeXML10 = Chain(
	Lookup(basicEntities),
	Lookup(aposEntity),
	EntityEscaper(Between(0x7f, 0x84)),
	EntityEscaper(Between(0x86, 0x9f)),
	stripOutside(xml10Chars),
)

var escapeXML11 = Chain(
	Lookup(basicEntities),
	Lookup(aposEntity),
	Lookup(map[string]string{
		"\x0b": "&#11;",
		"\x0c": "&#12;",
	}),
	EntityEscaper(Between(0x01, 0x08)),
	EntityEscaper(Between(0x0e, 0x1f)),
	EntityEscaper(Between(0x7f, 0x84)),
	EntityEscaper(Between(0x86, 0x9f)),
	stripOutside(xml11Chars),
)

var unescapeXML = Chain(
	Lookup(invert(basicEntities)),
	Lookup(invert(aposEntity)),
	EntityUnescaper(SemicolonRequired),
)

var (
	escapeCSVValue   = CSVEscaper()
	unescapeCSVValue = CSVUnescaper()
)

// Java escapes s as the body of a Java string literal. Double quotes
// and backslashes gain a leading backslash, control characters with a
// short escape form use it, and every codepoint outside printable
// ASCII becomes a \uXXXX escape.
func Java(s string) string {
	return mustTranslate(escapeJava, s)
}

// ECMAScript escapes s as the body of an ECMAScript string literal.
// It escapes everything Java does plus single quotes and forward
// slashes, so the result may be placed in either quoting style and
// cannot terminate a script element early.
func ECMAScript(s string) string {
	return mustTranslate(escapeECMAScript, s)
}

// JSON escapes s as the body of a JSON string value. It escapes
// everything Java does plus forward slashes; single quotes are left
// alone.
func JSON(s string) string {
	return mustTranslate(escapeJSON, s)
}

// UnescapeJava reverses Java. Octal escapes, \uXXXX escapes and the
// short control forms are decoded; a backslash before any other
// character is dropped. A truncated or malformed \uXXXX sequence
// returns an error satisfying errors.Is(err, ErrInvalidUnicodeEscape)
// rather than corrupt output.
func UnescapeJava(s string) (string, error) {
	return Translate(unescapeJava, s)
}

// UnescapeECMAScript reverses ECMAScript. It decodes the same
// sequences as UnescapeJava.
func UnescapeECMAScript(s string) (string, error) {
	return Translate(unescapeJava, s)
}

// UnescapeJSON reverses JSON. It decodes the same sequences as
// UnescapeJava.
func UnescapeJSON(s string) (string, error) {
	return Translate(unescapeJava, s)
}

// HTML3 escapes s for an HTML 3.2 document, using the basic entities
// and the named entities for ISO-8859-1 characters.
func HTML3(s string) string {
	return mustTranslate(escapeHTML3, s)
}

// UnescapeHTML3 reverses HTML3 and additionally decodes numeric
// character references. Malformed references pass through unchanged.
func UnescapeHTML3(s string) string {
	return mustTranslate(unescapeHTML3, s)
}

// HTML4 escapes s for an HTML 4.0 document. It extends HTML3 with the
// named entities for symbols, Greek letters, punctuation and the
// markup-significant characters.
func HTML4(s string) string {
	return mustTranslate(escapeHTML4, s)
}

// UnescapeHTML4 reverses HTML4 and additionally decodes numeric
// character references. Malformed references pass through unchanged.
func UnescapeHTML4(s string) string {
	return mustTranslate(unescapeHTML4, s)
}

// XML10 escapes s for an XML 1.0 document. The five predefined
// entities are used, the C1 control range is escaped numerically, and
// codepoints that may not appear in a 1.0 document at all are removed.
func XML10(s string) string {
	return mustTranslate(escapeXML10, s)
}

// XML11 escapes s for an XML 1.1 document. Compared with XML10 the C0
// controls other than NUL are legal and escaped numerically; NUL and
// other prohibited codepoints are removed.
func XML11(s string) string {
	return mustTranslate(escapeXML11, s)
}

// UnescapeXML reverses XML10 and XML11: the five predefined entities
// and numeric character references are decoded. Malformed references
// pass through unchanged. Stripped codepoints are gone for good, so a
// round trip reproduces the input only when the input was legal for
// the document type.
func UnescapeXML(s string) string {
	return mustTranslate(unescapeXML, s)
}

// CSV renders s as a single CSV column, quoting it only when a comma,
// quote, CR or LF forces it. See CSVEscaper.
func CSV(s string) string {
	return mustTranslate(escapeCSVValue, s)
}

// UnescapeCSV reverses CSV. See CSVUnescaper.
func UnescapeCSV(s string) string {
	return mustTranslate(unescapeCSVValue, s)
}

// The translator behind each flavor is available for composition with
// Chain and for streaming through NewTransformer.

// JavaEscaper returns the translator that Java applies.
func JavaEscaper() Translator { return escapeJava }

// ECMAScriptEscaper returns the translator that ECMAScript applies.
func ECMAScriptEscaper() Translator { return escapeECMAScript }

// JSONEscaper returns the translator that JSON applies.
func JSONEscaper() Translator { return escapeJSON }

// JavaUnescaper returns the translator that UnescapeJava applies.
// UnescapeECMAScript and UnescapeJSON apply the same one.
func JavaUnescaper() Translator { return unescapeJava }

// HTML3Escaper returns the translator that HTML3 applies.
func HTML3Escaper() Translator { return escapeHTML3 }

// HTML3Unescaper returns the translator that UnescapeHTML3 applies.
func HTML3Unescaper() Translator { return unescapeHTML3 }

// HTML4Escaper returns the translator that HTML4 applies.
func HTML4Escaper() Translator { return escapeHTML4 }

// HTML4Unescaper returns the translator that UnescapeHTML4 applies.
func HTML4Unescaper() Translator { return unescapeHTML4 }

// XML10Escaper returns the translator that XML10 applies.
func XML10Escaper() Translator { return escapeXML10 }

// XML11Escaper returns the translator that XML11 applies.
func XML11Escaper() Translator { return escapeXML11 }

// XMLUnescaper returns the translator that UnescapeXML applies. It
// reverses both document versions.
func XMLUnescaper() Translator { return unescapeXML }

// mustTranslate runs chains that have no failing elements; only
// unicode unescaping can fail, and the chains here do not include it.
func mustTranslate(t Translator, s string) string {
	out, err := Translate(t, s)
	if err != nil {
		panic(fmt.Errorf("translator failed on %q: %w", s, err))
	}
	return out
}
