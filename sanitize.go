package simplepdf

import "strings"

// asciiReplacements maps non-ASCII punctuation and symbols to ASCII-safe
// substitutes. Constant data, never mutated.
var asciiReplacements = map[rune]string{
	'•': "-",   // bullet
	'–': "-",   // en dash
	'—': "-",   // em dash
	'‘': "'",   // left single quote
	'’': "'",   // right single quote
	'“': `"`,   // left double quote
	'”': `"`,   // right double quote
	'…': "...", // ellipsis
	'≤': "<=",
	'≥': ">=",
	'©': "(c)",
	'®': "(R)",
	'™': "(TM)",
	'°': " degrees",
	'±': "+/-",
	'×': "x",
	'÷': "/",
	'½': "1/2",
	'¼': "1/4",
	'¾': "3/4",
}

// Sanitize returns s with every code point above 127 either mapped
// through the replacement table or replaced by a single space. The
// result is guaranteed pure ASCII; the rendering backend's core fonts
// cannot represent arbitrary Unicode glyphs, and a space preserves more
// content fidelity than an unsupported-character box.
//
// Sanitize is idempotent: all replacements are themselves pure ASCII.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		switch {
		case r <= 127:
			b.WriteRune(r)
		default:
			if repl, ok := asciiReplacements[r]; ok {
				b.WriteString(repl)
			} else {
				b.WriteByte(' ')
			}
		}
	}

	return b.String()
}
