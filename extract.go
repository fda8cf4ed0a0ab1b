package simplepdf

import "strings"

// BlockKind identifies the type of an extracted content block.
type BlockKind int

// Block kinds, in no particular order of precedence.
const (
	KindHeading BlockKind = iota
	KindParagraph
	KindList
)

// String returns a human-readable name for the kind.
func (k BlockKind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindParagraph:
		return "paragraph"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Block is one typed unit of extracted content. Exactly one of the
// kind-specific fields is meaningful: Level and Text for headings,
// Text for paragraphs, Items for lists.
type Block struct {
	Kind  BlockKind
	Level int      // heading level, count of leading '#' (uncapped)
	Text  string   // heading or paragraph text
	Items []string // list items, in source order
}

// Extract scans text line by line and returns the content as an ordered
// sequence of typed blocks, preserving source order across all kinds.
//
// Classification rules, applied to each line after trimming surrounding
// whitespace:
//
//   - Lines starting with '#' are headings; the level is the count of
//     leading '#' characters and the text is the remainder, trimmed.
//   - Lines starting with "- ", "* ", or "+ " are list items; the item
//     text is the line with the two-character marker stripped, trimmed.
//     Consecutive list items form a single list block.
//   - Blank lines close any open paragraph or list and emit nothing.
//   - Any other line is accumulated into the open paragraph; paragraph
//     lines are joined with single spaces when the paragraph closes.
//
// Extract is pure: identical input always yields an identical sequence.
func Extract(text string) []Block {
	var (
		blocks    []Block
		paragraph []string
		items     []string
		inList    bool
	)

	flushParagraph := func() {
		if len(paragraph) > 0 {
			blocks = append(blocks, Block{Kind: KindParagraph, Text: strings.Join(paragraph, " ")})
			paragraph = nil
		}
	}
	flushList := func() {
		if inList {
			blocks = append(blocks, Block{Kind: KindList, Items: items})
			items = nil
			inList = false
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, "#"):
			flushParagraph()
			flushList()

			level := 0
			for _, ch := range line {
				if ch != '#' {
					break
				}
				level++
			}
			blocks = append(blocks, Block{
				Kind:  KindHeading,
				Level: level,
				Text:  strings.TrimSpace(line[level:]),
			})

		case isListItem(line):
			flushParagraph()
			inList = true
			items = append(items, strings.TrimSpace(line[2:]))

		case line == "":
			flushParagraph()
			flushList()

		default:
			flushList()
			paragraph = append(paragraph, line)
		}
	}

	flushParagraph()
	flushList()

	return blocks
}

// isListItem reports whether a trimmed line begins with an unordered
// list marker.
func isListItem(line string) bool {
	return strings.HasPrefix(line, "- ") ||
		strings.HasPrefix(line, "* ") ||
		strings.HasPrefix(line, "+ ")
}
