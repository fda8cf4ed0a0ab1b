// Package simplepdf converts plain text or Markdown content into simple
// PDF documents, prioritizing content and structure preservation over
// visual fidelity. The output is intended for downstream machine
// processing, not publishing-quality typesetting.
//
// # Quick Start
//
// Create a service and convert text:
//
//	svc := simplepdf.New()
//
//	result, err := svc.Convert(ctx, simplepdf.Input{
//	    Text:     "# Hello\n\nWorld",
//	    Markdown: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Path)
//
// The result contains the path of the written PDF (result.Path) and the
// document bytes (result.PDF). When Input.OutputPath is empty, the file
// is written to a uniquely named temporary path.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Line-ending normalization (CRLF/CR to LF)
//  2. Structure extraction for Markdown input (headings, paragraphs,
//     list items), skipped for plain text
//  3. Text sanitization to pure ASCII (fixed punctuation replacement
//     table, unknown glyphs become spaces)
//  4. PDF rendering via fpdf with automatic page breaks
//
// Structure extraction handles a deliberately small Markdown subset:
// ATX headings, flat unordered lists (-, *, +), and blank-line-separated
// paragraphs. Inline formatting, nested lists, and tables are not
// interpreted; their source text flows through as-is.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := simplepdf.New(
//	    simplepdf.WithLogger(logger),
//	    simplepdf.WithPageSettings(&simplepdf.PageSettings{
//	        Size:        simplepdf.PageSizeLetter,
//	        Orientation: simplepdf.OrientationPortrait,
//	        Margin:      0.5,
//	    }),
//	)
//
// # Error Recovery
//
// Rendering is defensive: a block that fails to render is replaced with
// a fixed placeholder string and generation continues. A whole-document
// write failure caused by content produces a minimal fallback document
// at the same path. Only an unwritable destination is reported as an
// error. Recovered failures are logged through the configured logger.
package simplepdf
