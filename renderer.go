package simplepdf

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/mrwadams/simple-pdf-generator/internal/fileutil"
)

// Layout constants, in millimeters (backend unit).
const (
	lineHeight      = 10 // height of one text line
	blockGap        = 5  // gap after a paragraph or heading
	headingGap      = 10 // gap before a heading
	listMarkerWidth = 10 // width of the list marker cell
	pageBreakMargin = 15 // auto page break bottom margin
	fullWidth       = 0  // fpdf: cell extends to the right margin
	mmPerInch       = 25.4
	bodyFontFamily  = "Arial"
	bodyFontSize    = 12
	listMarker      = "-"
)

// headingSizes maps heading level to font size in points. Constant
// data, never mutated; levels outside the table fall back to
// fallbackHeadingSize.
var headingSizes = map[int]float64{
	1: 24,
	2: 20,
	3: 16,
	4: 14,
	5: 12,
	6: 12,
}

const fallbackHeadingSize = 12

// Placeholder strings substituted when a block fails to render.
const (
	paragraphPlaceholder = "[Text contains unsupported characters]"
	listItemPlaceholder  = "[Item contains unsupported characters]"
)

// Fallback document lines, written when the whole document fails to
// render for content reasons.
const (
	fallbackLine1 = "This document could not be rendered."
	fallbackLine2 = "The original content contained unsupported elements."
)

// Renderer writes sanitized content blocks into a PDF document and
// finalizes it to a file. A Renderer serves exactly one document: create
// it, add content, call Render once. It is not safe for concurrent use
// and must not be reused across conversions.
type Renderer struct {
	pdf    *fpdf.Fpdf
	page   PageSettings
	logger *slog.Logger
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithRendererPage sets the page geometry. Invalid or nil settings are
// ignored in favor of defaults; validation belongs to the caller.
func WithRendererPage(p *PageSettings) RendererOption {
	return func(r *Renderer) {
		if p != nil && p.Validate() == nil {
			r.page = *p
		}
	}
}

// WithRendererLogger sets the logger used to report recovered
// per-block rendering failures.
func WithRendererLogger(l *slog.Logger) RendererOption {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRenderer creates a renderer with an open first page and the body
// font selected.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		page:   *DefaultPageSettings(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.pdf = fpdf.New(fpdfOrientation(r.page.Orientation), "mm", fpdfPageSize(r.page.Size), "")
	r.pdf.SetAutoPageBreak(true, pageBreakMargin)
	margin := r.page.Margin * mmPerInch
	r.pdf.SetMargins(margin, margin, margin)
	r.pdf.AddPage()
	r.pdf.SetFont(bodyFontFamily, "", bodyFontSize)

	return r
}

// AddHeading writes text as a bold full-width line at the size mapped
// from the heading level, then restores the body font. On a rendering
// failure the heading is replaced with "Heading level N" and the
// document continues.
func (r *Renderer) AddHeading(text string, level int) {
	r.pdf.SetFont(bodyFontFamily, "B", headingSize(level))
	r.pdf.Ln(headingGap)

	r.pdf.CellFormat(fullWidth, lineHeight, Sanitize(text), "", 1, "", false, 0, "")
	if r.recoverBlock("heading") {
		r.pdf.CellFormat(fullWidth, lineHeight, fmt.Sprintf("Heading level %d", level), "", 1, "", false, 0, "")
	}

	r.pdf.Ln(blockGap)
	r.pdf.SetFont(bodyFontFamily, "", bodyFontSize)
}

// AddParagraph writes text as a wrapped multi-line block at body size,
// followed by a fixed gap. On a rendering failure the paragraph is
// replaced with a placeholder and the document continues.
func (r *Renderer) AddParagraph(text string) {
	r.pdf.SetFont(bodyFontFamily, "", bodyFontSize)

	r.pdf.MultiCell(fullWidth, lineHeight, Sanitize(text), "", "", false)
	if r.recoverBlock("paragraph") {
		r.pdf.MultiCell(fullWidth, lineHeight, paragraphPlaceholder, "", "", false)
	}

	r.pdf.Ln(blockGap)
}

// AddList writes each item as a marker cell followed by wrapped item
// text. Failures are recovered per item, not per list.
func (r *Renderer) AddList(items []string) {
	r.pdf.SetFont(bodyFontFamily, "", bodyFontSize)

	for _, item := range items {
		r.pdf.CellFormat(listMarkerWidth, lineHeight, listMarker, "", 0, "", false, 0, "")

		r.pdf.MultiCell(fullWidth, lineHeight, Sanitize(item), "", "", false)
		if r.recoverBlock("list item") {
			r.pdf.MultiCell(fullWidth, lineHeight, listItemPlaceholder, "", "", false)
		}
	}
}

// AddFromStructure replays the extracted blocks in sequence order.
func (r *Renderer) AddFromStructure(blocks []Block) {
	for _, b := range blocks {
		switch b.Kind {
		case KindHeading:
			r.AddHeading(b.Text, b.Level)
		case KindParagraph:
			r.AddParagraph(b.Text)
		case KindList:
			r.AddList(b.Items)
		}
	}
}

// AddPlainText writes the entire text as one wrapped block, bypassing
// structure extraction.
func (r *Renderer) AddPlainText(text string) {
	r.pdf.MultiCell(fullWidth, lineHeight, Sanitize(text), "", "", false)
	if r.recoverBlock("plain text") {
		r.pdf.MultiCell(fullWidth, lineHeight, paragraphPlaceholder, "", "", false)
	}
}

// Render finalizes the document and writes it to outputPath, or to a
// uniquely named temporary file when outputPath is empty. The returned
// path is always valid on a nil error.
//
// A write failure caused by document content is recovered: a minimal
// fallback document is written to the same path and returned as
// success. A failure caused by the destination itself (permissions,
// missing directory, disk full) is returned wrapped in
// ErrUnwritableOutput.
func (r *Renderer) Render(outputPath string) (string, error) {
	path := outputPath
	if path == "" {
		p, err := fileutil.TempPDFPath()
		if err != nil {
			return "", fmt.Errorf("allocating output file: %w", err)
		}
		path = p
	}

	if err := r.pdf.OutputFileAndClose(path); err != nil {
		r.logger.Warn("document output failed, writing fallback document",
			"path", path, "error", err)
		if fbErr := writeFallbackDocument(path); fbErr != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrUnwritableOutput, path, fbErr)
		}
		return path, nil
	}

	return path, nil
}

// RenderTo finalizes the document and writes it to w. Content-caused
// failures are recovered with the fallback document, matching Render.
func (r *Renderer) RenderTo(w io.Writer) error {
	if err := r.pdf.Output(w); err != nil {
		r.logger.Warn("document output failed, writing fallback document", "error", err)
		fb := newFallbackDocument()
		if fbErr := fb.Output(w); fbErr != nil {
			return fmt.Errorf("%w: %v", ErrUnwritableOutput, fbErr)
		}
	}
	return nil
}

// recoverBlock checks the backend's sticky error after a block write.
// If set, it logs, clears the error so subsequent writes proceed, and
// reports true so the caller substitutes a placeholder.
func (r *Renderer) recoverBlock(kind string) bool {
	if !r.pdf.Err() {
		return false
	}
	r.logger.Warn("block render failed, substituting placeholder",
		"block", kind, "error", r.pdf.Error())
	r.pdf.ClearError()
	return true
}

// headingSize maps a heading level to its font size, falling back for
// out-of-range levels rather than failing.
func headingSize(level int) float64 {
	if size, ok := headingSizes[level]; ok {
		return size
	}
	return fallbackHeadingSize
}

// newFallbackDocument builds the minimal two-line document used when
// full rendering fails for content reasons.
func newFallbackDocument() *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont(bodyFontFamily, "", bodyFontSize)
	pdf.MultiCell(fullWidth, lineHeight, fallbackLine1, "", "", false)
	pdf.MultiCell(fullWidth, lineHeight, fallbackLine2, "", "", false)
	return pdf
}

// writeFallbackDocument writes the fallback document to path. An error
// here means the destination itself is unwritable.
func writeFallbackDocument(path string) error {
	return newFallbackDocument().OutputFileAndClose(path)
}

// fpdfPageSize maps a PageSettings size to the backend's size string.
func fpdfPageSize(size string) string {
	switch strings.ToLower(size) {
	case PageSizeLetter:
		return "Letter"
	case PageSizeLegal:
		return "Legal"
	default:
		return "A4"
	}
}

// fpdfOrientation maps a PageSettings orientation to the backend's
// one-letter code.
func fpdfOrientation(orientation string) string {
	if strings.ToLower(orientation) == OrientationLandscape {
		return "L"
	}
	return "P"
}
