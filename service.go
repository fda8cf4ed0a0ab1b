package simplepdf

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"
)

// crlfOrCR matches Windows and legacy Mac line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// structureExtractor is the seam between the service and the extraction
// stage, so tests can substitute a canned sequence.
type structureExtractor interface {
	Extract(text string) []Block
}

// lineScanner is the production extractor.
type lineScanner struct{}

func (lineScanner) Extract(text string) []Block { return Extract(text) }

// Compile-time interface implementation check.
var _ structureExtractor = lineScanner{}

// Service orchestrates the text-to-PDF pipeline. A Service is safe for
// concurrent use: every Convert call owns a fresh Renderer and shares
// no mutable state with other calls.
type Service struct {
	cfg       serviceConfig
	extractor structureExtractor
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithLogger).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			logger: slog.New(slog.DiscardHandler),
			page:   DefaultPageSettings(),
		},
		extractor: lineScanner{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Convert runs the pipeline and returns the written path plus the
// document bytes. The context is used for cancellation between stages.
func (s *Service) Convert(ctx context.Context, input Input) (Result, error) {
	if err := s.validateInput(input); err != nil {
		return Result{}, err
	}

	text := normalizeLineEndings(input.Text)
	if ctx.Err() != nil {
		return Result{}, ctx.Err()
	}

	renderer := NewRenderer(
		WithRendererPage(s.pageFor(input)),
		WithRendererLogger(s.cfg.logger),
	)

	if input.Markdown {
		renderer.AddFromStructure(s.extractor.Extract(text))
	} else {
		renderer.AddPlainText(strings.TrimSpace(text))
	}
	if ctx.Err() != nil {
		return Result{}, ctx.Err()
	}

	path, err := renderer.Render(input.OutputPath)
	if err != nil {
		return Result{}, fmt.Errorf("rendering document: %w", err)
	}

	pdfBytes, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("reading rendered document: %w", err)
	}

	return Result{Path: path, PDF: pdfBytes}, nil
}

// validateInput checks that required fields are present and valid.
func (s *Service) validateInput(input Input) error {
	if input.Text == "" {
		return ErrEmptyText
	}
	if err := input.Page.Validate(); err != nil {
		return err
	}
	return nil
}

// pageFor resolves the page settings for one conversion: per-input
// settings win over the service default.
func (s *Service) pageFor(input Input) *PageSettings {
	if input.Page != nil {
		return input.Page
	}
	return s.cfg.page
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(text string) string {
	return crlfOrCR.ReplaceAllString(text, "\n")
}
