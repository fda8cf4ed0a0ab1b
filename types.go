package simplepdf

import (
	"fmt"
	"log/slog"
	"strings"
)

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.4
)

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "letter", "a4", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeA4,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
// Does not mutate - uses case-insensitive comparison.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if !isValidPageSize(p.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// isValidPageSize checks if size is a known page size (case-insensitive).
func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case PageSizeLetter, PageSizeA4, PageSizeLegal:
		return true
	}
	return false
}

// isValidOrientation checks if orientation is valid (case-insensitive).
func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// Input contains conversion parameters.
type Input struct {
	Text       string        // Text or Markdown content (required)
	Markdown   bool          // Treat Text as Markdown (extract structure)
	OutputPath string        // Destination path (optional, empty = temp file)
	Page       *PageSettings // Page settings (optional, nil = service default)
}

// Result contains the outcome of a conversion.
type Result struct {
	Path string // Path of the written PDF file
	PDF  []byte // The document bytes
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	logger *slog.Logger
	page   *PageSettings
}

// WithLogger sets the logger used to report recovered rendering
// failures. Defaults to a discard logger.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("simplepdf: WithLogger requires a non-nil logger")
	}
	return func(s *Service) {
		s.cfg.logger = l
	}
}

// WithPageSettings sets the default page settings for conversions that
// do not provide their own. Panics if p is invalid (programmer error).
func WithPageSettings(p *PageSettings) Option {
	if err := p.Validate(); err != nil {
		panic("simplepdf: WithPageSettings: " + err.Error())
	}
	return func(s *Service) {
		s.cfg.page = p
	}
}
