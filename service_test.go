package simplepdf

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// recordingExtractor captures the text it was asked to extract.
type recordingExtractor struct {
	calls []string
}

func (r *recordingExtractor) Extract(text string) []Block {
	r.calls = append(r.calls, text)
	return Extract(text)
}

func TestConvertValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    Input
		expected error
	}{
		{
			name:     "empty text",
			input:    Input{Text: ""},
			expected: ErrEmptyText,
		},
		{
			name:     "invalid page size",
			input:    Input{Text: "x", Page: &PageSettings{Size: "tabloid", Orientation: OrientationPortrait, Margin: 0.5}},
			expected: ErrInvalidPageSize,
		},
		{
			name:     "invalid orientation",
			input:    Input{Text: "x", Page: &PageSettings{Size: PageSizeA4, Orientation: "diagonal", Margin: 0.5}},
			expected: ErrInvalidOrientation,
		},
		{
			name:     "margin out of bounds",
			input:    Input{Text: "x", Page: &PageSettings{Size: PageSizeA4, Orientation: OrientationPortrait, Margin: 5}},
			expected: ErrInvalidMargin,
		},
	}

	svc := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := svc.Convert(context.Background(), tt.input)
			if !errors.Is(err, tt.expected) {
				t.Errorf("Convert() error = %v, want %v", err, tt.expected)
			}
		})
	}
}

func TestConvertMarkdown(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "doc.pdf")

	svc := New()
	result, err := svc.Convert(context.Background(), Input{
		Text:       "# Title\r\n\r\nBody text.\r\n\r\n- a\r\n- b",
		Markdown:   true,
		OutputPath: path,
	})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	if result.Path != path {
		t.Errorf("Convert() path = %q, want %q", result.Path, path)
	}
	if !bytes.HasPrefix(result.PDF, []byte("%PDF-")) {
		t.Error("Convert() PDF bytes do not start with PDF header")
	}

	onDisk, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !bytes.Equal(onDisk, result.PDF) {
		t.Error("Convert() PDF bytes differ from file contents")
	}
}

func TestConvertPlainTextSkipsExtraction(t *testing.T) {
	t.Parallel()

	rec := &recordingExtractor{}
	svc := New()
	svc.extractor = rec

	result, err := svc.Convert(context.Background(), Input{
		Text:       "just plain text\nwith lines",
		Markdown:   false,
		OutputPath: filepath.Join(t.TempDir(), "plain.pdf"),
	})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if len(rec.calls) != 0 {
		t.Errorf("extractor called %d times for plain text, want 0", len(rec.calls))
	}
	if len(result.PDF) == 0 {
		t.Error("Convert() produced empty PDF")
	}
}

func TestConvertMarkdownNormalizesBeforeExtraction(t *testing.T) {
	t.Parallel()

	rec := &recordingExtractor{}
	svc := New()
	svc.extractor = rec

	_, err := svc.Convert(context.Background(), Input{
		Text:       "# A\r\nB\rC",
		Markdown:   true,
		OutputPath: filepath.Join(t.TempDir(), "norm.pdf"),
	})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	if len(rec.calls) != 1 {
		t.Fatalf("extractor called %d times, want 1", len(rec.calls))
	}
	if rec.calls[0] != "# A\nB\nC" {
		t.Errorf("extractor received %q, want line endings normalized", rec.calls[0])
	}
}

func TestConvertCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := New()
	_, err := svc.Convert(ctx, Input{Text: "content", Markdown: true})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Convert() error = %v, want context.Canceled", err)
	}
}

func TestConvertUnwritableDestination(t *testing.T) {
	t.Parallel()

	svc := New()
	_, err := svc.Convert(context.Background(), Input{
		Text:       "content",
		OutputPath: filepath.Join(t.TempDir(), "nope", "out.pdf"),
	})
	if !errors.Is(err, ErrUnwritableOutput) {
		t.Errorf("Convert() error = %v, want ErrUnwritableOutput", err)
	}
}

func TestConvertTempOutput(t *testing.T) {
	t.Parallel()

	svc := New()
	result, err := svc.Convert(context.Background(), Input{Text: "temp output"})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	t.Cleanup(func() { _ = os.Remove(result.Path) })

	if filepath.Ext(result.Path) != ".pdf" {
		t.Errorf("temp output %q does not end in .pdf", result.Path)
	}
	if !bytes.HasPrefix(result.PDF, []byte("%PDF-")) {
		t.Error("Convert() PDF bytes do not start with PDF header")
	}
}

func TestWithPageSettingsPanicsOnInvalid(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithPageSettings did not panic on invalid settings")
		}
	}()
	WithPageSettings(&PageSettings{Size: "bogus"})
}
