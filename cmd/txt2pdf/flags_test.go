package main

import (
	"reflect"
	"testing"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		args        []string
		wantOutput  string
		wantInputs  []string
		wantMDSet   bool
		wantMD      bool
		wantWorkers int
		wantErr     bool
	}{
		{
			name:       "no arguments",
			args:       []string{"txt2pdf"},
			wantInputs: []string{},
		},
		{
			name:       "positional inputs",
			args:       []string{"txt2pdf", "a.md", "b.txt"},
			wantInputs: []string{"a.md", "b.txt"},
		},
		{
			name:       "short output flag",
			args:       []string{"txt2pdf", "-o", "out.pdf", "a.md"},
			wantOutput: "out.pdf",
			wantInputs: []string{"a.md"},
		},
		{
			name:       "markdown explicitly enabled",
			args:       []string{"txt2pdf", "--markdown", "a.txt"},
			wantMDSet:  true,
			wantMD:     true,
			wantInputs: []string{"a.txt"},
		},
		{
			name:       "markdown explicitly disabled",
			args:       []string{"txt2pdf", "--markdown=false", "a.md"},
			wantMDSet:  true,
			wantMD:     false,
			wantInputs: []string{"a.md"},
		},
		{
			name:        "workers flag",
			args:        []string{"txt2pdf", "-w", "3", "a.md", "b.md"},
			wantWorkers: 3,
			wantInputs:  []string{"a.md", "b.md"},
		},
		{
			name:    "unknown flag",
			args:    []string{"txt2pdf", "--bogus"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags, inputs, err := parseFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("parseFlags() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags() error = %v", err)
			}

			if flags.output != tt.wantOutput {
				t.Errorf("output = %q, want %q", flags.output, tt.wantOutput)
			}
			if flags.markdownSet != tt.wantMDSet {
				t.Errorf("markdownSet = %v, want %v", flags.markdownSet, tt.wantMDSet)
			}
			if flags.markdown != tt.wantMD {
				t.Errorf("markdown = %v, want %v", flags.markdown, tt.wantMD)
			}
			if flags.workers != tt.wantWorkers {
				t.Errorf("workers = %d, want %d", flags.workers, tt.wantWorkers)
			}
			if !reflect.DeepEqual(inputs, tt.wantInputs) {
				t.Errorf("inputs = %v, want %v", inputs, tt.wantInputs)
			}
		})
	}
}

func TestParseFlagsMarginSentinel(t *testing.T) {
	t.Parallel()

	flags, _, err := parseFlags([]string{"txt2pdf"})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	if flags.margin != marginSentinel {
		t.Errorf("margin default = %v, want sentinel %v", flags.margin, marginSentinel)
	}

	flags, _, err = parseFlags([]string{"txt2pdf", "--margin", "0.5"})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	if flags.margin != 0.5 {
		t.Errorf("margin = %v, want 0.5", flags.margin)
	}
}
