package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	simplepdf "github.com/mrwadams/simple-pdf-generator"
	"github.com/mrwadams/simple-pdf-generator/internal/config"
	"github.com/mrwadams/simple-pdf-generator/internal/fileutil"
)

// run executes one invocation: stdin conversion when no files are
// given, otherwise a batch over the input files.
func run(flags *cliFlags, inputs []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg := &config.Config{}
	if flags.config != "" {
		loaded, err := config.Load(flags.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	logger := slog.New(slog.DiscardHandler)
	if flags.verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	page, err := resolvePageSettings(flags, cfg)
	if err != nil {
		return err
	}

	opts := []simplepdf.Option{simplepdf.WithLogger(logger)}
	if page != nil {
		opts = append(opts, simplepdf.WithPageSettings(page))
	}

	if len(inputs) == 0 {
		return convertStdin(flags, cfg, opts, stdin, stdout)
	}
	return convertFiles(flags, cfg, opts, inputs, stdout)
}

// convertStdin converts standard input as one document. Stdin content
// defaults to Markdown treatment; there is no extension to infer from.
func convertStdin(flags *cliFlags, cfg *config.Config, opts []simplepdf.Option, stdin io.Reader, stdout io.Writer) error {
	data, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return errors.New("stdin is empty")
	}

	markdown := true
	if flags.markdownSet {
		markdown = flags.markdown
	}

	outputPath, err := resolveOutputPath("", flags, cfg, false)
	if err != nil {
		return err
	}

	svc := simplepdf.New(opts...)
	result, err := svc.Convert(context.Background(), simplepdf.Input{
		Text:       string(data),
		Markdown:   markdown,
		OutputPath: outputPath,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, result.Path)
	return nil
}

// convertFiles converts each input file with a bounded worker pool.
// Every worker owns its own Service; conversions share no state.
func convertFiles(flags *cliFlags, cfg *config.Config, opts []simplepdf.Option, inputs []string, stdout io.Writer) error {
	size := resolvePoolSize(flags.workers, len(inputs))

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	sem := make(chan struct{}, size)

	for _, input := range inputs {
		wg.Add(1)
		go func(input string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			svc := simplepdf.New(opts...)
			path, err := convertFile(svc, input, flags, cfg, len(inputs) > 1)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", input, err))
				return
			}
			fmt.Fprintln(stdout, path)
		}(input)
	}
	wg.Wait()

	return errors.Join(errs...)
}

// convertFile converts a single input file and returns the output path.
func convertFile(svc *simplepdf.Service, input string, flags *cliFlags, cfg *config.Config, multi bool) (string, error) {
	data, err := os.ReadFile(input)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return "", errors.New("input file is empty")
	}

	markdown := fileutil.IsMarkdownFile(input)
	if flags.markdownSet {
		markdown = flags.markdown
	}

	outputPath, err := resolveOutputPath(input, flags, cfg, multi)
	if err != nil {
		return "", err
	}

	result, err := svc.Convert(context.Background(), simplepdf.Input{
		Text:       string(data),
		Markdown:   markdown,
		OutputPath: outputPath,
	})
	if err != nil {
		return "", err
	}
	return result.Path, nil
}

// resolveOutputPath decides where one conversion's PDF goes.
//
// Precedence: an --output path wins outright; an --output directory (or
// the config default directory) receives a name derived from the input;
// otherwise the derived name lands next to the input file, or in the
// working directory for stdin.
func resolveOutputPath(input string, flags *cliFlags, cfg *config.Config, multi bool) (string, error) {
	hint := flags.output
	outDir := cfg.Output.DefaultDir

	if hint != "" && fileutil.IsDir(hint) {
		outDir = hint
		hint = ""
	}

	if hint != "" {
		if multi {
			return "", errors.New("--output must be a directory when converting multiple files")
		}
		if fileutil.IsFilePath(hint) {
			return hint, nil
		}
	}

	if hint == "" && !multi {
		hint = cfg.Output.Filename
	}

	name := fileutil.OutputName(input, hint)

	dir := outDir
	if dir == "" {
		if input != "" {
			dir = filepath.Dir(input)
		} else {
			dir = "."
		}
	}
	return filepath.Join(dir, name), nil
}

// resolvePageSettings merges config and flag page settings. Returns nil
// when neither specifies anything, letting the library defaults apply.
func resolvePageSettings(flags *cliFlags, cfg *config.Config) (*simplepdf.PageSettings, error) {
	flagSet := flags.pageSize != "" || flags.orientation != "" || flags.margin != marginSentinel
	cfgSet := cfg.Page.Size != "" || cfg.Page.Orientation != "" || cfg.Page.Margin != 0
	if !flagSet && !cfgSet {
		return nil, nil
	}

	page := simplepdf.DefaultPageSettings()

	if cfg.Page.Size != "" {
		page.Size = cfg.Page.Size
	}
	if cfg.Page.Orientation != "" {
		page.Orientation = cfg.Page.Orientation
	}
	if cfg.Page.Margin != 0 {
		page.Margin = cfg.Page.Margin
	}

	if flags.pageSize != "" {
		page.Size = flags.pageSize
	}
	if flags.orientation != "" {
		page.Orientation = flags.orientation
	}
	if flags.margin != marginSentinel {
		page.Margin = flags.margin
	}

	if err := page.Validate(); err != nil {
		return nil, err
	}
	return page, nil
}

// resolvePoolSize bounds the worker count by the job count and CPU
// count, with a floor of one.
func resolvePoolSize(workers, jobs int) int {
	size := workers
	if size < 1 {
		size = availableCPUs()
	}
	if size > jobs {
		size = jobs
	}
	if size < 1 {
		size = 1
	}
	return size
}
