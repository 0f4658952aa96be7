package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/markpadhq/markpad/pkg/fsutil"
	"github.com/markpadhq/markpad/pkg/render"
)

// Runner orchestrates multi-file rendering.
type Runner struct {
	renderer *render.Renderer
}

// New creates a new Runner with the given renderer.
func New(renderer *render.Renderer) *Runner {
	return &Runner{renderer: renderer}
}

// Run discovers files under opts.Paths and renders them concurrently.
// It returns a deterministic collection of FileOutcome values and
// aggregate stats.
//
// The runner:
//   - Discovers files matching the options criteria
//   - Renders files concurrently using a worker pool
//   - Aggregates results into a single Result with statistics
//   - Respects context cancellation
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; rebuild in discovery order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker renders files from workCh and sends outcomes to outCh.
func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome, opts Options) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.renderFile(ctx, path, opts)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// renderFile reads, renders, and optionally writes a single file.
func (r *Runner) renderFile(ctx context.Context, path string, opts Options) FileOutcome {
	outcome := FileOutcome{Path: path}

	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Error = fmt.Errorf("read %s: %w", path, err)
		return outcome
	}

	outcome.HTML = r.renderer.Render(string(content))

	outputPath, err := OutputPath(path, opts)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	outcome.OutputPath = outputPath

	if !opts.Write {
		return outcome
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			outcome.Error = fmt.Errorf("create output directory: %w", err)
			return outcome
		}
	}

	written, err := fsutil.WriteAtomicIfChanged(ctx, outputPath, []byte(outcome.HTML), fsutil.DefaultFileMode)
	if err != nil {
		outcome.Error = fmt.Errorf("write %s: %w", outputPath, err)
		return outcome
	}
	outcome.Written = written

	return outcome
}

// OutputPath derives the HTML output path for a source file. With an
// OutputDir the source layout is mirrored beneath it; otherwise the
// output is placed next to the input with an .html extension.
func OutputPath(path string, opts Options) (string, error) {
	htmlName := strings.TrimSuffix(path, filepath.Ext(path)) + ".html"

	if opts.OutputDir == "" {
		return htmlName, nil
	}

	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(workDir, htmlName)
	if err != nil || strings.HasPrefix(rel, "..") {
		// Source outside the working tree: flatten to the base name.
		rel = filepath.Base(htmlName)
	}

	return filepath.Join(opts.OutputDir, rel), nil
}
