package runner

// FileOutcome records the result of rendering a single file.
type FileOutcome struct {
	// Path is the source file that was processed.
	Path string

	// OutputPath is where the rendered HTML was (or would be) written.
	OutputPath string

	// HTML is the rendered document. Empty when rendering failed.
	HTML string

	// Written is true if the output file was created or updated.
	Written bool

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesRendered is the number of files successfully rendered.
	FilesRendered int

	// FilesFailed is the number of files that encountered errors.
	FilesFailed int

	// FilesWritten is the number of output files created or updated.
	FilesWritten int

	// BytesRendered is the total size of all rendered HTML.
	BytesRendered int64
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file.
	// Files are ordered deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any file failed to render.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesFailed > 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesFailed++
		return
	}

	r.Stats.FilesRendered++
	r.Stats.BytesRendered += int64(len(outcome.HTML))
	if outcome.Written {
		r.Stats.FilesWritten++
	}
}
