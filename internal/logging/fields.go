// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldFormat = "format"
	FieldDryRun = "dry_run"
	FieldJobs   = "jobs"
	FieldStyle  = "style"

	// Search fields.
	FieldQuery         = "query"
	FieldRegex         = "regex"
	FieldCaseSensitive = "case_sensitive"
	FieldFlags         = "flags"
	FieldMatches       = "matches"
	FieldReplaced      = "replaced"

	// Render fields.
	FieldLanguage = "language"
	FieldBytes    = "bytes"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesRendered   = "files_rendered"
	FieldFilesFailed     = "files_failed"
	FieldFilesModified   = "files_modified"
	FieldDuration        = "duration"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
