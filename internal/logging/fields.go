package logging

// Field names for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Run options.
	FieldDialect  = "dialect"
	FieldOutDir   = "out_dir"
	FieldCheck    = "check"
	FieldDryRun   = "dry_run"
	FieldJobs     = "jobs"
	FieldStrict   = "strict"
	FieldMarkdown = "markdown"

	// Statistics fields.
	FieldFilesDiscovered  = "files_discovered"
	FieldFilesProcessed   = "files_processed"
	FieldFilesChanged     = "files_changed"
	FieldFilesFailed      = "files_failed"
	FieldFilesSkipped     = "files_skipped"
	FieldDiagnosticsTotal = "diagnostics_total"
	FieldFencesRewritten  = "fences_rewritten"
	FieldDuration         = "duration"

	// Diagnostic fields.
	FieldCode     = "code"
	FieldNodeType = "node_type"
	FieldLine     = "line"
	FieldColumn   = "column"
	FieldSeverity = "severity"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Watch fields.
	FieldEvent = "event"
)
