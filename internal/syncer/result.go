package syncer

// Issue is a per-document failure recorded during a pass.
type Issue struct {
	Name string
	Err  error
}

func (i Issue) Error() string {
	return i.Name + ": " + i.Err.Error()
}

// Result collects the outcome of one sync pass. It is created fresh per
// invocation and never persisted.
type Result struct {
	Created []string
	Updated []string
	Deleted []string
	Skipped []string
	// Conflicts are advisory: the canonical content was kept while the
	// imported content differed.
	Conflicts []string
	Errors    []Issue
}

// TotalProcessed returns the number of successfully classified documents.
func (r *Result) TotalProcessed() int {
	return len(r.Created) + len(r.Updated) + len(r.Deleted) + len(r.Skipped)
}

// HasChanges reports whether the pass created, updated, or deleted anything.
func (r *Result) HasChanges() bool {
	return len(r.Created) > 0 || len(r.Updated) > 0 || len(r.Deleted) > 0
}

// HasErrors reports whether any document failed.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// Merge appends another pass's outcome, used when one command runs a pass
// per base directory.
func (r *Result) Merge(o *Result) {
	r.Created = append(r.Created, o.Created...)
	r.Updated = append(r.Updated, o.Updated...)
	r.Deleted = append(r.Deleted, o.Deleted...)
	r.Skipped = append(r.Skipped, o.Skipped...)
	r.Conflicts = append(r.Conflicts, o.Conflicts...)
	r.Errors = append(r.Errors, o.Errors...)
}
