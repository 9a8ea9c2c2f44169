// Package apperr defines sentinel errors shared across AgentSync packages.
package apperr

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrAlreadyExists        = errors.New("already exists")
	ErrNotInitialized       = errors.New("project not initialized (agentsync.yaml missing)")
	ErrInvalidTool          = errors.New("invalid tool")
	ErrMalformedFrontmatter = errors.New("malformed frontmatter")
	ErrUnrepresentable      = errors.New("mode not representable for tool")
	ErrPathTraversal        = errors.New("path escapes base directory")
	ErrInvalidRuleName      = errors.New("invalid rule name")
)
