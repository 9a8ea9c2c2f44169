// Package frontmatter splits rule files into a YAML metadata block and an
// opaque Markdown body, and reassembles them. The codec is schema-agnostic:
// the same split/join logic serves the canonical format and every tool format.
package frontmatter

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/starford/agentsync/internal/apperr"
)

var (
	opening    = []byte("---\n")
	terminator = []byte("\n---\n")
	// A file may end with the closing marker and no trailing newline.
	terminatorEOF = []byte("\n---")
)

// Document pairs parsed frontmatter with the raw Markdown body. Content is
// preserved byte-for-byte: Parse(d.Marshal()) returns an equal Document.
type Document[T any] struct {
	Meta    T
	Content string
}

// Parse splits data into frontmatter and body and decodes the frontmatter
// into T. name is used for error messages only.
//
// The opening marker must sit at byte offset zero and a closing marker line
// must exist; anything else is a malformed-frontmatter error.
func Parse[T any](data []byte, name string) (*Document[T], error) {
	block, content, err := split(data, name)
	if err != nil {
		return nil, err
	}

	var meta T
	if err := yaml.Unmarshal(block, &meta); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", name, apperr.ErrMalformedFrontmatter, err)
	}

	return &Document[T]{Meta: meta, Content: content}, nil
}

// Marshal reassembles the document into file bytes using the same marker
// convention Parse expects.
func (d *Document[T]) Marshal() ([]byte, error) {
	block, err := yaml.Marshal(&d.Meta)
	if err != nil {
		return nil, fmt.Errorf("marshal frontmatter: %w", err)
	}

	var buf bytes.Buffer
	buf.Write(opening)
	buf.Write(block) // yaml.Marshal output always ends with a newline
	buf.WriteString("---\n")
	buf.WriteString(d.Content)
	return buf.Bytes(), nil
}

// split separates the raw YAML block from the body. The body is everything
// after the closing marker line, untouched.
func split(data []byte, name string) (block []byte, content string, err error) {
	if !bytes.HasPrefix(data, opening) {
		return nil, "", fmt.Errorf("%s: %w: missing opening marker", name, apperr.ErrMalformedFrontmatter)
	}

	rest := data[len(opening):]
	// An empty metadata block puts the closing marker directly after the
	// opening one, with no newline in between for the terminator search.
	if bytes.HasPrefix(rest, opening) {
		return nil, string(rest[len(opening):]), nil
	}
	if bytes.Equal(rest, []byte("---")) {
		return nil, "", nil
	}
	if idx := bytes.Index(rest, terminator); idx >= 0 {
		return rest[:idx], string(rest[idx+len(terminator):]), nil
	}
	if bytes.HasSuffix(rest, terminatorEOF) {
		return rest[:len(rest)-len(terminatorEOF)], "", nil
	}
	return nil, "", fmt.Errorf("%s: %w: missing closing marker", name, apperr.ErrMalformedFrontmatter)
}
