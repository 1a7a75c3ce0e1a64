// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package adapter

import "fmt"

// ParseError reports malformed input at a specific line or row of a file.
type ParseError struct {
	// Path is the file being parsed.
	Path string

	// Line is the 1-based line (text, JSONL) or record line (CSV).
	Line int

	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s line %d: %v", e.Path, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
