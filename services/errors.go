package services

import "fmt"

// AssetReadError reports a header or footer image that could not be opened.
// It is fatal to the render call and surfaced to the caller verbatim.
// Degenerate image dimensions are NOT an AssetReadError; they degrade to a
// zero scaled height instead.
type AssetReadError struct {
	Path string
	Err  error
}

func (e *AssetReadError) Error() string {
	return fmt.Sprintf("cannot read brand asset %s: %v", e.Path, e.Err)
}

func (e *AssetReadError) Unwrap() error {
	return e.Err
}

// RenderError is the catch-all failure for template construction or content
// flowing. A failed render yields no bytes; there is no partial output.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("PDF render failed: %v", e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
