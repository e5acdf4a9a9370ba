package tiler

import "fmt"

// DecodeError reports that the source image could not be opened or decoded.
// It covers missing paths, unreadable files, unsupported formats and images
// with no pixels.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode image %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// DirectoryCreateError reports that the output directory could not be prepared.
type DirectoryCreateError struct {
	Path string
	Err  error
}

func (e *DirectoryCreateError) Error() string {
	return fmt.Sprintf("failed to create output directory %s: %v", e.Path, e.Err)
}

func (e *DirectoryCreateError) Unwrap() error { return e.Err }

// WriteError reports that a single tile could not be persisted. Tiles written
// before the failing one are left on disk.
type WriteError struct {
	Path  string
	Index int
	Err   error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write tile %d to %s: %v", e.Index, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
