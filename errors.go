package id3v1

import "fmt"

// IOError is returned when the underlying file cannot be opened,
// seeked, or read before a record has been located. A file shorter
// than TagSize bytes produces an IOError, since it cannot hold a
// trailing record at all.
type IOError struct {
	Path string
	Op   string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Op, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// InvalidTagError is returned when a record went bad mid-operation:
// an I/O failure after the magic bytes matched on read, or any failure
// while committing a write. It wraps the originating cause and names
// the file.
type InvalidTagError struct {
	Path string
	Err  error
}

func (e *InvalidTagError) Error() string {
	return fmt.Sprintf("invalid ID3 tag in %s: %v", e.Path, e.Err)
}

func (e *InvalidTagError) Unwrap() error { return e.Err }

// StaleTagError is returned from Write when the record's magic bytes
// changed between open and write: another process modified the file.
// The write is aborted without altering any bytes.
//
// StaleTagError is always wrapped in an InvalidTagError, so errors.As
// finds either type.
type StaleTagError struct {
	Path string
}

func (e *StaleTagError) Error() string {
	return fmt.Sprintf("%s: file modified since open, losing tag changes", e.Path)
}
