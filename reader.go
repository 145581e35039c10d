package id3v1

import (
	"bytes"
	"fmt"
	"os"

	"github.com/simonhull/id3v1/internal/binary"
)

// TagSize is the size of the trailing record in bytes.
const TagSize = 128

// magic identifies a trailing record.
const magic = "TAG"

// Fixed field widths within the record.
const (
	titleLen   = 30
	artistLen  = 30
	albumLen   = 30
	yearLen    = 4
	commentLen = 30
)

// Open opens the file at path read-only and parses its trailing
// record, if one is present.
//
// A file without the record magic is not an error: Open returns an
// empty Tag with ExistedOnDisk() == false, and a later Write appends
// a fresh record. A file too short to hold a record yields an IOError;
// an I/O failure after the magic matched yields an InvalidTagError.
//
// Write reopens the file read-write when needed, so read-only use
// never requires write permission.
func Open(path string, opts ...Option) (*Tag, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	name := options.displayName
	if name == "" {
		name = path
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: name, Op: "open", Err: err}
	}

	t, err := parse(f, name)
	if err != nil {
		f.Close()
		return nil, err
	}

	t.file = f
	t.path = path
	t.canReopen = true
	return t, nil
}

// OpenFile parses the trailing record from an already-open file
// handle. The Tag takes ownership of the handle; Close releases it.
//
// The handle must be opened read-write if the caller intends to Write,
// since a Tag built from a handle cannot reopen the file itself.
func OpenFile(f *os.File, opts ...Option) (*Tag, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	name := options.displayName
	if name == "" {
		name = f.Name()
	}
	if name == "" {
		name = "unknown filename"
	}

	t, err := parse(f, name)
	if err != nil {
		return nil, err
	}

	t.file = f
	t.path = f.Name()
	return t, nil
}

// parse reads the trailing TagSize bytes of f and fills in a Tag.
// A missing magic is reported through the Tag's flags, not an error.
func parse(f *os.File, name string) (*Tag, error) {
	t := newTag(name)

	stat, err := f.Stat()
	if err != nil {
		return nil, &IOError{Path: name, Op: "stat", Err: err}
	}
	size := stat.Size()
	if size < TagSize {
		return nil, &IOError{
			Path: name,
			Op:   "seek to tag",
			Err:  fmt.Errorf("file is %d bytes, smaller than a %d-byte tag", size, TagSize),
		}
	}

	sr := binary.NewSafeReader(f, size, name)
	r := binary.NewReader(sr, size-TagSize)

	m, err := r.ReadBytes(len(magic), "tag magic")
	if err != nil {
		return nil, &IOError{Path: name, Op: "read tag magic", Err: err}
	}
	if !bytes.Equal(m, []byte(magic)) {
		// No record. Not an error; the Tag stays empty.
		return t, nil
	}

	title, err := r.ReadBytes(titleLen, "title")
	if err != nil {
		return nil, &InvalidTagError{Path: name, Err: err}
	}
	artist, err := r.ReadBytes(artistLen, "artist")
	if err != nil {
		return nil, &InvalidTagError{Path: name, Err: err}
	}
	album, err := r.ReadBytes(albumLen, "album")
	if err != nil {
		return nil, &InvalidTagError{Path: name, Err: err}
	}
	year, err := r.ReadBytes(yearLen, "year")
	if err != nil {
		return nil, &InvalidTagError{Path: name, Err: err}
	}
	comment, err := r.ReadBytes(commentLen, "comment")
	if err != nil {
		return nil, &InvalidTagError{Path: name, Err: err}
	}
	genre, err := r.ReadUint8("genre")
	if err != nil {
		return nil, &InvalidTagError{Path: name, Err: err}
	}

	// ID3 v1.1 track split: a NUL at comment[28] followed by a
	// non-NUL byte means the last byte is a track number and the
	// visible comment is 28 bytes.
	if comment[commentLen-2] == 0 && comment[commentLen-1] != 0 {
		t.track = int(comment[commentLen-1])
		comment = comment[:commentLen-2]
	}

	t.title = trimPadding(title)
	t.artist = trimPadding(artist)
	t.album = trimPadding(album)
	t.year = trimPadding(year)
	t.comment = trimPadding(comment)
	t.genre = int(genre)
	t.genreLabel = GenreName(t.genre)

	t.present = true
	t.existedOnDisk = true
	t.dirty = false
	return t, nil
}

// trimPadding removes trailing whitespace and NUL bytes, which pad
// fixed-width fields on disk.
func trimPadding(b []byte) []byte {
	return bytes.TrimRight(b, " \t\n\r\v\f\x00")
}
