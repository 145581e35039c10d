package id3v1

import (
	"log/slog"
	"os"

	"github.com/simonhull/id3v1/internal/binary"
)

// Write persists pending changes to the trailing record.
//
// Write is a no-op when nothing changed. A flagged delete truncates
// the trailing TagSize bytes. Otherwise the record is serialized and
// written in place when one existed at open time, or appended to the
// end of the file.
//
// Before overwriting an existing record, Write re-reads the magic
// bytes at the record offset. If they no longer match, another process
// changed the file since open; Write fails with a StaleTagError
// (wrapped in an InvalidTagError) and alters nothing. This is
// best-effort detection, not a lock.
//
// On success the tag is clean and ExistedOnDisk reflects the new
// on-disk state.
func (t *Tag) Write() error {
	if !t.dirty && !t.pendingDelete {
		return nil
	}

	f, err := t.writableFile()
	if err != nil {
		return err
	}

	if t.pendingDelete {
		if t.existedOnDisk {
			stat, err := f.Stat()
			if err != nil {
				return &InvalidTagError{Path: t.name, Err: err}
			}
			if err := f.Truncate(stat.Size() - TagSize); err != nil {
				return &InvalidTagError{Path: t.name, Err: err}
			}
			t.existedOnDisk = false
		}
		t.pendingDelete = false
		t.dirty = false
		return nil
	}

	if !t.present {
		t.dirty = false
		return nil
	}

	stat, err := f.Stat()
	if err != nil {
		return &InvalidTagError{Path: t.name, Err: err}
	}

	offset := stat.Size()
	if t.existedOnDisk {
		offset = stat.Size() - TagSize

		m := make([]byte, len(magic))
		if _, err := f.ReadAt(m, offset); err != nil {
			return &InvalidTagError{Path: t.name, Err: err}
		}
		if string(m) != magic {
			return &InvalidTagError{Path: t.name, Err: &StaleTagError{Path: t.name}}
		}
	}

	if _, err := f.WriteAt(t.serialize(), offset); err != nil {
		return &InvalidTagError{Path: t.name, Err: err}
	}
	if err := f.Sync(); err != nil {
		return &InvalidTagError{Path: t.name, Err: err}
	}

	t.dirty = false
	t.existedOnDisk = true
	return nil
}

// serialize renders the fields into the fixed record layout.
func (t *Tag) serialize() []byte {
	w := binary.NewRecordWriter(TagSize)
	w.WriteBytes([]byte(magic))
	w.WriteFixed(t.title, titleLen)
	w.WriteFixed(t.artist, artistLen)
	w.WriteFixed(t.album, albumLen)
	w.WriteFixed(t.year, yearLen)
	w.WriteFixed(t.comment, commentLen)

	// ID3 v1.1: a stored track number claims the last two bytes of
	// the comment field, whatever padding or truncation put there.
	if t.track >= 1 && t.track <= 254 {
		w.PutUint8(TagSize-3, 0)
		w.PutUint8(TagSize-2, byte(t.track))
	}

	w.WriteUint8(byte(t.genre))
	return w.Bytes()
}

// writableFile returns a file handle Write may write through. Tags
// opened by path are reopened read-write on first need; tags built
// from a caller-supplied handle use that handle as-is.
func (t *Tag) writableFile() (*os.File, error) {
	if !t.canReopen {
		return t.file, nil
	}

	f, err := os.OpenFile(t.path, os.O_RDWR, 0)
	if err != nil {
		return nil, &IOError{Path: t.name, Op: "reopen read-write", Err: err}
	}

	t.file.Close()
	t.file = f
	t.canReopen = false
	return f, nil
}

// Close writes any pending changes on a best-effort basis, then
// releases the file handle.
//
// A write failure at this point has no caller left to surface to, so
// it is logged and dropped. Call Write first when failure visibility
// matters.
func (t *Tag) Close() error {
	if t.file == nil {
		return nil
	}

	if t.dirty || t.pendingDelete {
		if err := t.Write(); err != nil {
			slog.Warn("discarding unwritten tag changes", "file", t.name, "error", err)
		}
	}

	err := t.file.Close()
	t.file = nil
	return err
}
