package id3v1

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// padField space-pads s to exactly n bytes, as fields appear on disk.
func padField(s string, n int) []byte {
	b := make([]byte, n)
	copy(b, s)
	for i := len(s); i < n; i++ {
		b[i] = ' '
	}
	return b
}

// testRecord builds a raw 128-byte record. track == 0 means no track.
func testRecord(title, artist, album, year, comment string, track, genre int) []byte {
	rec := []byte("TAG")
	rec = append(rec, padField(title, 30)...)
	rec = append(rec, padField(artist, 30)...)
	rec = append(rec, padField(album, 30)...)
	rec = append(rec, padField(year, 4)...)
	rec = append(rec, padField(comment, 30)...)
	if track != 0 {
		rec[125] = 0
		rec[126] = byte(track)
	}
	return append(rec, byte(genre))
}

// writeTestFile writes audio followed by rec (which may be nil) to a
// temp file and returns its path.
func writeTestFile(t *testing.T, audio, rec []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.mp3")
	require.NoError(t, os.WriteFile(path, append(audio[:len(audio):len(audio)], rec...), 0o644))
	return path
}

// audioBytes returns n bytes of fake audio data that cannot be
// mistaken for a record magic.
func audioBytes(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i % 7)
	}
	return b
}

func TestOpen_NoTag(t *testing.T) {
	path := writeTestFile(t, audioBytes(200), nil)

	tag, err := Open(path)
	require.NoError(t, err)
	defer tag.Close()

	assert.False(t, tag.Present())
	assert.False(t, tag.ExistedOnDisk())
	assert.False(t, tag.Dirty())
	assert.Equal(t, map[string]string{KeyGenre: UnknownGenreName}, tag.AsMap())
}

func TestOpen_ParsesFields(t *testing.T) {
	rec := testRecord("Test Song", "Band", "First Album", "1999", "a comment", 0, 17)
	path := writeTestFile(t, audioBytes(500), rec)

	tag, err := Open(path)
	require.NoError(t, err)
	defer tag.Close()

	assert.True(t, tag.Present())
	assert.True(t, tag.ExistedOnDisk())
	assert.False(t, tag.Dirty())
	assert.Equal(t, "Test Song", tag.Title())
	assert.Equal(t, "Band", tag.Artist())
	assert.Equal(t, "First Album", tag.Album())
	assert.Equal(t, "1999", tag.Year())
	assert.Equal(t, "a comment", tag.Comment())
	assert.Equal(t, 17, tag.Genre())
	assert.Equal(t, "Rock", tag.Get(KeyGenre, ""))

	_, ok := tag.Track()
	assert.False(t, ok)
	assert.False(t, tag.Has(KeyTrackNumber))
}

func TestOpen_TrackSplit(t *testing.T) {
	rec := testRecord("", "", "", "", "short", 7, 255)
	path := writeTestFile(t, audioBytes(100), rec)

	tag, err := Open(path)
	require.NoError(t, err)
	defer tag.Close()

	n, ok := tag.Track()
	assert.True(t, ok)
	assert.Equal(t, 7, n)
	assert.Equal(t, "7", tag.Get(KeyTrackNumber, ""))
	assert.Equal(t, "short", tag.Comment())
}

func TestOpen_NoTrackWhenComment30BytesLong(t *testing.T) {
	// A full-width comment leaves no room for the track convention:
	// byte 28 is non-NUL, so byte 29 is comment text.
	long := "abcdefghijklmnopqrstuvwxyz0123"
	rec := testRecord("", "", "", "", long, 0, 255)
	path := writeTestFile(t, audioBytes(100), rec)

	tag, err := Open(path)
	require.NoError(t, err)
	defer tag.Close()

	_, ok := tag.Track()
	assert.False(t, ok)
	assert.Equal(t, long, tag.Comment())
}

func TestOpen_TrimsPadding(t *testing.T) {
	rec := testRecord("", "", "", "", "", 0, 255)
	copy(rec[3:], []byte("NulPadded\x00\x00\x00\x00"))
	copy(rec[33:], []byte("Spaced Out   "))
	path := writeTestFile(t, audioBytes(100), rec)

	tag, err := Open(path)
	require.NoError(t, err)
	defer tag.Close()

	assert.Equal(t, "NulPadded", tag.Title())
	assert.Equal(t, "Spaced Out", tag.Artist())
}

func TestOpen_UnknownGenreByte(t *testing.T) {
	rec := testRecord("Test Song", "", "", "", "", 0, 255)
	path := writeTestFile(t, audioBytes(100), rec)

	tag, err := Open(path)
	require.NoError(t, err)
	defer tag.Close()

	assert.Equal(t, GenreUnknown, tag.Genre())
	assert.Equal(t, UnknownGenreName, tag.Get(KeyGenre, ""))
}

func TestOpen_ShortFile(t *testing.T) {
	path := writeTestFile(t, audioBytes(50), nil)

	_, err := Open(path)
	require.Error(t, err)

	var ioErr *IOError
	assert.True(t, errors.As(err, &ioErr))
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.mp3"))
	require.Error(t, err)

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "open", ioErr.Op)
}

func TestOpenFile(t *testing.T) {
	rec := testRecord("Handle Song", "", "", "", "", 0, 17)
	path := writeTestFile(t, audioBytes(100), rec)

	f, err := os.Open(path)
	require.NoError(t, err)

	tag, err := OpenFile(f, WithDisplayName("stream.mp3"))
	require.NoError(t, err)
	defer tag.Close()

	assert.Equal(t, "Handle Song", tag.Title())
	assert.Equal(t, "stream.mp3", tag.Name())
}
