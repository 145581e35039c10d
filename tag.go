package id3v1

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Keys for the key/value view of a tag. The view contains a key only
// when the corresponding field is set, with one exception: KeyGenre is
// always present, falling back to UnknownGenreName when the genre byte
// has no table entry.
const (
	KeyTitle       = "TITLE"
	KeyArtist      = "ARTIST"
	KeyAlbum       = "ALBUM"
	KeyYear        = "YEAR"
	KeyComment     = "COMMENT"
	KeyGenre       = "GENRE"
	KeyTrackNumber = "TRACKNUMBER"
)

// viewOrder is the canonical key order for Keys and Values.
var viewOrder = [...]string{
	KeyTitle, KeyArtist, KeyAlbum, KeyYear, KeyComment, KeyGenre, KeyTrackNumber,
}

// Tag is the in-memory form of a trailing 128-byte ID3v1 record.
//
// A Tag is produced by Open or OpenFile. Fields are mutated through the
// typed setters (or the keyed Set), which track modification state;
// nothing touches the file until Write. Always call Close when done:
//
//	tag, err := id3v1.Open("song.mp3")
//	if err != nil {
//		return err
//	}
//	defer tag.Close()
type Tag struct {
	file      *os.File
	path      string
	name      string // display name for errors and summaries
	canReopen bool   // opened read-only by path; Write reopens read-write

	title   []byte
	artist  []byte
	album   []byte
	year    []byte
	comment []byte
	track   int // 1..254; 0 means no track
	genre   int // 0..255; GenreUnknown means no genre

	// genreLabel is the view value for KeyGenre. It preserves the
	// caller's original spelling when a genre was set by name.
	genreLabel string

	present       bool // a record exists or is flagged to be written
	existedOnDisk bool // a record was found at open time
	dirty         bool // fields changed since the last write
	pendingDelete bool // the record is flagged for removal
}

// newTag returns an empty Tag with all fields at their defaults.
func newTag(name string) *Tag {
	t := &Tag{name: name}
	t.zero()
	return t
}

// zero resets every field to its empty/default value.
func (t *Tag) zero() {
	t.title = nil
	t.artist = nil
	t.album = nil
	t.year = nil
	t.comment = nil
	t.track = 0
	t.genre = GenreUnknown
	t.genreLabel = UnknownGenreName
}

// touch records that a field changed.
func (t *Tag) touch() {
	t.dirty = true
	t.present = true
}

// Name returns the display name used in error messages and summaries.
func (t *Tag) Name() string { return t.name }

// Present reports whether the tag holds a record: one parsed from disk,
// or one that will be created by the next Write.
func (t *Tag) Present() bool { return t.present }

// ExistedOnDisk reports whether a record was found when the file was
// opened (or created by a later successful Write).
func (t *Tag) ExistedOnDisk() bool { return t.existedOnDisk }

// Dirty reports whether fields changed since the last write.
func (t *Tag) Dirty() bool { return t.dirty }

// Title returns the song title.
func (t *Tag) Title() string { return string(t.title) }

// Artist returns the artist/creator of the song.
func (t *Tag) Artist() string { return string(t.artist) }

// Album returns the title of the album the song is from.
func (t *Tag) Album() string { return string(t.album) }

// Year returns the release year. At most 4 characters survive a write.
func (t *Tag) Year() string { return string(t.year) }

// Comment returns the comment. When a track number is stored, at most
// 28 characters of comment survive a write instead of 30.
func (t *Tag) Comment() string { return string(t.comment) }

// Track returns the track number and whether one is set.
func (t *Tag) Track() (int, bool) {
	return t.track, t.track != 0
}

// Genre returns the raw genre byte value, 0..255. GenreUnknown (255)
// means no specific genre. Use GenreName to resolve it to a name.
func (t *Tag) Genre() int { return t.genre }

// SetTitle sets the song title. Text longer than 30 bytes is truncated
// when written to disk.
func (t *Tag) SetTitle(s string) {
	t.title = []byte(s)
	t.touch()
}

// SetArtist sets the artist. Text longer than 30 bytes is truncated
// when written to disk.
func (t *Tag) SetArtist(s string) {
	t.artist = []byte(s)
	t.touch()
}

// SetAlbum sets the album title. Text longer than 30 bytes is
// truncated when written to disk.
func (t *Tag) SetAlbum(s string) {
	t.album = []byte(s)
	t.touch()
}

// SetYear sets the release year. Text longer than 4 bytes is truncated
// when written to disk.
func (t *Tag) SetYear(s string) {
	t.year = []byte(s)
	t.touch()
}

// SetComment sets the comment. Text longer than 30 bytes (28 when a
// track number is stored) is truncated when written to disk.
func (t *Tag) SetComment(s string) {
	t.comment = []byte(s)
	t.touch()
}

// SetTrack sets the track number. Valid values are 1 through 254;
// 0 clears the track. Anything else is rejected.
func (t *Tag) SetTrack(n int) error {
	if n < 0 || n > 254 {
		return fmt.Errorf("track number %d out of range 0..254", n)
	}
	t.track = n
	t.touch()
	return nil
}

// SetGenre sets the genre by numeric value, 0..255. A value that is
// not a legal table index is stored as given and shows up in the view
// as UnknownGenreName; it is not an error.
func (t *Tag) SetGenre(n int) error {
	if n < 0 || n > 255 {
		return fmt.Errorf("genre value %d out of range 0..255", n)
	}
	t.genre = n
	t.genreLabel = GenreName(n)
	t.touch()
	return nil
}

// SetGenreName sets the genre by name, resolved case-insensitively
// against Genres. An unknown name is not an error: the genre degrades
// to GenreUnknown and the view shows UnknownGenreName. The caller's
// spelling is preserved in the view when the name resolves.
func (t *Tag) SetGenreName(name string) {
	if i := FindGenre(name); i >= 0 {
		t.genre = i
		t.genreLabel = name
	} else {
		t.genre = GenreUnknown
		t.genreLabel = UnknownGenreName
	}
	t.touch()
}

// Set assigns a field by view key. KeyTrackNumber expects a numeric
// string; KeyGenre resolves the value as a genre name. Unknown keys
// are rejected.
func (t *Tag) Set(key, value string) error {
	switch key {
	case KeyTitle:
		t.SetTitle(value)
	case KeyArtist:
		t.SetArtist(value)
	case KeyAlbum:
		t.SetAlbum(value)
	case KeyYear:
		t.SetYear(value)
	case KeyComment:
		t.SetComment(value)
	case KeyTrackNumber:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("track number %q is not numeric", value)
		}
		return t.SetTrack(n)
	case KeyGenre:
		t.SetGenreName(value)
	default:
		return fmt.Errorf("unknown tag key %q", key)
	}
	return nil
}

// Delete clears every field and flags the record for removal by the
// next Write. Deleting when no record existed on disk makes the next
// Write a no-op.
func (t *Tag) Delete() {
	t.zero()
	t.pendingDelete = true
	t.present = false
	t.dirty = true
}

// viewValue returns the view value for key and whether the key is
// present. The view is derived from the fields, so the two surfaces
// cannot drift apart.
func (t *Tag) viewValue(key string) (string, bool) {
	switch key {
	case KeyTitle:
		if len(t.title) > 0 {
			return string(t.title), true
		}
	case KeyArtist:
		if len(t.artist) > 0 {
			return string(t.artist), true
		}
	case KeyAlbum:
		if len(t.album) > 0 {
			return string(t.album), true
		}
	case KeyYear:
		if len(t.year) > 0 {
			return string(t.year), true
		}
	case KeyComment:
		if len(t.comment) > 0 {
			return string(t.comment), true
		}
	case KeyGenre:
		return t.genreLabel, true
	case KeyTrackNumber:
		if t.track != 0 {
			return strconv.Itoa(t.track), true
		}
	}
	return "", false
}

// Keys returns the view keys in canonical record order.
func (t *Tag) Keys() []string {
	keys := make([]string, 0, len(viewOrder))
	for _, k := range viewOrder {
		if _, ok := t.viewValue(k); ok {
			keys = append(keys, k)
		}
	}
	return keys
}

// Values returns the view values, in the same order as Keys.
func (t *Tag) Values() []string {
	vals := make([]string, 0, len(viewOrder))
	for _, k := range viewOrder {
		if v, ok := t.viewValue(k); ok {
			vals = append(vals, v)
		}
	}
	return vals
}

// Has reports whether key is present in the view.
func (t *Tag) Has(key string) bool {
	_, ok := t.viewValue(key)
	return ok
}

// Get returns the view value for key, or def when the key is absent.
func (t *Tag) Get(key, def string) string {
	if v, ok := t.viewValue(key); ok {
		return v
	}
	return def
}

// GetAll returns the view value for key as a slice, empty when the key
// is absent. A present key always yields exactly one element; the
// slice shape exists for callers that treat tags as multi-valued the
// way Vorbis comments are.
func (t *Tag) GetAll(key string) []string {
	if v, ok := t.viewValue(key); ok {
		return []string{v}
	}
	return nil
}

// AsMap returns the view as a plain map.
func (t *Tag) AsMap() map[string]string {
	m := make(map[string]string, len(viewOrder))
	for _, k := range viewOrder {
		if v, ok := t.viewValue(k); ok {
			m[k] = v
		}
	}
	return m
}

// String returns a human-readable summary of the tag, one block per
// file, as printed by the id3tag tool.
func (t *Tag) String() string {
	if !t.present {
		return fmt.Sprintf("%s: no ID3 tag.", t.name)
	}

	track := "Unknown"
	if t.track != 0 {
		track = strconv.Itoa(t.track)
	}
	genre := UnknownGenreName
	if IsLegalGenre(t.genre) {
		genre = Genres[t.genre]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "File   : %s\n", t.name)
	fmt.Fprintf(&b, "Title  : %-30.30s  Artist: %-30.30s\n", t.title, t.artist)
	fmt.Fprintf(&b, "Album  : %-30.30s  Track : %s  Year: %-4.4s\n", t.album, track, t.year)
	fmt.Fprintf(&b, "Comment: %-30.30s  Genre : %s (%d)", t.comment, genre, t.genre)
	return b.String()
}
