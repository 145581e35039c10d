// Package id3v1 reads, edits, and writes ID3v1 tags: the fixed
// 128-byte metadata record stored in the last 128 bytes of an MP3
// file.
//
// # Quick Start
//
// Reading a tag:
//
//	tag, err := id3v1.Open("song.mp3")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer tag.Close()
//
//	fmt.Printf("%s - %s\n", tag.Artist(), tag.Title())
//
// Editing and writing back:
//
//	tag.SetTitle("Test Song")
//	tag.SetGenreName("Rock")
//	if err := tag.Write(); err != nil {
//		log.Fatal(err)
//	}
//
// # The Record
//
// An ID3v1 tag occupies the trailing 128 bytes of the file: the ASCII
// magic "TAG", then title(30), artist(30), album(30), year(4),
// comment(30), and a one-byte genre index into Genres. A file without
// the magic simply has no tag; Open still succeeds and a later Write
// appends a fresh record.
//
// The ID3 v1.1 refinement embeds a track number in the comment field:
// when comment byte 28 is NUL and byte 29 is not, byte 29 is the track
// and the visible comment is 28 bytes.
//
// # Two Surfaces
//
// Fields are available through typed accessors (Title, SetTitle, ...)
// and through a key/value view (Get, Set, Keys, AsMap) keyed by
// TITLE, ARTIST, ALBUM, YEAR, COMMENT, GENRE, and TRACKNUMBER. The
// view is sparse: a key is present only when its field is set, except
// GENRE, which is always present and falls back to "Unknown Genre".
//
// # Writing
//
// Nothing touches the file until Write. A clean tag writes as a no-op.
// Deleting truncates the trailing 128 bytes. Before overwriting an
// existing record, Write re-checks the magic bytes and aborts with a
// StaleTagError if another process changed the file since open.
//
// Close performs a last best-effort write but only logs failures; call
// Write explicitly when you need to see them.
package id3v1
