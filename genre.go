package id3v1

import "strings"

// GenreUnknown is the genre byte meaning "no specific genre". It is a
// sentinel, not a valid index into Genres.
const GenreUnknown = 255

// UnknownGenreName is the display name used when a genre byte has no
// table entry.
const UnknownGenreName = "Unknown Genre"

// Genres is the canonical ordered genre table. The genre byte of a tag
// indexes into this table. The list comes from WinAMP, which defined
// the de-facto extension of the original ID3v1 genre set.
var Genres = [...]string{
	"Blues", "Classic Rock", "Country", "Dance", "Disco", "Funk",
	"Grunge", "Hip-Hop", "Jazz", "Metal", "New Age", "Oldies",
	"Other", "Pop", "R&B", "Rap", "Reggae", "Rock",
	"Techno", "Industrial", "Alternative", "Ska", "Death Metal", "Pranks",
	"Soundtrack", "Euro-Techno", "Ambient", "Trip-Hop", "Vocal", "Jazz+Funk",
	"Fusion", "Trance", "Classical", "Instrumental", "Acid", "House",
	"Game", "Sound Clip", "Gospel", "Noise", "Alt. Rock", "Bass",
	"Soul", "Punk", "Space", "Meditative", "Instrum. Pop", "Instrum. Rock",
	"Ethnic", "Gothic", "Darkwave", "Techno-Indust.", "Electronic", "Pop-Folk",
	"Eurodance", "Dream", "Southern Rock", "Comedy", "Cult", "Gangsta",
	"Top 40", "Christian Rap", "Pop/Funk", "Jungle", "Native American", "Cabaret",
	"New Wave", "Psychadelic", "Rave", "Showtunes", "Trailer", "Lo-Fi",
	"Tribal", "Acid Punk", "Acid Jazz", "Polka", "Retro", "Musical",
	"Rock & Roll", "Hard Rock", "Folk", "Folk/Rock", "National Folk", "Swing",
	"Fusion", "Bebob", "Latin", "Revival", "Celtic", "Bluegrass",
	"Avantgarde", "Gothic Rock", "Progress. Rock", "Psychadel. Rock", "Symphonic Rock", "Slow Rock",
	"Big Band", "Chorus", "Easy Listening", "Acoustic", "Humour", "Speech",
	"Chanson", "Opera", "Chamber Music", "Sonata", "Symphony", "Booty Bass",
	"Primus", "Porn Groove", "Satire", "Slow Jam", "Club", "Tango",
	"Samba", "Folklore", "Ballad", "Power Ballad", "Rhythmic Soul", "Freestyle",
	"Duet", "Punk Rock", "Drum Solo", "A Capella", "Euro-House", "Dance Hall",
	"Goa", "Drum & Bass", "Club-House", "Hardcore", "Terror", "Indie",
	"BritPop", "Negerpunk", "Polsk Punk", "Beat", "Christian Gangsta Rap", "Heavy Metal",
	"Black Metal", "Crossover", "Contemporary Christian", "Christian Rock", "Merengue", "Salsa",
	"Thrash Metal", "Anime", "Jpop", "Synthpop",
}

// GenreName returns the table entry for index n, or UnknownGenreName
// when n is not a legal index.
func GenreName(n int) string {
	if !IsLegalGenre(n) {
		return UnknownGenreName
	}
	return Genres[n]
}

// FindGenre searches the table case-insensitively for name and returns
// the index of the first matching entry, or -1 if no entry matches.
func FindGenre(name string) int {
	for i, g := range Genres {
		if strings.EqualFold(g, name) {
			return i
		}
	}
	return -1
}

// IsLegalGenre reports whether n is a valid index into Genres.
// The sentinel GenreUnknown is not a legal index.
func IsLegalGenre(n int) bool {
	return n >= 0 && n < len(Genres)
}
