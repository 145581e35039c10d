package id3v1

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindGenre_CaseInsensitive(t *testing.T) {
	want := FindGenre("Rock")
	assert.Equal(t, 17, want)
	assert.Equal(t, want, FindGenre("rock"))
	assert.Equal(t, want, FindGenre("ROCK"))
	assert.Equal(t, want, FindGenre("rOcK"))
}

func TestFindGenre_NotFound(t *testing.T) {
	assert.Equal(t, -1, FindGenre("Chiptune Polka Fusion"))
	assert.Equal(t, -1, FindGenre(""))
}

func TestFindGenre_FirstMatch(t *testing.T) {
	// "Fusion" appears twice in the table; the first entry wins.
	idx := FindGenre("Fusion")
	assert.Equal(t, 30, idx)
	assert.Equal(t, "Fusion", Genres[30])
	assert.Equal(t, "Fusion", Genres[85])
}

func TestIsLegalGenre(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want bool
	}{
		{"negative", -1, false},
		{"first entry", 0, true},
		{"rock", 17, true},
		{"last entry", len(Genres) - 1, true},
		{"one past end", len(Genres), false},
		{"unknown sentinel", GenreUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLegalGenre(tt.n))
		})
	}
}

func TestGenreName(t *testing.T) {
	assert.Equal(t, "Blues", GenreName(0))
	assert.Equal(t, "Rock", GenreName(17))
	assert.Equal(t, UnknownGenreName, GenreName(GenreUnknown))
	assert.Equal(t, UnknownGenreName, GenreName(-1))
	assert.Equal(t, UnknownGenreName, GenreName(len(Genres)))
}
