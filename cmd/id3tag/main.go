// Command id3tag displays and edits ID3v1 tags in MP3 files.
//
// With no editing flags, it prints the tag of each file given. With
// editing flags, it applies the edits to every file and prints the
// result.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/simonhull/id3v1"
	"github.com/spf13/cobra"
)

var (
	title   string
	artist  string
	album   string
	year    string
	comment string
	genre   string
	track   int
	remove  bool
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "id3tag [flags] file...",
	Short: "Display and edit ID3v1 tags in MP3 files",
	Long: `id3tag reads and edits the ID3v1 tag, the 128-byte metadata record
stored at the end of an MP3 file.

With no editing flags, the tag of each file is displayed. Editing
flags are applied to every file given, and the updated tag is
displayed and written back.

The genre can be given either as a numeric table index or as a name
("Rock", "acid jazz", ...), matched case-insensitively.`,
	Args:          cobra.MinimumNArgs(1),
	Version:       id3v1.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		edits := collectEdits(cmd)

		failures := 0
		for _, path := range args {
			if err := processFile(path, edits); err != nil {
				fmt.Fprintf(os.Stderr, "id3tag: %v\n", err)
				failures++
			}
		}
		if failures > 0 {
			return fmt.Errorf("%d of %d file(s) failed", failures, len(args))
		}
		return nil
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&title, "title", "t", "", "set the song title")
	flags.StringVarP(&artist, "artist", "a", "", "set the artist")
	flags.StringVarP(&album, "album", "A", "", "set the album title")
	flags.StringVarP(&year, "year", "y", "", "set the release year")
	flags.StringVarP(&comment, "comment", "c", "", "set the comment")
	flags.StringVarP(&genre, "genre", "g", "", "set the genre, by name or table index")
	flags.IntVarP(&track, "track", "T", 0, "set the track number (1-254)")
	flags.BoolVarP(&remove, "delete", "d", false, "delete the tag completely")
}

// edit is one pending field assignment, in flag order.
type edit struct {
	key   string
	value string
}

// collectEdits gathers the editing flags that were explicitly set.
func collectEdits(cmd *cobra.Command) []edit {
	var edits []edit
	add := func(flag, key, value string) {
		if cmd.Flags().Changed(flag) {
			edits = append(edits, edit{key: key, value: value})
		}
	}
	add("title", id3v1.KeyTitle, title)
	add("artist", id3v1.KeyArtist, artist)
	add("album", id3v1.KeyAlbum, album)
	add("year", id3v1.KeyYear, year)
	add("comment", id3v1.KeyComment, comment)
	add("genre", id3v1.KeyGenre, genre)
	add("track", id3v1.KeyTrackNumber, strconv.Itoa(track))
	return edits
}

// processFile applies the pending edits to one file and prints the
// resulting tag.
func processFile(path string, edits []edit) error {
	tag, err := id3v1.Open(path)
	if err != nil {
		return err
	}
	defer tag.Close()

	for _, e := range edits {
		if e.key == id3v1.KeyGenre {
			if n, err := strconv.Atoi(e.value); err == nil {
				if err := tag.SetGenre(n); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				continue
			}
		}
		if err := tag.Set(e.key, e.value); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	if remove {
		tag.Delete()
	}

	fmt.Println(tag)

	if len(edits) > 0 || remove {
		return tag.Write()
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "id3tag: %v\n", err)
		os.Exit(1)
	}
}
