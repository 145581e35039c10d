package id3v1

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMany_PreservesOrder(t *testing.T) {
	dir := t.TempDir()
	titles := []string{"First", "Second", "Third"}
	paths := make([]string, len(titles))
	for i, title := range titles {
		rec := testRecord(title, "", "", "", "", 0, 255)
		paths[i] = filepath.Join(dir, title+".mp3")
		require.NoError(t, os.WriteFile(paths[i], append(audioBytes(100), rec...), 0o644))
	}

	tags, err := OpenMany(context.Background(), paths...)
	require.NoError(t, err)
	defer func() {
		for _, tag := range tags {
			tag.Close()
		}
	}()

	require.Len(t, tags, len(titles))
	for i, title := range titles {
		assert.Equal(t, title, tags[i].Title())
	}
}

func TestOpenMany_FailureClosesAll(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.mp3")
	rec := testRecord("Good", "", "", "", "", 0, 255)
	require.NoError(t, os.WriteFile(good, append(audioBytes(100), rec...), 0o644))

	tags, err := OpenMany(context.Background(), good, filepath.Join(dir, "missing.mp3"))
	require.Error(t, err)
	assert.Nil(t, tags)
}

func TestOpenMany_NoPaths(t *testing.T) {
	tags, err := OpenMany(context.Background())
	require.NoError(t, err)
	assert.Nil(t, tags)
}
