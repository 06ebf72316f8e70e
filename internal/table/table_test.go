package table

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSchema = Schema{
	Name:    "matches",
	File:    "matches.csv",
	Columns: []string{"team", "score", "played_at"},
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), testSchema.File)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCreate(t *testing.T) {
	t.Run("creates header and seed rows", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), testSchema.File)

		created, err := Create(path, testSchema, [][]string{{"Naruto", "0", "2024-05-01 10:00:00"}})
		require.NoError(t, err)
		assert.True(t, created)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "team,score,played_at\nNaruto,0,2024-05-01 10:00:00\n", string(data))
	})

	t.Run("existing file is left untouched", func(t *testing.T) {
		path := writeFile(t, "team,score,played_at\nSasuke,7,2024-05-01 10:00:00\n")

		created, err := Create(path, testSchema, [][]string{{"Naruto", "0", "2024-05-01 10:00:00"}})
		require.NoError(t, err)
		assert.False(t, created)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "Sasuke")
		assert.NotContains(t, string(data), "Naruto")
	})

	t.Run("missing directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "absent", testSchema.File)

		_, err := Create(path, testSchema, nil)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})
}

func TestReadAll(t *testing.T) {
	t.Run("reads rows by column name", func(t *testing.T) {
		path := writeFile(t, "score,team,played_at,extra\n3,Naruto,2024-05-01 10:00:00,x\n5,Sasuke,2024-05-01 10:00:01,y\n")

		records, err := ReadAll(path, testSchema)
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, "Naruto", records[0].Get("team"))
		assert.Equal(t, 2, records[0].Line())
		score, err := records[1].Int("score")
		require.NoError(t, err)
		assert.Equal(t, 5, score)
		assert.Equal(t, 3, records[1].Line())
	})

	t.Run("quoted fields with commas and newlines", func(t *testing.T) {
		path := writeFile(t, "team,score,played_at\n\"Team, Blue\",1,2024-05-01 10:00:00\n\"multi\nline\",2,2024-05-01 10:00:00\n")

		records, err := ReadAll(path, testSchema)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "Team, Blue", records[0].Get("team"))
		assert.Equal(t, "multi\nline", records[1].Get("team"))
	})

	t.Run("header only", func(t *testing.T) {
		path := writeFile(t, "team,score,played_at\n")

		records, err := ReadAll(path, testSchema)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadAll(filepath.Join(t.TempDir(), "nope.csv"), testSchema)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeFile(t, "")

		_, err := ReadAll(path, testSchema)
		assert.ErrorIs(t, err, ErrEmptyTable)
	})

	t.Run("header missing a column", func(t *testing.T) {
		path := writeFile(t, "team,score\nNaruto,1\n")

		_, err := ReadAll(path, testSchema)
		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, 1, parseErr.Line)
		assert.Equal(t, "played_at", parseErr.Column)
		assert.ErrorIs(t, err, ErrMissingColumn)
	})

	t.Run("row missing a field", func(t *testing.T) {
		path := writeFile(t, "team,score,played_at\nNaruto,1,2024-05-01 10:00:00\nSasuke,2\n")

		_, err := ReadAll(path, testSchema)
		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, 3, parseErr.Line)
		assert.Equal(t, "played_at", parseErr.Column)
		assert.ErrorIs(t, err, ErrMissingField)
		assert.Contains(t, err.Error(), "matches: line 3")
	})
}

func TestRecordConversions(t *testing.T) {
	path := writeFile(t, "team,score,played_at\nNaruto,many,yesterday\n")

	records, err := ReadAll(path, testSchema)
	require.NoError(t, err)
	require.Len(t, records, 1)

	_, err = records[0].Int("score")
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "score", parseErr.Column)

	_, err = records[0].Time("played_at")
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "played_at", parseErr.Column)

	assert.Empty(t, records[0].Get("unknown"))
}

func TestOverwrite(t *testing.T) {
	path := writeFile(t, "team,score,played_at\nOld,9,2024-01-01 00:00:00\nOlder,8,2024-01-01 00:00:00\n")

	err := Overwrite(path, testSchema, [][]string{{"Naruto", "3", "2024-05-01 10:00:00"}})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "team,score,played_at\nNaruto,3,2024-05-01 10:00:00\n", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no staging files left behind")
}

func TestOverwrite_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent", testSchema.File)

	err := Overwrite(path, testSchema, nil)
	assert.Error(t, err)
}

func TestAppend(t *testing.T) {
	t.Run("appends in order", func(t *testing.T) {
		path := writeFile(t, "team,score,played_at\n")

		require.NoError(t, Append(path, testSchema, []string{"A", "1", "2024-05-01 10:00:00"}))
		require.NoError(t, Append(path, testSchema, []string{"B", "2", "2024-05-01 10:00:01"}, []string{"C", "3", "2024-05-01 10:00:02"}))

		records, err := ReadAll(path, testSchema)
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "A", records[0].Get("team"))
		assert.Equal(t, "B", records[1].Get("team"))
		assert.Equal(t, "C", records[2].Get("team"))
	})

	t.Run("missing file is not created", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), testSchema.File)

		err := Append(path, testSchema, []string{"A", "1", "2024-05-01 10:00:00"})
		assert.ErrorIs(t, err, fs.ErrNotExist)

		assert.NoFileExists(t, path)
	})
}

func TestTimeFormat(t *testing.T) {
	ts := time.Date(2024, 5, 1, 9, 3, 7, 999, time.Local)
	text := FormatTime(ts)
	assert.Equal(t, "2024-05-01 09:03:07", text)

	parsed, err := ParseTime(text)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(ts.Truncate(time.Second)))
}
