package corpus_test

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cjnimes/Nonsense-Text/corpus"
	"github.com/cjnimes/Nonsense-Text/weighted"
)

func file(s string) *fstest.MapFile { return &fstest.MapFile{Data: []byte(s)} }

// TestLoad_CSV groups rows sharing a weight and sorts ascending.
func TestLoad_CSV(t *testing.T) {
	fsys := fstest.MapFS{
		"xx/word-syllables.csv": file("# comment\nca,1\nsa,1\n\nto, 4\n"),
		"xx/word-lengths.csv":   file("2,1\n4,3\n"),
	}

	lang, err := corpus.Load(fsys, "xx")
	require.NoError(t, err)
	assert.Equal(t, "xx", lang.Name)
	assert.Equal(t, []weighted.Bucket[string]{
		{Weight: 1, Values: []string{"ca", "sa"}},
		{Weight: 4, Values: []string{"to"}},
	}, lang.Syllables.Buckets())
	assert.Equal(t, []weighted.Bucket[int]{
		{Weight: 1, Values: []int{2}},
		{Weight: 3, Values: []int{4}},
	}, lang.Lengths.Buckets())
}

// TestLoad_YAMLFallback reads YAML only when the CSV is missing.
func TestLoad_YAMLFallback(t *testing.T) {
	fsys := fstest.MapFS{
		"yy/word-syllables.yaml": file("rows:\n  - {value: on, weight: 2}\n  - {value: ta, weight: 5}\n"),
		"yy/word-lengths.yml":    file("rows:\n  - value: 3\n    weight: 7\n"),
		"yy/word-lengths.csv":    file("2,9\n"),
	}

	lang, err := corpus.Load(fsys, "yy")
	require.NoError(t, err)
	assert.Equal(t, 7, lang.Syllables.Total())
	assert.Equal(t, []weighted.Bucket[int]{{Weight: 9, Values: []int{2}}}, lang.Lengths.Buckets(), "CSV wins over YAML")
}

// TestLoad_Errors verifies every failure matches ErrDataLoad plus its cause.
func TestLoad_Errors(t *testing.T) {
	good := "ca,1\n"
	cases := []struct {
		name  string
		lang  string
		fsys  fstest.MapFS
		cause error
	}{
		{"emptyLanguage", "", fstest.MapFS{}, corpus.ErrBadLanguage},
		{"pathLanguage", "../es", fstest.MapFS{}, corpus.ErrBadLanguage},
		{"missingSyllables", "xx", fstest.MapFS{"xx/word-lengths.csv": file("2,1\n")}, corpus.ErrMissingTable},
		{"missingLengths", "xx", fstest.MapFS{"xx/word-syllables.csv": file(good)}, corpus.ErrMissingTable},
		{"emptySyllables", "xx", fstest.MapFS{
			"xx/word-syllables.csv": file("# nothing\n"),
			"xx/word-lengths.csv":   file("2,1\n"),
		}, weighted.ErrEmptyTable},
		{"badWeight", "xx", fstest.MapFS{
			"xx/word-syllables.csv": file("ca,many\n"),
			"xx/word-lengths.csv":   file("2,1\n"),
		}, corpus.ErrMalformedRow},
		{"zeroWeight", "xx", fstest.MapFS{
			"xx/word-syllables.csv": file("ca,0\n"),
			"xx/word-lengths.csv":   file("2,1\n"),
		}, weighted.ErrBadWeight},
		{"wrongColumns", "xx", fstest.MapFS{
			"xx/word-syllables.csv": file("ca,1,extra\n"),
			"xx/word-lengths.csv":   file("2,1\n"),
		}, corpus.ErrMalformedRow},
		{"emptySyllable", "xx", fstest.MapFS{
			"xx/word-syllables.csv": file(" ,3\n"),
			"xx/word-lengths.csv":   file("2,1\n"),
		}, corpus.ErrMalformedRow},
		{"badLength", "xx", fstest.MapFS{
			"xx/word-syllables.csv": file(good),
			"xx/word-lengths.csv":   file("two,1\n"),
		}, corpus.ErrMalformedRow},
		{"zeroLength", "xx", fstest.MapFS{
			"xx/word-syllables.csv": file(good),
			"xx/word-lengths.csv":   file("0,1\n"),
		}, corpus.ErrMalformedRow},
		{"badYAML", "xx", fstest.MapFS{
			"xx/word-syllables.yaml": file("rows: [\n"),
			"xx/word-lengths.csv":    file("2,1\n"),
		}, corpus.ErrMalformedRow},
		{"unreachable", "xx", fstest.MapFS{
			"xx/word-syllables.csv": file("cosa,1\n"),
			"xx/word-lengths.csv":   file("2,1\n3,1\n"),
		}, corpus.ErrUnreachableLength},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := corpus.Load(tc.fsys, tc.lang)
			require.Error(t, err)
			assert.ErrorIs(t, err, corpus.ErrDataLoad)
			assert.ErrorIs(t, err, tc.cause)

			var le *corpus.LoadError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, tc.lang, le.Lang)
		})
	}
}

func TestLoadError_Message(t *testing.T) {
	err := &corpus.LoadError{Lang: "es", File: "es/word-lengths.csv", Err: corpus.ErrMissingTable}
	assert.Equal(t, `corpus: language "es": es/word-lengths.csv: corpus: table not found`, err.Error())

	err = &corpus.LoadError{Lang: "", Err: corpus.ErrBadLanguage}
	assert.Equal(t, `corpus: language "": corpus: invalid language identifier`, err.Error())

	err = &corpus.LoadError{File: ".", Err: fs.ErrPermission}
	assert.Equal(t, `corpus: .: permission denied`, err.Error())
}

// TestDefault loads every embedded language.
func TestDefault(t *testing.T) {
	langs, err := corpus.Languages(corpus.Default())
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "es"}, langs)

	for _, name := range langs {
		lang, err := corpus.Load(corpus.Default(), name)
		require.NoError(t, err, name)
		assert.Greater(t, lang.Syllables.Len(), 10, name)
		assert.Greater(t, lang.Lengths.Len(), 5, name)
	}
}

func TestLanguages_SkipsIncomplete(t *testing.T) {
	fsys := fstest.MapFS{
		"aa/word-syllables.csv":  file("ca,1\n"),
		"bb/notes.txt":           file("x"),
		"cc/word-syllables.yaml": file("rows: []\n"),
		"readme.md":              file("x"),
	}
	langs, err := corpus.Languages(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"aa", "cc"}, langs)
}

// unreadableFS fails every Open, so the root cannot be listed.
type unreadableFS struct{}

func (unreadableFS) Open(name string) (fs.File, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
}

func TestLanguages_UnreadableRoot(t *testing.T) {
	langs, err := corpus.Languages(unreadableFS{})
	require.Error(t, err)
	assert.Nil(t, langs)
	assert.ErrorIs(t, err, corpus.ErrDataLoad)
	assert.ErrorIs(t, err, fs.ErrPermission)

	var lerr *corpus.LoadError
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, ".", lerr.File)
}

// TestLoad_MultibyteSyllables counts syllable lengths in runes: "ñe" fits a
// two-letter word.
func TestLoad_MultibyteSyllables(t *testing.T) {
	fsys := fstest.MapFS{
		"xx/word-syllables.csv": file("ñe,3\ngüe,1\n"),
		"xx/word-lengths.csv":   file("2,1\n"),
	}
	lang, err := corpus.Load(fsys, "xx")
	require.NoError(t, err)
	assert.Equal(t, 2, lang.Syllables.Len())
}
