package iocsv_test

import (
	"io"
	"strings"
	"testing"

	"github.com/onestep/osimport/internal/iocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRows(t *testing.T) {
	input := "name,campus\nAmbiente Construído,Colatina\nRobótica,Serra\n"
	r, err := iocsv.New(strings.NewReader(input), "utf-8", ',')
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "campus"}, r.Header())

	row, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, 2, row.Line)
	assert.Equal(t, "Ambiente Construído", row.Fields["name"])
	assert.Equal(t, "Colatina", row.Fields["campus"])

	row, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, 3, row.Line)
	assert.Equal(t, "Robótica", row.Fields["name"])

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestStripsBOMAndWhitespace(t *testing.T) {
	input := "\xef\xbb\xbf name , campus \n  Ambiente Construído ,  Colatina\n"
	r, err := iocsv.New(strings.NewReader(input), "utf-8", ',')
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "campus"}, r.Header())

	row, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "Ambiente Construído", row.Fields["name"])
	assert.Equal(t, "Colatina", row.Fields["campus"])
}

func TestSemicolonDelimiter(t *testing.T) {
	input := "name;campus\nAmbiente, Construído;Colatina\n"
	r, err := iocsv.New(strings.NewReader(input), "utf-8", ';')
	require.NoError(t, err)

	row, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "Ambiente, Construído", row.Fields["name"])
}

func TestLatin1Decoding(t *testing.T) {
	// "Vitória" with ó encoded as latin-1 0xf3.
	input := "campus\nVit\xf3ria\n"
	r, err := iocsv.New(strings.NewReader(input), "latin-1", ',')
	require.NoError(t, err)

	row, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "Vitória", row.Fields["campus"])
}

func TestUnknownEncoding(t *testing.T) {
	_, err := iocsv.New(strings.NewReader("a\n1\n"), "ebcdic", ',')
	assert.Error(t, err)
}

func TestMissingHeader(t *testing.T) {
	_, err := iocsv.New(strings.NewReader(""), "utf-8", ',')
	require.Error(t, err)
}

func TestFieldCountMismatch(t *testing.T) {
	input := "name,campus\nonly-one-field\n"
	r, err := iocsv.New(strings.NewReader(input), "utf-8", ',')
	require.NoError(t, err)

	_, err = r.Next()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2")
}

func TestRequireColumns(t *testing.T) {
	input := "name,campus\na,b\n"
	r, err := iocsv.New(strings.NewReader(input), "utf-8", ',')
	require.NoError(t, err)

	assert.NoError(t, r.RequireColumns([]string{"name", "campus"}))

	err = r.RequireColumns([]string{"name", "knowledge_area"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "knowledge_area")
}
