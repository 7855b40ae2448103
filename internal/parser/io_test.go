package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mcncl/rdjson/internal/errors"
	"github.com/mcncl/rdjson/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseString_WrapsParseErrors(t *testing.T) {
	_, err := ParseString(`{"a": 1,}`, DefaultOptions())
	require.Error(t, err)

	assert.ErrorIs(t, err, &errors.AppError{Type: errors.ErrorTypeParsing})
	assert.Equal(t, errors.KindTrailingCommaNoFollowingPair, errors.KindOf(err))
}

func TestParseString_Empty(t *testing.T) {
	_, err := ParseString("", DefaultOptions())
	require.Error(t, err)
	assert.Equal(t, errors.KindEmptyDocument, errors.KindOf(err))
}

func TestParseReader(t *testing.T) {
	doc, err := ParseReader(strings.NewReader(`{"name": "reader"}`), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, models.NewObject(map[string]models.Value{"name": models.StringValue("reader")}), doc.Root)
	assert.Empty(t, doc.Source)

	_, err = ParseReader(strings.NewReader(""), DefaultOptions())
	assert.ErrorIs(t, err, errors.ErrEmptyInput)
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(path, []byte("{\"id\": 7, \"tags\": [\"x\"]}\n"), 0644))

	doc, err := ParseFile(path, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, path, doc.Source)

	id, ok := doc.Root.Get("id")
	require.True(t, ok)
	assert.Equal(t, models.Integer(7), id)
}

func TestParseFile_Errors(t *testing.T) {
	dir := t.TempDir()
	emptyPath := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(emptyPath, nil, 0644))
	badPath := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badPath, []byte(`{"a": [1 2]}`), 0644))

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "empty path", path: "  ", wantErr: errors.ErrInvalidFilePath},
		{name: "missing file", path: filepath.Join(dir, "missing.json"), wantErr: errors.ErrFileNotFound},
		{name: "empty file", path: emptyPath, wantErr: errors.ErrFileEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFile(tt.path, DefaultOptions())
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, &errors.AppError{Type: errors.ErrorTypeInput})
		})
	}

	_, err := ParseFile(badPath, DefaultOptions())
	assert.Equal(t, errors.KindMissingCommaBetweenElements, errors.KindOf(err))
}

func TestParseFile_Testdata(t *testing.T) {
	doc, err := ParseFile(filepath.Join("..", "..", "testdata", "samples", "catalog.json"), DefaultOptions())
	require.NoError(t, err)

	products, ok := doc.Root.Get("products")
	require.True(t, ok)
	require.Equal(t, models.KindArray, products.Kind())
	assert.Equal(t, 2, products.(models.ArrayValue).Len())
}
