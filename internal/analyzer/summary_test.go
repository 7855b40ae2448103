package analyzer

import (
	"testing"

	"github.com/mcncl/rdjson/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	doc := parseDoc(t, `{"a": [1, 2.5, {"b": null}], "c": true, "d": "s", "e": {}}`)

	s := Summarize(doc.Root)

	assert.Equal(t, 3, s.Counts[models.KindObject])
	assert.Equal(t, 1, s.Counts[models.KindArray])
	assert.Equal(t, 2, s.Counts[models.KindNumber])
	assert.Equal(t, 1, s.Counts[models.KindString])
	assert.Equal(t, 1, s.Counts[models.KindBool])
	assert.Equal(t, 1, s.Counts[models.KindNull])
	assert.Equal(t, 1, s.Integers)
	assert.Equal(t, 1, s.Floats)
	assert.Equal(t, 5, s.Keys)
	assert.Equal(t, 3, s.MaxDepth)
}

func TestSummarize_EmptyRoot(t *testing.T) {
	s := Summarize(models.ObjectValue{})
	assert.Equal(t, 1, s.Counts[models.KindObject])
	assert.Equal(t, 0, s.Keys)
	assert.Equal(t, 1, s.MaxDepth)
}
