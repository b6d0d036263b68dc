package feedback

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogComplete(t *testing.T) {
	for _, c := range Categories() {
		e, err := Lookup(c)
		require.NoError(t, err, c.String())
		assert.Equal(t, c, e.Category)
		assert.NotEmpty(t, e.Title, c.String())
		assert.NotEmpty(t, categoryNames[c], "category %d has no name", int(c))
	}

	assert.Len(t, Catalog(), 19)
}

func TestMessageUnknownCategory(t *testing.T) {
	for _, c := range []Category{-1, numCategories, 99} {
		_, err := Message(c)
		assert.True(t, errors.Is(err, ErrUnknownCategory), "category %d", int(c))
	}
}

func TestMessageFormat(t *testing.T) {
	msg, err := Message(MissingSubject)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(msg, "**No subject was detected.**"))
	assert.Contains(t, msg, "**Example**:  \n`I went to the park.`  \n")
	assert.Contains(t, msg, `(Here, "I" is the subject performing the action.)`)

	msg, err = Message(CorrectOrder)
	require.NoError(t, err)
	assert.Equal(t, "**Sentence is in correct SVM/SVO order. You can proceed.**", msg)
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("comma_splice")
	require.NoError(t, err)
	assert.Equal(t, CommaSplice, c)

	_, err = ParseCategory("split_infinitive")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCategoryJSON(t *testing.T) {
	data, err := json.Marshal(Entry{Category: DoubleNegative, Title: "x"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"category":"double_negative"`)

	var e Entry
	require.NoError(t, json.Unmarshal([]byte(`{"category":"passive_voice"}`), &e))
	assert.Equal(t, PassiveVoice, e.Category)

	_, err = json.Marshal(Category(42))
	assert.Error(t, err)
}

func TestCatalogIsACopy(t *testing.T) {
	entries := Catalog()
	entries[0].Title = "changed"

	e, err := Lookup(MissingSubject)
	require.NoError(t, err)
	assert.Equal(t, "No subject was detected.", e.Title)
}
