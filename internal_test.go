package bibfmt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitleWordsStopwordFiltering(t *testing.T) {
	t.Parallel()
	words := titleWords("The Theory of Everything")
	assert.Equal(t, []string{"Theory", "Everything"}, words)
}

func TestTitleWordsFilteringIdempotent(t *testing.T) {
	t.Parallel()
	// A second filtering pass over the surviving tokens removes nothing.
	words := titleWords("on the origin of species by means of natural selection")
	require.NotEmpty(t, words)
	for _, w := range words {
		assert.False(t, isSkipWord(strings.ToLower(w)), "token %q survived the first pass", w)
	}
}

func TestTitleWordsMultiWordStopwordsNeverMatch(t *testing.T) {
	t.Parallel()
	// "according to" is in the set, but tokens are matched one at a time:
	// "according" survives, "to" is dropped on its own.
	words := titleWords("according to plan")
	assert.Equal(t, []string{"According", "Plan"}, words)
}

func TestTitleWordsStripsPunctuation(t *testing.T) {
	t.Parallel()
	words := titleWords("What's past is prologue: 2nd ed.")
	assert.Equal(t, []string{"Whats", "Past", "Is", "Prologue"}, words)
}

func TestTitleWordsEmptyTitle(t *testing.T) {
	t.Parallel()
	assert.Empty(t, titleWords(""))
	assert.Empty(t, titleWords("the of and"))
}

func TestTitleWordsKeepsThru(t *testing.T) {
	t.Parallel()
	// The published list spells its entry " thru" with a leading space,
	// so the bare token passes the filter ("throughout" and "thruout"
	// are matched; "through" is too, as its own entry).
	assert.False(t, isSkipWord("thru"))
	words := titleWords("data thru pipes")
	assert.Equal(t, []string{"Data", "Thru", "Pipes"}, words)
}

func TestIsSkipWordCasefolded(t *testing.T) {
	t.Parallel()
	assert.True(t, isSkipWord("the"))
	assert.True(t, isSkipWord("The"))
	assert.True(t, isSkipWord("VON"))
	assert.False(t, isSkipWord("theory"))
}

func TestCapitalize(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Theory", capitalize("theory"))
	assert.Equal(t, "2nd", capitalize("2nd"))
	assert.Equal(t, "", capitalize(""))
}

func TestFirstAuthorFamilyShapes(t *testing.T) {
	t.Parallel()
	for name, doc := range map[string]Document{
		"any slice":  {"author_list": []any{map[string]any{"family": "Knuth"}}},
		"map slice":  {"author_list": []map[string]any{{"family": "Knuth"}}},
		"documents":  {"author_list": []Document{{"family": "Knuth"}}},
		"nested any": {"author_list": []any{Document{"family": "Knuth"}}},
	} {
		family, err := firstAuthorFamily(doc)
		require.NoError(t, err, name)
		assert.Equal(t, "Knuth", family, name)
	}
}

func TestFirstAuthorFamilyUnusableList(t *testing.T) {
	t.Parallel()
	_, err := firstAuthorFamily(Document{"author_list": "Knuth"})
	require.ErrorIs(t, err, ErrMissingField)
	_, err = firstAuthorFamily(Document{"author_list": []any{"Knuth"}})
	require.ErrorIs(t, err, ErrMissingField)
}

func TestBindContextDocumentWins(t *testing.T) {
	t.Parallel()
	doc := Document{"title": "Foo"}
	ctx := bindContext("doc", doc, "", Bindings{"doc": "shadowed", "extra": 1})
	assert.Equal(t, doc, ctx["doc"])
	assert.Equal(t, 1, ctx["extra"])
}

func TestBindContextDocKeyOverride(t *testing.T) {
	t.Parallel()
	doc := Document{"title": "Foo"}
	ctx := bindContext("doc", doc, "rec", nil)
	assert.Equal(t, doc, ctx["rec"])
	assert.NotContains(t, ctx, "doc")
}

func TestDocNameFromConfig(t *testing.T) {
	t.Parallel()
	assert.Equal(t, DefaultDocName, docNameFromConfig(nil))
	assert.Equal(t, DefaultDocName, docNameFromConfig(ConfigMap{}))
	assert.Equal(t, "record", docNameFromConfig(ConfigMap{OptionDocName: "record"}))
}

func TestRequireStringifiesScalars(t *testing.T) {
	t.Parallel()
	doc := Document{"year": 1977}
	year, err := doc.require("year")
	require.NoError(t, err)
	assert.Equal(t, "1977", year)
}
