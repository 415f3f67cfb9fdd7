package similarity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/exutil-go/pkg/exutil/models"
	"github.com/ukaji3/exutil-go/pkg/exutil/similarity"
)

func TestRatio(t *testing.T) {
	t.Parallel()

	t.Run("identical strings score one", func(t *testing.T) {
		t.Parallel()

		for _, s := range []string{"", "a", "Total", "Grand total (incl. VAT)", "日本語"} {
			assert.Equal(t, 1.0, similarity.Ratio(s, s), s)
		}
	})

	t.Run("disjoint strings score low", func(t *testing.T) {
		t.Parallel()

		assert.Less(t, similarity.Ratio("abc", "xyz"), 0.5)
		assert.Equal(t, 0.0, similarity.Ratio("abc", ""))
	})

	t.Run("counts matching blocks", func(t *testing.T) {
		t.Parallel()

		// "app" + "l" match: 2*4/10.
		assert.InDelta(t, 0.8, similarity.Ratio("apple", "appel"), 1e-9)
		assert.InDelta(t, 0.75, similarity.Ratio("abcd", "bcde"), 1e-9)
	})

	t.Run("more shared structure scores higher", func(t *testing.T) {
		t.Parallel()

		assert.Greater(t, similarity.Ratio("Revenue", "Revenues"), similarity.Ratio("Revenue", "Rev"))
	})
}

func TestIsSimilar(t *testing.T) {
	t.Parallel()

	assert.True(t, similarity.IsSimilar("Total", " total ", 0.8))
	assert.False(t, similarity.IsSimilar("Total", "Subtotal amount", 0.8))
	assert.True(t, similarity.AnySimilar("apple", []string{"banana", "appel"}, 0.75))
	assert.False(t, similarity.AnySimilar("apple", []string{"banana", "cherry"}, 0.75))
	assert.False(t, similarity.AnySimilar("apple", nil, 0.75))
}

func TestScored(t *testing.T) {
	t.Parallel()

	t.Run("returns qualifying candidates with scores", func(t *testing.T) {
		t.Parallel()

		matches, scores := similarity.Scored("apple", []string{"appel", "banana"}, 0.75)
		assert.Equal(t, []string{"appel"}, matches)
		require.Len(t, scores, 1)
		assert.GreaterOrEqual(t, scores[0], 0.75)
	})

	t.Run("keeps encounter order", func(t *testing.T) {
		t.Parallel()

		matches, _ := similarity.Scored("apple", []string{"appel", "pear", "apple", "apples"}, 0.75)
		assert.Equal(t, []string{"appel", "apple", "apples"}, matches)
	})

	t.Run("nothing qualifies", func(t *testing.T) {
		t.Parallel()

		matches, scores := similarity.Scored("apple", []string{"kiwi"}, 0.75)
		assert.Nil(t, matches)
		assert.Nil(t, scores)
	})
}

func TestBest(t *testing.T) {
	t.Parallel()

	best, score, ok := similarity.Best("apple", []string{"appel", "apples", "apple"}, 0.75)
	require.True(t, ok)
	assert.Equal(t, "apple", best)
	assert.Equal(t, 1.0, score)

	_, _, ok = similarity.Best("apple", []string{"kiwi"}, 0.75)
	assert.False(t, ok)
}

func TestMatch(t *testing.T) {
	t.Parallel()

	t.Run("coerces numbers", func(t *testing.T) {
		t.Parallel()

		ok, err := similarity.Match(1234, "1234", 0.8)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = similarity.Match("12.5", 12.5, 0.8)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("accepts slices", func(t *testing.T) {
		t.Parallel()

		ok, err := similarity.Match("apple", []interface{}{"pear", 7, "appel"}, 0.75)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = similarity.Match(models.String("Total"), []models.Value{models.Number(3), models.String("Totals")}, 0.8)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("scored mode", func(t *testing.T) {
		t.Parallel()

		matches, scores, err := similarity.MatchScored("apple", []string{"appel", "banana"}, 0.75)
		require.NoError(t, err)
		assert.Equal(t, []string{"appel"}, matches)
		assert.Len(t, scores, 1)

		matches, scores, err = similarity.MatchScored("apple", "banana", 0.75)
		require.NoError(t, err)
		assert.Nil(t, matches)
		assert.Nil(t, scores)
	})

	t.Run("rejects unsupported types", func(t *testing.T) {
		t.Parallel()

		_, err := similarity.Match("apple", map[string]int{}, 0.8)
		assert.ErrorIs(t, err, models.ErrTypeMismatch)

		_, err = similarity.Match(struct{}{}, "apple", 0.8)
		assert.ErrorIs(t, err, models.ErrTypeMismatch)

		_, _, err = similarity.MatchScored("apple", []interface{}{"a", struct{}{}}, 0.8)
		assert.ErrorIs(t, err, models.ErrTypeMismatch)
	})
}
