package sqlite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLikePattern(t *testing.T) {
	require.Equal(t, "%golang%", likePattern("GoLang"))
	require.Equal(t, `%100\%%`, likePattern("100%"))
	require.Equal(t, `%snake\_case%`, likePattern("snake_case"))
	require.Equal(t, `%back\\slash%`, likePattern(`back\slash`))
}

func TestNormalizePage(t *testing.T) {
	page, limit, offset := normalizePage(0, 0, 10)
	require.Equal(t, 1, page)
	require.Equal(t, 10, limit)
	require.Equal(t, 0, offset)

	page, limit, offset = normalizePage(3, 20, 10)
	require.Equal(t, 3, page)
	require.Equal(t, 20, limit)
	require.Equal(t, 40, offset)
}

func TestDecodeJSONEmpty(t *testing.T) {
	var dst struct{ A int }
	require.NoError(t, decodeJSON("", &dst))
	require.NoError(t, decodeJSON("null", &dst))
	require.Zero(t, dst.A)

	require.NoError(t, decodeJSON(`{"A":7}`, &dst))
	require.Equal(t, 7, dst.A)
}
