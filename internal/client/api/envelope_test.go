package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeList(t *testing.T, b []byte) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	return out
}

func TestNormalizeList_PaginatedAndBareAgree(t *testing.T) {
	paged := []byte(`{"count":2,"next":null,"previous":null,"results":[{"id":1},{"id":2}]}`)
	bare := []byte(`[{"id":1},{"id":2}]`)

	fromPaged := decodeList(t, NormalizeList(paged))
	fromBare := decodeList(t, NormalizeList(bare))

	require.Equal(t, fromBare, fromPaged)
	require.Len(t, fromPaged, 2)
	require.EqualValues(t, 1, fromPaged[0]["id"])
	require.EqualValues(t, 2, fromPaged[1]["id"])
}

func TestNormalizeList_UnrecognizedShapes(t *testing.T) {
	tests := []struct {
		name string
		body []byte
	}{
		{"empty object", []byte(`{}`)},
		{"null", []byte(`null`)},
		{"scalar", []byte(`42`)},
		{"results not an array", []byte(`{"results":"nope"}`)},
		{"empty input", nil},
		{"malformed", []byte(`{"resu`)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Empty(t, decodeList(t, NormalizeList(tc.body)))
		})
	}
}

func TestNormalizeList_PreservesOrder(t *testing.T) {
	body := []byte(`{"results":[{"id":3},{"id":1},{"id":2}]}`)
	out := decodeList(t, NormalizeList(body))
	require.EqualValues(t, 3, out[0]["id"])
	require.EqualValues(t, 1, out[1]["id"])
	require.EqualValues(t, 2, out[2]["id"])
}
