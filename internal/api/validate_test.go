package api

import (
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	require.Equal(t, "abc", sanitize("  abc\n"))
	require.Equal(t, "alert(1)", sanitize("<script>alert(1)</script>"))
	require.Equal(t, "O&#39;Neil &amp; Filhos", sanitize("O'Neil & Filhos"))
	require.Equal(t, "a &gt; b", sanitize("a > b"))
}

func TestDecodeObject(t *testing.T) {
	t.Parallel()

	type body struct {
		Code Value `json:"codigo" validate:"required"`
		Name Value `json:"nome" validate:"required"`
		Note Value `json:"obs"`
	}

	var b body

	err := decodeObject([]byte(`{"codigo":"0","nome":false,"obs":1}`), &b)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Parâmetros obrigatórios ausentes: codigo, nome", apiErr.Message)

	var ok body

	err = decodeObject([]byte(`{"codigo":"7","nome":"Maria"}`), &ok)
	require.NoError(t, err)
	require.Equal(t, "7", ok.Code.String())
	require.Equal(t, KindNull, ok.Note.Kind())

	err = decodeObject([]byte(`"text"`), &b)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Dados JSON inválidos", apiErr.Message)
}

func TestParsePage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query string
		page  uint64
		limit uint64
	}{
		{query: "", page: 1, limit: 20},
		{query: "page=0&limit=0", page: 1, limit: 1},
		{query: "page=-2&limit=abc", page: 1, limit: 20},
		{query: "page=3&limit=1000", page: 3, limit: 100},
		{query: "page=18446744073709551615&limit=100", page: math.MaxInt64 / 100, limit: 100},
	}

	for _, tt := range tests {
		q, err := url.ParseQuery(tt.query)
		require.NoError(t, err)

		page, limit := parsePage(q, 20)
		require.Equal(t, tt.page, page, tt.query)
		require.Equal(t, tt.limit, limit, tt.query)
		require.LessOrEqual(t, page*limit, uint64(math.MaxInt64), tt.query)
	}
}
