package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legitrack/legitrack/internal/proposicao"
)

func propositions() []proposicao.Proposicao {
	return proposicao.Normalize([]map[string]any{
		{"id": float64(1), "siglaTipo": "PL", "numero": float64(10), "ano": float64(2024),
			"ementa": "Dispõe sobre apostas esportivas de quota fixa."},
		{"id": float64(2), "siglaTipo": "PL", "numero": float64(20), "ano": float64(2024),
			"ementa": "Altera a Lei Geral de Proteção de Dados Pessoais."},
		{"id": float64(3), "siglaTipo": "PEC", "numero": float64(30), "ano": float64(2024),
			"ementa": "Institui regras para apostas em loterias."},
	})
}

func TestMatchTheme(t *testing.T) {
	t.Run("Should keep only propositions mentioning the terms", func(t *testing.T) {
		got, err := MatchTheme(propositions(), "apostas")
		require.NoError(t, err)
		require.Len(t, got, 2)
	})

	t.Run("Should preserve input order among matches", func(t *testing.T) {
		got, err := MatchTheme(propositions(), "apostas")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, int64(1), *got[0].ID)
		assert.Equal(t, int64(3), *got[1].ID)
	})

	t.Run("Should return everything for blank terms", func(t *testing.T) {
		got, err := MatchTheme(propositions(), "   ")
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("Should return an empty result when nothing matches", func(t *testing.T) {
		got, err := MatchTheme(propositions(), "saneamento")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Should handle an empty batch", func(t *testing.T) {
		got, err := MatchTheme(nil, "apostas")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
