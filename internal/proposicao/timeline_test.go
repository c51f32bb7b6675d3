package proposicao

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeline(t *testing.T) {
	t.Run("Should sort events chronologically", func(t *testing.T) {
		got := Timeline([]map[string]any{
			{"dataHora": "2024-03-01T10:00", "descricaoSituacao": "Segundo"},
			{"dataHora": "2024-01-01T10:00", "descricaoSituacao": "Primeiro"},
		})
		require.Len(t, got, 2)
		assert.Equal(t, "Primeiro", got[0].Evento)
		assert.Equal(t, "Segundo", got[1].Evento)
	})

	t.Run("Should drop events without a readable timestamp", func(t *testing.T) {
		got := Timeline([]map[string]any{
			{"descricaoSituacao": "Sem data"},
			{"dataHora": "???", "descricaoSituacao": "Data ruim"},
			{"dataHora": "2024-01-01", "descricaoSituacao": "Ok"},
			nil,
		})
		require.Len(t, got, 1)
		assert.Equal(t, "Ok", got[0].Evento)
	})

	t.Run("Should fall back from situation to dispatch to a placeholder", func(t *testing.T) {
		got := Timeline([]map[string]any{
			{"dataHora": "2024-01-01", "despacho": "Ao arquivo."},
			{"dataHora": "2024-01-02"},
		})
		require.Len(t, got, 2)
		assert.Equal(t, "Ao arquivo.", got[0].Evento)
		assert.Equal(t, "(sem descrição)", got[1].Evento)
	})

	t.Run("Should resolve the organ from nested and flat shapes", func(t *testing.T) {
		nested := Timeline([]map[string]any{
			{"dataHora": "2024-01-01", "orgaoDestino": map[string]any{"sigla": "CCJC"}},
		})
		require.Len(t, nested, 1)
		assert.Equal(t, "CCJC", nested[0].Orgao)

		flat := Timeline([]map[string]any{
			{"dataHora": "2024-01-01", "siglaOrgao": "PLEN"},
		})
		require.Len(t, flat, 1)
		assert.Equal(t, "PLEN", flat[0].Orgao)
	})

	t.Run("Should return a non-nil empty slice for no events", func(t *testing.T) {
		got := Timeline(nil)
		require.NotNil(t, got)
		assert.Len(t, got, 0)
	})
}
