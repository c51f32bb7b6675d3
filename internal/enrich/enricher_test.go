package enrich

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legitrack/legitrack/internal/proposicao"
)

type fakeFetcher struct {
	mu      sync.Mutex
	calls   []string
	authors map[string][]map[string]any
}

func (f *fakeFetcher) AuthorsByURI(_ context.Context, uri string) []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, uri)
	return f.authors[uri]
}

func TestEnrich(t *testing.T) {
	t.Run("Should attach the principal author per proposition", func(t *testing.T) {
		fetcher := &fakeFetcher{authors: map[string][]map[string]any{
			"https://api/autores/1": {
				{"tipo": "Comissão", "nome": "X"},
				{"tipo": "Deputado", "nome": "Y", "siglaPartido": "XX", "siglaUf": "SP"},
			},
		}}
		props := []proposicao.Proposicao{{URIAutores: "https://api/autores/1"}}

		stats := New(fetcher, 2).Enrich(context.Background(), props)

		assert.Equal(t, 1, stats.AuthorsFound)
		require.NotNil(t, props[0].Autor)
		assert.Equal(t, "Y", props[0].Autor.Nome)
		assert.Equal(t, "SP", props[0].Autor.UF)
	})

	t.Run("Should skip propositions without an authors reference", func(t *testing.T) {
		fetcher := &fakeFetcher{}
		props := []proposicao.Proposicao{{}, {}}

		stats := New(fetcher, 2).Enrich(context.Background(), props)

		assert.Equal(t, 2, stats.AuthorsMissing)
		assert.Empty(t, fetcher.calls)
		assert.Nil(t, props[0].Autor)
	})

	t.Run("Should count an empty author payload as missing", func(t *testing.T) {
		fetcher := &fakeFetcher{}
		props := []proposicao.Proposicao{{URIAutores: "https://api/autores/9"}}

		stats := New(fetcher, 1).Enrich(context.Background(), props)

		assert.Equal(t, 0, stats.AuthorsFound)
		assert.Equal(t, 1, stats.AuthorsMissing)
		assert.Nil(t, props[0].Autor)
	})

	t.Run("Should compute days since the last status", func(t *testing.T) {
		yesterday := time.Now().AddDate(0, 0, -1)
		props := []proposicao.Proposicao{{DataStatus: &yesterday}, {}}

		New(&fakeFetcher{}, 1).Enrich(context.Background(), props)

		require.NotNil(t, props[0].DiasDesdeStatus)
		assert.Equal(t, 1, *props[0].DiasDesdeStatus)
		assert.Nil(t, props[1].DiasDesdeStatus)
	})

	t.Run("Should enrich every record under concurrency", func(t *testing.T) {
		fetcher := &fakeFetcher{authors: map[string][]map[string]any{}}
		props := make([]proposicao.Proposicao, 50)
		for i := range props {
			props[i].URIAutores = "https://api/autores/x"
		}

		stats := New(fetcher, 8).Enrich(context.Background(), props)

		assert.Equal(t, 50, stats.Total)
		assert.Len(t, fetcher.calls, 50)
	})
}
