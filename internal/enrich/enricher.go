// Package enrich annotates normalized propositions with derived display
// fields: the principal author and the days elapsed since the last status.
package enrich

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/legitrack/legitrack/internal/proposicao"
)

// AuthorFetcher fetches the raw author list behind a uriAutores reference.
// Implementations return an empty list on failure rather than an error.
type AuthorFetcher interface {
	AuthorsByURI(ctx context.Context, uri string) []map[string]any
}

// Enricher resolves authors for a batch of propositions with bounded
// concurrency. Each record is independent, so order does not matter and a
// failed lookup only leaves that record without an author.
type Enricher struct {
	fetcher     AuthorFetcher
	concurrency int
}

// Stats summarizes one enrichment run.
type Stats struct {
	Total          int
	AuthorsFound   int
	AuthorsMissing int
	Duration       time.Duration
}

// New creates an Enricher. Concurrency defaults to 5.
func New(fetcher AuthorFetcher, concurrency int) *Enricher {
	if concurrency <= 0 {
		concurrency = 5
	}
	return &Enricher{fetcher: fetcher, concurrency: concurrency}
}

// Enrich fills in Autor and DiasDesdeStatus for every proposition in place.
func (e *Enricher) Enrich(ctx context.Context, props []proposicao.Proposicao) Stats {
	start := time.Now()
	stats := Stats{Total: len(props)}

	indexes := make(chan int, len(props))
	for i := range props {
		indexes <- i
	}
	close(indexes)

	var wg sync.WaitGroup
	var mu sync.Mutex
	for range e.concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				p := &props[i]
				p.DiasDesdeStatus = proposicao.DaysSince(p.DataStatus)

				if p.URIAutores == "" {
					mu.Lock()
					stats.AuthorsMissing++
					mu.Unlock()
					continue
				}

				autor := proposicao.PrincipalAuthor(e.fetcher.AuthorsByURI(ctx, p.URIAutores))
				mu.Lock()
				if autor == (proposicao.Autor{}) {
					stats.AuthorsMissing++
				} else {
					p.Autor = &autor
					stats.AuthorsFound++
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	stats.Duration = time.Since(start)
	log.Debug("enriched propositions",
		"total", stats.Total,
		"authors_found", stats.AuthorsFound,
		"authors_missing", stats.AuthorsMissing,
		"duration", stats.Duration)
	return stats
}
