// Package search filters normalized propositions by theme keyword. The
// original data source has no server-side text search worth trusting, so the
// keyword match runs locally over the ementa text of a fetched batch.
package search

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/lang/pt"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/legitrack/legitrack/internal/proposicao"
)

// indexedProposicao is the slice of a proposition that takes part in
// keyword matching.
type indexedProposicao struct {
	Rotulo string
	Ementa string
}

// MatchTheme returns the propositions whose ementa or label mention terms,
// preserving input order. Blank terms match everything. The index is built
// in memory for the batch and discarded; nothing is persisted.
func MatchTheme(props []proposicao.Proposicao, terms string) ([]proposicao.Proposicao, error) {
	terms = strings.TrimSpace(terms)
	if terms == "" {
		return props, nil
	}

	idx, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}
	defer idx.Close()

	batch := idx.NewBatch()
	for i := range props {
		doc := indexedProposicao{Ementa: props[i].Ementa}
		if props[i].Rotulo != nil {
			doc.Rotulo = *props[i].Rotulo
		}
		if err := batch.Index(strconv.Itoa(i), doc); err != nil {
			return nil, fmt.Errorf("batch index %d: %w", i, err)
		}
	}
	if err := idx.Batch(batch); err != nil {
		return nil, fmt.Errorf("commit batch: %w", err)
	}

	query := bleve.NewMatchQuery(terms)
	req := bleve.NewSearchRequestOptions(query, len(props)+1, 0, false)
	results, err := idx.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	hits := make(map[int]bool, len(results.Hits))
	for _, hit := range results.Hits {
		if i, err := strconv.Atoi(hit.ID); err == nil {
			hits[i] = true
		}
	}

	matched := make([]proposicao.Proposicao, 0, len(hits))
	for i := range props {
		if hits[i] {
			matched = append(matched, props[i])
		}
	}
	return matched, nil
}

// buildIndexMapping indexes ementa and label with the Portuguese analyzer
// so stemmed forms ("aposta"/"apostas") match.
func buildIndexMapping() mapping.IndexMapping {
	textFieldMapping := bleve.NewTextFieldMapping()
	textFieldMapping.Analyzer = pt.AnalyzerName

	docMapping := bleve.NewDocumentMapping()
	docMapping.AddFieldMappingsAt("Rotulo", bleve.NewTextFieldMapping())
	docMapping.AddFieldMappingsAt("Ementa", textFieldMapping)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("_default", docMapping)
	indexMapping.DefaultAnalyzer = pt.AnalyzerName
	return indexMapping
}
