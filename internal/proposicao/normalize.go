package proposicao

import "fmt"

const permalinkFormat = "https://www.camara.leg.br/proposicoesWeb/fichadetramitacao?idProposicao=%d"

// Normalize maps raw proposition records, from either the live query
// endpoint or the bulk annual files, into canonical rows. The result is
// order-preserving and one-to-one: malformed fields degrade to nil/"" and a
// fully malformed record still yields a (mostly empty) Proposicao, so a bad
// record never aborts the batch. The result is never nil.
func Normalize(records []map[string]any) []Proposicao {
	out := make([]Proposicao, 0, len(records))
	for _, rec := range records {
		out = append(out, normalizeRecord(rec))
	}
	return out
}

func normalizeRecord(rec map[string]any) Proposicao {
	if rec == nil {
		rec = map[string]any{}
	}

	p := Proposicao{
		ID:         intAt(rec, "id", "idProposicao"),
		SiglaTipo:  stringAt(rec, "siglaTipo", "sigla_tipo"),
		Numero:     intAt(rec, "numero", "numProposicao", "num"),
		Ano:        intAt(rec, "ano", "anoProposicao"),
		URI:        stringAt(rec, "uri", "uriProposicao"),
		URIAutores: stringAt(rec, "uriAutores", "uri_autores"),
	}

	p.Ementa = stringAt(rec, "ementa")
	if p.Ementa == "" {
		p.Ementa = stringAt(rec, "ementaDetalhada", "ementa_detalhada")
	}

	status := mapAt(rec, "statusProposicao", "status_proposicao", "ultimoStatus")
	p.Situacao = stringAt(status, "descricaoSituacao", "situacao", "descricaoTramitacao")
	p.TramitacaoAtual = stringAt(status, "descricaoTramitacao", "apreciacao")
	p.DataStatus = ParseInstant(rawAt(status, "dataHora", "data", "dataUltimoDespacho"))

	p.Link = permalink(p.ID, p.URI)
	p.Rotulo = rotulo(p.SiglaTipo, p.Numero, p.Ano)
	return p
}

// permalink builds the official tramitation-page link from the id, falling
// back to the record's own URI, then to "".
func permalink(id *int64, uri string) string {
	if id != nil {
		return fmt.Sprintf(permalinkFormat, *id)
	}
	return uri
}

// rotulo builds the "PL 1234/2024" display label. It exists only when type,
// number, and year are all present and non-zero.
func rotulo(sigla string, numero, ano *int64) *string {
	if sigla == "" || numero == nil || *numero == 0 || ano == nil || *ano == 0 {
		return nil
	}
	r := fmt.Sprintf("%s %d/%d", sigla, *numero, *ano)
	return &r
}
