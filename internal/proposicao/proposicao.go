// Package proposicao holds the canonical model for legislative propositions
// and the normalization layer that maps the loosely-structured records
// returned by the Câmara dos Deputados open-data API onto it.
//
// The API has shipped at least two historically different response shapes
// for the same concepts (the live query endpoint and the bulk annual files),
// so every field here is resolved through an ordered fallback of candidate
// source keys instead of a single fixed key.
package proposicao

import (
	"strconv"
	"time"
)

// Proposicao is a normalized legislative proposition (bill, amendment
// proposal, etc). Pointer fields are nil when the source record carried no
// usable value; string fields degrade to "".
type Proposicao struct {
	ID              *int64     `json:"id"`
	SiglaTipo       string     `json:"siglaTipo,omitempty"`
	Numero          *int64     `json:"numero"`
	Ano             *int64     `json:"ano"`
	Rotulo          *string    `json:"rotulo"`
	Ementa          string     `json:"ementa"`
	Situacao        string     `json:"situacao,omitempty"`
	TramitacaoAtual string     `json:"tramitacaoAtual,omitempty"`
	DataStatus      *time.Time `json:"dataStatus"`
	URI             string     `json:"uri,omitempty"`
	URIAutores      string     `json:"uriAutores,omitempty"`
	Link            string     `json:"link"`

	// Enrichment, filled in by the enricher rather than the normalizer.
	Autor           *Autor `json:"autor,omitempty"`
	DiasDesdeStatus *int   `json:"diasDesdeStatus,omitempty"`
}

// Autor is the principal author of a proposition. All fields are optional;
// an all-empty Autor means no author information was available.
type Autor struct {
	Nome    string `json:"nome,omitempty"`
	Partido string `json:"partido,omitempty"`
	UF      string `json:"uf,omitempty"`
	Tipo    string `json:"tipo,omitempty"`
}

// Columns is the canonical column set of a normalized proposition, in the
// order tables and exports emit it. Exports write this header even for an
// empty batch so consumers always see the full field set.
var Columns = []string{
	"id",
	"siglaTipo",
	"numero",
	"ano",
	"rotulo",
	"ementa",
	"situacao",
	"tramitacao_atual",
	"data_status",
	"uri",
	"uriAutores",
	"link",
}

// EnrichedColumns extends Columns with the derived author and elapsed-days
// fields added during enrichment.
var EnrichedColumns = []string{
	"id",
	"siglaTipo",
	"numero",
	"ano",
	"rotulo",
	"ementa",
	"situacao",
	"tramitacao_atual",
	"data_status",
	"dias_desde_status",
	"autor",
	"partido",
	"uf",
	"uri",
	"uriAutores",
	"link",
}

// Row renders the proposition as strings in EnrichedColumns order.
func (p *Proposicao) Row() []string {
	autor := Autor{}
	if p.Autor != nil {
		autor = *p.Autor
	}
	return []string{
		formatInt(p.ID),
		p.SiglaTipo,
		formatInt(p.Numero),
		formatInt(p.Ano),
		derefString(p.Rotulo),
		p.Ementa,
		p.Situacao,
		p.TramitacaoAtual,
		formatInstant(p.DataStatus),
		formatDays(p.DiasDesdeStatus),
		autor.Nome,
		autor.Partido,
		autor.UF,
		p.URI,
		p.URIAutores,
		p.Link,
	}
}

func formatInt(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func formatDays(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatInstant(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
