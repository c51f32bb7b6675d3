package proposicao

import (
	"sort"
	"time"
)

// TimelineEvent is one tramitation step of a proposition.
type TimelineEvent struct {
	DataHora time.Time `json:"dataHora"`
	Evento   string    `json:"evento"`
	Orgao    string    `json:"orgao,omitempty"`
}

// Timeline converts raw tramitation events into chronological rows. Events
// without a readable dataHora are dropped; the event description and the
// organ each resolve through their own fallback of source keys.
func Timeline(raw []map[string]any) []TimelineEvent {
	out := make([]TimelineEvent, 0, len(raw))
	for _, ev := range raw {
		if ev == nil {
			continue
		}
		t := ParseInstant(rawAt(ev, "dataHora"))
		if t == nil {
			continue
		}

		desc := stringAt(ev, "descricaoSituacao")
		if desc == "" {
			desc = stringAt(ev, "despacho")
		}
		if desc == "" {
			desc = "(sem descrição)"
		}

		orgao := toString(chainGet(ev, "orgaoDestino", "sigla"))
		if orgao == "" {
			orgao = stringAt(ev, "siglaOrgao", "siglaOrgaoDestino")
		}

		out = append(out, TimelineEvent{DataHora: *t, Evento: desc, Orgao: orgao})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DataHora.Before(out[j].DataHora)
	})
	return out
}
