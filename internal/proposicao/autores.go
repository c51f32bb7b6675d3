package proposicao

import "strings"

// Role substring that marks an elected representative. Author lists mix
// deputies with committees and senate references; when both appear, the
// deputy is the one users care about. Matched case-insensitively so
// "Deputado(a)" and "DEPUTADO" both qualify.
const principalRole = "deputado"

// PrincipalAuthor picks the principal author from the raw author list of one
// proposition and resolves its fields across the key spellings the API has
// used over time. The first role-matching entry wins; with no match the
// first entry is used; an empty list yields an empty Autor.
func PrincipalAuthor(raw []map[string]any) Autor {
	if len(raw) == 0 {
		return Autor{}
	}

	chosen := raw[0]
	for _, a := range raw {
		if a == nil {
			continue
		}
		if strings.Contains(strings.ToLower(stringAt(a, "tipo")), principalRole) {
			chosen = a
			break
		}
	}
	if chosen == nil {
		return Autor{}
	}

	return Autor{
		Nome:    stringAt(chosen, "nome", "nomeAutor", "nomeAutorPrimeiroSignatario"),
		Partido: stringAt(chosen, "siglaPartido", "siglaPartidoAutor", "sigla_partido", "partido"),
		UF:      stringAt(chosen, "siglaUf", "siglaUF", "uf", "ufAutor", "siglaUfAutor"),
		Tipo:    stringAt(chosen, "tipo"),
	}
}
