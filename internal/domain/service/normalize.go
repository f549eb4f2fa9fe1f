package service

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/diillson/entregas-dashboard-go/internal/domain/entity"
)

// Normalize remove acentos (decomposição NFKD sem marcas combinantes), apara espaços e converte
// para maiúsculas. É a chave usada para casar cidades e municípios entre os arquivos.
// Normalize("São Paulo") == Normalize("SAO PAULO") == "SAO PAULO".
func Normalize(text string) string {
	stripAccents := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	result, _, err := transform.String(stripAccents, text)
	if err != nil {
		// transform só falha com UTF-8 malformado; cai para a decomposição direta.
		result = stripMarks(norm.NFKD.String(text))
	}
	return strings.ToUpper(strings.TrimSpace(result))
}

// NormalizeCell normaliza uma célula; células ausentes viram "".
func NormalizeCell(c entity.Cell) string {
	if !c.Valid {
		return ""
	}
	return Normalize(c.Value)
}

func stripMarks(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Mn, r) {
			return -1
		}
		return r
	}, s)
}
