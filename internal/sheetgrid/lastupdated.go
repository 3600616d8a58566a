package sheetgrid

import (
	"fmt"
	"regexp"
	"strconv"
)

// A célula de metadados A1 é texto livre, ex: "Last Updated: 25.02.2026".
// O padrão ISO é tentado primeiro para que "2026-02-25" não seja lido como
// dia-mês-ano.
var (
	isoDatePattern = regexp.MustCompile(`(\d{4})[.\-/](\d{2})[.\-/](\d{2})`)
	dmyDatePattern = regexp.MustCompile(`(\d{1,2})[.\-/](\d{1,2})[.\-/](\d{4})`)
)

// ParseLastUpdated extrai a data de atualização da célula de metadados e a
// normaliza para YYYY-MM-DD. Aceita ISO ou dia-mês-ano com separador ".",
// "-" ou "/". Retorna string vazia quando nenhum padrão casa.
func ParseLastUpdated(raw any) string {
	if raw == nil {
		return ""
	}

	s := fmt.Sprintf("%v", raw)

	if m := isoDatePattern.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("%s-%s-%s", m[1], m[2], m[3])
	}

	if m := dmyDatePattern.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		return fmt.Sprintf("%s-%02d-%02d", m[3], month, day)
	}

	return ""
}
