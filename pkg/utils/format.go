package utils

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// NoValuePlaceholder é o que o dashboard mostra quando não há dado
const NoValuePlaceholder = "–"

var isoDatePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// FormatEuro formata um valor monetário do CRM como moeda alemã sem casas
// decimais, ex: "1.235 €". Valor ausente ou não numérico vira o placeholder.
func FormatEuro(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return NoValuePlaceholder
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return NoValuePlaceholder
	}

	rounded := int64(math.Round(value))
	return groupThousands(rounded) + " €"
}

// FormatDealDate formata a data de Websession de um deal como DD.MM.YYYY.
// O CRM entrega ou uma string de data ISO ou um timestamp em milissegundos;
// qualquer outra coisa vira o placeholder.
func FormatDealDate(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return NoValuePlaceholder
	}

	if isoDatePrefix.MatchString(s) {
		t, err := time.Parse(time.DateOnly, s[:10])
		if err != nil {
			return NoValuePlaceholder
		}
		return t.Format("02.01.2006")
	}

	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return NoValuePlaceholder
	}

	return time.UnixMilli(ms).UTC().Format("02.01.2006")
}

// groupThousands insere o separador de milhar alemão (ponto)
func groupThousands(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := fmt.Sprintf("%d", n)
	if len(digits) <= 3 {
		return sign + digits
	}

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return sign + strings.Join(groups, ".")
}
