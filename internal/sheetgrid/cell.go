// Package sheetgrid interpreta as grades de células cruas retornadas pela
// planilha e as converte em registros mensais tipados do domínio.
//
// Todas as funções deste pacote são totais: célula malformada vira nil e
// linha irresolvível é descartada em silêncio. Planilhas misturam números,
// texto formatado, traços e marcadores de erro de fórmula nas mesmas
// colunas, e nada disso é condição de erro: é apenas "sem dado ainda".
package sheetgrid

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Marcadores tratados como "sem dado" pela planilha
const (
	emptyMarker  = ""
	dashMarker   = "-"
	naMarker     = "N/A"
	divZeroError = "#DIV/0!"
)

// serialFloor é o menor serial aceito como data. Seriais abaixo disso
// (cabeçalhos, contagens soltas) seriam interpretados como datas antes de
// meados de 2009 e são rejeitados.
const serialFloor = 40000

// unixEpochSerial é o serial da planilha correspondente a 1970-01-01.
// O dia zero do Google Sheets é 1899-12-30.
const unixEpochSerial = 25569

// monthNames são as abreviações de mês no locale da planilha (alemão)
var monthNames = [12]string{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"}

var monthNumbers = map[string]time.Month{
	"Jan": time.January, "Feb": time.February, "Mär": time.March,
	"Apr": time.April, "Mai": time.May, "Jun": time.June,
	"Jul": time.July, "Aug": time.August, "Sep": time.September,
	"Okt": time.October, "Nov": time.November, "Dez": time.December,
}

// ToNumber converte um valor cru de célula em número. Retorna nil para
// célula vazia, traço, "N/A", erro de divisão por zero e qualquer coisa
// que não resulte em um número finito. Vírgula é aceita como separador
// decimal.
func ToNumber(raw any) *float64 {
	if raw == nil {
		return nil
	}

	switch v := raw.(type) {
	case float64:
		return finiteOrNil(v)
	case float32:
		return finiteOrNil(float64(v))
	case int:
		return finiteOrNil(float64(v))
	case int64:
		return finiteOrNil(float64(v))
	case json.Number:
		n, err := v.Float64()
		if err != nil {
			return nil
		}
		return finiteOrNil(n)
	case string:
		s := strings.TrimSpace(v)
		if s == emptyMarker || s == dashMarker || s == naMarker || s == divZeroError {
			return nil
		}
		n, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
		if err != nil {
			return nil
		}
		return finiteOrNil(n)
	default:
		return nil
	}
}

func finiteOrNil(n float64) *float64 {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	return &n
}

// serialToTime converte um serial de data da planilha (dias desde
// 1899-12-30) em time.Time UTC. Retorna zero e false para entradas não
// numéricas ou abaixo do piso de sanidade.
func serialToTime(raw any) (time.Time, bool) {
	serial := ToNumber(raw)
	if serial == nil || *serial < serialFloor {
		return time.Time{}, false
	}

	ms := math.Round((*serial - unixEpochSerial) * 86400 * 1000)
	return time.UnixMilli(int64(ms)).UTC(), true
}

// SerialToMonthLabel converte um serial de data no rótulo de mês usado em
// todo o dashboard, ex: "Feb 26". Retorna string vazia quando o serial não
// é uma data plausível.
func SerialToMonthLabel(raw any) string {
	t, ok := serialToTime(raw)
	if !ok {
		return ""
	}

	return fmt.Sprintf("%s %02d", monthNames[t.Month()-1], t.Year()%100)
}

// SerialToISODate converte um serial de data em YYYY-MM-DD. Retorna string
// vazia quando o serial não é uma data plausível.
func SerialToISODate(raw any) string {
	t, ok := serialToTime(raw)
	if !ok {
		return ""
	}

	return t.Format(time.DateOnly)
}

// MonthLabelToYearMonth faz o caminho inverso de SerialToMonthLabel:
// "Feb 26" → "2026-02". É a chave de mês usada na consulta de deals.
// Retorna string vazia para rótulos irreconhecíveis.
func MonthLabelToYearMonth(label string) string {
	parts := strings.Fields(strings.TrimSpace(label))
	if len(parts) != 2 {
		return ""
	}

	month, ok := monthNumbers[parts[0]]
	if !ok {
		return ""
	}

	year, err := strconv.Atoi(parts[1])
	if err != nil || year < 0 || year > 99 {
		return ""
	}

	return fmt.Sprintf("%d-%02d", 2000+year, int(month))
}
