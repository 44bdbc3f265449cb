// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"time"

	"github.com/Shivarajkushals/Dashboard/pkg/utils"
)

// PriorYearOffsetDays é o deslocamento fixo usado para o período do ano anterior.
// Não considera anos bissextos.
const PriorYearOffsetDays = 365

// ReportFilters representa os parâmetros aceitos pelos relatórios de vendas.
// Strings vazias significam filtro ausente.
type ReportFilters struct {
	FromDate string `validate:"required,datetime=2006-01-02"`
	ToDate   string `validate:"required,datetime=2006-01-02"`
	Store    string
	ShopType string
	TranType string
}

// DateWindow é um intervalo fechado de datas no formato YYYY-MM-DD
type DateWindow struct {
	From string
	To   string
}

// CurrentWindow retorna o período informado pelo cliente
func (f ReportFilters) CurrentWindow() DateWindow {
	return DateWindow{From: f.FromDate, To: f.ToDate}
}

// PriorYearWindow retorna o período atual deslocado PriorYearOffsetDays dias para trás
func (f ReportFilters) PriorYearWindow() (DateWindow, error) {
	from, err := utils.ShiftDays(f.FromDate, -PriorYearOffsetDays)
	if err != nil {
		return DateWindow{}, err
	}

	to, err := utils.ShiftDays(f.ToDate, -PriorYearOffsetDays)
	if err != nil {
		return DateWindow{}, err
	}

	return DateWindow{From: from, To: to}, nil
}

// Contains verifica se a data pertence ao intervalo, inclusive nas bordas
func (w DateWindow) Contains(date time.Time) bool {
	day := date.Format(time.DateOnly)
	return w.From <= day && day <= w.To
}
