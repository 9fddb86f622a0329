package listing

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// Filters é o conjunto de filtros de listagem já validado, parseado uma
// única vez no boundary HTTP.
type Filters struct {
	Page   int
	Limit  int
	Search string

	// FilterDate restringe ao dia local da data; nil quando ausente ou
	// não parseável (ignorado em silêncio, nunca erro).
	FilterDate *time.Time

	OrderColumn string
	OrderDir    string
}

// Options descreve o que cada endpoint aceita ordenar.
type Options struct {
	// SortColumns mapeia o valor de ?order= para a coluna real.
	SortColumns map[string]string

	DefaultColumn string
	DefaultDir    string

	Location *time.Location
}

func Parse(query url.Values, opts Options) Filters {
	f := Filters{
		Page:        1,
		Limit:       defaultLimit,
		Search:      strings.TrimSpace(query.Get("search")),
		OrderColumn: opts.DefaultColumn,
		OrderDir:    opts.DefaultDir,
	}

	if page, err := strconv.Atoi(query.Get("page")); err == nil && page > 0 {
		f.Page = page
	}

	if limit, err := strconv.Atoi(query.Get("limit")); err == nil && limit > 0 {
		if limit > maxLimit {
			limit = maxLimit
		}
		f.Limit = limit
	}

	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	if raw := query.Get("filterDate"); raw != "" {
		if d, err := time.ParseInLocation("2006-01-02", raw, loc); err == nil {
			f.FilterDate = &d
		}
	}

	if order := query.Get("order"); order != "" {
		if col, ok := opts.SortColumns[order]; ok {
			f.OrderColumn = col
		}
	}

	switch strings.ToUpper(query.Get("sort")) {
	case "ASC":
		f.OrderDir = "ASC"
	case "DESC":
		f.OrderDir = "DESC"
	}

	return f
}

func (f Filters) Offset() int {
	return (f.Page - 1) * f.Limit
}

// DayRange devolve o intervalo [00:00:00, 23:59:59.999] do dia filtrado.
func (f Filters) DayRange() (time.Time, time.Time, bool) {
	if f.FilterDate == nil {
		return time.Time{}, time.Time{}, false
	}

	d := *f.FilterDate
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	end := time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 999_000_000, d.Location())
	return start, end, true
}
