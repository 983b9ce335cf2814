package pkg

import (
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// List endpoints share one query grammar:
//
//	?page=N&limit=N&sort=field:dir&filters[field][$op]=value
//
// op is one of $eq, $lt, $gt, $in ($in takes a comma-separated value list).
// Fields are validated against per-resource allow-lists; unknown fields and
// operators are ignored rather than rejected, matching the upstream API.

type FilterOp string

const (
	FilterOpEq FilterOp = "$eq"
	FilterOpLt FilterOp = "$lt"
	FilterOpGt FilterOp = "$gt"
	FilterOpIn FilterOp = "$in"
)

type Filter struct {
	Field string
	Op    FilterOp
	Value string
}

type ListQuery struct {
	Page      int
	Limit     int
	SortField string
	SortDesc  bool
	Filters   []Filter
}

var filterKeyRe = regexp.MustCompile(`^filters\[(\w+)\]\[(\$\w+)\]$`)

// ParseListQuery extracts pagination, sort, and filters from query params.
// sortable and filterable are the per-resource field allow-lists.
func ParseListQuery(values url.Values, sortable, filterable []string, defaultSort string) ListQuery {
	q := ListQuery{Page: 1, Limit: 20, SortField: defaultSort, SortDesc: true}

	if v, err := strconv.Atoi(values.Get("page")); err == nil && v >= 1 {
		q.Page = v
	}
	if v, err := strconv.Atoi(values.Get("limit")); err == nil && v >= 1 && v <= 100 {
		q.Limit = v
	}

	if s := values.Get("sort"); s != "" {
		parts := strings.SplitN(s, ":", 2)
		if contains(sortable, parts[0]) {
			q.SortField = parts[0]
			q.SortDesc = len(parts) < 2 || parts[1] != "asc"
		}
	}

	for key, vals := range values {
		m := filterKeyRe.FindStringSubmatch(key)
		if m == nil || len(vals) == 0 {
			continue
		}
		field, op := m[1], FilterOp(m[2])
		if !contains(filterable, field) {
			continue
		}
		switch op {
		case FilterOpEq, FilterOpLt, FilterOpGt, FilterOpIn:
			q.Filters = append(q.Filters, Filter{Field: field, Op: op, Value: vals[0]})
		}
	}

	return q
}

// FieldFunc resolves a filter/sort field of a row to its comparable string
// form. ok=false means the row does not expose that field.
type FieldFunc[T any] func(row T, field string) (value string, ok bool)

// ApplyListQuery filters and sorts rows in memory and returns the requested
// page plus the total count after filtering.
func ApplyListQuery[T any](rows []T, q ListQuery, field FieldFunc[T]) ([]T, int) {
	filtered := rows
	if len(q.Filters) > 0 {
		filtered = make([]T, 0, len(rows))
		for _, row := range rows {
			if matchesFilters(row, q.Filters, field) {
				filtered = append(filtered, row)
			}
		}
	}

	if q.SortField != "" {
		sort.SliceStable(filtered, func(i, j int) bool {
			a, _ := field(filtered[i], q.SortField)
			b, _ := field(filtered[j], q.SortField)
			less := compareValues(a, b) < 0
			if q.SortDesc {
				return !less && compareValues(a, b) != 0
			}
			return less
		})
	}

	total := len(filtered)
	offset := (q.Page - 1) * q.Limit
	if offset >= total {
		return []T{}, total
	}
	end := offset + q.Limit
	if end > total {
		end = total
	}
	return filtered[offset:end], total
}

func matchesFilters[T any](row T, filters []Filter, field FieldFunc[T]) bool {
	for _, f := range filters {
		v, ok := field(row, f.Field)
		if !ok {
			return false
		}
		switch f.Op {
		case FilterOpEq:
			if v != f.Value {
				return false
			}
		case FilterOpLt:
			if compareValues(v, f.Value) >= 0 {
				return false
			}
		case FilterOpGt:
			if compareValues(v, f.Value) <= 0 {
				return false
			}
		case FilterOpIn:
			if !contains(strings.Split(f.Value, ","), v) {
				return false
			}
		}
	}
	return true
}

// compareValues compares numerically when both sides parse as numbers, so
// status codes sort as 2 < 10; otherwise lexicographically, which is correct
// for RFC 3339 timestamps and UUIDs.
func compareValues(a, b string) int {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a, b)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
