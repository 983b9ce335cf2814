package pkg

import (
	"net/url"
	"testing"
)

type row struct {
	ID     string
	Status string
	Price  string
}

func rowField(r row, field string) (string, bool) {
	switch field {
	case "id":
		return r.ID, true
	case "status":
		return r.Status, true
	case "price":
		return r.Price, true
	}
	return "", false
}

func TestParseListQuery(t *testing.T) {
	sortable := []string{"created_at", "price"}
	filterable := []string{"status", "price"}

	t.Run("defaults", func(t *testing.T) {
		q := ParseListQuery(url.Values{}, sortable, filterable, "created_at")
		if q.Page != 1 || q.Limit != 20 {
			t.Fatalf("unexpected defaults: %+v", q)
		}
		if q.SortField != "created_at" || !q.SortDesc {
			t.Fatalf("expected created_at desc default, got %+v", q)
		}
	})

	t.Run("explicit paging and ascending sort", func(t *testing.T) {
		v := url.Values{}
		v.Set("page", "3")
		v.Set("limit", "5")
		v.Set("sort", "price:asc")
		q := ParseListQuery(v, sortable, filterable, "created_at")
		if q.Page != 3 || q.Limit != 5 {
			t.Fatalf("unexpected paging: %+v", q)
		}
		if q.SortField != "price" || q.SortDesc {
			t.Fatalf("expected price asc, got %+v", q)
		}
	})

	t.Run("limit is capped", func(t *testing.T) {
		v := url.Values{}
		v.Set("limit", "500")
		q := ParseListQuery(v, sortable, filterable, "created_at")
		if q.Limit != 20 {
			t.Fatalf("expected capped limit to fall back to default, got %d", q.Limit)
		}
	})

	t.Run("unknown sort field ignored", func(t *testing.T) {
		v := url.Values{}
		v.Set("sort", "password:asc")
		q := ParseListQuery(v, sortable, filterable, "created_at")
		if q.SortField != "created_at" {
			t.Fatalf("expected default sort, got %+v", q)
		}
	})

	t.Run("filters parsed against allow-list", func(t *testing.T) {
		v := url.Values{}
		v.Set("filters[status][$eq]", "1")
		v.Set("filters[price][$gt]", "100")
		v.Set("filters[secret][$eq]", "x")
		v.Set("filters[status][bogus]", "x")
		q := ParseListQuery(v, sortable, filterable, "created_at")
		if len(q.Filters) != 2 {
			t.Fatalf("expected 2 filters, got %+v", q.Filters)
		}
		for _, f := range q.Filters {
			if f.Field == "secret" {
				t.Fatalf("disallowed field leaked: %+v", f)
			}
		}
	})
}

func TestApplyListQuery(t *testing.T) {
	rows := []row{
		{ID: "a", Status: "1", Price: "10"},
		{ID: "b", Status: "2", Price: "200"},
		{ID: "c", Status: "1", Price: "30"},
		{ID: "d", Status: "3", Price: "9"},
	}

	t.Run("eq filter", func(t *testing.T) {
		page, total := ApplyListQuery(rows, ListQuery{
			Page: 1, Limit: 20,
			Filters: []Filter{{Field: "status", Op: FilterOpEq, Value: "1"}},
		}, rowField)
		if total != 2 || len(page) != 2 {
			t.Fatalf("expected 2 rows, got total=%d page=%+v", total, page)
		}
	})

	t.Run("numeric comparison, not lexicographic", func(t *testing.T) {
		page, total := ApplyListQuery(rows, ListQuery{
			Page: 1, Limit: 20,
			Filters: []Filter{{Field: "price", Op: FilterOpGt, Value: "30"}},
		}, rowField)
		if total != 1 || page[0].ID != "b" {
			t.Fatalf("expected only b over 30, got %+v", page)
		}
	})

	t.Run("in filter", func(t *testing.T) {
		_, total := ApplyListQuery(rows, ListQuery{
			Page: 1, Limit: 20,
			Filters: []Filter{{Field: "status", Op: FilterOpIn, Value: "2,3"}},
		}, rowField)
		if total != 2 {
			t.Fatalf("expected 2 rows, got %d", total)
		}
	})

	t.Run("sort ascending by numeric field", func(t *testing.T) {
		page, _ := ApplyListQuery(rows, ListQuery{
			Page: 1, Limit: 20, SortField: "price",
		}, rowField)
		if page[0].ID != "d" || page[3].ID != "b" {
			t.Fatalf("unexpected order: %+v", page)
		}
	})

	t.Run("sort descending", func(t *testing.T) {
		page, _ := ApplyListQuery(rows, ListQuery{
			Page: 1, Limit: 20, SortField: "price", SortDesc: true,
		}, rowField)
		if page[0].ID != "b" || page[3].ID != "d" {
			t.Fatalf("unexpected order: %+v", page)
		}
	})

	t.Run("pagination slices after filtering", func(t *testing.T) {
		page, total := ApplyListQuery(rows, ListQuery{
			Page: 2, Limit: 3, SortField: "price",
		}, rowField)
		if total != 4 || len(page) != 1 {
			t.Fatalf("expected last page of 1, got total=%d page=%+v", total, page)
		}
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		page, total := ApplyListQuery(rows, ListQuery{Page: 9, Limit: 10}, rowField)
		if total != 4 || len(page) != 0 {
			t.Fatalf("expected empty page, got %+v", page)
		}
	})
}
