package pkg

import "testing"

func TestNewPaginated(t *testing.T) {
	t.Run("middle page has prev and next", func(t *testing.T) {
		p := NewPaginated([]string{"d", "e", "f"}, 9, 2, 3, "/api/clients")
		if p.Meta.CurrentPage != 2 || p.Meta.LastPage != 3 || p.Meta.Total != 9 {
			t.Fatalf("unexpected meta: %+v", p.Meta)
		}
		if p.Meta.From != 4 || p.Meta.To != 6 {
			t.Fatalf("unexpected range: %+v", p.Meta)
		}
		if p.Links.Prev == nil || *p.Links.Prev != "/api/clients?page=1&limit=3" {
			t.Fatalf("unexpected prev: %+v", p.Links.Prev)
		}
		if p.Links.Next == nil || *p.Links.Next != "/api/clients?page=3&limit=3" {
			t.Fatalf("unexpected next: %+v", p.Links.Next)
		}
	})

	t.Run("first and last page boundaries", func(t *testing.T) {
		first := NewPaginated([]string{"a"}, 2, 1, 1, "/x")
		if first.Links.Prev != nil || first.Links.Next == nil {
			t.Fatalf("unexpected links on first page: %+v", first.Links)
		}
		last := NewPaginated([]string{"b"}, 2, 2, 1, "/x")
		if last.Links.Prev == nil || last.Links.Next != nil {
			t.Fatalf("unexpected links on last page: %+v", last.Links)
		}
	})

	t.Run("page past the end has an empty range", func(t *testing.T) {
		p := NewPaginated[string](nil, 20, 5, 10, "/x")
		if p.Meta.From != 0 || p.Meta.To != 0 {
			t.Fatalf("expected zeroed range, got from=%d to=%d", p.Meta.From, p.Meta.To)
		}
		if p.Meta.LastPage != 2 || p.Meta.Total != 20 {
			t.Fatalf("unexpected meta: %+v", p.Meta)
		}
	})

	t.Run("empty result", func(t *testing.T) {
		p := NewPaginated[string](nil, 0, 1, 20, "/x")
		if p.Data == nil || len(p.Data) != 0 {
			t.Fatalf("expected empty non-nil data, got %#v", p.Data)
		}
		if p.Meta.From != 0 || p.Meta.To != 0 || p.Meta.LastPage != 1 {
			t.Fatalf("unexpected meta: %+v", p.Meta)
		}
	})
}

func TestFormatCurrency(t *testing.T) {
	if got := FormatCurrency(350); got != "350.00" {
		t.Fatalf("expected 350.00, got %s", got)
	}
	if got := FormatCurrency(0.1); got != "0.10" {
		t.Fatalf("expected 0.10, got %s", got)
	}
	if FormatCurrencyOptional(nil) != nil {
		t.Fatalf("expected nil passthrough")
	}
	v := 12.5
	if got := FormatCurrencyOptional(&v); got == nil || *got != "12.50" {
		t.Fatalf("expected 12.50, got %v", got)
	}
}
