package pagination

import (
	"reflect"
	"testing"
)

func seq(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"1", 1},
		{"7", 7},
		{"abc", 1},
		{"", 1},
		{"0", 1},
		{"-3", 1},
		{"2.5", 1},
	}
	for _, tt := range tests {
		if got := ParsePage(tt.in); got != tt.want {
			t.Errorf("ParsePage(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPaginate_FirstPage(t *testing.T) {
	p := Paginate(seq(7), 3, 1)

	if !reflect.DeepEqual(p.Items, []int{1, 2, 3}) {
		t.Errorf("items = %v", p.Items)
	}
	if p.PageNumber != 1 || p.TotalPages != 3 || p.TotalItems != 7 {
		t.Errorf("metadata = %+v", p)
	}
	if !p.HasNext || p.HasPrevious {
		t.Errorf("nav flags = %+v", p)
	}
}

func TestPaginate_LastPartialPage(t *testing.T) {
	p := Paginate(seq(7), 3, 3)

	if !reflect.DeepEqual(p.Items, []int{7}) {
		t.Errorf("items = %v", p.Items)
	}
	if p.HasNext || !p.HasPrevious {
		t.Errorf("nav flags = %+v", p)
	}
}

func TestPaginate_NonNumericEqualsPageOne(t *testing.T) {
	items := seq(10)
	fromGarbage := PaginateParam(items, 3, "abc")
	fromOne := Paginate(items, 3, 1)

	if !reflect.DeepEqual(fromGarbage, fromOne) {
		t.Errorf("paginate(abc) != paginate(1): %+v vs %+v", fromGarbage, fromOne)
	}
}

func TestPaginate_OutOfRangeCoercesToLastPage(t *testing.T) {
	p := PaginateParam(seq(7), 3, "9999")

	if p.PageNumber != 3 {
		t.Errorf("page = %d, want 3", p.PageNumber)
	}
	if p.HasNext {
		t.Error("last page must not report has_next")
	}
	if !reflect.DeepEqual(p.Items, []int{7}) {
		t.Errorf("items = %v", p.Items)
	}
}

func TestPaginate_EmptySequence(t *testing.T) {
	p := Paginate([]int{}, 3, 1)

	if len(p.Items) != 0 {
		t.Errorf("items = %v", p.Items)
	}
	if p.PageNumber != 1 || p.TotalPages != 1 {
		t.Errorf("empty sequence still has one page: %+v", p)
	}
	if p.HasNext || p.HasPrevious {
		t.Errorf("nav flags on empty page: %+v", p)
	}
}

func TestPaginate_PageSizeFloor(t *testing.T) {
	p := Paginate(seq(4), 0, 1)
	if len(p.Items) != 1 {
		t.Errorf("page size below 1 should be raised to 1, got %d items", len(p.Items))
	}
	if p.TotalPages != 4 {
		t.Errorf("total pages = %d, want 4", p.TotalPages)
	}
}

func TestPaginate_ItemsAreCopied(t *testing.T) {
	items := seq(3)
	p := Paginate(items, 3, 1)
	p.Items[0] = 99
	if items[0] != 1 {
		t.Error("page mutated the backing sequence")
	}
}
