package catalog

import "testing"

func TestScore_Formula(t *testing.T) {
	cases := []struct {
		name string
		p    Product
		want int64
	}{
		{"price times stock", Product{Price: 3_200_000, Stock: 5}, 16_000_000},
		{"discount bonus", Product{Price: 100, Stock: 2, Discount: 10}, 10_200},
		{"zero stock keeps discount bonus", Product{Price: 999, Stock: 0, Discount: 50}, 50_000},
		{"all zero", Product{}, 0},
	}

	for _, tc := range cases {
		if got := Score(tc.p); got != tc.want {
			t.Errorf("%s: score=%d want=%d", tc.name, got, tc.want)
		}
	}
}

func TestScore_PureUnderReordering(t *testing.T) {
	a := Product{ID: 1, Price: 100, Stock: 3, Discount: 1}
	b := Product{ID: 2, Price: 200, Stock: 1, Discount: 2}

	first := []int64{Score(a), Score(b)}
	second := []int64{Score(b), Score(a)}

	if first[0] != second[1] || first[1] != second[0] {
		t.Fatalf("scores changed with input order: %v vs %v", first, second)
	}
}

func TestSortByScore_DescendingStable(t *testing.T) {
	ps := []Product{
		{ID: 1, Name: "low", Price: 10, Stock: 1},
		{ID: 2, Name: "tie-a", Price: 100, Stock: 2},
		{ID: 3, Name: "tie-b", Price: 200, Stock: 1},
		{ID: 4, Name: "high", Price: 1000, Stock: 5},
	}

	SortByScore(ps)

	wantIDs := []int64{4, 2, 3, 1}
	for i, want := range wantIDs {
		if ps[i].ID != want {
			t.Fatalf("position %d: id=%d want=%d (order %v)", i, ps[i].ID, want, ps)
		}
	}
}

func TestDiscountedPrice(t *testing.T) {
	cases := []struct {
		price    int64
		discount int
		want     int64
	}{
		{3_200_000, 0, 3_200_000},
		{3_200_000, 10, 2_880_000},
		{3_333, 33, 2_233},
		{100, 100, 0},
		{999, 50, 500},
	}

	for _, tc := range cases {
		if got := DiscountedPrice(tc.price, tc.discount); got != tc.want {
			t.Errorf("DiscountedPrice(%d, %d)=%d want=%d", tc.price, tc.discount, got, tc.want)
		}
	}
}
