package calculation

import (
	"testing"
)

func TestShortfall(t *testing.T) {
	cases := []struct {
		name                string
		price, loan, assets int64
		want                int64
	}{
		{"gap remains", 800_000_000, 400_000_000, 200_000_000, 200_000_000},
		{"exactly covered", 800_000_000, 400_000_000, 400_000_000, 0},
		{"surplus clamps to zero", 500_000_000, 400_000_000, 200_000_000, 0},
		{"no funds at all", 500_000_000, 0, 0, 500_000_000},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Shortfall(c.price, c.loan, c.assets)
			if got != c.want {
				t.Errorf("Shortfall(%d, %d, %d) = %d, want %d", c.price, c.loan, c.assets, got, c.want)
			}
			if got < 0 {
				t.Errorf("shortfall must never be negative, got %d", got)
			}
		})
	}
}
