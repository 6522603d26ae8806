package util

import "testing"

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{500, "Rs.500"},
		{750.5, "Rs.750.5"},
		{0, "Rs.0"},
	}
	for _, tc := range cases {
		if got := FormatPrice("Rs.", tc.amount); got != tc.want {
			t.Errorf("FormatPrice(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestRandomTokenUnique(t *testing.T) {
	a, err := RandomToken(32)
	if err != nil {
		t.Fatal(err)
	}
	b, err := RandomToken(32)
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatal("two tokens came out identical")
	}
	if len(a) == 0 {
		t.Fatal("empty token")
	}
}
