package grade

import "testing"

func TestEvaluatePassSet(t *testing.T) {
	for _, g := range []string{"O", "A+", "A", "B+", "B", "C"} {
		if got := Evaluate(g); got != StatusPass {
			t.Errorf("Evaluate(%q) = %q, want %q", g, got, StatusPass)
		}
	}
}

func TestEvaluateFail(t *testing.T) {
	cases := []string{
		"",
		"D",
		"F",
		"E",
		"AB",
		"a",
		"a+", // matching is case-sensitive
		"o",
		"b+",
		" A",
		"A ",
		"A++",
		"Pass",
	}
	for _, g := range cases {
		if got := Evaluate(g); got != StatusFail {
			t.Errorf("Evaluate(%q) = %q, want %q", g, got, StatusFail)
		}
	}
}
