package balance

import "testing"

func TestBalance(t *testing.T) {
	tests := []struct {
		input          string
		prefix, suffix string
	}{
		{"((", "", "))"},
		{"))", "((", ""},
		{")(", "(", ")"},
		{"([", "", "])"},
		{"])", "([", ""},
		{"([)", "", "]"},
		{"f(a, [b", "", "])"},
		{"<a", "", ""},
		{"balanced (a) [b] {c}", "", ""},
		{"", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			prefix, suffix := Balance(tt.input)
			if prefix != tt.prefix || suffix != tt.suffix {
				t.Errorf("Balance(%q) = (%q, %q), want (%q, %q)", tt.input, prefix, suffix, tt.prefix, tt.suffix)
			}
		})
	}
}

func TestApply_Idempotent(t *testing.T) {
	for _, input := range []string{"((", "])", ")(", "{[(", "a) b] c}"} {
		once := Apply(input)
		if twice := Apply(once); twice != once {
			t.Errorf("Apply(%q) = %q, again %q", input, once, twice)
		}
	}
}
