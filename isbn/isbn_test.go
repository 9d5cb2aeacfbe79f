package isbn

import "testing"

func TestNormalizePadding(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"9780000000001", "9780000000001"},
		{"12345", "0000000012345"},
		{"", "0000000000000"},
		{"abc", "0000000000000"},
		{"978-0-00-000000-1", "9780000000001"},
		{" 9780000000001 ", "9780000000001"},
		// Over-length input passes through unpadded and untruncated.
		{"12345678901234", "12345678901234"},
	}
	for _, tc := range tests {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeScientificNotation(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"9.78E+12", "9780000000000"},
		{"9.78012345678E+12", "9780123456780"},
		{"9.78012345678e+12", "9780123456780"},
	}
	for _, tc := range tests {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
	// Same result as the expanded digit string.
	if Normalize("9.78012345678E+12") != Normalize("9780123456780") {
		t.Errorf("scientific notation input did not match its expanded form")
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"9780000000001", "12345", "9.78E+12", "12345678901234"}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}
