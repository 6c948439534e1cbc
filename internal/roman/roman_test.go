package roman

import "testing"

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := map[int]string{
		1:    "I",
		4:    "IV",
		9:    "IX",
		10:   "X",
		14:   "XIV",
		40:   "XL",
		90:   "XC",
		400:  "CD",
		1994: "MCMXCIV",
		2024: "MMXXIV",
		3999: "MMMCMXCIX",
	}
	for in, want := range tests {
		got, err := Format(in)
		if err != nil {
			t.Fatalf("Format(%d) error: %v", in, err)
		}
		if got != want {
			t.Fatalf("Format(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatRejectsOutOfRange(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, -1, 4000} {
		if _, err := Format(n); err == nil {
			t.Fatalf("Format(%d) should fail", n)
		}
	}
}
