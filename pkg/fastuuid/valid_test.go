package fastuuid

import "testing"

func TestIsValidHex128(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"11febf98-c108-4383-bb1e-739ffcd44341", true},
		{"00000000-0000-0000-0000-000000000000", true},
		{"11febf98-c108-4383-bb1e-739ffcd4434", false},
		{"11febf98-c108-4383-bb1e-739ffcd443412", false},
		{"11febf98c1-08-4383-bb1e-739ffcd44341", false},
		{"11febf98-c1084-383-bb1e-739ffcd44341", false},
		{"11febf98-c108-4383bb-1e-739ffcd44341", false},
		{"11febf98-c108-4383-bb1e7-39ffcd44341", false},
		{"11FEBF98-C108-4383-BB1E-739FFCD44341", false},
		{"11febf98-c108-4383-bb1e-739ffcd4434g", false},
		{"11febf98-c108-4383-bb1e-739ffcd4434\x00", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsValidHex128(tt.id); got != tt.want {
			t.Errorf("IsValidHex128(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestIsValidHex128RoundTrip(t *testing.T) {
	g := MustNewGenerator()
	var buf [Hex128Size]byte
	for i := 0; i < 10000; i++ {
		if s := g.Hex128IntoUnchecked(&buf); !IsValidHex128(s) {
			t.Fatalf("generated invalid id %q", s)
		}
	}
}
