package auth

import (
	"strings"
	"testing"
)

func TestGenerateSessionToken_Format(t *testing.T) {
	t.Parallel()

	token, err := GenerateSessionToken()
	if err != nil {
		t.Fatalf("GenerateSessionToken() error = %v", err)
	}

	if !strings.HasPrefix(token, "st_") {
		t.Errorf("token %q should start with st_", token)
	}

	if !ValidateTokenFormat(token) {
		t.Errorf("generated token %q failed format validation", token)
	}
}

func TestGenerateSessionToken_Unique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateSessionToken()
		if err != nil {
			t.Fatalf("GenerateSessionToken() error = %v", err)
		}
		if seen[token] {
			t.Fatalf("duplicate token generated: %s", token)
		}
		seen[token] = true
	}
}

func TestValidateTokenFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"valid", "st_" + strings.Repeat("ab", 32), true},
		{"empty", "", false},
		{"missing prefix", strings.Repeat("ab", 32), false},
		{"too short", "st_abcdef", false},
		{"uppercase hex", "st_" + strings.Repeat("AB", 32), false},
		{"bearer junk", "Bearer st_" + strings.Repeat("ab", 32), false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ValidateTokenFormat(tt.token); got != tt.want {
				t.Errorf("ValidateTokenFormat(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}
