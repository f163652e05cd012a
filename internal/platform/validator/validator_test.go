// internal/platform/validator/validator_test.go
package validator

import "testing"

func TestIsDomain(t *testing.T) {
	tests := []struct {
		domain string
		want   bool
	}{
		{"example.com", true},
		{"sub.example.com", true},
		{"deep.sub.example.com", true},
		{"xn--espaol-zwa.example", true},
		{"example", true}, // label suelto: válido sintácticamente
		{"", false},
		{"not a domain", false},
		{"-invalid.com", false},
		{"invalid-.com", false},
		{".example.com", false},
		{"192.168.1.1", false},
		{"2001:db8::1", false},
		{"exa mple.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.domain, func(t *testing.T) {
			if got := IsDomain(tt.domain); got != tt.want {
				t.Errorf("IsDomain(%q) = %v, want %v", tt.domain, got, tt.want)
			}
		})
	}
}

func TestIsDomainLengthLimit(t *testing.T) {
	long := ""
	for len(long) < 250 {
		long += "abcdefghij."
	}
	long += "com" // > 253 chars
	if IsDomain(long) {
		t.Error("domains over 253 characters should be rejected")
	}
}

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"EXAMPLE.COM", "example.com"},
		{"  example.com  ", "example.com"},
		{"example.com.", "example.com"},
		{"Sub.Example.COM.", "sub.example.com"},
	}

	for _, tt := range tests {
		if got := NormalizeDomain(tt.input); got != tt.want {
			t.Errorf("NormalizeDomain(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIsIP(t *testing.T) {
	if !IsIP("192.168.1.1") {
		t.Error("IsIP should accept IPv4")
	}
	if !IsIP("2001:db8::1") {
		t.Error("IsIP should accept IPv6")
	}
	if IsIP("example.com") {
		t.Error("IsIP should reject domains")
	}
}

func TestIsHex(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"5d41402abc4b2a76b9719d911017c592", true},
		{"ABCDEF0123", true},
		{"", false},
		{"xyz", false},
		{"5d41 402a", false},
	}

	for _, tt := range tests {
		if got := IsHex(tt.input); got != tt.want {
			t.Errorf("IsHex(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
