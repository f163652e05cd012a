// internal/classify/hash_test.go
package classify

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain md5",
			input: "5d41402abc4b2a76b9719d911017c592",
			want:  "5d41402abc4b2a76b9719d911017c592",
		},
		{
			name:  "md5 prefix with colon",
			input: "MD5:5d41402abc4b2a76b9719d911017c592",
			want:  "5d41402abc4b2a76b9719d911017c592",
		},
		{
			name:  "prefix with whitespace",
			input: "sha1 aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d",
			want:  "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d",
		},
		{
			name:  "uppercase input is lowercased",
			input: "5D41402ABC4B2A76B9719D911017C592",
			want:  "5d41402abc4b2a76b9719d911017c592",
		},
		{
			name:  "separators stripped anywhere",
			input: "5d41-402a_bc4b 2a76:b9719d911017c592",
			want:  "5d41402abc4b2a76b9719d911017c592",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  5d41402abc4b2a76b9719d911017c592  ",
			want:  "5d41402abc4b2a76b9719d911017c592",
		},
		{
			name:  "prefix only yields empty",
			input: "md5:",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizePrefixEquivalence(t *testing.T) {
	// Con y sin prefijo deben normalizar a la misma longitud y producir
	// los mismos facts.
	plain := "5d41402abc4b2a76b9719d911017c592"
	prefixed := "MD5:" + plain

	if Normalize(plain) != Normalize(prefixed) {
		t.Fatalf("normalized values differ: %q vs %q", Normalize(plain), Normalize(prefixed))
	}

	plainFacts := Facts(plain)
	prefixedFacts := Facts(prefixed)
	if len(plainFacts) != len(prefixedFacts) {
		t.Fatalf("fact count differs: %d vs %d", len(plainFacts), len(prefixedFacts))
	}
	for i := range plainFacts {
		if plainFacts[i] != prefixedFacts[i] {
			t.Errorf("fact %d differs: %q vs %q", i, plainFacts[i], prefixedFacts[i])
		}
	}
}

func TestMostLikely(t *testing.T) {
	tests := []struct {
		length int
		want   string
		known  bool
	}{
		// Buckets ambiguos: curated override, no el primer candidato
		{32, "MD5 or NTLM", true},
		{40, "SHA1", true},
		{60, "bcrypt", true},
		{64, "SHA-256", true},
		{128, "SHA-512", true},

		// Buckets sin ambigüedad: único/primer candidato
		{8, "CRC32", true},
		{16, "CRC64", true},
		{24, "DES", true},
		{48, "DES-EDE3", true},
		{56, "SHA-224", true},
		{86, "scrypt", true},
		{96, "SHA-384", true},

		// Longitudes desconocidas
		{0, "", false},
		{7, "", false},
		{33, "", false},
		{129, "", false},
	}

	for _, tt := range tests {
		got, ok := MostLikely(tt.length)
		if ok != tt.known {
			t.Errorf("MostLikely(%d): known = %v, want %v", tt.length, ok, tt.known)
			continue
		}
		if got != tt.want {
			t.Errorf("MostLikely(%d) = %q, want %q", tt.length, got, tt.want)
		}
	}
}

func TestCandidates(t *testing.T) {
	candidates, ok := Candidates(32)
	if !ok {
		t.Fatal("Candidates(32) should be a known bucket")
	}
	want := []string{"MD5", "MD4", "MD2", "NTLM", "LM"}
	if len(candidates) != len(want) {
		t.Fatalf("Candidates(32) = %v, want %v", candidates, want)
	}
	for i := range want {
		if candidates[i] != want[i] {
			t.Errorf("Candidates(32)[%d] = %q, want %q", i, candidates[i], want[i])
		}
	}

	if _, ok := Candidates(7); ok {
		t.Error("Candidates(7) should be unknown")
	}
}

func TestFacts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "md5 length",
			input: "5d41402abc4b2a76b9719d911017c592",
			want:  []string{"Hash Length: 32 characters", "Most Likely: MD5 or NTLM"},
		},
		{
			name:  "sha1 length",
			input: "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d",
			want:  []string{"Hash Length: 40 characters", "Most Likely: SHA1"},
		},
		{
			name:  "sha256 length",
			input: "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
			want:  []string{"Hash Length: 64 characters", "Most Likely: SHA-256"},
		},
		{
			name:  "bcrypt string",
			input: "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW",
			want:  []string{"Hash Length: 60 characters", "Most Likely: bcrypt"},
		},
		{
			name:  "unknown length",
			input: "abcdefg",
			want:  []string{"Hash Length: 7 characters", "Unknown hash type"},
		},
		{
			name:  "empty after normalization",
			input: "md5:",
			want:  []string{"Hash Length: 0 characters", "Unknown hash type"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Facts(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Facts(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Facts(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFactsDeterministic(t *testing.T) {
	input := "SHA256:2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	first := strings.Join(Facts(input), "|")
	for i := 0; i < 50; i++ {
		if got := strings.Join(Facts(input), "|"); got != first {
			t.Fatalf("Facts is not deterministic: %q vs %q", got, first)
		}
	}
}

func TestFactsSha512Length(t *testing.T) {
	input := "9b71d224bd62f3785d96d46ad3ea3d73319bfbc2890caadae2dff72519673ca72323c3d99ba5c11d7c7acc6e14b8c5da0c4663475c2e5c3adef46f73bcdec043"
	got := Facts(input)
	if got[0] != "Hash Length: 128 characters" {
		t.Errorf("unexpected length fact: %q", got[0])
	}
	if got[1] != "Most Likely: SHA-512" {
		t.Errorf("unexpected guess fact: %q", got[1])
	}
}
