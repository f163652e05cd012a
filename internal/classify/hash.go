// Package classify implements length-based credential-hash classification.
// It is pure: no I/O, same input always yields the same facts.
package classify

import (
	"fmt"
	"regexp"
	"strings"
)

// prefixPattern recognizes algorithm-name prefixes optionally followed by
// a colon or whitespace (e.g. "MD5:", "ntlm ").
var prefixPattern = regexp.MustCompile(`^(md5|sha1|sha256|sha512|ntlm|lm|bcrypt|scrypt|pbkdf2)[:\s]*`)

// separatorPattern matches separator characters anywhere in the hash.
var separatorPattern = regexp.MustCompile(`[:\s\-_]+`)

// lengthTable maps normalized hash length to the candidate algorithm
// families observed at that length.
var lengthTable = map[int][]string{
	8:   {"CRC32"},
	16:  {"CRC64"},
	24:  {"DES"},
	32:  {"MD5", "MD4", "MD2", "NTLM", "LM"},
	40:  {"SHA1", "RIPEMD-160"},
	48:  {"DES-EDE3"},
	56:  {"SHA-224"},
	60:  {"bcrypt"},
	64:  {"SHA-256", "SHA3-256", "BLAKE2s-256", "BLAKE2b-256"},
	86:  {"scrypt"},
	96:  {"SHA-384", "SHA3-384", "BLAKE2b-384"},
	128: {"SHA-512", "SHA3-512", "BLAKE2b-512", "Whirlpool"},
}

// curatedBestGuess overrides the first-candidate rule for lengths shared
// by multiple common algorithms. Deliberately a separate table: for these
// lengths the curated guess and the first list entry diverge in meaning
// ("MD5 or NTLM" is not "MD5").
var curatedBestGuess = map[int]string{
	32:  "MD5 or NTLM",
	40:  "SHA1",
	60:  "bcrypt",
	64:  "SHA-256",
	128: "SHA-512",
}

// Normalize strips a recognized algorithm-name prefix and all separator
// characters, lowercasing the input first.
func Normalize(raw string) string {
	h := strings.ToLower(strings.TrimSpace(raw))
	h = prefixPattern.ReplaceAllString(h, "")
	return separatorPattern.ReplaceAllString(h, "")
}

// Candidates returns the candidate algorithms for a normalized length.
// The second return value is false when the length matches no bucket.
func Candidates(length int) ([]string, bool) {
	c, ok := lengthTable[length]
	return c, ok
}

// MostLikely returns the single best guess for a normalized length: the
// curated override for ambiguous buckets, otherwise the sole or first
// candidate. The second return value is false for unknown lengths.
func MostLikely(length int) (string, bool) {
	if guess, ok := curatedBestGuess[length]; ok {
		return guess, true
	}
	if candidates, ok := lengthTable[length]; ok {
		return candidates[0], true
	}
	return "", false
}

// Facts classifies a raw hash string into the facts a module surfaces:
// always the normalized length, then either the most likely algorithm or
// an unknown-type marker.
func Facts(raw string) []string {
	normalized := Normalize(raw)
	length := len(normalized)

	facts := []string{fmt.Sprintf("Hash Length: %d characters", length)}

	if guess, ok := MostLikely(length); ok {
		facts = append(facts, fmt.Sprintf("Most Likely: %s", guess))
	} else {
		facts = append(facts, "Unknown hash type")
	}

	return facts
}
