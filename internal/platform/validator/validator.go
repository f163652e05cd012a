// internal/platform/validator/validator.go
package validator

import (
	"net"
	"regexp"
	"strings"
)

// domainRegex valida dominios, incluyendo IDN en forma punycode.
var domainRegex = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?\.)*[a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?$`)

// hexRegex reconoce strings compuestos solo por dígitos hexadecimales.
var hexRegex = regexp.MustCompile(`^[0-9a-fA-F]+$`)

// IsDomain verifica si un string es un dominio válido.
func IsDomain(domain string) bool {
	if len(domain) == 0 || len(domain) > 253 {
		return false
	}

	if !domainRegex.MatchString(domain) {
		return false
	}

	// Verificar que no sea una IP
	if net.ParseIP(domain) != nil {
		return false
	}

	return true
}

// NormalizeDomain normaliza un dominio a su forma canónica.
func NormalizeDomain(domain string) string {
	domain = strings.ToLower(strings.TrimSpace(domain))
	domain = strings.TrimSuffix(domain, ".")
	return domain
}

// IsIP verifica si un string es una dirección IP válida (v4 o v6).
func IsIP(ip string) bool {
	return net.ParseIP(ip) != nil
}

// IsHex verifica si un string se compone solo de dígitos hexadecimales.
func IsHex(s string) bool {
	return len(s) > 0 && hexRegex.MatchString(s)
}
