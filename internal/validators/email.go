package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid checks that the address has a domain part that
// resolves. Catches typo'd domains at registration; deliverability is
// not verified.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := strings.ToLower(email[at+1:])
	if strings.Contains(domain, " ") {
		return false
	}

	// A mail server beats a plain A record, but either will do.
	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}
	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
