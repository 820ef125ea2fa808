package validators

import "strings"

// IsEmailValid is a syntactic check only. Request handling must stay free
// of network calls, so no MX/DNS verification happens here.
func IsEmailValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	if strings.ContainsAny(domain, " \t") {
		return false
	}

	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
