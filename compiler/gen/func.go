package gen

import (
	"strings"
	"sync"
	"unicode"
)

var (
	acronymsMu sync.RWMutex
	acronyms   = make(map[string]struct{})
)

func init() {
	for _, w := range []string{
		"ACL", "API", "ASCII", "AWS", "CPU", "CSS", "DNS", "EOF", "GB", "GUID",
		"HTML", "HTTP", "HTTPS", "ID", "IP", "JSON", "KB", "LHS", "MAC", "MB",
		"QPS", "RAM", "RHS", "RPC", "SLA", "SMTP", "SQL", "SSH", "SSO", "TCP",
		"TLS", "TTL", "UDP", "UI", "UID", "URI", "URL", "UTF8", "UUID", "VM",
		"XML", "XMPP", "XSRF", "XSS",
	} {
		acronyms[w] = struct{}{}
	}
}

// AddAcronym adds a word that pascal and camel render in upper case.
func AddAcronym(word string) {
	acronymsMu.Lock()
	defer acronymsMu.Unlock()
	acronyms[strings.ToUpper(word)] = struct{}{}
}

func isAcronym(w string) bool {
	acronymsMu.RLock()
	defer acronymsMu.RUnlock()
	_, ok := acronyms[w]
	return ok
}

// snake converts the given identifier to snake case, keeping acronyms
// together. e.g. UserSQLProvider becomes user_sql_provider.
func snake(s string) string {
	var (
		j int
		b strings.Builder
	)
	for i := 0; i < len(s); i++ {
		r := rune(s[i])
		// Put '_' if it is not a start or end of a word, current letter is uppercase,
		// and previous is lowercase (cases like: "UserInfo"), or next letter is also
		// a lowercase and previous letter is not "_".
		if i > 0 && i < len(s)-1 && unicode.IsUpper(r) {
			if unicode.IsLower(rune(s[i-1])) ||
				j != i-1 && unicode.IsLower(rune(s[i+1])) && unicode.IsLetter(rune(s[i-1])) {
				j = i
				b.WriteString("_")
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

func words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == '_' || r == '-' })
}

func pascalWords(ws []string) string {
	for i, w := range ws {
		upper := strings.ToUpper(w)
		if isAcronym(upper) {
			ws[i] = upper
		} else {
			ws[i] = rules.Capitalize(w)
		}
	}
	return strings.Join(ws, "")
}

// pascal converts the given column or table name to pascal case.
// e.g. user_id becomes UserID.
func pascal(s string) string {
	return pascalWords(words(s))
}

// camel converts the given column name to camel case.
// e.g. user_id becomes userID.
func camel(s string) string {
	ws := words(s)
	if len(ws) < 2 {
		return s
	}
	return ws[0] + pascalWords(ws[1:])
}
