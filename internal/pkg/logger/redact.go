package logger

import "strings"

// Keys whose values are never logged in the clear.
var secretKeys = []string{"password", "secret", "token", "dsn", "database_url"}

// redactValue masks credential-bearing fields before they reach the log
// stream. Passwords are fully masked; connection strings keep their scheme.
func redactValue(key, val string) string {
	k := strings.ToLower(key)
	for _, s := range secretKeys {
		if strings.Contains(k, s) {
			return RedactSecret(val)
		}
	}
	return val
}

// RedactSecret fully masks a secret, preserving only a scheme prefix when
// the value looks like a URL ("postgres://..." → "postgres://***").
func RedactSecret(val string) string {
	if val == "" {
		return ""
	}
	if i := strings.Index(val, "://"); i > 0 {
		return val[:i+3] + "***"
	}
	return "***"
}
