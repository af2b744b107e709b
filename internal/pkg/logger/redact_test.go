package logger

import "testing"

func TestRedactSecret(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain password", "hunter2", "***"},
		{"empty", "", ""},
		{"postgres dsn", "postgres://user:pw@localhost/db", "postgres://***"},
		{"redis url", "redis://localhost:6379", "redis://***"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RedactSecret(tt.in); got != tt.want {
				t.Errorf("RedactSecret(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRedactValueByKey(t *testing.T) {
	if got := redactValue("password", "1234"); got != "***" {
		t.Errorf("password value leaked: %q", got)
	}
	if got := redactValue("database_url", "postgres://u:p@h/db"); got != "postgres://***" {
		t.Errorf("dsn leaked: %q", got)
	}
	if got := redactValue("username", "tester1"); got != "tester1" {
		t.Errorf("non-secret field mangled: %q", got)
	}
}
