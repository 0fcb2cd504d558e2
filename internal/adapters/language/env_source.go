package language

import (
	"os"
	"strings"
)

// Checked in POSIX precedence order.
var envKeys = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// EnvSource reports the language preference of the process environment.
// An explicit override (VIEWER_LANG) wins over the POSIX variables.
type EnvSource struct {
	override string
	lookup   func(string) (string, bool)
}

func NewEnvSource(override string) *EnvSource {
	return &EnvSource{override: override, lookup: os.LookupEnv}
}

func (s *EnvSource) Language() string {
	if v := strings.TrimSpace(s.override); v != "" {
		return v
	}

	// LANGUAGE is a colon separated priority list.
	if v, ok := s.lookup("LANGUAGE"); ok {
		first, _, _ := strings.Cut(v, ":")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}

	for _, k := range envKeys {
		if v, ok := s.lookup(k); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
