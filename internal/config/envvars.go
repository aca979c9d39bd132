// ABOUTME: Environment variable expansion in style string fields
// ABOUTME: Replaces ${VAR} patterns with os.Getenv values; unset vars become empty

package config

import (
	"os"
	"regexp"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// ResolveEnvVars expands ${VAR} patterns in string fields of s.
func ResolveEnvVars(s *Style) {
	s.Border = expandEnv(s.Border)
	s.VAlign = expandEnv(s.VAlign)
	s.HeadColor = expandEnv(s.HeadColor)
	s.BorderColor = expandEnv(s.BorderColor)
	s.Truncate.Position = expandEnv(s.Truncate.Position)
	s.Truncate.Character = expandEnv(s.Truncate.Character)

	for i, a := range s.ColAligns {
		s.ColAligns[i] = expandEnv(a)
	}
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}
