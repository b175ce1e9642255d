package manifest

import (
	"regexp"
	"strings"
)

// envVarPattern matches ${VAR} and ${VAR:-default}.
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

const escapedDollar = "\x00dollar\x00"

// expandEnv replaces ${VAR} and ${VAR:-default} with values from lookup.
// An unset variable without default expands to "". "$$" yields a literal "$".
func expandEnv(content string, lookup func(string) (string, bool)) string {
	content = strings.ReplaceAll(content, "$$", escapedDollar)

	content = envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		sub := envVarPattern.FindStringSubmatch(match)
		if value, ok := lookup(sub[1]); ok {
			return value
		}
		return sub[2]
	})

	return strings.ReplaceAll(content, escapedDollar, "$")
}
