package terms

import "strings"

const minTermLen = 3

// Split breaks a free-text query into catalog search terms. Tokens shorter
// than three characters ("mg", "of", "a") carry no selectivity and are dropped.
func Split(query string) []string {
	fields := strings.Fields(query)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < minTermLen {
			continue
		}
		out = append(out, f)
	}
	return out
}
