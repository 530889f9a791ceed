package locale

import (
	"fmt"
	"strings"
)

// canonicalizeCode normalizes a locale code to its canonical form: a
// lowercase language ("pt"), optionally followed by an underscore and an
// uppercase country ("pt_BR"). Dashes are accepted as separators.
func canonicalizeCode(code string) (string, error) {
	if code == "" {
		return "", ErrEmptyLocaleCode
	}

	parts := strings.Split(strings.ReplaceAll(code, "-", "_"), "_")
	switch len(parts) {
	case 1:
		return strings.ToLower(parts[0]), nil
	case 2:
		return strings.ToLower(parts[0]) + "_" + strings.ToUpper(parts[1]), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrMalformedLocaleCode, code)
	}
}

// closestMatch resolves an ordered candidate list against the supported set.
// Candidates are evaluated in order and the first match wins: the whole
// normalized code is tried first, then the bare language of that same
// candidate, before moving on. Empty candidates and codes with more than two
// parts are skipped. When nothing matches, the default code is returned.
func (s *snapshot) closestMatch(candidates []string) string {
	for _, code := range candidates {
		if code == "" {
			continue
		}

		code = strings.ReplaceAll(code, "-", "_")
		parts := strings.Split(code, "_")
		if len(parts) > 2 {
			continue
		}
		if len(parts) == 2 {
			code = strings.ToLower(parts[0]) + "_" + strings.ToUpper(parts[1])
		}

		if _, ok := s.supported[code]; ok {
			return code
		}
		if lang := strings.ToLower(parts[0]); lang != code {
			if _, ok := s.supported[lang]; ok {
				return lang
			}
		}
	}

	return s.defaultCode
}
