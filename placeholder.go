package locale

import "strings"

// vars carries placeholder values for template expansion.
type vars map[string]string

// expand replaces {{name}} placeholders in the template with values from the
// map. Placeholders without a value remain unchanged.
func expand(template string, values vars) string {
	if len(values) == 0 {
		return template
	}

	result := template
	for key, value := range values {
		result = strings.ReplaceAll(result, "{{"+key+"}}", value)
	}

	return result
}
