package templates

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Vars maps placeholder names to display strings.
type Vars map[string]string

// leftoverToken matches placeholders that survived substitution.
var leftoverToken = regexp.MustCompile(`\{\{[A-Z0-9_]+\}\}`)

// ReplaceVars substitutes every {{KEY}} in html whose KEY is in vars, then
// strips any remaining {{UPPER_SNAKE}} placeholder. Values are inserted
// verbatim; no HTML escaping is applied.
func ReplaceVars(html string, vars Vars) string {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := html
	for _, k := range keys {
		result = strings.ReplaceAll(result, "{{"+k+"}}", vars[k])
	}
	return leftoverToken.ReplaceAllLiteralString(result, "")
}

// Placeholders returns the distinct placeholder names found in html, in order
// of first appearance.
func Placeholders(html string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range leftoverToken.FindAllString(html, -1) {
		name := m[2 : len(m)-2]
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// InvalidVarsError is returned when a --vars value or vars file is not a JSON
// object of scalar values.
type InvalidVarsError struct {
	Source string
	Err    error
}

func (e *InvalidVarsError) Error() string {
	return fmt.Sprintf("invalid vars JSON in %s: %v", e.Source, e.Err)
}

func (e *InvalidVarsError) Unwrap() error {
	return e.Err
}

// ParseVarsJSON decodes a JSON object into Vars. Scalars are converted to
// their display form: strings as-is, numbers in shortest form, booleans as
// true/false and null as the empty string. Arrays of scalars are joined with
// commas.
func ParseVarsJSON(source string, data []byte) (Vars, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, &InvalidVarsError{Source: source, Err: err}
	}
	if raw == nil {
		return nil, &InvalidVarsError{Source: source, Err: fmt.Errorf("expected a JSON object")}
	}

	return VarsFromMap(source, raw)
}

// VarsFromMap converts already decoded values (JSON or YAML) into Vars with
// the same rules as ParseVarsJSON.
func VarsFromMap(source string, raw map[string]any) (Vars, error) {
	vars := make(Vars, len(raw))
	for k, v := range raw {
		s, err := stringify(v)
		if err != nil {
			return nil, &InvalidVarsError{Source: source, Err: fmt.Errorf("key %s: %w", k, err)}
		}
		vars[k] = s
	}
	return vars, nil
}

func stringify(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return strconv.FormatInt(i, 10), nil
		}
		f, err := x.Float64()
		if err != nil {
			return x.String(), nil
		}
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			s, err := stringify(e)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return strings.Join(parts, ","), nil
	default:
		return "", fmt.Errorf("unsupported value of type %T", v)
	}
}
