package registry

import (
	"strconv"
	"strings"

	"github.com/stemlab/biobank-backend/internal/platform/logger"
)

// Extended tri-state answers as stored on entity columns. The empty string
// means the question was absent from the registry record.
const (
	AnswerYes     = "yes"
	AnswerNo      = "no"
	AnswerUnknown = "unknown"
)

// Values is a tolerant reader over a decoded registry record. Every accessor
// takes a key path and returns a typed value, falling back to an absent
// sentinel when intermediate keys are missing. Coercion failures are logged
// and never abort the record.
type Values struct {
	source map[string]interface{}
	log    *logger.Logger
}

func NewValues(source map[string]interface{}, log *logger.Logger) Values {
	return Values{source: source, log: log}
}

func (v Values) lookup(path ...string) (interface{}, bool) {
	cur := v.source
	for i, key := range path {
		raw, ok := cur[key]
		if !ok {
			return nil, false
		}
		if i == len(path)-1 {
			return raw, true
		}
		next, ok := raw.(map[string]interface{})
		if !ok {
			return nil, false
		}
		cur = next
	}
	return nil, false
}

// Raw returns the value at path with strings trimmed, or nil when the path
// is missing.
func (v Values) Raw(path ...string) interface{} {
	raw, ok := v.lookup(path...)
	if !ok {
		return nil
	}
	if s, isString := raw.(string); isString {
		return strings.TrimSpace(s)
	}
	return raw
}

// String returns the trimmed string at path, or nil when the path is
// missing or holds a non-string.
func (v Values) String(path ...string) *string {
	raw, ok := v.lookup(path...)
	if !ok {
		return nil
	}
	s, isString := raw.(string)
	if !isString {
		return nil
	}
	s = strings.TrimSpace(s)
	return &s
}

// Text returns the trimmed string at path, or "" when absent.
func (v Values) Text(path ...string) string {
	if s := v.String(path...); s != nil {
		return *s
	}
	return ""
}

// Has reports whether path resolves to a non-empty value.
func (v Values) Has(path ...string) bool {
	raw, ok := v.lookup(path...)
	if !ok || raw == nil {
		return false
	}
	switch t := raw.(type) {
	case string:
		return strings.TrimSpace(t) != ""
	case []interface{}:
		return len(t) > 0
	default:
		return true
	}
}

// StringList returns the list of strings at path, or nil when absent.
// Non-string elements are dropped.
func (v Values) StringList(path ...string) []string {
	raw, ok := v.lookup(path...)
	if !ok {
		return nil
	}
	items, isList := raw.([]interface{})
	if !isList {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, isString := item.(string); isString {
			out = append(out, s)
		}
	}
	return out
}

// List returns the list of sub-records at path, or nil when absent.
func (v Values) List(path ...string) []map[string]interface{} {
	raw, ok := v.lookup(path...)
	if !ok {
		return nil
	}
	items, isList := raw.([]interface{})
	if !isList {
		return nil
	}
	out := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		if m, isMap := item.(map[string]interface{}); isMap {
			out = append(out, m)
		}
	}
	return out
}

// Bool is true only when the value is the string "1". Absence is not
// distinguishable from an explicit "0".
func (v Values) Bool(path ...string) bool {
	raw, ok := v.lookup(path...)
	if !ok {
		return false
	}
	return raw == "1"
}

// NullBool decodes the registry's tri-state flags: "1" is true, "0" is
// false, anything else (including absence) is unanswered.
func (v Values) NullBool(path ...string) *bool {
	raw, ok := v.lookup(path...)
	if !ok {
		return nil
	}
	switch raw {
	case "1":
		b := true
		return &b
	case "0":
		b := false
		return &b
	default:
		return nil
	}
}

// ExtendedBool decodes "1"/"0"/"unknown" into yes/no/unknown. Any other
// present value also decodes to unknown; only a fully missing path yields
// the empty string.
func (v Values) ExtendedBool(path ...string) string {
	_, ok := v.lookup(path...)
	if !ok {
		return ""
	}
	switch v.Raw(path...) {
	case "1":
		return AnswerYes
	case "0":
		return AnswerNo
	default:
		return AnswerUnknown
	}
}

// Int parses the value as an integer; parse failures are logged and treated
// as absent.
func (v Values) Int(path ...string) *int {
	raw, ok := v.lookup(path...)
	if !ok {
		return nil
	}
	switch t := raw.(type) {
	case float64:
		n := int(t)
		return &n
	case int:
		n := t
		return &n
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			v.log.Warn("Invalid field value for int", "path", strings.Join(path, "."), "value", t)
			return nil
		}
		return &n
	default:
		v.log.Warn("Invalid field value for int", "path", strings.Join(path, "."), "value", raw)
		return nil
	}
}

// Sub returns an accessor over the nested record at path.
func (v Values) Sub(source map[string]interface{}) Values {
	return Values{source: source, log: v.log}
}
