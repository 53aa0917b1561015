package registry

import (
	"testing"

	"github.com/stemlab/biobank-backend/internal/platform/logger"
)

func testValues(source map[string]interface{}) Values {
	return NewValues(source, logger.NewNop())
}

func TestValuesString(t *testing.T) {
	v := testValues(map[string]interface{}{
		"name":    "  CORDi001-A  ",
		"number":  float64(3),
		"nested":  map[string]interface{}{"inner": "value"},
		"answers": []interface{}{"a"},
	})

	if s := v.String("name"); s == nil || *s != "CORDi001-A" {
		t.Fatalf("expected trimmed name, got %v", s)
	}
	if s := v.String("missing"); s != nil {
		t.Fatalf("expected nil for missing key, got %q", *s)
	}
	if s := v.String("number"); s != nil {
		t.Fatalf("expected nil for non-string, got %q", *s)
	}
	if s := v.String("nested", "inner"); s == nil || *s != "value" {
		t.Fatalf("expected nested lookup, got %v", s)
	}
	if got := v.Text("missing"); got != "" {
		t.Fatalf("expected empty text for missing key, got %q", got)
	}
}

func TestValuesBool(t *testing.T) {
	v := testValues(map[string]interface{}{
		"yes":     "1",
		"no":      "0",
		"garbage": "true",
	})

	if !v.Bool("yes") {
		t.Fatal("expected true for \"1\"")
	}
	for _, key := range []string{"no", "garbage", "missing"} {
		if v.Bool(key) {
			t.Fatalf("expected false for %q", key)
		}
	}
}

func TestValuesNullBool(t *testing.T) {
	v := testValues(map[string]interface{}{
		"yes":     "1",
		"no":      "0",
		"unknown": "unknown",
	})

	if b := v.NullBool("yes"); b == nil || !*b {
		t.Fatalf("expected true, got %v", b)
	}
	if b := v.NullBool("no"); b == nil || *b {
		t.Fatalf("expected false, got %v", b)
	}
	if b := v.NullBool("unknown"); b != nil {
		t.Fatalf("expected nil for literal unknown, got %v", *b)
	}
	if b := v.NullBool("missing"); b != nil {
		t.Fatalf("expected nil for missing key, got %v", *b)
	}
}

func TestValuesExtendedBool(t *testing.T) {
	v := testValues(map[string]interface{}{
		"yes":     "1",
		"no":      "0",
		"unknown": "unknown",
		"garbage": "maybe",
	})

	cases := map[string]string{
		"yes":     AnswerYes,
		"no":      AnswerNo,
		"unknown": AnswerUnknown,
		"garbage": AnswerUnknown,
		"missing": "",
	}
	for key, want := range cases {
		if got := v.ExtendedBool(key); got != want {
			t.Fatalf("ExtendedBool(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestValuesInt(t *testing.T) {
	v := testValues(map[string]interface{}{
		"string":  "42",
		"decoded": float64(7),
		"padded":  " 5 ",
		"garbage": "7b",
	})

	if n := v.Int("string"); n == nil || *n != 42 {
		t.Fatalf("expected 42, got %v", n)
	}
	if n := v.Int("decoded"); n == nil || *n != 7 {
		t.Fatalf("expected 7, got %v", n)
	}
	if n := v.Int("padded"); n == nil || *n != 5 {
		t.Fatalf("expected 5, got %v", n)
	}
	if n := v.Int("garbage"); n != nil {
		t.Fatalf("expected nil for unparsable value, got %d", *n)
	}
	if n := v.Int("missing"); n != nil {
		t.Fatalf("expected nil for missing key, got %d", *n)
	}
}

func TestValuesStringList(t *testing.T) {
	v := testValues(map[string]interface{}{
		"list":   []interface{}{"a", "b", float64(3)},
		"scalar": "not a list",
	})

	got := v.StringList("list")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("expected [a b], got %v", got)
	}
	if v.StringList("scalar") != nil {
		t.Fatal("expected nil for scalar value")
	}
	if v.StringList("missing") != nil {
		t.Fatal("expected nil for missing key")
	}
}

func TestValuesHas(t *testing.T) {
	v := testValues(map[string]interface{}{
		"present": "x",
		"blank":   "  ",
		"empty":   []interface{}{},
		"zero":    "0",
	})

	if !v.Has("present") || !v.Has("zero") {
		t.Fatal("expected present values to report true")
	}
	for _, key := range []string{"blank", "empty", "missing"} {
		if v.Has(key) {
			t.Fatalf("expected Has(%q) to be false", key)
		}
	}
}

func TestOtherFallback(t *testing.T) {
	v := testValues(map[string]interface{}{
		"plain":       "Enzymatic",
		"other":       "Other",
		"other_text":  "Custom method",
		"bare":        "other",
		"struck":      "Other",
		"struck_text": "",
	})

	if s := otherFallback(v, "plain", "plain_text"); s == nil || *s != "Enzymatic" {
		t.Fatalf("expected plain value, got %v", s)
	}
	if s := otherFallback(v, "other", "other_text"); s == nil || *s != "Custom method" {
		t.Fatalf("expected free-text override, got %v", s)
	}
	if s := otherFallback(v, "bare", "bare_text"); s == nil || *s != "Other" {
		t.Fatalf("expected literal Other, got %v", s)
	}
	if s := otherFallback(v, "struck", "struck_text"); s == nil || *s != "Other" {
		t.Fatalf("expected literal Other for blank free text, got %v", s)
	}
	if s := otherFallback(v, "missing", "missing_text"); s != nil {
		t.Fatalf("expected nil for missing field, got %q", *s)
	}
}
