// Package sanitize normalizes untrusted room snapshots into well-formed values.
//
// Every function here is total: absent values, JSON null, wrong shapes and
// invalid JSON all produce a usable value. Problems are reported through
// ParseResult.Issues for logging and never as errors.
package sanitize

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// ParseResult carries a normalized value and what had to be repaired
type ParseResult[T any] struct {
	Value T
	// Defaulted is set when the whole value was replaced by its default
	Defaulted bool
	Issues    []string
}

func (r *ParseResult[T]) issuef(format string, args ...any) {
	r.Issues = append(r.Issues, fmt.Sprintf(format, args...))
}

// root parses raw into a gjson result. ok is false when nothing usable is there.
func root(raw []byte) (gjson.Result, bool, string) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return gjson.Result{}, false, ""
	}
	if !gjson.ValidBytes(raw) {
		return gjson.Result{}, false, "invalid json"
	}
	res := gjson.ParseBytes(raw)
	if res.Type == gjson.Null {
		return res, false, ""
	}
	return res, true, ""
}

// sequence returns the elements of an array-like value in order.
// Stores that keep arrays as objects keyed by index ("0", "1", ...) are
// accepted and ordered by key.
func sequence(res gjson.Result) ([]gjson.Result, bool) {
	if res.IsArray() {
		return res.Array(), true
	}
	if !res.IsObject() {
		return nil, false
	}

	type indexed struct {
		idx   int
		value gjson.Result
	}
	var items []indexed
	arrayLike := true
	res.ForEach(func(key, value gjson.Result) bool {
		idx, err := strconv.Atoi(key.String())
		if err != nil || idx < 0 {
			arrayLike = false
			return false
		}
		items = append(items, indexed{idx: idx, value: value})
		return true
	})
	if !arrayLike {
		return nil, false
	}

	sort.Slice(items, func(i, j int) bool { return items[i].idx < items[j].idx })
	out := make([]gjson.Result, 0, len(items))
	for _, item := range items {
		out = append(out, item.value)
	}
	return out, true
}

// number coerces JSON numbers and numeric strings. Fractions are truncated.
func number(res gjson.Result) (int, bool) {
	var f float64
	switch res.Type {
	case gjson.Number:
		f = res.Num
	case gjson.String:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(res.Str), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(math.Trunc(f)), true
}

// truthy follows loose boolean coercion: false, 0, "" and null are false,
// everything else present is true.
func truthy(res gjson.Result) bool {
	switch res.Type {
	case gjson.True:
		return true
	case gjson.Number:
		return res.Num != 0
	case gjson.String:
		return res.Str != ""
	case gjson.JSON:
		return true
	default:
		return false
	}
}

// text returns a string field; numbers are kept in their JSON form.
func text(res gjson.Result) string {
	switch res.Type {
	case gjson.String:
		return res.Str
	case gjson.Number:
		return res.Raw
	default:
		return ""
	}
}
