package codegen

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/GriffinCanCode/AgentOS/compiler/internal/domain/codegen/js"
)

// Window property names with special handling
const (
	PropType  = "type"
	PropTitle = "title"
	PropIcon  = "icon"
)

// numericPattern matches decimal numbers written as strings, with optional
// leading whitespace, sign and exponent
var numericPattern = regexp.MustCompile(`^\s*[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// titleAccessor is the runtime lookup of the localized title
func titleAccessor() js.Expr {
	return js.Dot(js.Id("LABELS"), "title")
}

// fieldName is the per-instance field a window property is stored in
func fieldName(property string) string {
	return "_" + property
}

// initStatements emits this._<key> = <value>; for every property except
// type, in sorted key order
func initStatements(props map[string]interface{}) []js.Stmt {
	keys := make([]string, 0, len(props))
	for k := range props {
		if k == PropType {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	stmts := make([]js.Stmt, 0, len(keys))
	for _, k := range keys {
		value := encodeProperty(props[k])
		if k == PropTitle {
			value = titleAccessor()
		}
		stmts = append(stmts, js.Set(js.Dot(js.This(), fieldName(k)), value))
	}
	return stmts
}

// encodeProperty maps a window property value to a literal: booleans stay
// booleans, empty and zero values become null, numbers and numeric strings
// stay unquoted and every other string is quoted.
func encodeProperty(v interface{}) js.Expr {
	switch val := v.(type) {
	case bool:
		return js.Boolean(val)
	case nil:
		return js.NullLit()
	case string:
		if isFalsyString(val) {
			return js.NullLit()
		}
		if numericPattern.MatchString(val) {
			if f, err := strconv.ParseFloat(strings.TrimSpace(val), 64); err == nil {
				return js.Num(f)
			}
		}
		return js.Str(val)
	case float64:
		return number(val)
	case float32:
		return number(float64(val))
	case int:
		return number(float64(val))
	case int64:
		return number(float64(val))
	case uint64:
		return number(float64(val))
	case []interface{}:
		elems := make([]js.Expr, 0, len(val))
		for _, e := range val {
			elems = append(elems, encodeProperty(e))
		}
		return js.Arr(elems...)
	case map[string]interface{}:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		props := make([]js.Property, 0, len(keys))
		for _, k := range keys {
			props = append(props, js.Prop(k, encodeProperty(val[k])))
		}
		return js.Obj(props...)
	default:
		return js.Str(fmt.Sprint(val))
	}
}

func number(f float64) js.Expr {
	if f == 0 {
		return js.NullLit()
	}
	return js.Num(f)
}

func isFalsyString(s string) bool {
	return s == "" || s == "0"
}

// isUnset reports whether a property is missing or falsy
func isUnset(props map[string]interface{}, key string) bool {
	v, ok := props[key]
	if !ok || v == nil {
		return true
	}
	switch val := v.(type) {
	case string:
		return isFalsyString(val)
	case bool:
		return !val
	}
	return false
}
