// Package mask hides personal fields of payloads before they are written to logs.
//
// Struct fields tagged `mask:"true"` are replaced by a placeholder; other fields are
// copied. Field names follow the json tag, then the yaml tag, then the Go field name.
package mask

import (
	"reflect"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	tagName = "mask"

	// Placeholder replaces every non-zero masked value.
	Placeholder = "***"
)

// StructToOrdMap returns an ordered map of the fields of v with sensitive values masked.
// Nested structs are flattened with dotted keys ("company.name").
// v may be a struct or a pointer to one; anything else is stored under the empty key.
func StructToOrdMap(v any) *orderedmap.OrderedMap[string, any] {
	if v == nil {
		return nil
	}

	om := orderedmap.New[string, any]()
	flatten(om, reflect.ValueOf(v), "")
	return om
}

// Slice masks every element of a slice of structs, preserving order.
func Slice[T any](items []T) []*orderedmap.OrderedMap[string, any] {
	out := make([]*orderedmap.OrderedMap[string, any], 0, len(items))
	for _, item := range items {
		out = append(out, StructToOrdMap(item))
	}
	return out
}

func flatten(om *orderedmap.OrderedMap[string, any], val reflect.Value, prefix string) {
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			om.Set(prefix, nil)
			return
		}
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		om.Set(prefix, val.Interface())
		return
	}

	typ := val.Type()
	for i := range val.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}

		name, skip := fieldName(field)
		if skip {
			continue
		}
		if prefix != "" {
			name = prefix + "." + name
		}

		fv := val.Field(i)
		switch {
		case strings.EqualFold(field.Tag.Get(tagName), "true"):
			om.Set(name, maskValue(fv))
		case isStruct(fv):
			flatten(om, fv, name)
		default:
			om.Set(name, fv.Interface())
		}
	}
}

func isStruct(val reflect.Value) bool {
	if val.Kind() == reflect.Pointer {
		return !val.IsNil() && val.Elem().Kind() == reflect.Struct
	}
	return val.Kind() == reflect.Struct
}

// maskValue keeps zero values visible so that missing data is still obvious in logs.
func maskValue(val reflect.Value) any {
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}
	if val.IsZero() {
		return val.Interface()
	}
	return Placeholder
}

// fieldName returns the json name of the field, then the yaml name (config structs),
// then the Go name. The second result is true for fields tagged "-".
func fieldName(field reflect.StructField) (string, bool) {
	for _, key := range []string{"json", "yaml"} {
		tag, ok := field.Tag.Lookup(key)
		if !ok {
			continue
		}
		if tag == "-" {
			return "", true
		}
		if name, _, _ := strings.Cut(tag, ","); name != "" {
			return name, false
		}
	}
	return field.Name, false
}
