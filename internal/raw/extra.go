package raw

import (
	"encoding/json"
	"reflect"
	"strings"
	"sync"
)

// Extra holds upstream object keys that no declared field claims. Upstream
// adds fields without notice; keeping them lets callers inspect new data
// without a model change.
type Extra map[string]json.RawMessage

var knownFieldCache sync.Map // reflect.Type -> map[string]struct{}

// knownFields lists the lower-cased JSON names declared on a struct type.
func knownFields(t reflect.Type) map[string]struct{} {
	if cached, ok := knownFieldCache.Load(t); ok {
		return cached.(map[string]struct{})
	}
	fields := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if tag == "-" || !f.IsExported() {
			continue
		}
		if f.Anonymous && tag == "" && f.Type.Kind() == reflect.Struct {
			for name := range knownFields(f.Type) {
				fields[name] = struct{}{}
			}
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "" {
			name = f.Name
		}
		fields[strings.ToLower(name)] = struct{}{}
	}
	knownFieldCache.Store(t, fields)
	return fields
}

// decodeWithExtra unmarshals data into dst, a pointer to an alias struct,
// and returns the keys dst does not declare.
func decodeWithExtra(data []byte, dst any) (Extra, error) {
	if err := json.Unmarshal(data, dst); err != nil {
		return nil, err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil || len(all) == 0 {
		// null or a non-object value decoded fine above; nothing extra
		return nil, nil
	}
	known := knownFields(reflect.TypeOf(dst).Elem())
	for key := range all {
		if _, ok := known[strings.ToLower(key)]; ok {
			delete(all, key)
		}
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all, nil
}

// encodeWithExtra marshals v, an alias struct value, and merges extra back
// in. Declared fields win over extra keys of the same name.
func encodeWithExtra(v any, extra Extra) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil || len(extra) == 0 {
		return data, err
	}
	var merged map[string]json.RawMessage
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for key, value := range extra {
		if _, exists := merged[key]; !exists {
			merged[key] = value
		}
	}
	return json.Marshal(merged)
}
