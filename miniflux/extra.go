package miniflux

import (
	"encoding/json"
	"reflect"
	"strings"
	"sync"
)

// Extra holds JSON members of a record that have no struct field. They are
// kept on decode and written back on encode, so records survive a round trip
// through the client even when the server adds fields.
type Extra map[string]json.RawMessage

// Get decodes the member named key into v and reports whether it was present.
func (e Extra) Get(key string, v any) (bool, error) {
	raw, ok := e[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, v)
}

// Set encodes v as the member named key.
func (e *Extra) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if *e == nil {
		*e = make(Extra)
	}
	(*e)[key] = raw
	return nil
}

var knownKeys sync.Map // reflect.Type -> map[string]struct{}

// jsonKeys lists the member names the struct type t encodes itself.
func jsonKeys(t reflect.Type) map[string]struct{} {
	if keys, ok := knownKeys.Load(t); ok {
		return keys.(map[string]struct{})
	}

	keys := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		switch name {
		case "-":
			continue
		case "":
			name = field.Name
		}
		keys[name] = struct{}{}
	}

	knownKeys.Store(t, keys)
	return keys
}

// decodeWithExtra decodes data into plain, a pointer to a struct without
// custom JSON methods, and collects unknown members into extra.
func decodeWithExtra(data []byte, plain any, extra *Extra) error {
	if err := json.Unmarshal(data, plain); err != nil {
		return err
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return err
	}

	known := jsonKeys(reflect.TypeOf(plain).Elem())
	*extra = nil
	for key, raw := range members {
		if _, ok := known[key]; ok {
			continue
		}
		if *extra == nil {
			*extra = make(Extra)
		}
		(*extra)[key] = raw
	}
	return nil
}

// encodeWithExtra encodes plain and merges extra into the object. Struct
// fields win over extra members of the same name.
func encodeWithExtra(plain any, extra Extra) ([]byte, error) {
	data, err := json.Marshal(plain)
	if err != nil || len(extra) == 0 {
		return data, err
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, err
	}
	for key, raw := range extra {
		if _, ok := members[key]; !ok {
			members[key] = raw
		}
	}
	return json.Marshal(members)
}
