package network

import (
	"net/http"
	"sort"
	"strings"
)

// Field is a single header name and value.
type Field struct {
	Name  string
	Value string
}

// Fields is an ordered header mapping. Unlike http.Header it keeps the order
// in which names were first set and the spelling they were set with.
type Fields []Field

func (f Fields) index(name string, exact bool) int {
	for i, field := range f {
		if field.Name == name || (!exact && strings.EqualFold(field.Name, name)) {
			return i
		}
	}
	return -1
}

// Get returns the value for name, matching names case-insensitively.
func (f Fields) Get(name string) (string, bool) {
	i := f.index(name, false)
	if i < 0 {
		return "", false
	}
	return f[i].Value, true
}

// Set stores value under name. An existing field whose name matches
// case-insensitively is overwritten in place, taking the new name and value.
func (f *Fields) Set(name, value string) {
	f.set(name, value, false)
}

// SetExact is like Set but only overwrites a field with the exact same name.
func (f *Fields) SetExact(name, value string) {
	f.set(name, value, true)
}

func (f *Fields) set(name, value string, exact bool) {
	if i := f.index(name, exact); i >= 0 {
		(*f)[i] = Field{Name: name, Value: value}
		return
	}
	*f = append(*f, Field{Name: name, Value: value})
}

// Clone returns a copy that shares no memory with f.
func (f Fields) Clone() Fields {
	if f == nil {
		return nil
	}
	clone := make(Fields, len(f))
	copy(clone, f)
	return clone
}

// Header converts the fields to an http.Header. Fields that only differ in
// case end up as multiple values of the same canonical key.
func (f Fields) Header() http.Header {
	h := make(http.Header, len(f))
	for _, field := range f {
		h.Add(field.Name, field.Value)
	}
	return h
}

// FieldsFromHeader flattens h into fields, one per value.
func FieldsFromHeader(h http.Header) Fields {
	fields := make(Fields, 0, len(h))
	for name, values := range h {
		for _, value := range values {
			fields = append(fields, Field{Name: name, Value: value})
		}
	}
	return fields
}

// Normalized returns the fields with names lower-cased and sorted. When a
// name repeats, the last value wins, as it does for header entries.
func (f Fields) Normalized() Fields {
	merged := make(Fields, 0, len(f))
	for _, field := range f {
		name := strings.ToLower(field.Name)
		if i := merged.index(name, true); i >= 0 {
			merged[i].Value = field.Value
			continue
		}
		merged = append(merged, Field{Name: name, Value: field.Value})
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Name < merged[j].Name
	})
	return merged
}
