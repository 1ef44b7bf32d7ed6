package filters

import "reflect"

// FieldAccessor is implemented by page-like values that expose template data
// through a named-field lookup instead of being plain maps. GroupBy reads
// such elements through Field; a missing field should return nil.
type FieldAccessor interface {
	Field(name string) any
}

// Group is one bucket produced by GroupBy: the stringified key and the
// elements that resolved to it, in their original order.
type Group struct {
	Name  string `json:"name"`
	Items []any  `json:"items"`
}

// GroupBy partitions a sequence by the stringified value of a field. Each
// element's field is resolved through FieldAccessor when the element
// implements it, and by direct key lookup when the element is a mapping.
// A nil or missing field groups under the empty-string key. Distinct keys
// appear in first-encounter order. Input that is not a sequence is returned
// unchanged.
func GroupBy(input any, field string) any {
	items, ok := toSlice(input)
	if !ok {
		return input
	}

	var groups []Group
	index := make(map[string]int, len(items))
	for _, item := range items {
		key := stringify(fieldValue(item, field))
		if i, seen := index[key]; seen {
			groups[i].Items = append(groups[i].Items, item)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, Group{Name: key, Items: []any{item}})
	}
	return groups
}

// Where selects, preserving order, the elements of a sequence that are
// mappings whose value at key equals value. Equality is exact, not
// stringified. Elements lacking the key are excluded unless value is nil.
// Input that is not a sequence is returned unchanged.
func Where(input any, key string, value any) any {
	items, ok := toSlice(input)
	if !ok {
		return input
	}

	selected := make([]any, 0, len(items))
	for _, item := range items {
		entry, found := mappingValue(item, key)
		if found && equal(entry, value) {
			selected = append(selected, item)
		} else if !found && value == nil && isMapping(item) {
			// Absent compares equal only to an absent-like desired value.
			selected = append(selected, item)
		}
	}
	return selected
}

// fieldValue resolves one element's grouping key: accessor capability first,
// then direct mapping lookup. The same rule applies to every element of one
// GroupBy call.
func fieldValue(item any, field string) any {
	if acc, ok := item.(FieldAccessor); ok {
		return acc.Field(field)
	}
	v, _ := mappingValue(item, field)
	return v
}

// mappingValue reads key from a mapping-shaped element, reporting whether
// the key was present. Non-mapping elements report absent.
func mappingValue(item any, key string) (any, bool) {
	switch m := item.(type) {
	case map[string]any:
		v, ok := m[key]
		return v, ok
	case map[string]string:
		v, ok := m[key]
		return v, ok
	}
	rv := reflect.ValueOf(item)
	if rv.Kind() != reflect.Map {
		return nil, false
	}
	for _, k := range rv.MapKeys() {
		if stringify(k.Interface()) == key {
			return rv.MapIndex(k).Interface(), true
		}
	}
	return nil, false
}

func isMapping(item any) bool {
	if item == nil {
		return false
	}
	return reflect.ValueOf(item).Kind() == reflect.Map
}
