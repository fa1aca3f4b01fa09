package escp

// Source resolves a placeholder name to its textual value. The second
// return reports whether the source has a value for the name; filling a
// referenced placeholder against a source that reports false fails with
// [ErrMissingValue].
type Source interface {
	Lookup(name string) (string, bool)
}

// Map adapts a flat key/value mapping as a [Source].
type Map map[string]string

// Lookup returns the mapped value for name.
func (m Map) Lookup(name string) (string, bool) {
	value, ok := m[name]
	return value, ok
}

// Accessors adapts named accessor functions as a [Source], binding each
// placeholder name to the accessor that produces its value:
//
//	escp.Accessors{"id": person.ID, "nickname": person.Nickname}
//
// A nil accessor counts as no value.
type Accessors map[string]func() string

// Lookup invokes the accessor registered for name.
func (a Accessors) Lookup(name string) (string, bool) {
	fn, ok := a[name]
	if !ok || fn == nil {
		return "", false
	}
	return fn(), true
}
