package errors

// AsInvariant reports whether a recovered panic value is an invariant
// violation. Guards around construction use it to tell violations apart from
// unrelated panics, which they should re-panic.
func AsInvariant(v interface{}) (*InvariantError, bool) {
	err, ok := v.(*InvariantError)
	if !ok || err == nil {
		return nil, false
	}
	return err, true
}
