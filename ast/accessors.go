package ast

// The GetX functions narrow an arbitrary value to a single node variant.
// They accept anything so callers at the boundary can probe values of
// unknown provenance: the result is absent when v is nil, not a node, a
// node of a different kind, or a typed nil pointer. They never panic and
// perform no allocation.

// GetField returns v as a *Field if that is its exact kind.
func GetField(v interface{}) (*Field, bool) {
	n, ok := v.(*Field)
	if !ok || n == nil {
		return nil, false
	}
	return n, true
}

// GetFragment returns v as a *Fragment if that is its exact kind.
func GetFragment(v interface{}) (*Fragment, bool) {
	n, ok := v.(*Fragment)
	if !ok || n == nil {
		return nil, false
	}
	return n, true
}

// GetFragmentReference returns v as a *FragmentReference if that is its
// exact kind.
func GetFragmentReference(v interface{}) (*FragmentReference, bool) {
	n, ok := v.(*FragmentReference)
	if !ok || n == nil {
		return nil, false
	}
	return n, true
}

// GetQuery returns v as a *Query if that is its exact kind.
func GetQuery(v interface{}) (*Query, bool) {
	n, ok := v.(*Query)
	if !ok || n == nil {
		return nil, false
	}
	return n, true
}

// GetMutation returns v as a *Mutation if that is its exact kind.
func GetMutation(v interface{}) (*Mutation, bool) {
	n, ok := v.(*Mutation)
	if !ok || n == nil {
		return nil, false
	}
	return n, true
}

// GetSubscription returns v as a *Subscription if that is its exact kind.
func GetSubscription(v interface{}) (*Subscription, bool) {
	n, ok := v.(*Subscription)
	if !ok || n == nil {
		return nil, false
	}
	return n, true
}

// GetCall returns v as a *Call if that is its exact kind.
func GetCall(v interface{}) (*Call, bool) {
	n, ok := v.(*Call)
	if !ok || n == nil {
		return nil, false
	}
	return n, true
}

// GetCallValue returns v as a *CallValue if that is its exact kind.
func GetCallValue(v interface{}) (*CallValue, bool) {
	n, ok := v.(*CallValue)
	if !ok || n == nil {
		return nil, false
	}
	return n, true
}

// GetCallVariable returns v as a *CallVariable if that is its exact kind.
func GetCallVariable(v interface{}) (*CallVariable, bool) {
	n, ok := v.(*CallVariable)
	if !ok || n == nil {
		return nil, false
	}
	return n, true
}

// GetBatchCallVariable returns v as a *BatchCallVariable if that is its
// exact kind.
func GetBatchCallVariable(v interface{}) (*BatchCallVariable, bool) {
	n, ok := v.(*BatchCallVariable)
	if !ok || n == nil {
		return nil, false
	}
	return n, true
}
