package ast

// Call is a field argument: a name plus an optional value. Value is nil, a
// *CallValue, a *CallVariable, a *BatchCallVariable, or a raw literal left
// unwrapped by the caller.
type Call struct {
	Name     string
	Value    interface{}
	Metadata CallMetadata
}

// CallMetadata names the argument's input type, empty when unknown. Calls
// synthesized during query construction have no type.
type CallMetadata struct {
	Type string
}

func (*Call) Kind() Kind { return KindCall }

// CallValue wraps an arbitrary literal argument value.
type CallValue struct {
	Value interface{}
}

func (*CallValue) Kind() Kind { return KindCallValue }

// CallVariable references a variable bound by the enclosing container.
type CallVariable struct {
	Name string
}

func (*CallVariable) Kind() Kind { return KindCallVariable }

// BatchCallVariable defers an argument value to the response of another
// query in the same batch: the value at JSONPath within the response to the
// query identified by SourceQueryID. The path is opaque to this package.
type BatchCallVariable struct {
	SourceQueryID string
	JSONPath      string
}

func (*BatchCallVariable) Kind() Kind { return KindBatchCallVariable }

// CallList is an ordered list of calls. Order is the source argument order.
type CallList []*Call

// Get returns the first call with the given name.
func (l CallList) Get(name string) (*Call, bool) {
	for _, c := range l {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// MustGet returns the first call with the given name, panicking if absent.
func (l CallList) MustGet(name string) *Call {
	c, ok := l.Get(name)
	if !ok {
		panic("call not found")
	}
	return c
}
