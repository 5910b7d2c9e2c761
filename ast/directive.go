package ast

// Directive annotates a node. Directives are opaque to the construction
// layer and pass through unchanged.
type Directive struct {
	Name      string
	Arguments []DirectiveArgument
}

// DirectiveArgument is a named directive argument with a raw value.
type DirectiveArgument struct {
	Name  string
	Value interface{}
}

// DirectiveList is an ordered list of directives.
type DirectiveList []*Directive

// Get returns the first directive with the given name.
func (l DirectiveList) Get(name string) (*Directive, bool) {
	for _, d := range l {
		if d.Name == name {
			return d, true
		}
	}
	return nil, false
}
