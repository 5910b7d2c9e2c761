package ast

// Kind is the discriminant tag of the node union. The tag of a node never
// changes. The string values match the kind names emitted by the static
// query compiler, so they are safe to use in diagnostics and summaries.
type Kind string

const (
	KindField             Kind = "Field"
	KindFragment          Kind = "Fragment"
	KindFragmentReference Kind = "FragmentReference"
	KindQuery             Kind = "Query"
	KindMutation          Kind = "Mutation"
	KindSubscription      Kind = "Subscription"
	KindCall              Kind = "Call"
	KindCallValue         Kind = "CallValue"
	KindCallVariable      Kind = "CallVariable"
	KindBatchCallVariable Kind = "BatchCallVariable"
)

// Node is the closed union of query tree variants. Only the pointer node
// types of this package implement it.
type Node interface {
	// Kind reports the node's variant tag.
	Kind() Kind

	isNode()
}

func (*Field) isNode()             {}
func (*Fragment) isNode()          {}
func (*FragmentReference) isNode() {}
func (*Query) isNode()             {}
func (*Mutation) isNode()          {}
func (*Subscription) isNode()      {}
func (*Call) isNode()              {}
func (*CallValue) isNode()         {}
func (*CallVariable) isNode()      {}
func (*BatchCallVariable) isNode() {}

var (
	_ Node = (*Field)(nil)
	_ Node = (*Fragment)(nil)
	_ Node = (*FragmentReference)(nil)
	_ Node = (*Query)(nil)
	_ Node = (*Mutation)(nil)
	_ Node = (*Subscription)(nil)
	_ Node = (*Call)(nil)
	_ Node = (*CallValue)(nil)
	_ Node = (*CallVariable)(nil)
	_ Node = (*BatchCallVariable)(nil)
)
