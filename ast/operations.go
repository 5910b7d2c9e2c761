package ast

// Query is a root operation reading from a single root field.
//
// Calls holds at most one entry: the identifying-argument call synthesized
// at construction time (see relayql.NewQuery). Queries on root fields
// without an identifying argument have an empty call list.
type Query struct {
	FieldName  string
	Name       string
	Type       string
	Calls      CallList
	Children   []Node
	Directives DirectiveList

	// IsDeferred marks queries split off by the deferral transform and
	// fetched after their parent.
	IsDeferred bool

	Metadata QueryMetadata
}

// QueryMetadata describes the identifying argument resolved for the query,
// if any, and the shape of the root field's result.
type QueryMetadata struct {
	IdentifyingArgName string
	IdentifyingArgType string
	IsAbstract         bool
	IsPlural           bool
}

// Mutation is a root operation that writes. Its single call carries the
// input object; ResponseType names the payload type selected by Children.
type Mutation struct {
	Name         string
	ResponseType string
	Calls        CallList
	Children     []Node
	Directives   DirectiveList
	Metadata     OperationMetadata
}

// Subscription mirrors Mutation with a different kind tag.
type Subscription struct {
	Name         string
	ResponseType string
	Calls        CallList
	Children     []Node
	Directives   DirectiveList
	Metadata     OperationMetadata
}

// OperationMetadata is shared by Mutation and Subscription. InputType names
// the operation's input object type, empty when unknown.
type OperationMetadata struct {
	InputType string
}

func (*Query) Kind() Kind        { return KindQuery }
func (*Mutation) Kind() Kind     { return KindMutation }
func (*Subscription) Kind() Kind { return KindSubscription }
