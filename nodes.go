package relayql

import (
	"github.com/graph-gophers/relayql-go/ast"
	"github.com/graph-gophers/relayql-go/errors"
)

// FieldSpec describes a Field to build. Name and Type are required; the
// builder trusts the caller and does not check them.
type FieldSpec struct {
	Name       string
	Alias      string
	Type       string
	Calls      ast.CallList
	Children   []ast.Node
	Directives ast.DirectiveList
	Metadata   ast.FieldMetadata
}

// FragmentSpec describes a Fragment to build. Name and Type are required.
type FragmentSpec struct {
	Name       string
	Type       string
	Children   []ast.Node
	Directives ast.DirectiveList
	Metadata   ast.FragmentMetadata
}

// QuerySpec describes a Query to build. FieldName, Name and Type are
// required. IdentifyingArgValue is required exactly when an identifying
// argument name resolves for the query, either explicitly through
// Metadata.IdentifyingArgName or because FieldName is a known root call;
// queries without an identifying argument pass nil.
type QuerySpec struct {
	FieldName           string
	IdentifyingArgValue interface{}
	Name                string
	Type                string
	Children            []ast.Node
	Directives          ast.DirectiveList
	IsDeferred          bool
	Metadata            QueryMeta
}

// QueryMeta is the metadata accepted by NewQuery. Unlike ast.QueryMetadata it
// carries IsDeferred, which normalizes into the node's IsDeferred flag rather
// than its metadata record.
type QueryMeta struct {
	IdentifyingArgName string
	IdentifyingArgType string
	IsAbstract         bool
	IsPlural           bool
	IsDeferred         bool
}

// MutationSpec describes a Mutation to build. Name and ResponseType are
// required.
type MutationSpec struct {
	Name         string
	ResponseType string
	Calls        ast.CallList
	Children     []ast.Node
	Directives   ast.DirectiveList
	Metadata     ast.OperationMetadata
}

// SubscriptionSpec describes a Subscription to build. Name and ResponseType
// are required.
type SubscriptionSpec struct {
	Name         string
	ResponseType string
	Calls        ast.CallList
	Children     []ast.Node
	Directives   ast.DirectiveList
	Metadata     ast.OperationMetadata
}

// NewField builds a Field node. Omitted calls, children and directives
// default to the shared empty collections.
func (b *Builder) NewField(spec FieldSpec) *ast.Field {
	return &ast.Field{
		Name:       spec.Name,
		Alias:      spec.Alias,
		Type:       spec.Type,
		Calls:      orEmptyCalls(spec.Calls),
		Children:   orEmptyChildren(spec.Children),
		Directives: orEmptyDirectives(spec.Directives),
		Metadata:   spec.Metadata,
	}
}

// NewFragment builds a Fragment node and mints a fresh client hash for it.
// Fragment identity is per construction call: two fragments built from the
// same spec get different hashes.
func (b *Builder) NewFragment(spec FragmentSpec) *ast.Fragment {
	return &ast.Fragment{
		Name:       spec.Name,
		Type:       spec.Type,
		Children:   orEmptyChildren(spec.Children),
		Directives: orEmptyDirectives(spec.Directives),
		Hash:       b.hashes.Next(),
		Metadata:   spec.Metadata,
	}
}

// NewFragmentReference wraps a fragment so it can appear in a selection
// list.
func (b *Builder) NewFragmentReference(fragment *ast.Fragment) *ast.FragmentReference {
	return &ast.FragmentReference{Fragment: fragment}
}

// NewQuery builds a Query node, deriving its identifying call.
//
// The identifying argument name comes from the spec's metadata or, failing
// that, from the root call resolver. When a name resolves the spec must
// carry a non-nil IdentifyingArgValue; a nil value is an invariant violation
// and panics with an *errors.InvariantError after logging it. When no name
// resolves the call list stays empty and the value goes unused.
func (b *Builder) NewQuery(spec QuerySpec) *ast.Query {
	argName := spec.Metadata.IdentifyingArgName
	if argName == "" && b.rootCalls.IsRootCall(spec.FieldName) {
		argName = b.rootCalls.IdentifyingArgName()
	}

	calls := emptyCalls
	if argName != "" {
		if spec.IdentifyingArgValue == nil {
			err := errors.Invariantf("query %q requires a value for identifying argument %q", spec.FieldName, argName)
			b.logger.LogInvariant(err)
			panic(err)
		}
		calls = ast.CallList{b.NewCall(argName, spec.IdentifyingArgValue, "")}
	}

	return &ast.Query{
		FieldName:  spec.FieldName,
		Name:       spec.Name,
		Type:       spec.Type,
		Calls:      calls,
		Children:   orEmptyChildren(spec.Children),
		Directives: orEmptyDirectives(spec.Directives),
		IsDeferred: spec.IsDeferred || spec.Metadata.IsDeferred,
		Metadata: ast.QueryMetadata{
			IdentifyingArgName: argName,
			IdentifyingArgType: spec.Metadata.IdentifyingArgType,
			IsAbstract:         spec.Metadata.IsAbstract,
			IsPlural:           spec.Metadata.IsPlural,
		},
	}
}

// NewMutation builds a Mutation node.
func (b *Builder) NewMutation(spec MutationSpec) *ast.Mutation {
	return &ast.Mutation{
		Name:         spec.Name,
		ResponseType: spec.ResponseType,
		Calls:        orEmptyCalls(spec.Calls),
		Children:     orEmptyChildren(spec.Children),
		Directives:   orEmptyDirectives(spec.Directives),
		Metadata:     spec.Metadata,
	}
}

// NewSubscription builds a Subscription node. It mirrors NewMutation apart
// from the kind of the result.
func (b *Builder) NewSubscription(spec SubscriptionSpec) *ast.Subscription {
	return &ast.Subscription{
		Name:         spec.Name,
		ResponseType: spec.ResponseType,
		Calls:        orEmptyCalls(spec.Calls),
		Children:     orEmptyChildren(spec.Children),
		Directives:   orEmptyDirectives(spec.Directives),
		Metadata:     spec.Metadata,
	}
}

// NewCall builds a Call node. callType names the argument's input type and
// may be empty when unknown.
func (b *Builder) NewCall(name string, value interface{}, callType string) *ast.Call {
	return &ast.Call{
		Name:     name,
		Value:    value,
		Metadata: ast.CallMetadata{Type: callType},
	}
}

// NewCallValue wraps a literal argument value.
func (b *Builder) NewCallValue(value interface{}) *ast.CallValue {
	return &ast.CallValue{Value: value}
}

// NewCallVariable references a variable bound by the enclosing container.
func (b *Builder) NewCallVariable(name string) *ast.CallVariable {
	return &ast.CallVariable{Name: name}
}

// NewBatchCallVariable defers an argument value to another query's response.
func (b *Builder) NewBatchCallVariable(sourceQueryID, jsonPath string) *ast.BatchCallVariable {
	return &ast.BatchCallVariable{SourceQueryID: sourceQueryID, JSONPath: jsonPath}
}

// ClientFragmentHash mints the next hash in the builder's sequence.
// NewFragment calls it internally; it is exported for callers assembling
// fragment payloads by other means.
func (b *Builder) ClientFragmentHash() string {
	return b.hashes.Next()
}
