package relayql

import (
	"github.com/graph-gophers/relayql-go/ast"
	"github.com/graph-gophers/relayql-go/hash"
	"github.com/graph-gophers/relayql-go/log"
	"github.com/graph-gophers/relayql-go/nodeinterface"
)

// RootCallResolver answers which root fields fetch a single entity by an
// identifying argument. NewQuery consults it when a caller supplies no
// explicit identifying argument name. nodeinterface.Resolver is the default
// implementation.
type RootCallResolver interface {
	// IsRootCall reports whether fieldName fetches entities by an
	// identifying argument.
	IsRootCall(fieldName string) bool

	// IdentifyingArgName returns the canonical identifying argument name
	// used by root calls.
	IdentifyingArgName() string
}

// A Builder constructs query tree nodes. Use NewBuilder; the zero value has
// no hash generator.
//
// Builders are safe for concurrent use as long as their collaborators are.
type Builder struct {
	hashes    hash.Generator
	rootCalls RootCallResolver
	logger    log.Logger
}

// BuilderOpt is an option to pass to NewBuilder.
type BuilderOpt func(*Builder)

// HashGenerator sets the generator minting fragment hashes. The default is a
// fresh hash.Counter, so fragment hashes are unique per builder.
func HashGenerator(g hash.Generator) BuilderOpt {
	return func(b *Builder) {
		b.hashes = g
	}
}

// RootCalls sets the resolver used to infer identifying arguments. The
// default recognizes the node and nodes root fields.
func RootCalls(r RootCallResolver) BuilderOpt {
	return func(b *Builder) {
		b.rootCalls = r
	}
}

// Logger is used to log invariant violations before they panic. It defaults
// to log.DefaultLogger.
func Logger(logger log.Logger) BuilderOpt {
	return func(b *Builder) {
		b.logger = logger
	}
}

// NewBuilder returns a Builder with the given options applied.
func NewBuilder(opts ...BuilderOpt) *Builder {
	b := &Builder{
		hashes:    hash.NewCounter(),
		rootCalls: nodeinterface.Resolver{},
		logger:    &log.DefaultLogger{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Shared empty collections, handed out whenever a spec omits calls, children
// or directives. Zero capacity keeps them structurally read-only: element
// writes are impossible and append must reallocate.
var (
	emptyCalls      = make(ast.CallList, 0)
	emptyChildren   = make([]ast.Node, 0)
	emptyDirectives = make(ast.DirectiveList, 0)
)

func orEmptyCalls(l ast.CallList) ast.CallList {
	if l == nil {
		return emptyCalls
	}
	return l
}

func orEmptyChildren(l []ast.Node) []ast.Node {
	if l == nil {
		return emptyChildren
	}
	return l
}

func orEmptyDirectives(l ast.DirectiveList) ast.DirectiveList {
	if l == nil {
		return emptyDirectives
	}
	return l
}

// defaultBuilder backs the package-level constructors. Its counter is the
// process-wide client fragment hash sequence.
var defaultBuilder = NewBuilder()

// NewField builds a Field node using the default builder.
func NewField(spec FieldSpec) *ast.Field { return defaultBuilder.NewField(spec) }

// NewFragment builds a Fragment node using the default builder.
func NewFragment(spec FragmentSpec) *ast.Fragment { return defaultBuilder.NewFragment(spec) }

// NewFragmentReference wraps a fragment using the default builder.
func NewFragmentReference(fragment *ast.Fragment) *ast.FragmentReference {
	return defaultBuilder.NewFragmentReference(fragment)
}

// NewQuery builds a Query node using the default builder.
func NewQuery(spec QuerySpec) *ast.Query { return defaultBuilder.NewQuery(spec) }

// NewMutation builds a Mutation node using the default builder.
func NewMutation(spec MutationSpec) *ast.Mutation { return defaultBuilder.NewMutation(spec) }

// NewSubscription builds a Subscription node using the default builder.
func NewSubscription(spec SubscriptionSpec) *ast.Subscription {
	return defaultBuilder.NewSubscription(spec)
}

// NewCall builds a Call node using the default builder.
func NewCall(name string, value interface{}, callType string) *ast.Call {
	return defaultBuilder.NewCall(name, value, callType)
}

// NewCallValue builds a CallValue node using the default builder.
func NewCallValue(value interface{}) *ast.CallValue { return defaultBuilder.NewCallValue(value) }

// NewCallVariable builds a CallVariable node using the default builder.
func NewCallVariable(name string) *ast.CallVariable { return defaultBuilder.NewCallVariable(name) }

// NewBatchCallVariable builds a BatchCallVariable node using the default
// builder.
func NewBatchCallVariable(sourceQueryID, jsonPath string) *ast.BatchCallVariable {
	return defaultBuilder.NewBatchCallVariable(sourceQueryID, jsonPath)
}

// ClientFragmentHash mints a hash from the default builder's process-wide
// sequence.
func ClientFragmentHash() string { return defaultBuilder.ClientFragmentHash() }
