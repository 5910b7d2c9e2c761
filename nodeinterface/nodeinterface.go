// Package nodeinterface names the canonical root calls used to fetch
// entities by identity: the node and nodes root fields and their id
// argument. Query construction consults it to infer the identifying
// argument of a root query.
package nodeinterface

const (
	// Node and Nodes are the root fields that look entities up by id.
	Node  = "node"
	Nodes = "nodes"

	// ID is the identifying argument taken by Node and Nodes.
	ID = "id"
)

// IsNodeRootCall reports whether fieldName is one of the canonical
// fetch-by-id root fields.
func IsNodeRootCall(fieldName string) bool {
	return fieldName == Node || fieldName == Nodes
}

// Resolver answers root-call questions with the canonical names. It is the
// default resolver of the construction layer and satisfies
// relayql.RootCallResolver.
type Resolver struct{}

// IsRootCall reports whether fieldName fetches entities by id.
func (Resolver) IsRootCall(fieldName string) bool { return IsNodeRootCall(fieldName) }

// IdentifyingArgName returns the canonical identifying argument name.
func (Resolver) IdentifyingArgName() string { return ID }
