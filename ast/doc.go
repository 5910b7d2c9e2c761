/*
Package ast defines the node variants of a Relay-style query tree: field
selections, fragments, root operations and their call arguments.

Nodes form one closed union, [Node], discriminated by [Kind]. They are built
by the constructors in the root relayql package and are treated as immutable
afterwards; a changed query is represented by constructing a new tree.

Code holding a typed Node should narrow with a type switch, which the closed
union keeps exhaustive-checkable. The GetX functions exist for the untyped
boundary where values arrive from outside the tree builder.
*/
package ast
