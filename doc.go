/*
Package relayql builds Relay-style query trees.

It is the construction boundary for the node variants declared in the ast
package: constructors fill in defaults, normalize metadata and enforce the one
structural requirement (a root query's identifying argument), so every node
handed downstream has the same fully populated shape no matter how sparse the
input was. Parsing query text and executing queries happen elsewhere; this
package only builds and re-identifies nodes.

The package-level constructors share one process-wide builder, which matches
the usual setup where every client fragment in the process draws hashes from
the same sequence:

	field := relayql.NewField(relayql.FieldSpec{Name: "name", Type: "String"})

Callers that need deterministic hashes or custom root-call naming construct
their own builder:

	b := relayql.NewBuilder(relayql.HashGenerator(gen))
	fragment := b.NewFragment(relayql.FragmentSpec{Name: "friends", Type: "User"})

Nodes are immutable by convention once built; a changed query is a new tree.
*/
package relayql
