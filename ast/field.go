package ast

// Field is a single field selection: a name on a parent type, optionally
// aliased, with arguments and child selections.
type Field struct {
	Name  string
	Alias string
	Type  string
	Calls CallList

	// Children holds the child selections in source order. Entries may be
	// nil where a selection was elided at construction time, for example by
	// a conditional directive; consumers must skip nil entries but may not
	// reorder them.
	Children []Node

	Directives DirectiveList
	Metadata   FieldMetadata
}

// FieldMetadata describes how a field behaves during normalization and
// fetching. Every flag is always present; absent input becomes the zero
// value.
type FieldMetadata struct {
	// InferredRootCallName and InferredPrimaryKey record how a field was
	// matched to a root call during query diffing. Empty means not inferred.
	InferredRootCallName string
	InferredPrimaryKey   string

	IsConnection bool
	IsFindable   bool
	IsGenerated  bool
	IsPlural     bool
	IsRequisite  bool
	IsAbstract   bool
}

func (*Field) Kind() Kind { return KindField }
