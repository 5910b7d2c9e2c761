package ast

// Fragment is a named group of selections on a type.
type Fragment struct {
	Name       string
	Type       string
	Children   []Node
	Directives DirectiveList

	// Hash identifies this particular construction of the fragment. Hashes
	// minted at runtime start with '_' and are process local; hashes of
	// statically compiled fragments are base-64 strings and never contain
	// '_'. The first character therefore tells the two apart.
	Hash string

	Metadata FragmentMetadata
}

// FragmentMetadata carries the normalized fragment flags. Plural keeps the
// bare name used in compiled query payloads.
type FragmentMetadata struct {
	IsAbstract bool
	Plural     bool
}

func (*Fragment) Kind() Kind { return KindFragment }

// FragmentReference wraps a fragment so it can stand in a selection list.
// It adds no data of its own.
type FragmentReference struct {
	Fragment *Fragment
}

func (*FragmentReference) Kind() Kind { return KindFragmentReference }
