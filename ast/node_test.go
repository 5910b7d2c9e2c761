package ast_test

import (
	"testing"

	"github.com/graph-gophers/relayql-go/ast"
)

func TestKindTags(t *testing.T) {
	for kind, node := range nodesByKind() {
		if got := node.Kind(); got != kind {
			t.Errorf("node constructed as %s reports kind %s", kind, got)
		}
	}
}

func TestCallListGet(t *testing.T) {
	first := &ast.Call{Name: "first", Value: 10}
	after := &ast.Call{Name: "after", Value: "cursor1"}
	dup := &ast.Call{Name: "first", Value: 20}
	list := ast.CallList{first, after, dup}

	call, ok := list.Get("after")
	if !ok || call != after {
		t.Errorf("Get(after) = %v, %v; want the after call", call, ok)
	}

	call, ok = list.Get("first")
	if !ok || call != first {
		t.Errorf("Get(first) = %v, %v; want the first occurrence", call, ok)
	}

	if _, ok := list.Get("last"); ok {
		t.Error("Get(last) found a call that does not exist")
	}

	if got := list.MustGet("after"); got != after {
		t.Errorf("MustGet(after) = %v, want the after call", got)
	}
}

func TestCallListMustGetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustGet on a missing call did not panic")
		}
	}()
	ast.CallList{}.MustGet("missing")
}

func TestDirectiveListGet(t *testing.T) {
	include := &ast.Directive{
		Name:      "include",
		Arguments: []ast.DirectiveArgument{{Name: "if", Value: true}},
	}
	list := ast.DirectiveList{include}

	d, ok := list.Get("include")
	if !ok || d != include {
		t.Errorf("Get(include) = %v, %v; want the include directive", d, ok)
	}
	if _, ok := list.Get("skip"); ok {
		t.Error("Get(skip) found a directive that does not exist")
	}
}

func TestChildrenKeepNilEntries(t *testing.T) {
	field := &ast.Field{
		Name: "viewer",
		Type: "Viewer",
		Children: []ast.Node{
			&ast.Field{Name: "id", Type: "ID"},
			nil, // elided selection
			&ast.Field{Name: "name", Type: "String"},
		},
	}
	if len(field.Children) != 3 {
		t.Fatalf("len(Children) = %d, want 3", len(field.Children))
	}
	if field.Children[1] != nil {
		t.Error("nil child entry was not preserved")
	}
}
