package qltesting

import (
	"encoding/json"

	"github.com/graph-gophers/relayql-go/ast"
)

// Encode renders a node tree as canonical JSON: one object per node carrying
// its kind tag, camel-cased keys, null for absent optional strings and for
// elided children, and every metadata key present whether or not it is set.
func Encode(v interface{}) ([]byte, error) {
	var e encoder
	return json.Marshal(e.value(v))
}

type encoder struct {
	scrubHashes bool
}

// value renders v: nodes become maps, anything else passes through for the
// final json.Marshal to render.
func (e encoder) value(v interface{}) interface{} {
	if n, ok := ast.GetField(v); ok {
		return map[string]interface{}{
			"kind":       ast.KindField,
			"fieldName":  n.Name,
			"alias":      optional(n.Alias),
			"type":       n.Type,
			"calls":      e.calls(n.Calls),
			"children":   e.children(n.Children),
			"directives": e.directives(n.Directives),
			"metadata": map[string]interface{}{
				"inferredRootCallName": optional(n.Metadata.InferredRootCallName),
				"inferredPrimaryKey":   optional(n.Metadata.InferredPrimaryKey),
				"isConnection":         n.Metadata.IsConnection,
				"isFindable":           n.Metadata.IsFindable,
				"isGenerated":          n.Metadata.IsGenerated,
				"isPlural":             n.Metadata.IsPlural,
				"isRequisite":          n.Metadata.IsRequisite,
				"isAbstract":           n.Metadata.IsAbstract,
			},
		}
	}
	if n, ok := ast.GetFragment(v); ok {
		hash := n.Hash
		if e.scrubHashes {
			hash = "<hash>"
		}
		return map[string]interface{}{
			"kind":       ast.KindFragment,
			"name":       n.Name,
			"type":       n.Type,
			"children":   e.children(n.Children),
			"directives": e.directives(n.Directives),
			"hash":       hash,
			"metadata": map[string]interface{}{
				"isAbstract": n.Metadata.IsAbstract,
				"plural":     n.Metadata.Plural,
			},
		}
	}
	if n, ok := ast.GetFragmentReference(v); ok {
		var fragment interface{}
		if n.Fragment != nil {
			fragment = e.value(n.Fragment)
		}
		return map[string]interface{}{
			"kind":     ast.KindFragmentReference,
			"fragment": fragment,
		}
	}
	if n, ok := ast.GetQuery(v); ok {
		return map[string]interface{}{
			"kind":       ast.KindQuery,
			"fieldName":  n.FieldName,
			"name":       n.Name,
			"type":       n.Type,
			"calls":      e.calls(n.Calls),
			"children":   e.children(n.Children),
			"directives": e.directives(n.Directives),
			"isDeferred": n.IsDeferred,
			"metadata": map[string]interface{}{
				"identifyingArgName": optional(n.Metadata.IdentifyingArgName),
				"identifyingArgType": optional(n.Metadata.IdentifyingArgType),
				"isAbstract":         n.Metadata.IsAbstract,
				"isPlural":           n.Metadata.IsPlural,
			},
		}
	}
	if n, ok := ast.GetMutation(v); ok {
		return e.operation(ast.KindMutation, n.Name, n.ResponseType, n.Calls, n.Children, n.Directives, n.Metadata)
	}
	if n, ok := ast.GetSubscription(v); ok {
		return e.operation(ast.KindSubscription, n.Name, n.ResponseType, n.Calls, n.Children, n.Directives, n.Metadata)
	}
	if n, ok := ast.GetCall(v); ok {
		return map[string]interface{}{
			"kind":  ast.KindCall,
			"name":  n.Name,
			"value": e.value(n.Value),
			"metadata": map[string]interface{}{
				"type": optional(n.Metadata.Type),
			},
		}
	}
	if n, ok := ast.GetCallValue(v); ok {
		return map[string]interface{}{
			"kind":  ast.KindCallValue,
			"value": e.value(n.Value),
		}
	}
	if n, ok := ast.GetCallVariable(v); ok {
		return map[string]interface{}{
			"kind": ast.KindCallVariable,
			"name": n.Name,
		}
	}
	if n, ok := ast.GetBatchCallVariable(v); ok {
		return map[string]interface{}{
			"kind":          ast.KindBatchCallVariable,
			"sourceQueryID": n.SourceQueryID,
			"jsonPath":      n.JSONPath,
		}
	}
	return v
}

func (e encoder) operation(kind ast.Kind, name, responseType string, calls ast.CallList, children []ast.Node, directives ast.DirectiveList, metadata ast.OperationMetadata) map[string]interface{} {
	return map[string]interface{}{
		"kind":         kind,
		"name":         name,
		"responseType": responseType,
		"calls":        e.calls(calls),
		"children":     e.children(children),
		"directives":   e.directives(directives),
		"metadata": map[string]interface{}{
			"inputType": optional(metadata.InputType),
		},
	}
}

func (e encoder) calls(calls ast.CallList) []interface{} {
	rendered := make([]interface{}, len(calls))
	for i, call := range calls {
		rendered[i] = e.value(call)
	}
	return rendered
}

func (e encoder) children(children []ast.Node) []interface{} {
	rendered := make([]interface{}, len(children))
	for i, child := range children {
		if child == nil {
			continue // keep the null slot
		}
		rendered[i] = e.value(child)
	}
	return rendered
}

func (e encoder) directives(directives ast.DirectiveList) []interface{} {
	rendered := make([]interface{}, len(directives))
	for i, d := range directives {
		args := make([]interface{}, len(d.Arguments))
		for j, arg := range d.Arguments {
			args[j] = map[string]interface{}{
				"name":  arg.Name,
				"value": e.value(arg.Value),
			}
		}
		rendered[i] = map[string]interface{}{
			"name":      d.Name,
			"arguments": args,
		}
	}
	return rendered
}

func optional(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
