package relayql

import (
	"fmt"

	"github.com/graph-gophers/relayql-go/ast"
)

// LoggedOperation represents a summary of a root operation node suitable for
// concise telemetry, for example in a web server context.
type LoggedOperation struct {
	Name string `json:",omitempty"`
	Kind ast.Kind

	// FieldName is set for queries; mutations and subscriptions have none.
	FieldName string `json:",omitempty"`

	// Type is the query's type or the operation's response type.
	Type string `json:",omitempty"`

	IsDeferred bool              `json:",omitempty"`
	Arguments  map[string]string `json:",omitempty"`
	Fields     []LoggedField     `json:",omitempty"`
}

// LoggedField represents a summary of a field.
type LoggedField struct {
	Name      string
	Arguments map[string]string `json:",omitempty"`
}

// Summarize produces a loggable summary of a root operation node. It reports
// false when v is not a Query, Mutation or Subscription node.
func Summarize(v interface{}) (LoggedOperation, bool) {
	if q, ok := ast.GetQuery(v); ok {
		return LoggedOperation{
			Name:       q.Name,
			Kind:       ast.KindQuery,
			FieldName:  q.FieldName,
			Type:       q.Type,
			IsDeferred: q.IsDeferred,
			Arguments:  logCalls(q.Calls),
			Fields:     logFields(q.Children),
		}, true
	}
	if m, ok := ast.GetMutation(v); ok {
		return LoggedOperation{
			Name:      m.Name,
			Kind:      ast.KindMutation,
			Type:      m.ResponseType,
			Arguments: logCalls(m.Calls),
			Fields:    logFields(m.Children),
		}, true
	}
	if s, ok := ast.GetSubscription(v); ok {
		return LoggedOperation{
			Name:      s.Name,
			Kind:      ast.KindSubscription,
			Type:      s.ResponseType,
			Arguments: logCalls(s.Calls),
			Fields:    logFields(s.Children),
		}, true
	}
	return LoggedOperation{}, false
}

// SummarizeOperations summarizes every operation node in nodes, skipping
// values that are not operations.
func SummarizeOperations(nodes []ast.Node) []LoggedOperation {
	ops := make([]LoggedOperation, 0, len(nodes))
	for _, node := range nodes {
		if op, ok := Summarize(node); ok {
			ops = append(ops, op)
		}
	}
	return ops
}

func logField(field *ast.Field) LoggedField {
	return LoggedField{
		Name:      field.Name,
		Arguments: logCalls(field.Calls),
	}
}

func logFields(children []ast.Node) []LoggedField {
	fields := make([]LoggedField, 0, len(children))
	for _, child := range children {
		if field, ok := child.(*ast.Field); ok && field != nil {
			fields = append(fields, logField(field))
		}
	}
	return fields
}

func logCalls(calls ast.CallList) map[string]string {
	if len(calls) == 0 {
		return nil
	}
	args := make(map[string]string)
	for _, call := range calls {
		args[call.Name] = logValue(call.Value)
	}
	return args
}

// logValue renders a call value the way it would appear in query text: bare
// literals, $name for variables and the source query reference for batch
// variables.
func logValue(value interface{}) string {
	if v, ok := ast.GetCallValue(value); ok {
		return fmt.Sprintf("%v", v.Value)
	}
	if v, ok := ast.GetCallVariable(value); ok {
		return "$" + v.Name
	}
	if v, ok := ast.GetBatchCallVariable(value); ok {
		return "<" + v.SourceQueryID + ":" + v.JSONPath + ">"
	}
	return fmt.Sprintf("%v", value)
}
