package relayql_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	relayql "github.com/graph-gophers/relayql-go"
	"github.com/graph-gophers/relayql-go/ast"
	qlerrors "github.com/graph-gophers/relayql-go/errors"
	"github.com/graph-gophers/relayql-go/log"
)

func TestNewField(t *testing.T) {
	t.Run("minimal spec", func(t *testing.T) {
		field := relayql.NewField(relayql.FieldSpec{Name: "name", Type: "String"})

		assert.Equal(t, "name", field.Name)
		assert.Equal(t, "String", field.Type)
		assert.Equal(t, "", field.Alias)
		require.NotNil(t, field.Calls)
		require.NotNil(t, field.Children)
		require.NotNil(t, field.Directives)
		assert.Len(t, field.Calls, 0)
		assert.Len(t, field.Children, 0)
		assert.Len(t, field.Directives, 0)
		assert.Equal(t, ast.FieldMetadata{}, field.Metadata)
	})

	t.Run("full spec passes through", func(t *testing.T) {
		call := relayql.NewCall("first", relayql.NewCallValue(10), "Int")
		child := relayql.NewField(relayql.FieldSpec{Name: "id", Type: "ID"})
		directive := &ast.Directive{Name: "include"}
		meta := ast.FieldMetadata{
			InferredRootCallName: "node",
			InferredPrimaryKey:   "id",
			IsConnection:         true,
			IsFindable:           true,
			IsGenerated:          true,
			IsPlural:             true,
			IsRequisite:          true,
			IsAbstract:           true,
		}

		field := relayql.NewField(relayql.FieldSpec{
			Name:       "friends",
			Alias:      "pals",
			Type:       "FriendsConnection",
			Calls:      ast.CallList{call},
			Children:   []ast.Node{child, nil},
			Directives: ast.DirectiveList{directive},
			Metadata:   meta,
		})

		assert.Equal(t, "pals", field.Alias)
		require.Len(t, field.Calls, 1)
		assert.Same(t, call, field.Calls[0])
		require.Len(t, field.Children, 2)
		assert.Same(t, child, field.Children[0].(*ast.Field))
		assert.Nil(t, field.Children[1])
		require.Len(t, field.Directives, 1)
		assert.Same(t, directive, field.Directives[0])
		assert.Equal(t, meta, field.Metadata)
	})

	t.Run("empty input with capacity is stored as is", func(t *testing.T) {
		calls := make(ast.CallList, 0, 4)
		field := relayql.NewField(relayql.FieldSpec{Name: "f", Type: "T", Calls: calls})
		assert.Equal(t, 4, cap(field.Calls))
	})
}

func TestNewFragment(t *testing.T) {
	fragment := relayql.NewFragment(relayql.FragmentSpec{
		Name:     "userInfo",
		Type:     "User",
		Metadata: ast.FragmentMetadata{IsAbstract: true, Plural: true},
	})

	assert.Equal(t, "userInfo", fragment.Name)
	assert.Equal(t, "User", fragment.Type)
	assert.True(t, fragment.Metadata.IsAbstract)
	assert.True(t, fragment.Metadata.Plural)
	require.NotNil(t, fragment.Children)
	require.NotNil(t, fragment.Directives)
	assert.Regexp(t, regexp.MustCompile(`^_[0-9A-Za-z]+$`), fragment.Hash)
}

func TestNewFragmentHashesAreUnique(t *testing.T) {
	spec := relayql.FragmentSpec{Name: "userInfo", Type: "User"}

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		h := relayql.NewFragment(spec).Hash
		require.False(t, seen[h], "hash %q repeated at construction %d", h, i)
		seen[h] = true
	}
}

func TestNewFragmentReference(t *testing.T) {
	fragment := relayql.NewFragment(relayql.FragmentSpec{Name: "userInfo", Type: "User"})
	ref := relayql.NewFragmentReference(fragment)
	assert.Same(t, fragment, ref.Fragment)
}

func TestNewQuery(t *testing.T) {
	t.Run("root call infers identifying argument", func(t *testing.T) {
		query := relayql.NewQuery(relayql.QuerySpec{
			FieldName:           "node",
			IdentifyingArgValue: "abc123",
			Name:                "Q",
			Type:                "Node",
		})

		require.Len(t, query.Calls, 1)
		call := query.Calls[0]
		assert.Equal(t, "id", call.Name)
		assert.Equal(t, "abc123", call.Value)
		assert.Equal(t, ast.CallMetadata{}, call.Metadata)
		assert.Equal(t, "id", query.Metadata.IdentifyingArgName)
		assert.False(t, query.IsDeferred)
	})

	t.Run("explicit metadata name wins", func(t *testing.T) {
		query := relayql.NewQuery(relayql.QuerySpec{
			FieldName:           "username",
			IdentifyingArgValue: "zuck",
			Name:                "Q",
			Type:                "User",
			Metadata: relayql.QueryMeta{
				IdentifyingArgName: "name",
				IdentifyingArgType: "String!",
			},
		})

		require.Len(t, query.Calls, 1)
		assert.Equal(t, "name", query.Calls[0].Name)
		assert.Equal(t, "zuck", query.Calls[0].Value)
		assert.Equal(t, "name", query.Metadata.IdentifyingArgName)
		assert.Equal(t, "String!", query.Metadata.IdentifyingArgType)
	})

	t.Run("no identifying argument resolved", func(t *testing.T) {
		query := relayql.NewQuery(relayql.QuerySpec{
			FieldName: "viewer",
			Name:      "Q",
			Type:      "Viewer",
		})

		require.NotNil(t, query.Calls)
		assert.Len(t, query.Calls, 0)
		assert.Equal(t, "", query.Metadata.IdentifyingArgName)
	})

	t.Run("value without resolved name goes unused", func(t *testing.T) {
		query := relayql.NewQuery(relayql.QuerySpec{
			FieldName:           "viewer",
			IdentifyingArgValue: "ignored",
			Name:                "Q",
			Type:                "Viewer",
		})

		assert.Len(t, query.Calls, 0)
	})

	t.Run("nodes root call", func(t *testing.T) {
		query := relayql.NewQuery(relayql.QuerySpec{
			FieldName:           "nodes",
			IdentifyingArgValue: []string{"a", "b"},
			Name:                "Q",
			Type:                "Node",
			Metadata:            relayql.QueryMeta{IsPlural: true},
		})

		require.Len(t, query.Calls, 1)
		assert.Equal(t, "id", query.Calls[0].Name)
		assert.Equal(t, []string{"a", "b"}, query.Calls[0].Value)
		assert.True(t, query.Metadata.IsPlural)
	})

	t.Run("deferred flag", func(t *testing.T) {
		byFlag := relayql.NewQuery(relayql.QuerySpec{
			FieldName: "viewer", Name: "Q", Type: "Viewer", IsDeferred: true,
		})
		byMetadata := relayql.NewQuery(relayql.QuerySpec{
			FieldName: "viewer", Name: "Q", Type: "Viewer",
			Metadata: relayql.QueryMeta{IsDeferred: true},
		})
		neither := relayql.NewQuery(relayql.QuerySpec{
			FieldName: "viewer", Name: "Q", Type: "Viewer",
		})

		assert.True(t, byFlag.IsDeferred)
		assert.True(t, byMetadata.IsDeferred)
		assert.False(t, neither.IsDeferred)
	})
}

func TestNewQueryMissingIdentifyingValue(t *testing.T) {
	tests := []struct {
		name string
		spec relayql.QuerySpec
	}{
		{
			name: "inferred root call",
			spec: relayql.QuerySpec{FieldName: "node", Name: "Q", Type: "Node"},
		},
		{
			name: "explicit metadata name",
			spec: relayql.QuerySpec{
				FieldName: "username", Name: "Q", Type: "User",
				Metadata: relayql.QueryMeta{IdentifyingArgName: "name"},
			},
		},
	}

	// quiet logger: the violations here are on purpose
	quiet := relayql.NewBuilder(relayql.Logger(log.LoggerFunc(func(error) {})))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				err, ok := qlerrors.AsInvariant(recover())
				require.True(t, ok, "construction must panic with an *InvariantError")
				assert.Contains(t, err.Error(), tt.spec.FieldName)
			}()
			quiet.NewQuery(tt.spec)
		})
	}
}

func TestNewMutationAndSubscription(t *testing.T) {
	call := relayql.NewCall("input", relayql.NewCallVariable("input"), "LikeStoryInput")
	meta := ast.OperationMetadata{InputType: "LikeStoryInput"}

	mutation := relayql.NewMutation(relayql.MutationSpec{
		Name:         "LikeStory",
		ResponseType: "LikeStoryPayload",
		Calls:        ast.CallList{call},
		Metadata:     meta,
	})
	subscription := relayql.NewSubscription(relayql.SubscriptionSpec{
		Name:         "StoryUpdated",
		ResponseType: "StoryUpdatedPayload",
	})

	assert.Equal(t, "LikeStory", mutation.Name)
	assert.Equal(t, "LikeStoryPayload", mutation.ResponseType)
	require.Len(t, mutation.Calls, 1)
	assert.Same(t, call, mutation.Calls[0])
	assert.Equal(t, meta, mutation.Metadata)
	require.NotNil(t, mutation.Children)

	assert.Equal(t, "StoryUpdated", subscription.Name)
	assert.Equal(t, "StoryUpdatedPayload", subscription.ResponseType)
	assert.Equal(t, ast.OperationMetadata{}, subscription.Metadata)
	require.NotNil(t, subscription.Calls)
	require.NotNil(t, subscription.Children)
	require.NotNil(t, subscription.Directives)
}

func TestPureConstructors(t *testing.T) {
	call := relayql.NewCall("first", 10, "Int")
	assert.Equal(t, "first", call.Name)
	assert.Equal(t, 10, call.Value)
	assert.Equal(t, "Int", call.Metadata.Type)

	untyped := relayql.NewCall("last", nil, "")
	assert.Nil(t, untyped.Value)
	assert.Equal(t, "", untyped.Metadata.Type)

	value := relayql.NewCallValue([]int{1, 2, 3})
	assert.Equal(t, []int{1, 2, 3}, value.Value)

	variable := relayql.NewCallVariable("count")
	assert.Equal(t, "count", variable.Name)

	batch := relayql.NewBatchCallVariable("q0", "$.viewer.id")
	assert.Equal(t, "q0", batch.SourceQueryID)
	assert.Equal(t, "$.viewer.id", batch.JSONPath)
}
