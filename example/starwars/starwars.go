// Package starwars provides example query trees based on Star Wars
// characters, mirroring the classic demo schema of heroes, humans, droids
// and their friends.
package starwars

import (
	relayql "github.com/graph-gophers/relayql-go"
	"github.com/graph-gophers/relayql-go/ast"
	"github.com/graph-gophers/relayql-go/nodeinterface"
)

// CharacterFields is the selection shared by every character query.
func CharacterFields() []ast.Node {
	return []ast.Node{
		relayql.NewField(relayql.FieldSpec{
			Name:     "id",
			Type:     "ID",
			Metadata: ast.FieldMetadata{IsRequisite: true},
		}),
		relayql.NewField(relayql.FieldSpec{Name: "name", Type: "String"}),
	}
}

// FriendsField selects the first page of a character's friends connection.
func FriendsField(first int) *ast.Field {
	return relayql.NewField(relayql.FieldSpec{
		Name: "friendsConnection",
		Type: "FriendsConnection",
		Calls: ast.CallList{
			relayql.NewCall("first", relayql.NewCallValue(first), "Int"),
		},
		Children: []ast.Node{
			relayql.NewField(relayql.FieldSpec{Name: "totalCount", Type: "Int"}),
			relayql.NewField(relayql.FieldSpec{
				Name:     "friends",
				Type:     "Character",
				Children: CharacterFields(),
				Metadata: ast.FieldMetadata{IsPlural: true, IsAbstract: true},
			}),
		},
		Metadata: ast.FieldMetadata{IsConnection: true, IsFindable: true},
	})
}

// CharacterFragment groups the character selections for reuse across
// queries. Every call mints a fragment with a fresh client hash.
func CharacterFragment() *ast.Fragment {
	return relayql.NewFragment(relayql.FragmentSpec{
		Name:     "characterInfo",
		Type:     "Character",
		Children: CharacterFields(),
		Metadata: ast.FragmentMetadata{IsAbstract: true},
	})
}

// NodeQuery fetches any entity by its global id, the way a container
// refetches data. Marshal ids with nodeinterface.MarshalID.
func NodeQuery(globalID string) *ast.Query {
	return relayql.NewQuery(relayql.QuerySpec{
		FieldName:           nodeinterface.Node,
		IdentifyingArgValue: globalID,
		Name:                "NodeQuery",
		Type:                "Node",
		Children: []ast.Node{
			relayql.NewFragmentReference(CharacterFragment()),
		},
		Metadata: relayql.QueryMeta{IsAbstract: true},
	})
}

// HumanGlobalID builds the global id for a human.
func HumanGlobalID(id string) string {
	return nodeinterface.MarshalID("Human", id)
}

// HumanQuery fetches a human by its plain id using an explicit identifying
// argument.
func HumanQuery(id string) *ast.Query {
	return relayql.NewQuery(relayql.QuerySpec{
		FieldName:           "human",
		IdentifyingArgValue: id,
		Name:                "HumanQuery",
		Type:                "Human",
		Children: append(CharacterFields(),
			relayql.NewField(relayql.FieldSpec{Name: "homePlanet", Type: "String"}),
			FriendsField(10),
		),
		Metadata: relayql.QueryMeta{
			IdentifyingArgName: "id",
			IdentifyingArgType: "ID!",
		},
	})
}

// HeroQuery fetches the hero of the saga. The hero field takes no
// identifying argument, so the query's call list stays empty.
func HeroQuery() *ast.Query {
	return relayql.NewQuery(relayql.QuerySpec{
		FieldName: "hero",
		Name:      "HeroQuery",
		Type:      "Character",
		Children: append(CharacterFields(),
			FriendsField(5),
		),
		Metadata: relayql.QueryMeta{IsAbstract: true},
	})
}

// HeroHomePlanetQuery is a deferred follow-up that reads the hero id from
// the response of an earlier query in the same batch.
func HeroHomePlanetQuery(sourceQueryID string) *ast.Query {
	return relayql.NewQuery(relayql.QuerySpec{
		FieldName:           nodeinterface.Node,
		IdentifyingArgValue: relayql.NewBatchCallVariable(sourceQueryID, "$.hero.id"),
		Name:                "HeroHomePlanetQuery",
		Type:                "Node",
		IsDeferred:          true,
		Children: []ast.Node{
			relayql.NewField(relayql.FieldSpec{Name: "homePlanet", Type: "String"}),
		},
	})
}

// CreateReviewMutation posts a review for an episode. The review input is
// bound at send time through a call variable.
func CreateReviewMutation() *ast.Mutation {
	return relayql.NewMutation(relayql.MutationSpec{
		Name:         "CreateReviewMutation",
		ResponseType: "CreateReviewPayload",
		Calls: ast.CallList{
			relayql.NewCall("input", relayql.NewCallVariable("input"), "ReviewInput!"),
		},
		Children: []ast.Node{
			relayql.NewField(relayql.FieldSpec{Name: "stars", Type: "Int"}),
			relayql.NewField(relayql.FieldSpec{Name: "commentary", Type: "String"}),
		},
		Metadata: ast.OperationMetadata{InputType: "ReviewInput!"},
	})
}

// ReviewAddedSubscription watches new reviews for an episode.
func ReviewAddedSubscription(episode string) *ast.Subscription {
	return relayql.NewSubscription(relayql.SubscriptionSpec{
		Name:         "ReviewAddedSubscription",
		ResponseType: "Review",
		Calls: ast.CallList{
			relayql.NewCall("episode", relayql.NewCallValue(episode), "Episode!"),
		},
		Children: []ast.Node{
			relayql.NewField(relayql.FieldSpec{Name: "stars", Type: "Int"}),
			relayql.NewField(relayql.FieldSpec{Name: "commentary", Type: "String"}),
		},
	})
}
