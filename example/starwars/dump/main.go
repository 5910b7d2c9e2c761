// Command dump builds the example query trees and prints them, first as full
// node dumps and then as telemetry summaries.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	relayql "github.com/graph-gophers/relayql-go"
	"github.com/graph-gophers/relayql-go/ast"
	"github.com/graph-gophers/relayql-go/example/starwars"
)

func main() {
	operations := []ast.Node{
		starwars.NodeQuery(starwars.HumanGlobalID("1000")),
		starwars.HumanQuery("1000"),
		starwars.HeroQuery(),
		starwars.HeroHomePlanetQuery("q0"),
		starwars.CreateReviewMutation(),
		starwars.ReviewAddedSubscription("JEDI"),
	}

	conf := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
	}
	for _, op := range operations {
		conf.Dump(op)
	}

	summaries, err := json.MarshalIndent(relayql.SummarizeOperations(operations), "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(string(summaries))
}
