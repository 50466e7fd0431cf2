package pathtree_test

import (
	"fmt"
	"os"

	"github.com/erraggy/oaspathtree/pathtree"
)

func Example() {
	tree := pathtree.New()
	_, _ = tree.Attach("/items", "v1", pathtree.Operations{"get"})
	_, _ = tree.Attach("/items/{id}", "v1", pathtree.Operations{"get", "delete"})

	tree.Walk(func(n *pathtree.Node, depth int) bool {
		fmt.Printf("%*s%s %s\n", depth*2, "", n.Segment(), n.Classification())
		return true
	})
	// Output:
	// / OTHER
	//   items GET
	//     {id} DELETE_GET
}

func ExampleTree_Compare() {
	tree := pathtree.New()
	_ = tree.AttachAll(pathtree.PathList{
		{Path: "/users", Item: pathtree.Operations{"get"}},
		{Path: "/users/{id}", Item: pathtree.Operations{"get"}},
	}, "v1")
	_ = tree.AttachAll(pathtree.PathList{
		{Path: "/users", Item: pathtree.Operations{"get", "post"}},
	}, "v2")

	for _, row := range tree.Compare() {
		fmt.Println(row.Path, row.InAll(), row.Missing())
	}
	// Output:
	// /users true []
	// /users/{id} false [v2]
}

func ExampleWriteMermaid() {
	root := pathtree.NewRoot()
	_, _ = root.Attach("/health", "v1", pathtree.Operations{"get"})
	_ = root.MergeAdditionalData(map[string][]string{"owner": {"platform"}})

	if err := pathtree.WriteMermaid(os.Stdout, root.Child("health")); err != nil {
		fmt.Println(err)
	}
	// Output:
	// graph LR
	// classDef GET fill:lightSteelBlue,stroke:#333,stroke-width:4px
	// classDef POST fill:SteelBlue,stroke:#333,stroke-width:4px
	// classDef GET_POST fill:forestGreen,stroke:#333,stroke-width:4px
	// classDef DELETE_GET_PATCH fill:yellowGreen,stroke:#333,stroke-width:4px
	// classDef DELETE_GET_PUT fill:olive,stroke:#333,stroke-width:4px
	// classDef DELETE_GET fill:DarkSeaGreen,stroke:#333,stroke-width:4px
	// classDef DELETE fill:tomato,stroke:#333,stroke-width:4px
	// classDef OTHER fill:white,stroke:#333,stroke-width:4px
	// class /health GET
}
