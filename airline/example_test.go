package airline_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/airlink/airline"
)

func ExampleService_FindRoutes() {
	svc, err := airline.New(referenceConfig(), nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	routes, _ := svc.FindRoutes(context.Background(), svc.NewQuery("MEL", "JFK"))
	for _, r := range routes {
		fmt.Println(r)
	}
	name, _ := svc.Lookup("BKK")
	fmt.Println(name, svc.IndexSize())

	// Output:
	// Route: MEL->BKK->JFK, Layovers: 1, Distance: 6
	// Route: MEL->LAX->JFK, Layovers: 1, Distance: 8
	// Bangkok Suvarnabhumi Airport 12
}
