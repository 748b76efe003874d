// Package main demonstrates usage of the scg-causes package.
package main

import (
	"errors"
	"fmt"

	"github.com/next-trace/scg-causes/causes"
)

type queryError struct {
	query string
	cause error
}

func (e *queryError) Error() string { return "query failed: " + e.query }
func (e *queryError) Unwrap() error { return e.cause }

func main() {
	// A typical chain: handler -> repository -> driver.
	driver := errors.New("connection reset")
	repo := &queryError{query: "select * from customers", cause: driver}
	err := fmt.Errorf("load customer 42: %w", repo)

	for i, c := range causes.All(err) {
		fmt.Printf("cause %d: %v\n", i, c)
	}

	fmt.Println("depth:", causes.Depth(err))
	fmt.Println("root:", causes.Root(err))
	fmt.Println("driver is a cause:", causes.Has(err, driver))

	if qe, ok := causes.FirstOfType[*queryError](err); ok {
		fmt.Println("failing query:", qe.query)
	}

	if c, ok := causes.AtLevel(err, 1); ok {
		fmt.Println("second-level cause:", c)
	}
}
