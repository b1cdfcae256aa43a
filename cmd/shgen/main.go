// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command shgen generates the lookup tables behind sh/special.
//
// Usage:
//
//	shgen -output factorial_table.go -pkg special -max 170
//
// Or via go:generate:
//
//	//go:generate go run ../../cmd/shgen -output factorial_table.go -pkg special -max 170
//
// Factorials are computed exactly with math/big and rounded once to the
// nearest float64, so the table is correctly rounded even where repeated
// float64 multiplication would drift.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	outputFile = flag.String("output", "factorial_table.go", "Output Go source file")
	packageOut = flag.String("pkg", "special", "Output package name")
	maxN       = flag.Int("max", 170, "Largest n to tabulate (170 is the last finite float64 factorial)")
)

func main() {
	flag.Parse()

	if *maxN < 0 {
		fmt.Fprintf(os.Stderr, "Error: -max must be non-negative\n\n")
		flag.Usage()
		os.Exit(1)
	}

	src, err := GenerateFactorialTable(*packageOut, *maxN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outputFile, src, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: write %s: %v\n", *outputFile, err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %s (%d entries)\n", *outputFile, *maxN+1)
}
