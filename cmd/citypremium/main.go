// Package main provides the entry point for the citypremium CLI.
//
// citypremium synthesizes a toy salary dataset, aggregates it by city for one
// role, and writes a CSV summary plus a dumbbell chart (PNG and SVG) comparing
// each top city with the national average.
//
// Usage:
//
//	citypremium --role "Software Engineer" --out ./out
//
// See --help for all available options.
package main

// main is the entry point for citypremium.
func main() {
	Execute()
}
