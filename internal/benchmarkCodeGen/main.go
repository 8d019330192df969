// Command benchmarkCodeGen writes "<file>_test.go" with TestConformance and
// the benchmark grid for an interfaces.Map implementation.
//
// It is run by "go generate" for the file containing the comment
// "//go:generate benchmarkCodeGen"; without $GOFILE it scans the directory
// given as the first argument (or the current one).
package main

import (
	"flag"
	"log"
)

func main() {
	flag.Parse()

	dirPath := "."
	if flag.NArg() > 0 {
		dirPath = flag.Arg(0)
	}

	files, err := parseHashMapSourceFiles(dirPath)
	if err != nil {
		log.Fatalf("unable to parse %v: %v", dirPath, err)
	}
	if len(files) != 1 {
		log.Fatalf(`found %v files with "//go:generate %v" in %v, expected exactly one`, len(files), goGenerateExpectedValue, dirPath)
	}

	if err := files[0].GenerateTestFile(); err != nil {
		log.Fatalf("unable to generate tests for %v: %v", files[0].Name, err)
	}
}
