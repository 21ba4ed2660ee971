// Command linter runs the repository's custom static checks.
//
//	go run ./cmd/linter ./...
package main

import (
	"github.com/MikhailRaia/bookmarks/cmd/linter/analyzer"
	"golang.org/x/tools/go/analysis/singlechecker"
)

func main() {
	singlechecker.Main(analyzer.Analyzer)
}
