package analyzer

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const (
	analyzerName = "bookmarkslint"
	analyzerDoc  = "reports panic anywhere, process exits outside func main, and fmt printing outside package main"
)

// Analyzer keeps process control in func main and output on the structured logger.
var Analyzer = &analysis.Analyzer{
	Name:     analyzerName,
	Doc:      analyzerDoc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var exitFuncs = map[string]map[string]bool{
	"log": {"Fatal": true, "Fatalf": true, "Fatalln": true},
	"os":  {"Exit": true},
}

var printFuncs = map[string]bool{
	"Print":   true,
	"Printf":  true,
	"Println": true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.FuncDecl)(nil),
		(*ast.CallExpr)(nil),
	}

	var inMain bool
	insp.Nodes(nodeFilter, func(node ast.Node, push bool) bool {
		switch n := node.(type) {
		case *ast.FuncDecl:
			inMain = push && n.Recv == nil && n.Name.Name == "main" && pass.Pkg.Name() == "main"
		case *ast.CallExpr:
			if push {
				checkCall(pass, n, inMain)
			}
		}
		return true
	})

	return nil, nil
}

func checkCall(pass *analysis.Pass, callExpr *ast.CallExpr, inMain bool) {
	switch fn := callExpr.Fun.(type) {
	case *ast.Ident:
		if fn.Name == "panic" && isBuiltin(pass, fn) {
			pass.Reportf(callExpr.Pos(), "panic is forbidden")
		}
	case *ast.SelectorExpr:
		checkSelectorExpr(pass, fn, callExpr, inMain)
	}
}

func isBuiltin(pass *analysis.Pass, ident *ast.Ident) bool {
	if pass.TypesInfo == nil {
		return true
	}
	_, ok := pass.TypesInfo.Uses[ident].(*types.Builtin)
	return ok
}

func checkSelectorExpr(pass *analysis.Pass, selectorExpr *ast.SelectorExpr, callExpr *ast.CallExpr, inMain bool) {
	ident, ok := selectorExpr.X.(*ast.Ident)
	if !ok || pass.TypesInfo == nil {
		return
	}

	pkgName, ok := pass.TypesInfo.Uses[ident].(*types.PkgName)
	if !ok {
		return
	}

	pkgPath := pkgName.Imported().Path()
	fn := selectorExpr.Sel.Name

	switch {
	case exitFuncs[pkgPath][fn]:
		if !inMain {
			pass.Reportf(callExpr.Pos(), "%s.%s is forbidden outside main function", pkgPath, fn)
		}
	case pkgPath == "fmt" && printFuncs[fn]:
		if pass.Pkg.Name() != "main" {
			pass.Reportf(callExpr.Pos(), "fmt.%s is forbidden outside package main, use the zerolog logger", fn)
		}
	}
}
