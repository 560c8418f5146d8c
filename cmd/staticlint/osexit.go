package main

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// OsExitAnalyzer запрещает прямой вызов os.Exit в функции main пакета main:
// такой вызов пропускает отложенные Sync логгера и остановку сервера.
var OsExitAnalyzer = &analysis.Analyzer{
	Name:     "osexit",
	Doc:      "prohibits direct calls to os.Exit in main function of main package",
	Run:      runOsExit,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

func runOsExit(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	insp.Preorder([]ast.Node{(*ast.FuncDecl)(nil)}, func(n ast.Node) {
		fn := n.(*ast.FuncDecl)
		if fn.Recv != nil || fn.Name.Name != "main" || fn.Body == nil {
			return
		}

		ast.Inspect(fn.Body, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if ok && isOsExit(pass, call) {
				pass.Reportf(call.Pos(), "avoid direct os.Exit call in main function of main package")
			}
			return true
		})
	})

	return nil, nil
}

// isOsExit проверяет, что вызов разрешается в функцию os.Exit
func isOsExit(pass *analysis.Pass, call *ast.CallExpr) bool {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != "Exit" {
		return false
	}
	fn, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func)
	return ok && fn.Pkg() != nil && fn.Pkg().Path() == "os"
}
