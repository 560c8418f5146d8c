// Command staticlint запускает набор статических анализаторов для кода сервиса.
//
// Использование:
//
//	go run ./cmd/staticlint ./...
//
// В набор входят анализаторы golang.org/x/tools/go/analysis/passes, все анализаторы
// класса SA из staticcheck, анализаторы stylecheck и simple, go-critic, errcheck
// и собственный анализатор osexit, запрещающий прямой вызов os.Exit в функции main.
package main

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/assign"
	"golang.org/x/tools/go/analysis/passes/atomic"
	"golang.org/x/tools/go/analysis/passes/bools"
	"golang.org/x/tools/go/analysis/passes/composite"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/loopclosure"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilfunc"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/stdmethods"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/tests"
	"golang.org/x/tools/go/analysis/passes/unmarshal"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"honnef.co/go/tools/analysis/lint"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"

	critic "github.com/go-critic/go-critic/checkers/analyzer"
	"github.com/kisielk/errcheck/errcheck"
)

// excludedStyleChecks отключенные проверки stylecheck:
// ST1000 требует комментарий пакета в каждом файле, ST1005 запрещает заглавные
// буквы в ошибках, а сообщения об ошибках API возвращаются клиенту как есть
var excludedStyleChecks = map[string]bool{
	"ST1000": true,
	"ST1005": true,
}

func passAnalyzers() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		assign.Analyzer,
		atomic.Analyzer,
		bools.Analyzer,
		composite.Analyzer,
		copylock.Analyzer,
		errorsas.Analyzer,
		httpresponse.Analyzer,
		loopclosure.Analyzer,
		lostcancel.Analyzer,
		nilfunc.Analyzer,
		nilness.Analyzer,
		printf.Analyzer,
		shadow.Analyzer,
		stdmethods.Analyzer,
		structtag.Analyzer,
		tests.Analyzer,
		unmarshal.Analyzer,
		unreachable.Analyzer,
		unusedresult.Analyzer,
	}
}

// staticcheckAnalyzers собирает анализаторы staticcheck, пропуская отключенные
func staticcheckAnalyzers(groups ...[]*lint.Analyzer) []*analysis.Analyzer {
	var result []*analysis.Analyzer
	for _, group := range groups {
		for _, a := range group {
			if excludedStyleChecks[a.Analyzer.Name] {
				continue
			}
			result = append(result, a.Analyzer)
		}
	}
	return result
}

func main() {
	checks := []*analysis.Analyzer{OsExitAnalyzer, critic.Analyzer, errcheck.Analyzer}
	checks = append(checks, passAnalyzers()...)
	checks = append(checks, staticcheckAnalyzers(staticcheck.Analyzers, stylecheck.Analyzers, simple.Analyzers)...)

	multichecker.Main(checks...)
}
