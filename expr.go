package xlref

import (
	"fmt"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// CompileColumnPredicate compiles a boolean expression deciding whether a
// column is hidden. The expression sees index, the 1-based column number,
// and name, the column letters: `index in [3, 4] || name == "K"`.
func CompileColumnPredicate(expression string) (func(ColumnReference) bool, error) {
	program, err := compilePredicate(expression, map[string]any{"index": 0, "name": ""})
	if err != nil {
		return nil, err
	}
	p := &predicate{program: program}
	return func(c ColumnReference) bool {
		return p.test(c.value, func() map[string]any {
			return map[string]any{"index": c.value + 1, "name": c.Name()}
		})
	}, nil
}

// CompileRowPredicate compiles a boolean expression deciding whether a row
// is hidden. The expression sees index, the 1-based row number:
// `index % 2 == 0`.
func CompileRowPredicate(expression string) (func(RowReference) bool, error) {
	program, err := compilePredicate(expression, map[string]any{"index": 0})
	if err != nil {
		return nil, err
	}
	p := &predicate{program: program}
	return func(r RowReference) bool {
		return p.test(r.value, func() map[string]any {
			return map[string]any{"index": r.value + 1}
		})
	}, nil
}

func compilePredicate(expression string, env map[string]any) (*vm.Program, error) {
	program, err := expr.Compile(expression, expr.Env(env), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile expression %q: %w", expression, err)
	}
	return program, nil
}

// predicate memoizes a compiled program per column or row value; a failing
// evaluation counts as false.
type predicate struct {
	program *vm.Program
	cache   sync.Map // value → bool
}

func (p *predicate) test(value int, env func() map[string]any) bool {
	if cached, ok := p.cache.Load(value); ok {
		return cached.(bool)
	}
	result, err := expr.Run(p.program, env())
	b, _ := result.(bool)
	b = b && err == nil
	p.cache.Store(value, b)
	return b
}
