package filter

import (
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache[CompiledFilter](size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) Compiler {
	c := &exprCompiler{
		helperFuncs: createHelperFunctions(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// exprCompiler implements CachingCompiler for expr-based filters
type exprCompiler struct {
	helperFuncs map[string]any
	cache       *lruCache[CompiledFilter]
}

// Compile compiles an expression into an executable filter
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	// Record fields are unknown until runtime, so only the helpers are typed.
	env := maps.Clone(c.helperFuncs)
	env["Record"] = Record{}
	env["has"] = func(string) bool { return false }

	program, err := expr.Compile(expression,
		expr.Env(env),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	filter := &exprFilter{
		expression: expression,
		program:    program,
		helpers:    c.helperFuncs,
	}

	if c.cache != nil {
		c.cache.Put(expression, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// Evaluate reports whether record matches. Records the expression cannot
// be evaluated against, e.g. a comparison on a missing field, do not match.
func (f *exprFilter) Evaluate(record Record) bool {
	ok, err := f.Match(record)
	return err == nil && ok
}

// Match evaluates the filter and returns any runtime error
func (f *exprFilter) Match(record Record) (bool, error) {
	result, err := expr.Run(f.program, f.runtimeEnvironment(record))
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			RecordID:   recordID(record),
			Err:        err,
		}
	}

	matched, ok := result.(bool)
	if !ok {
		return false, &EvaluationError{
			Expression: f.expression,
			RecordID:   recordID(record),
			Err:        fmt.Errorf("expression returned %T, not bool", result),
		}
	}
	return matched, nil
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// runtimeEnvironment exposes the record fields as top-level variables.
// Helpers take precedence; shadowed fields stay reachable through Record.
func (f *exprFilter) runtimeEnvironment(record Record) map[string]any {
	env := make(map[string]any, len(record)+len(f.helpers)+2)
	maps.Copy(env, record)
	maps.Copy(env, f.helpers)

	env["Record"] = record
	env["has"] = func(field string) bool {
		v, ok := record[field]
		return ok && v != nil
	}
	return env
}

func recordID(record Record) string {
	if id, ok := record["id"]; ok && id != nil {
		return fmt.Sprint(id)
	}
	return "?"
}

// createHelperFunctions creates the helper functions available to every expression
func createHelperFunctions() map[string]any {
	return map[string]any{
		// Date helpers; timestamps arrive as RFC 3339 strings.
		"daysSince": func(v any) int {
			t, ok := toTime(v)
			if !ok {
				return 0
			}
			return int(time.Since(t).Hours() / 24)
		},
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
		"monthsAgo": func(months int) time.Time {
			return time.Now().AddDate(0, -months, 0)
		},
		"parseDate": func(v any) time.Time {
			t, _ := toTime(v)
			return t
		},
		"before": func(v any, ref time.Time) bool {
			t, ok := toTime(v)
			return ok && t.Before(ref)
		},
		"after": func(v any, ref time.Time) bool {
			t, ok := toTime(v)
			return ok && t.After(ref)
		},
		// Case-insensitive string helpers. The plain names are expr operators
		// (name contains "x") and compare case-sensitively.
		"icontains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"istartsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"iendsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
		"now":   time.Now,
	}
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// toTime accepts a time.Time or a string in any of timeLayouts
func toTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, !t.IsZero()
	case string:
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, true
			}
		}
	}
	return time.Time{}, false
}
