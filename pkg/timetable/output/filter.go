package output

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/ukaji3/timetable-go/pkg/timetable/models"
)

// Filter selects entries with a boolean expression over the entry's
// JSON field names, e.g. `hours >= 4 && !is_holiday`.
type Filter struct {
	source  string
	program *vm.Program
}

// NewFilter compiles expression.
func NewFilter(expression string) (*Filter, error) {
	program, err := expr.Compile(expression, expr.Env(models.ClassEntry{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile filter %q: %w", expression, err)
	}
	return &Filter{source: expression, program: program}, nil
}

// Match reports whether e satisfies the filter.
func (f *Filter) Match(e models.ClassEntry) (bool, error) {
	out, err := expr.Run(f.program, e)
	if err != nil {
		return false, fmt.Errorf("run filter %q: %w", f.source, err)
	}
	ok, _ := out.(bool)
	return ok, nil
}

// Apply returns the entries that match, keeping their order.
func (f *Filter) Apply(entries []models.ClassEntry) ([]models.ClassEntry, error) {
	kept := make([]models.ClassEntry, 0, len(entries))
	for _, e := range entries {
		ok, err := f.Match(e)
		if err != nil {
			return nil, err
		}
		if ok {
			kept = append(kept, e)
		}
	}
	return kept, nil
}
