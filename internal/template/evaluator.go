// Package template renders consolidated tables through a column template.
package template

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/joseph-ayodele/order-mapper/internal/common"
	"github.com/joseph-ayodele/order-mapper/internal/entity"
	"github.com/joseph-ayodele/order-mapper/internal/table"
)

// Evaluator renders tables against a ColumnTemplate. Compiled CEL programs
// are cached per expression; the evaluator is safe for concurrent use.
type Evaluator struct {
	env      *cel.Env
	prgCache map[string]cel.Program
	mu       sync.RWMutex
	logger   *slog.Logger
}

func NewEvaluator(logger *slog.Logger) (*Evaluator, error) {
	if logger == nil {
		logger = slog.Default()
	}
	env, err := cel.NewEnv(
		cel.Variable("row", cel.DynType),
	)
	if err != nil {
		return nil, fmt.Errorf("create cel environment: %w", err)
	}
	return &Evaluator{
		env:      env,
		prgCache: make(map[string]cel.Program),
		logger:   logger,
	}, nil
}

// Render produces a new table shaped by the template's column order. Source
// columns copy from the input (declared default when blank), constants fill
// verbatim, computed columns evaluate their expression with the source row
// bound as "row". A computed column whose expression fails, for a missing
// dependency or otherwise, falls back to its declared default.
func (e *Evaluator) Render(in *table.Table, tpl *entity.ColumnTemplate) (*table.Table, error) {
	if err := tpl.Validate(); err != nil {
		return nil, err
	}
	out := table.New(tpl.ColumnOrder...)
	for i := 0; i < in.Len(); i++ {
		src := in.Rows[i]
		row := table.Row{}
		for _, name := range tpl.ColumnOrder {
			def := tpl.ColumnDefinitions[name]
			switch def.Type {
			case entity.ColumnSource:
				v := src[def.SourceColumn]
				if table.IsBlank(v) {
					v = def.DefaultValue
				}
				row[name] = v
			case entity.ColumnConstant:
				row[name] = def.Value
			case entity.ColumnComputed:
				v, err := e.evalExpr(def.Expression, src)
				if common.IsConfigurationError(err) {
					// unparsable expressions are template bugs, not row gaps
					return nil, err
				}
				if err != nil {
					e.logger.Debug("computed column fell back to default",
						"column", name, "error", err)
					v = def.DefaultValue
				}
				row[name] = v
			}
		}
		out.AddRow(row)
	}
	e.logger.Info("template.render.ok", "template", tpl.TemplateName, "rows", out.Len(), "columns", len(tpl.ColumnOrder))
	return out, nil
}

func (e *Evaluator) evalExpr(expr string, src table.Row) (string, error) {
	prg, err := e.program(expr)
	if err != nil {
		return "", err
	}
	rowInput := make(map[string]any, len(src))
	for k, v := range src {
		rowInput[k] = v
	}
	out, _, err := prg.Eval(map[string]any{"row": rowInput})
	if err != nil {
		return "", fmt.Errorf("eval: %w", err)
	}
	return table.Scalar(out.Value()), nil
}

func (e *Evaluator) program(expr string) (cel.Program, error) {
	e.mu.RLock()
	prg, hit := e.prgCache[expr]
	e.mu.RUnlock()
	if hit {
		return prg, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if prg, hit = e.prgCache[expr]; hit {
		return prg, nil
	}
	ast, issues := e.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, common.ConfigurationError("compile expression %q: %v", expr, issues.Err())
	}
	prg, err := e.env.Program(ast,
		cel.InterruptCheckFrequency(100),
		cel.CostLimit(10000),
	)
	if err != nil {
		return nil, common.ConfigurationError("build program for %q: %v", expr, err)
	}
	e.prgCache[expr] = prg
	return prg, nil
}
