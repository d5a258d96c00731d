package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/symm/internal/expr"
)

// EvalResult is the JSON payload for the eval command.
type EvalResult struct {
	Group      string   `json:"group"`
	Expression string   `json:"expression"`
	Components []string `json:"components"`
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	var order int

	cmd := &cobra.Command{
		Use:   "eval <group> <expression>",
		Short: "Evaluate an irrep expression",
		Long: `Evaluate an irrep expression in a point group and print the
canonically ordered decomposition.

Expressions combine Mulliken symbols with +, *, ** and parentheses:

  symm eval D2h "b2g * b1u"
  symm eval D6h "e2u + e1g*e2u*e2u + a1g"`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(rootOpts, args[0], args[1], order, cmd)
		},
	}

	cmd.Flags().IntVar(&order, "order", 1, "group order for family-tag names (dnh --order 6)")
	return cmd
}

func runEval(opts *RootOptions, group, expression string, order int, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	reg, err := loadRegistry(opts, formatter)
	if err != nil {
		return err
	}

	pg, err := resolveGroup(reg, group, order, formatter)
	if err != nil {
		return err
	}
	formatter.VerboseLog("Evaluating %q in %s (order %d)", expression, pg.Name(), pg.Order())

	rep, err := expr.Eval(pg, expression)
	if err != nil {
		_ = formatter.Error(ErrCodeEvalFailed, err.Error(), nil)
		return WrapExitError(ExitFailure, fmt.Sprintf("%s: evaluation failed", ErrCodeEvalFailed), err)
	}

	if opts.Format == "json" {
		components := make([]string, 0, rep.Len())
		for _, c := range rep.Components() {
			components = append(components, c.String())
		}
		return formatter.Success(EvalResult{
			Group:      pg.Name(),
			Expression: expression,
			Components: components,
		})
	}

	fmt.Fprintln(formatter.Writer, rep.String())
	return nil
}
