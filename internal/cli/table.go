package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/symm/internal/chartab"
	"github.com/roach88/symm/internal/irrep"
)

// TableRow is the JSON payload for one irrep row of a character table.
type TableRow struct {
	Symbol     string `json:"symbol"`
	Chars      []int  `json:"chars"`
	Degenerate bool   `json:"degenerate"`
}

// TableInfo is the JSON payload for the table command.
type TableInfo struct {
	Name       string     `json:"name"`
	Order      int        `json:"order"`
	ClassSizes []int      `json:"class_sizes"`
	Rows       []TableRow `json:"rows"`
}

// NewTableCommand creates the table command.
func NewTableCommand(rootOpts *RootOptions) *cobra.Command {
	var order int

	cmd := &cobra.Command{
		Use:   "table <group>",
		Short: "Print the character table of a point group",
		Long: `Print the character table of a point group.

The group may be a complete name such as D6h, or a family tag such as
dnh combined with --order.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(rootOpts, args[0], order, cmd)
		},
	}

	cmd.Flags().IntVar(&order, "order", 1, "group order for family-tag names (dnh --order 6)")
	return cmd
}

func runTable(opts *RootOptions, name string, order int, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	reg, err := loadRegistry(opts, formatter)
	if err != nil {
		return err
	}

	pg, err := resolveGroup(reg, name, order, formatter)
	if err != nil {
		return err
	}

	info := TableInfo{
		Name:       pg.Name(),
		Order:      pg.Order(),
		ClassSizes: pg.ClassSizes(),
	}
	for _, ir := range pg.Irreps() {
		info.Rows = append(info.Rows, TableRow{
			Symbol:     ir.String(),
			Chars:      ir.Chars(),
			Degenerate: ir.Degenerate(),
		})
	}

	if opts.Format == "json" {
		return formatter.Success(info)
	}

	fmt.Fprintf(formatter.Writer, "%s (order %d)\n", info.Name, info.Order)
	fmt.Fprint(formatter.Writer, "    ")
	for _, size := range info.ClassSizes {
		fmt.Fprintf(formatter.Writer, "%3d", size)
	}
	fmt.Fprintln(formatter.Writer)
	for _, row := range info.Rows {
		fmt.Fprintf(formatter.Writer, "%-4s", row.Symbol)
		for _, c := range row.Chars {
			fmt.Fprintf(formatter.Writer, "%3d", c)
		}
		fmt.Fprintln(formatter.Writer)
	}
	return nil
}

// resolveGroup builds a point group from a CLI name argument, mapping
// table-provider failures onto command exit codes.
func resolveGroup(reg *chartab.Registry, name string, order int, formatter *OutputFormatter) (*irrep.PointGroup, error) {
	pg, err := irrep.NewWithOrder(reg, name, order)
	if err != nil {
		_ = formatter.Error(ErrCodeUnknownGroup, err.Error(), nil)
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("%s: unknown point group %s", ErrCodeUnknownGroup, name), err)
	}
	return pg, nil
}
