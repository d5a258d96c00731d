package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// GroupInfo is the JSON payload for one registered point group.
type GroupInfo struct {
	Name   string   `json:"name"`
	Family string   `json:"family"`
	N      int      `json:"n"`
	Order  int      `json:"order"`
	Irreps []string `json:"irreps"`
}

// NewGroupsCommand creates the groups command.
func NewGroupsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "List the registered point groups",
		Long: `List every point group with a registered character table,
including tables added with --tables.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGroups(rootOpts, cmd)
		},
	}
	return cmd
}

func runGroups(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	reg, err := loadRegistry(opts, formatter)
	if err != nil {
		return err
	}

	tables := reg.Groups()
	infos := make([]GroupInfo, 0, len(tables))
	for _, t := range tables {
		symbols := make([]string, 0, len(t.Rows))
		for _, row := range t.Rows {
			symbols = append(symbols, row.Symbol)
		}
		infos = append(infos, GroupInfo{
			Name:   t.Name(),
			Family: t.Family,
			N:      t.N,
			Order:  t.Order,
			Irreps: symbols,
		})
	}

	if opts.Format == "json" {
		return formatter.Success(infos)
	}

	for _, info := range infos {
		fmt.Fprintf(formatter.Writer, "%-5s order %-3d %s\n", info.Name, info.Order, strings.Join(info.Irreps, " "))
	}
	return nil
}
