package cmd

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/eykd/dircompat-go/internal/domain"
)

// NewRulesCmd creates the rules command, which lists the checks that
// would run for the requested filesystems.
func NewRulesCmd() *cobra.Command {
	var filesystems []string

	cmd := &cobra.Command{
		Use:          "rules",
		Short:        "List the naming rules checked for each filesystem",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fss, err := parseFilesystemFlag(filesystems)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderRules(domain.Resolve(fss)))
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&filesystems, "filesystems", "f", nil,
		"Filesystems to list rules for (ntfs, exfat, ext4, encrypted-ext4); default all")

	return cmd
}

// renderRules lays out check groups in evaluation order.
func renderRules(groups []domain.Group) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Check", "Rule", "Filesystems"})
	for i, g := range groups {
		t.AppendRow(table.Row{strconv.Itoa(i + 1), string(g.Rule.Kind), g.Rule.Describe(), domain.JoinFilesystems(g.Filesystems)})
	}
	return t.Render()
}
