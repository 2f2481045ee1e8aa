package cmd

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"zkconf/internal/store"
	"zkconf/internal/vpath"
	"zkconf/internal/vtree"
)

var listLong bool

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration documents as a virtual tree",
	Long: `List every configuration document under the root znode, rendered as a
directory tree reconstructed from the flat node names. Virtual directories
are shown emphasized; they exist only by naming convention.

With --long, print a flat table with per-document metadata instead.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVarP(&listLong, "long", "l", false, "Table output with size, version, and modification time")
}

func runList(cmd *cobra.Command, args []string) error {
	inv, err := newInvocation()
	if err != nil {
		return operational(err)
	}

	st, err := inv.openStore(cmd.Context())
	if err != nil {
		return operational(err)
	}
	defer st.Close()

	if listLong {
		return runListLong(cmd, inv, st)
	}

	names, err := st.List()
	if err != nil {
		return operational(err)
	}
	if len(names) == 0 {
		inv.emptyNotice(fmt.Sprintf("No configuration documents under %s", inv.settings.ZNode))
		return nil
	}

	out := cmd.OutOrStdout()
	if !inv.quiet {
		fmt.Fprintln(out, text.Bold.Sprint(inv.settings.ZNode))
	}
	for _, line := range vtree.Render(vtree.Build(names), vtree.Style{Color: !inv.quiet && !rootNoColor}) {
		fmt.Fprintln(out, line)
	}
	return nil
}

func runListLong(cmd *cobra.Command, inv *invocation, st *store.Store) error {
	entries, err := st.ListEntries()
	if err != nil {
		return operational(err)
	}
	if len(entries) == 0 {
		inv.emptyNotice(fmt.Sprintf("No configuration documents under %s", inv.settings.ZNode))
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"NAME", "SIZE", "VERSION", "MODIFIED"})
	for _, e := range entries {
		t.AppendRow(table.Row{
			vpath.DecodeFlat(e.FlatName).String(),
			e.Size,
			e.Version,
			e.Modified.UTC().Format(time.RFC3339),
		})
	}
	t.Render()
	return nil
}
