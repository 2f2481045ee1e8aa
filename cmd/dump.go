package cmd

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"zkconf/internal/vpath"
)

// dumpCmd represents the dump command.
var dumpCmd = &cobra.Command{
	Use:   "dump [DIR]",
	Short: "Print every document with its content",
	Long: `Print all configuration documents, each preceded by a header line with
its virtual path. With DIR, only documents under that virtual directory
(plus a document named DIR itself, if one exists) are printed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDump,
}

var dumpHeaderColors = text.Colors{text.FgHiCyan, text.Bold}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	var filter vpath.Path
	if len(args) == 1 {
		parsed, err := vpath.Parse(args[0])
		if err != nil {
			return err
		}
		filter = parsed
	}

	inv, err := newInvocation()
	if err != nil {
		return operational(err)
	}
	st, err := inv.openStore(cmd.Context())
	if err != nil {
		return operational(err)
	}
	defer st.Close()

	names, err := st.List()
	if err != nil {
		return operational(err)
	}
	names = filterByDir(names, filter)
	if len(names) == 0 {
		inv.emptyNotice(fmt.Sprintf("No configuration documents under %s", inv.settings.ZNode))
		return nil
	}

	out := cmd.OutOrStdout()
	for i, name := range names {
		data, err := st.Get(name)
		if err != nil {
			return operational(err)
		}

		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, dumpHeaderColors.Sprintf("=== %s ===", vpath.DecodeFlat(name)))
		out.Write(data)
		if !bytes.HasSuffix(data, []byte("\n")) {
			fmt.Fprintln(out)
		}
	}
	return nil
}

// filterByDir keeps the flat names stored under the given virtual directory,
// plus a document carrying the directory's own name. A zero filter keeps
// everything.
func filterByDir(names []string, dir vpath.Path) []string {
	if dir.IsZero() {
		return names
	}
	flat := dir.FlatName()
	prefix := flat + vpath.Separator

	var kept []string
	for _, name := range names {
		if name == flat || strings.HasPrefix(name, prefix) {
			kept = append(kept, name)
		}
	}
	return kept
}
