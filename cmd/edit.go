package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"zkconf/internal/cli"
	"zkconf/internal/store"
	"zkconf/internal/vpath"
)

// editCmd represents the edit command.
var editCmd = &cobra.Command{
	Use:   "edit NAME",
	Short: "Edit a document in your editor",
	Long: `Open the configuration document NAME in $VISUAL or $EDITOR (vi when
neither is set) and write it back when the content changed. Editing a
document that does not exist yet starts from an empty file and creates it
on save.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	path, err := vpath.Parse(args[0])
	if err != nil {
		return err
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

	flat := path.FlatName()
	content, err := st.Get(flat)
	if err != nil {
		if !errors.Is(err, &store.NotFoundError{}) {
			return operational(err)
		}
		// New document; start from an empty buffer.
		content = nil
	}

	edited, changed, err := cli.Edit(flat, content)
	if err != nil {
		return operational(err)
	}
	if !changed {
		inv.notice("%s unchanged, nothing written", path)
		return nil
	}

	if err := st.Put(flat, edited); err != nil {
		return operational(err)
	}
	inv.notice("Wrote %s (%d bytes)", path, len(edited))
	return nil
}
