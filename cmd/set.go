package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"zkconf/internal/vpath"
)

// setCmd represents the set command.
var setCmd = &cobra.Command{
	Use:   "set NAME FILE",
	Short: "Write a file's content to a document",
	Long: `Create or overwrite the configuration document NAME with the content of
FILE. Pass "-" as FILE to read from stdin.

The write is refused when NAME is already in use as a virtual directory,
i.e. other documents are stored beneath it.`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	path, err := vpath.Parse(args[0])
	if err != nil {
		return err
	}

	var data []byte
	if args[1] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[1])
	}
	if err != nil {
		return operational(fmt.Errorf("cannot read %s: %w", args[1], err))
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

	if err := st.Put(path.FlatName(), data); err != nil {
		return operational(err)
	}

	inv.notice("Wrote %s (%d bytes)", path, len(data))
	return nil
}
