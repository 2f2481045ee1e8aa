package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"zkconf/internal/cli"
	"zkconf/internal/vpath"
)

var deleteForce bool

// deleteCmd represents the delete command.
var deleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a document",
	Long: `Delete the configuration document NAME after an interactive
confirmation. Use --force to skip the prompt in scripts.

Deleting a document that does not exist is a no-op success. A znode with
structural children (created outside this tool) is refused; remove the
children with a ZooKeeper client first.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Delete without confirmation")
}

func runDelete(cmd *cobra.Command, args []string) error {
	path, err := vpath.Parse(args[0])
	if err != nil {
		return err
	}

	if !deleteForce {
		ok, err := cli.Confirm(cmd.InOrStdin(), cmd.ErrOrStderr(), fmt.Sprintf("Delete %s?", path))
		if err != nil {
			return operational(err)
		}
		if !ok {
			return operational(&cli.UserDeclinedError{Action: fmt.Sprintf("delete %s", path)})
		}
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

	if err := st.Delete(path.FlatName()); err != nil {
		return operational(err)
	}
	inv.notice("Deleted %s", path)
	return nil
}
