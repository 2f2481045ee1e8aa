package cmd

import (
	"github.com/spf13/cobra"

	"zkconf/internal/vpath"
)

// moveCmd represents the move command.
var moveCmd = &cobra.Command{
	Use:   "move SOURCE TARGET",
	Short: "Rename a document",
	Long: `Copy the document SOURCE to TARGET, then delete SOURCE. The two steps
are separate writes against ZooKeeper, so an interrupted move can leave both
names present; no content is lost either way.`,
	Args: cobra.ExactArgs(2),
	RunE: runMove,
}

func init() {
	rootCmd.AddCommand(moveCmd)
}

func runMove(cmd *cobra.Command, args []string) error {
	src, dst, err := parseSourceTarget(args)
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

	if err := st.Move(src.FlatName(), dst.FlatName()); err != nil {
		return operational(err)
	}
	inv.notice("Moved %s to %s", src, dst)
	return nil
}

// parseSourceTarget validates a SOURCE TARGET argument pair.
func parseSourceTarget(args []string) (vpath.Path, vpath.Path, error) {
	src, err := vpath.Parse(args[0])
	if err != nil {
		return vpath.Path{}, vpath.Path{}, err
	}
	dst, err := vpath.Parse(args[1])
	if err != nil {
		return vpath.Path{}, vpath.Path{}, err
	}
	return src, dst, nil
}
