package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push local changes to the remote sticker set",
	Long: `Apply local additions, deletions and the title to the remote set,
creating the set on first push. A rotating backup of the sticker directory is
taken before any remote mutation. Run inside a pack directory.`,
	RunE: runPush,
}

func init() {
	RootCmd.AddCommand(pushCmd)
}

func runPush(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	packDir, err := os.Getwd()
	if err != nil {
		return err
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}

	if err := a.service(packDir).Push(ctx); err != nil {
		return err
	}

	fmt.Println("Remote set updated. Local index reindexed from the remote state.")
	return nil
}
