package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Pull the remote set state into the current pack directory",
	Long: `Make the current pack directory mirror the remote sticker set. Files
with no remote counterpart are removed, drifted files are re-downloaded, and
the index is rewritten in remote order. Run inside a pack directory.`,
	RunE: runSync,
}

func init() {
	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	packDir, err := os.Getwd()
	if err != nil {
		return err
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}

	if err := a.service(packDir).Pull(ctx); err != nil {
		return err
	}

	fmt.Println("Local pack is now in sync with the remote set.")
	return nil
}
