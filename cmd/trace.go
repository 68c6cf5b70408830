package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"sticker-manager/core/index"
	"sticker-manager/feature/pack"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var traceLink string

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Adopt an existing sticker set into a local pack directory",
	Long: `Fetch an existing sticker set managed by the logged-in bot and create a
local pack directory mirroring it. The directory is named after the set.`,
	RunE: runTrace,
}

func init() {
	traceCmd.Flags().StringVarP(&traceLink, "link", "l", "", "Sticker set link, e.g. https://t.me/addstickers/my_pack_by_bot")
	_ = traceCmd.MarkFlagRequired("link")

	RootCmd.AddCommand(traceCmd)
}

func runTrace(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	setName := pack.ParseSetLink(traceLink)
	if setName == "" {
		return fmt.Errorf("cannot extract a set name from link %q", traceLink)
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}

	// Tracing an unknown set is an error, unlike pull where a missing set
	// just means the pack was never pushed.
	set, err := a.service(".").FetchRemote(ctx, setName)
	if err != nil {
		return err
	}
	if set == nil {
		return fmt.Errorf("sticker set %q does not exist", setName)
	}

	packDir, err := createPackDir(set.Name)
	if err != nil {
		return err
	}

	descriptor := index.Create(set.Title, set.Name, set.StickerType, strconv.FormatInt(a.cred.BotUser.ID, 10))
	if err := index.Save(filepath.Join(packDir, pack.IndexFileName), descriptor); err != nil {
		return err
	}

	if _, err := a.service(packDir).SyncExisting(ctx); err != nil {
		return err
	}

	a.log.Info("remote set traced",
		zap.String("pack", set.Name),
		zap.Int("stickers", len(set.Stickers)),
	)
	fmt.Printf("Traced %q into %s.\n", set.Title, packDir)
	return nil
}
