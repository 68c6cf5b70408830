package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"sticker-manager/core/index"
	"sticker-manager/feature/pack"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	initPackName    string
	initPackTitle   string
	initStickerType string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new pack directory",
	Long: `Create a pack directory with a fresh index and an empty sticker folder.

The set name is derived as <pack-name>_by_<botusername>. If the set already
exists remotely, its inventory is pulled into the new directory.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initPackName, "pack-name", "n", "", "Pack name (alphanumeric and underscore)")
	initCmd.Flags().StringVarP(&initPackTitle, "pack-title", "t", "", "Pack title shown to users")
	initCmd.Flags().StringVarP(&initStickerType, "sticker-type", "s", index.TypeRegular, "Sticker type (mask, regular, custom_emoji)")
	_ = initCmd.MarkFlagRequired("pack-name")
	_ = initCmd.MarkFlagRequired("pack-title")

	RootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if err := pack.ValidatePackName(initPackName); err != nil {
		return err
	}
	if err := pack.ValidateTitle(initPackTitle); err != nil {
		return err
	}
	if !index.IsValidStickerType(initStickerType) {
		return fmt.Errorf("invalid sticker type %q", initStickerType)
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}

	setName := pack.ComposeSetName(initPackName, a.cred.BotUser.Username)
	packDir, err := createPackDir(initPackName)
	if err != nil {
		return err
	}

	descriptor := index.Create(initPackTitle, setName, initStickerType, strconv.FormatInt(a.cred.BotUser.ID, 10))
	if err := index.Save(filepath.Join(packDir, pack.IndexFileName), descriptor); err != nil {
		return err
	}
	if _, err := pack.EnsureStickerDir(packDir); err != nil {
		return err
	}

	existed, err := a.service(packDir).SyncExisting(ctx)
	if err != nil {
		return err
	}
	if existed {
		a.log.Info("existing remote set pulled", zap.String("pack", setName))
	} else {
		a.log.Info("empty pack initialized", zap.String("pack", setName))
	}

	fmt.Printf("Pack directory initialized: %s\n", packDir)
	fmt.Printf("Put your stickers in %s, then run 'sticker-manager push'.\n",
		filepath.Join(packDir, pack.StickerDirName))
	return nil
}

// createPackDir creates a directory named after the pack in the working
// directory, refusing to reuse an existing one.
func createPackDir(name string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	packDir := filepath.Join(wd, name)
	if _, err := os.Stat(packDir); err == nil {
		return "", fmt.Errorf("pack directory already exists: %s", packDir)
	}
	if err := os.Mkdir(packDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create pack directory: %w", err)
	}
	return packDir, nil
}
