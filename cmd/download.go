package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"sticker-manager/feature/pack"

	"github.com/spf13/cobra"
)

var (
	downloadLink string
	downloadDir  string
)

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download a sticker set's files without creating a pack",
	Long: `Download every sticker of a set into a plain directory. No index is
written, so the result is not a managed pack. Use trace for that.`,
	RunE: runDownload,
}

func init() {
	downloadCmd.Flags().StringVarP(&downloadLink, "link", "l", "", "Sticker set link, e.g. https://t.me/addstickers/my_pack_by_bot")
	downloadCmd.Flags().StringVarP(&downloadDir, "download-dir", "d", ".", "Directory the set folder is created in")
	_ = downloadCmd.MarkFlagRequired("link")

	RootCmd.AddCommand(downloadCmd)
}

func runDownload(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	setName := pack.ParseSetLink(downloadLink)
	if setName == "" {
		return fmt.Errorf("cannot extract a set name from link %q", downloadLink)
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}

	destDir := filepath.Join(downloadDir, setName)
	if err := a.service(".").DownloadSet(ctx, setName, destDir); err != nil {
		return err
	}

	fmt.Printf("Downloaded %s into %s.\n", setName, destDir)
	return nil
}
