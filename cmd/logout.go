package cmd

import (
	"fmt"

	"sticker-manager/core/credentials"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored bot credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := credentials.Delete(); err != nil {
			return err
		}
		fmt.Println("You are now logged out.")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(logoutCmd)
}
