package cmd

import (
	"context"
	"fmt"

	"sticker-manager/core/config"
	"sticker-manager/core/credentials"

	"github.com/spf13/cobra"
)

var (
	loginToken string
	loginUser  string
	loginProxy string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store bot credentials in the OS keyring",
	Long: `Validate a bot token against the API and store the credential triple
(token, owner id, optional proxy) in the OS keyring.

Sticker packs created by a bot can only be managed by that same bot.`,
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVarP(&loginToken, "token", "t", "", "Bot token from @BotFather, e.g. 123456:ABC-DEF1234ghIkl")
	loginCmd.Flags().StringVarP(&loginUser, "user", "u", "", "Owner id of the sticker packs")
	loginCmd.Flags().StringVarP(&loginProxy, "proxy", "p", "", "Optional proxy URL for bot traffic")
	_ = loginCmd.MarkFlagRequired("token")
	_ = loginCmd.MarkFlagRequired("user")

	RootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	candidate, err := credentials.Parse(loginToken, loginUser, loginProxy)
	if err != nil {
		return err
	}

	client, err := buildClient(cfg, candidate)
	if err != nil {
		return err
	}

	cred, err := credentials.Authenticate(ctx, candidate, client)
	if err != nil {
		return err
	}

	if err := credentials.Store(cred.Candidate); err != nil {
		return err
	}

	fmt.Printf("Logged in as @%s.\n", cred.BotUser.Username)
	fmt.Println("NOTE: sticker packs created by this bot can only be managed by this bot.")
	return nil
}
