package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gamelanding/gamelanding/internal/db"
	"github.com/gamelanding/gamelanding/internal/db/controller/user"
)

func init() { //nolint: gochecknoinits
	userPasswdCmd.Flags().StringVar(&username, "username", "", "Account to update")
	userPasswdCmd.Flags().StringVar(&password, "password", "", "New password")
	_ = userPasswdCmd.MarkFlagRequired("username")
	_ = userPasswdCmd.MarkFlagRequired("password")

	userCmd.AddCommand(userPasswdCmd)
	rootCmd.AddCommand(userCmd)
}

var (
	username string
	password string

	userCmd = &cobra.Command{
		Use:   "user",
		Short: "Manage dashboard accounts",
	}

	userPasswdCmd = &cobra.Command{
		Use:   "passwd",
		Short: "Set the password of an account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadConfig()
			if err != nil {
				return err
			}

			gdb, err := db.Open(&c)
			if err != nil {
				return err
			}

			if err = user.SetPassword(gdb, username, password); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "password of %s updated\n", username)

			return err
		},
	}
)
