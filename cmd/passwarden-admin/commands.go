package main

import (
	"bufio"
	"context"
	"strings"

	"passwarden/internal/errors"
	"passwarden/internal/infra/persistence/postgres"

	"github.com/spf13/cobra"
)

func newCreateManagerCmd(run runner) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "create-manager",
		Short: "Create a password manager, or promote an existing user",
		Long: `Creates the user with the password_manager role.
If the username is taken the existing account is promoted and its password is left unchanged.
Without --password the password is read from the first line of stdin.`,
		RunE: run(func(ctx context.Context, cmd *cobra.Command, env *adminEnv) error {
			if password == "" {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return errors.Wrap(err, "failed to read password from stdin")
				}
				password = strings.TrimRight(line, "\r\n")
			}

			output, err := env.bootstrap.EnsureManager(ctx, username, password)
			if err != nil {
				return err
			}

			if output.Created {
				cmd.Printf("created password manager %s (%s)\n", output.User.Username, output.User.ID)
			} else {
				cmd.Printf("promoted existing user %s (%s) to password manager\n", output.User.Username, output.User.ID)
			}

			return nil
		}),
	}

	cmd.Flags().StringVar(&username, "username", "", "username of the manager")
	cmd.Flags().StringVar(&password, "password", "", "password used when the user has to be created")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func newGrantManagerCmd(run runner) *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "grant-manager",
		Short: "Grant the password_manager role to an existing user",
		RunE: run(func(ctx context.Context, cmd *cobra.Command, env *adminEnv) error {
			user, err := env.bootstrap.PromoteByUsername(ctx, username)
			if err != nil {
				return err
			}

			cmd.Printf("%s (%s) is now %s\n", user.Username, user.ID, user.Role)

			return nil
		}),
	}

	cmd.Flags().StringVar(&username, "username", "", "username to promote")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func newMigrateCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: run(func(ctx context.Context, cmd *cobra.Command, env *adminEnv) error {
			if err := postgres.AutoMigrate(env.db.WithContext(ctx)); err != nil {
				return err
			}

			cmd.Printf("schema migrated (%s)\n", env.cfg.Database.Driver)

			return nil
		}),
	}
}
