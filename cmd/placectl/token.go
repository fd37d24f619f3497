package main

import (
	"placebook/internal/errors"
	"placebook/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func tokenCommand(a *app) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token for a user, for local testing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id := uuid.New()
			if userID != "" {
				parsed, err := uuid.Parse(userID)
				if err != nil {
					return errors.Wrap(err, "invalid --user")
				}
				id = parsed
			}

			tokens, err := auth.NewJWTService(a.cfg)
			if err != nil {
				return err
			}

			token, err := tokens.GenerateAccessToken(id)
			if err != nil {
				return err
			}

			return printJSON(cmd, map[string]string{
				"user_id":      id.String(),
				"access_token": token,
				"expires_in":   tokens.GetAccessTokenDuration().String(),
			})
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID (a random one when empty)")

	return cmd
}
