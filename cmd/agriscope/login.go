package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agriscope/agriscope/pkg/config"
)

func newLoginCmd() *cobra.Command {
	var (
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to an Agriscope server and store the access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := loadCLIConfig()
			if err != nil {
				return err
			}

			client := newClient(cfg)
			var resp struct {
				Message     string `json:"message"`
				AccessToken string `json:"access_token"`
			}
			err = client.do(cmd.Context(), "POST", "/api/v1/auth/login", map[string]string{
				"email":    email,
				"password": password,
			}, &resp)
			if err != nil {
				return err
			}

			cfg.Server.Token = resp.AccessToken
			if err := config.Save(cfg, path); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}

			fmt.Fprintf(os.Stderr, "Logged in as %s (token saved to %s)\n", email, path)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
