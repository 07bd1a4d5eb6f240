package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"prescription-reader/internal/adapters/auth/jwtauth"
	"prescription-reader/internal/config"
	"prescription-reader/internal/ports/auth"
)

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite un token HS256 de desarrollo con AUTH_JWT_SECRET",
		RunE: func(cmd *cobra.Command, args []string) error {
			sub, _ := cmd.Flags().GetString("sub")
			email, _ := cmd.Flags().GetString("email")
			roles, _ := cmd.Flags().GetStringSlice("role")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cfg.AuthEnabled() {
				return fmt.Errorf("%w: AUTH_JWT_SECRET is empty", config.ErrInvalidConfig)
			}

			v := jwtauth.NewVerifier(jwtauth.Config{
				Secret:   cfg.AuthJWTSecret,
				Issuer:   cfg.AuthIssuer,
				Audience: cfg.AuthAudience,
			})
			token, err := v.Sign(auth.Claims{
				UserID: strings.TrimSpace(sub),
				Email:  strings.TrimSpace(email),
				Roles:  roles,
			}, ttl)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().String("sub", "", "Subject (user id)")
	cmd.Flags().String("email", "", "Email opcional")
	cmd.Flags().StringSlice("role", nil, "Roles (repetible)")
	cmd.Flags().Duration("ttl", time.Hour, "Vigencia del token")
	_ = cmd.MarkFlagRequired("sub")
	return cmd
}
