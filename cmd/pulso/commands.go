package main

import (
	"fmt"
	"time"

	"github.com/pulsohoreca/pulso/internal/pulso/app"
	"github.com/pulsohoreca/pulso/pkg/idx"
	"github.com/pulsohoreca/pulso/pkg/jwtx"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, err := app.New(app.LoadConfig())
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			return application.Run()
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and report the schema version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := app.LoadConfig()
			logger := app.NewLogger(cfg)

			db, err := app.OpenDatabase(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.ApplyMigrations(); err != nil {
				return fmt.Errorf("failed to apply database migrations: %w", err)
			}
			version, dirty, err := db.MigrationVersion()
			if err != nil {
				return err
			}
			logger.Info("database migrated", "file", cfg.DatabaseFile, "version", version, "dirty", dirty)
			return nil
		},
	}
}

// newTokenCmd mints a session token signed with the configured secret, for
// local development without the hosted auth provider.
func newTokenCmd() *cobra.Command {
	var (
		subject string
		email   string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := app.LoadConfig()
			signer, err := jwtx.NewHS256([]byte(cfg.JWTSecret), jwtx.VerifyOptions{})
			if err != nil {
				return err
			}
			if subject == "" {
				subject = idx.New().String()
			}

			tok, err := signer.Sign(jwtx.NewSessionClaims(subject, email, ttl, cfg.JWTIssuer, cfg.JWTAudience, time.Now()))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "sub", "", "user id (default: random)")
	cmd.Flags().StringVar(&email, "email", "", "user email")
	cmd.Flags().DurationVar(&ttl, "ttl", jwtx.DefaultSessionTTL, "token lifetime")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion)
		},
	}
}
