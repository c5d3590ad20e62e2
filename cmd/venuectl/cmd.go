package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/venue-booking/internal/config"
	"github.com/iliyamo/venue-booking/internal/database"
	"github.com/iliyamo/venue-booking/internal/middleware"
)

// openDB is replaced in tests.
var openDB = func() (*sql.DB, error) {
	config.LoadDotEnv()
	cfg := config.LoadDB()
	return database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "venuectl",
		Short:         "Manage the venue booking database and admin credentials",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newMigrateCmd(), newHashPasswordCmd())
	return root
}

func newMigrateCmd() *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect schema migrations",
	}
	cmd.PersistentFlags().DurationVar(&timeout, "timeout", time.Minute, "overall timeout")

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(cmd.Context(), timeout, func(ctx context.Context, db *sql.DB) error {
				applied, err := database.Up(ctx, db)
				if err != nil {
					return err
				}
				if len(applied) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
					return nil
				}
				for _, v := range applied {
					fmt.Fprintf(cmd.OutOrStdout(), "applied %s\n", v)
				}
				return nil
			})
		},
	}

	status := &cobra.Command{
		Use:   "status",
		Short: "List migrations and when they were applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(cmd.Context(), timeout, func(ctx context.Context, db *sql.DB) error {
				ms, err := database.Status(ctx, db)
				if err != nil {
					return err
				}
				printStatus(cmd.OutOrStdout(), ms)
				return nil
			})
		},
	}

	cmd.AddCommand(up, status)
	return cmd
}

func printStatus(w io.Writer, ms []database.Migration) {
	for _, m := range ms {
		state := "pending"
		if m.AppliedAt != nil {
			state = "applied " + m.AppliedAt.UTC().Format(time.RFC3339)
		}
		fmt.Fprintf(w, "%-32s %s\n", m.Version, state)
	}
}

func newHashPasswordCmd() *cobra.Command {
	var cost int
	cmd := &cobra.Command{
		Use:   "hash-password",
		Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH; reads the password from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			plain := strings.TrimRight(string(raw), "\r\n")
			if plain == "" {
				return fmt.Errorf("empty password")
			}
			hash, err := middleware.HashPassword(plain, cost)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
	cmd.Flags().IntVar(&cost, "cost", bcrypt.DefaultCost, "bcrypt cost")
	return cmd
}

func withDB(parent context.Context, timeout time.Duration, fn func(context.Context, *sql.DB) error) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()
	return fn(ctx, db)
}
