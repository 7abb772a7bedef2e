package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/SimonaRa20/BudgetManagementSystem/internal/auth"
	"github.com/SimonaRa20/BudgetManagementSystem/internal/db"
	"github.com/SimonaRa20/BudgetManagementSystem/internal/models"
	pgdb "github.com/SimonaRa20/BudgetManagementSystem/pkg/db"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "budgetctl",
		Short:         "Utility for managing the budget service database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newMigrateCommand())
	cmd.AddCommand(newSeedCommand())
	return cmd
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			dsn := os.Getenv("DB_DSN")
			if dsn == "" {
				return errors.New("DB_DSN is required")
			}

			pool, err := pgdb.Open(ctx, dsn)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := pgdb.Migrate(ctx, pool); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}

type seedFile struct {
	Accounts []struct {
		Name     string `yaml:"name"`
		Surname  string `yaml:"surname"`
		UserName string `yaml:"userName"`
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
		Role     string `yaml:"role"`
	} `yaml:"accounts"`
}

func newSeedCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create accounts listed in a YAML seed file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			dsn := os.Getenv("DB_DSN")
			if dsn == "" {
				return errors.New("DB_DSN is required")
			}
			salt := os.Getenv("PASSWORD_SALT")
			if salt == "" {
				return errors.New("PASSWORD_SALT is required")
			}

			raw, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			var seed seedFile
			if err := yaml.Unmarshal(raw, &seed); err != nil {
				return fmt.Errorf("parse seed file: %w", err)
			}

			hasher, err := auth.NewHasher(salt)
			if err != nil {
				return err
			}

			orm, err := db.Connect(ctx, dsn)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close(orm) }()

			for _, acct := range seed.Accounts {
				role := models.Role(acct.Role)
				if acct.Role == "" {
					role = models.RoleOwner
				}
				if !role.Valid() {
					return fmt.Errorf("invalid role %q for %s", acct.Role, acct.Email)
				}

				var count int64
				if err := orm.WithContext(ctx).Model(&models.User{}).
					Where("email = ?", acct.Email).
					Count(&count).Error; err != nil {
					return err
				}
				if count > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "skip %s: already exists\n", acct.Email)
					continue
				}

				user := models.User{
					ID:           uuid.New(),
					Name:         acct.Name,
					Surname:      acct.Surname,
					UserName:     acct.UserName,
					Email:        acct.Email,
					Role:         role,
					PasswordHash: hasher.Hash(acct.Password),
				}
				if err := orm.WithContext(ctx).Create(&user).Error; err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s)\n", acct.Email, role)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path to the YAML seed file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
