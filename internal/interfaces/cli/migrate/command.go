package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"lotledger/internal/infrastructure/config"
	"lotledger/internal/infrastructure/database"
	"lotledger/internal/infrastructure/persistence/seeds"
	"lotledger/internal/shared/logger"
)

var (
	env   string
	name  string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations: apply, rollback, inspect status, and create new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
		newSeedAdminCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.MarkFlagRequired("name")

	return cmd
}

func newSeedAdminCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-admin",
		Short: "Seed the default admin account",
		Long:  `Create the default ADMIN account if no users exist yet. The password must be changed after first login.`,
		RunE:  runSeedAdmin,
	}
}

func initEnv() (string, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return "", fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return "", fmt.Errorf("failed to initialize database: %w", err)
	}

	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		return "", fmt.Errorf("failed to resolve migration scripts path: %w", err)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		return "", fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return scriptsPath, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	scriptsPath, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	sqlDB, err := database.Get().DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if err := goose.Up(sqlDB, scriptsPath); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	logger.Info("migrations applied")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	scriptsPath, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	sqlDB, err := database.Get().DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	for i := 0; i < steps; i++ {
		if err := goose.Down(sqlDB, scriptsPath); err != nil {
			return fmt.Errorf("failed to rollback migration: %w", err)
		}
	}

	logger.Info("migrations rolled back", "steps", steps)
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	scriptsPath, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	sqlDB, err := database.Get().DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if err := goose.Status(sqlDB, scriptsPath); err != nil {
		return fmt.Errorf("failed to read migration status: %w", err)
	}

	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	scriptsPath, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	sqlDB, err := database.Get().DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if err := goose.Create(sqlDB, scriptsPath, name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	logger.Info("migration created", "name", name)
	return nil
}

func runSeedAdmin(cmd *cobra.Command, args []string) error {
	if _, err := initEnv(); err != nil {
		return err
	}
	defer database.Close()

	cfg := config.Get()
	if err := seeds.SeedDefaultAdmin(database.Get(), cfg.Auth.Password.BcryptCost); err != nil {
		return fmt.Errorf("failed to seed default admin: %w", err)
	}

	logger.Info("default admin ensured")
	return nil
}
