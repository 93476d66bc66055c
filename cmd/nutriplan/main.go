// Package main provides the nutriplan binary entry point.
// Nutriplan is a terminal client for the NutriPlan nutrition-plan
// management service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	apiclient "github.com/christianalma1904/nutriplan-cli/internal/client/api"
	"github.com/christianalma1904/nutriplan-cli/internal/client/cli"
	"github.com/christianalma1904/nutriplan-cli/internal/client/iocli"
	"github.com/christianalma1904/nutriplan-cli/internal/client/session"
	"github.com/christianalma1904/nutriplan-cli/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// commandFn — команда без аргументов
type commandFn func(*cli.Cli, context.Context) error

// idCommandFn — команда над конкретной записью
type idCommandFn func(*cli.Cli, context.Context, int64) error

func rootCmd() *cobra.Command {
	var (
		serverURL string
		dbPath    string
	)

	cmd := &cobra.Command{
		Use:   "nutriplan",
		Short: "Terminal client for the NutriPlan service",
		Long: `Nutriplan is a terminal client for the NutriPlan nutrition-plan
management service: login/registration, a dashboard, and CRUD commands
for plans, diets, patients, nutritionists, payments and weight tracking.

The session token is stored in a local database and survives restarts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&serverURL, "server",
		envOr("NUTRIPLAN_SERVER_URL", "http://localhost:3000"), "NutriPlan API base URL")
	cmd.PersistentFlags().StringVar(&dbPath, "db",
		envOr("NUTRIPLAN_DB", "nutriplan-client.db"), "Path to local session database")

	// withClient собирает клиент на время одной команды:
	// открывает локальную БД, восстанавливает сессию, закрывает БД после
	withClient := func(fn commandFn) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd.Context(), serverURL, dbPath, fn)
		}
	}

	withRecordID := func(fn idCommandFn) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			return runCommand(cmd.Context(), serverURL, dbPath,
				func(c *cli.Cli, ctx context.Context) error {
					return fn(c, ctx, id)
				})
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "register",
			Short: "Register a new user",
			RunE:  withClient((*cli.Cli).RunRegister),
		},
		&cobra.Command{
			Use:   "login",
			Short: "Login to the server",
			RunE:  withClient((*cli.Cli).RunLogin),
		},
		&cobra.Command{
			Use:   "logout",
			Short: "Delete the local session",
			RunE:  withClient((*cli.Cli).RunLogout),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show authentication status",
			RunE:  withClient((*cli.Cli).RunStatus),
		},
		&cobra.Command{
			Use:   "dashboard",
			Short: "Show dashboard data",
			RunE:  withClient((*cli.Cli).RunDashboard),
		},
		resourceCmd("planes", "Manage nutrition plans", resourceFns{
			list: (*cli.Cli).RunPlanesList, add: (*cli.Cli).RunPlanesAdd,
			update: (*cli.Cli).RunPlanesUpdate, del: (*cli.Cli).RunPlanesDelete,
		}, withClient, withRecordID),
		resourceCmd("dietas", "Manage diets", resourceFns{
			list: (*cli.Cli).RunDietasList, add: (*cli.Cli).RunDietasAdd,
			update: (*cli.Cli).RunDietasUpdate, del: (*cli.Cli).RunDietasDelete,
		}, withClient, withRecordID),
		resourceCmd("pacientes", "Manage patients", resourceFns{
			list: (*cli.Cli).RunPacientesList, add: (*cli.Cli).RunPacientesAdd,
			update: (*cli.Cli).RunPacientesUpdate, del: (*cli.Cli).RunPacientesDelete,
		}, withClient, withRecordID),
		resourceCmd("nutricionistas", "Manage nutritionists", resourceFns{
			list: (*cli.Cli).RunNutricionistasList, add: (*cli.Cli).RunNutricionistasAdd,
			update: (*cli.Cli).RunNutricionistasUpdate, del: (*cli.Cli).RunNutricionistasDelete,
		}, withClient, withRecordID),
		resourceCmd("pagos", "Manage payments", resourceFns{
			list: (*cli.Cli).RunPagosList, add: (*cli.Cli).RunPagosAdd,
			update: (*cli.Cli).RunPagosUpdate, del: (*cli.Cli).RunPagosDelete,
		}, withClient, withRecordID),
		resourceCmd("seguimiento", "Manage weight tracking entries", resourceFns{
			list: (*cli.Cli).RunSeguimientoList, add: (*cli.Cli).RunSeguimientoAdd,
			update: (*cli.Cli).RunSeguimientoUpdate, del: (*cli.Cli).RunSeguimientoDelete,
		}, withClient, withRecordID),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Printf("NutriPlan Client\n")
				fmt.Printf("Version:    %s\n", Version)
				fmt.Printf("Build Date: %s\n", BuildDate)
				fmt.Printf("Git Commit: %s\n", GitCommit)
			},
		},
	)

	return cmd
}

// resourceFns — четыре CRUD операции одной группы экранов
type resourceFns struct {
	list   commandFn
	add    commandFn
	update idCommandFn
	del    idCommandFn
}

func resourceCmd(
	use, short string,
	fns resourceFns,
	withClient func(commandFn) func(*cobra.Command, []string) error,
	withRecordID func(idCommandFn) func(*cobra.Command, []string) error,
) *cobra.Command {
	group := &cobra.Command{Use: use, Short: short}

	group.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List " + use,
			RunE:  withClient(fns.list),
		},
		&cobra.Command{
			Use:   "add",
			Short: "Add a new record",
			RunE:  withClient(fns.add),
		},
		&cobra.Command{
			Use:   "update <id>",
			Short: "Update a record",
			Args:  cobra.ExactArgs(1),
			RunE:  withRecordID(fns.update),
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a record",
			Args:  cobra.ExactArgs(1),
			RunE:  withRecordID(fns.del),
		},
	)

	return group
}

// runCommand собирает зависимости и выполняет команду
func runCommand(ctx context.Context, serverURL, dbPath string, fn commandFn) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// Открываем локальное хранилище сессии
	boltStorage, err := boltdb.New(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open local database: %w", err)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	// Восстанавливаем сессию; истекший или испорченный токен
	// просто оставляет нас неавторизованными
	sess := session.NewStore(boltStorage)
	if err := sess.Initialize(ctx); err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}

	apiClient := apiclient.NewClient(serverURL, sess)
	c := cli.New(apiClient, sess, iocli.NewStdio())

	return fn(c, ctx)
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
