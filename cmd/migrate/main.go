package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	"cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	instance "cloud.google.com/go/spanner/admin/instance/apiv1"
	"cloud.google.com/go/spanner/admin/instance/apiv1/instancepb"
	"github.com/joho/godotenv"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/procat-variants/internal/pkg/config"
	"github.com/light-bringer/procat-variants/internal/pkg/logger"
)

// migrator bootstraps the instance and database, then applies DDL files.
type migrator struct {
	db       config.DatabasePath
	dir      string
	emulator bool
	log      *logger.Logger
}

func main() {
	log := logger.New(logger.Options{ServiceName: "migrate"})
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}
	log = logger.New(logger.Options{
		ServiceName: "migrate",
		Level:       logger.ParseLevel(cfg.LogLevel),
		Format:      cfg.LogFormat,
	})

	dbName := flag.String("database", cfg.SpannerDB, "Spanner database (format: projects/PROJECT/instances/INSTANCE/databases/DATABASE)")
	dir := flag.String("migrations", "migrations", "Directory containing migration SQL files")
	flag.Parse()

	ctx := context.Background()
	db, err := config.ParseDatabasePath(*dbName)
	if err != nil {
		log.Error(ctx, "invalid database", err)
		os.Exit(2)
	}

	m := &migrator{
		db:       db,
		dir:      *dir,
		emulator: os.Getenv("SPANNER_EMULATOR_HOST") != "",
		log:      log,
	}
	ctx = log.WithFields(ctx, map[string]any{
		"database": db.String(),
		"emulator": m.emulator,
	})

	if err := m.run(ctx); err != nil {
		log.Error(ctx, "migration failed", err)
		os.Exit(1)
	}
	log.Info(ctx, "migrations completed")
}

func (m *migrator) run(ctx context.Context) error {
	files, err := migrationFiles(m.dir)
	if err != nil {
		return err
	}

	if m.emulator {
		if err := m.ensureInstance(ctx); err != nil {
			return fmt.Errorf("failed to ensure instance: %w", err)
		}
	}

	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create admin client: %w", err)
	}
	defer admin.Close()

	if err := m.ensureDatabase(ctx, admin); err != nil {
		return fmt.Errorf("failed to ensure database: %w", err)
	}
	return m.apply(ctx, admin, files)
}

// ensureInstance creates the emulator instance on first run. Real instances
// are provisioned outside this tool.
func (m *migrator) ensureInstance(ctx context.Context) error {
	admin, err := instance.NewInstanceAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create instance admin client: %w", err)
	}
	defer admin.Close()

	_, err = admin.GetInstance(ctx, &instancepb.GetInstanceRequest{Name: m.db.InstanceName()})
	switch status.Code(err) {
	case codes.OK:
		return nil
	case codes.NotFound:
	default:
		return fmt.Errorf("failed to get instance: %w", err)
	}

	m.log.Info(ctx, "creating instance")
	op, err := admin.CreateInstance(ctx, &instancepb.CreateInstanceRequest{
		Parent:     m.db.ProjectName(),
		InstanceId: m.db.Instance,
		Instance: &instancepb.Instance{
			Config:      m.db.ProjectName() + "/instanceConfigs/emulator-config",
			DisplayName: m.db.Instance,
			NodeCount:   1,
		},
	})
	if status.Code(err) == codes.AlreadyExists {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create instance: %w", err)
	}
	if _, err := op.Wait(ctx); err != nil && status.Code(err) != codes.AlreadyExists {
		return fmt.Errorf("failed to wait for instance: %w", err)
	}
	return nil
}

func (m *migrator) ensureDatabase(ctx context.Context, admin *database.DatabaseAdminClient) error {
	_, err := admin.GetDatabase(ctx, &databasepb.GetDatabaseRequest{Name: m.db.String()})
	switch status.Code(err) {
	case codes.OK:
		return nil
	case codes.NotFound:
	default:
		return fmt.Errorf("failed to get database: %w", err)
	}

	m.log.Info(ctx, "creating database")
	op, err := admin.CreateDatabase(ctx, &databasepb.CreateDatabaseRequest{
		Parent:          m.db.InstanceName(),
		CreateStatement: fmt.Sprintf("CREATE DATABASE `%s`", m.db.Database),
	})
	if status.Code(err) == codes.AlreadyExists {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	if _, err := op.Wait(ctx); err != nil {
		return fmt.Errorf("failed to wait for database: %w", err)
	}
	return nil
}

// apply runs each file as one DDL batch, in order. Statements are
// IF NOT EXISTS, so re-running a file is harmless.
func (m *migrator) apply(ctx context.Context, admin *database.DatabaseAdminClient, files []string) error {
	for _, file := range files {
		fileCtx := m.log.WithField(ctx, "migration", filepath.Base(file))

		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}
		statements := splitDDLStatements(string(content))
		if len(statements) == 0 {
			m.log.Warn(fileCtx, "migration has no statements")
			continue
		}

		op, err := admin.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
			Database:   m.db.String(),
			Statements: statements,
		})
		if err != nil {
			return fmt.Errorf("failed to start DDL for %s: %w", filepath.Base(file), err)
		}
		if err := op.Wait(ctx); err != nil {
			return fmt.Errorf("failed to apply DDL for %s: %w", filepath.Base(file), err)
		}
		m.log.Info(m.log.WithField(fileCtx, "statements", len(statements)), "migration applied")
	}
	return nil
}

// migrationFiles lists dir/*.sql in file-name order.
func migrationFiles(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return nil, fmt.Errorf("failed to list migrations: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no migrations found in %s", dir)
	}
	sort.Strings(files)
	return files, nil
}

// splitDDLStatements drops "--" comments (whole-line or trailing) and blank
// lines, then splits on semicolons.
func splitDDLStatements(content string) []string {
	var b strings.Builder
	for _, line := range strings.Split(content, "\n") {
		if i := strings.Index(line, "--"); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	var statements []string
	for _, stmt := range strings.Split(b.String(), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			statements = append(statements, stmt)
		}
	}
	return statements
}
