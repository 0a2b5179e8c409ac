package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"

	"github.com/Isaiahshap/pulse/internal/config"
)

func main() {
	zl, _ := zap.NewDevelopment()
	defer zl.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		zl.Fatal("failed to load config", zap.Error(err))
	}
	if cfg.DBUrl == "" {
		zl.Fatal("DB_URL is required to run migrations; without it the server uses the embedded contact store")
	}

	migrationsPath, err := findMigrations()
	if err != nil {
		zl.Fatal("migrations directory not found", zap.Error(err))
	}

	m, err := migrate.New("file://"+migrationsPath, cfg.DBUrl)
	if err != nil {
		zl.Fatal("failed to init migrate", zap.Error(err))
	}
	defer m.Close()

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	case "version":
		version, dirty, verr := m.Version()
		if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
			zl.Fatal("failed to read version", zap.Error(verr))
		}
		zl.Info("migration version", zap.Uint("version", version), zap.Bool("dirty", dirty))
		return
	default:
		zl.Fatal("unknown command, expected up, down or version", zap.String("command", cmd))
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		zl.Fatal("migration failed", zap.String("command", cmd), zap.Error(err))
	}
	zl.Info("migration complete", zap.String("command", cmd))
}

// findMigrations walks up from the working directory and the executable.
func findMigrations() (string, error) {
	var candidates []string

	if cwd, err := os.Getwd(); err == nil {
		current := cwd
		for i := 0; i < 6; i++ {
			candidates = append(candidates, filepath.Join(current, "migrations"))
			parent := filepath.Dir(current)
			if parent == current {
				break
			}
			current = parent
		}
	}
	if exePath, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exePath)
		candidates = append(candidates,
			filepath.Join(exeDir, "migrations"),
			filepath.Join(exeDir, "..", "migrations"),
		)
	}

	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err == nil && info.IsDir() {
			return filepath.Abs(candidate)
		}
	}
	return "", os.ErrNotExist
}
