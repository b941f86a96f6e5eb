package main

import (
	"database/sql"
	"flag"
	"os"

	"github.com/caarlos0/env/v10"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Monirah1998/trivia-udacity/db"
	"github.com/Monirah1998/trivia-udacity/internal/config"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, reset, status or version")
		dir     = flag.String("dir", "", "Read migrations from this directory instead of the embedded set")
		envFile = flag.String("env-file", "configs/.env", "dotenv file loaded outside production")
	)
	flag.Parse()

	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(*envFile); err != nil {
			log.Warn().Err(err).Str("file", *envFile).Msg("could not load env file")
		}
	}

	var pg config.Postgres
	if err := env.ParseWithOptions(&pg, env.Options{RequiredIfNoDef: true}); err != nil {
		log.Fatal().Err(err).Msg("invalid postgres configuration")
	}

	migrationDir := db.MigrationsDir
	if *dir != "" {
		if _, err := os.Stat(*dir); err != nil {
			log.Fatal().Err(err).Str("dir", *dir).Msg("migration directory not readable")
		}
		migrationDir = *dir
		goose.SetBaseFS(nil)
	} else {
		goose.SetBaseFS(db.Migrations)
	}

	conn, err := sql.Open("pgx", pg.ConnString())
	if err != nil {
		log.Fatal().Err(err).Str("host", pg.Host).Int("port", pg.Port).Msg("failed to open database connection")
	}
	defer conn.Close()

	if err := conn.Ping(); err != nil {
		log.Fatal().Err(err).Msg("failed to ping database")
	}

	log.Info().
		Str("host", pg.Host).
		Int("port", pg.Port).
		Str("database", pg.Database).
		Str("migration_dir", migrationDir).
		Msg("connected to database")

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal().Err(err).Msg("failed to set goose dialect")
	}
	goose.SetTableName("goose_db_version")

	if err := run(*command, conn, migrationDir); err != nil {
		log.Fatal().Err(err).Str("command", *command).Msg("migration command failed")
	}
}

func run(command string, conn *sql.DB, dir string) error {
	switch command {
	case "up":
		if err := goose.Up(conn, dir); err != nil {
			return err
		}
		log.Info().Msg("migrations applied successfully")
	case "down":
		if err := goose.Down(conn, dir); err != nil {
			return err
		}
		log.Info().Msg("migration rolled back successfully")
	case "reset":
		if err := goose.Reset(conn, dir); err != nil {
			return err
		}
		log.Info().Msg("all migrations rolled back")
	case "status":
		return goose.Status(conn, dir)
	case "version":
		return goose.Version(conn, dir)
	default:
		log.Fatal().Str("command", command).Msg("unknown command. Use: up, down, reset, status or version")
	}
	return nil
}
