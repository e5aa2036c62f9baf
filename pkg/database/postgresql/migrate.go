package postgresql

import (
	"database/sql"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// RunMigrations выполняет все миграции из папки ./migrations
func RunMigrations(dsn string) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("не удалось открыть соединение для миграций: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("не удалось установить диалект goose: %v", err)
	}

	migrationDir := "./migrations"

	log.Printf("Выполняются миграции из %s", migrationDir)
	if err := goose.Up(db, migrationDir); err != nil {
		log.Fatalf("не удалось выполнить миграции: %v", err)
	}
}
