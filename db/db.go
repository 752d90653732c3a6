package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/iamkimedel22/SAVR/config"

	_ "github.com/lib/pq"
)

var DB *sql.DB

// InitDB opens the connection pool and verifies connectivity. The pool
// is bounded; when every connection is busy further work queues on the
// pool instead of failing fast.
func InitDB(cfg config.DBConfig) error {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	var err error
	DB, err = sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("error opening database: %v", err)
	}

	DB.SetMaxOpenConns(cfg.MaxOpenConns)
	DB.SetMaxIdleConns(cfg.MaxOpenConns / 2)
	DB.SetConnMaxLifetime(30 * time.Minute)

	if err := DB.Ping(); err != nil {
		return fmt.Errorf("error connecting to the database: %v", err)
	}
	return nil
}

// CloseDB closes the database connection pool.
func CloseDB() {
	if DB != nil {
		DB.Close()
	}
}
