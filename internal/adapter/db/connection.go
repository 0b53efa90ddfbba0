package db

import (
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"eastask/internal/config"
)

// ConnectDB opens and pings the MySQL pool. parseTime is required so
// DATETIME columns scan into time.Time; multiStatements lets migration
// files run as a single Exec.
func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	params := conf.DbParams
	if params == "" {
		params = "parseTime=true&multiStatements=true"
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s",
		conf.DbUser, conf.DbPassword, conf.DbHost, conf.DbPort, conf.DbName, params)

	pool, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}

	pool.SetMaxOpenConns(25)
	pool.SetMaxIdleConns(5)
	pool.SetConnMaxLifetime(5 * time.Minute)

	return pool, nil
}
