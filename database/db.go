package database

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps *sql.DB together with the driver name so that query placeholders
// can be rewritten for PostgreSQL and insert ids fetched the right way.
type DB struct {
	*sql.DB
	driver string
}

func (d *DB) Driver() string {
	return d.driver
}

// Open connects to the configured database. driver is "sqlite3" or
// "postgres"; dsn is the sqlite file path (":memory:" for tests) or the
// postgres connection string.
func Open(driver, dsn string) (*DB, error) {
	switch driver {
	case "sqlite3":
		return openSQLite(dsn)
	case "postgres":
		return openPostgres(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

func openSQLite(path string) (*DB, error) {
	if path == "" {
		path = "./finledger.db"
	}

	// Connection parameters to better handle concurrent requests
	dsn := path + "?_journal=WAL&_busy_timeout=10000&_fk=1"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Minute * 5)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &DB{DB: db, driver: "sqlite3"}, nil
}

// Rebind rewrites "?" placeholders to "$1", "$2", ... when running against
// PostgreSQL. Queries throughout the repo are written with "?".
func (d *DB) Rebind(query string) string {
	if d.driver != "postgres" {
		return query
	}

	var b strings.Builder
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		} else {
			b.WriteByte(query[i])
		}
	}
	return b.String()
}

// InsertReturningID runs an INSERT and returns the generated row id.
// lib/pq does not support LastInsertId, so postgres uses RETURNING.
func (d *DB) InsertReturningID(query string, args ...interface{}) (int64, error) {
	if d.driver == "postgres" {
		var id int64
		err := d.QueryRow(d.Rebind(query+" RETURNING id"), args...).Scan(&id)
		return id, err
	}

	res, err := d.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
