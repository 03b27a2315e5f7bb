package main

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"time"

	_ "github.com/lib/pq"
)

var db *sql.DB

// InitDB opens the optional command-audit database. The bot runs fine
// without it; every audit helper is a no-op while db is nil.
func InitDB() error {
	password := os.Getenv("DB_PASSWORD")
	if password == "" {
		return fmt.Errorf("DB_PASSWORD is not set")
	}
	// Build a URL-style connection string so passwords with spaces/special chars work
	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword("timestamp_bot", password),
		Host:   "localhost",
		Path:   "timestamp_bot",
	}
	q := u.Query()
	q.Set("sslmode", "disable")
	u.RawQuery = q.Encode()

	d, err := sql.Open("postgres", u.String())
	if err != nil {
		return err
	}
	// set some sensible defaults
	d.SetConnMaxIdleTime(5 * time.Minute)
	d.SetMaxOpenConns(10)
	if err := d.Ping(); err != nil {
		return err
	}
	db = d

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS users (
        discord_user_id TEXT PRIMARY KEY,
        username TEXT,
        created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
        updated_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
    )`)
	if err != nil {
		return err
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS commands (
        id BIGSERIAL PRIMARY KEY,
        discord_user_id TEXT NOT NULL,
        command_text TEXT NOT NULL,
        created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
    )`)
	return err
}

// InsertCommand logs a command invocation for usage auditing.
func InsertCommand(discordUserID, username, commandText string) error {
	if db == nil {
		return nil
	}
	// ensure user record exists/updated
	if err := upsertUser(discordUserID, username); err != nil {
		return err
	}
	_, err := db.Exec("INSERT INTO commands (discord_user_id, command_text) VALUES ($1,$2)", discordUserID, commandText)
	return err
}

func upsertUser(discordUserID, username string) error {
	if db == nil {
		return nil
	}
	_, err := db.Exec(`INSERT INTO users (discord_user_id, username) VALUES ($1,$2)
        ON CONFLICT (discord_user_id) DO UPDATE SET username = EXCLUDED.username, updated_at = CURRENT_TIMESTAMP`, discordUserID, username)
	return err
}
