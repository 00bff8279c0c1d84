package db

import (
	"path/filepath"
	"testing"
)

func TestInitSQLite_CreatesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expense.sqlite")

	database, err := InitSQLite(path)
	if err != nil {
		t.Fatalf("InitSQLite returned error: %v", err)
	}
	defer database.Close()

	for _, table := range []string{"user", "expense"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`,
			table,
		).Scan(&name)
		if err != nil {
			t.Errorf("expected table %q to exist: %v", table, err)
		}
	}
}

func TestInitSQLite_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expense.sqlite")

	first, err := InitSQLite(path)
	if err != nil {
		t.Fatalf("first init: %v", err)
	}
	first.Close()

	second, err := InitSQLite(path)
	if err != nil {
		t.Fatalf("second init over an existing database: %v", err)
	}
	second.Close()
}

func TestInitSQLite_UniqueUsername(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expense.sqlite")

	database, err := InitSQLite(path)
	if err != nil {
		t.Fatalf("InitSQLite returned error: %v", err)
	}
	defer database.Close()

	if _, err := database.Exec(
		`INSERT INTO user (username, password) VALUES (?, ?)`, "alice", []byte("h"),
	); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if _, err := database.Exec(
		`INSERT INTO user (username, password) VALUES (?, ?)`, "alice", []byte("h"),
	); err == nil {
		t.Fatal("expected a unique-constraint violation for a duplicate username")
	}
}
