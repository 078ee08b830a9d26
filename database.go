// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"unitcalc/internal/errors"
)

type HistoryEntry struct {
	ID        int64
	From      string
	To        string
	Amount    string
	Result    string
	CreatedAt time.Time
}

// History is the SQLite log of past conversions
type History struct {
	db *sql.DB
}

// openHistory opens (creating if needed) the history database at path
func openHistory(path string) (*History, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrap(errors.TypeStorage, err, "failed to create data directory")
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeStorage, err, "failed to open database").WithContext("path", path)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS conversions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		from_unit TEXT NOT NULL,
		to_unit TEXT NOT NULL,
		amount TEXT NOT NULL,
		result TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_units ON conversions(from_unit, to_unit);
	`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(errors.TypeStorage, err, "failed to create schema").WithContext("path", path)
	}

	return &History{db: db}, nil
}

func (h *History) Close() error {
	return h.db.Close()
}

// record saves one conversion
func (h *History) record(from, to, amount, result string) error {
	query := `
	INSERT INTO conversions (from_unit, to_unit, amount, result, created_at)
	VALUES (?, ?, ?, ?, ?)
	`

	if _, err := h.db.Exec(query, from, to, amount, result, time.Now().UTC()); err != nil {
		return errors.Wrap(errors.TypeStorage, err, "failed to save conversion")
	}
	return nil
}

// recent returns up to limit conversions, newest first
func (h *History) recent(limit int) ([]HistoryEntry, error) {
	query := `
	SELECT id, from_unit, to_unit, amount, result, created_at
	FROM conversions
	ORDER BY id DESC
	LIMIT ?
	`

	rows, err := h.db.Query(query, limit)
	if err != nil {
		return nil, errors.Wrap(errors.TypeStorage, err, "failed to read history")
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var entry HistoryEntry
		if err := rows.Scan(&entry.ID, &entry.From, &entry.To, &entry.Amount, &entry.Result, &entry.CreatedAt); err != nil {
			return nil, errors.Wrap(errors.TypeStorage, err, "failed to read history")
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.TypeStorage, err, "failed to read history")
	}

	return entries, nil
}
