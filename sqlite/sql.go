package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/hoshinonyaruko/snake-world/structs"
)

const createSessionsTableSQL = `
CREATE TABLE IF NOT EXISTS Sessions (
    SessionID TEXT PRIMARY KEY,
    BoardSize INTEGER,
    Seed TEXT,
    CreatedAt INTEGER
);
`

const createResultsTableSQL = `
CREATE TABLE IF NOT EXISTS Results (
    SessionID TEXT PRIMARY KEY,
    BoardSize INTEGER,
    Status TEXT,
    Reason TEXT,
    Points INTEGER,
    Stats TEXT,
    FinishedAt INTEGER
);
`

const createResultsIndexSQL = `
CREATE INDEX IF NOT EXISTS idx_results_points ON Results (Points DESC);
`

func executeSQL(db *sql.DB, sqlStatement string) {
	_, err := db.Exec(sqlStatement)
	if err != nil {
		log.Fatalf("Error executing SQL statement: %s\n%s", sqlStatement, err)
	}
}

func InitializeDatabase(db *sql.DB) {
	executeSQL(db, createSessionsTableSQL)
	executeSQL(db, createResultsTableSQL)
	executeSQL(db, createResultsIndexSQL)
}

// InsertSession 记录新开的一局
func InsertSession(db *sql.DB, sessionID string, boardSize int, seed string, createdAt time.Time) error {
	_, err := db.Exec("INSERT INTO Sessions (SessionID, BoardSize, Seed, CreatedAt) VALUES (?, ?, ?, ?)",
		sessionID, boardSize, seed, createdAt.Unix())
	if err != nil {
		return fmt.Errorf("insert session %s: %w", sessionID, err)
	}
	return nil
}

// SaveRecord writes the final result of a game. Only the outcome is stored;
// the world itself is never written.
func SaveRecord(db *sql.DB, rec *structs.Record) error {
	statsData, err := json.Marshal(rec.Stats)
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}

	// 开启事务
	tx, err := db.Begin()
	if err != nil {
		return err
	}

	_, err = tx.Exec("INSERT OR REPLACE INTO Results (SessionID, BoardSize, Status, Reason, Points, Stats, FinishedAt) VALUES (?, ?, ?, ?, ?, ?, ?)",
		rec.SessionID, rec.Size, rec.Status, rec.Reason, rec.Points, string(statsData), rec.FinishedAt.Unix())
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("save result %s: %w", rec.SessionID, err)
	}

	// 会话可能是在数据库之外创建的, 补一条
	_, err = tx.Exec("INSERT OR IGNORE INTO Sessions (SessionID, BoardSize, Seed, CreatedAt) VALUES (?, ?, '', ?)",
		rec.SessionID, rec.Size, rec.FinishedAt.Unix())
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("save result %s: %w", rec.SessionID, err)
	}

	// 提交事务
	return tx.Commit()
}

// TopRecords 按分数从高到低返回排行榜
func TopRecords(db *sql.DB, limit int) ([]structs.Record, error) {
	rows, err := db.Query("SELECT SessionID, BoardSize, Status, Reason, Points, Stats, FinishedAt FROM Results ORDER BY Points DESC, FinishedAt ASC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	records := []structs.Record{}
	for rows.Next() {
		var rec structs.Record
		var statsData string
		var finishedAt int64
		if err := rows.Scan(&rec.SessionID, &rec.Size, &rec.Status, &rec.Reason, &rec.Points, &statsData, &finishedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(statsData), &rec.Stats); err != nil {
			return nil, fmt.Errorf("decode stats of %s: %w", rec.SessionID, err)
		}
		rec.FinishedAt = time.Unix(finishedAt, 0).UTC()
		records = append(records, rec)
	}
	return records, rows.Err()
}

// DeleteSession removes a session and its result.
func DeleteSession(db *sql.DB, sessionID string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM Results WHERE SessionID = ?", sessionID); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.Exec("DELETE FROM Sessions WHERE SessionID = ?", sessionID); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
