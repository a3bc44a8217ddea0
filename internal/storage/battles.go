package storage

import (
	"fmt"
	"time"
)

// BattleRecord is one entry of the battle log.
type BattleRecord struct {
	ID          int64
	GameID      string
	Level       int
	PlayerCount int
	EnemyCount  int
	Outcome     string // "win", "lose" or "draw"
	Clashes     int
	BallsLeft   int
	EnemiesLeft int
	Score       int
	CreatedAt   time.Time
}

// SaveBattle appends a battle to the log.
// Returns the ID of the inserted record.
func (s *Store) SaveBattle(b BattleRecord) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO battles
		 (game_id, level, player_count, enemy_count, outcome, clashes, balls_left, enemies_left, score)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.GameID,
		b.Level,
		b.PlayerCount,
		b.EnemyCount,
		b.Outcome,
		b.Clashes,
		b.BallsLeft,
		b.EnemiesLeft,
		b.Score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save battle: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentBattles returns the latest battles for a game, newest first.
func (s *Store) RecentBattles(gameID string, limit int) ([]BattleRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, level, player_count, enemy_count, outcome,
		        clashes, balls_left, enemies_left, score, created_at
		 FROM battles
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query battles: %w", err)
	}
	defer rows.Close()

	var results []BattleRecord
	for rows.Next() {
		var b BattleRecord
		var createdAt any

		if err := rows.Scan(
			&b.ID,
			&b.GameID,
			&b.Level,
			&b.PlayerCount,
			&b.EnemyCount,
			&b.Outcome,
			&b.Clashes,
			&b.BallsLeft,
			&b.EnemiesLeft,
			&b.Score,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		b.CreatedAt = parseTime(createdAt)

		results = append(results, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// BattleStats counts battle outcomes.
type BattleStats struct {
	Wins   int
	Losses int
	Draws  int
}

// Total returns the number of battles fought.
func (b BattleStats) Total() int {
	return b.Wins + b.Losses + b.Draws
}

// GetBattleStats aggregates outcomes for a game.
func (s *Store) GetBattleStats(gameID string) (BattleStats, error) {
	var stats BattleStats
	err := s.db.QueryRow(
		`SELECT
		   COALESCE(SUM(CASE WHEN outcome = 'win' THEN 1 ELSE 0 END), 0),
		   COALESCE(SUM(CASE WHEN outcome = 'lose' THEN 1 ELSE 0 END), 0),
		   COALESCE(SUM(CASE WHEN outcome = 'draw' THEN 1 ELSE 0 END), 0)
		 FROM battles WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Wins, &stats.Losses, &stats.Draws)
	if err != nil {
		return BattleStats{}, fmt.Errorf("storage: cannot get battle stats: %w", err)
	}
	return stats, nil
}
