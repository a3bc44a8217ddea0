package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
)

// SettingSound is the key of the sound on/off setting.
const SettingSound = "sound"

// bestScoreKey returns the settings key holding a game's best score.
func bestScoreKey(gameID string) string {
	return "best_score:" + gameID
}

// Setting returns the value stored under key.
// The second result is false when the key is absent.
func (s *Store) Setting(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read setting %q: %w", key, err)
	}
	return value, true, nil
}

// SetSetting stores value under key, replacing any previous value.
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write setting %q: %w", key, err)
	}
	return nil
}

// BestScore returns the stored best score, or 0 when none is stored.
func (s *Store) BestScore(gameID string) (int, error) {
	value, ok, err := s.Setting(bestScoreKey(gameID))
	if err != nil || !ok {
		return 0, err
	}
	best, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("storage: corrupt best score %q: %w", value, err)
	}
	return best, nil
}

// SetBestScore raises the stored best score to score. A lower score leaves
// the stored value unchanged, so sessions sharing one database never undo
// each other's records.
func (s *Store) SetBestScore(gameID string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
		 WHERE CAST(settings.value AS INTEGER) < CAST(excluded.value AS INTEGER)`,
		bestScoreKey(gameID), strconv.Itoa(score),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write best score: %w", err)
	}
	return nil
}

// SoundEnabled returns the persisted sound setting. Sound is on by default.
func (s *Store) SoundEnabled() (bool, error) {
	value, ok, err := s.Setting(SettingSound)
	if err != nil || !ok {
		return true, err
	}
	return value != "off", nil
}

// SetSoundEnabled persists the sound setting.
func (s *Store) SetSoundEnabled(on bool) error {
	value := "off"
	if on {
		value = "on"
	}
	return s.SetSetting(SettingSound, value)
}
