// Package platform holds the frontend-independent glue between a running game
// and its side effects: audio cues and persistence.
package platform

import (
	"github.com/vovakirdan/factor-run/internal/core"
	"github.com/vovakirdan/factor-run/internal/storage"
)

// Store is the persistence surface the recorder needs.
// *storage.Store satisfies it.
type Store interface {
	SaveScore(gameID string, score, level int) (int64, error)
	SaveBattle(b storage.BattleRecord) (int64, error)
	BestScore(gameID string) (int, error)
	SetBestScore(gameID string, score int) error
}

// CuePlayer receives the cue events of each step.
type CuePlayer interface {
	Play(e core.Event)
}

// Recorder applies the side effects of step results for one game.
// Store and player may be nil; the recorder then skips that effect.
type Recorder struct {
	gameID     string
	store      Store
	player     CuePlayer
	best       int
	scoreSaved bool
	lastErr    error
	unseen     bool
}

// NewRecorder creates a recorder and loads the persisted best score.
func NewRecorder(gameID string, store Store, player CuePlayer) *Recorder {
	r := &Recorder{
		gameID: gameID,
		store:  store,
		player: player,
	}
	if store != nil {
		best, err := store.BestScore(gameID)
		if err != nil {
			r.note(err)
		} else {
			r.best = best
		}
	}
	return r
}

// Best returns the best score seen so far.
func (r *Recorder) Best() int {
	return r.best
}

// Err returns the most recent persistence error, if any.
func (r *Recorder) Err() error {
	return r.lastErr
}

// TakeErr returns a persistence error not yet reported by TakeErr, or nil.
// Frontends call it after each step to tell the player that saving failed.
func (r *Recorder) TakeErr() error {
	if !r.unseen {
		return nil
	}
	r.unseen = false
	return r.lastErr
}

// Record handles one step result.
func (r *Recorder) Record(res core.StepResult) {
	if r.player != nil {
		for _, e := range res.Events {
			r.player.Play(e)
		}
	}

	if res.State.Score > r.best {
		r.best = res.State.Score
		if r.store != nil {
			r.raiseBest()
		}
	}

	if b := res.Battle; b != nil && r.store != nil {
		_, err := r.store.SaveBattle(storage.BattleRecord{
			GameID:      r.gameID,
			Level:       b.Level,
			PlayerCount: b.PlayerCount,
			EnemyCount:  b.EnemyCount,
			Outcome:     b.Outcome,
			Clashes:     b.Clashes,
			BallsLeft:   b.BallsLeft,
			EnemiesLeft: b.EnemiesLeft,
			Score:       b.Score,
		})
		r.note(err)
	}

	// One score row per finished run.
	if !res.State.GameOver {
		r.scoreSaved = false
		return
	}
	if r.scoreSaved {
		return
	}
	r.scoreSaved = true
	if res.State.Score > 0 && r.store != nil {
		_, err := r.store.SaveScore(r.gameID, res.State.Score, res.State.Level)
		r.note(err)
	}
}

// raiseBest writes the best score and picks up a higher one stored by
// another session sharing the database.
func (r *Recorder) raiseBest() {
	if err := r.store.SetBestScore(r.gameID, r.best); err != nil {
		r.note(err)
		return
	}
	stored, err := r.store.BestScore(r.gameID)
	if err != nil {
		r.note(err)
		return
	}
	r.best = max(r.best, stored)
}

func (r *Recorder) note(err error) {
	if err != nil {
		r.lastErr = err
		r.unseen = true
	}
}
