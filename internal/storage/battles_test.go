package storage

import "testing"

func TestBattleLog(t *testing.T) {
	store := openTestStore(t)

	records := []BattleRecord{
		{GameID: "factorrun", Level: 1, PlayerCount: 8, EnemyCount: 5, Outcome: "win", Clashes: 5, BallsLeft: 8, Score: 40},
		{GameID: "factorrun", Level: 2, PlayerCount: 4, EnemyCount: 4, Outcome: "draw", Clashes: 4, Score: 60},
		{GameID: "factorrun", Level: 2, PlayerCount: 3, EnemyCount: 9, Outcome: "lose", Clashes: 3, EnemiesLeft: 9, Score: 70},
		{GameID: "other", Level: 1, PlayerCount: 1, EnemyCount: 2, Outcome: "lose", Clashes: 1},
	}
	for _, r := range records {
		if _, err := store.SaveBattle(r); err != nil {
			t.Fatalf("SaveBattle() failed: %v", err)
		}
	}

	recent, err := store.RecentBattles("factorrun", 10)
	if err != nil {
		t.Fatalf("RecentBattles() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 battles, got %d", len(recent))
	}

	// Newest first
	latest := recent[0]
	if latest.Outcome != "lose" || latest.PlayerCount != 3 || latest.EnemyCount != 9 || latest.EnemiesLeft != 9 || latest.Score != 70 {
		t.Errorf("unexpected latest battle %+v", latest)
	}
	if recent[2].Outcome != "win" || recent[2].BallsLeft != 8 {
		t.Errorf("unexpected oldest battle %+v", recent[2])
	}

	limited, _ := store.RecentBattles("factorrun", 1)
	if len(limited) != 1 {
		t.Errorf("limit 1 returned %d battles", len(limited))
	}

	stats, err := store.GetBattleStats("factorrun")
	if err != nil {
		t.Fatalf("GetBattleStats() failed: %v", err)
	}
	if stats.Wins != 1 || stats.Losses != 1 || stats.Draws != 1 || stats.Total() != 3 {
		t.Errorf("unexpected battle stats %+v", stats)
	}
}

func TestBattleStatsEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetBattleStats("factorrun")
	if err != nil || stats.Total() != 0 {
		t.Errorf("empty stats = %+v, %v", stats, err)
	}
}
