package storage

import (
	"fmt"
	"time"
)

// GameStats contains aggregated statistics for a game.
// PlaySeconds and LongestRun are in seconds; EndReasons counts runs by
// how they ended.
type GameStats struct {
	GameID      string
	GamesCount  int
	HighScore   int
	AvgScore    float64
	TotalScore  int64
	PlaySeconds float64
	LongestRun  float64
	EndReasons  map[string]int
	LastPlayed  time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID, EndReasons: make(map[string]int)}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0),
		        COALESCE(SUM(duration_secs), 0), COALESCE(MAX(duration_secs), 0), MAX(created_at)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore,
		&stats.PlaySeconds, &stats.LongestRun, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	rows, err := s.db.Query(
		`SELECT end_reason, COUNT(*) FROM scores
		 WHERE game_id = ? AND end_reason != ''
		 GROUP BY end_reason`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count end reasons: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var reason string
		var n int
		if err := rows.Scan(&reason, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan end reason: %w", err)
		}
		stats.EndReasons[reason] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// GetAllGamesStats retrieves statistics for all games that have been played.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(`SELECT DISTINCT game_id FROM scores ORDER BY game_id`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("storage: cannot scan game id: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	stats := make(map[string]*GameStats, len(ids))
	for _, id := range ids {
		gs, err := s.GetGameStats(id)
		if err != nil {
			return nil, err
		}
		stats[id] = gs
	}
	return stats, nil
}
