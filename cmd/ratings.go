package cmd

import (
	"fmt"

	"github.com/lvgk/csimpact/internal/model"
	"github.com/lvgk/csimpact/internal/score"
	"github.com/lvgk/csimpact/internal/storage"
)

// loadAndRate opens the store, loads everything, and runs the rating
// pipeline. The caller must Close the returned DB.
func loadAndRate() (*storage.DB, *score.Result, []model.RoundData, error) {
	db, err := storage.Open(dbPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open storage: %w", err)
	}

	stats, err := db.GetAllPlayerStats()
	if err != nil {
		db.Close()
		return nil, nil, nil, fmt.Errorf("load player stats: %w", err)
	}
	if len(stats) == 0 {
		db.Close()
		return nil, nil, nil, fmt.Errorf("no player stats in %s: run import or parse first", dbPath)
	}

	rounds, err := db.GetAllRounds()
	if err != nil {
		db.Close()
		return nil, nil, nil, fmt.Errorf("load rounds: %w", err)
	}
	table, err := db.GetAllRoles()
	if err != nil {
		db.Close()
		return nil, nil, nil, fmt.Errorf("load roles: %w", err)
	}

	return db, score.Rate(stats, table, rounds), rounds, nil
}
