package storage

import (
	"fmt"

	"github.com/lvgk/csimpact/internal/model"
	"github.com/lvgk/csimpact/internal/roles"
)

// DemoExists returns true if a demo with the given content hash has
// already been parsed into the store.
func (db *DB) DemoExists(hash string) (bool, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM demos WHERE demo_hash = ?", hash).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InsertDemo records a parsed demo so later runs can skip it by hash.
func (db *DB) InsertDemo(hash, fileName, mapName string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO demos(demo_hash, file_name, map_name, parsed_at) VALUES (?, ?, ?, datetime('now'))",
		hash, fileName, mapName)
	return err
}

// InsertPlayerStats bulk-inserts player box scores in a transaction.
// Uses INSERT OR REPLACE for idempotency.
func (db *DB) InsertPlayerStats(stats []*model.PlayerRawStats) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO player_stats(
			steam_id, user_name, team_name,
			kills, headshots, wallbang_kills, assisted_flashes,
			no_scope, through_smoke, blind_kills, victim_blind_kills,
			assists, deaths, kd,
			total_rounds_won, t_rounds_won, ct_rounds_won,
			first_kills, ct_first_kills, t_first_kills,
			first_deaths, ct_first_deaths, t_first_deaths,
			flashes_thrown, ct_flashes_thrown, t_flashes_thrown, flashes_thrown_in_pistol_round,
			he_thrown, ct_he_thrown, t_he_thrown, he_thrown_in_pistol_round,
			infernos_thrown, ct_infernos_thrown, t_infernos_thrown, infernos_thrown_in_pistol_round,
			smokes_thrown, ct_smokes_thrown, t_smokes_thrown, smokes_thrown_in_pistol_round,
			total_util_thrown,
			awp_kills, pistol_kills, trade_kills, trade_deaths, k_diff,
			adr_total, adr_ct_side, adr_t_side,
			kast_total, kast_ct_side, kast_t_side
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, s := range stats {
		_, err = stmt.Exec(
			s.SteamID, s.UserName, s.TeamName,
			s.Kills, s.Headshots, s.WallbangKills, s.AssistedFlashes,
			s.NoScope, s.ThroughSmoke, s.BlindKills, s.VictimBlindKills,
			s.Assists, s.Deaths, s.KD,
			s.TotalRoundsWon, s.TRoundsWon, s.CTRoundsWon,
			s.FirstKills, s.CTFirstKills, s.TFirstKills,
			s.FirstDeaths, s.CTFirstDeaths, s.TFirstDeaths,
			s.FlashesThrown, s.CTFlashesThrown, s.TFlashesThrown, s.FlashesThrownInPistolRound,
			s.HEThrown, s.CTHEThrown, s.THEThrown, s.HEThrownInPistolRound,
			s.InfernosThrown, s.CTInfernosThrown, s.TInfernosThrown, s.InfernosThrownInPistolRound,
			s.SmokesThrown, s.CTSmokesThrown, s.TSmokesThrown, s.SmokesThrownInPistolRound,
			s.TotalUtilityThrown,
			s.AWPKills, s.PistolKills, s.TradeKills, s.TradeDeaths, s.KDiff,
			s.ADRTotal, s.ADRCTSide, s.ADRTSide,
			s.KASTTotal, s.KASTCTSide, s.KASTTSide,
		)
		if err != nil {
			return fmt.Errorf("insert player_stats for %s: %w", s.UserName, err)
		}
	}
	return tx.Commit()
}

// GetAllPlayerStats returns every stored player box score, ordered by name.
func (db *DB) GetAllPlayerStats() ([]*model.PlayerRawStats, error) {
	rows, err := db.conn.Query(`
		SELECT steam_id, user_name, team_name,
			kills, headshots, wallbang_kills, assisted_flashes,
			no_scope, through_smoke, blind_kills, victim_blind_kills,
			assists, deaths, kd,
			total_rounds_won, t_rounds_won, ct_rounds_won,
			first_kills, ct_first_kills, t_first_kills,
			first_deaths, ct_first_deaths, t_first_deaths,
			flashes_thrown, ct_flashes_thrown, t_flashes_thrown, flashes_thrown_in_pistol_round,
			he_thrown, ct_he_thrown, t_he_thrown, he_thrown_in_pistol_round,
			infernos_thrown, ct_infernos_thrown, t_infernos_thrown, infernos_thrown_in_pistol_round,
			smokes_thrown, ct_smokes_thrown, t_smokes_thrown, smokes_thrown_in_pistol_round,
			total_util_thrown,
			awp_kills, pistol_kills, trade_kills, trade_deaths, k_diff,
			adr_total, adr_ct_side, adr_t_side,
			kast_total, kast_ct_side, kast_t_side
		FROM player_stats ORDER BY user_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.PlayerRawStats
	for rows.Next() {
		s := &model.PlayerRawStats{}
		err := rows.Scan(
			&s.SteamID, &s.UserName, &s.TeamName,
			&s.Kills, &s.Headshots, &s.WallbangKills, &s.AssistedFlashes,
			&s.NoScope, &s.ThroughSmoke, &s.BlindKills, &s.VictimBlindKills,
			&s.Assists, &s.Deaths, &s.KD,
			&s.TotalRoundsWon, &s.TRoundsWon, &s.CTRoundsWon,
			&s.FirstKills, &s.CTFirstKills, &s.TFirstKills,
			&s.FirstDeaths, &s.CTFirstDeaths, &s.TFirstDeaths,
			&s.FlashesThrown, &s.CTFlashesThrown, &s.TFlashesThrown, &s.FlashesThrownInPistolRound,
			&s.HEThrown, &s.CTHEThrown, &s.THEThrown, &s.HEThrownInPistolRound,
			&s.InfernosThrown, &s.CTInfernosThrown, &s.TInfernosThrown, &s.InfernosThrownInPistolRound,
			&s.SmokesThrown, &s.CTSmokesThrown, &s.TSmokesThrown, &s.SmokesThrownInPistolRound,
			&s.TotalUtilityThrown,
			&s.AWPKills, &s.PistolKills, &s.TradeKills, &s.TradeDeaths, &s.KDiff,
			&s.ADRTotal, &s.ADRCTSide, &s.ADRTSide,
			&s.KASTTotal, &s.KASTCTSide, &s.KASTTSide,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// InsertRounds bulk-inserts round records in a transaction.
func (db *DB) InsertRounds(rounds []model.RoundData) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO rounds(
			demo_file_name, round_num, start_time, freeze_end, end_time, official_end,
			winner, reason, bomb_plant, bomb_site,
			ct_team_clan_name, t_team_clan_name, winner_clan_name,
			ct_team_current_equip_value, t_team_current_equip_value,
			ct_losing_streak, t_losing_streak,
			ct_buy_type, t_buy_type, advantage_5v4
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range rounds {
		_, err = stmt.Exec(
			r.DemoFileName, r.RoundNum, r.Start, r.FreezeEnd, r.End, r.OfficialEnd,
			r.Winner, r.Reason, r.BombPlant, r.BombSite,
			r.CTTeamClanName, r.TTeamClanName, r.WinnerClanName,
			r.CTTeamCurrentEquipValue, r.TTeamCurrentEquipValue,
			r.CTLosingStreak, r.TLosingStreak,
			r.CTBuyType, r.TBuyType, r.Advantage5v4,
		)
		if err != nil {
			return fmt.Errorf("insert round %d of %s: %w", r.RoundNum, r.DemoFileName, err)
		}
	}
	return tx.Commit()
}

// GetAllRounds returns every stored round ordered by demo and round number.
func (db *DB) GetAllRounds() ([]model.RoundData, error) {
	rows, err := db.conn.Query(`
		SELECT demo_file_name, round_num, start_time, freeze_end, end_time, official_end,
			winner, reason, bomb_plant, bomb_site,
			ct_team_clan_name, t_team_clan_name, winner_clan_name,
			ct_team_current_equip_value, t_team_current_equip_value,
			ct_losing_streak, t_losing_streak,
			ct_buy_type, t_buy_type, advantage_5v4
		FROM rounds ORDER BY demo_file_name, round_num`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.RoundData
	for rows.Next() {
		var r model.RoundData
		err := rows.Scan(
			&r.DemoFileName, &r.RoundNum, &r.Start, &r.FreezeEnd, &r.End, &r.OfficialEnd,
			&r.Winner, &r.Reason, &r.BombPlant, &r.BombSite,
			&r.CTTeamClanName, &r.TTeamClanName, &r.WinnerClanName,
			&r.CTTeamCurrentEquipValue, &r.TTeamCurrentEquipValue,
			&r.CTLosingStreak, &r.TLosingStreak,
			&r.CTBuyType, &r.TBuyType, &r.Advantage5v4,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// InsertRoles replaces the stored role table in a transaction. Row order
// is preserved through the rowid so lookups stay deterministic.
func (db *DB) InsertRoles(table *roles.Table) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM roles"); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO roles(player, team, previous_team, is_igl, t_role, ct_role)
		VALUES (?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, info := range table.Entries() {
		_, err = stmt.Exec(
			info.Player, info.Team, info.PreviousTeam,
			boolInt(info.IsIGL), info.TRole.String(), info.CTRole.String(),
		)
		if err != nil {
			return fmt.Errorf("insert role for %s: %w", info.Player, err)
		}
	}
	return tx.Commit()
}

// GetAllRoles returns the stored role table in insertion order.
func (db *DB) GetAllRoles() (*roles.Table, error) {
	rows, err := db.conn.Query(`
		SELECT player, team, previous_team, is_igl, t_role, ct_role
		FROM roles ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	table := roles.NewTable()
	for rows.Next() {
		var info model.PlayerRoleInfo
		var isIGL int
		var tRole, ctRole string
		if err := rows.Scan(&info.Player, &info.Team, &info.PreviousTeam, &isIGL, &tRole, &ctRole); err != nil {
			return nil, err
		}
		info.IsIGL = isIGL != 0
		info.TRole = model.ParseRole(tRole)
		info.CTRole = model.ParseRole(ctRole)
		table.Add(&info)
	}
	return table, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
