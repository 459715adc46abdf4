// Package ingest loads player statistics, round logs, and role tables
// from CSV exports. Parsing is header-driven: columns are located by
// name, unknown columns are ignored, and missing or malformed numeric
// cells read as zero.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lvgk/csimpact/internal/model"
	"github.com/lvgk/csimpact/internal/roles"
)

// row is one CSV record indexed by header name.
type row map[string]string

func (r row) str(keys ...string) string {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != "" {
			return v
		}
	}
	return ""
}

func (r row) int(keys ...string) int {
	s := r.str(keys...)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return 0
	}
	return n
}

func (r row) float(keys ...string) float64 {
	s := r.str(keys...)
	if s == "" {
		return 0
	}
	// Some exports use European decimal commas.
	s = strings.ReplaceAll(s, ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func readRows(r io.Reader) ([]row, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}

	var rows []row
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record: %w", err)
		}
		m := make(row, len(header))
		for i, h := range header {
			if i < len(rec) {
				m[h] = strings.TrimSpace(rec[i])
			}
		}
		rows = append(rows, m)
	}
	return rows, nil
}

// ReadPlayerStats parses a player statistics CSV. Some exports carry a
// "flahes_thrown" misspelling; both spellings are accepted.
func ReadPlayerStats(r io.Reader) ([]*model.PlayerRawStats, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}

	var players []*model.PlayerRawStats
	for _, m := range rows {
		name := m.str("user_name")
		if name == "" {
			continue
		}
		players = append(players, &model.PlayerRawStats{
			SteamID:  m.str("steam_id"),
			UserName: name,
			TeamName: m.str("team_clan_name"),

			Kills:            m.int("kills"),
			Headshots:        m.int("headshots"),
			WallbangKills:    m.int("wallbang_kills"),
			AssistedFlashes:  m.int("assisted_flashes"),
			NoScope:          m.int("no_scope"),
			ThroughSmoke:     m.int("through_smoke"),
			BlindKills:       m.int("blind_kills"),
			VictimBlindKills: m.int("victim_blind_kills"),
			Assists:          m.int("assists"),
			Deaths:           m.int("deaths"),
			KD:               m.float("kd"),

			TotalRoundsWon: m.int("total_rounds_won"),
			TRoundsWon:     m.int("t_rounds_won"),
			CTRoundsWon:    m.int("ct_rounds_won"),

			FirstKills:    m.int("first_kills"),
			CTFirstKills:  m.int("CT_first_kills"),
			TFirstKills:   m.int("T_first_kills"),
			FirstDeaths:   m.int("first_deaths"),
			CTFirstDeaths: m.int("CT_first_deaths"),
			TFirstDeaths:  m.int("T_first_deaths"),

			FlashesThrown:              m.int("flashes_thrown", "flahes_thrown"),
			CTFlashesThrown:            m.int("CT_flashes_thrown", "CT_flahes_thrown"),
			TFlashesThrown:             m.int("T_flashes_thrown", "T_flahes_thrown"),
			FlashesThrownInPistolRound: m.int("flashes_thrown_in_pistol_round", "flahes_thrown_in_pistol_round"),

			HEThrown:                    m.int("he_thrown"),
			CTHEThrown:                  m.int("CT_he_thrown"),
			THEThrown:                   m.int("T_he_thrown"),
			HEThrownInPistolRound:       m.int("he_thrown_in_pistol_round"),
			InfernosThrown:              m.int("infernos_thrown"),
			CTInfernosThrown:            m.int("CT_infernos_thrown"),
			TInfernosThrown:             m.int("T_infernos_thrown"),
			InfernosThrownInPistolRound: m.int("infernos_thrown_in_pistol_round"),
			SmokesThrown:                m.int("smokes_thrown"),
			CTSmokesThrown:              m.int("CT_smokes_thrown"),
			TSmokesThrown:               m.int("T_smokes_thrown"),
			SmokesThrownInPistolRound:   m.int("smokes_thrown_in_pistol_round"),
			TotalUtilityThrown:          m.int("total_util_thrown"),

			AWPKills:    m.int("awp_kills"),
			PistolKills: m.int("pistol_kills"),
			TradeKills:  m.int("trade_kills"),
			TradeDeaths: m.int("trade_deaths"),
			KDiff:       m.int("kddiff", "k_diff"),

			ADRTotal:   m.float("adr_total", "adr"),
			ADRCTSide:  m.float("adr_ct_side"),
			ADRTSide:   m.float("adr_t_side"),
			KASTTotal:  m.float("kast_total", "kast"),
			KASTCTSide: m.float("kast_ct_side"),
			KASTTSide:  m.float("kast_t_side"),
		})
	}
	return players, nil
}

// ReadRounds parses a round log CSV.
func ReadRounds(r io.Reader) ([]model.RoundData, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}

	var rounds []model.RoundData
	for _, m := range rows {
		rounds = append(rounds, model.RoundData{
			RoundNum:    m.int("round_num"),
			Start:       m.float("start"),
			FreezeEnd:   m.float("freeze_end"),
			End:         m.float("end"),
			OfficialEnd: m.float("official_end"),

			Winner:    strings.ToLower(m.str("winner")),
			Reason:    m.str("reason"),
			BombPlant: m.str("bomb_plant"),
			BombSite:  m.str("bomb_site"),

			CTTeamClanName: m.str("CT_team_clan_name"),
			TTeamClanName:  m.str("T_team_clan_name"),
			WinnerClanName: m.str("winner_clan_name"),

			CTTeamCurrentEquipValue: m.int("CT_team_current_equip_value"),
			TTeamCurrentEquipValue:  m.int("T_team_current_equip_value"),
			CTLosingStreak:          m.int("ct_losing_streak"),
			TLosingStreak:           m.int("t_losing_streak"),
			CTBuyType:               m.str("CT_buy_type"),
			TBuyType:                m.str("T_buy_type"),

			Advantage5v4: strings.ToLower(m.str("5v4_advantage")),
			DemoFileName: m.str("demo_file_name", "filename"),
		})
	}
	return rounds, nil
}

// ReadRoles parses a role-assignment CSV into an ordered role table.
// The table keeps file order so substring name resolution stays
// deterministic.
func ReadRoles(r io.Reader) (*roles.Table, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}

	table := roles.NewTable()
	for _, m := range rows {
		player := m.str("Player")
		if player == "" || player == "Player" {
			continue
		}
		table.Add(&model.PlayerRoleInfo{
			Team:         m.str("Team"),
			PreviousTeam: m.str("Previous Team"),
			Player:       player,
			IsIGL:        strings.EqualFold(m.str("In-Game Leader?", "IGL"), "yes"),
			TRole:        model.ParseRole(m.str("T Role")),
			CTRole:       model.ParseRole(m.str("CT Role")),
		})
	}
	return table, nil
}

// LoadPlayerStatsFile reads a player statistics CSV from disk.
func LoadPlayerStatsFile(path string) ([]*model.PlayerRawStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening stats csv: %w", err)
	}
	defer f.Close()
	return ReadPlayerStats(f)
}

// LoadRoundsFile reads a round log CSV from disk.
func LoadRoundsFile(path string) ([]model.RoundData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening rounds csv: %w", err)
	}
	defer f.Close()
	return ReadRounds(f)
}

// LoadRolesFile reads a role-assignment CSV from disk.
func LoadRolesFile(path string) (*roles.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening roles csv: %w", err)
	}
	defer f.Close()
	return ReadRoles(f)
}
