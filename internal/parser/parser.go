// Package parser extracts round logs and player box scores from CS2
// demo files.
package parser

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	demoinfocs "github.com/markus-wa/demoinfocs-golang/v4/pkg/demoinfocs"
	common "github.com/markus-wa/demoinfocs-golang/v4/pkg/demoinfocs/common"
	"github.com/markus-wa/demoinfocs-golang/v4/pkg/demoinfocs/events"

	"github.com/lvgk/csimpact/internal/model"
)

// Buy classification bands, interpreted against a side's equipment
// value at freeze end.
const (
	fullEcoMax = 5000
	semiEcoMax = 10000
	semiBuyMax = 20000
)

// tradeWindowSeconds bounds how long after a death a revenge kill still
// counts as a trade.
const tradeWindowSeconds = 5.0

// Match is the extracted content of one demo.
type Match struct {
	DemoHash string
	FileName string
	MapName  string
	Rounds   []model.RoundData
	Players  []*model.PlayerRawStats
}

type playerAccum struct {
	stats        *model.PlayerRawStats
	damage       float64
	ctDamage     float64
	tDamage      float64
	roundsPlayed int
	ctRounds     int
	tRounds      int
}

type recentKill struct {
	time   float64
	killer uint64
	victim uint64
	team   common.Team
}

// ParseDemo parses the demo at path into rounds and player box scores.
func ParseDemo(path string) (*Match, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open demo: %w", err)
	}
	defer f.Close()

	// Hash file for idempotency key.
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return nil, fmt.Errorf("hash demo: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek demo: %w", err)
	}

	p := demoinfocs.NewParser(f)
	defer p.Close()

	match := &Match{
		DemoHash: fmt.Sprintf("%x", h.Sum(nil)),
		FileName: filepath.Base(path),
	}

	players := make(map[uint64]*playerAccum)
	accum := func(pl *common.Player) *playerAccum {
		if pl == nil || pl.SteamID64 == 0 {
			return nil
		}
		a, ok := players[pl.SteamID64]
		if !ok {
			a = &playerAccum{stats: &model.PlayerRawStats{
				SteamID: fmt.Sprintf("%d", pl.SteamID64),
			}}
			players[pl.SteamID64] = a
		}
		a.stats.UserName = pl.Name
		if tn := clanName(p, pl.Team); tn != "" {
			a.stats.TeamName = tn
		}
		return a
	}

	var (
		roundNumber  int
		cur          model.RoundData
		openingTaken bool
		recent       []recentKill
		ctStreak     int
		tStreak      int
	)

	now := func() float64 { return p.CurrentTime().Seconds() }

	p.RegisterEventHandler(func(e events.RoundStart) {
		if p.GameState().IsWarmupPeriod() {
			return
		}
		roundNumber++
		cur = model.RoundData{
			RoundNum:       roundNumber,
			Start:          now(),
			CTTeamClanName: p.GameState().TeamCounterTerrorists().ClanName(),
			TTeamClanName:  p.GameState().TeamTerrorists().ClanName(),
			CTLosingStreak: ctStreak,
			TLosingStreak:  tStreak,
			DemoFileName:   match.FileName,
		}
		openingTaken = false
		recent = recent[:0]
	})

	p.RegisterEventHandler(func(e events.RoundFreezetimeEnd) {
		if roundNumber == 0 {
			return
		}
		cur.FreezeEnd = now()
		gs := p.GameState()
		cur.CTTeamCurrentEquipValue = gs.TeamCounterTerrorists().CurrentEquipmentValue()
		cur.TTeamCurrentEquipValue = gs.TeamTerrorists().CurrentEquipmentValue()
		cur.CTBuyType = classifyBuy(cur.CTTeamCurrentEquipValue, roundNumber)
		cur.TBuyType = classifyBuy(cur.TTeamCurrentEquipValue, roundNumber)
	})

	p.RegisterEventHandler(func(e events.BombPlanted) {
		if roundNumber == 0 {
			return
		}
		cur.BombPlant = fmt.Sprintf("%.1f", now())
		cur.BombSite = string(e.Site)
	})

	p.RegisterEventHandler(func(e events.Kill) {
		if roundNumber == 0 || e.Victim == nil {
			return
		}
		t := now()

		if v := accum(e.Victim); v != nil {
			v.stats.Deaths++
		}

		if e.Killer == nil || e.Killer.Team == e.Victim.Team {
			return
		}
		k := accum(e.Killer)
		if k == nil {
			return
		}

		k.stats.Kills++
		if e.IsHeadshot {
			k.stats.Headshots++
		}
		if e.PenetratedObjects > 0 {
			k.stats.WallbangKills++
		}
		if e.NoScope {
			k.stats.NoScope++
		}
		if e.ThroughSmoke {
			k.stats.ThroughSmoke++
		}
		if e.AttackerBlind {
			k.stats.BlindKills++
		}
		if e.Victim.IsBlinded() {
			k.stats.VictimBlindKills++
		}
		if e.Weapon != nil {
			if e.Weapon.Type == common.EqAWP {
				k.stats.AWPKills++
			}
			if e.Weapon.Class() == common.EqClassPistols {
				k.stats.PistolKills++
			}
		}
		if e.Assister != nil && e.Assister.Team != e.Victim.Team {
			if a := accum(e.Assister); a != nil {
				a.stats.Assists++
				if e.AssistedFlash {
					a.stats.AssistedFlashes++
				}
			}
		}

		if !openingTaken {
			openingTaken = true
			k.stats.FirstKills++
			if v := accum(e.Victim); v != nil {
				v.stats.FirstDeaths++
			}
			switch e.Killer.Team {
			case common.TeamCounterTerrorists:
				k.stats.CTFirstKills++
				cur.Advantage5v4 = "ct"
				if v := accum(e.Victim); v != nil {
					v.stats.TFirstDeaths++
				}
			case common.TeamTerrorists:
				k.stats.TFirstKills++
				cur.Advantage5v4 = "t"
				if v := accum(e.Victim); v != nil {
					v.stats.CTFirstDeaths++
				}
			}
		}

		// A kill trades a recent teammate death by the current victim.
		for _, rk := range recent {
			if rk.killer == e.Victim.SteamID64 && rk.team == e.Killer.Team && t-rk.time <= tradeWindowSeconds {
				k.stats.TradeKills++
				if v, ok := players[rk.victim]; ok {
					v.stats.TradeDeaths++
				}
				break
			}
		}
		recent = append(recent, recentKill{
			time:   t,
			killer: e.Killer.SteamID64,
			victim: e.Victim.SteamID64,
			team:   e.Victim.Team,
		})
	})

	p.RegisterEventHandler(func(e events.PlayerHurt) {
		if roundNumber == 0 || e.Attacker == nil || e.Player == nil {
			return
		}
		if e.Attacker.Team == e.Player.Team {
			return
		}
		a := accum(e.Attacker)
		if a == nil {
			return
		}
		dmg := float64(e.HealthDamage)
		a.damage += dmg
		switch e.Attacker.Team {
		case common.TeamCounterTerrorists:
			a.ctDamage += dmg
		case common.TeamTerrorists:
			a.tDamage += dmg
		}
	})

	p.RegisterEventHandler(func(e events.GrenadeProjectileThrow) {
		if roundNumber == 0 || e.Projectile == nil || e.Projectile.Thrower == nil {
			return
		}
		a := accum(e.Projectile.Thrower)
		if a == nil || e.Projectile.WeaponInstance == nil {
			return
		}
		side := e.Projectile.Thrower.Team
		pistol := isPistolRound(roundNumber)
		s := a.stats

		switch e.Projectile.WeaponInstance.Type {
		case common.EqFlash:
			s.FlashesThrown++
			if side == common.TeamCounterTerrorists {
				s.CTFlashesThrown++
			} else if side == common.TeamTerrorists {
				s.TFlashesThrown++
			}
			if pistol {
				s.FlashesThrownInPistolRound++
			}
		case common.EqHE:
			s.HEThrown++
			if side == common.TeamCounterTerrorists {
				s.CTHEThrown++
			} else if side == common.TeamTerrorists {
				s.THEThrown++
			}
			if pistol {
				s.HEThrownInPistolRound++
			}
		case common.EqMolotov, common.EqIncendiary:
			s.InfernosThrown++
			if side == common.TeamCounterTerrorists {
				s.CTInfernosThrown++
			} else if side == common.TeamTerrorists {
				s.TInfernosThrown++
			}
			if pistol {
				s.InfernosThrownInPistolRound++
			}
		case common.EqSmoke:
			s.SmokesThrown++
			if side == common.TeamCounterTerrorists {
				s.CTSmokesThrown++
			} else if side == common.TeamTerrorists {
				s.TSmokesThrown++
			}
			if pistol {
				s.SmokesThrownInPistolRound++
			}
		default:
			return
		}
		s.TotalUtilityThrown++
	})

	p.RegisterEventHandler(func(e events.RoundEnd) {
		if roundNumber == 0 {
			return
		}
		cur.End = now()
		cur.OfficialEnd = cur.End
		cur.Reason = reasonString(e.Reason)

		switch e.Winner {
		case common.TeamCounterTerrorists:
			cur.Winner = "ct"
			cur.WinnerClanName = cur.CTTeamClanName
			ctStreak = 0
			tStreak++
		case common.TeamTerrorists:
			cur.Winner = "t"
			cur.WinnerClanName = cur.TTeamClanName
			tStreak = 0
			ctStreak++
		}

		for _, pl := range p.GameState().Participants().Playing() {
			a := accum(pl)
			if a == nil {
				continue
			}
			a.roundsPlayed++
			switch pl.Team {
			case common.TeamCounterTerrorists:
				a.ctRounds++
				if e.Winner == common.TeamCounterTerrorists {
					a.stats.TotalRoundsWon++
					a.stats.CTRoundsWon++
				}
			case common.TeamTerrorists:
				a.tRounds++
				if e.Winner == common.TeamTerrorists {
					a.stats.TotalRoundsWon++
					a.stats.TRoundsWon++
				}
			}
		}

		match.Rounds = append(match.Rounds, cur)
	})

	if err := p.ParseToEnd(); err != nil {
		return nil, fmt.Errorf("parse demo: %w", err)
	}

	match.MapName = p.Header().MapName

	for _, a := range players {
		s := a.stats
		s.KDiff = s.Kills - s.Deaths
		deaths := s.Deaths
		if deaths < 1 {
			deaths = 1
		}
		s.KD = float64(s.Kills) / float64(deaths)
		if a.roundsPlayed > 0 {
			s.ADRTotal = a.damage / float64(a.roundsPlayed)
		}
		if a.ctRounds > 0 {
			s.ADRCTSide = a.ctDamage / float64(a.ctRounds)
		}
		if a.tRounds > 0 {
			s.ADRTSide = a.tDamage / float64(a.tRounds)
		}
		match.Players = append(match.Players, s)
	}
	sort.Slice(match.Players, func(i, j int) bool {
		return match.Players[i].UserName < match.Players[j].UserName
	})

	return match, nil
}

// classifyBuy maps a side's equipment value at freeze end to a buy type.
// Rounds 1 and 13 are pistol rounds regardless of value.
func classifyBuy(equipValue, roundNum int) string {
	if isPistolRound(roundNum) {
		return model.BuyPistol
	}
	switch {
	case equipValue < fullEcoMax:
		return model.BuyFullEco
	case equipValue < semiEcoMax:
		return model.BuySemiEco
	case equipValue < semiBuyMax:
		return model.BuySemiBuy
	default:
		return model.BuyFullBuy
	}
}

func isPistolRound(roundNum int) bool {
	return roundNum == 1 || roundNum == 13
}

func clanName(p demoinfocs.Parser, t common.Team) string {
	gs := p.GameState()
	switch t {
	case common.TeamCounterTerrorists:
		return strings.TrimSpace(gs.TeamCounterTerrorists().ClanName())
	case common.TeamTerrorists:
		return strings.TrimSpace(gs.TeamTerrorists().ClanName())
	}
	return ""
}

func reasonString(r events.RoundEndReason) string {
	switch r {
	case events.RoundEndReasonTargetBombed:
		return "bomb_exploded"
	case events.RoundEndReasonBombDefused:
		return "bomb_defused"
	case events.RoundEndReasonCTWin:
		return "ct_elimination"
	case events.RoundEndReasonTerroristsWin:
		return "t_elimination"
	case events.RoundEndReasonTargetSaved:
		return "time_expired"
	default:
		return "other"
	}
}
