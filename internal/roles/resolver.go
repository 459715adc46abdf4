// Package roles resolves player roles from an explicit role table, with a
// stat-based fallback when a player has no entry.
package roles

import (
	"strings"

	"github.com/lvgk/csimpact/internal/model"
)

// Table is an insertion-ordered role table. Fuzzy lookups iterate in
// insertion order so that first-match-wins is reproducible; an unordered
// map would make substring collisions nondeterministic.
type Table struct {
	names []string
	infos map[string]*model.PlayerRoleInfo
}

// NewTable returns an empty role table.
func NewTable() *Table {
	return &Table{infos: make(map[string]*model.PlayerRoleInfo)}
}

// Add appends an entry. Re-adding a name overwrites the info but keeps
// the original position.
func (t *Table) Add(info *model.PlayerRoleInfo) {
	if _, ok := t.infos[info.Player]; !ok {
		t.names = append(t.names, info.Player)
	}
	t.infos[info.Player] = info
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.names)
}

// Entries returns the entries in insertion order.
func (t *Table) Entries() []*model.PlayerRoleInfo {
	out := make([]*model.PlayerRoleInfo, 0, len(t.names))
	for _, name := range t.names {
		out = append(out, t.infos[name])
	}
	return out
}

// Resolve finds the role entry for a player name. Match order: exact
// (case-sensitive), then case-insensitive equality, then substring
// containment in either direction. Fuzzy passes scan in table insertion
// order and the first match wins.
func (t *Table) Resolve(playerName string) (*model.PlayerRoleInfo, bool) {
	if playerName == "" || t == nil {
		return nil, false
	}

	if info, ok := t.infos[playerName]; ok {
		return info, true
	}

	lower := strings.ToLower(strings.TrimSpace(playerName))
	for _, name := range t.names {
		if strings.ToLower(strings.TrimSpace(name)) == lower {
			return t.infos[name], true
		}
	}

	for _, name := range t.names {
		nl := strings.ToLower(strings.TrimSpace(name))
		if strings.Contains(nl, lower) || strings.Contains(lower, nl) {
			return t.infos[name], true
		}
	}

	return nil, false
}

// AssignDefaultRole assigns a role from stats when a player has no role
// table entry. The ladder is checked in order; the first rule that fires
// wins.
func AssignDefaultRole(stats *model.PlayerRawStats) model.Role {
	kd := stats.KDRatio()
	awpKillRatio := float64(stats.AWPKills) / maxf(float64(stats.Kills), 1)
	utilityPerRound := float64(stats.TotalUtilityThrown) / maxf(float64(stats.TotalRoundsWon), 1)
	entryRate := float64(stats.TFirstKills) / maxf(float64(stats.TFirstKills+stats.TFirstDeaths), 1)

	switch {
	case awpKillRatio > 0.3:
		return model.RoleAWP
	case entryRate > 0.6 && kd > 1.1:
		return model.RoleSpacetaker
	case utilityPerRound > 4 && stats.AssistedFlashes > 10:
		return model.RoleSupport
	case kd > 1.3:
		return model.RoleLurker
	case stats.CTRoundsWon > stats.TRoundsWon:
		return model.RoleAnchor
	default:
		return model.RoleSupport
	}
}

// PrimaryRole derives a single display role from the side roles. IGL
// status dominates, then AWP on either side, then whichever side role
// ranks higher in importance; ties favor the T-side role.
func PrimaryRole(tRole, ctRole model.Role, isIGL bool) model.Role {
	if isIGL {
		return model.RoleIGL
	}
	if tRole == model.RoleAWP || ctRole == model.RoleAWP {
		return model.RoleAWP
	}
	if ctRole.Importance() > tRole.Importance() {
		return ctRole
	}
	return tRole
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
