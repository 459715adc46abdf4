package roles

import (
	"testing"

	"github.com/lvgk/csimpact/internal/model"
)

func testTable() *Table {
	t := NewTable()
	t.Add(&model.PlayerRoleInfo{Player: "NiKo", Team: "Falcons", TRole: model.RoleSpacetaker, CTRole: model.RoleRotator})
	t.Add(&model.PlayerRoleInfo{Player: "karrigan", Team: "FaZe", IsIGL: true, TRole: model.RoleSpacetaker, CTRole: model.RoleAnchor})
	t.Add(&model.PlayerRoleInfo{Player: "m0NESY", Team: "G2", TRole: model.RoleAWP, CTRole: model.RoleAWP})
	return t
}

func TestResolveExact(t *testing.T) {
	table := testTable()
	info, ok := table.Resolve("NiKo")
	if !ok || info.Team != "Falcons" {
		t.Fatalf("exact resolve failed: %+v, %v", info, ok)
	}
}

func TestResolveCaseInsensitive(t *testing.T) {
	table := testTable()
	info, ok := table.Resolve("KARRIGAN")
	if !ok || !info.IsIGL {
		t.Fatalf("case-insensitive resolve failed: %+v, %v", info, ok)
	}
}

func TestResolveSubstringBothDirections(t *testing.T) {
	table := testTable()
	// Query contained in a table name.
	if info, ok := table.Resolve("m0NES"); !ok || info.TRole != model.RoleAWP {
		t.Fatalf("substring (query in name) failed: %+v, %v", info, ok)
	}
	// Table name contained in the query.
	if info, ok := table.Resolve("NiKo (Falcons)"); !ok || info.Player != "NiKo" {
		t.Fatalf("substring (name in query) failed: %+v, %v", info, ok)
	}
}

func TestResolveFirstMatchWinsInInsertionOrder(t *testing.T) {
	table := NewTable()
	table.Add(&model.PlayerRoleInfo{Player: "Jame", TRole: model.RoleAWP, CTRole: model.RoleAWP})
	table.Add(&model.PlayerRoleInfo{Player: "JameT", TRole: model.RoleSupport, CTRole: model.RoleSupport})

	// "Jame" matches both by substring; exact wins first, but for a fuzzy
	// query the earlier entry must win.
	info, ok := table.Resolve("jame ")
	if !ok || info.Player != "Jame" {
		t.Fatalf("expected first inserted match, got %+v, %v", info, ok)
	}
}

func TestResolveMiss(t *testing.T) {
	table := testTable()
	if _, ok := table.Resolve("unknownplayer123"); ok {
		t.Fatal("expected miss for unknown name")
	}
	if _, ok := table.Resolve(""); ok {
		t.Fatal("expected miss for empty name")
	}
}

func TestAddOverwritesKeepingPosition(t *testing.T) {
	table := testTable()
	table.Add(&model.PlayerRoleInfo{Player: "NiKo", Team: "G2", TRole: model.RoleLurker, CTRole: model.RoleLurker})

	if table.Len() != 3 {
		t.Fatalf("len = %d, want 3", table.Len())
	}
	entries := table.Entries()
	if entries[0].Player != "NiKo" || entries[0].Team != "G2" {
		t.Fatalf("overwrite should keep position: %+v", entries[0])
	}
}

func TestAssignDefaultRoleLadder(t *testing.T) {
	cases := []struct {
		name  string
		stats model.PlayerRawStats
		want  model.Role
	}{
		{
			name:  "awp share dominates",
			stats: model.PlayerRawStats{Kills: 100, AWPKills: 40, Deaths: 80},
			want:  model.RoleAWP,
		},
		{
			name: "entry profile",
			stats: model.PlayerRawStats{
				Kills: 120, Deaths: 100, TFirstKills: 20, TFirstDeaths: 5,
			},
			want: model.RoleSpacetaker,
		},
		{
			name: "utility profile",
			stats: model.PlayerRawStats{
				Kills: 80, Deaths: 90, TotalUtilityThrown: 500, TotalRoundsWon: 100,
				AssistedFlashes: 20,
			},
			want: model.RoleSupport,
		},
		{
			name:  "high kd lurker",
			stats: model.PlayerRawStats{Kills: 140, Deaths: 100},
			want:  model.RoleLurker,
		},
		{
			name:  "ct leaning anchor",
			stats: model.PlayerRawStats{Kills: 90, Deaths: 100, CTRoundsWon: 60, TRoundsWon: 40},
			want:  model.RoleAnchor,
		},
		{
			name:  "fallback support",
			stats: model.PlayerRawStats{Kills: 90, Deaths: 100, CTRoundsWon: 40, TRoundsWon: 60},
			want:  model.RoleSupport,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := AssignDefaultRole(&c.stats); got != c.want {
				t.Errorf("got %s, want %s", got, c.want)
			}
		})
	}
}

func TestPrimaryRole(t *testing.T) {
	if got := PrimaryRole(model.RoleSupport, model.RoleAnchor, true); got != model.RoleIGL {
		t.Errorf("IGL should dominate, got %s", got)
	}
	if got := PrimaryRole(model.RoleSupport, model.RoleAWP, false); got != model.RoleAWP {
		t.Errorf("AWP on either side should win, got %s", got)
	}
	if got := PrimaryRole(model.RoleSupport, model.RoleAnchor, false); got != model.RoleAnchor {
		t.Errorf("higher importance should win, got %s", got)
	}
	if got := PrimaryRole(model.RoleLurker, model.RoleRotator, false); got != model.RoleLurker {
		t.Errorf("expected Lurker, got %s", got)
	}
}
