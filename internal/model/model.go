package model

// Role is a player's tactical role. The set is closed: role-specific
// branches in the metric evaluator and score composer switch over it
// exhaustively.
type Role int

const (
	RoleUnknown Role = iota
	RoleSupport
	RoleRotator
	RoleAnchor
	RoleLurker
	RoleSpacetaker
	RoleAWP
	RoleIGL
)

func (r Role) String() string {
	switch r {
	case RoleIGL:
		return "IGL"
	case RoleAWP:
		return "AWP"
	case RoleSpacetaker:
		return "Spacetaker"
	case RoleLurker:
		return "Lurker"
	case RoleAnchor:
		return "Anchor"
	case RoleRotator:
		return "Rotator"
	case RoleSupport:
		return "Support"
	default:
		return "?"
	}
}

// Importance ranks roles for primary-role derivation:
// IGL > AWP > Spacetaker > Lurker > Anchor > Rotator > Support.
func (r Role) Importance() int {
	switch r {
	case RoleIGL:
		return 7
	case RoleAWP:
		return 6
	case RoleSpacetaker:
		return 5
	case RoleLurker:
		return 4
	case RoleAnchor:
		return 3
	case RoleRotator:
		return 2
	case RoleSupport:
		return 1
	default:
		return 0
	}
}

// ParseRole maps a role label (as found in role CSVs) to a Role.
// Unrecognized labels map to RoleUnknown.
func ParseRole(s string) Role {
	switch s {
	case "IGL":
		return RoleIGL
	case "AWP", "AWPer":
		return RoleAWP
	case "Spacetaker", "Entry":
		return RoleSpacetaker
	case "Lurker":
		return RoleLurker
	case "Anchor":
		return RoleAnchor
	case "Rotator":
		return RoleRotator
	case "Support":
		return RoleSupport
	default:
		return RoleUnknown
	}
}

// AllRoles lists every concrete role, used for role-diversity scoring.
var AllRoles = []Role{RoleIGL, RoleAWP, RoleSpacetaker, RoleLurker, RoleAnchor, RoleRotator, RoleSupport}

// Side tags a metric set with the context it was computed in.
type Side string

const (
	SideOverall Side = "Overall"
	SideT       Side = "T"
	SideCT      Side = "CT"
)

// Buy types as recorded per side per round.
const (
	BuyFullBuy = "Full Buy"
	BuyFullEco = "Full Eco"
	BuySemiBuy = "Semi-Buy"
	BuySemiEco = "Semi-Eco"
	BuyForce   = "Force Buy"
	BuyPistol  = "Pistol"
)

// PlayerRawStats is one player's counting stats for a season or tournament,
// loaded once per analysis run and immutable thereafter. All counters are
// non-negative; missing source fields are zero.
type PlayerRawStats struct {
	SteamID  string
	UserName string
	TeamName string

	Kills            int
	Headshots        int
	WallbangKills    int
	AssistedFlashes  int
	NoScope          int
	ThroughSmoke     int
	BlindKills       int
	VictimBlindKills int
	Assists          int
	Deaths           int
	KD               float64

	TotalRoundsWon int
	TRoundsWon     int
	CTRoundsWon    int

	FirstKills    int
	CTFirstKills  int
	TFirstKills   int
	FirstDeaths   int
	CTFirstDeaths int
	TFirstDeaths  int

	FlashesThrown               int
	CTFlashesThrown             int
	TFlashesThrown              int
	FlashesThrownInPistolRound  int
	HEThrown                    int
	CTHEThrown                  int
	THEThrown                   int
	HEThrownInPistolRound       int
	InfernosThrown              int
	CTInfernosThrown            int
	TInfernosThrown             int
	InfernosThrownInPistolRound int
	SmokesThrown                int
	CTSmokesThrown              int
	TSmokesThrown               int
	SmokesThrownInPistolRound   int
	TotalUtilityThrown          int

	AWPKills    int
	PistolKills int
	TradeKills  int
	TradeDeaths int
	KDiff       int

	ADRTotal   float64
	ADRCTSide  float64
	ADRTSide   float64
	KASTTotal  float64
	KASTCTSide float64
	KASTTSide  float64
}

// KDRatio returns the precomputed K/D when present, otherwise derives it
// with deaths floored at 1.
func (s *PlayerRawStats) KDRatio() float64 {
	if s.KD > 0 {
		return s.KD
	}
	deaths := s.Deaths
	if deaths < 1 {
		deaths = 1
	}
	return float64(s.Kills) / float64(deaths)
}

// RoundData is one round of one match. Immutable once loaded.
type RoundData struct {
	RoundNum    int
	Start       float64
	FreezeEnd   float64
	End         float64
	OfficialEnd float64

	Winner    string // winning side: "ct" or "t"
	Reason    string
	BombPlant string
	BombSite  string

	CTTeamClanName string
	TTeamClanName  string
	WinnerClanName string

	CTTeamCurrentEquipValue int
	TTeamCurrentEquipValue  int
	CTLosingStreak          int
	TLosingStreak           int
	CTBuyType               string
	TBuyType                string

	// Advantage5v4 is "ct" or "t" when that side took the opening kill
	// without losing a player first, "" otherwise.
	Advantage5v4 string

	// DemoFileName groups rounds into matches.
	DemoFileName string
}

// Involves reports whether the named team played this round on either side.
func (r *RoundData) Involves(team string) bool {
	return r.CTTeamClanName == team || r.TTeamClanName == team
}

// BuyTypeFor returns the buy type recorded for the named team in this
// round, or "" if the team did not play it.
func (r *RoundData) BuyTypeFor(team string) string {
	switch team {
	case r.CTTeamClanName:
		return r.CTBuyType
	case r.TTeamClanName:
		return r.TBuyType
	}
	return ""
}

// PlayerRoleInfo is a role-table entry for one player.
type PlayerRoleInfo struct {
	Team         string
	PreviousTeam string
	Player       string
	IsIGL        bool
	TRole        Role
	CTRole       Role
}

// RCSMetric is a Role Core Score with the normalized metrics that
// contributed to it.
type RCSMetric struct {
	Value   float64            `json:"value"`
	Metrics map[string]float64 `json:"metrics"`
}

// ICFMetric is an Individual Consistency Factor with its underlying sigma.
type ICFMetric struct {
	Value float64 `json:"value"`
	Sigma float64 `json:"sigma"`
}

// SCMetric is a Synergy Contribution with a display label for the metric
// that drove it. The label is informational only.
type SCMetric struct {
	Value  float64 `json:"value"`
	Metric string  `json:"metric"`
}

// PlayerMetrics is the computed output for one player in one side context.
// A fresh value is built each analysis run; it is never mutated afterwards.
type PlayerMetrics struct {
	Role              Role               `json:"role"`
	RoleMetrics       map[string]float64 `json:"roleMetrics"`
	NormalizedMetrics map[string]float64 `json:"normalizedMetrics"`
	RCS               RCSMetric          `json:"rcs"`
	ICF               ICFMetric          `json:"icf"`
	SC                SCMetric           `json:"sc"`
	OSM               float64            `json:"osm"`
	PIV               float64            `json:"piv"`
	Side              Side               `json:"side"`
}

// PlayerWithPIV wraps a player's raw stats with resolved roles and the
// Overall/T/CT metric triplet.
type PlayerWithPIV struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Team   string `json:"team"`
	Role   Role   `json:"role"`
	TRole  Role   `json:"tRole"`
	CTRole Role   `json:"ctRole"`
	IsIGL  bool   `json:"isIGL"`

	KD    float64 `json:"kd"`
	PIV   float64 `json:"piv"`
	TPIV  float64 `json:"tPIV"`
	CTPIV float64 `json:"ctPIV"`

	RawStats  *PlayerRawStats `json:"rawStats"`
	Metrics   *PlayerMetrics  `json:"metrics"`
	TMetrics  *PlayerMetrics  `json:"tMetrics"`
	CTMetrics *PlayerMetrics  `json:"ctMetrics"`
}

// TeamWithTIR is a team's impact rating over its current roster. Team
// identity is the team-name string; TIR is always recomputed from the
// current player PIVs.
type TeamWithTIR struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Players []*PlayerWithPIV `json:"players"`

	TIR     float64 `json:"tir"`
	SumPIV  float64 `json:"sumPIV"`
	Synergy float64 `json:"synergy"`
	AvgPIV  float64 `json:"avgPIV"`

	TopPlayerName string  `json:"topPlayerName"`
	TopPlayerPIV  float64 `json:"topPlayerPIV"`
}
