package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/spf13/cobra"

	"github.com/lvgk/csimpact/internal/model"
	"github.com/lvgk/csimpact/internal/scout"
)

const analyzeSystemPrompt = `You are a Counter-Strike 2 performance analyst. You are given structured
rating data from an impact-rating tool and a question from the user.

Rules:
- Answer ONLY from the data provided. Never invent or estimate statistics.
- Always cite specific numbers when making a claim.
- If the data is insufficient to answer confidently, say so explicitly.
- Be concise and actionable.

Metrics glossary:
- PIV: Player Impact Value. Composite of RCS, ICF, SC, OSM, basic score, and role weight. Higher = better.
- RCS: Role Core Score. Mean of the player's normalized role metrics, 0-1.
- ICF: Individual Consistency Factor. Derived from K/D stability; higher = more consistent.
- SC: Synergy Contribution. Role-specific teamplay blend, 0-1.
- OSM: Opponent Strength Multiplier. Derived from the opposing field's TIR ranking, 0.1-1.0.
- TIR: Team Impact Rating. Average roster PIV scaled by roster size and synergy.
- Role weight: AWP 1.2, IGL 1.15, Spacetaker 1.1, Lurker 1.05, Anchor/Rotator 1.0, Support 0.95.
- Scout scores are 0-100: overall = 0.55*role + 0.35*synergy - 0.10*risk.`

var (
	analyzeModel  string
	analyzeAPIKey string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "AI-powered grounded analysis (requires ANTHROPIC_API_KEY)",
}

var analyzePlayerCmd = &cobra.Command{
	Use:   "player <name> <question>",
	Short: "Analyze a player's rating with AI",
	Args:  cobra.ExactArgs(2),
	RunE:  runAnalyzePlayer,
}

var analyzeTeamCmd = &cobra.Command{
	Use:   "team <name> <question>",
	Short: "Analyze a team's rating with AI",
	Args:  cobra.ExactArgs(2),
	RunE:  runAnalyzeTeam,
}

func init() {
	analyzeCmd.PersistentFlags().StringVar(&analyzeModel, "model", "claude-haiku-4-5-20251001", "Anthropic model to use")
	analyzeCmd.PersistentFlags().StringVar(&analyzeAPIKey, "api-key", "", "Anthropic API key (falls back to $ANTHROPIC_API_KEY)")

	analyzeCmd.AddCommand(analyzePlayerCmd)
	analyzeCmd.AddCommand(analyzeTeamCmd)
}

func runAnalyzePlayer(cmd *cobra.Command, args []string) error {
	db, result, rounds, err := loadAndRate()
	if err != nil {
		return err
	}
	defer db.Close()

	var player *model.PlayerWithPIV
	for _, p := range result.Players {
		if strings.EqualFold(p.Name, args[0]) {
			player = p
			break
		}
	}
	if player == nil {
		return fmt.Errorf("player %q not found", args[0])
	}

	var team *model.TeamWithTIR
	for _, t := range result.Teams {
		if t.Name == player.Team {
			team = t
			break
		}
	}

	contextJSON, err := buildPlayerContext(player, team, scout.Score(player, team, result.Players, rounds))
	if err != nil {
		return fmt.Errorf("build context: %w", err)
	}
	return callAnthropic(cmd.Context(), analyzeAPIKey, analyzeModel, contextJSON, args[1])
}

func runAnalyzeTeam(cmd *cobra.Command, args []string) error {
	db, result, _, err := loadAndRate()
	if err != nil {
		return err
	}
	defer db.Close()

	for rank, t := range result.Teams {
		if strings.EqualFold(t.Name, args[0]) {
			contextJSON, err := buildTeamContext(t, rank+1, len(result.Teams))
			if err != nil {
				return fmt.Errorf("build context: %w", err)
			}
			return callAnthropic(cmd.Context(), analyzeAPIKey, analyzeModel, contextJSON, args[1])
		}
	}
	return fmt.Errorf("team %q not found", args[0])
}

// buildPlayerContext serialises one player's rating breakdown into compact JSON.
func buildPlayerContext(p *model.PlayerWithPIV, team *model.TeamWithTIR, rep scout.Report) (string, error) {
	sideBlock := func(m *model.PlayerMetrics) map[string]interface{} {
		if m == nil {
			return nil
		}
		return map[string]interface{}{
			"role":      m.Role.String(),
			"rcs":       round3(m.RCS.Value),
			"icf":       round3(m.ICF.Value),
			"icf_sigma": round3(m.ICF.Sigma),
			"sc":        round3(m.SC.Value),
			"sc_metric": m.SC.Metric,
			"osm":       round3(m.OSM),
			"piv":       round3(m.PIV),
		}
	}

	doc := map[string]interface{}{
		"subject": "player",
		"player":  p.Name,
		"team":    p.Team,
		"role":    p.Role.String(),
		"is_igl":  p.IsIGL,
		"kd":      round3(p.KD),
		"piv":     round3(p.PIV),
		"sides": map[string]interface{}{
			"overall": sideBlock(p.Metrics),
			"t":       sideBlock(p.TMetrics),
			"ct":      sideBlock(p.CTMetrics),
		},
		"scout": map[string]interface{}{
			"overall":    round3(rep.Overall),
			"role_score": round3(rep.RoleScore),
			"synergy":    round3(rep.Synergy),
			"risk":       round3(rep.Risk),
			"low_sample": rep.LowSample,
		},
	}
	if team != nil {
		doc["team_tir"] = round3(team.TIR)
		doc["team_avg_piv"] = round3(team.AvgPIV)
	}

	b, err := json.Marshal(doc)
	return string(b), err
}

// buildTeamContext serialises one team's rating into compact JSON.
func buildTeamContext(t *model.TeamWithTIR, rank, totalTeams int) (string, error) {
	type rosterEntry struct {
		Name string  `json:"name"`
		Role string  `json:"role"`
		KD   float64 `json:"kd"`
		PIV  float64 `json:"piv"`
	}
	roster := make([]rosterEntry, 0, len(t.Players))
	for _, p := range t.Players {
		roster = append(roster, rosterEntry{
			Name: p.Name,
			Role: p.Role.String(),
			KD:   round3(p.KD),
			PIV:  round3(p.PIV),
		})
	}

	doc := map[string]interface{}{
		"subject":     "team",
		"team":        t.Name,
		"rank":        rank,
		"total_teams": totalTeams,
		"tir":         round3(t.TIR),
		"avg_piv":     round3(t.AvgPIV),
		"synergy":     round3(t.Synergy),
		"top_player":  t.TopPlayerName,
		"roster":      roster,
	}

	b, err := json.Marshal(doc)
	return string(b), err
}

// round3 rounds a float64 to 3 decimal places.
func round3(v float64) float64 {
	return float64(int(v*1000+0.5)) / 1000
}

// callAnthropic streams a response from the Anthropic API and prints it to stdout.
func callAnthropic(ctx context.Context, apiKey, modelID, dataJSON, question string) error {
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("no API key: set ANTHROPIC_API_KEY or use --api-key")
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	userMsg := fmt.Sprintf("DATA:\n%s\n\nQUESTION: %s", dataJSON, question)

	fmt.Fprintln(os.Stdout, "\n─── AI Analysis ─────────────────────────────────────")

	stream := client.Messages.NewStreaming(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(modelID),
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: analyzeSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userMsg)),
		},
	})

	for stream.Next() {
		evt := stream.Current()
		if evt.Type == "content_block_delta" {
			delta := evt.AsContentBlockDelta()
			if delta.Delta.Type == "text_delta" {
				fmt.Fprint(os.Stdout, delta.Delta.AsTextDelta().Text)
			}
		}
	}
	fmt.Fprintln(os.Stdout, "\n─────────────────────────────────────────────────────")

	if err := stream.Err(); err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "401") || strings.Contains(errStr, "authentication") {
			return fmt.Errorf("API authentication failed — check your API key")
		}
		return fmt.Errorf("streaming error: %w", err)
	}
	return nil
}
