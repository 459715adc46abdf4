package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lvgk/csimpact/internal/report"
)

var (
	playersFocus string
	playersTeam  string
	playersSort  string
)

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "Show rated players",
	RunE:  runPlayers,
}

func init() {
	playersCmd.Flags().StringVar(&playersFocus, "focus", "", "player name to mark and detail")
	playersCmd.Flags().StringVar(&playersTeam, "team", "", "only show players from this team")
	playersCmd.Flags().StringVar(&playersSort, "sort", "piv", "sort order: piv, kd, or name")
}

func runPlayers(cmd *cobra.Command, args []string) error {
	db, result, _, err := loadAndRate()
	if err != nil {
		return err
	}
	defer db.Close()

	players := result.Players
	if playersTeam != "" {
		filtered := players[:0:0]
		for _, p := range players {
			if strings.EqualFold(p.Team, playersTeam) {
				filtered = append(filtered, p)
			}
		}
		players = filtered
	}

	switch playersSort {
	case "piv":
		sort.SliceStable(players, func(i, j int) bool { return players[i].PIV > players[j].PIV })
	case "kd":
		sort.SliceStable(players, func(i, j int) bool { return players[i].KD > players[j].KD })
	case "name":
		sort.SliceStable(players, func(i, j int) bool { return players[i].Name < players[j].Name })
	default:
		return fmt.Errorf("unknown sort order %q", playersSort)
	}

	cHeader.Println("\nRated players")
	cMuted.Printf("%d players, sorted by %s\n\n", len(players), playersSort)
	report.PrintPlayerTableTo(os.Stdout, players, playersFocus)

	if playersFocus != "" {
		for _, p := range players {
			if strings.EqualFold(p.Name, playersFocus) {
				report.PrintPlayerDetail(os.Stdout, p)
				break
			}
		}
	}
	return nil
}
