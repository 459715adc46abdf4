package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lvgk/csimpact/internal/model"
	"github.com/lvgk/csimpact/internal/scout"
)

var (
	exportOut   string
	exportScout bool
)

// ratingsFile is the top-level JSON schema produced by export.
type ratingsFile struct {
	GeneratedAt string                 `json:"generated_at"`
	Players     []*model.PlayerWithPIV `json:"players"`
	Teams       []*model.TeamWithTIR   `json:"teams"`
	Scout       []scout.Report         `json:"scout,omitempty"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export computed ratings as JSON",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (default stdout)")
	exportCmd.Flags().BoolVar(&exportScout, "scout", false, "include scout reports")
}

func runExport(cmd *cobra.Command, args []string) error {
	db, result, rounds, err := loadAndRate()
	if err != nil {
		return err
	}
	defer db.Close()

	out := ratingsFile{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Players:     result.Players,
		Teams:       result.Teams,
	}

	if exportScout {
		teamByName := make(map[string]*model.TeamWithTIR, len(result.Teams))
		for _, t := range result.Teams {
			teamByName[t.Name] = t
		}
		for _, p := range result.Players {
			out.Scout = append(out.Scout, scout.Score(p, teamByName[p.Team], result.Players, rounds))
		}
	}

	w := os.Stdout
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode ratings: %w", err)
	}
	if exportOut != "" {
		fmt.Printf("Wrote %d players and %d teams to %s\n", len(out.Players), len(out.Teams), exportOut)
	}
	return nil
}
