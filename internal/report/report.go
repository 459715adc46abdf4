package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/lvgk/csimpact/internal/model"
	"github.com/lvgk/csimpact/internal/scout"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintPlayerTable prints the rated players table to stdout.
// If focusName is non-empty, that player's row is marked with ">".
func PrintPlayerTable(players []*model.PlayerWithPIV, focusName string) {
	PrintPlayerTableTo(os.Stdout, players, focusName)
}

// PrintPlayerTableTo writes the rated players table to the provided writer.
func PrintPlayerTableTo(w io.Writer, players []*model.PlayerWithPIV, focusName string) {
	table := newTable(w)
	table.Header(" ", "NAME", "TEAM", "ROLE", "K/D", "PIV", "T_PIV", "CT_PIV", "RCS", "ICF", "SC", "OSM")

	for _, p := range players {
		marker := " "
		if focusName != "" && p.Name == focusName {
			marker = ">"
		}
		role := p.Role.String()
		if p.IsIGL && p.Role != model.RoleIGL {
			role += " (IGL)"
		}
		table.Append(
			marker,
			p.Name,
			p.Team,
			role,
			fmt.Sprintf("%.2f", p.KD),
			fmt.Sprintf("%.3f", p.PIV),
			fmt.Sprintf("%.3f", p.TPIV),
			fmt.Sprintf("%.3f", p.CTPIV),
			metricCell(p.Metrics, func(m *model.PlayerMetrics) float64 { return m.RCS.Value }),
			metricCell(p.Metrics, func(m *model.PlayerMetrics) float64 { return m.ICF.Value }),
			metricCell(p.Metrics, func(m *model.PlayerMetrics) float64 { return m.SC.Value }),
			metricCell(p.Metrics, func(m *model.PlayerMetrics) float64 { return m.OSM }),
		)
	}
	table.Render()
}

func metricCell(m *model.PlayerMetrics, f func(*model.PlayerMetrics) float64) string {
	if m == nil {
		return "—"
	}
	return fmt.Sprintf("%.3f", f(m))
}

// PrintTeamTable writes the ranked teams table to the provided writer.
// Teams are expected already sorted by TIR descending.
func PrintTeamTable(w io.Writer, teams []*model.TeamWithTIR) {
	table := newTable(w)
	table.Header("RANK", "TEAM", "SIZE", "TIR", "AVG_PIV", "SYNERGY", "TOP_PLAYER", "TOP_PIV")

	for i, t := range teams {
		table.Append(
			strconv.Itoa(i+1),
			t.Name,
			strconv.Itoa(len(t.Players)),
			fmt.Sprintf("%.3f", t.TIR),
			fmt.Sprintf("%.3f", t.AvgPIV),
			fmt.Sprintf("%.3f", t.Synergy),
			t.TopPlayerName,
			fmt.Sprintf("%.3f", t.TopPlayerPIV),
		)
	}
	table.Render()
}

// PrintScoutTable writes scout reports to the provided writer.
func PrintScoutTable(w io.Writer, reports []scout.Report) {
	table := newTable(w)
	table.Header(" ", "NAME", "TEAM", "ROLE", "OVERALL", "ROLE_SCORE", "SYNERGY", "RISK")

	for _, r := range reports {
		marker := " "
		if r.LowSample {
			marker = "*"
		}
		table.Append(
			marker,
			r.Name,
			r.Team,
			r.Role,
			fmt.Sprintf("%.1f", r.Overall),
			fmt.Sprintf("%.1f", r.RoleScore),
			fmt.Sprintf("%.1f", r.Synergy),
			fmt.Sprintf("%.1f", r.Risk),
		)
	}
	table.Render()
	fmt.Fprintln(w, "\n* role score replaced by population median (low sample)")
}

// PrintPlayerDetail writes one player's full metric breakdown.
func PrintPlayerDetail(w io.Writer, p *model.PlayerWithPIV) {
	fmt.Fprintf(w, "\n%s  |  Team: %s  |  Role: %s  |  K/D: %.2f  |  PIV: %.3f\n\n",
		p.Name, p.Team, p.Role, p.KD, p.PIV)

	table := newTable(w)
	table.Header("SIDE", "ROLE", "RCS", "ICF", "SIGMA", "SC", "SC_METRIC", "OSM", "PIV")

	for _, m := range []*model.PlayerMetrics{p.Metrics, p.TMetrics, p.CTMetrics} {
		if m == nil {
			continue
		}
		table.Append(
			string(m.Side),
			m.Role.String(),
			fmt.Sprintf("%.3f", m.RCS.Value),
			fmt.Sprintf("%.3f", m.ICF.Value),
			fmt.Sprintf("%.3f", m.ICF.Sigma),
			fmt.Sprintf("%.3f", m.SC.Value),
			m.SC.Metric,
			fmt.Sprintf("%.3f", m.OSM),
			fmt.Sprintf("%.3f", m.PIV),
		)
	}
	table.Render()

	if p.Metrics != nil && len(p.Metrics.NormalizedMetrics) > 0 {
		fmt.Fprintln(w, "\nNormalized role metrics:")
		names := make([]string, 0, len(p.Metrics.NormalizedMetrics))
		for name := range p.Metrics.NormalizedMetrics {
			names = append(names, name)
		}
		sort.Strings(names)

		mt := newTable(w)
		mt.Header("METRIC", "RAW", "NORMALIZED")
		for _, name := range names {
			mt.Append(name,
				fmt.Sprintf("%.4f", p.Metrics.RoleMetrics[name]),
				fmt.Sprintf("%.4f", p.Metrics.NormalizedMetrics[name]))
		}
		mt.Render()
	}
}
