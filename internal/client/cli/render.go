package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/client/tracker"
)

var (
	primary = lipgloss.Color("#00ADD8")
	accent  = lipgloss.Color("#CE3262")
	success = lipgloss.Color("#00D9A5")
	warning = lipgloss.Color("#FFB84D")
	danger  = lipgloss.Color("#FF5A87")
	muted   = lipgloss.Color("#6B7B8C")

	titleStyle = lipgloss.NewStyle().
			Foreground(primary).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			PaddingRight(1)

	cellStyle = lipgloss.NewStyle().
			PaddingRight(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(muted).
			Width(14)

	laneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 1).
			Width(24)

	successStyle = lipgloss.NewStyle().Foreground(success).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(warning)
	errorStyle   = lipgloss.NewStyle().Foreground(danger).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(muted).Italic(true)
)

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}

func statusChoices() string {
	all := models.AllStatuses()
	out := make([]string, len(all))
	for i, s := range all {
		out[i] = string(s)
	}
	return strings.Join(out, "/")
}

func orDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func renderList(list []models.Application) string {
	if len(list) == 0 {
		return infoStyle.Render("No applications yet. Use 'add' to create one.")
	}

	widths := []int{6, 24, 24, 11, 11, 18}
	row := func(style lipgloss.Style, cells ...string) string {
		rendered := make([]string, len(cells))
		for i, c := range cells {
			rendered[i] = style.Width(widths[i]).Render(truncate(c, widths[i]-1))
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	}

	var b strings.Builder
	b.WriteString(row(headerStyle, "ID", "Company", "Role", "Status", "Applied", "Location"))
	b.WriteString("\n")
	for _, a := range list {
		b.WriteString(row(cellStyle,
			fmt.Sprintf("#%d", a.ID),
			a.CompanyName,
			a.Role,
			orDash(string(a.Status.Canonical())),
			orDash(a.DateOnly()),
			orDash(a.Location),
		))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderApplication(a models.Application) string {
	lines := []string{
		titleStyle.Render(fmt.Sprintf("#%d %s, %s", a.ID, a.CompanyName, a.Role)),
	}
	fields := []struct{ label, value string }{
		{"Status", string(a.Status.Canonical())},
		{"Company size", a.CompanySize},
		{"Job URL", a.JobURL},
		{"Applied", a.DateOnly()},
		{"Location", a.Location},
		{"Recruiter", a.Recruiter},
		{"Last activity", a.LastActivity},
		{"Created", a.CreatedAt},
		{"Updated", a.UpdatedAt},
	}
	for _, f := range fields {
		lines = append(lines, labelStyle.Render(f.label)+orDash(f.value))
	}
	if a.Notes != "" {
		lines = append(lines, labelStyle.Render("Notes"), a.Notes)
	}
	return strings.Join(lines, "\n")
}

func renderUser(u *models.User) string {
	lines := []string{
		titleStyle.Render(u.DisplayName()),
		labelStyle.Render("Email") + u.Email,
		labelStyle.Render("ID") + fmt.Sprint(u.ID),
		labelStyle.Render("Verified") + fmt.Sprint(u.IsVerified),
	}
	return strings.Join(lines, "\n")
}

func renderStats(agg tracker.Aggregates) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Statistics"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Total") + fmt.Sprint(agg.Total) + "\n")
	b.WriteString(labelStyle.Render("Active") + fmt.Sprint(agg.Active) + "\n")

	for _, s := range models.AllStatuses() {
		n := agg.Count(s)
		pct := agg.Percentage(s)
		bar := strings.Repeat("█", int(pct/5))
		b.WriteString(fmt.Sprintf("%s%3d %5.1f%% %s\n", labelStyle.Render(string(s)), n, pct, bar))
	}
	if agg.Unrecognized > 0 {
		b.WriteString(labelStyle.Render("no status") + fmt.Sprint(agg.Unrecognized) + "\n")
	}

	if len(agg.Recent) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Recent activity"))
		b.WriteString("\n")
		for _, a := range agg.Recent {
			when := "-"
			if t, ok := a.ActivityTime(); ok {
				when = t.Format("2006-01-02 15:04")
			}
			b.WriteString(fmt.Sprintf("%s #%d %s, %s\n", labelStyle.Render(when), a.ID, a.CompanyName, a.Role))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderBoard(lanes []tracker.Lane) string {
	if len(lanes) == 0 {
		return infoStyle.Render("No board columns selected. Use 'columns reset' to restore the defaults.")
	}

	rendered := make([]string, len(lanes))
	for i, lane := range lanes {
		lines := []string{headerStyle.Render(fmt.Sprintf("%s (%d)", lane.Label, len(lane.Items)))}
		if len(lane.Items) == 0 {
			lines = append(lines, infoStyle.Render("No applications"))
		}
		for _, a := range lane.Items {
			lines = append(lines, truncate(fmt.Sprintf("#%d %s", a.ID, a.CompanyName), 22))
			lines = append(lines, infoStyle.Render(truncate(a.Role, 22)))
		}
		rendered[i] = laneStyle.Render(strings.Join(lines, "\n"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func renderColumnOptions(selected []string) string {
	pos := make(map[string]int, len(selected))
	for i, k := range selected {
		pos[k] = i + 1
	}

	opts := tracker.ColumnOptions()
	sort.SliceStable(opts, func(i, j int) bool {
		pi, pj := pos[opts[i].Key], pos[opts[j].Key]
		if pi == 0 || pj == 0 {
			return pi != 0 && pj == 0
		}
		return pi < pj
	})

	lines := []string{titleStyle.Render("Board columns")}
	for _, c := range opts {
		mark := "[ ]"
		if pos[c.Key] > 0 {
			mark = "[x]"
		}
		lines = append(lines, fmt.Sprintf("%s %-13s %s", mark, c.Key, infoStyle.Render(c.Label)))
	}
	return strings.Join(lines, "\n")
}
