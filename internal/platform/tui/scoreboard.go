package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/quadpong/internal/core"
)

// Scoreboard panel layout constants
const (
	panelWidth     = 30
	nameColWidth   = 10
	colorColWidth  = 7
	scoreColWidth  = 5
	panelMinHeight = 4
)

type scoreEntry struct {
	id    int
	name  string
	color core.Color
	score int
	order int
}

// ScorePanel implements game.Scoreboard as a side panel next to the arena.
type ScorePanel struct {
	entries map[int]*scoreEntry
	next    int
	table   table.Model
}

// NewScorePanel creates an empty scoreboard panel.
func NewScorePanel() *ScorePanel {
	p := &ScorePanel{entries: make(map[int]*scoreEntry)}
	p.table = p.createTable(panelMinHeight)
	return p
}

// createTable creates the score table with the panel's fixed columns.
func (p *ScorePanel) createTable(height int) table.Model {
	columns := []table.Column{
		{Title: "Player", Width: nameColWidth},
		{Title: "Color", Width: colorColWidth},
		{Title: "Score", Width: scoreColWidth},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	return t
}

func (p *ScorePanel) Clear() {
	clear(p.entries)
	p.next = 0
	p.updateTableRows()
}

func (p *ScorePanel) Create(playerID int, name string, color core.Color, score int) {
	p.entries[playerID] = &scoreEntry{
		id:    playerID,
		name:  name,
		color: color,
		score: score,
		order: p.next,
	}
	p.next++
	p.updateTableRows()
}

func (p *ScorePanel) UpdateScore(playerID int, score int) {
	e, ok := p.entries[playerID]
	if !ok {
		return
	}
	e.score = score
	p.updateTableRows()
}

// Score returns a player's displayed score.
func (p *ScorePanel) Score(playerID int) (int, bool) {
	e, ok := p.entries[playerID]
	if !ok {
		return 0, false
	}
	return e.score, true
}

// Len returns the number of entries.
func (p *ScorePanel) Len() int {
	return len(p.entries)
}

func (p *ScorePanel) sorted() []*scoreEntry {
	list := make([]*scoreEntry, 0, len(p.entries))
	for _, e := range p.entries {
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].order < list[j].order })
	return list
}

// updateTableRows refreshes the table from the entries in creation order.
func (p *ScorePanel) updateTableRows() {
	entries := p.sorted()
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{e.name, e.color.String(), fmt.Sprintf("%d", e.score)}
	}
	p.table.SetHeight(max(len(rows)+1, panelMinHeight))
	p.table.SetRows(rows)
}

// View renders the panel: a title, the score table and a colored legend.
func (p *ScorePanel) View(status string) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("QUADPONG"))
	b.WriteString("\n")
	b.WriteString(p.table.View())
	b.WriteString("\n\n")

	for _, e := range p.sorted() {
		style := colorStyle(e.color).Bold(true)
		b.WriteString(style.Render(fmt.Sprintf("%s %s", string(fillRune), e.name)))
		b.WriteString("\n")
	}

	if status != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(status))
	}

	return lipgloss.NewStyle().Width(panelWidth).PaddingLeft(2).Render(b.String())
}
