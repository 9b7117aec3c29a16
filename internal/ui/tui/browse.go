package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/klauern/socials/internal/model"
)

// BrowseAction represents the action chosen for a selected record.
type BrowseAction int

const (
	// BrowseActionNone means no action was taken (user quit).
	BrowseActionNone BrowseAction = iota
	// BrowseActionSelect means the user picked a record to print.
	BrowseActionSelect
	// BrowseActionSelectRoot means the user picked the root of a record.
	BrowseActionSelectRoot
)

// BrowseResult contains the result of the browse TUI interaction.
type BrowseResult struct {
	Action BrowseAction
	Record model.Record
}

type browseKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Detail   key.Binding
	Select   key.Binding
	Root     key.Binding
	Platform key.Binding
	Filter   key.Binding
	ClearFlt key.Binding
	Help     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

func defaultBrowseKeyMap() browseKeyMap {
	return browseKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Detail: key.NewBinding(
			key.WithKeys("enter", "v"),
			key.WithHelp("enter/v", "details"),
		),
		Select: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "print url"),
		),
		Root: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "print root url"),
		),
		Platform: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next platform"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		ClearFlt: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("b/esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BrowseModel is the BubbleTea model for browsing extracted records.
type BrowseModel struct {
	table        table.Model
	records      []model.Record
	filtered     []model.Record
	platforms    []model.Platform
	platformIdx  int // 0 means all platforms; otherwise platforms[platformIdx-1]
	keys         browseKeyMap
	result       BrowseResult
	filter       string
	filtering    bool
	showHelp     bool
	width        int
	height       int
	columnWidths browseColumnWidths
	phase        browsePhase
	detail       model.Record
	viewport     viewport.Model
	ready        bool
	quitting     bool
}

var browseStyles = struct {
	Title       lipgloss.Style
	Help        lipgloss.Style
	Filter      lipgloss.Style
	FilterInput lipgloss.Style
	Status      lipgloss.Style
	DetailBox   lipgloss.Style
	DetailTitle lipgloss.Style
	Label       lipgloss.Style
}{
	Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")).Padding(0, 1),
	Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	Filter:      lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	FilterInput: lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),
	DetailBox:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	DetailTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
	Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
}

type browsePhase int

const (
	browsePhaseList browsePhase = iota
	browsePhaseDetail
)

const (
	browsePlatformWidth = 10
	browseTypeWidth     = 8
	browseIDWidth       = 22
	browseURLWidth      = 50
	browseColumnPadding = 2
	browseColumnCount   = 4
	browseDetailLines   = 3
	browseDetailGap     = 1
	browseDetailHeight  = browseDetailLines + 1 + 2 // title + content + border
)

type browseColumnWidths struct {
	platform int
	kind     int
	id       int
	url      int
}

// NewBrowseModel creates a browse model over records, kept in input order.
func NewBrowseModel(records []model.Record) BrowseModel {
	columns, widths := browseColumns(0)

	m := BrowseModel{
		records:      records,
		filtered:     records,
		platforms:    presentPlatforms(records),
		keys:         defaultBrowseKeyMap(),
		columnWidths: widths,
		phase:        browsePhaseList,
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(m.recordsToRows(records)),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m.table = t
	return m
}

// presentPlatforms lists the platforms that occur in records, in canonical order.
func presentPlatforms(records []model.Record) []model.Platform {
	seen := make(map[model.Platform]bool)
	for _, r := range records {
		seen[r.Platform()] = true
	}
	var platforms []model.Platform
	for _, p := range model.AllPlatforms() {
		if seen[p] {
			platforms = append(platforms, p)
		}
	}
	return platforms
}

func (m BrowseModel) recordsToRows(records []model.Record) []table.Row {
	rows := make([]table.Row, len(records))
	for i, r := range records {
		rows[i] = table.Row{
			truncateValue(string(r.Platform()), m.columnWidths.platform),
			truncateValue(string(r.EntityType()), m.columnWidths.kind),
			truncateValue(model.Identifier(r), m.columnWidths.id),
			truncateValue(r.RawURL(), m.columnWidths.url),
		}
	}
	return rows
}

func browseColumns(totalWidth int) ([]table.Column, browseColumnWidths) {
	widths := browseColumnWidths{
		platform: browsePlatformWidth,
		kind:     browseTypeWidth,
		id:       browseIDWidth,
		url:      browseURLWidth,
	}

	if totalWidth > 0 {
		baseTotal := widths.platform + widths.kind + widths.id + widths.url +
			(browseColumnPadding * browseColumnCount)
		if extra := totalWidth - baseTotal; extra > 0 {
			idExtra := extra / 3
			widths.id += idExtra
			widths.url += extra - idExtra
		}
	}

	columns := []table.Column{
		{Title: "Platform", Width: widths.platform},
		{Title: "Type", Width: widths.kind},
		{Title: "Identifier", Width: widths.id},
		{Title: "URL", Width: widths.url},
	}
	return columns, widths
}

func (m *BrowseModel) updateColumns(totalWidth int) {
	columns, widths := browseColumns(totalWidth)
	m.columnWidths = widths
	m.table.SetColumns(columns)
}

func (m BrowseModel) detailPanelWidth() int {
	if m.width > 0 {
		return m.width
	}
	return m.columnWidths.platform + m.columnWidths.kind + m.columnWidths.id + m.columnWidths.url +
		(browseColumnPadding * browseColumnCount)
}

func (m BrowseModel) renderDetailPanel() string {
	width := m.detailPanelWidth()
	contentWidth := max(width-4, 10)

	var summary string
	if r := m.selected(); r != nil {
		summary = formatFields(r.Fields())
		if parent := r.Parent(); parent != nil {
			summary += " ← " + parent.RawURL()
		}
	}
	if summary == "" {
		summary = "No record selected."
	}

	lines := padLines(wrapText(summary, contentWidth, browseDetailLines), browseDetailLines)
	header := browseStyles.DetailTitle.Render("Fields (selected)")
	content := append([]string{header}, lines...)

	return browseStyles.DetailBox.Width(width).Render(strings.Join(content, "\n"))
}

func formatFields(fields []model.Field) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.Name + "=" + f.Value
	}
	return strings.Join(parts, ", ")
}

// Init implements tea.Model.
func (m BrowseModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.phase == browsePhaseDetail {
		return m.updateDetail(msg)
	}
	return m.updateList(msg)
}

func (m BrowseModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(msg.Height-10-browseDetailHeight-browseDetailGap, 5))
		m.updateColumns(msg.Width)
		m.table.SetRows(m.recordsToRows(m.filtered))

	case tea.KeyMsg:
		if m.filtering {
			switch msg.String() {
			case "enter":
				m.filtering = false
			case "esc":
				m.filter = ""
				m.filtering = false
				m.applyFilter()
			case "backspace":
				if len(m.filter) > 0 {
					m.filter = m.filter[:len(m.filter)-1]
					m.applyFilter()
				}
			default:
				if len(msg.Runes) > 0 {
					m.filter += string(msg.Runes)
					m.applyFilter()
				}
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.Filter):
			m.filtering = true
			return m, nil

		case key.Matches(msg, m.keys.ClearFlt):
			m.filter = ""
			m.applyFilter()
			return m, nil

		case key.Matches(msg, m.keys.Platform):
			m.platformIdx = (m.platformIdx + 1) % (len(m.platforms) + 1)
			m.applyFilter()
			return m, nil

		case key.Matches(msg, m.keys.Detail):
			if r := m.selected(); r != nil {
				m.detail = r
				m.phase = browsePhaseDetail
				m.ready = false
				m.ensureDetailViewport()
			}
			return m, nil

		case key.Matches(msg, m.keys.Select):
			return m.finish(BrowseActionSelect)

		case key.Matches(msg, m.keys.Root):
			return m.finish(BrowseActionSelectRoot)
		}
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m BrowseModel) finish(action BrowseAction) (tea.Model, tea.Cmd) {
	r := m.selected()
	if r == nil {
		return m, nil
	}
	if action == BrowseActionSelectRoot {
		r = model.Root(r)
	}
	m.result = BrowseResult{Action: action, Record: r}
	m.quitting = true
	return m, tea.Quit
}

func (m BrowseModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureDetailViewport()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.phase = browsePhaseList
			return m, nil
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// currentPlatform returns the platform the list is narrowed to, or "" for all.
func (m BrowseModel) currentPlatform() model.Platform {
	if m.platformIdx == 0 || m.platformIdx > len(m.platforms) {
		return ""
	}
	return m.platforms[m.platformIdx-1]
}

func (m *BrowseModel) applyFilter() {
	platform := m.currentPlatform()
	lowerFilter := strings.ToLower(m.filter)

	if platform == "" && lowerFilter == "" {
		m.filtered = m.records
	} else {
		var filtered []model.Record
		for _, r := range m.records {
			if platform != "" && r.Platform() != platform {
				continue
			}
			if lowerFilter != "" && !matchesFilter(r, lowerFilter) {
				continue
			}
			filtered = append(filtered, r)
		}
		m.filtered = filtered
	}
	m.table.SetRows(m.recordsToRows(m.filtered))
}

func matchesFilter(r model.Record, lowerFilter string) bool {
	if strings.Contains(strings.ToLower(r.RawURL()), lowerFilter) ||
		strings.Contains(string(r.Platform()), lowerFilter) ||
		strings.Contains(string(r.EntityType()), lowerFilter) {
		return true
	}
	for _, f := range r.Fields() {
		if strings.Contains(strings.ToLower(f.Value), lowerFilter) {
			return true
		}
	}
	return false
}

func (m BrowseModel) selected() model.Record {
	cursor := m.table.Cursor()
	if cursor >= 0 && cursor < len(m.filtered) {
		return m.filtered[cursor]
	}
	return nil
}

// View implements tea.Model.
func (m BrowseModel) View() string {
	if m.quitting {
		return ""
	}
	if m.phase == browsePhaseDetail {
		return m.viewDetail()
	}

	var b strings.Builder

	title := "Extracted Profiles"
	if p := m.currentPlatform(); p != "" {
		title += " · " + DisplayName(p)
	}
	b.WriteString(browseStyles.Title.Render(title))
	b.WriteString("\n\n")

	if m.filter != "" || m.filtering {
		filterVal := browseStyles.FilterInput.Render(m.filter)
		if m.filtering {
			filterVal += "█"
		}
		b.WriteString(browseStyles.Filter.Render("Filter: ") + filterVal + "\n\n")
	}

	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(m.renderDetailPanel())
	b.WriteString("\n")

	status := fmt.Sprintf("%d record(s)", len(m.filtered))
	if len(m.filtered) != len(m.records) {
		status = fmt.Sprintf("%d of %d record(s) (filtered)", len(m.filtered), len(m.records))
	}
	b.WriteString(browseStyles.Status.Render(status))
	b.WriteString("\n")

	if m.showHelp {
		b.WriteString("\n")
		b.WriteString(m.renderFullHelp())
	} else {
		b.WriteString(m.renderShortHelp())
	}

	return b.String()
}

func (m BrowseModel) viewDetail() string {
	m.ensureDetailViewport()
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder

	title := fmt.Sprintf("%s %s", DisplayName(m.detail.Platform()), m.detail.EntityType())
	b.WriteString(browseStyles.Title.Render(title))
	b.WriteString("\n\n")

	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	scrollPercent := int(m.viewport.ScrollPercent() * 100)
	b.WriteString(browseStyles.Status.Render(fmt.Sprintf("Scroll: %d%% • Press b or Esc to go back", scrollPercent)))
	b.WriteString("\n")

	if m.showHelp {
		b.WriteString("\n")
		b.WriteString(m.renderDetailHelp())
	} else {
		b.WriteString(browseStyles.Help.Render(strings.Join([]string{"↑/↓ scroll", "b back", "? help", "q quit"}, " • ")))
	}

	return b.String()
}

func (m *BrowseModel) ensureDetailViewport() {
	if m.width <= 0 || m.height <= 0 {
		return
	}

	viewportHeight := max(m.height-8, 5)

	if !m.ready {
		m.viewport = viewport.New(m.width-2, viewportHeight)
		m.viewport.SetContent(m.buildDetailContent())
		m.ready = true
		return
	}

	m.viewport.Width = m.width - 2
	m.viewport.Height = viewportHeight
	m.viewport.SetContent(m.buildDetailContent())
}

func (m BrowseModel) buildDetailContent() string {
	r := m.detail
	if r == nil {
		return "No record selected."
	}

	var b strings.Builder
	indent := "  "

	b.WriteString(browseStyles.DetailTitle.Render("Record"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%sURL: %s\n", indent, r.RawURL())
	fmt.Fprintf(&b, "%sPlatform: %s\n", indent, DisplayName(r.Platform()))
	fmt.Fprintf(&b, "%sType: %s\n", indent, r.EntityType())

	b.WriteString("\n")
	b.WriteString(browseStyles.DetailTitle.Render("Fields"))
	b.WriteString("\n")
	fields := r.Fields()
	if len(fields) == 0 {
		b.WriteString(indent + browseStyles.Label.Render("none") + "\n")
	}
	for _, f := range fields {
		fmt.Fprintf(&b, "%s%s: %s\n", indent, f.Name, f.Value)
	}

	ancestors := model.Ancestors(r)
	if len(ancestors) > 0 {
		b.WriteString("\n")
		b.WriteString(browseStyles.DetailTitle.Render("Hierarchy"))
		b.WriteString("\n")
		for i, a := range ancestors {
			fmt.Fprintf(&b, "%s%s%s %s\n", indent, strings.Repeat("  ", i), a.EntityType(), a.RawURL())
		}
	}

	return b.String()
}

func (m BrowseModel) renderShortHelp() string {
	keys := []string{
		"↑/↓ navigate",
		"enter details",
		"tab platform",
		"y print url",
		"/ filter",
		"? help",
		"q quit",
	}
	return browseStyles.Help.Render(strings.Join(keys, " • "))
}

func (m BrowseModel) renderFullHelp() string {
	help := `Navigation:
  ↑/k      Move up
  ↓/j      Move down
  g/Home   Go to top
  G/End    Go to bottom

Actions:
  Enter/v  View details
  y        Print the selected URL and quit
  r        Print the root URL and quit
  Tab      Cycle platform

Filter:
  /        Start filtering (by URL, platform, type, or field value)
  Esc      Clear filter
  Enter    Finish filtering

General:
  ?        Toggle full help
  q        Quit`
	return browseStyles.Help.Render(help)
}

func (m BrowseModel) renderDetailHelp() string {
	help := `Navigation:
  ↑/k      Scroll up
  ↓/j      Scroll down

Actions:
  b/Esc    Back to list

General:
  ?        Toggle full help
  q        Quit`
	return browseStyles.Help.Render(help)
}

// Result returns the result of the user interaction.
func (m BrowseModel) Result() BrowseResult {
	return m.result
}

// RunBrowse runs the interactive record browser and returns the result.
func RunBrowse(records []model.Record) (BrowseResult, error) {
	if len(records) == 0 {
		return BrowseResult{}, nil
	}

	finalModel, err := Run(NewBrowseModel(records), tea.WithAltScreen())
	if err != nil {
		return BrowseResult{}, err
	}

	if m, ok := finalModel.(BrowseModel); ok {
		return m.Result(), nil
	}
	return BrowseResult{}, nil
}
