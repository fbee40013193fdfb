// Package tui provides an interactive browser over classified report
// buckets: a bucket list on the left, the rendered entry lines on the right.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/askeland/standup/internal/classify"
	"github.com/askeland/standup/internal/entry"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	listStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	contentStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// keyMap defines the key bindings for the bucket browser.
type keyMap struct {
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// bucketItem adapts a classify.Bucket to the bubbles list interface.
type bucketItem struct {
	bucket classify.Bucket
}

func (i bucketItem) Title() string { return i.bucket.Name }
func (i bucketItem) Description() string {
	return fmt.Sprintf("%s, %d entries", entry.FormatDuration(i.bucket.TotalMinutes()), len(i.bucket.Entries))
}
func (i bucketItem) FilterValue() string { return i.bucket.Name }

// Model is the bucket browser TUI model.
type Model struct {
	title    string
	buckets  []classify.Bucket
	list     list.Model
	viewport viewport.Model
	keys     keyMap
	width    int
	height   int
	ready    bool
}

// New creates a bucket browser for the given buckets.
func New(title string, buckets []classify.Bucket) Model {
	items := make([]list.Item, 0, len(buckets))
	for _, b := range buckets {
		items = append(items, bucketItem{bucket: b})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Buckets"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	return Model{
		title:   title,
		buckets: buckets,
		list:    l,
		keys:    defaultKeyMap(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.ready = true
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport.SetContent(m.selectedContent())
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View implements tea.Model
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	title := titleStyle.Render(m.title)
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		listStyle.Render(m.list.View()),
		contentStyle.Render(m.viewport.View()),
	)
	status := statusStyle.Render("↑/↓ select bucket · q quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, body, status)
}

// resize distributes the window between the list and the content viewport.
func (m *Model) resize() {
	listWidth := m.width / 3
	if listWidth < 24 {
		listWidth = 24
	}
	contentWidth := m.width - listWidth - 6
	if contentWidth < 20 {
		contentWidth = 20
	}
	bodyHeight := m.height - 4
	if bodyHeight < 5 {
		bodyHeight = 5
	}

	m.list.SetSize(listWidth, bodyHeight)
	m.viewport = viewport.New(contentWidth, bodyHeight)
	m.viewport.SetContent(m.selectedContent())
}

// selectedContent renders the currently selected bucket's entry lines.
func (m Model) selectedContent() string {
	item, ok := m.list.SelectedItem().(bucketItem)
	if !ok {
		return "No buckets to show."
	}

	var sb strings.Builder
	for _, e := range item.bucket.Entries {
		sb.WriteString(classify.RenderLine(e))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Run starts the bucket browser and blocks until the user quits.
func Run(title string, buckets []classify.Bucket) error {
	p := tea.NewProgram(New(title, buckets), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
