package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/hilite/highlight"
	"github.com/iw2rmb/hilite/internal/log"
	"github.com/iw2rmb/hilite/richtext"
)

type keyMap struct {
	Quit  key.Binding
	Clear key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:  key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
		Clear: key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear")),
	}
}

type viewStyles struct {
	Title lipgloss.Style
	Name  lipgloss.Style
	Phone lipgloss.Style
	Help  lipgloss.Style
}

func newViewStyles(r *lipgloss.Renderer) viewStyles {
	return viewStyles{
		Title: r.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Name:  r.NewStyle(),
		Phone: r.NewStyle().Foreground(lipgloss.Color("250")),
		Help:  r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// newHighlightStyle mirrors highlight.DefaultStyle on a specific renderer.
func newHighlightStyle(r *lipgloss.Renderer) highlight.Style {
	return highlight.Style{
		Prefix: r.NewStyle().Bold(true),
		Mask:   r.NewStyle().Background(lipgloss.Color("237")),
	}
}

// contactMatch is a contact with its highlighted fields.
type contactMatch struct {
	Name  *richtext.Text
	Phone *richtext.Text
}

type model struct {
	hl       *highlight.Highlighter
	contacts []Contact
	input    textinput.Model
	keys     keyMap
	styles   viewStyles

	nameWidth int
	width     int
	height    int
}

func newModel(contacts []Contact, r *lipgloss.Renderer) model {
	in := textinput.New()
	in.Placeholder = "name or number"
	in.Prompt = "search: "
	in.Focus()

	nameWidth := 0
	for _, c := range contacts {
		nameWidth = max(nameWidth, runewidth.StringWidth(c.Name))
	}

	return model{
		hl:        highlight.New(highlight.Config{Style: newHighlightStyle(r)}),
		contacts:  contacts,
		input:     in,
		keys:      defaultKeyMap(),
		styles:    newViewStyles(r),
		nameWidth: nameWidth,
	}
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Clear):
			m.input.SetValue("")
			return m, nil
		}
	}

	prev := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if q := m.input.Value(); q != prev {
		log.Debug(log.CatSearch, "query changed", "query", q, "matches", len(m.matches()))
	}
	return m, cmd
}

// match highlights c for query. The bool is false when query is non-empty
// and neither field matches.
func (m model) match(c Contact, query string) (contactMatch, bool) {
	name := m.hl.ApplyPrefixHighlight(c.Name, query)
	phone := richtext.New(c.Phone)

	if r, ok := dialRange(c.Phone, query); ok {
		if err := m.hl.ApplyMaskingHighlight(phone, r.Start, r.End); err != nil {
			log.ErrorErr(log.CatSearch, "mask phone", err, "phone", c.Phone, "start", r.Start, "end", r.End)
		}
	}

	matched := query == "" || name.IsSpanned() || phone.IsSpanned()
	return contactMatch{Name: name, Phone: phone}, matched
}

func (m model) matches() []contactMatch {
	query := strings.TrimSpace(m.input.Value())
	out := make([]contactMatch, 0, len(m.contacts))
	for _, c := range m.contacts {
		if cm, ok := m.match(c, query); ok {
			out = append(out, cm)
		}
	}
	return out
}

func (m model) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Contacts"))
	sb.WriteString("\n\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")

	rows := m.matches()
	limit := len(rows)
	if m.height > 0 {
		limit = min(limit, max(m.height-6, 0))
	}
	for _, cm := range rows[:limit] {
		pad := m.nameWidth - runewidth.StringWidth(cm.Name.String())
		sb.WriteString(cm.Name.Render(m.styles.Name))
		sb.WriteString(strings.Repeat(" ", max(pad, 0)+2))
		sb.WriteString(cm.Phone.Render(m.styles.Phone))
		sb.WriteByte('\n')
	}
	if len(rows) == 0 {
		sb.WriteString(m.styles.Help.Render("no matches"))
		sb.WriteByte('\n')
	}

	sb.WriteByte('\n')
	sb.WriteString(m.styles.Help.Render(fmt.Sprintf("%d/%d  %s  %s",
		len(rows), len(m.contacts), helpText(m.keys.Clear), helpText(m.keys.Quit))))
	return sb.String()
}

func helpText(b key.Binding) string {
	h := b.Help()
	return h.Key + " " + h.Desc
}
