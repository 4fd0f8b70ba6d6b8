// Package tui provides the terminal browse screen for Hushbook.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hushbook/hushbook/internal/locale"
	"github.com/hushbook/hushbook/internal/model"
	"github.com/hushbook/hushbook/internal/output"
	"github.com/hushbook/hushbook/internal/storage"
)

// tab identifies which collection is shown.
type tab int

const (
	tabContacts tab = iota
	tabPlaces
)

// errMsg is sent when loading data fails.
type errMsg struct {
	err error
}

// loadedMsg carries freshly loaded collections.
type loadedMsg struct {
	contacts []*model.Contact
	places   []*model.Place
}

// BrowseModel is the bubbletea model for the read-only browse screen.
type BrowseModel struct {
	// Data
	contacts []*model.Contact
	places   []*model.Place

	// Repositories
	contactRepo *storage.ContactRepo
	placeRepo   *storage.PlaceRepo

	// UI state
	active tab
	cursor int
	width  int
	height int
	err    error

	translator *locale.Translator
	styles     output.Styles
}

// BrowseConfig holds configuration for the browse screen.
type BrowseConfig struct {
	ContactRepo *storage.ContactRepo
	PlaceRepo   *storage.PlaceRepo
	Translator  *locale.Translator
	Palette     output.Palette
}

// NewBrowseModel creates a new browse model.
func NewBrowseModel(config BrowseConfig) *BrowseModel {
	return &BrowseModel{
		contactRepo: config.ContactRepo,
		placeRepo:   config.PlaceRepo,
		translator:  config.Translator,
		styles:      output.NewStyles(config.Palette),
	}
}

// Init initializes the model.
func (m *BrowseModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m *BrowseModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		contacts, err := m.contactRepo.Load()
		if err != nil {
			return errMsg{err}
		}
		places, err := m.placeRepo.Load()
		if err != nil {
			return errMsg{err}
		}
		return loadedMsg{contacts: contacts, places: places}
	}
}

// Update handles messages and updates the model.
func (m *BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loadedMsg:
		m.contacts = msg.contacts
		m.places = msg.places
		m.clampCursor()
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

func (m *BrowseModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit

	case "tab", "right", "l":
		if m.active == tabContacts {
			m.active = tabPlaces
		} else {
			m.active = tabContacts
		}
		m.cursor = 0
		return m, nil

	case "left", "h":
		m.active = tabContacts
		m.cursor = 0
		return m, nil

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		m.cursor++
		m.clampCursor()
		return m, nil

	case "r":
		return m, m.loadCmd()
	}

	return m, nil
}

func (m *BrowseModel) clampCursor() {
	max := len(m.contacts)
	if m.active == tabPlaces {
		max = len(m.places)
	}
	if max == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= max {
		m.cursor = max - 1
	}
}

// View renders the browse screen.
func (m *BrowseModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(m.err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	if m.active == tabContacts {
		b.WriteString(m.renderContacts())
	} else {
		b.WriteString(m.renderPlaces())
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("tab: switch  ↑/↓: move  r: reload  q: quit"))
	return b.String()
}

func (m *BrowseModel) renderTabs() string {
	contactsLabel := fmt.Sprintf("%s (%d)", m.translator.T("contacts.title"), len(m.contacts))
	placesLabel := fmt.Sprintf("%s (%d)", m.translator.T("places.title"), len(m.places))

	activeStyle := m.styles.Title
	inactiveStyle := m.styles.Muted

	if m.active == tabContacts {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			activeStyle.Render(contactsLabel), "   ", inactiveStyle.Render(placesLabel))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		inactiveStyle.Render(contactsLabel), "   ", activeStyle.Render(placesLabel))
}

func (m *BrowseModel) renderContacts() string {
	if len(m.contacts) == 0 {
		return m.styles.Muted.Render(m.translator.T("contacts.empty"))
	}

	var b strings.Builder
	for i, c := range m.contacts {
		line := fmt.Sprintf("%s  %s", c.Name, c.Contact)
		if c.KeepAfterWipe {
			line += "  [" + m.translator.T("contacts.keep") + "]"
		}
		b.WriteString(m.renderRow(i, line))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *BrowseModel) renderPlaces() string {
	if len(m.places) == 0 {
		return m.styles.Muted.Render(m.translator.T("places.empty"))
	}

	var b strings.Builder
	for i, p := range m.places {
		position := m.translator.T("places.no_coordinates")
		if p.HasCoordinates() {
			position = fmt.Sprintf("%.4f, %.4f", *p.Latitude, *p.Longitude)
		}
		line := fmt.Sprintf("%s  %s  (%s)", p.Name, p.Address, position)
		b.WriteString(m.renderRow(i, line))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *BrowseModel) renderRow(index int, line string) string {
	if index == m.cursor {
		return m.styles.Name.Render("> " + line)
	}
	return "  " + line
}

// Run starts the browse screen and blocks until the user quits.
func Run(config BrowseConfig) error {
	program := tea.NewProgram(NewBrowseModel(config), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
