package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/draftkit/draftkit/internal/errors"
	"github.com/draftkit/draftkit/internal/models"
	"github.com/draftkit/draftkit/internal/renderer"
	"github.com/draftkit/draftkit/internal/service"
	"github.com/draftkit/draftkit/internal/wizard"
)

// createGlamourRenderer creates a glamour renderer with contrast handling
func createGlamourRenderer(wordWrap int) (*glamour.TermRenderer, error) {
	if style := os.Getenv("GLAMOUR_STYLE"); style != "" {
		return glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(wordWrap),
		)
	}

	profile := termenv.ColorProfile()

	var styleOption glamour.TermRendererOption
	if lipgloss.HasDarkBackground() {
		styleOption = glamour.WithStandardStyle("dark")
	} else {
		styleOption = glamour.WithStandardStyle("light")
	}
	if profile == termenv.Ascii {
		styleOption = glamour.WithAutoStyle()
	}

	return glamour.NewTermRenderer(
		styleOption,
		glamour.WithColorProfile(profile),
		glamour.WithWordWrap(wordWrap),
	)
}

// ViewMode represents the current view in the TUI, mirroring wizard steps
type ViewMode int

const (
	ViewSelect ViewMode = iota
	ViewForm
	ViewPreview
)

// previewFocus tracks what the preview view's keystrokes go to
type previewFocus int

const (
	focusBrowse previewFocus = iota
	focusEditBuffer
	focusEditFilename
)

// statusExpiredMsg clears the transient status line
type statusExpiredMsg struct{ id int }

// Model represents the TUI application state
type Model struct {
	service  *service.Service
	wizard   *wizard.Wizard
	viewMode ViewMode

	// UI components
	templateList list.Model
	form         *ClientInfoForm
	editor       textarea.Model
	preview      viewport.Model
	filename     textinput.Model
	help         help.Model
	keys         KeyMap

	// Data
	categories     []models.Category
	activeCategory int
	document       *models.Document
	previewFocus   previewFocus
	styledPreview  bool

	glamourRenderer *glamour.TermRenderer

	// Window dimensions
	width  int
	height int

	// Status messages
	statusMsg   string
	statusIsErr bool
	statusSeq   int

	err error
}

// KeyMap defines all key bindings
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Enter    key.Binding
	Back     key.Binding
	Quit     key.Binding
	Help     key.Binding
	Submit   key.Binding
	Edit     key.Binding
	Copy     key.Binding
	Export   key.Binding
	Filename key.Binding
	Styled   key.Binding
	Reset    key.Binding
}

// ShortHelp returns keybindings to show in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns keybindings to show in the full help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Enter, k.Back, k.Submit, k.Edit},
		{k.Copy, k.Export, k.Filename, k.Styled},
		{k.Reset, k.Help, k.Quit},
	}
}

var keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "move down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous category"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next category"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "select"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("Ctrl+s", "generate document"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit document"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy to clipboard"),
	),
	Export: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "export to file"),
	),
	Filename: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "edit filename"),
	),
	Styled: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "toggle styled preview"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "start over"),
	),
}

// NewModel creates the wizard TUI over the given service
func NewModel(svc *service.Service) Model {
	initializeStyles()

	categories := svc.ListCategories()

	delegate := list.NewDefaultDelegate()
	templateList := list.New(nil, delegate, 0, 0)
	templateList.Title = "Templates"
	templateList.SetShowStatusBar(false)
	templateList.SetShowHelp(false)
	templateList.DisableQuitKeybindings()

	editor := textarea.New()
	editor.CharLimit = 0
	editor.MaxHeight = 0
	editor.ShowLineNumbers = false

	filename := textinput.New()
	filename.CharLimit = 120
	filename.Width = 50

	m := Model{
		service:      svc,
		wizard:       wizard.New(),
		viewMode:     ViewSelect,
		templateList: templateList,
		editor:       editor,
		filename:     filename,
		preview:      viewport.New(0, 0),
		help:         help.New(),
		keys:         keys,
		categories:   categories,
	}
	m.reloadTemplateList()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// activeCategoryID returns the selected category's ID, empty when there are
// no categories at all.
func (m *Model) activeCategoryID() string {
	if len(m.categories) == 0 {
		return ""
	}
	return m.categories[m.activeCategory].ID
}

// reloadTemplateList fills the list with the active category's templates
// and clears any prior in-category selection.
func (m *Model) reloadTemplateList() {
	templates := m.service.TemplatesByCategory(m.activeCategoryID())
	items := make([]list.Item, 0, len(templates))
	for _, t := range templates {
		items = append(items, *t)
	}
	m.templateList.SetItems(items)
	m.templateList.ResetSelected()
	m.templateList.ResetFilter()
}

// setStatus shows a transient status message for a few seconds
func (m *Model) setStatus(msg string, isErr bool) tea.Cmd {
	m.statusMsg = msg
	m.statusIsErr = isErr
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return statusExpiredMsg{id: seq}
	})
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.templateList.SetSize(msg.Width-4, msg.Height-8)
		m.editor.SetWidth(msg.Width - 6)
		m.editor.SetHeight(max(msg.Height-12, 5))
		m.preview.Width = msg.Width - 4
		m.preview.Height = max(msg.Height-10, 5)
		m.glamourRenderer = nil // rebuild lazily at the new width
		return m, nil

	case statusExpiredMsg:
		if msg.id == m.statusSeq {
			m.statusMsg = ""
		}
		return m, nil

	case tea.KeyMsg:
		switch m.viewMode {
		case ViewSelect:
			return m.updateSelect(msg)
		case ViewForm:
			return m.updateForm(msg)
		case ViewPreview:
			return m.updatePreview(msg)
		}
	}

	return m, nil
}

func (m Model) updateSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the list filter input is open, every key belongs to the list.
	if m.templateList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.templateList, cmd = m.templateList.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Left):
		if len(m.categories) > 0 {
			m.activeCategory = (m.activeCategory + len(m.categories) - 1) % len(m.categories)
			m.reloadTemplateList()
		}
		return m, nil

	case key.Matches(msg, m.keys.Right):
		if len(m.categories) > 0 {
			m.activeCategory = (m.activeCategory + 1) % len(m.categories)
			m.reloadTemplateList()
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		item, ok := m.templateList.SelectedItem().(models.Template)
		if !ok {
			// Empty category: confirmation stays disabled.
			return m, nil
		}
		tmpl, err := m.service.Template(item.ID)
		if err != nil {
			m.err = err
			return m, m.setStatus(errors.NewTUIErrorHandler(false).FormatError(err), true)
		}
		if err := m.wizard.Select(tmpl); err != nil {
			return m, m.setStatus(errors.NewTUIErrorHandler(false).FormatError(err), true)
		}
		m.form = NewClientInfoForm(tmpl)
		m.viewMode = ViewForm
		return m, nil
	}

	var cmd tea.Cmd
	m.templateList, cmd = m.templateList.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.wizard.Back()
		m.form = nil
		m.viewMode = ViewSelect
		return m, nil
	}

	cmd := m.form.Update(msg)

	if m.form.IsSubmitted() {
		m.form.ClearSubmitted()
		return m.submitForm()
	}

	return m, cmd
}

// submitForm validates the draft and advances to the preview when clean
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	info := m.form.ToClientInfo()

	result, err := m.wizard.Submit(info)
	if err != nil {
		return m, m.setStatus(errors.NewTUIErrorHandler(false).FormatError(err), true)
	}
	if !result.Valid {
		m.form.SetErrors(result.Errors)
		return m, m.setStatus(fmt.Sprintf("%d field(s) need attention", len(result.Errors)), true)
	}

	doc, _, err := m.service.GenerateDocument(m.wizard.Template().ID, info)
	if err != nil {
		return m, m.setStatus(errors.NewTUIErrorHandler(false).FormatError(err), true)
	}

	m.document = doc
	m.editor.SetValue(doc.Content)
	m.editor.Blur()
	m.filename.SetValue(doc.Filename)
	m.previewFocus = focusBrowse
	m.styledPreview = false
	m.viewMode = ViewPreview
	return m, nil
}

func (m Model) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.previewFocus {
	case focusEditBuffer:
		if msg.String() == "esc" {
			m.editor.Blur()
			m.previewFocus = focusBrowse
			return m, nil
		}
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd

	case focusEditFilename:
		switch msg.String() {
		case "esc", "enter":
			m.filename.Blur()
			m.previewFocus = focusBrowse
			return m, nil
		}
		var cmd tea.Cmd
		m.filename, cmd = m.filename.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Back):
		// Keep the submitted info so the form comes back pre-filled.
		info := m.wizard.ClientInfo()
		m.wizard.Back()
		m.form = NewClientInfoForm(m.wizard.Template())
		m.form.LoadClientInfo(info)
		m.document = nil
		m.viewMode = ViewForm
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		return m.resetWizard()

	case key.Matches(msg, m.keys.Edit):
		m.previewFocus = focusEditBuffer
		return m, m.editor.Focus()

	case key.Matches(msg, m.keys.Filename):
		m.previewFocus = focusEditFilename
		return m, m.filename.Focus()

	case key.Matches(msg, m.keys.Styled):
		m.styledPreview = !m.styledPreview
		if m.styledPreview {
			if err := m.renderStyledPreview(); err != nil {
				m.styledPreview = false
				return m, m.setStatus("Styled preview unavailable", true)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		m.document.Content = m.editor.Value()
		statusMsg, err := m.service.CopyDocument(m.document)
		if err != nil {
			return m, m.setStatus(errors.NewTUIErrorHandler(false).FormatError(err), true)
		}
		return m, m.setStatus(statusMsg, false)

	case key.Matches(msg, m.keys.Export):
		m.document.Content = m.editor.Value()
		path, err := m.service.ExportDocument(m.document, m.filename.Value())
		if err != nil {
			return m, m.setStatus(errors.NewTUIErrorHandler(false).FormatError(err), true)
		}
		m.filename.SetValue(m.document.Filename)
		return m, m.setStatus("Saved to "+path, false)
	}

	if m.styledPreview {
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) resetWizard() (tea.Model, tea.Cmd) {
	m.wizard.Reset()
	m.form = nil
	m.document = nil
	m.editor.SetValue("")
	m.filename.SetValue("")
	m.previewFocus = focusBrowse
	m.styledPreview = false
	m.viewMode = ViewSelect
	m.reloadTemplateList()
	return m, nil
}

// renderStyledPreview runs the current buffer through glamour into the
// viewport
func (m *Model) renderStyledPreview() error {
	if m.glamourRenderer == nil {
		wrap := m.width - 6
		if wrap < 40 {
			wrap = 40
		}
		r, err := createGlamourRenderer(wrap)
		if err != nil {
			return err
		}
		m.glamourRenderer = r
	}

	rendered, err := m.glamourRenderer.Render(m.editor.Value())
	if err != nil {
		return err
	}
	m.preview.SetContent(rendered)
	m.preview.GotoTop()
	return nil
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	switch m.viewMode {
	case ViewSelect:
		b.WriteString(m.renderSelectView())
	case ViewForm:
		b.WriteString(m.renderFormView())
	case ViewPreview:
		b.WriteString(m.renderPreviewView())
	}

	if m.statusMsg != "" {
		b.WriteString("\n")
		if m.statusIsErr {
			b.WriteString(statusErrStyle.Render(m.statusMsg))
		} else {
			b.WriteString(statusStyle.Render(m.statusMsg))
		}
	}

	if m.help.ShowAll {
		b.WriteString("\n\n")
		b.WriteString(m.help.View(m.keys))
	}

	return b.String()
}

func (m Model) renderSelectView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("DraftKit - Document Templates"))
	b.WriteString("\n")

	var tabs []string
	for i, cat := range m.categories {
		if i == m.activeCategory {
			tabs = append(tabs, activeTabStyle.Render(cat.Name))
		} else {
			tabs = append(tabs, tabStyle.Render(cat.Name))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	if len(m.templateList.Items()) == 0 {
		b.WriteString(labelStyle.Render("No templates in this category"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.templateList.View())
		b.WriteString("\n")
	}

	b.WriteString(helpTextStyle.Render("←/→ category • ↑/↓ navigate • / filter • Enter select • q quit"))
	return b.String()
}

func (m Model) renderFormView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("New Document: " + m.wizard.Template().Name))
	b.WriteString("\n")
	b.WriteString(m.form.View())
	b.WriteString("\n")
	b.WriteString(helpTextStyle.Render("Tab/↑↓ navigate • Ctrl+s generate • Esc back"))
	return b.String()
}

func (m Model) renderPreviewView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Preview: " + m.document.TemplateName))
	b.WriteString("\n")

	if unresolved := renderer.Unresolved(m.wizard.Template().Content, m.wizard.ClientInfo()); len(unresolved) > 0 {
		b.WriteString(unresolvedStyle.Render("Unresolved placeholders: " + strings.Join(unresolved, ", ")))
		b.WriteString("\n\n")
	}

	if m.styledPreview {
		b.WriteString(m.preview.View())
	} else {
		b.WriteString(m.editor.View())
	}
	b.WriteString("\n\n")

	filenameLabel := labelStyle.Render("Filename: ")
	if m.previewFocus == focusEditFilename {
		filenameLabel = focusedStyle.Render("Filename: ")
	}
	b.WriteString(filenameLabel)
	b.WriteString(m.filename.View())
	b.WriteString("\n")

	switch m.previewFocus {
	case focusEditBuffer:
		b.WriteString(helpTextStyle.Render("Editing document • Esc done"))
	case focusEditFilename:
		b.WriteString(helpTextStyle.Render("Editing filename • Enter/Esc done"))
	default:
		b.WriteString(helpTextStyle.Render("e edit • c copy • x export • f filename • p styled • Esc back • r start over • q quit"))
	}

	return b.String()
}

