package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsamuelsen/cctv-quotations/cmd/quotectl/output"
	"github.com/jsamuelsen/cctv-quotations/internal/app"
	"github.com/jsamuelsen/cctv-quotations/internal/domain"
	"github.com/jsamuelsen/cctv-quotations/internal/ports"
)

// Options configures the screen.
type Options struct {
	DarkMode bool

	// ExportDir receives PDF exports. Defaults to the working directory.
	ExportDir string
}

// Model is the bubbletea model of the quotation screen.
type Model struct {
	ctx       context.Context
	api       ports.QuotationAPI
	state     AppState
	quantity  textinput.Model
	keys      keyMap
	help      help.Model
	width     int
	exportDir string
	now       func() time.Time
}

// Messages
type loadedMsg struct {
	quotations []domain.Quotation
	catalog    []domain.CatalogItem
}

type savedMsg struct {
	quotation *domain.Quotation
	created   bool
}

type deletedMsg struct {
	quotation *domain.Quotation
}

type exportedMsg struct {
	path  string
	bytes int
}

type errMsg struct {
	err error
}

// New creates the model. Data is fetched by Init.
func New(ctx context.Context, api ports.QuotationAPI, opts Options) Model {
	qty := textinput.New()
	qty.Placeholder = "1"
	qty.CharLimit = 6
	qty.Width = 8
	qty.SetValue("1")
	qty.Focus()

	dir := opts.ExportDir
	if dir == "" {
		dir = "."
	}

	return Model{
		ctx:       ctx,
		api:       api,
		state:     NewAppState(opts.DarkMode),
		quantity:  qty,
		keys:      defaultKeyMap(),
		help:      help.New(),
		exportDir: dir,
		now:       time.Now,
	}
}

// State returns a copy of the current state.
func (m Model) State() AppState {
	return m.state
}

// Commands
func loadCmd(ctx context.Context, api ports.QuotationAPI) tea.Cmd {
	return func() tea.Msg {
		qs, catalog, err := app.Both(ctx, api.List, api.Catalog)
		if err != nil {
			return errMsg{err: fmt.Errorf("loading quotations: %w", err)}
		}

		return loadedMsg{quotations: qs, catalog: catalog}
	}
}

func createCmd(ctx context.Context, api ports.QuotationAPI, d domain.Draft) tea.Cmd {
	return func() tea.Msg {
		q, err := api.Create(ctx, d)
		if err != nil {
			return errMsg{err: err}
		}

		return savedMsg{quotation: q, created: true}
	}
}

func updateCmd(ctx context.Context, api ports.QuotationAPI, id string, p domain.Patch) tea.Cmd {
	return func() tea.Msg {
		q, err := api.Update(ctx, id, p)
		if err != nil {
			return errMsg{err: err}
		}

		return savedMsg{quotation: q}
	}
}

func deleteCmd(ctx context.Context, api ports.QuotationAPI, id string) tea.Cmd {
	return func() tea.Msg {
		q, err := api.Delete(ctx, id)
		if err != nil {
			return errMsg{err: err}
		}

		return deletedMsg{quotation: q}
	}
}

func exportCmd(ctx context.Context, api ports.QuotationAPI, path string) tea.Cmd {
	return func() tea.Msg {
		doc, err := api.Export(ctx)
		if err != nil {
			return errMsg{err: err}
		}

		if err := os.WriteFile(path, doc, 0o600); err != nil {
			return errMsg{err: fmt.Errorf("writing %s: %w", path, err)}
		}

		return exportedMsg{path: path, bytes: len(doc)}
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadCmd(m.ctx, m.api), textinput.Blink)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

		return m, nil

	case loadedMsg:
		m.state.Quotations = msg.quotations
		if len(msg.catalog) > 0 {
			product := m.state.Product()
			m.state.Catalog = msg.catalog
			m.state = m.selectProduct(product)
		}

		m.state = m.state.MoveSelection(0)
		m.state.Err = nil

		return m, nil

	case savedMsg:
		m.state = m.state.Upsert(*msg.quotation)
		m.state.Err = nil

		verb := "Updated"
		if msg.created {
			verb = "Created"
		}

		m.state.Status = fmt.Sprintf("%s quotation %s (total %s)", verb, msg.quotation.ID, output.Money(msg.quotation.Total))

		return m.resetForm(), nil

	case deletedMsg:
		wasEditing := m.state.Editing == msg.quotation.ID
		m.state = m.state.Remove(msg.quotation.ID)
		m.state.Err = nil
		m.state.Status = "Deleted quotation " + msg.quotation.ID

		if wasEditing {
			m = m.resetForm()
		}

		return m, nil

	case exportedMsg:
		m.state.Err = nil
		m.state.Status = fmt.Sprintf("Exported %s (%d bytes)", msg.path, msg.bytes)

		return m, nil

	case errMsg:
		m.state.Err = msg.err
		m.state.Status = ""

		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.quantity, cmd = m.quantity.Update(msg)

	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.ToggleDark):
		m.state.DarkMode = !m.state.DarkMode
		return m, nil

	case key.Matches(msg, m.keys.Switch):
		return m.switchFocus(), nil

	case key.Matches(msg, m.keys.Export):
		path := filepath.Join(m.exportDir, output.ExportFilename(m.now()))
		return m, exportCmd(m.ctx, m.api, path)

	case key.Matches(msg, m.keys.Reload):
		return m, loadCmd(m.ctx, m.api)
	}

	if m.state.Focus == FocusList {
		return m.handleListKey(msg)
	}

	return m.handleFormKey(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.state = m.state.MoveSelection(-1)

	case key.Matches(msg, m.keys.Down):
		m.state = m.state.MoveSelection(1)

	case key.Matches(msg, m.keys.Submit):
		state, ok := m.state.Edit()
		if !ok {
			return m, nil
		}

		m.state = state
		m.quantity.SetValue(fmt.Sprint(m.state.Quotations[m.state.Selected].Quantity))
		m.quantity.CursorEnd()

		return m, m.quantity.Focus()

	case key.Matches(msg, m.keys.Delete):
		if m.state.Selected < len(m.state.Quotations) {
			return m, deleteCmd(m.ctx, m.api, m.state.Quotations[m.state.Selected].ID)
		}
	}

	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Prev):
		m.state = m.state.CycleProduct(-1)
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.state = m.state.CycleProduct(1)
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		return m.resetForm(), nil

	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	}

	// The quantity field only takes digits and editing keys.
	switch msg.Type {
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if !unicode.IsDigit(r) {
				return m, nil
			}
		}
	case tea.KeyBackspace, tea.KeyDelete, tea.KeyHome, tea.KeyEnd:
	default:
		return m, nil
	}

	var cmd tea.Cmd
	m.quantity, cmd = m.quantity.Update(msg)

	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.state.Editing != "" {
		patch, err := m.state.Patch(m.quantity.Value())
		if err != nil {
			m.state.Err = err
			return m, nil
		}

		return m, updateCmd(m.ctx, m.api, m.state.Editing, patch)
	}

	d, err := m.state.Draft(m.quantity.Value())
	if err != nil {
		m.state.Err = err
		return m, nil
	}

	return m, createCmd(m.ctx, m.api, d)
}

func (m Model) switchFocus() Model {
	if m.state.Focus == FocusForm {
		m.state.Focus = FocusList
		m.quantity.Blur()

		return m
	}

	m.state.Focus = FocusForm
	m.quantity.Focus()

	return m
}

func (m Model) resetForm() Model {
	m.state.Editing = ""
	m.quantity.SetValue("1")
	m.quantity.CursorEnd()

	return m
}

// selectProduct points the product selector at p in the current catalog.
func (m Model) selectProduct(p domain.Product) AppState {
	s := m.state
	s.ProductIndex = 0

	for i, item := range s.Catalog {
		if item.Product == p {
			s.ProductIndex = i
		}
	}

	return s
}

// View implements tea.Model.
func (m Model) View() string {
	return render(m.state, screen{
		quantityView: m.quantity.View(),
		quantityText: m.quantity.Value(),
		helpView:     m.help.View(m.keys),
		width:        m.width,
	})
}

// Run starts the screen and blocks until the user quits or ctx ends.
func Run(ctx context.Context, api ports.QuotationAPI, opts Options) error {
	p := tea.NewProgram(New(ctx, api, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()

	return err
}
