package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/elntools/rspace-summary/internal/config"
	"github.com/elntools/rspace-summary/internal/service"
	"github.com/elntools/rspace-summary/models"
)

type browseStage int

const (
	stageSetup browseStage = iota
	stageList
	stageDetail
)

// browseModel drives the interactive notebook browser:
// 1) setup page asks for the notebook and form global IDs
// 2) list page shows one row per form document, kept fresh by the refresh job
// 3) detail page shows the parsed fields of one document
type browseModel struct {
	ctx      context.Context
	services *service.ClientServices
	job      service.RefreshJob
	cfg      config.Summary
	refresh  time.Duration

	stage browseStage

	setupInputs []textinput.Model
	setupFocus  int
	setupErr    string

	notebookID string
	formID     string

	records     []models.FormRecord
	idx         int
	loading     bool
	publishing  bool
	refreshedAt time.Time
	spinner     spinner.Model
	status      string
	errMsg      string
}

func newBrowseModel(ctx context.Context, services *service.ClientServices, job service.RefreshJob, cfg config.Summary, refresh time.Duration) browseModel {
	notebook := textinput.New()
	notebook.Placeholder = "NB12345"
	notebook.Width = 20
	notebook.Focus()

	form := textinput.New()
	form.Placeholder = "FM122"
	form.Width = 20

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return browseModel{
		ctx:         ctx,
		services:    services,
		job:         job,
		cfg:         cfg,
		refresh:     refresh,
		stage:       stageSetup,
		setupInputs: []textinput.Model{notebook, form},
		spinner:     s,
	}
}

func (m browseModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recordsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeRequestError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.records = msg.records
		m.refreshedAt = time.Now()
		m.clampIdx()
		return m, nil

	case refreshDoneMsg:
		// Background tick. Never interrupts the setup page.
		if m.stage == stageSetup {
			return m, nil
		}
		if msg.err != nil {
			m.errMsg = humanizeRequestError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.records = msg.records
		m.refreshedAt = time.Now()
		m.clampIdx()
		return m, nil

	case publishDoneMsg:
		m.publishing = false
		if msg.err != nil {
			m.errMsg = humanizeRequestError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		if msg.result.Document != nil {
			m.status = fmt.Sprintf("Summary published as %s (file %s)", msg.result.Document.GlobalID, msg.result.File.GlobalID)
		} else {
			m.status = "Summary written to " + msg.result.CSVPath
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading && !m.publishing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.stage == stageSetup {
			return m.updateSetupInputs(msg)
		}
		return m, nil
	}

	if key.Matches(keyMsg, keys.quit) && m.stage != stageSetup {
		return m, tea.Quit
	}
	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.stage {
	case stageSetup:
		return m.updateSetup(keyMsg)
	case stageList:
		return m.updateList(keyMsg)
	case stageDetail:
		return m.updateDetail(keyMsg)
	}
	return m, nil
}

func (m browseModel) updateSetup(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.tab):
		m.setupInputs[m.setupFocus].Blur()
		m.setupFocus = (m.setupFocus + 1) % len(m.setupInputs)
		m.setupInputs[m.setupFocus].Focus()
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.setupInputs[m.setupFocus].Blur()
		m.setupFocus = (m.setupFocus - 1 + len(m.setupInputs)) % len(m.setupInputs)
		m.setupInputs[m.setupFocus].Focus()
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		notebook := strings.TrimSpace(m.setupInputs[0].Value())
		form := strings.TrimSpace(m.setupInputs[1].Value())
		if notebook == "" || form == "" {
			m.setupErr = "both IDs are needed"
			return m, nil
		}
		if _, err := models.NumericID(notebook); err != nil {
			m.setupErr = "notebook ID must look like NB12345"
			return m, nil
		}

		m.setupErr = ""
		m.notebookID = notebook
		m.formID = form
		m.stage = stageList
		m.loading = true
		m.job.Start(m.ctx, notebook, form, m.refresh)
		return m, tea.Batch(m.cmdLoadRecords(), m.spinner.Tick)
	}

	return m.updateSetupInputs(keyMsg)
}

func (m browseModel) updateSetupInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.setupInputs[m.setupFocus], cmd = m.setupInputs[m.setupFocus].Update(msg)
	return m, cmd
}

func (m browseModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.records)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if _, ok := m.current(); !ok {
			m.status = "No documents"
			return m, nil
		}
		m.stage = stageDetail
	case key.Matches(keyMsg, keys.reload):
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.status = ""
		return m, tea.Batch(m.cmdLoadRecords(), m.spinner.Tick)
	case key.Matches(keyMsg, keys.publish):
		if m.publishing {
			return m, nil
		}
		if len(m.records) == 0 {
			m.status = "Nothing to publish"
			return m, nil
		}
		m.publishing = true
		m.status = "Publishing summary..."
		m.errMsg = ""
		return m, tea.Batch(m.cmdPublish(), m.spinner.Tick)
	case key.Matches(keyMsg, keys.esc):
		m.stage = stageSetup
		m.job.Stop()
		m.records = nil
		m.status = ""
		m.errMsg = ""
	}
	return m, nil
}

func (m browseModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	record, ok := m.current()
	if !ok {
		m.stage = stageList
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.stage = stageList
	case key.Matches(keyMsg, keys.copy):
		if err := clipboard.WriteAll(record.GlobalID); err != nil {
			m.errMsg = fmt.Sprintf("copy failed: %v", err)
			return m, nil
		}
		m.status = "Copied " + record.GlobalID
	}
	return m, nil
}

func (m browseModel) View() string {
	switch m.stage {
	case stageSetup:
		return m.viewSetup()
	case stageDetail:
		return m.viewDetail()
	default:
		return m.viewList()
	}
}

func (m browseModel) viewSetup() string {
	out := "Notebook  : [ " + m.setupInputs[0].View() + " ]\n"
	out += "Form      : [ " + m.setupInputs[1].View() + " ]\n"
	if m.setupErr != "" {
		out += "\n" + errorStyle.Render("Error: "+m.setupErr) + "\n"
	}

	return renderPage("RSPACE BROWSER: SETUP", strings.TrimRight(out, "\n"), "tab: next field │ enter: load │ esc: quit")
}

func (m browseModel) viewList() string {
	title := "NOTEBOOK " + m.notebookID
	if m.loading || m.publishing {
		title += "  " + m.spinner.View()
	}

	out := ""
	if m.errMsg != "" {
		out += errorStyle.Render("Error: "+m.errMsg) + "\n"
	}
	if m.status != "" {
		out += statusStyle.Render(m.status) + "\n"
	}
	if !m.refreshedAt.IsZero() {
		out += helpStyle.Render("refreshed "+m.refreshedAt.Format("15:04:05")) + "\n"
	}

	if m.loading && len(m.records) == 0 {
		out += "Loading documents...\n"
		return renderPage(title, strings.TrimRight(out, "\n"), listHotKeys)
	}

	if len(m.records) == 0 {
		if out != "" {
			out += "\n"
		}
		out += "No documents created from form " + m.formID + "\n"
	} else {
		if out != "" {
			out += "\n"
		}
		out += "Global ID │ Name                             │ Fields\n"
		out += "──────────┼──────────────────────────────────┼───────\n"
		for i, record := range m.records {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			out += fmt.Sprintf(
				"%s %-8s│ %-32s │ %d\n",
				cursor,
				fitText(record.GlobalID, 8),
				fitText(record.Name, 32),
				len(record.Fields),
			)
		}
	}

	return renderPage(title, strings.TrimRight(out, "\n"), listHotKeys)
}

const listHotKeys = "enter: open │ s: publish summary │ r: reload │ esc: setup │ ↑/↓: move │ q: quit"

func (m browseModel) viewDetail() string {
	record, ok := m.current()
	if !ok {
		return renderPage("DOCUMENT", "Document not found", "esc: back")
	}

	out := fmt.Sprintf("%s  [%s]\n\n", record.Name, record.GlobalID)
	if len(record.Fields) == 0 {
		out += "No fields\n"
	}
	for _, field := range record.Fields {
		out += fmt.Sprintf("%-16s: %s\n", fitText(field.Name, 16), field.Value)
	}

	if m.status != "" {
		out += "\n" + statusStyle.Render(m.status) + "\n"
	}
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render("Error: "+m.errMsg) + "\n"
	}

	return renderPage("DOCUMENT", strings.TrimRight(out, "\n"), "c: copy global id │ esc: back")
}

func (m browseModel) current() (models.FormRecord, bool) {
	if len(m.records) == 0 || m.idx < 0 || m.idx >= len(m.records) {
		return models.FormRecord{}, false
	}
	return m.records[m.idx], true
}

func (m *browseModel) clampIdx() {
	if m.idx >= len(m.records) {
		m.idx = len(m.records) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m browseModel) cmdLoadRecords() tea.Cmd {
	ctx := m.ctx
	svc := m.services.SummaryService
	notebook, form := m.notebookID, m.formID

	return func() tea.Msg {
		records, err := svc.Collect(ctx, notebook, form)
		return recordsLoadedMsg{records: records, err: err}
	}
}

func (m browseModel) cmdPublish() tea.Cmd {
	ctx := m.ctx
	services := m.services
	cfg := m.cfg
	notebook := m.notebookID
	records := m.records

	return func() tea.Msg {
		table := services.SummaryService.Build(records, cfg.SortField)
		result, err := services.PublishService.Publish(ctx, notebook, table, cfg.NoUpload)
		return publishDoneMsg{result: result, err: err}
	}
}
