// Package tui is an interactive wizard over the calculation engine: a
// stepped case editor (basics, assets, spouse, deductions) with live
// recalculation and a results view. Every edit re-runs the engine, so the
// numbers on screen always reflect the current snapshot.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/estatecalc/esc/internal/calculation"
	"github.com/estatecalc/esc/internal/config"
	"github.com/estatecalc/esc/internal/domain"
	"github.com/estatecalc/esc/internal/output"
)

// step identifies one wizard page.
type step int

const (
	stepBasics step = iota
	stepAssets
	stepSpouse
	stepDeductions
	stepResults
)

const stepCount = 5

var stepTitles = [stepCount]string{
	"Case Basics",
	"Assets",
	"What the Spouse Received",
	"Deductions",
	"Results",
}

// fieldKind selects how a field edits.
type fieldKind int

const (
	fieldText fieldKind = iota
	fieldToggle
	fieldCycle
)

// field is one editable row on a wizard page. Text fields edit through a
// textinput, toggles flip on space or enter, and cycle fields step through
// a fixed option list with the left/right keys.
type field struct {
	label   string
	kind    fieldKind
	get     func() string
	set     func(string)
	options []string
}

// Model is the wizard state. The case file is the single source of truth;
// results are derived from it on demand.
type Model struct {
	path   string
	parser *config.InputParser
	engine *calculation.Engine

	caseFile *domain.CaseFile

	step    step
	cursor  int
	editing bool
	input   textinput.Model

	status string

	width  int
	height int
}

// NewModel creates a wizard, optionally backed by a case file on disk.
func NewModel(path string) Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 32

	return Model{
		path:     path,
		parser:   config.NewInputParser(),
		engine:   calculation.NewEngine(),
		caseFile: &domain.CaseFile{Basics: domain.CaseBasics{NCDomiciled: true}},
		input:    ti,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.path == "" {
		return nil
	}
	return loadCaseCmd(m.parser, m.path)
}

// caseLoadedMsg carries the result of loading the case file.
type caseLoadedMsg struct {
	caseFile *domain.CaseFile
	err      error
}

// savedMsg carries the result of writing the snapshot back to disk.
type savedMsg struct {
	path string
	err  error
}

func loadCaseCmd(parser *config.InputParser, path string) tea.Cmd {
	return func() tea.Msg {
		cf, err := parser.LoadFromFile(path)
		return caseLoadedMsg{caseFile: cf, err: err}
	}
}

func saveCaseCmd(parser *config.InputParser, cf *domain.CaseFile, path string) tea.Cmd {
	return func() tea.Msg {
		return savedMsg{path: path, err: parser.SaveToFile(cf, path)}
	}
}

// report runs the engine over the current snapshot.
func (m Model) report() *output.Report {
	return &output.Report{
		Result:   m.engine.Run(m.caseFile),
		Warnings: m.engine.Warnings(m.caseFile),
	}
}
