package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/estatecalc/esc/internal/domain"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case caseLoadedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("load failed: %v", msg.err)
			return m, nil
		}
		m.caseFile = msg.caseFile
		m.status = fmt.Sprintf("loaded %s", m.path)
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("save failed: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("saved %s", msg.path)
		}
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		fs := m.fields()
		if m.cursor < len(fs) {
			fs[m.cursor].set(m.input.Value())
		}
		m.editing = false
		m.input.Blur()
		return m, nil
	case "esc":
		m.editing = false
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "tab":
		m.step = (m.step + 1) % stepCount
		m.cursor = 0
	case "shift+tab":
		m.step = (m.step + stepCount - 1) % stepCount
		m.cursor = 0
	case "r":
		m.step = stepResults
		m.cursor = 0

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.fields())-1 {
			m.cursor++
		}

	case "enter":
		return m.activate()
	case " ":
		if f, ok := m.currentField(); ok && f.kind == fieldToggle {
			f.set("")
		}
	case "left":
		m.cycleCurrent(-1)
	case "right":
		m.cycleCurrent(1)

	case "a":
		m.addRow()
	case "d":
		m.deleteRow()

	case "ctrl+s":
		if m.path == "" {
			m.status = "no case file path to save to"
			return m, nil
		}
		return m, saveCaseCmd(m.parser, m.caseFile, m.path)
	}
	m.clampCursor()
	return m, nil
}

// activate begins editing the current field, or flips it when it is not a
// text field.
func (m Model) activate() (tea.Model, tea.Cmd) {
	f, ok := m.currentField()
	if !ok {
		return m, nil
	}
	switch f.kind {
	case fieldText:
		m.input.SetValue(f.get())
		m.input.CursorEnd()
		m.editing = true
		return m, m.input.Focus()
	case fieldToggle:
		f.set("")
	case fieldCycle:
		m.cycleCurrent(1)
	}
	return m, nil
}

func (m *Model) cycleCurrent(dir int) {
	f, ok := m.currentField()
	if !ok || f.kind != fieldCycle || len(f.options) == 0 {
		return
	}
	cur := 0
	for i, opt := range f.options {
		if opt == f.get() {
			cur = i
			break
		}
	}
	n := len(f.options)
	f.set(f.options[(cur+dir+n)%n])
}

func (m *Model) addRow() {
	switch m.step {
	case stepAssets:
		a := domain.Asset{Type: domain.AssetProbate, PassesToSpouse: false}
		a.EnsureID()
		m.caseFile.Assets = append(m.caseFile.Assets, a)
		m.cursor = len(m.fields()) - fieldsPerAsset(&m.caseFile.Assets[len(m.caseFile.Assets)-1])
	case stepSpouse:
		item := domain.ReceiptItem{Description: "Property received"}
		item.EnsureID()
		m.caseFile.Spouse.Items = append(m.caseFile.Spouse.Items, item)
		m.cursor = len(m.fields()) - 2
	}
}

func (m *Model) deleteRow() {
	switch m.step {
	case stepAssets:
		i := m.assetAt(m.cursor)
		if i < 0 {
			return
		}
		m.caseFile.Assets = append(m.caseFile.Assets[:i], m.caseFile.Assets[i+1:]...)
	case stepSpouse:
		i := m.spouseItemAt(m.cursor)
		if i < 0 {
			return
		}
		m.caseFile.Spouse.Items = append(m.caseFile.Spouse.Items[:i], m.caseFile.Spouse.Items[i+1:]...)
	}
}

func (m *Model) currentField() (field, bool) {
	fs := m.fields()
	if m.cursor < 0 || m.cursor >= len(fs) {
		return field{}, false
	}
	return fs[m.cursor], true
}

func (m *Model) clampCursor() {
	if n := len(m.fields()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
