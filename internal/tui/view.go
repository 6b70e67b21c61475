package tui

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/estatecalc/esc/internal/domain"
	"github.com/estatecalc/esc/internal/output"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("NC Elective Share Worksheet"))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.step == stepResults {
		b.WriteString(m.renderResults())
	} else {
		b.WriteString(m.renderFields())
		b.WriteString(m.renderSummary())
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.helpLine()))
	return b.String()
}

func (m Model) renderTabs() string {
	parts := make([]string, 0, stepCount)
	for i, title := range stepTitles {
		label := fmt.Sprintf("%d. %s", i+1, title)
		if step(i) == m.step {
			parts = append(parts, stepActiveStyle.Render(label))
		} else {
			parts = append(parts, stepInactiveStyle.Render(label))
		}
	}
	return strings.Join(parts, stepInactiveStyle.Render("  |  "))
}

func (m Model) renderFields() string {
	fs := m.fields()
	if len(fs) == 0 {
		return stepInactiveStyle.Render("(empty — press 'a' to add)") + "\n"
	}

	var b strings.Builder
	for i, f := range fs {
		cursor := "  "
		label := labelStyle.Render(f.label)
		if i == m.cursor {
			cursor = selectedStyle.Render("> ")
			label = selectedStyle.Render(fmt.Sprintf("%-34s", f.label))
		}
		value := f.get()
		if i == m.cursor && m.editing {
			value = m.input.View()
		} else if value == "" {
			value = stepInactiveStyle.Render("(unset)")
		} else {
			value = valueStyle.Render(value)
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, label, value)
	}
	return b.String()
}

// renderSummary shows the live numbers and any warnings under the form so
// every edit is immediately reflected.
func (m Model) renderSummary() string {
	rep := m.report()
	res := rep.Result

	var b strings.Builder
	fmt.Fprintf(&b, "Years married: %d   Applicable share: %s\n",
		res.YearsMarried, output.FormatPercentage(res.ApplicablePct.Mul(decimal.NewFromInt(100))))
	fmt.Fprintf(&b, "Total assets: %s   Net assets: %s\n",
		output.FormatCurrency(res.TotalAssets), output.FormatCurrency(res.NetAssets))
	fmt.Fprintf(&b, "Elective share owed: %s", output.FormatCurrency(res.ElectiveShare))

	out := summaryStyle.Render(b.String())
	if len(rep.Warnings) == 0 {
		return out
	}

	var w strings.Builder
	w.WriteString(out)
	w.WriteString("\n")
	for _, warn := range rep.Warnings {
		style := warnStyle
		switch warn.Severity {
		case domain.SeverityError:
			style = errorStyle
		case domain.SeverityInfo:
			style = infoStyle
		}
		w.WriteString(style.Render("! " + warn.Message))
		w.WriteString("\n")
	}
	return w.String()
}

func (m Model) renderResults() string {
	data, err := output.ConsoleFormatter{}.Format(m.report())
	if err != nil {
		return errorStyle.Render(fmt.Sprintf("report failed: %v", err))
	}
	return string(data)
}

func (m Model) helpLine() string {
	switch m.step {
	case stepAssets, stepSpouse:
		return "tab: next page  enter: edit  space: toggle  ←/→: cycle  a: add  d: delete  ctrl+s: save  q: quit"
	case stepResults:
		return "tab: next page  shift+tab: back  ctrl+s: save  q: quit"
	default:
		return "tab: next page  enter: edit  space: toggle  ctrl+s: save  q: quit"
	}
}
