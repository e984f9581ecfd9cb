package models

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marco-mi/MoonworksBrief/internal/brief"
	"github.com/marco-mi/MoonworksBrief/internal/tui/components"
	"github.com/marco-mi/MoonworksBrief/internal/tui/styles"
)

// View renders the wizard.
func (m WizardModel) View() string {
	if m.confirmQuit {
		return m.confirmQuitView()
	}
	if m.session.Phase() == brief.PhaseReviewing {
		return m.reviewView()
	}
	return m.editView()
}

func (m WizardModel) editView() string {
	q := m.session.Current()
	visible := m.session.Visible()

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + styles.Title.Render(m.studio) + styles.Teal("  ·  Project Brief Builder"))
	b.WriteString("\n\n")

	sections := brief.Sections(m.session.Catalog())
	b.WriteString("  " + components.SectionTrack{
		Sections: sections,
		Current:  sectionIndex(sections, q.Section),
		Width:    m.width - 4,
	}.Render())
	b.WriteString("\n")
	b.WriteString("  " + components.ProgressBar(m.session.Position(), len(visible), clampWidth(m.width-14, 48)))
	b.WriteString("\n\n")

	var card strings.Builder
	card.WriteString(styles.Label.Render(strings.ToUpper(q.Section)) + "\n")
	card.WriteString(styles.Title.Render(q.Title))
	if q.Required {
		card.WriteString(" " + styles.Red("*"))
	}
	card.WriteString("\n")
	if q.Subtitle != "" {
		card.WriteString(styles.Subtitle.Render(q.Subtitle) + "\n")
	}
	card.WriteString("\n")
	card.WriteString(m.renderBody(q))

	// Focus ring only while a text widget owns the keys.
	panel := styles.Panel
	if m.zone == zoneText {
		panel = styles.PanelFocused
	}
	b.WriteString(panel.Width(clampWidth(m.width-4, 96)).Render(card.String()))
	b.WriteString("\n\n")

	if m.toast != "" {
		b.WriteString("  " + m.renderToast() + "\n")
	}

	b.WriteString(components.Footer{Hints: m.footerHints(q), Width: m.width}.Render())
	return b.String()
}

func (m WizardModel) renderBody(q brief.Question) string {
	switch q.Kind {
	case brief.KindIntro:
		return m.renderIntro(q)
	case brief.KindTags:
		return m.renderTags(q)
	case brief.KindGrid:
		return m.renderGrid(q)
	case brief.KindMultiSelect, brief.KindSecondary:
		return m.renderChoiceList(q)
	case brief.KindSingleSelect:
		return m.renderSingleSelect(q)
	case brief.KindDimensions:
		return m.renderDimensions(q)
	case brief.KindLogistics:
		return m.renderLogistics()
	case brief.KindDropdown:
		return m.renderDropdown(q)
	case brief.KindText:
		if q.Multiline {
			return m.area.View()
		}
		return m.inputs[0].View()
	case brief.KindDate:
		return m.inputs[0].View()
	case brief.KindFileUpload:
		return m.renderFiles(q)
	case brief.KindFileOrLinks:
		return m.renderFilesLinks(q)
	}
	return ""
}

func (m WizardModel) renderIntro(q brief.Question) string {
	var b strings.Builder
	for _, line := range strings.Split(q.Description, "\n") {
		b.WriteString(styles.Subtitle.Render(line) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.Purple("enter") + styles.Dim(" to begin"))
	return b.String()
}

func (m WizardModel) renderTags(q brief.Question) string {
	v := m.tagsValue()
	var b strings.Builder

	for i, opt := range q.Options {
		b.WriteString(renderCheckRow(opt, v.HasTag(opt), i == m.cursor && m.zone == zoneList))
		b.WriteString("\n")
	}

	if len(v.Other) > 0 {
		b.WriteString("\n" + styles.Label.Render("CUSTOM") + " ")
		b.WriteString(styles.Gold(strings.Join(v.Other, ", ")))
		b.WriteString("\n")
	}

	if v.HasTag(brief.OtherOption) && len(m.inputs) > 0 {
		b.WriteString("\n" + m.inputs[0].View() + "\n")
		if m.zone == zoneText {
			b.WriteString(styles.Dim("enter to add, esc to go back to the list"))
		}
	}
	return b.String()
}

func (m WizardModel) renderGrid(q brief.Question) string {
	v := m.gridValue()
	const cols = 4
	var b strings.Builder

	for i, opt := range q.GridOptions {
		selected := v.HasLabel(opt.Label)
		cell := styles.Swatch(opt.Swatch) + " " + opt.Label
		switch {
		case i == m.cursor && selected:
			cell = styles.Purple("▸ ") + cell + " " + styles.Green("✓")
		case i == m.cursor:
			cell = styles.Purple("▸ ") + cell
		case selected:
			cell = "  " + cell + " " + styles.Green("✓")
		default:
			cell = "  " + styles.Subtitle.Render(cell)
		}
		b.WriteString(lipgloss.NewStyle().Width(22).Render(cell))
		if (i+1)%cols == 0 {
			b.WriteString("\n")
		}
	}
	if len(q.GridOptions)%cols != 0 {
		b.WriteString("\n")
	}
	return b.String()
}

func (m WizardModel) renderChoiceList(q brief.Question) string {
	var b strings.Builder
	for i, opt := range q.Options {
		b.WriteString(renderCheckRow(opt, m.choiceListSelected(opt), i == m.cursor && m.zone == zoneList))
		b.WriteString("\n")
	}
	if m.choiceListHasOther() && len(m.inputs) > 0 {
		b.WriteString("\n" + m.inputs[0].View() + "\n")
	}
	return b.String()
}

func (m WizardModel) renderSingleSelect(q brief.Question) string {
	v := m.choiceValue()
	var b strings.Builder
	for i, opt := range q.Options {
		selected := v.Answered && v.Choice.Option == opt && !v.Choice.IsOther
		if opt == brief.OtherOption {
			selected = v.Answered && v.Choice.IsOther
		}
		b.WriteString(renderRadioRow(opt, selected, i == m.cursor && m.zone == zoneList))
		b.WriteString("\n")
	}
	if v.Choice.IsOther && len(m.inputs) > 0 {
		b.WriteString("\n" + m.inputs[0].View() + "\n")
	}
	return b.String()
}

func (m WizardModel) renderDimensions(q brief.Question) string {
	var rows []string
	for i, spec := range q.Inputs {
		if i >= len(m.inputs) {
			break
		}
		label := styles.Label.Render(strings.ToUpper(spec.Label))
		rows = append(rows, label+"\n"+m.inputs[i].View()+styles.Dim(" m"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, interleave(rows, "   ")...) + "\n\n" +
		styles.Dim("tab to move between axes, blank axes stay open")
}

func (m WizardModel) renderLogistics() string {
	v := m.logisticsValue()
	var b strings.Builder

	writePresetRow := func(row int, label, selected, other string) {
		b.WriteString(styles.Label.Render(label) + "\n")
		presets := logisticsPresets(row)
		var chips []string
		for i, p := range presets {
			chips = append(chips, renderChip(p, selected == p && other == "", row == m.cursor && i == m.optCursor))
		}
		b.WriteString("  " + strings.Join(chips, " ") + "\n")
	}

	writeOtherRow := func(row int, idx int, active bool) {
		marker := "  "
		if row == m.cursor {
			marker = styles.Purple("▸ ")
		}
		line := marker + m.inputs[idx].View()
		if active {
			line += " " + styles.Gold("●")
		}
		b.WriteString(line + "\n\n")
	}

	writePresetRow(logRowVenue, "VENUE TYPE", v.VenueType, v.VenueTypeOther)
	writeOtherRow(logRowVenueOther, 0, v.VenueType == brief.OtherOption)
	writePresetRow(logRowDuration, "INSTALLATION DURATION", v.Duration, v.DurationOther)
	writeOtherRow(logRowDurationOther, 1, v.Duration == brief.OtherOption)
	writePresetRow(logRowPower, "POWER AVAILABLE ON SITE", v.PowerAccess, "")
	b.WriteString("\n")
	writePresetRow(logRowFloor, "FLOOR LOADING", v.FloorLoading, v.FloorLoadingOther)
	writeOtherRow(logRowFloorOther, 2, v.FloorLoading == brief.OtherOption)

	b.WriteString(styles.Dim("↑↓ rows, ←→ options, space to select"))
	return b.String()
}

func (m WizardModel) renderDropdown(q brief.Question) string {
	v := m.budgetValue()
	var b strings.Builder
	for i, opt := range q.Options {
		b.WriteString(renderRadioRow(opt, v.Range == opt, i == m.cursor && m.zone == zoneList))
		b.WriteString("\n")
	}
	if v.Range == brief.CustomBudgetOption && len(m.inputs) > 0 {
		b.WriteString("\n" + m.inputs[0].View() + "\n")
	}
	return b.String()
}

func (m WizardModel) renderFiles(q brief.Question) string {
	v := m.filesValue()
	var b strings.Builder
	for _, name := range v.Names {
		b.WriteString(styles.Green("✓") + " " + name + "\n")
	}
	if len(v.Names) > 0 {
		b.WriteString("\n")
	}
	b.WriteString(m.inputs[0].View() + "\n\n")
	b.WriteString(styles.Dim("enter to attach, enter on empty to continue, backspace removes last"))
	return b.String()
}

func (m WizardModel) renderFilesLinks(q brief.Question) string {
	v := m.filesLinksValue()
	var b strings.Builder
	for _, name := range v.Names {
		b.WriteString(styles.Green("✓") + " " + name + "\n")
	}
	if len(v.Names) > 0 {
		b.WriteString("\n")
	}
	b.WriteString(styles.Label.Render("FILES") + "\n")
	b.WriteString(m.inputs[0].View() + "\n\n")
	b.WriteString(styles.Label.Render("LINKS") + "\n")
	b.WriteString(m.area.View() + "\n\n")
	b.WriteString(styles.Dim("tab switches between files and links"))
	return b.String()
}

// ---------------------------------------------------------------------------
// Review
// ---------------------------------------------------------------------------

func (m *WizardModel) buildReview() {
	answered, total := m.session.AnsweredCount()
	entries := brief.Format(m.session.Catalog(), m.session.Answers())

	var b strings.Builder
	b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d of %d questions answered", answered, total)))
	b.WriteString("\n\n")

	var section string
	for _, e := range entries {
		if e.Section != section {
			section = e.Section
			b.WriteString(styles.Title.Render(section) + "\n")
			b.WriteString(styles.Divider(clampWidth(m.width-8, 60)) + "\n")
		}
		b.WriteString("  " + styles.Value.Render(e.Title) + "\n")
		if e.Display == brief.NotAnswered {
			b.WriteString("  " + styles.Dim(e.Display) + "\n\n")
		} else {
			b.WriteString("  " + styles.Subtitle.Render(e.Display) + "\n\n")
		}
	}

	m.review = newViewport(clampWidth(m.width-4, 96), maxInt(m.height-10, 5))
	m.review.SetContent(b.String())
	m.reviewReady = true
}

func (m WizardModel) reviewView() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + styles.Title.Render(m.studio) + styles.Teal("  ·  Review your brief"))
	if m.submitted {
		b.WriteString("  " + styles.Badge("SENT", styles.StatusOK))
	}
	b.WriteString("\n\n")

	if m.reviewReady {
		b.WriteString(m.review.View())
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString("  " + m.spin.View() + styles.Subtitle.Render(" Sending your brief..."))
		b.WriteString("\n")
	} else if m.toast != "" {
		b.WriteString("  " + m.renderToast() + "\n")
	}

	b.WriteString(components.ReviewFooter(m.width).Render())
	return b.String()
}

func (m WizardModel) confirmQuitView() string {
	box := styles.PanelFocused.Width(44).Render(
		styles.Title.Render("Leave the brief builder?") + "\n\n" +
			styles.Subtitle.Render("Unsent answers will be discarded.") + "\n\n" +
			styles.Purple("y") + styles.Dim(" quit  ") + styles.Purple("any other key") + styles.Dim(" stay"),
	)
	return "\n\n" + lipgloss.PlaceHorizontal(m.width, lipgloss.Center, box)
}

func (m WizardModel) renderToast() string {
	if m.toastErr {
		return styles.Red(m.toast)
	}
	return styles.Green(m.toast)
}

// ---------------------------------------------------------------------------
// Footer hints
// ---------------------------------------------------------------------------

func (m WizardModel) footerHints(q brief.Question) []components.KeyHint {
	var hints []components.KeyHint

	switch q.Kind {
	case brief.KindIntro:
		return []components.KeyHint{
			{Key: "enter", Desc: "begin"},
			{Key: "q", Desc: "quit"},
		}
	case brief.KindTags, brief.KindMultiSelect, brief.KindSecondary, brief.KindGrid:
		hints = append(hints,
			components.KeyHint{Key: "↑↓", Desc: "navigate"},
			components.KeyHint{Key: "space", Desc: "toggle"},
		)
	case brief.KindSingleSelect, brief.KindDropdown:
		hints = append(hints,
			components.KeyHint{Key: "↑↓", Desc: "navigate"},
			components.KeyHint{Key: "space", Desc: "select"},
		)
	case brief.KindLogistics:
		hints = append(hints,
			components.KeyHint{Key: "↑↓ ←→", Desc: "navigate"},
			components.KeyHint{Key: "space", Desc: "select"},
		)
	case brief.KindDimensions:
		hints = append(hints, components.KeyHint{Key: "tab", Desc: "next axis"})
	case brief.KindFileUpload, brief.KindFileOrLinks:
		hints = append(hints, components.KeyHint{Key: "enter", Desc: "attach"})
	}

	hints = append(hints,
		components.KeyHint{Key: "enter", Desc: "next"},
		components.KeyHint{Key: "esc", Desc: "back"},
	)
	if !q.Required {
		hints = append(hints, components.KeyHint{Key: "ctrl+s", Desc: "skip"})
	}
	return hints
}

// ---------------------------------------------------------------------------
// Row renderers
// ---------------------------------------------------------------------------

func renderCheckRow(label string, checked, focused bool) string {
	box := "[ ]"
	if checked {
		box = styles.Green("[✓]")
	}
	if focused {
		return styles.Purple("▸ ") + box + " " + styles.Value.Render(label)
	}
	return "  " + box + " " + styles.Subtitle.Render(label)
}

func renderRadioRow(label string, selected, focused bool) string {
	dot := "( )"
	if selected {
		dot = styles.Purple("(●)")
	}
	if focused {
		return styles.Purple("▸ ") + dot + " " + styles.Value.Render(label)
	}
	return "  " + dot + " " + styles.Subtitle.Render(label)
}

func renderChip(label string, selected, focused bool) string {
	style := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(styles.TextSecondary).
		Background(styles.BgSurface)
	if selected {
		style = style.Foreground(styles.BgDeep).Background(styles.AccentPrimary).Bold(true)
	}
	if focused {
		style = style.Underline(true)
		if !selected {
			style = style.Foreground(styles.TextPrimary).Background(styles.BgHover)
		}
	}
	return style.Render(label)
}

func sectionIndex(sections []string, current string) int {
	for i, s := range sections {
		if s == current {
			return i
		}
	}
	return 0
}

func interleave(parts []string, sep string) []string {
	var out []string
	for i, p := range parts {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, p)
	}
	return out
}
