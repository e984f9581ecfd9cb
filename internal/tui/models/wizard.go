package models

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marco-mi/MoonworksBrief/internal/brief"
	"github.com/marco-mi/MoonworksBrief/internal/export"
	"github.com/marco-mi/MoonworksBrief/internal/store"
	"github.com/marco-mi/MoonworksBrief/internal/submit"
	"github.com/marco-mi/MoonworksBrief/internal/tui/styles"
)

func newViewport(width, height int) viewport.Model {
	return viewport.New(width, height)
}

// ---------------------------------------------------------------------------
// Tea messages
// ---------------------------------------------------------------------------

type submitDoneMsg struct {
	receipt submit.Receipt
	err     error
}

type exportDoneMsg struct {
	path string
	err  error
}

type toastClearMsg struct{}

// focusZone says where key presses land: the option list or a text widget.
type focusZone int

const (
	zoneList focusZone = iota
	zoneText
)

// ---------------------------------------------------------------------------
// WizardModel
// ---------------------------------------------------------------------------

// WizardModel implements tea.Model for the brief builder. It walks the
// visible question list one card at a time, writes normalized values into
// the session on every edit, and ends on a review screen with edit, send,
// and export actions.
type WizardModel struct {
	session   *brief.Session
	submitter *submit.Submitter
	studio    string
	exportDir string

	// Editor state for the current question; rebuilt whenever the wizard
	// lands on a different card.
	questionID string
	cursor     int // option/row cursor
	optCursor  int // horizontal cursor inside logistics preset rows
	field      int // focused text input index
	zone       focusZone
	inputs     []textinput.Model
	area       textarea.Model
	hasArea    bool

	// Review screen
	review      viewport.Model
	reviewReady bool
	submitting  bool
	submitted   bool
	spin        spinner.Model
	toast       string
	toastErr    bool

	confirmQuit bool

	width  int
	height int
}

// NewWizardModel creates the brief builder model over a fresh session.
func NewWizardModel(session *brief.Session, submitter *submit.Submitter, studio, exportDir string) WizardModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.AccentPrimary)

	m := WizardModel{
		session:   session,
		submitter: submitter,
		studio:    studio,
		exportDir: exportDir,
		spin:      s,
		width:     80,
		height:    40,
	}
	m.syncEditors()
	return m
}

// Init is called when the program starts.
func (m WizardModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update processes messages and key events.
func (m WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if m.width < 60 {
			m.width = 60
		}
		m.height = msg.Height
		if m.reviewReady {
			m.review.Width = clampWidth(m.width-4, 96)
			m.review.Height = maxInt(m.height-10, 5)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case submitDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.toast = "Send failed: " + msg.err.Error()
			m.toastErr = true
		} else {
			m.submitted = true
			m.toast = "Brief sent successfully!"
			if msg.receipt.BriefID > 0 {
				m.toast = fmt.Sprintf("Brief sent successfully! Archive #%d", msg.receipt.BriefID)
			}
			m.toastErr = false
		}
		return m, clearToastLater()

	case exportDoneMsg:
		if msg.err != nil {
			m.toast = "Export failed: " + msg.err.Error()
			m.toastErr = true
		} else {
			m.toast = "Saved " + msg.path
			m.toastErr = false
		}
		return m, clearToastLater()

	case toastClearMsg:
		m.toast = ""
		m.toastErr = false
		return m, nil

	case spinner.TickMsg:
		if m.submitting {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

// ---------------------------------------------------------------------------
// Key handling
// ---------------------------------------------------------------------------

func (m WizardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Quit confirmation takes priority.
	if m.confirmQuit {
		switch key {
		case "y", "Y":
			return m, tea.Quit
		default:
			m.confirmQuit = false
			return m, nil
		}
	}

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.session.Phase() == brief.PhaseReviewing {
		return m.handleReviewKey(msg)
	}

	// Skip works everywhere on optional questions, even while typing.
	if key == "ctrl+s" {
		return m.skipCurrent()
	}

	switch m.session.Current().Kind {
	case brief.KindIntro:
		return m.handleIntroKey(key)
	case brief.KindTags:
		return m.handleTagsKey(msg)
	case brief.KindGrid:
		return m.handleGridKey(key)
	case brief.KindMultiSelect, brief.KindSecondary:
		return m.handleChoiceListKey(msg)
	case brief.KindSingleSelect:
		return m.handleSingleSelectKey(msg)
	case brief.KindDimensions:
		return m.handleDimensionsKey(msg)
	case brief.KindLogistics:
		return m.handleLogisticsKey(msg)
	case brief.KindDropdown:
		return m.handleDropdownKey(msg)
	case brief.KindText, brief.KindDate:
		return m.handleTextKey(msg)
	case brief.KindFileUpload:
		return m.handleFileKey(msg)
	case brief.KindFileOrLinks:
		return m.handleFileLinksKey(msg)
	}

	return m, nil
}

func (m WizardModel) handleIntroKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		m.confirmQuit = true
	case "enter", " ":
		return m.advance()
	}
	return m, nil
}

func (m WizardModel) handleTagsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	q := m.session.Current()

	if m.zone == zoneText {
		switch key {
		case "enter":
			// Commit the pending custom keyword.
			m.setAnswer(m.tagsValue().CommitOther())
			m.inputs[0].SetValue("")
			return m, nil
		case "esc", "tab", "up", "down":
			m.zone = zoneList
			m.inputs[0].Blur()
			return m, nil
		}
		return m.updateInput(msg, func(text string) {
			m.setAnswer(m.tagsValue().SetOtherInput(text))
		})
	}

	switch key {
	case "q":
		m.confirmQuit = true
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(q.Options)-1 {
			m.cursor++
		}
	case " ":
		opt := q.Options[m.cursor]
		v := m.tagsValue().Toggle(opt)
		m.setAnswer(v)
		if opt == brief.OtherOption && v.HasTag(brief.OtherOption) && len(m.inputs) > 0 {
			m.zone = zoneText
			m.inputs[0].Focus()
			return m, textinput.Blink
		}
	case "tab":
		if m.tagsValue().HasTag(brief.OtherOption) && len(m.inputs) > 0 {
			m.zone = zoneText
			m.inputs[0].Focus()
			return m, textinput.Blink
		}
	case "enter":
		return m.advance()
	case "s":
		return m.skipCurrent()
	case "esc", "backspace":
		return m.back()
	}
	return m, nil
}

func (m WizardModel) handleGridKey(key string) (tea.Model, tea.Cmd) {
	q := m.session.Current()
	cols := 4
	n := len(q.GridOptions)

	switch key {
	case "q":
		m.confirmQuit = true
	case "up", "k":
		if m.cursor-cols >= 0 {
			m.cursor -= cols
		}
	case "down", "j":
		if m.cursor+cols < n {
			m.cursor += cols
		}
	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor < n-1 {
			m.cursor++
		}
	case " ":
		m.setAnswer(m.gridValue().Toggle(q.GridOptions[m.cursor].Label))
	case "enter":
		return m.advance()
	case "s":
		return m.skipCurrent()
	case "esc", "backspace":
		return m.back()
	}
	return m, nil
}

func (m WizardModel) handleChoiceListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	q := m.session.Current()

	if m.zone == zoneText {
		switch key {
		case "enter", "esc", "tab", "up", "down":
			m.zone = zoneList
			m.inputs[0].Blur()
			return m, nil
		}
		return m.updateInput(msg, func(text string) {
			m.setChoiceListOtherText(text)
		})
	}

	switch key {
	case "q":
		m.confirmQuit = true
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(q.Options)-1 {
			m.cursor++
		}
	case " ":
		opt := q.Options[m.cursor]
		m.toggleChoiceList(opt)
		if opt == brief.OtherOption && m.choiceListHasOther() && len(m.inputs) > 0 {
			m.inputs[0].SetValue(m.choiceListOtherText())
			m.zone = zoneText
			m.inputs[0].Focus()
			return m, textinput.Blink
		}
	case "tab":
		if m.choiceListHasOther() && len(m.inputs) > 0 {
			m.zone = zoneText
			m.inputs[0].Focus()
			return m, textinput.Blink
		}
	case "enter":
		return m.advance()
	case "s":
		return m.skipCurrent()
	case "esc", "backspace":
		return m.back()
	}
	return m, nil
}

func (m WizardModel) handleSingleSelectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	q := m.session.Current()

	if m.zone == zoneText {
		switch key {
		case "enter", "esc", "tab", "up", "down":
			m.zone = zoneList
			m.inputs[0].Blur()
			return m, nil
		}
		return m.updateInput(msg, func(text string) {
			m.setAnswer(m.choiceValue().SetOtherText(text))
		})
	}

	switch key {
	case "q":
		m.confirmQuit = true
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(q.Options)-1 {
			m.cursor++
		}
	case " ":
		opt := q.Options[m.cursor]
		m.setAnswer(m.choiceValue().Select(opt))
		if opt == brief.OtherOption && len(m.inputs) > 0 {
			m.inputs[0].SetValue("")
			m.zone = zoneText
			m.inputs[0].Focus()
			return m, textinput.Blink
		}
	case "enter":
		opt := q.Options[m.cursor]
		m.setAnswer(m.choiceValue().Select(opt))
		if opt == brief.OtherOption && len(m.inputs) > 0 {
			// Other wants its free text before moving on.
			m.inputs[0].SetValue("")
			m.zone = zoneText
			m.inputs[0].Focus()
			return m, textinput.Blink
		}
		return m.advance()
	case "tab":
		if m.choiceValue().Choice.IsOther && len(m.inputs) > 0 {
			m.zone = zoneText
			m.inputs[0].Focus()
			return m, textinput.Blink
		}
	case "s":
		return m.skipCurrent()
	case "esc", "backspace":
		return m.back()
	}
	return m, nil
}

func (m WizardModel) handleDimensionsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "tab", "down":
		return m.focusInput((m.field + 1) % len(m.inputs)), textinput.Blink
	case "shift+tab", "up":
		next := m.field - 1
		if next < 0 {
			next = len(m.inputs) - 1
		}
		return m.focusInput(next), textinput.Blink
	case "enter":
		return m.advance()
	case "esc":
		return m.back()
	}

	axis := m.field
	return m.updateInput(msg, func(text string) {
		m.setAnswer(m.dimensionsValue().SetAxis(axis, text))
	})
}

// Logistics rows: presets and Other inputs interleave top to bottom.
const (
	logRowVenue = iota
	logRowVenueOther
	logRowDuration
	logRowDurationOther
	logRowPower
	logRowFloor
	logRowFloorOther
	logRowCount
)

func logisticsPresets(row int) []string {
	switch row {
	case logRowVenue:
		return brief.VenuePresets
	case logRowDuration:
		return brief.DurationPresets
	case logRowPower:
		return brief.PowerPresets
	case logRowFloor:
		return brief.FloorPresets
	default:
		return nil
	}
}

func logisticsInputIndex(row int) int {
	switch row {
	case logRowVenueOther:
		return 0
	case logRowDurationOther:
		return 1
	case logRowFloorOther:
		return 2
	default:
		return -1
	}
}

func (m WizardModel) handleLogisticsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "up":
		if m.cursor > 0 {
			m.cursor--
			m.optCursor = 0
			return m.focusLogisticsRow(), textinput.Blink
		}
		return m, nil
	case "down", "tab":
		if m.cursor < logRowCount-1 {
			m.cursor++
			m.optCursor = 0
			return m.focusLogisticsRow(), textinput.Blink
		}
		return m, nil
	case "esc":
		return m.back()
	}

	if idx := logisticsInputIndex(m.cursor); idx >= 0 {
		if key == "enter" {
			if m.cursor < logRowCount-1 {
				m.cursor++
				m.optCursor = 0
				return m.focusLogisticsRow(), textinput.Blink
			}
			return m.advance()
		}
		row := m.cursor
		return m.updateInputAt(idx, msg, func(text string) {
			v := m.logisticsValue()
			switch row {
			case logRowVenueOther:
				v = v.SetVenueOther(text)
			case logRowDurationOther:
				v = v.SetDurationOther(text)
			case logRowFloorOther:
				v = v.SetFloorOther(text)
			}
			m.setAnswer(v)
		})
	}

	presets := logisticsPresets(m.cursor)
	switch key {
	case "q":
		m.confirmQuit = true
	case "left", "h":
		if m.optCursor > 0 {
			m.optCursor--
		}
	case "right", "l":
		if m.optCursor < len(presets)-1 {
			m.optCursor++
		}
	case " ":
		m.selectLogisticsPreset(presets[m.optCursor])
	case "enter":
		return m.advance()
	case "s":
		return m.skipCurrent()
	case "backspace":
		return m.back()
	}
	return m, nil
}

func (m *WizardModel) selectLogisticsPreset(preset string) {
	v := m.logisticsValue()
	switch m.cursor {
	case logRowVenue:
		v = v.SetVenue(preset)
		m.inputs[0].SetValue("")
	case logRowDuration:
		v = v.SetDuration(preset)
		m.inputs[1].SetValue("")
	case logRowPower:
		v = v.SetPower(preset)
	case logRowFloor:
		v = v.SetFloor(preset)
		m.inputs[2].SetValue("")
	}
	m.setAnswer(v)
}

func (m WizardModel) focusLogisticsRow() WizardModel {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	if idx := logisticsInputIndex(m.cursor); idx >= 0 {
		m.zone = zoneText
		m.inputs[idx].Focus()
	} else {
		m.zone = zoneList
	}
	return m
}

func (m WizardModel) handleDropdownKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	q := m.session.Current()

	if m.zone == zoneText {
		switch key {
		case "enter":
			m.zone = zoneList
			m.inputs[0].Blur()
			return m.advance()
		case "esc", "tab", "up", "down":
			m.zone = zoneList
			m.inputs[0].Blur()
			return m, nil
		}
		return m.updateInput(msg, func(text string) {
			m.setAnswer(m.budgetValue().SetCustomAmount(text))
		})
	}

	switch key {
	case "q":
		m.confirmQuit = true
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(q.Options)-1 {
			m.cursor++
		}
	case " ":
		opt := q.Options[m.cursor]
		m.setAnswer(m.budgetValue().Select(opt))
		if opt == brief.CustomBudgetOption && len(m.inputs) > 0 {
			m.inputs[0].SetValue(m.budgetValue().CustomAmount)
			m.zone = zoneText
			m.inputs[0].Focus()
			return m, textinput.Blink
		}
	case "enter":
		opt := q.Options[m.cursor]
		m.setAnswer(m.budgetValue().Select(opt))
		if opt == brief.CustomBudgetOption && len(m.inputs) > 0 {
			m.inputs[0].SetValue(m.budgetValue().CustomAmount)
			m.zone = zoneText
			m.inputs[0].Focus()
			return m, textinput.Blink
		}
		return m.advance()
	case "tab":
		if m.budgetValue().Range == brief.CustomBudgetOption && len(m.inputs) > 0 {
			m.zone = zoneText
			m.inputs[0].Focus()
			return m, textinput.Blink
		}
	case "s":
		return m.skipCurrent()
	case "esc", "backspace":
		return m.back()
	}
	return m, nil
}

func (m WizardModel) handleTextKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	q := m.session.Current()

	if m.hasArea {
		if m.zone == zoneText {
			switch key {
			case "esc":
				m.zone = zoneList
				m.area.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.area, cmd = m.area.Update(msg)
			m.setAnswer(brief.TextValue(m.area.Value()))
			return m, cmd
		}
		switch key {
		case "q":
			m.confirmQuit = true
		case "enter":
			return m.advance()
		case "e", "i", "tab":
			m.zone = zoneText
			m.area.Focus()
			return m, textarea.Blink
		case "s":
			return m.skipCurrent()
		case "esc", "backspace":
			return m.back()
		}
		return m, nil
	}

	switch key {
	case "enter":
		return m.advance()
	case "esc":
		return m.back()
	}
	return m.updateInput(msg, func(text string) {
		if q.Kind == brief.KindDate {
			m.setAnswer(brief.DateValue(text))
		} else {
			m.setAnswer(brief.TextValue(text))
		}
	})
}

func (m WizardModel) handleFileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "enter":
		path := strings.TrimSpace(m.inputs[0].Value())
		if path == "" {
			return m.advance()
		}
		m.setAnswer(m.filesValue().Add(path))
		m.inputs[0].SetValue("")
		return m, nil
	case "backspace":
		if m.inputs[0].Value() == "" {
			m.setAnswer(m.filesValue().RemoveLast())
			return m, nil
		}
	case "esc":
		return m.back()
	}
	return m.updateInput(msg, nil)
}

func (m WizardModel) handleFileLinksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Field 1 is the links textarea.
	if m.field == 1 {
		switch key {
		case "esc", "tab":
			m.area.Blur()
			m.field = 0
			m.inputs[0].Focus()
			return m, textinput.Blink
		}
		var cmd tea.Cmd
		m.area, cmd = m.area.Update(msg)
		m.setAnswer(m.filesLinksValue().SetLinks(m.area.Value()))
		return m, cmd
	}

	switch key {
	case "tab":
		m.inputs[0].Blur()
		m.field = 1
		m.area.Focus()
		return m, textarea.Blink
	case "enter":
		path := strings.TrimSpace(m.inputs[0].Value())
		if path == "" {
			return m.advance()
		}
		m.setAnswer(m.filesLinksValue().AddFile(path))
		m.inputs[0].SetValue("")
		return m, nil
	case "backspace":
		if m.inputs[0].Value() == "" {
			m.setAnswer(m.filesLinksValue().RemoveLastFile())
			return m, nil
		}
	case "esc":
		return m.back()
	}
	return m.updateInput(msg, nil)
}

func (m WizardModel) handleReviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "q":
		m.confirmQuit = true
		return m, nil
	case "e":
		m.session.EditFromReview()
		m.submitted = false
		m.syncEditors()
		return m, textinput.Blink
	case "enter":
		if m.submitting {
			return m, nil
		}
		if m.submitter == nil {
			m.toast = "No submission sink configured"
			m.toastErr = true
			return m, clearToastLater()
		}
		m.submitting = true
		return m, tea.Batch(m.spin.Tick, m.submitCmd())
	case "x":
		return m, m.exportCmd()
	}

	var cmd tea.Cmd
	m.review, cmd = m.review.Update(msg)
	return m, cmd
}

// ---------------------------------------------------------------------------
// Navigation plumbing
// ---------------------------------------------------------------------------

func (m WizardModel) advance() (tea.Model, tea.Cmd) {
	if !m.session.CanAdvance() {
		m.toast = "This question is required"
		m.toastErr = true
		return m, clearToastLater()
	}
	m.session.Next()
	if m.session.Phase() == brief.PhaseReviewing {
		m.buildReview()
		return m, nil
	}
	m.syncEditors()
	return m, textinput.Blink
}

func (m WizardModel) skipCurrent() (tea.Model, tea.Cmd) {
	if m.session.Current().Required {
		m.toast = "This question is required"
		m.toastErr = true
		return m, clearToastLater()
	}
	m.session.Skip()
	if m.session.Phase() == brief.PhaseReviewing {
		m.buildReview()
		return m, nil
	}
	m.syncEditors()
	return m, textinput.Blink
}

func (m WizardModel) back() (tea.Model, tea.Cmd) {
	m.session.Previous()
	m.syncEditors()
	return m, textinput.Blink
}

// ---------------------------------------------------------------------------
// Editor state
// ---------------------------------------------------------------------------

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Width = 48
	ti.PromptStyle = lipgloss.NewStyle().Foreground(styles.AccentPrimary)
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.TextPrimary)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(styles.AccentPrimary)
	return ti
}

func newArea(placeholder string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.SetWidth(60)
	ta.SetHeight(5)
	return ta
}

// syncEditors rebuilds the per-question widgets from the stored answer for
// the question the session currently points at.
func (m *WizardModel) syncEditors() {
	q := m.session.Current()
	m.questionID = q.ID
	m.cursor = 0
	m.optCursor = 0
	m.field = 0
	m.zone = zoneList
	m.inputs = nil
	m.hasArea = false

	otherPlaceholder := q.OtherPlaceholder
	if otherPlaceholder == "" {
		otherPlaceholder = "Other (specify)"
	}

	switch q.Kind {
	case brief.KindTags:
		ti := newInput(otherPlaceholder)
		ti.SetValue(m.tagsValue().OtherInput)
		m.inputs = []textinput.Model{ti}

	case brief.KindMultiSelect, brief.KindSecondary:
		ti := newInput(otherPlaceholder)
		ti.SetValue(m.choiceListOtherText())
		m.inputs = []textinput.Model{ti}

	case brief.KindSingleSelect:
		ti := newInput(otherPlaceholder)
		if c := m.choiceValue().Choice; c.IsOther {
			ti.SetValue(c.OtherText)
		}
		m.inputs = []textinput.Model{ti}

	case brief.KindDimensions:
		v := m.dimensionsValue()
		for i, spec := range q.Inputs {
			ti := newInput(spec.Placeholder)
			ti.Width = 10
			if i < len(v.Axes) {
				ti.SetValue(v.Axes[i])
			}
			m.inputs = append(m.inputs, ti)
		}
		if len(m.inputs) > 0 {
			m.zone = zoneText
			m.inputs[0].Focus()
		}

	case brief.KindLogistics:
		v := m.logisticsValue()
		venue := newInput("Other (specify)")
		venue.SetValue(v.VenueTypeOther)
		duration := newInput("Other (specify)")
		duration.SetValue(v.DurationOther)
		floor := newInput("Other (specify)")
		floor.SetValue(v.FloorLoadingOther)
		m.inputs = []textinput.Model{venue, duration, floor}

	case brief.KindDropdown:
		ti := newInput("Enter your budget amount...")
		ti.SetValue(m.budgetValue().CustomAmount)
		m.inputs = []textinput.Model{ti}

	case brief.KindText:
		if q.Multiline {
			m.hasArea = true
			m.area = newArea(q.Placeholder)
			if v, ok := m.session.Answer(q.ID); ok {
				if tv, ok := v.(brief.TextValue); ok {
					m.area.SetValue(string(tv))
				}
			}
			m.zone = zoneText
			m.area.Focus()
			return
		}
		ti := newInput(q.Placeholder)
		if v, ok := m.session.Answer(q.ID); ok {
			if tv, ok := v.(brief.TextValue); ok {
				ti.SetValue(string(tv))
			}
		}
		m.inputs = []textinput.Model{ti}
		m.zone = zoneText
		m.inputs[0].Focus()

	case brief.KindDate:
		ti := newInput(q.Placeholder)
		if v, ok := m.session.Answer(q.ID); ok {
			if dv, ok := v.(brief.DateValue); ok {
				ti.SetValue(string(dv))
			}
		}
		m.inputs = []textinput.Model{ti}
		m.zone = zoneText
		m.inputs[0].Focus()

	case brief.KindFileUpload:
		ti := newInput(q.Placeholder)
		m.inputs = []textinput.Model{ti}
		m.zone = zoneText
		m.inputs[0].Focus()

	case brief.KindFileOrLinks:
		ti := newInput(q.Placeholder)
		m.inputs = []textinput.Model{ti}
		m.hasArea = true
		m.area = newArea(q.LinkPlaceholder)
		m.area.SetValue(m.filesLinksValue().Links)
		m.area.SetHeight(4)
		m.zone = zoneText
		m.inputs[0].Focus()
	}
}

// updateInput forwards msg to the focused text input, then hands the new
// text to apply (when non-nil).
func (m WizardModel) updateInput(msg tea.Msg, apply func(string)) (tea.Model, tea.Cmd) {
	return m.updateInputAt(m.field, msg, apply)
}

func (m WizardModel) updateInputAt(idx int, msg tea.Msg, apply func(string)) (tea.Model, tea.Cmd) {
	if idx < 0 || idx >= len(m.inputs) {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[idx], cmd = m.inputs[idx].Update(msg)
	if apply != nil {
		apply(m.inputs[idx].Value())
	}
	return m, cmd
}

func (m WizardModel) focusInput(idx int) WizardModel {
	if len(m.inputs) == 0 {
		return m
	}
	m.inputs[m.field].Blur()
	m.field = idx
	m.inputs[m.field].Focus()
	return m
}

// ---------------------------------------------------------------------------
// Answer accessors -- a stored value of the wrong shape reads as zero
// ---------------------------------------------------------------------------

func (m *WizardModel) setAnswer(v brief.Value) {
	m.session.SetAnswer(m.questionID, v)
}

func (m *WizardModel) tagsValue() brief.TagsValue {
	if v, ok := m.session.Answer(m.questionID); ok {
		if tv, ok := v.(brief.TagsValue); ok {
			return tv
		}
	}
	return brief.TagsValue{}
}

func (m *WizardModel) gridValue() brief.GridValue {
	if v, ok := m.session.Answer(m.questionID); ok {
		if gv, ok := v.(brief.GridValue); ok {
			return gv
		}
	}
	return brief.GridValue{}
}

func (m *WizardModel) choiceValue() brief.ChoiceValue {
	if v, ok := m.session.Answer(m.questionID); ok {
		if cv, ok := v.(brief.ChoiceValue); ok {
			return cv
		}
	}
	return brief.ChoiceValue{}
}

func (m *WizardModel) dimensionsValue() brief.DimensionsValue {
	if v, ok := m.session.Answer(m.questionID); ok {
		if dv, ok := v.(brief.DimensionsValue); ok {
			return dv
		}
	}
	return brief.DimensionsValue{}
}

func (m *WizardModel) logisticsValue() brief.LogisticsValue {
	if v, ok := m.session.Answer(m.questionID); ok {
		if lv, ok := v.(brief.LogisticsValue); ok {
			return lv
		}
	}
	return brief.LogisticsValue{}
}

func (m *WizardModel) budgetValue() brief.BudgetValue {
	if v, ok := m.session.Answer(m.questionID); ok {
		if bv, ok := v.(brief.BudgetValue); ok {
			return bv
		}
	}
	return brief.BudgetValue{}
}

func (m *WizardModel) filesValue() brief.FilesValue {
	if v, ok := m.session.Answer(m.questionID); ok {
		if fv, ok := v.(brief.FilesValue); ok {
			return fv
		}
	}
	return brief.FilesValue{}
}

func (m *WizardModel) filesLinksValue() brief.FilesLinksValue {
	if v, ok := m.session.Answer(m.questionID); ok {
		if fv, ok := v.(brief.FilesLinksValue); ok {
			return fv
		}
	}
	return brief.FilesLinksValue{}
}

// The multi-select and secondary kinds share the choice-list behaviour but
// carry different kind tags; these helpers keep the stored variant honest.

func (m *WizardModel) toggleChoiceList(option string) {
	if m.session.Current().Kind == brief.KindSecondary {
		m.setAnswer(m.secondaryValue().Toggle(option))
		return
	}
	m.setAnswer(m.choiceListValue().Toggle(option))
}

func (m *WizardModel) setChoiceListOtherText(text string) {
	if m.session.Current().Kind == brief.KindSecondary {
		m.setAnswer(m.secondaryValue().SetOtherText(text))
		return
	}
	m.setAnswer(m.choiceListValue().SetOtherText(text))
}

func (m *WizardModel) choiceListValue() brief.ChoiceListValue {
	if v, ok := m.session.Answer(m.questionID); ok {
		if cv, ok := v.(brief.ChoiceListValue); ok {
			return cv
		}
	}
	return brief.ChoiceListValue{}
}

func (m *WizardModel) secondaryValue() brief.SecondaryValue {
	if v, ok := m.session.Answer(m.questionID); ok {
		if sv, ok := v.(brief.SecondaryValue); ok {
			return sv
		}
	}
	return brief.SecondaryValue{}
}

func (m *WizardModel) choiceListHasOther() bool {
	if m.session.Current().Kind == brief.KindSecondary {
		return m.secondaryValue().OtherSelected()
	}
	return m.choiceListValue().OtherSelected()
}

func (m *WizardModel) choiceListOtherText() string {
	if m.session.Current().Kind == brief.KindSecondary {
		return m.secondaryValue().OtherText()
	}
	return m.choiceListValue().OtherText()
}

func (m *WizardModel) choiceListSelected(option string) bool {
	if m.session.Current().Kind == brief.KindSecondary {
		return m.secondaryValue().Selected(option)
	}
	return m.choiceListValue().Selected(option)
}

// ---------------------------------------------------------------------------
// Submission and export
// ---------------------------------------------------------------------------

func (m *WizardModel) answerText(id string) string {
	if v, ok := m.session.Answers().Get(id); ok {
		if tv, ok := v.(brief.TextValue); ok {
			return strings.TrimSpace(string(tv))
		}
	}
	return ""
}

func (m WizardModel) submitCmd() tea.Cmd {
	sub := m.submitter
	catalog := m.session.Catalog()
	record := store.Brief{
		Client:      m.answerText("client-name"),
		Contact:     m.answerText("contact-info"),
		SubmittedAt: time.Now(),
		Answers:     m.session.Answers().Clone(),
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		receipt, err := sub.Submit(ctx, catalog, record)
		return submitDoneMsg{receipt: receipt, err: err}
	}
}

func (m WizardModel) exportCmd() tea.Cmd {
	studio := m.studio
	dir := m.exportDir
	client := m.answerText("client-name")
	entries := brief.Format(m.session.Catalog(), m.session.Answers())

	return func() tea.Msg {
		path, err := export.Write(dir, studio, client, time.Now(), entries)
		return exportDoneMsg{path: path, err: err}
	}
}

func clearToastLater() tea.Cmd {
	return tea.Tick(3*time.Second, func(_ time.Time) tea.Msg {
		return toastClearMsg{}
	})
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func clampWidth(val, max int) int {
	if val > max {
		return max
	}
	if val < 10 {
		return 10
	}
	return val
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
