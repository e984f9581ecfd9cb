package models

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marco-mi/MoonworksBrief/internal/brief"
	"github.com/marco-mi/MoonworksBrief/internal/submit"
)

func newTestWizard() (WizardModel, *brief.Session) {
	session := brief.NewSession(brief.DefaultCatalog())
	return NewWizardModel(session, nil, "Moonworks Creative", ""), session
}

func press(t *testing.T, m WizardModel, msg tea.Msg) WizardModel {
	t.Helper()
	next, _ := m.Update(msg)
	wm, ok := next.(WizardModel)
	require.True(t, ok)
	return wm
}

func keyEnter() tea.Msg { return tea.KeyMsg{Type: tea.KeyEnter} }
func keyEsc() tea.Msg   { return tea.KeyMsg{Type: tea.KeyEsc} }
func keySkip() tea.Msg  { return tea.KeyMsg{Type: tea.KeyCtrlS} }
func keyText(s string) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestWizardIntroAdvances(t *testing.T) {
	m, session := newTestWizard()

	require.Equal(t, 0, session.Position())
	m = press(t, m, keyEnter())
	assert.Equal(t, 1, session.Position())
	assert.Equal(t, "client-name", session.Current().ID)
}

func TestWizardRequiredGating(t *testing.T) {
	m, session := newTestWizard()
	m = press(t, m, keyEnter())

	// Enter on the empty required question does not move.
	m = press(t, m, keyEnter())
	assert.Equal(t, 1, session.Position())

	// Ctrl+S does not skip it either.
	m = press(t, m, keySkip())
	assert.Equal(t, 1, session.Position())

	m = press(t, m, keyText("Acme Studio"))
	v, ok := session.Answer("client-name")
	require.True(t, ok)
	assert.Equal(t, brief.TextValue("Acme Studio"), v)

	m = press(t, m, keyEnter())
	assert.Equal(t, 2, session.Position())
}

func TestWizardBackAndSkip(t *testing.T) {
	m, session := newTestWizard()
	m = press(t, m, keyEnter())
	m = press(t, m, keyText("Acme"))
	m = press(t, m, keyEnter())
	require.Equal(t, 2, session.Position())

	// Esc steps back, enter returns forward, ctrl+s skips the optional one.
	m = press(t, m, keyEsc())
	assert.Equal(t, 1, session.Position())
	m = press(t, m, keyEnter())
	m = press(t, m, keySkip())
	assert.Equal(t, 3, session.Position())
}

// walkToReview presses through every remaining card. Multiline cards swallow
// enter as a newline, so those are skipped instead.
func walkToReview(t *testing.T, m WizardModel, session *brief.Session) WizardModel {
	t.Helper()
	for range 40 {
		if session.Phase() == brief.PhaseReviewing {
			return m
		}
		q := session.Current()
		if q.Kind == brief.KindText && q.Multiline {
			m = press(t, m, keySkip())
			continue
		}
		m = press(t, m, keyEnter())
	}
	return m
}

func TestWizardReachesReview(t *testing.T) {
	m, session := newTestWizard()
	session.SetAnswer("client-name", brief.TextValue("Acme"))
	session.SetAnswer("contact-info", brief.TextValue("jo@acme.test"))

	m = walkToReview(t, m, session)

	require.Equal(t, brief.PhaseReviewing, session.Phase())
	view := m.View()
	assert.Contains(t, view, "Review your brief")
}

func TestWizardEditFromReview(t *testing.T) {
	m, session := newTestWizard()
	session.SetAnswer("client-name", brief.TextValue("Acme"))
	session.SetAnswer("contact-info", brief.TextValue("jo@acme.test"))
	m = walkToReview(t, m, session)
	require.Equal(t, brief.PhaseReviewing, session.Phase())

	m = press(t, m, keyText("e"))
	assert.Equal(t, brief.PhaseEditing, session.Phase())
	assert.Equal(t, len(session.Visible())-1, session.Position())
}

func TestWizardShowsSentBadge(t *testing.T) {
	m, session := newTestWizard()
	session.SetAnswer("client-name", brief.TextValue("Acme"))
	session.SetAnswer("contact-info", brief.TextValue("jo@acme.test"))
	m = walkToReview(t, m, session)
	require.Equal(t, brief.PhaseReviewing, session.Phase())
	assert.NotContains(t, m.View(), "SENT")

	m = press(t, m, submitDoneMsg{receipt: submit.Receipt{BriefID: 7}})
	view := m.View()
	assert.Contains(t, view, "SENT")
	assert.Contains(t, view, "Archive #7")

	// Going back to edit clears the badge until the next send.
	m = press(t, m, keyText("e"))
	m = walkToReview(t, m, session)
	assert.NotContains(t, m.View(), "SENT")
}

func TestWizardViewShowsQuestion(t *testing.T) {
	m, session := newTestWizard()
	m = press(t, m, keyEnter())

	view := m.View()
	assert.True(t, strings.Contains(view, session.Current().Title))
	assert.Contains(t, view, strings.ToUpper(session.Current().Section))
}
