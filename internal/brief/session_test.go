package brief

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testCatalog is a compact catalog with one required question and one
// dependent question, enough to exercise navigation and visibility.
func testCatalog() []Question {
	return []Question{
		{ID: "intro", Section: "Welcome", Title: "Welcome", Kind: KindIntro},
		{ID: "name", Section: "Basics", Title: "Client name", Kind: KindText, Required: true},
		{ID: "primary", Section: "Functional", Title: "Primary Function", Kind: KindSingleSelect, Required: true,
			Options: []string{"Photo Moment", "Live Demo", OtherOption}},
		{ID: "secondary", Section: "Functional", Title: "Secondary Functions", Kind: KindSecondary,
			Options: []string{"Photo Moment", "Live Demo", OtherOption},
			VisibleIf: func(a Answers) bool {
				return a.Answered("primary")
			}},
		{ID: "budget", Section: "Scope", Title: "Budget Range", Kind: KindDropdown,
			Options: []string{"<$10k", CustomBudgetOption}},
	}
}

func TestSessionInitialState(t *testing.T) {
	s := NewSession(testCatalog())
	assert.Equal(t, PhaseEditing, s.Phase())
	assert.Equal(t, 0, s.Position())
	assert.Empty(t, s.Answers())
	assert.Equal(t, "intro", s.Current().ID)
}

func TestVisibilityReactivity(t *testing.T) {
	s := NewSession(testCatalog())

	ids := func() []string {
		var out []string
		for _, q := range s.Visible() {
			out = append(out, q.ID)
		}
		return out
	}

	// Dependent question hidden until the primary answer exists.
	assert.Equal(t, []string{"intro", "name", "primary", "budget"}, ids())

	s.SetAnswer("primary", ChoiceValue{}.Select("Live Demo"))
	assert.Equal(t, []string{"intro", "name", "primary", "secondary", "budget"}, ids())

	// Clearing the primary answer hides it again.
	s.SetAnswer("primary", nil)
	assert.Equal(t, []string{"intro", "name", "primary", "budget"}, ids())

	// An empty stored value does not count as answered.
	s.SetAnswer("primary", ChoiceValue{})
	assert.Equal(t, []string{"intro", "name", "primary", "budget"}, ids())
}

func TestPositionResetWhenVisibleShrinks(t *testing.T) {
	s := NewSession(testCatalog())
	s.SetAnswer("primary", ChoiceValue{}.Select("Photo Moment"))

	// Walk to the last visible question (budget, index 4).
	for range 4 {
		s.Next()
	}
	require.Equal(t, 4, s.Position())

	// Removing the primary answer shrinks the visible list to 4 entries;
	// position 4 is now out of range and resets to zero.
	s.SetAnswer("primary", nil)
	assert.Equal(t, 0, s.Position())
	assert.Equal(t, "intro", s.Current().ID)
}

func TestNavigationBounds(t *testing.T) {
	s := NewSession(testCatalog())

	// Previous at position zero is a no-op.
	s.Previous()
	assert.Equal(t, 0, s.Position())

	visible := len(s.Visible())
	for range visible - 1 {
		s.Next()
	}
	assert.Equal(t, visible-1, s.Position())
	assert.Equal(t, PhaseEditing, s.Phase())

	// Next on the last visible question enters review without moving.
	s.Next()
	assert.Equal(t, PhaseReviewing, s.Phase())
	assert.Equal(t, visible-1, s.Position())

	// Navigation is inert while reviewing.
	s.Next()
	s.Previous()
	assert.Equal(t, visible-1, s.Position())
	assert.Equal(t, PhaseReviewing, s.Phase())

	// Editing resumes at the preserved position.
	s.EditFromReview()
	assert.Equal(t, PhaseEditing, s.Phase())
	assert.Equal(t, visible-1, s.Position())
}

func TestRequiredGating(t *testing.T) {
	s := NewSession(testCatalog())

	// Intro is optional.
	assert.True(t, s.CanAdvance())
	s.Next()

	// Required text question blocks until non-empty.
	require.Equal(t, "name", s.Current().ID)
	assert.False(t, s.CanAdvance())
	s.SetAnswer("name", TextValue("   "))
	assert.False(t, s.CanAdvance())
	s.SetAnswer("name", TextValue("Acme"))
	assert.True(t, s.CanAdvance())
	s.Next()

	// Required single-select blocks on the empty value too.
	require.Equal(t, "primary", s.Current().ID)
	s.SetAnswer("primary", ChoiceValue{})
	assert.False(t, s.CanAdvance())
	s.SetAnswer("primary", ChoiceValue{}.Select(OtherOption))
	assert.True(t, s.CanAdvance())
}

func TestSkipMatchesNext(t *testing.T) {
	s := NewSession(testCatalog())
	s.Skip()
	assert.Equal(t, 1, s.Position())

	// Skip on the last visible question also lands in review.
	for range len(s.Visible()) - 2 {
		s.Skip()
	}
	s.Skip()
	assert.Equal(t, PhaseReviewing, s.Phase())
}

func TestAnsweredCountSkipsIntro(t *testing.T) {
	s := NewSession(testCatalog())
	answered, total := s.AnsweredCount()
	assert.Equal(t, 0, answered)
	assert.Equal(t, 3, total) // intro excluded, secondary hidden

	s.SetAnswer("name", TextValue("Acme"))
	s.SetAnswer("primary", ChoiceValue{}.Select("Live Demo"))
	answered, total = s.AnsweredCount()
	assert.Equal(t, 2, answered)
	assert.Equal(t, 4, total) // secondary now visible
}

func TestDefaultCatalogInvariants(t *testing.T) {
	catalog := DefaultCatalog()
	seen := make(map[string]bool)
	for _, q := range catalog {
		assert.False(t, seen[q.ID], "duplicate id %s", q.ID)
		seen[q.ID] = true
		assert.NotEmpty(t, q.Section)
		assert.NotEmpty(t, q.Title)
	}

	secondary, ok := QuestionByID(catalog, "secondary-functions")
	require.True(t, ok)
	require.NotNil(t, secondary.VisibleIf)

	answers := make(Answers)
	assert.False(t, secondary.VisibleIf(answers))
	answers.Set("primary-function", ChoiceValue{}.Select("Photo Moment"))
	assert.True(t, secondary.VisibleIf(answers))

	assert.Equal(t,
		[]string{"Welcome", "Project Basics", "Aesthetic", "Functional", "Technical Scope", "Contact"},
		Sections(catalog))
}
