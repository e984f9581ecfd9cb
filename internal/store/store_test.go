package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marco-mi/MoonworksBrief/internal/brief"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleAnswers() brief.Answers {
	a := make(brief.Answers)
	a.Set("client-name", brief.TextValue("Acme"))
	a.Set("primary-function", brief.ChoiceValue{}.SetOtherText("Mascot reveal"))
	a.Set("budget-range", brief.BudgetValue{}.SetCustomAmount("12000"))
	return a
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("  ")
	assert.Error(t, err)
}

func TestSaveAndGetBrief(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	submitted := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)
	id, err := s.SaveBrief(ctx, Brief{
		Client:      "Acme",
		Contact:     "hello@acme.test",
		SubmittedAt: submitted,
		Answers:     sampleAnswers(),
	})
	require.NoError(t, err)
	require.Positive(t, id)

	got, err := s.GetBrief(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Client)
	assert.Equal(t, "hello@acme.test", got.Contact)
	assert.Equal(t, submitted, got.SubmittedAt)
	assert.Equal(t, sampleAnswers(), got.Answers)
}

func TestSaveRequiresClient(t *testing.T) {
	s := openTestStore(t)
	_, err := s.SaveBrief(context.Background(), Brief{Answers: sampleAnswers()})
	assert.Error(t, err)
}

func TestGetMissingBrief(t *testing.T) {
	s := openTestStore(t)
	_, err := s.GetBrief(context.Background(), 404)
	assert.Error(t, err)
}

func TestListBriefsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	for i, client := range []string{"First", "Second", "Third"} {
		_, err := s.SaveBrief(ctx, Brief{
			Client:      client,
			SubmittedAt: base.Add(time.Duration(i) * time.Hour),
			Answers:     sampleAnswers(),
		})
		require.NoError(t, err)
	}

	briefs, err := s.ListBriefs(ctx)
	require.NoError(t, err)
	require.Len(t, briefs, 3)
	assert.Equal(t, "Third", briefs[0].Client)
	assert.Equal(t, "Second", briefs[1].Client)
	assert.Equal(t, "First", briefs[2].Client)
	assert.NotEmpty(t, briefs[0].Answers)
}
