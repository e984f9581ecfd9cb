package brief

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRoundTrip(t *testing.T) {
	catalog := []Question{
		{ID: "client-name", Section: "Basics", Title: "Name of client, brand, or institution", Kind: KindText},
		{ID: "primary-function", Section: "Functional", Title: "Primary Function", Kind: KindSingleSelect, Required: true},
		{ID: "budget-range", Section: "Scope", Title: "Budget Range", Kind: KindDropdown},
	}

	answers := make(Answers)
	answers.Set("client-name", TextValue("Acme"))
	answers.Set("primary-function", ChoiceValue{}.SetOtherText("Mascot reveal"))
	answers.Set("budget-range", BudgetValue{}.SetCustomAmount("12000"))

	entries := Format(catalog, answers)
	require.Len(t, entries, 3)
	assert.Equal(t, "Name of client, brand, or institution", entries[0].Title)
	assert.Equal(t, "Acme", entries[0].Display)
	assert.Equal(t, "Primary Function", entries[1].Title)
	assert.Equal(t, "Other: Mascot reveal", entries[1].Display)
	assert.Equal(t, "Budget Range", entries[2].Title)
	assert.Equal(t, "Custom: 12000", entries[2].Display)
}

func TestFormatEmptyAnswers(t *testing.T) {
	catalog := DefaultCatalog()
	entries := Format(catalog, make(Answers))

	// Every non-intro question appears, all unanswered.
	intros := 0
	for _, q := range catalog {
		if q.Kind == KindIntro {
			intros++
		}
	}
	require.Len(t, entries, len(catalog)-intros)
	for _, e := range entries {
		assert.Equal(t, NotAnswered, e.Display, e.ID)
	}
}

func TestFormatDimensions(t *testing.T) {
	catalog := []Question{{ID: "dimensions", Section: "Scope", Title: "Dimensions", Kind: KindDimensions}}

	answers := make(Answers)
	answers.Set("dimensions", DimensionsValue{Axes: [3]string{"3", "", "2.5"}})
	entries := Format(catalog, answers)
	require.Len(t, entries, 1)
	assert.Equal(t, "3m × -m × 2.5m", entries[0].Display)

	// All-blank axes count as unanswered.
	answers.Set("dimensions", DimensionsValue{Axes: [3]string{" ", "", ""}})
	assert.Equal(t, NotAnswered, Format(catalog, answers)[0].Display)
}

func TestFormatLogistics(t *testing.T) {
	catalog := []Question{{ID: "logistics", Section: "Scope", Title: "Logistics", Kind: KindLogistics}}

	v := LogisticsValue{}.
		SetVenueOther("rooftop").
		SetDuration("1-week").
		SetPower("Yes")
	answers := make(Answers)
	answers.Set("logistics", v)

	entries := Format(catalog, answers)
	assert.Equal(t, "Venue: Other (rooftop), Duration: 1-week, Power: Yes", entries[0].Display)

	// Only the sub-fields that are set are rendered.
	answers.Set("logistics", LogisticsValue{}.SetFloor("Reinforced"))
	assert.Equal(t, "Floor: Reinforced", Format(catalog, answers)[0].Display)
}

func TestFormatCollections(t *testing.T) {
	catalog := []Question{
		{ID: "concept-keywords", Section: "Aesthetic", Title: "Concept Keywords", Kind: KindTags},
		{ID: "finishes", Section: "Aesthetic", Title: "Finishes & Textures", Kind: KindGrid},
		{ID: "assets", Section: "Functional", Title: "Required Assets", Kind: KindMultiSelect},
		{ID: "secondary", Section: "Functional", Title: "Secondary Functions", Kind: KindSecondary},
		{ID: "inspiration", Section: "Basics", Title: "Inspiration images or links", Kind: KindFileOrLinks},
		{ID: "pdf", Section: "Basics", Title: "Upload an existing brief (PDF)", Kind: KindFileUpload},
	}

	answers := make(Answers)
	answers.Set("concept-keywords", TagsValue{}.Toggle("Luxury").SetOtherInput("neon").CommitOther())
	answers.Set("finishes", GridValue{}.Toggle("Gold").Toggle("Marble"))
	answers.Set("assets", ChoiceListValue{}.Toggle("Chairs").Toggle(OtherOption).SetOtherText("planters"))
	answers.Set("secondary", SecondaryValue{}.Toggle("Live Demo"))
	answers.Set("inspiration", FilesLinksValue{}.AddFile("mood.png").SetLinks("https://a\nhttps://b"))
	answers.Set("pdf", FilesValue{}.Add("brief.pdf"))

	display := make(map[string]string)
	for _, e := range Format(catalog, answers) {
		display[e.ID] = e.Display
	}

	assert.Equal(t, "Luxury, neon", display["concept-keywords"])
	assert.Equal(t, "Gold, Marble", display["finishes"])
	assert.Equal(t, "Chairs, Other: planters", display["assets"])
	assert.Equal(t, "Live Demo", display["secondary"])
	assert.Equal(t, "mood.png; https://a, https://b", display["inspiration"])
	assert.Equal(t, "brief.pdf", display["pdf"])
}

func TestFormatDoesNotMutate(t *testing.T) {
	catalog := DefaultCatalog()
	answers := make(Answers)
	answers.Set("client-name", TextValue("Acme"))
	before := answers.Clone()

	_ = Format(catalog, answers)
	assert.Equal(t, before, answers)
}
