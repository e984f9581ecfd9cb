package brief

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswersSetGet(t *testing.T) {
	a := make(Answers)
	assert.False(t, a.Answered("client-name"))

	a.Set("client-name", TextValue("Acme"))
	v, ok := a.Get("client-name")
	require.True(t, ok)
	assert.Equal(t, TextValue("Acme"), v)

	// Empty values stay stored but do not count as answered.
	a.Set("client-name", TextValue(""))
	_, ok = a.Get("client-name")
	assert.True(t, ok)
	assert.False(t, a.Answered("client-name"))

	// nil removes the entry entirely.
	a.Set("client-name", nil)
	_, ok = a.Get("client-name")
	assert.False(t, ok)
}

func TestAnswersJSONRoundTrip(t *testing.T) {
	a := make(Answers)
	a.Set("client-name", TextValue("Acme"))
	a.Set("delivery-date", DateValue("2026-11-02"))
	a.Set("concept-keywords", TagsValue{}.Toggle("Luxury").SetOtherInput("neon").CommitOther())
	a.Set("finishes-textures", GridValue{}.Toggle("Gold"))
	a.Set("required-assets", ChoiceListValue{}.Toggle("Chairs").Toggle(OtherOption).SetOtherText("planters"))
	a.Set("secondary-functions", SecondaryValue{}.Toggle("Live Demo"))
	a.Set("primary-function", ChoiceValue{}.SetOtherText("Mascot reveal"))
	a.Set("dimensions", DimensionsValue{Axes: [3]string{"3", "", "2.5"}})
	a.Set("logistics", LogisticsValue{}.SetVenue("Indoor").SetPower("Yes"))
	a.Set("budget-range", BudgetValue{}.SetCustomAmount("12000"))
	a.Set("existing-brief-pdf", FilesValue{}.Add("brief.pdf"))
	a.Set("inspiration-assets", FilesLinksValue{}.AddFile("mood.png").SetLinks("https://a"))

	data, err := json.Marshal(a)
	require.NoError(t, err)

	var back Answers
	require.NoError(t, json.Unmarshal(data, &back))
	require.Len(t, back, len(a))
	for id, want := range a {
		assert.Equal(t, want, back[id], id)
	}

	// The decoded map formats identically to the original.
	catalog := DefaultCatalog()
	assert.Equal(t, Format(catalog, a), Format(catalog, back))
}

func TestAnswersUnmarshalUnknownKind(t *testing.T) {
	data := []byte(`{"mystery": {"kind": "holographic", "data": {"x": 1}}, "client-name": {"kind": "text-input", "data": "Acme"}}`)

	var a Answers
	require.NoError(t, json.Unmarshal(data, &a))
	assert.False(t, a.Answered("mystery"))
	assert.Equal(t, TextValue("Acme"), a["client-name"])
}
