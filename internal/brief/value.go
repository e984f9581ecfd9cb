package brief

import "strings"

// ---------------------------------------------------------------------------
// Choice -- Known | Other sum for selectable options
// ---------------------------------------------------------------------------

// Choice is a single selectable element. A choice is either one of the
// catalog options or the free-text "Other" escape hatch. The two cases are
// kept apart structurally; the legacy "Other: <text>" string form exists only
// as display output.
type Choice struct {
	Option    string `json:"option,omitempty"`
	IsOther   bool   `json:"isOther,omitempty"`
	OtherText string `json:"otherText,omitempty"`
}

// KnownChoice wraps a catalog option label.
func KnownChoice(option string) Choice {
	return Choice{Option: option}
}

// OtherChoice creates the free-text variant. Whitespace-only text collapses
// to the bare sentinel.
func OtherChoice(text string) Choice {
	if strings.TrimSpace(text) == "" {
		text = ""
	}
	return Choice{IsOther: true, OtherText: text}
}

// Display renders the choice for summaries and the wire format: the option
// label, "Other", or "Other: <text>".
func (c Choice) Display() string {
	if !c.IsOther {
		return c.Option
	}
	if c.OtherText == "" {
		return "Other"
	}
	return "Other: " + c.OtherText
}

// OtherOption is the catalog sentinel marking the escape-hatch entry in an
// options list.
const OtherOption = "Other"

// ---------------------------------------------------------------------------
// Value -- one variant per question kind
// ---------------------------------------------------------------------------

// Value is the closed set of answer shapes. Every question kind has exactly
// one variant; the answer map never stores anything else.
type Value interface {
	Kind() Kind
	// Empty reports whether the value counts as unanswered for required
	// gating and summary display. An empty value is still distinct from an
	// absent one.
	Empty() bool
}

// ---------------------------------------------------------------------------
// TagsValue -- multi-select-tags
// ---------------------------------------------------------------------------

// TagsValue holds toggled catalog tags plus free-text entries tracked apart
// from the catalog options. OtherInput is the uncommitted text of the custom
// tag field.
type TagsValue struct {
	Selected   []string `json:"selected,omitempty"`
	Other      []string `json:"other,omitempty"`
	OtherInput string   `json:"otherInput,omitempty"`
}

func (TagsValue) Kind() Kind { return KindTags }

func (v TagsValue) Empty() bool {
	if len(v.Selected) > 0 {
		return false
	}
	for _, o := range v.Other {
		if strings.TrimSpace(o) != "" {
			return false
		}
	}
	return strings.TrimSpace(v.OtherInput) == ""
}

// Toggle adds tag to the selection, or removes it when already present.
func (v TagsValue) Toggle(tag string) TagsValue {
	out := v
	out.Selected = toggleString(v.Selected, tag)
	return out
}

// HasTag reports whether tag is currently selected.
func (v TagsValue) HasTag(tag string) bool {
	return containsString(v.Selected, tag)
}

// SetOtherInput updates the pending custom-tag text.
func (v TagsValue) SetOtherInput(text string) TagsValue {
	out := v
	out.OtherInput = text
	return out
}

// CommitOther moves the pending text into the free-text entries. Blank
// pending text is a no-op.
func (v TagsValue) CommitOther() TagsValue {
	out := v
	text := strings.TrimSpace(v.OtherInput)
	if text == "" {
		return out
	}
	out.Other = append(append([]string(nil), v.Other...), text)
	out.OtherInput = ""
	return out
}

// Combined returns selected tags, committed free-text entries, and any
// pending text, in that order. Used by the summary formatter.
func (v TagsValue) Combined() []string {
	var out []string
	out = append(out, v.Selected...)
	for _, o := range v.Other {
		if strings.TrimSpace(o) != "" {
			out = append(out, o)
		}
	}
	if t := strings.TrimSpace(v.OtherInput); t != "" {
		out = append(out, t)
	}
	return out
}

// ---------------------------------------------------------------------------
// GridValue -- visual-grid
// ---------------------------------------------------------------------------

// GridValue is the ordered set of toggled swatch labels. No free text.
type GridValue struct {
	Labels []string `json:"labels,omitempty"`
}

func (GridValue) Kind() Kind    { return KindGrid }
func (v GridValue) Empty() bool { return len(v.Labels) == 0 }

// Toggle adds label to the set, or removes it when already present.
func (v GridValue) Toggle(label string) GridValue {
	return GridValue{Labels: toggleString(v.Labels, label)}
}

// HasLabel reports whether label is toggled on.
func (v GridValue) HasLabel(label string) bool {
	return containsString(v.Labels, label)
}

// ---------------------------------------------------------------------------
// ChoiceListValue -- multi-select, secondary-functions
// ---------------------------------------------------------------------------

// ChoiceListValue is an ordered set of choices where at most one element is
// the Other variant.
type ChoiceListValue struct {
	Choices []Choice `json:"choices,omitempty"`
}

func (ChoiceListValue) Kind() Kind    { return KindMultiSelect }
func (v ChoiceListValue) Empty() bool { return len(v.Choices) == 0 }

// Toggle flips the presence of option. Toggling the Other sentinel adds or
// removes the single Other element, discarding its text on removal.
func (v ChoiceListValue) Toggle(option string) ChoiceListValue {
	if option == OtherOption {
		if v.OtherSelected() {
			return v.withoutOther()
		}
		out := v.withoutOther()
		out.Choices = append(out.Choices, OtherChoice(""))
		return out
	}
	out := ChoiceListValue{}
	removed := false
	for _, c := range v.Choices {
		if !c.IsOther && c.Option == option {
			removed = true
			continue
		}
		out.Choices = append(out.Choices, c)
	}
	if !removed {
		out.Choices = append(out.Choices, KnownChoice(option))
	}
	return out
}

// SetOtherText replaces the Other element's free text, appending the element
// when none exists. Whitespace-only text reverts to the bare sentinel.
func (v ChoiceListValue) SetOtherText(text string) ChoiceListValue {
	out := v.withoutOther()
	if strings.TrimSpace(text) == "" {
		text = ""
	}
	out.Choices = append(out.Choices, Choice{IsOther: true, OtherText: text})
	return out
}

// OtherSelected reports whether the Other element is present.
func (v ChoiceListValue) OtherSelected() bool {
	for _, c := range v.Choices {
		if c.IsOther {
			return true
		}
	}
	return false
}

// OtherText returns the Other element's text, or "" when absent.
func (v ChoiceListValue) OtherText() string {
	for _, c := range v.Choices {
		if c.IsOther {
			return c.OtherText
		}
	}
	return ""
}

// Selected reports whether option is present. The Other sentinel matches the
// Other element regardless of its text.
func (v ChoiceListValue) Selected(option string) bool {
	if option == OtherOption {
		return v.OtherSelected()
	}
	for _, c := range v.Choices {
		if !c.IsOther && c.Option == option {
			return true
		}
	}
	return false
}

// Display renders each choice in order.
func (v ChoiceListValue) Display() []string {
	out := make([]string, 0, len(v.Choices))
	for _, c := range v.Choices {
		out = append(out, c.Display())
	}
	return out
}

func (v ChoiceListValue) withoutOther() ChoiceListValue {
	out := ChoiceListValue{}
	for _, c := range v.Choices {
		if c.IsOther {
			continue
		}
		out.Choices = append(out.Choices, c)
	}
	return out
}

// SecondaryValue is the dependent multi-select. It shares the choice-list
// behaviour under its own kind tag.
type SecondaryValue struct {
	ChoiceListValue
}

func (SecondaryValue) Kind() Kind { return KindSecondary }

// Toggle flips option, preserving the secondary kind tag.
func (v SecondaryValue) Toggle(option string) SecondaryValue {
	return SecondaryValue{v.ChoiceListValue.Toggle(option)}
}

// SetOtherText replaces the Other element's text, preserving the kind tag.
func (v SecondaryValue) SetOtherText(text string) SecondaryValue {
	return SecondaryValue{v.ChoiceListValue.SetOtherText(text)}
}

// ---------------------------------------------------------------------------
// ChoiceValue -- single-select
// ---------------------------------------------------------------------------

// ChoiceValue holds one selected choice. The zero value is unanswered.
type ChoiceValue struct {
	Choice   Choice `json:"choice"`
	Answered bool   `json:"answered,omitempty"`
}

func (ChoiceValue) Kind() Kind    { return KindSingleSelect }
func (v ChoiceValue) Empty() bool { return !v.Answered }

// Select replaces the value outright. Selecting the Other sentinel yields the
// bare Other variant, dropping any previous free text.
func (v ChoiceValue) Select(option string) ChoiceValue {
	if option == OtherOption {
		return ChoiceValue{Choice: OtherChoice(""), Answered: true}
	}
	return ChoiceValue{Choice: KnownChoice(option), Answered: true}
}

// SetOtherText switches to the Other variant carrying text. Whitespace-only
// text reverts to the bare sentinel.
func (v ChoiceValue) SetOtherText(text string) ChoiceValue {
	if strings.TrimSpace(text) == "" {
		text = ""
	}
	return ChoiceValue{Choice: Choice{IsOther: true, OtherText: text}, Answered: true}
}

// ---------------------------------------------------------------------------
// DimensionsValue -- dimensions
// ---------------------------------------------------------------------------

// Axis indices into DimensionsValue.
const (
	AxisLength = 0
	AxisWidth  = 1
	AxisHeight = 2
)

// DimensionsValue is the fixed L/W/H tuple of numeric text. Absent axes are
// empty strings, never missing.
type DimensionsValue struct {
	Axes [3]string `json:"axes"`
}

func (DimensionsValue) Kind() Kind { return KindDimensions }

func (v DimensionsValue) Empty() bool {
	for _, a := range v.Axes {
		if strings.TrimSpace(a) != "" {
			return false
		}
	}
	return true
}

// SetAxis replaces a single axis. Out-of-range indices are ignored.
func (v DimensionsValue) SetAxis(i int, text string) DimensionsValue {
	if i < 0 || i >= len(v.Axes) {
		return v
	}
	out := v
	out.Axes[i] = text
	return out
}

// ---------------------------------------------------------------------------
// LogisticsValue -- logistics
// ---------------------------------------------------------------------------

// LogisticsValue is the composite site sub-form. Each preset sub-field has a
// paired free-text field; picking a preset clears the pair, typing free text
// forces the sub-field to the Other sentinel.
type LogisticsValue struct {
	VenueType         string `json:"venueType,omitempty"`
	VenueTypeOther    string `json:"venueTypeOther,omitempty"`
	Duration          string `json:"duration,omitempty"`
	DurationOther     string `json:"durationOther,omitempty"`
	PowerAccess       string `json:"powerAccess,omitempty"`
	FloorLoading      string `json:"floorLoading,omitempty"`
	FloorLoadingOther string `json:"floorLoadingOther,omitempty"`
}

func (LogisticsValue) Kind() Kind { return KindLogistics }

func (v LogisticsValue) Empty() bool {
	return v.VenueType == "" && v.Duration == "" && v.PowerAccess == "" && v.FloorLoading == ""
}

// SetVenue selects a venue preset, clearing the paired free text.
func (v LogisticsValue) SetVenue(preset string) LogisticsValue {
	out := v
	out.VenueType = preset
	out.VenueTypeOther = ""
	return out
}

// SetVenueOther records venue free text and marks the sub-field as Other.
func (v LogisticsValue) SetVenueOther(text string) LogisticsValue {
	out := v
	out.VenueType = OtherOption
	out.VenueTypeOther = text
	return out
}

// SetDuration selects a duration preset, clearing the paired free text.
func (v LogisticsValue) SetDuration(preset string) LogisticsValue {
	out := v
	out.Duration = preset
	out.DurationOther = ""
	return out
}

// SetDurationOther records duration free text and marks the sub-field as Other.
func (v LogisticsValue) SetDurationOther(text string) LogisticsValue {
	out := v
	out.Duration = OtherOption
	out.DurationOther = text
	return out
}

// SetPower selects a power-access preset. Power has no free-text pair.
func (v LogisticsValue) SetPower(preset string) LogisticsValue {
	out := v
	out.PowerAccess = preset
	return out
}

// SetFloor selects a floor-loading preset, clearing the paired free text.
func (v LogisticsValue) SetFloor(preset string) LogisticsValue {
	out := v
	out.FloorLoading = preset
	out.FloorLoadingOther = ""
	return out
}

// SetFloorOther records floor-loading free text and marks the sub-field as Other.
func (v LogisticsValue) SetFloorOther(text string) LogisticsValue {
	out := v
	out.FloorLoading = OtherOption
	out.FloorLoadingOther = text
	return out
}

// ---------------------------------------------------------------------------
// BudgetValue -- dropdown
// ---------------------------------------------------------------------------

// CustomBudgetOption is the dropdown sentinel that unlocks the free-amount
// field.
const CustomBudgetOption = "Custom fixed budget"

// BudgetValue is always stored in object form once touched. CustomAmount is
// meaningful only while Range is the custom sentinel.
type BudgetValue struct {
	Range        string `json:"value"`
	CustomAmount string `json:"customBudget,omitempty"`
}

func (BudgetValue) Kind() Kind    { return KindDropdown }
func (v BudgetValue) Empty() bool { return v.Range == "" }

// Select picks a range option. Non-custom options clear the custom amount;
// the custom sentinel preserves it.
func (v BudgetValue) Select(option string) BudgetValue {
	if option != CustomBudgetOption {
		return BudgetValue{Range: option}
	}
	return BudgetValue{Range: option, CustomAmount: v.CustomAmount}
}

// SetCustomAmount records the free amount, forcing the custom sentinel.
func (v BudgetValue) SetCustomAmount(amount string) BudgetValue {
	return BudgetValue{Range: CustomBudgetOption, CustomAmount: amount}
}

// ---------------------------------------------------------------------------
// Text, date, file kinds
// ---------------------------------------------------------------------------

// TextValue is a plain string answer, single or multi line.
type TextValue string

func (TextValue) Kind() Kind    { return KindText }
func (v TextValue) Empty() bool { return strings.TrimSpace(string(v)) == "" }

// DateValue is a date answer in YYYY-MM-DD text form.
type DateValue string

func (DateValue) Kind() Kind    { return KindDate }
func (v DateValue) Empty() bool { return strings.TrimSpace(string(v)) == "" }

// FilesValue is the ordered list of attached file names.
type FilesValue struct {
	Names []string `json:"names,omitempty"`
}

func (FilesValue) Kind() Kind    { return KindFileUpload }
func (v FilesValue) Empty() bool { return len(v.Names) == 0 }

// Add appends a file name. Blank names are ignored.
func (v FilesValue) Add(name string) FilesValue {
	if strings.TrimSpace(name) == "" {
		return v
	}
	return FilesValue{Names: append(append([]string(nil), v.Names...), name)}
}

// RemoveLast drops the most recently added file name.
func (v FilesValue) RemoveLast() FilesValue {
	if len(v.Names) == 0 {
		return v
	}
	return FilesValue{Names: append([]string(nil), v.Names[:len(v.Names)-1]...)}
}

// FilesLinksValue pairs attached file names with newline-separated link text.
type FilesLinksValue struct {
	Names []string `json:"names,omitempty"`
	Links string   `json:"links,omitempty"`
}

func (FilesLinksValue) Kind() Kind { return KindFileOrLinks }

func (v FilesLinksValue) Empty() bool {
	return len(v.Names) == 0 && len(v.LinkLines()) == 0
}

// AddFile appends a file name. Blank names are ignored.
func (v FilesLinksValue) AddFile(name string) FilesLinksValue {
	if strings.TrimSpace(name) == "" {
		return v
	}
	out := v
	out.Names = append(append([]string(nil), v.Names...), name)
	return out
}

// RemoveLastFile drops the most recently added file name.
func (v FilesLinksValue) RemoveLastFile() FilesLinksValue {
	if len(v.Names) == 0 {
		return v
	}
	out := v
	out.Names = append([]string(nil), v.Names[:len(v.Names)-1]...)
	return out
}

// SetLinks replaces the raw link text.
func (v FilesLinksValue) SetLinks(links string) FilesLinksValue {
	out := v
	out.Links = links
	return out
}

// LinkLines returns the trimmed, non-blank link lines in order.
func (v FilesLinksValue) LinkLines() []string {
	var out []string
	for _, line := range strings.Split(v.Links, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func toggleString(set []string, s string) []string {
	var out []string
	removed := false
	for _, e := range set {
		if e == s {
			removed = true
			continue
		}
		out = append(out, e)
	}
	if !removed {
		out = append(out, s)
	}
	return out
}

func containsString(set []string, s string) bool {
	for _, e := range set {
		if e == s {
			return true
		}
	}
	return false
}
