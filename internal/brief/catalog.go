// Package brief implements the brief builder core: the question catalog, the
// typed answer map, the visibility filter, the wizard navigation state
// machine, and the summary formatter. The package is pure state and
// derivation; all rendering and I/O live elsewhere.
package brief

// Kind enumerates each screen of the brief wizard. The names double as the
// catalog/wire identifiers.
type Kind string

const (
	KindIntro        Kind = "intro"
	KindTags         Kind = "multi-select-tags"
	KindGrid         Kind = "visual-grid"
	KindMultiSelect  Kind = "multi-select"
	KindSingleSelect Kind = "single-select"
	KindDimensions   Kind = "dimensions"
	KindLogistics    Kind = "logistics"
	KindDropdown     Kind = "dropdown"
	KindText         Kind = "text-input"
	KindDate         Kind = "date-input"
	KindSecondary    Kind = "secondary-functions"
	KindFileUpload   Kind = "file-upload"
	KindFileOrLinks  Kind = "file-or-links"
)

// GridOption is one swatch in a visual-grid question.
type GridOption struct {
	Label  string
	Swatch string // hex color shown as the swatch block
}

// FieldSpec labels one input of a tuple-style question.
type FieldSpec struct {
	Label       string
	Placeholder string
}

// Question is one immutable catalog entry. ID is the answer-map key and must
// be unique across the catalog; catalog order is display order.
type Question struct {
	ID       string
	Section  string
	Title    string
	Subtitle string
	Kind     Kind
	Required bool

	Description      string // intro body text
	Placeholder      string // text/date input hint
	Multiline        bool
	Options          []string
	OtherPlaceholder string // hint for the Other free-text field
	GridOptions      []GridOption
	Inputs           []FieldSpec
	LinkPlaceholder  string

	// VisibleIf, when set, gates the question on prior answers. Nil means
	// always visible.
	VisibleIf func(Answers) bool
}

// Logistics sub-field presets.
var (
	VenuePresets    = []string{"Indoor", "Outdoor", "Semi"}
	DurationPresets = []string{"1-day", "1-week", "Permanent"}
	PowerPresets    = []string{"Yes", "No", "Generator needed"}
	FloorPresets    = []string{"Standard", "Reinforced", "Weight Restricted"}
)

// primaryFunctionOptions is shared between the primary and secondary
// function questions.
var primaryFunctionOptions = []string{
	"Photo Moment",
	"Product Launch",
	"VIP Lounge",
	"Live Demo",
	"Pop-up Retail",
	"Queue Management",
	"Art Installation",
}

// DefaultCatalog returns the Moonworks project brief catalog. The slice is
// freshly allocated on every call so callers cannot mutate shared state.
func DefaultCatalog() []Question {
	withOther := func(opts []string) []string {
		out := append([]string(nil), opts...)
		return append(out, OtherOption)
	}

	return []Question{
		// Section: Welcome
		{
			ID:      "brief-intro",
			Section: "Welcome",
			Title:   "Before You Start",
			Kind:    KindIntro,
			Description: "This brief builder is a structured way to capture your needs " +
				"so we can deliver the best solution. It also helps you fully express " +
				"what you want. Estimated time: 5 to 10 minutes.",
		},

		// Section: Project Basics
		{
			ID:          "client-name",
			Section:     "Project Basics",
			Title:       "Name of client, brand, or institution",
			Kind:        KindText,
			Required:    true,
			Placeholder: "Enter the name you are representing...",
		},
		{
			ID:          "project-location",
			Section:     "Project Basics",
			Title:       "Project or installation location",
			Kind:        KindText,
			Placeholder: "Enter a place, venue, or address...",
		},
		{
			ID:      "event-date-context",
			Section: "Project Basics",
			Title:   "Is this tied to a specific event or special date?",
			Kind:    KindSingleSelect,
			Options: []string{
				"Christmas",
				"Lunar New Year",
				"Mother's Day",
				"Valentine's Day",
				"Fashion Week",
				"Product Launch",
				"Anniversary",
				OtherOption,
				"None",
			},
			OtherPlaceholder: "What event or date?",
		},
		{
			ID:          "existing-brief-pdf",
			Section:     "Project Basics",
			Title:       "Upload an existing brief (PDF)",
			Kind:        KindFileUpload,
			Placeholder: "Path to a PDF file...",
		},
		{
			ID:              "inspiration-assets",
			Section:         "Project Basics",
			Title:           "Inspiration images or links",
			Kind:            KindFileOrLinks,
			Placeholder:     "Path to an image file...",
			LinkPlaceholder: "Paste links (one per line)",
		},

		// Section: Aesthetic
		{
			ID:      "concept-keywords",
			Section: "Aesthetic",
			Title:   "Concept Keywords",
			Kind:    KindTags,
			Options: []string{
				"Luxury",
				"Minimalist",
				"Maximalist",
				"Raw Materials",
				"Playful",
				"Colorful",
				"Interactive",
				"Tech-forward",
				"Sustainable",
				"Biophilic",
				"Kinetic",
				OtherOption,
			},
			OtherPlaceholder: "Add your own keyword...",
		},
		{
			ID:      "finishes-textures",
			Section: "Aesthetic",
			Title:   "Finishes & Textures",
			Kind:    KindGrid,
			GridOptions: []GridOption{
				// Solid colors
				{Label: "White", Swatch: "#FFFFFF"},
				{Label: "Black", Swatch: "#000000"},
				{Label: "Grey", Swatch: "#808080"},
				{Label: "Red", Swatch: "#FF0000"},
				{Label: "Blue", Swatch: "#0000FF"},
				{Label: "Green", Swatch: "#008000"},
				{Label: "Yellow", Swatch: "#FFFF00"},
				{Label: "Orange", Swatch: "#FFA500"},
				{Label: "Purple", Swatch: "#800080"},
				{Label: "Pink", Swatch: "#FFC0CB"},
				// Gradients
				{Label: "Rainbow", Swatch: "#FF7F00"},
				{Label: "Pastel Gradient", Swatch: "#FFB6C1"},
				{Label: "Sunset", Swatch: "#FF6B6B"},
				{Label: "Ocean", Swatch: "#667EEA"},
				// Wood
				{Label: "Light Wood", Swatch: "#DEB887"},
				{Label: "Medium Tone Wood", Swatch: "#8B4513"},
				{Label: "Dark Wood", Swatch: "#654321"},
				{Label: "Burned Wood", Swatch: "#2F1B14"},
				{Label: "Oak Wood", Swatch: "#D2B48C"},
				// Marble
				{Label: "Marble", Swatch: "#E8E8E8"},
				// Metal
				{Label: "Gold", Swatch: "#FFD700"},
				{Label: "Silver", Swatch: "#C0C0C0"},
				{Label: "Brushed Steel", Swatch: "#708090"},
				{Label: "Mirror", Swatch: "#D3D3D3"},
			},
		},
		{
			ID:          "core-concept",
			Section:     "Aesthetic",
			Title:       "Is there a core concept or narrative idea?",
			Kind:        KindText,
			Multiline:   true,
			Placeholder: "Describe your core concept or narrative...",
		},

		// Section: Functional
		{
			ID:      "required-assets",
			Section: "Functional",
			Title:   "Required Assets",
			Kind:    KindMultiSelect,
			Options: []string{
				"Chairs",
				"Desks",
				"Lighting",
				"Pedestals",
				"Fencing",
				"Storage",
				OtherOption,
			},
			OtherPlaceholder: "What assets do you need?",
		},
		{
			ID:               "primary-function",
			Section:          "Functional",
			Title:            "Primary Function",
			Subtitle:         "Select one primary function, and then multiple secondary functions",
			Kind:             KindSingleSelect,
			Required:         true,
			Options:          withOther(primaryFunctionOptions),
			OtherPlaceholder: "What is the primary function?",
		},
		{
			ID:               "secondary-functions",
			Section:          "Functional",
			Title:            "Secondary Functions",
			Kind:             KindSecondary,
			Options:          withOther(primaryFunctionOptions),
			OtherPlaceholder: "What other functions are needed?",
			VisibleIf: func(a Answers) bool {
				return a.Answered("primary-function")
			},
		},
		{
			ID:          "delivery-date",
			Section:     "Functional",
			Title:       "Desired Delivery/Installing Date",
			Kind:        KindDate,
			Placeholder: "YYYY-MM-DD",
		},
		{
			ID:      "signage-needs",
			Section: "Functional",
			Title:   "Signage Needs",
			Kind:    KindMultiSelect,
			Options: []string{
				"Digital Screens",
				"Physical Lettering",
				"Illuminated Signage",
				"Wayfinding",
				OtherOption,
				"None",
			},
			OtherPlaceholder: "What kind of signage is needed?",
		},

		// Section: Technical Scope
		{
			ID:      "dimensions",
			Section: "Technical Scope",
			Title:   "Dimensions",
			Kind:    KindDimensions,
			Inputs: []FieldSpec{
				{Label: "Length", Placeholder: "m"},
				{Label: "Width", Placeholder: "m"},
				{Label: "Height", Placeholder: "m"},
			},
		},
		{
			ID:      "logistics",
			Section: "Technical Scope",
			Title:   "Logistics",
			Kind:    KindLogistics,
		},
		{
			ID:      "budget-range",
			Section: "Technical Scope",
			Title:   "Budget Range",
			Kind:    KindDropdown,
			Options: []string{
				"<$10k",
				"$10k-$30k",
				"$30k-$50k",
				"$50k+",
				"Undecided",
				CustomBudgetOption,
			},
		},

		// Section: Contact
		{
			ID:          "contact-info",
			Section:     "Contact",
			Title:       "E-mail or phone contact",
			Kind:        KindText,
			Required:    true,
			Placeholder: "Enter an email address or phone number...",
		},
	}
}

// Sections returns the distinct section labels in catalog order.
func Sections(catalog []Question) []string {
	var out []string
	seen := make(map[string]bool)
	for _, q := range catalog {
		if seen[q.Section] {
			continue
		}
		seen[q.Section] = true
		out = append(out, q.Section)
	}
	return out
}

// QuestionByID looks up a catalog entry by its answer-map key.
func QuestionByID(catalog []Question, id string) (Question, bool) {
	for _, q := range catalog {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
