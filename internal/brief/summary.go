package brief

import (
	"fmt"
	"strings"
)

// NotAnswered is the display string for absent or empty answers.
const NotAnswered = "Not answered"

// Entry is one formatted summary line: the question and its human-readable
// answer.
type Entry struct {
	ID      string
	Section string
	Title   string
	Display string
}

// Format flattens the answer map into ordered (title, display) pairs for the
// review screen and exports. Intro entries are skipped; every other catalog
// question produces exactly one entry, "Not answered" when absent or empty.
// The answer map is not mutated.
func Format(catalog []Question, answers Answers) []Entry {
	var out []Entry
	for _, q := range catalog {
		if q.Kind == KindIntro {
			continue
		}
		out = append(out, Entry{
			ID:      q.ID,
			Section: q.Section,
			Title:   q.Title,
			Display: displayAnswer(q, answers),
		})
	}
	return out
}

func displayAnswer(q Question, answers Answers) string {
	v, ok := answers.Get(q.ID)
	if !ok || v.Empty() {
		return NotAnswered
	}

	switch v := v.(type) {
	case TagsValue:
		return joinOrNot(v.Combined())
	case GridValue:
		return joinOrNot(v.Labels)
	case SecondaryValue:
		return joinOrNot(v.Display())
	case ChoiceListValue:
		return joinOrNot(v.Display())
	case ChoiceValue:
		return v.Choice.Display()
	case DimensionsValue:
		return formatDimensions(v)
	case LogisticsValue:
		return formatLogistics(v)
	case BudgetValue:
		return formatBudget(v)
	case TextValue:
		return string(v)
	case DateValue:
		return string(v)
	case FilesValue:
		return joinOrNot(v.Names)
	case FilesLinksValue:
		return formatFilesLinks(v)
	default:
		return NotAnswered
	}
}

func joinOrNot(items []string) string {
	if len(items) == 0 {
		return NotAnswered
	}
	return strings.Join(items, ", ")
}

func formatDimensions(v DimensionsValue) string {
	dash := func(s string) string {
		if strings.TrimSpace(s) == "" {
			return "-"
		}
		return s
	}
	return fmt.Sprintf("%sm × %sm × %sm", dash(v.Axes[AxisLength]), dash(v.Axes[AxisWidth]), dash(v.Axes[AxisHeight]))
}

func formatLogistics(v LogisticsValue) string {
	var parts []string
	annotated := func(label, value, other string) string {
		if other != "" {
			return fmt.Sprintf("%s: %s (%s)", label, value, other)
		}
		return fmt.Sprintf("%s: %s", label, value)
	}
	if v.VenueType != "" {
		parts = append(parts, annotated("Venue", v.VenueType, v.VenueTypeOther))
	}
	if v.Duration != "" {
		parts = append(parts, annotated("Duration", v.Duration, v.DurationOther))
	}
	if v.PowerAccess != "" {
		parts = append(parts, "Power: "+v.PowerAccess)
	}
	if v.FloorLoading != "" {
		parts = append(parts, annotated("Floor", v.FloorLoading, v.FloorLoadingOther))
	}
	return joinOrNot(parts)
}

func formatBudget(v BudgetValue) string {
	if v.Range == CustomBudgetOption {
		if v.CustomAmount != "" {
			return "Custom: " + v.CustomAmount
		}
		return CustomBudgetOption
	}
	return v.Range
}

func formatFilesLinks(v FilesLinksValue) string {
	names := strings.Join(v.Names, ", ")
	links := strings.Join(v.LinkLines(), ", ")
	switch {
	case names == "" && links == "":
		return NotAnswered
	case names != "" && links != "":
		return names + "; " + links
	case names != "":
		return names
	default:
		return links
	}
}
