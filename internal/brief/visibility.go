package brief

// Visible derives the presented subset of the catalog from the current
// answers. Questions without a VisibleIf predicate are always included;
// catalog order is preserved. The result is recomputed on demand and never
// stored, so it cannot drift from the answer map.
func Visible(catalog []Question, answers Answers) []Question {
	out := make([]Question, 0, len(catalog))
	for _, q := range catalog {
		if q.VisibleIf != nil && !q.VisibleIf(answers) {
			continue
		}
		out = append(out, q)
	}
	return out
}
