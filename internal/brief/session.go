package brief

// Phase is the wizard's top-level mode.
type Phase int

const (
	// PhaseEditing presents one visible question at a time.
	PhaseEditing Phase = iota
	// PhaseReviewing shows the read-mostly summary before submission.
	PhaseReviewing
)

// Session is the per-run wizard state: the answer map, the position into the
// visible question list, and the editing/reviewing phase. Nothing survives
// the session; a new run starts empty.
//
// All transitions are synchronous and total. Next and Skip do not re-check
// CanAdvance themselves; the presentation layer gates the affordance, which
// mirrors the behaviour this wizard ships with.
type Session struct {
	catalog []Question
	answers Answers
	pos     int
	phase   Phase
}

// NewSession creates a fresh session over catalog with no answers, position
// zero, and the editing phase.
func NewSession(catalog []Question) *Session {
	return &Session{
		catalog: catalog,
		answers: make(Answers),
	}
}

// Catalog returns the full ordered catalog, including hidden questions.
func (s *Session) Catalog() []Question { return s.catalog }

// Answers returns the live answer map.
func (s *Session) Answers() Answers { return s.answers }

// Phase returns the current wizard phase.
func (s *Session) Phase() Phase { return s.phase }

// Position returns the index into the visible question list.
func (s *Session) Position() int { return s.pos }

// Visible returns the currently presented questions in order.
func (s *Session) Visible() []Question {
	return Visible(s.catalog, s.answers)
}

// Current returns the question at the session position. The position is kept
// in bounds by SetAnswer, but an empty catalog still yields a zero Question
// rather than a panic.
func (s *Session) Current() Question {
	visible := s.Visible()
	if len(visible) == 0 {
		return Question{}
	}
	if s.pos >= len(visible) {
		return visible[0]
	}
	return visible[s.pos]
}

// Answer returns the stored value for id.
func (s *Session) Answer(id string) (Value, bool) {
	return s.answers.Get(id)
}

// SetAnswer stores a normalized value and reconciles the position against the
// possibly changed visible list: an out-of-range position resets to zero.
func (s *Session) SetAnswer(id string, v Value) {
	s.answers.Set(id, v)
	if s.pos >= len(s.Visible()) {
		s.pos = 0
	}
}

// CanAdvance reports whether forward progress from the current question is
// allowed: optional questions always, required ones only once answered
// non-empty.
func (s *Session) CanAdvance() bool {
	q := s.Current()
	return !q.Required || s.answers.Answered(q.ID)
}

// Next advances to the following visible question, or transitions to the
// review phase when already on the last one. No-op outside the editing phase.
func (s *Session) Next() {
	if s.phase != PhaseEditing {
		return
	}
	if s.pos < len(s.Visible())-1 {
		s.pos++
		return
	}
	s.phase = PhaseReviewing
}

// Previous steps back one visible question; no-op at the first.
func (s *Session) Previous() {
	if s.phase != PhaseEditing {
		return
	}
	if s.pos > 0 {
		s.pos--
	}
}

// Skip is Next under another name, intended for optional questions. The
// required/optional distinction is enforced by the caller, not here.
func (s *Session) Skip() {
	s.Next()
}

// EditFromReview returns to the editing phase at the position held before
// review was entered.
func (s *Session) EditFromReview() {
	if s.phase == PhaseReviewing {
		s.phase = PhaseEditing
	}
}

// AnsweredCount returns how many visible questions currently hold a
// non-empty answer, and the visible total. Intro questions count as neither.
func (s *Session) AnsweredCount() (answered, total int) {
	for _, q := range s.Visible() {
		if q.Kind == KindIntro {
			continue
		}
		total++
		if s.answers.Answered(q.ID) {
			answered++
		}
	}
	return answered, total
}
