package brief

import (
	"encoding/json"
	"fmt"
)

// Answers is the mutable session record of question id to normalized value.
// Absence of a key means unanswered, which is distinct from a stored empty
// value.
type Answers map[string]Value

// Set stores v under id, replacing any previous value. A nil value removes
// the entry, returning the question to the unanswered state.
func (a Answers) Set(id string, v Value) {
	if v == nil {
		delete(a, id)
		return
	}
	a[id] = v
}

// Get returns the stored value for id.
func (a Answers) Get(id string) (Value, bool) {
	v, ok := a[id]
	return v, ok
}

// Answered reports whether id has a stored, non-empty value.
func (a Answers) Answered(id string) bool {
	v, ok := a[id]
	return ok && !v.Empty()
}

// Clone returns a shallow copy. Values are immutable under the normalization
// operations, so a shallow copy is safe to hand across a session boundary.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for id, v := range a {
		out[id] = v
	}
	return out
}

// ---------------------------------------------------------------------------
// JSON envelope
// ---------------------------------------------------------------------------

// valueEnvelope is the persisted form of a Value: a kind tag plus the raw
// variant payload.
type valueEnvelope struct {
	Kind Kind            `json:"kind"`
	Data json.RawMessage `json:"data,omitempty"`
}

// MarshalJSON encodes each value as a kind-tagged envelope so briefs survive
// the archive and outbox round trip.
func (a Answers) MarshalJSON() ([]byte, error) {
	out := make(map[string]valueEnvelope, len(a))
	for id, v := range a {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode answer %s: %w", id, err)
		}
		out[id] = valueEnvelope{Kind: v.Kind(), Data: data}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes kind-tagged envelopes back into typed values.
// Envelopes with an unknown kind are dropped rather than failing the whole
// document.
func (a *Answers) UnmarshalJSON(data []byte) error {
	var raw map[string]valueEnvelope
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Answers, len(raw))
	for id, env := range raw {
		v, err := decodeValue(env)
		if err != nil {
			return fmt.Errorf("decode answer %s: %w", id, err)
		}
		if v != nil {
			out[id] = v
		}
	}
	*a = out
	return nil
}

func decodeValue(env valueEnvelope) (Value, error) {
	payload := env.Data
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	switch env.Kind {
	case KindTags:
		var v TagsValue
		return v, json.Unmarshal(payload, &v)
	case KindGrid:
		var v GridValue
		return v, json.Unmarshal(payload, &v)
	case KindMultiSelect:
		var v ChoiceListValue
		return v, json.Unmarshal(payload, &v)
	case KindSecondary:
		var v SecondaryValue
		return v, json.Unmarshal(payload, &v)
	case KindSingleSelect:
		var v ChoiceValue
		return v, json.Unmarshal(payload, &v)
	case KindDimensions:
		var v DimensionsValue
		return v, json.Unmarshal(payload, &v)
	case KindLogistics:
		var v LogisticsValue
		return v, json.Unmarshal(payload, &v)
	case KindDropdown:
		var v BudgetValue
		return v, json.Unmarshal(payload, &v)
	case KindText:
		var v TextValue
		return v, json.Unmarshal(payload, &v)
	case KindDate:
		var v DateValue
		return v, json.Unmarshal(payload, &v)
	case KindFileUpload:
		var v FilesValue
		return v, json.Unmarshal(payload, &v)
	case KindFileOrLinks:
		var v FilesLinksValue
		return v, json.Unmarshal(payload, &v)
	default:
		return nil, nil
	}
}
