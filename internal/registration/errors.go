package registration

import "sort"

// BaseField keys cross-field business-rule errors, as opposed to errors tied
// to a single attendee attribute.
const BaseField = "base"

// Errors accumulates validation messages per field. Validation never aborts
// early, so one submission surfaces every problem at once.
type Errors map[string][]string

func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

func (e Errors) Merge(other map[string][]string) {
	for field, msgs := range other {
		e[field] = append(e[field], msgs...)
	}
}

func (e Errors) Empty() bool {
	return len(e) == 0
}

// On returns the messages for one field.
func (e Errors) On(field string) []string {
	return e[field]
}

// Flat returns every message, field-sorted, for logging and flash display.
func (e Errors) Flat() []string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	var out []string
	for _, f := range fields {
		out = append(out, e[f]...)
	}
	return out
}
