package phyloxml

import (
	"fmt"
	"iter"
	"strings"
)

// EventKey names one of the fields of Events when it is used as a mapping.
type EventKey string

const (
	EventType         EventKey = "type"
	EventDuplications EventKey = "duplications"
	EventSpeciations  EventKey = "speciations"
	EventLosses       EventKey = "losses"
	EventConfidence   EventKey = "confidence"
)

// eventKeys is also the iteration order.
var eventKeys = []EventKey{
	EventType, EventDuplications, EventSpeciations, EventLosses,
	EventConfidence,
}

// Events describes events at the root node of a clade, e.g., one gene
// duplication.
//
// Besides its fields, Events can be used as a sparse mapping from EventKey
// to value. An unset field (empty Type or nil pointer) is a missing key,
// and deleting a key unsets its field. Values are a string for EventType,
// an int for the counts and a *Confidence for EventConfidence.
type Events struct {
	Type         string // restricted: transfer, fusion, ...
	Duplications *int
	Speciations  *int
	Losses       *int
	Confidence   *Confidence
}

// NewEvents checks the restricted fields of e with the default checker and
// returns a pointer to a copy of it.
func NewEvents(e Events) (*Events, error) {
	if err := e.Check(nil); err != nil {
		return nil, err
	}
	return &e, nil
}

// Check checks the restricted fields of e. A nil checker means the default.
func (e *Events) Check(c *Checker) error {
	return checker(c).Check("Events", "type", e.Type, eventTypeRule)
}

// Get returns the value stored under key. The boolean is false when the key
// is unknown or unset.
func (e *Events) Get(key EventKey) (interface{}, bool) {
	switch key {
	case EventType:
		return e.Type, len(e.Type) > 0
	case EventDuplications:
		return derefCount(e.Duplications)
	case EventSpeciations:
		return derefCount(e.Speciations)
	case EventLosses:
		return derefCount(e.Losses)
	case EventConfidence:
		return e.Confidence, e.Confidence != nil
	}
	return nil, false
}

// Has returns true if key is set.
func (e *Events) Has(key EventKey) bool {
	_, ok := e.Get(key)
	return ok
}

// Set stores v under key. Setting nil is the same as deleting the key. A new
// type is checked with the default checker.
func (e *Events) Set(key EventKey, v interface{}) error {
	if v == nil {
		return e.Delete(key)
	}
	switch key {
	case EventType:
		s, ok := v.(string)
		if !ok {
			return setTypeErr(key, v, "a string")
		}
		if err := checker(nil).Check("Events", "type", s,
			eventTypeRule); err != nil {
			return err
		}
		e.Type = s
		return nil
	case EventDuplications:
		return setCount(&e.Duplications, key, v)
	case EventSpeciations:
		return setCount(&e.Speciations, key, v)
	case EventLosses:
		return setCount(&e.Losses, key, v)
	case EventConfidence:
		switch c := v.(type) {
		case *Confidence:
			e.Confidence = c
		case Confidence:
			e.Confidence = &c
		default:
			return setTypeErr(key, v, "a confidence")
		}
		return nil
	}
	return fmt.Errorf("%w: '%s'", ErrUnknownEventKey, key)
}

// Delete unsets key. Deleting an unset key is not an error.
func (e *Events) Delete(key EventKey) error {
	switch key {
	case EventType:
		e.Type = ""
	case EventDuplications:
		e.Duplications = nil
	case EventSpeciations:
		e.Speciations = nil
	case EventLosses:
		e.Losses = nil
	case EventConfidence:
		e.Confidence = nil
	default:
		return fmt.Errorf("%w: '%s'", ErrUnknownEventKey, key)
	}
	return nil
}

// Keys returns the keys that are set, in declaration order.
func (e *Events) Keys() []EventKey {
	keys := make([]EventKey, 0, len(eventKeys))
	for k := range e.All() {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of keys that are set.
func (e *Events) Len() int {
	return len(e.Keys())
}

// All iterates over the keys that are set and their values, in declaration
// order.
func (e *Events) All() iter.Seq2[EventKey, interface{}] {
	return func(yield func(EventKey, interface{}) bool) {
		for _, k := range eventKeys {
			v, ok := e.Get(k)
			if !ok {
				continue
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

func (e *Events) String() string {
	parts := make([]string, 0, len(eventKeys))
	for k, v := range e.All() {
		parts = append(parts, fmt.Sprintf("%s=%v", k, v))
	}
	return "Events(" + strings.Join(parts, ", ") + ")"
}

func derefCount(n *int) (interface{}, bool) {
	if n == nil {
		return nil, false
	}
	return *n, true
}

func setCount(field **int, key EventKey, v interface{}) error {
	switch n := v.(type) {
	case int:
		*field = &n
	case *int:
		*field = n
	default:
		return setTypeErr(key, v, "an int")
	}
	return nil
}

func setTypeErr(key EventKey, v interface{}, want string) error {
	return fmt.Errorf("phyloxml: events key '%s' requires %s, got %T",
		key, want, v)
}
