// Package selection holds the configurator's mutable facet state and the
// pure transitions that mutate it. No operation returns an error: unknown
// ids are accepted as-is (the UI only ever offers known ids), and every
// transition works on plain in-memory state.
package selection

// EventScale is the fixed discrete event-count scale the slider snaps to.
var EventScale = []int{100, 500, 1000, 2000, 5000, 10000, 20000, 50000, 100000}

// Selections is the current facet state. Pileup and Channels are
// exclusive-choice facets (Channels holds at most one entry; it is a slice
// so an empty selection is representable and the estimator can scale by
// channel count). Objects is an ordered set.
type Selections struct {
	Pileup   string
	Channels []string
	Objects  []string
	Events   int
}

// Default returns the documented initial selections.
func Default() Selections {
	return Selections{
		Pileup:   "pu0",
		Channels: []string{"ttbar"},
		Objects:  []string{"particles"},
		Events:   1000,
	}
}

// SelectPileup replaces the pileup selection.
func (s *Selections) SelectPileup(id string) {
	s.Pileup = id
}

// SelectChannel replaces the channel selection with the single given id.
func (s *Selections) SelectChannel(id string) {
	s.Channels = []string{id}
}

// ClearChannels empties the channel selection.
func (s *Selections) ClearChannels() {
	s.Channels = nil
}

// ToggleObject adds id to the object set if absent, removes it if present.
// Membership order is selection order.
func (s *Selections) ToggleObject(id string) {
	for i, existing := range s.Objects {
		if existing == id {
			s.Objects = append(s.Objects[:i:i], s.Objects[i+1:]...)
			return
		}
	}
	s.Objects = append(s.Objects, id)
}

// HasObject reports whether id is in the object set.
func (s *Selections) HasObject(id string) bool {
	for _, existing := range s.Objects {
		if existing == id {
			return true
		}
	}
	return false
}

// SelectAllObjects sets the object set to the given known option ids.
func (s *Selections) SelectAllObjects(ids []string) {
	s.Objects = append([]string(nil), ids...)
}

// DeselectAllObjects empties the object set.
func (s *Selections) DeselectAllObjects() {
	s.Objects = nil
}

// SetEventIndex snaps the event count to the scale entry at the given
// slider index. Out-of-range indices clamp to the ends of the scale.
func (s *Selections) SetEventIndex(index int) {
	if index < 0 {
		index = 0
	}
	if index >= len(EventScale) {
		index = len(EventScale) - 1
	}
	s.Events = EventScale[index]
}

// EventIndex returns the slider index of the current event count. Counts
// between tiers report the highest tier not exceeding them; counts below
// the scale report index 0.
func (s *Selections) EventIndex() int {
	idx := 0
	for i, v := range EventScale {
		if s.Events >= v {
			idx = i
		}
	}
	return idx
}
