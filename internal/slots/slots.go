package slots

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Slot is a bookable time of day, stored as minutes since midnight. The
// display label ("2:00 PM") exists only at the API boundary: JSON and BSON
// both carry the label so documents stay readable, but all comparisons
// happen on the canonical value.
type Slot int

// The nine bookable slots of a day.
const (
	Slot9AM  Slot = 9 * 60
	Slot10AM Slot = 10 * 60
	Slot11AM Slot = 11 * 60
	Slot12PM Slot = 12 * 60
	Slot2PM  Slot = 14 * 60
	Slot3PM  Slot = 15 * 60
	Slot4PM  Slot = 16 * 60
	Slot5PM  Slot = 17 * 60
	Slot6PM  Slot = 18 * 60
)

// All returns the day's slots in booking order.
func All() []Slot {
	return []Slot{Slot9AM, Slot10AM, Slot11AM, Slot12PM, Slot2PM, Slot3PM, Slot4PM, Slot5PM, Slot6PM}
}

// Label formats the slot for display, e.g. "2:00 PM".
func (s Slot) Label() string {
	t := time.Date(0, 1, 1, int(s)/60, int(s)%60, 0, 0, time.UTC)
	return t.Format("3:04 PM")
}

// Valid reports whether s is one of the nine bookable slots.
func (s Slot) Valid() bool {
	for _, v := range All() {
		if s == v {
			return true
		}
	}
	return false
}

// Parse maps a display label back to its slot. Only the nine known labels
// are accepted.
func Parse(label string) (Slot, error) {
	for _, s := range All() {
		if s.Label() == label {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown time slot %q", label)
}

func (s Slot) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.Label() + `"`), nil
}

func (s *Slot) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("time slot must be a string")
	}
	parsed, err := Parse(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s Slot) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(s.Label())
}

func (s *Slot) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	var label string
	raw := bson.RawValue{Type: t, Value: data}
	if err := raw.Unmarshal(&label); err != nil {
		return err
	}
	parsed, err := Parse(label)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
