package model

import "encoding/json"

// Optional is a patch field that distinguishes an absent JSON key from an
// explicit null. Set reports that the key was present at all; Valid reports
// that it carried a non-null value. An absent key preserves the stored
// value, a null clears it, a value overwrites it.
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
