package domain

import (
	"encoding/json"
	"strconv"
)

// Scalar is a placeholder value decoded from JSON without forcing a type:
// strings keep their content, numbers and booleans keep their literal text,
// and null becomes the empty string. Substitution always renders strings,
// so callers may send {"DATE": "01-04-2025"} and {"CAPITAL": 100000} alike.
type Scalar string

func (s *Scalar) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = Scalar(str)
		return nil
	}
	// Numbers and booleans pass through as their JSON literal text.
	*s = Scalar(data)
	return nil
}

func (s Scalar) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s Scalar) String() string { return string(s) }

// Fee is a monetary value decoded tolerantly: JSON numbers and numeric
// strings are accepted; null, missing, or non-numeric values are unset and
// contribute zero to totals.
type Fee struct {
	Value float64
	Valid bool
}

func (f *Fee) UnmarshalJSON(data []byte) error {
	f.Value, f.Valid = 0, false
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return nil
		}
		if v, err := strconv.ParseFloat(str, 64); err == nil {
			f.Value, f.Valid = v, true
		}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	f.Value, f.Valid = v, true
	return nil
}

func (f Fee) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// Amount returns the fee value, zero when unset.
func (f Fee) Amount() float64 {
	if !f.Valid {
		return 0
	}
	return f.Value
}

// Format renders the fee with two decimal places, or empty when unset.
func (f Fee) Format() string {
	if !f.Valid {
		return ""
	}
	return strconv.FormatFloat(f.Value, 'f', 2, 64)
}
