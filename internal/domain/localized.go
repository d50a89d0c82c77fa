package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// DefaultLanguage is the fallback language for localized fields.
const DefaultLanguage = "en"

// LocalizedText maps a language code to a display string.
// Stored as a JSON column.
type LocalizedText map[string]string

// Resolve returns the value for lang, falling back to English,
// then to any available translation, then to placeholder.
func (t LocalizedText) Resolve(lang, placeholder string) string {
	if v, ok := t[lang]; ok && v != "" {
		return v
	}
	if v, ok := t[DefaultLanguage]; ok && v != "" {
		return v
	}
	for _, v := range t {
		if v != "" {
			return v
		}
	}
	return placeholder
}

func (t LocalizedText) Value() (driver.Value, error) {
	if t == nil {
		return nil, nil
	}
	b, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (t *LocalizedText) Scan(value interface{}) error {
	if value == nil {
		*t = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	default:
		return errors.New("unsupported type for LocalizedText")
	}
}

func (LocalizedText) GormDataType() string { return "json" }

// FlexNumber accepts either a JSON number or a numeric string.
// Unparsable input degrades to zero rather than failing the decode.
type FlexNumber float64

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*n = FlexNumber(num)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*n = 0
		return nil
	}
	if _, err := fmt.Sscanf(s, "%g", &num); err != nil {
		*n = 0
		return nil
	}
	*n = FlexNumber(num)
	return nil
}

func (n FlexNumber) Float64() float64 { return float64(n) }
