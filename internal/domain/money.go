package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// PricingType determines how an amount combines with guest count
// or elapsed time to produce a line-item cost.
type PricingType string

const (
	PricingFixed     PricingType = "fixed"
	PricingPerPerson PricingType = "perPerson"
	PricingHourly    PricingType = "hourly"
)

// Price is a money snapshot carried by venues and service options.
// Stored as a JSON column.
type Price struct {
	Amount   float64     `json:"amount"`
	Currency string      `json:"currency"`
	Type     PricingType `json:"type,omitempty"`
}

func (p Price) Value() (driver.Value, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (p *Price) Scan(value interface{}) error {
	if value == nil {
		*p = Price{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return errors.New("unsupported type for Price")
	}
}

func (Price) GormDataType() string { return "json" }
