package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending       PaymentStatus = "pending"
	PaymentPartiallyPaid PaymentStatus = "partially_paid"
	PaymentPaid          PaymentStatus = "paid"
	PaymentRefunded      PaymentStatus = "refunded"
	PaymentFailed        PaymentStatus = "failed"
)

// OptionStatus is the per-service-option approval state kept in the
// booking's option ledger, separate from the option's price snapshot.
type OptionStatus string

const (
	OptionPending   OptionStatus = "pending"
	OptionAccepted  OptionStatus = "accepted"
	OptionConfirmed OptionStatus = "confirmed"
	OptionRejected  OptionStatus = "rejected"
	OptionCancelled OptionStatus = "cancelled"
)

// BookingOption is a selected add-on with its price and name frozen
// at booking time.
type BookingOption struct {
	OptionID  int64         `json:"option_id"`
	ServiceID int64         `json:"service_id"`
	Name      LocalizedText `json:"name"`
	Price     Price         `json:"price"`
}

// BookingOptions is the JSON column holding the selected add-ons.
type BookingOptions []BookingOption

func (o BookingOptions) Value() (driver.Value, error) {
	if o == nil {
		return "[]", nil
	}
	b, err := json.Marshal(o)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (o *BookingOptions) Scan(value interface{}) error {
	return scanJSON(value, o)
}

func (BookingOptions) GormDataType() string { return "json" }

// LedgerEntry records the approval/cancellation state of one selected
// option. The ledger is the authoritative cancellation source: the
// option row itself carries no cancellation flag.
type LedgerEntry struct {
	OptionID        int64        `json:"id"`
	ServiceID       int64        `json:"serviceId"`
	Status          OptionStatus `json:"status"`
	RejectionReason string       `json:"rejectionReason,omitempty"`
}

// OptionLedger is the booking's option status ledger, stored as a JSON
// column. Upstream records are tolerant in shape: the field may arrive
// as a single object or an array, so decoding normalizes to an array
// here and nowhere else.
type OptionLedger []LedgerEntry

func (l *OptionLedger) UnmarshalJSON(data []byte) error {
	trimmed := trimSpaceJSON(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*l = nil
		return nil
	}
	if trimmed[0] == '[' {
		var entries []LedgerEntry
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return err
		}
		*l = entries
		return nil
	}
	var single LedgerEntry
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return err
	}
	*l = OptionLedger{single}
	return nil
}

// Find returns the entry matching the option id, or nil.
func (l OptionLedger) Find(optionID int64) *LedgerEntry {
	for i := range l {
		if l[i].OptionID == optionID {
			return &l[i]
		}
	}
	return nil
}

// FindByService returns the first entry for the given service, or nil.
func (l OptionLedger) FindByService(serviceID int64) *LedgerEntry {
	for i := range l {
		if l[i].ServiceID == serviceID {
			return &l[i]
		}
	}
	return nil
}

// IsCancelled reports whether the option has a cancelled ledger entry.
func (l OptionLedger) IsCancelled(optionID int64) bool {
	e := l.Find(optionID)
	return e != nil && e.Status == OptionCancelled
}

func (l OptionLedger) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]LedgerEntry(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *OptionLedger) Scan(value interface{}) error {
	return scanJSON(value, l)
}

func (OptionLedger) GormDataType() string { return "json" }

type Booking struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference" gorm:"uniqueIndex"`
	UserID    int64  `json:"user_id"`
	VenueID   int64  `json:"venue_id"`

	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`
	StartTime string `json:"start_time"` // HH:MM or HH:MM:SS
	EndTime   string `json:"end_time"`

	NumberOfGuests int `json:"number_of_guests"`

	SelectedOptions BookingOptions `json:"service_options"`
	OptionStatuses  OptionLedger   `json:"option_statuses"`

	ServiceFee FlexNumber `json:"service_fee,omitempty"`
	Discount   FlexNumber `json:"discount,omitempty"`
	TotalPrice float64    `json:"total_price"`

	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`

	Notes              string     `json:"notes,omitempty" gorm:"type:text"`
	CancellationReason string     `json:"cancellation_reason,omitempty" gorm:"type:text"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User  *User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Venue *Venue `json:"venue,omitempty" gorm:"foreignKey:VenueID"`
}

// Guests returns the guest count, defaulting to one.
func (b *Booking) Guests() int {
	if b.NumberOfGuests < 1 {
		return 1
	}
	return b.NumberOfGuests
}

// CanBeCancelled reports whether the booking is still cancellable.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}

func scanJSON(value interface{}, dst interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return errors.New("unsupported JSON column type")
	}
}

func trimSpaceJSON(data []byte) []byte {
	start, end := 0, len(data)
	for start < end && isJSONSpace(data[start]) {
		start++
	}
	for end > start && isJSONSpace(data[end-1]) {
		end--
	}
	return data[start:end]
}

func isJSONSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
