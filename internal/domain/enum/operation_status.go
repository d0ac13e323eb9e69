package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// OperationStatus represents the review state of a saved quotation
type OperationStatus int

const (
	OperationStatusInReview OperationStatus = 0
	OperationStatusApproved OperationStatus = 1
	OperationStatusRejected OperationStatus = 2
)

func (s OperationStatus) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return [...]string{"in_review", "approved", "rejected"}[s]
}

// Valid reports whether the value is one of the known statuses.
func (s OperationStatus) Valid() bool {
	return s >= OperationStatusInReview && s <= OperationStatusRejected
}

// ParseOperationStatus maps a status name to its enum value.
func ParseOperationStatus(s string) (OperationStatus, bool) {
	switch s {
	case "in_review":
		return OperationStatusInReview, true
	case "approved":
		return OperationStatusApproved, true
	case "rejected":
		return OperationStatusRejected, true
	}
	return OperationStatusInReview, false
}

func (s OperationStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *OperationStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		v := OperationStatus(i)
		if !v.Valid() {
			return fmt.Errorf("unknown operation status %d", i)
		}
		*s = v
		return nil
	}
	parsed, ok := ParseOperationStatus(str)
	if !ok {
		return fmt.Errorf("unknown operation status %q", str)
	}
	*s = parsed
	return nil
}

func (s OperationStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *OperationStatus) Scan(value interface{}) error {
	if value == nil {
		*s = OperationStatusInReview
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = OperationStatus(v)
	case int:
		*s = OperationStatus(v)
	}
	return nil
}
