package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// --- Application Status Enum ---
type Status string

const (
	StatusApplied      Status = "Applied"
	StatusTest         Status = "Test"
	StatusInterview    Status = "Interview"
	StatusOfferAwarded Status = "OfferAwarded"
	StatusRejected     Status = "Rejected"
	StatusWithdrawn    Status = "Withdrawn"
)

// AllStatuses lists every status value. Trend responses must report all of
// them, including empty buckets.
var AllStatuses = []Status{
	StatusApplied,
	StatusTest,
	StatusInterview,
	StatusOfferAwarded,
	StatusRejected,
	StatusWithdrawn,
}

// Scan implements the sql.Scanner interface for Status
func (s *Status) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan Status: value is not string or []byte")
		}
	}
	v := Status(strVal)
	switch v {
	case StatusApplied, StatusTest, StatusInterview, StatusOfferAwarded, StatusRejected, StatusWithdrawn:
		*s = v
		return nil
	default:
		return fmt.Errorf("invalid Status value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for Status
func (s Status) Value() (driver.Value, error) {
	return string(s), nil
}

// --- Test Type Enum ---
type TestType string

const (
	TestTypeTechnical TestType = "Technical"
	TestTypeEnglish   TestType = "English"
	TestTypeAptitude  TestType = "Aptitude"
	TestTypeOther     TestType = "Other"
)

// Scan implements the sql.Scanner interface for TestType
func (tt *TestType) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan TestType: value is not string or []byte")
		}
	}
	v := TestType(strVal)
	switch v {
	case TestTypeTechnical, TestTypeEnglish, TestTypeAptitude, TestTypeOther:
		*tt = v
		return nil
	default:
		return fmt.Errorf("invalid TestType value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for TestType
func (tt TestType) Value() (driver.Value, error) {
	return string(tt), nil
}

// --- Interview Type Enum ---
type InterviewType string

const (
	InterviewTypeHr          InterviewType = "Hr"
	InterviewTypeBehavioural InterviewType = "Behavioural"
	InterviewTypeTechnical   InterviewType = "Technical"
	InterviewTypeOther       InterviewType = "Other"
)

// Scan implements the sql.Scanner interface for InterviewType
func (it *InterviewType) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan InterviewType: value is not string or []byte")
		}
	}
	v := InterviewType(strVal)
	switch v {
	case InterviewTypeHr, InterviewTypeBehavioural, InterviewTypeTechnical, InterviewTypeOther:
		*it = v
		return nil
	default:
		return fmt.Errorf("invalid InterviewType value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for InterviewType
func (it InterviewType) Value() (driver.Value, error) {
	return string(it), nil
}

// --- Application Channel Enum ---
type Channel string

const (
	ChannelEmail   Channel = "Email"
	ChannelWebsite Channel = "Website"
)

// Scan implements the sql.Scanner interface for Channel
func (ch *Channel) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan Channel: value is not string or []byte")
		}
	}
	v := Channel(strVal)
	switch v {
	case ChannelEmail, ChannelWebsite:
		*ch = v
		return nil
	default:
		return fmt.Errorf("invalid Channel value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for Channel
func (ch Channel) Value() (driver.Value, error) {
	return string(ch), nil
}

// User represents a registered account.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Application represents a tracked job application owned by one user.
// The row is immutable after creation apart from updated_at and the
// soft-delete flags; its lifecycle lives in the application_statuses log.
type Application struct {
	ID        int64      `json:"id" db:"id"`
	Company   string     `json:"company" db:"company"`
	Position  string     `json:"position" db:"position"`
	Website   *string    `json:"website,omitempty" db:"website"`
	Channel   Channel    `json:"channel" db:"channel"`
	CreatedBy int64      `json:"created_by" db:"created_by"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time `json:"-" db:"deleted_at"`
	Deleted   bool       `json:"-" db:"deleted"`
}

// ApplicationStatus is one immutable entry in an application's lifecycle log.
// Rows are append-only: never updated, never removed.
type ApplicationStatus struct {
	ID            int64          `json:"id" db:"id"`
	ApplicationID int64          `json:"application_id" db:"application_id"`
	StatusType    Status         `json:"status_type" db:"status_type"`
	TestType      *TestType      `json:"test_type,omitempty" db:"test_type"`
	InterviewType *InterviewType `json:"interview_type,omitempty" db:"interview_type"`
	Notes         *string        `json:"notes,omitempty" db:"notes"`
	CreatedBy     int64          `json:"created_by" db:"created_by"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
}

// ErrNoStatusEvents reports an application with an empty status log, which
// violates the at-least-one-event invariant established at creation time.
var ErrNoStatusEvents = errors.New("application has no status events")

// LatestStatus derives the current status of an application from its event
// log: the event with the greatest created_at wins, ties broken by the
// greater event id. Every surface that needs "current status" in memory goes
// through this function; the SQL side pins the same ordering
// (created_at DESC, id DESC).
func LatestStatus(events []ApplicationStatus) (Status, error) {
	if len(events) == 0 {
		return "", ErrNoStatusEvents
	}
	latest := events[0]
	for _, ev := range events[1:] {
		if ev.CreatedAt.After(latest.CreatedAt) ||
			(ev.CreatedAt.Equal(latest.CreatedAt) && ev.ID > latest.ID) {
			latest = ev
		}
	}
	return latest.StatusType, nil
}
