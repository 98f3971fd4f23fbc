// Package contract holds the request and response shapes exchanged between
// services and the command line.
package contract

import (
	"time"

	"github.com/alexanderramin/bittrack/internal/domain"
)

// UnknownLabel stands in for a referenced record that no longer exists.
const UnknownLabel = "Unknown"

// RecentLimit caps the "recent" lists on summary screens.
const RecentLimit = 5

type IssueView struct {
	Issue          *domain.Issue
	ProjectTitle   string
	MilestoneTitle string
}

type TimeEntryView struct {
	Entry        *domain.TimeEntry
	ProjectTitle string
	IssueTitle   string
}

type TransactionView struct {
	Transaction   *domain.Transaction
	CategoryName  string
	CategoryColor string
	AccountName   string
	ProjectTitle  string
}

// EntityCounts is the size of each record list in the store.
type EntityCounts struct {
	Projects     int
	Milestones   int
	Issues       int
	Comments     int
	TimeEntries  int
	Accounts     int
	Transactions int
	Categories   int
}

type RequestErrorCode string

const (
	ErrInvalidInput RequestErrorCode = "INVALID_INPUT"
	ErrUnknownRef   RequestErrorCode = "UNKNOWN_REFERENCE"
)

// RequestError is returned when a request is rejected before touching the store.
type RequestError struct {
	Code    RequestErrorCode
	Message string
}

func (e *RequestError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func invalid(format string) *RequestError {
	return &RequestError{Code: ErrInvalidInput, Message: format}
}

// refTime returns *now, or the wall clock when now is nil.
func refTime(now *time.Time) time.Time {
	if now != nil {
		return *now
	}
	return time.Now()
}
