package contract

import (
	"time"

	"github.com/alexanderramin/bittrack/internal/domain"
)

type ProfileResponse struct {
	User           domain.User
	Age            domain.Age
	AsOf           time.Time
	Projects       int
	ActiveProjects int
	OpenIssues     int
	LoggedMin      int
	NetWorth       int64
}

type CheckResponse struct {
	Counts     EntityCounts
	Violations []string
}
