// Package seed reads the JSON dataset the dashboard starts from. A bundled
// default is embedded; callers may point at their own file instead.
package seed

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed default.json
var defaultData []byte

// Schema is the top-level JSON structure of a seed file.
type Schema struct {
	User         UserSeed          `json:"user"`
	Projects     []ProjectSeed     `json:"projects"`
	Milestones   []MilestoneSeed   `json:"milestones"`
	Issues       []IssueSeed       `json:"issues"`
	TimeEntries  []TimeEntrySeed   `json:"time_entries"`
	Accounts     []AccountSeed     `json:"accounts"`
	Transactions []TransactionSeed `json:"transactions"`
	Settings     SettingsSeed      `json:"settings"`
}

type UserSeed struct {
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
}

type LinkSeed struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

type ProjectSeed struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Status         string     `json:"status"`
	Tags           []string   `json:"tags,omitempty"`
	Budget         int64      `json:"budget"`
	CurrentVersion string     `json:"current_version,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	Links          []LinkSeed `json:"links,omitempty"`
	CreatedAt      string     `json:"created_at"`
	UpdatedAt      string     `json:"updated_at,omitempty"`
}

type MilestoneSeed struct {
	ID          string  `json:"id"`
	ProjectID   string  `json:"project_id"`
	Title       string  `json:"title"`
	Version     string  `json:"version,omitempty"`
	Budget      int64   `json:"budget"`
	Stage       string  `json:"stage"`
	Description string  `json:"description,omitempty"`
	CreatedAt   string  `json:"created_at"`
	DueDate     *string `json:"due_date,omitempty"`
}

// CommentSeed is nested under its issue; IssueID may be omitted.
type CommentSeed struct {
	ID        string `json:"id"`
	IssueID   string `json:"issue_id,omitempty"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type IssueSeed struct {
	ID          string        `json:"id"`
	ProjectID   string        `json:"project_id"`
	MilestoneID *string       `json:"milestone_id,omitempty"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Tags        []string      `json:"tags,omitempty"`
	Priority    string        `json:"priority"`
	Status      string        `json:"status"`
	DueDate     *string       `json:"due_date,omitempty"`
	CreatedAt   string        `json:"created_at"`
	UpdatedAt   string        `json:"updated_at,omitempty"`
	Comments    []CommentSeed `json:"comments,omitempty"`
}

type TimeEntrySeed struct {
	ID          string  `json:"id"`
	ProjectID   string  `json:"project_id"`
	IssueID     *string `json:"issue_id,omitempty"`
	Description string  `json:"description,omitempty"`
	Duration    int     `json:"duration"`
	Date        string  `json:"date"`
	CreatedAt   string  `json:"created_at,omitempty"`
}

type AccountSeed struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Balance   int64  `json:"balance"`
	IsDefault bool   `json:"is_default,omitempty"`
}

type CategorySeed struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color,omitempty"`
}

type TransactionSeed struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Amount      int64   `json:"amount"`
	CategoryID  string  `json:"category_id"`
	AccountID   string  `json:"account_id"`
	Description string  `json:"description,omitempty"`
	Notes       string  `json:"notes,omitempty"`
	Date        string  `json:"date"`
	ProjectID   *string `json:"project_id,omitempty"`
	MilestoneID *string `json:"milestone_id,omitempty"`
	CreatedAt   string  `json:"created_at,omitempty"`
}

type NotificationsSeed struct {
	ProjectCreated     bool `json:"project_created"`
	MilestoneCompleted bool `json:"milestone_completed"`
	PaymentReceived    bool `json:"payment_received"`
	DailySummary       bool `json:"daily_summary"`
}

type DiscordSeed struct {
	Enabled       bool              `json:"enabled"`
	WebhookURL    string            `json:"webhook_url,omitempty"`
	Notifications NotificationsSeed `json:"notifications"`
}

type SettingsSeed struct {
	Theme                 string         `json:"theme"`
	DefaultPaymentAccount string         `json:"default_payment_account,omitempty"`
	IncomeCategories      []CategorySeed `json:"income_categories"`
	ExpenseCategories     []CategorySeed `json:"expense_categories"`
	Discord               DiscordSeed    `json:"discord"`
}

// Parse decodes a seed document. Unknown fields are rejected so typos in a
// hand-written file surface instead of silently dropping data.
func Parse(data []byte) (*Schema, error) {
	var schema Schema
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&schema); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}
	return &schema, nil
}

// LoadFile reads and parses a seed file from disk.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Default returns the bundled demo dataset.
func Default() (*Schema, error) {
	return Parse(defaultData)
}

// Load returns the seed at path, or the bundled default when path is empty.
func Load(path string) (*Schema, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}
