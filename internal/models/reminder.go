package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/constants"
)

var ErrEmptyTitle = errors.New("reminder title cannot be empty")

type RepeatType string

const (
	RepeatOnce    RepeatType = "once"
	RepeatDaily   RepeatType = "daily"
	RepeatWeekly  RepeatType = "weekly"
	RepeatMonthly RepeatType = "monthly"
	RepeatCustom  RepeatType = "custom"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Category string

const (
	CategoryInventory Category = "inventory"
	CategoryStaff     Category = "staff"
	CategoryPayment   Category = "payment"
	CategoryTax       Category = "tax"
	CategoryTasks     Category = "tasks"
	CategoryPromo     Category = "promo"
	CategoryCustom    Category = "custom"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

type Reminder struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Date        string     `json:"date,omitempty"` // YYYY-MM-DD
	Time        string     `json:"time,omitempty"` // HH:MM
	RepeatType  RepeatType `json:"repeatType"`
	Priority    Priority   `json:"priority"`
	Category    Category   `json:"category"`
	Status      Status     `json:"status"`
	SnoozeUntil *time.Time `json:"snoozeUntil,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	AssignedTo  string     `json:"assignedTo,omitempty"`
	// MonthDay anchors monthly recurrence to the originally chosen day so
	// clamping in a short month does not drift the schedule.
	MonthDay int `json:"monthDay,omitempty"`
}

// ReminderInput is the creation payload. Zero values take the defaults.
type ReminderInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Date        string     `json:"date,omitempty"`
	Time        string     `json:"time,omitempty"`
	RepeatType  RepeatType `json:"repeatType,omitempty"`
	Priority    Priority   `json:"priority,omitempty"`
	Category    Category   `json:"category,omitempty"`
	AssignedTo  string     `json:"assignedTo,omitempty"`
}

// ReminderPatch carries optional edits; nil fields are left unchanged.
type ReminderPatch struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Date        *string   `json:"date,omitempty"`
	Time        *string   `json:"time,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
	Category    *Category `json:"category,omitempty"`
	AssignedTo  *string   `json:"assignedTo,omitempty"`
}

// NewReminder builds an active reminder from input, filling defaults.
// A blank title is rejected before anything is created.
func NewReminder(in ReminderInput, now time.Time) (Reminder, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return Reminder{}, ErrEmptyTitle
	}

	r := Reminder{
		ID:          uuid.New().String(),
		Title:       title,
		Description: in.Description,
		Date:        in.Date,
		Time:        in.Time,
		RepeatType:  in.RepeatType,
		Priority:    in.Priority,
		Category:    in.Category,
		Status:      StatusActive,
		CreatedAt:   now,
		AssignedTo:  in.AssignedTo,
	}
	if r.RepeatType == "" {
		r.RepeatType = RepeatOnce
	}
	if r.Priority == "" {
		r.Priority = PriorityMedium
	}
	if r.Category == "" {
		r.Category = CategoryCustom
	}
	r.AnchorMonthDay()

	if err := r.Validate(); err != nil {
		return Reminder{}, err
	}
	return r, nil
}

// Apply writes the non-nil patch fields onto the reminder.
func (r *Reminder) Apply(p ReminderPatch) error {
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if title == "" {
			return ErrEmptyTitle
		}
		r.Title = title
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Date != nil {
		r.Date = *p.Date
		r.MonthDay = 0
		r.AnchorMonthDay()
	}
	if p.Time != nil {
		r.Time = *p.Time
	}
	if p.Priority != nil {
		r.Priority = *p.Priority
	}
	if p.Category != nil {
		r.Category = *p.Category
	}
	if p.AssignedTo != nil {
		r.AssignedTo = *p.AssignedTo
	}
	return r.Validate()
}

// AnchorMonthDay records the day-of-month of Date for monthly reminders
// that have no anchor yet.
func (r *Reminder) AnchorMonthDay() {
	if r.RepeatType != RepeatMonthly || r.MonthDay != 0 || r.Date == "" {
		return
	}
	if d, err := time.Parse(constants.DateFormat, r.Date); err == nil {
		r.MonthDay = d.Day()
	}
}

func (r *Reminder) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return ErrEmptyTitle
	}

	if r.Date != "" {
		if _, err := time.Parse(constants.DateFormat, r.Date); err != nil {
			return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
		}
	}

	if r.Time != "" {
		if _, err := time.Parse(constants.TimeFormat, r.Time); err != nil {
			return fmt.Errorf("invalid time format (expected HH:MM): %w", err)
		}
	}

	if !r.RepeatType.Valid() {
		return fmt.Errorf("invalid repeat type: %q", r.RepeatType)
	}
	if !r.Priority.Valid() {
		return fmt.Errorf("invalid priority: %q", r.Priority)
	}
	if !r.Category.Valid() {
		return fmt.Errorf("invalid category: %q", r.Category)
	}
	if r.Status != StatusActive && r.Status != StatusCompleted {
		return fmt.Errorf("invalid status: %q", r.Status)
	}

	return nil
}

// IsRecurring reports whether completing the reminder keeps it alive.
func (r *Reminder) IsRecurring() bool {
	return r.RepeatType != RepeatOnce
}

func (r *Reminder) IsCompleted() bool {
	return r.Status == StatusCompleted
}

// IsSnoozed reports whether the snooze is still in effect at now.
func (r *Reminder) IsSnoozed(now time.Time) bool {
	return r.SnoozeUntil != nil && r.SnoozeUntil.After(now)
}

// FormatRepeat returns a human-readable string describing the repeat type.
func (r *Reminder) FormatRepeat() string {
	switch r.RepeatType {
	case RepeatDaily:
		return "Daily"
	case RepeatWeekly:
		return "Weekly"
	case RepeatMonthly:
		if r.MonthDay > 0 {
			return fmt.Sprintf("Monthly on day %d", r.MonthDay)
		}
		return "Monthly"
	case RepeatCustom:
		return "Custom"
	default:
		return "Once"
	}
}

func (t RepeatType) Valid() bool {
	switch t {
	case RepeatOnce, RepeatDaily, RepeatWeekly, RepeatMonthly, RepeatCustom:
		return true
	}
	return false
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func (c Category) Valid() bool {
	switch c {
	case CategoryInventory, CategoryStaff, CategoryPayment, CategoryTax,
		CategoryTasks, CategoryPromo, CategoryCustom:
		return true
	}
	return false
}

// ParseRepeatType parses user input into a RepeatType.
func ParseRepeatType(s string) (RepeatType, error) {
	t := RepeatType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("invalid repeat type %q (expected once, daily, weekly, monthly or custom)", s)
	}
	return t, nil
}

func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("invalid priority %q (expected low, medium or high)", s)
	}
	return p, nil
}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("invalid category %q", s)
	}
	return c, nil
}

// Categories lists the taxonomy in display order.
func Categories() []Category {
	return []Category{
		CategoryInventory, CategoryStaff, CategoryPayment, CategoryTax,
		CategoryTasks, CategoryPromo, CategoryCustom,
	}
}

// NotificationRecord is one delivered notification, kept for history only.
type NotificationRecord struct {
	ReminderID string    `json:"reminderId" bson:"reminder_id"`
	Occurrence string    `json:"occurrence" bson:"occurrence"`
	SentAt     time.Time `json:"sentAt" bson:"sent_at"`
}
