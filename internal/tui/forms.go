package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/models"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/utils"
)

// NewReminderForm creates the add-reminder form
func NewReminderForm(fm *ReminderFormModel) *huh.Form {
	categories := make([]huh.Option[models.Category], 0, len(models.Categories()))
	for _, c := range models.Categories() {
		categories = append(categories, huh.NewOption(label(string(c)), c))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fm.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title cannot be empty")
					}
					return nil
				}),
			huh.NewText().
				Title("Description (optional)").
				Value(&fm.Description),
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Description("Leave empty for no date").
				Value(&fm.Date).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" || utils.ValidateDateFormat(s) {
						return nil
					}
					return fmt.Errorf("invalid date format, use YYYY-MM-DD")
				}),
			huh.NewInput().
				Title("Time (HH:MM)").
				Description("Leave empty for an all-day reminder").
				Value(&fm.Time).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" || utils.ValidateTimeFormat(s) {
						return nil
					}
					return fmt.Errorf("invalid time format, use HH:MM")
				}),
		),
		huh.NewGroup(
			huh.NewSelect[models.RepeatType]().
				Title("Repeat").
				Options(
					huh.NewOption("Once", models.RepeatOnce),
					huh.NewOption("Daily", models.RepeatDaily),
					huh.NewOption("Weekly", models.RepeatWeekly),
					huh.NewOption("Monthly", models.RepeatMonthly),
					huh.NewOption("Custom", models.RepeatCustom),
				).
				Value(&fm.Repeat),
			huh.NewSelect[models.Priority]().
				Title("Priority").
				Options(
					huh.NewOption("Low", models.PriorityLow),
					huh.NewOption("Medium", models.PriorityMedium),
					huh.NewOption("High", models.PriorityHigh),
				).
				Value(&fm.Priority),
			huh.NewSelect[models.Category]().
				Title("Category").
				Options(categories...).
				Value(&fm.Category),
			huh.NewInput().
				Title("Assigned to (optional)").
				Value(&fm.AssignedTo),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewRecurForm asks which schedule to convert a reminder to.
func NewRecurForm(fm *RecurFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.RepeatType]().
				Title("Repeat").
				Options(
					huh.NewOption("Daily", models.RepeatDaily),
					huh.NewOption("Weekly", models.RepeatWeekly),
					huh.NewOption("Monthly", models.RepeatMonthly),
				).
				Value(&fm.Repeat),
		),
	).WithTheme(huh.ThemeDracula())
}

func (fm *ReminderFormModel) Input() models.ReminderInput {
	return models.ReminderInput{
		Title:       strings.TrimSpace(fm.Title),
		Description: strings.TrimSpace(fm.Description),
		Date:        strings.TrimSpace(fm.Date),
		Time:        strings.TrimSpace(fm.Time),
		RepeatType:  fm.Repeat,
		Priority:    fm.Priority,
		Category:    fm.Category,
		AssignedTo:  strings.TrimSpace(fm.AssignedTo),
	}
}

func label(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
