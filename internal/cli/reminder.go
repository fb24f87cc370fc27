package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/models"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/utils"
)

type ReminderAddCmd struct {
	Title       string `arg:"" help:"Reminder title."`
	Description string `short:"D" help:"Longer description."`
	Date        string `short:"d" help:"Date (YYYY-MM-DD or 'today'/'tomorrow')."`
	Time        string `short:"t" help:"Time of day (HH:MM)."`
	Repeat      string `short:"r" help:"Repeat type (once|daily|weekly|monthly|custom)." default:"once"`
	Priority    string `short:"p" help:"Priority (low|medium|high)." default:"medium"`
	Category    string `short:"c" help:"Category (inventory|staff|payment|tax|tasks|promo|custom)." default:"custom"`
	Assign      string `short:"a" help:"Staff member responsible."`
}

func (c *ReminderAddCmd) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return models.ErrEmptyTitle
	}
	if c.Time != "" && !utils.ValidateTimeFormat(c.Time) {
		return fmt.Errorf("invalid time format: %s (expected HH:MM)", c.Time)
	}
	return nil
}

func (c *ReminderAddCmd) Run(ctx *Context) error {
	repeat, err := models.ParseRepeatType(c.Repeat)
	if err != nil {
		return err
	}
	priority, err := models.ParsePriority(c.Priority)
	if err != nil {
		return err
	}
	category, err := models.ParseCategory(c.Category)
	if err != nil {
		return err
	}
	date, err := resolveDate(c.Date, ctx.Clock.Now())
	if err != nil {
		return err
	}

	r, err := ctx.Manager().Create(models.ReminderInput{
		Title:       c.Title,
		Description: c.Description,
		Date:        date,
		Time:        c.Time,
		RepeatType:  repeat,
		Priority:    priority,
		Category:    category,
		AssignedTo:  c.Assign,
	})
	if err != nil {
		return err
	}

	ctx.printf("Added reminder: %s (ID: %s)\n", r.Title, r.ID)
	return nil
}

// resolveDate accepts the relative words used at the counter as well as
// YYYY-MM-DD.
func resolveDate(s string, now time.Time) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "today":
		return utils.LocalDate(now), nil
	case "tomorrow":
		return utils.LocalDate(now.AddDate(0, 0, 1)), nil
	}
	if !utils.ValidateDateFormat(s) {
		return "", fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", s)
	}
	return s, nil
}

type ReminderListCmd struct {
	Bucket string `short:"b" help:"Bucket to show (today|upcoming|recurring|completed|all)." default:"all" enum:"today,upcoming,recurring,completed,all"`
	JSON   bool   `help:"Print reminders as JSON."`
}

func (c *ReminderListCmd) Run(ctx *Context) error {
	mgr := ctx.Manager()
	b := mgr.Categorize()
	now := mgr.Now()

	sections := []struct {
		name  string
		items []models.Reminder
	}{
		{"today", b.Today},
		{"upcoming", b.Upcoming},
		{"recurring", b.Recurring},
		{"completed", b.Completed},
	}

	if c.JSON {
		out := map[string][]models.Reminder{}
		for _, s := range sections {
			if c.Bucket == "all" || c.Bucket == s.name {
				out[s.name] = s.items
			}
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal reminders: %w", err)
		}
		ctx.println(string(data))
		return nil
	}

	total := 0
	for _, s := range sections {
		if c.Bucket != "all" && c.Bucket != s.name {
			continue
		}
		ctx.printf("%s (%d)\n", strings.ToUpper(s.name[:1])+s.name[1:], len(s.items))
		for _, r := range s.items {
			ctx.printf("  %s\n", formatReminderLine(r, now))
		}
		ctx.println()
		total += len(s.items)
	}

	if total == 0 {
		ctx.println("No reminders found. Add one with 'rebill reminder add'.")
	}
	return nil
}

type ReminderShowCmd struct {
	ID string `arg:"" help:"Reminder ID or unique prefix."`
}

func (c *ReminderShowCmd) Run(ctx *Context) error {
	mgr := ctx.Manager()
	id, err := resolveID(mgr, c.ID)
	if err != nil {
		return err
	}
	r, err := mgr.Get(id)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal reminder: %w", err)
	}
	ctx.println(string(data))
	return nil
}

type ReminderCompleteCmd struct {
	ID string `arg:"" help:"Reminder ID or unique prefix."`
}

func (c *ReminderCompleteCmd) Run(ctx *Context) error {
	mgr := ctx.Manager()
	id, err := resolveID(mgr, c.ID)
	if err != nil {
		return err
	}
	r, err := mgr.Complete(id)
	if err != nil {
		return err
	}

	switch {
	case r.IsCompleted():
		ctx.printf("✓ Completed: %s\n", r.Title)
	case r.RepeatType == models.RepeatCustom:
		ctx.printf("✓ Done for now: %s (custom schedule, still active)\n", r.Title)
	default:
		ctx.printf("✓ Done: %s, next on %s\n", r.Title, formatWhen(r))
	}
	return nil
}

type ReminderSnoozeCmd struct {
	ID       string        `arg:"" help:"Reminder ID or unique prefix."`
	For      time.Duration `short:"f" help:"Snooze duration (e.g. 10m, 1h). Defaults to the configured snooze."`
	Until    string        `short:"u" help:"Snooze until 'YYYY-MM-DD HH:MM'."`
	Tomorrow bool          `help:"Snooze until 09:00 tomorrow."`
}

func (c *ReminderSnoozeCmd) Validate() error {
	set := 0
	if c.For != 0 {
		set++
	}
	if c.Until != "" {
		set++
	}
	if c.Tomorrow {
		set++
	}
	if set > 1 {
		return fmt.Errorf("--for, --until and --tomorrow are mutually exclusive")
	}
	if c.For < 0 {
		return fmt.Errorf("snooze duration cannot be negative")
	}
	return nil
}

func (c *ReminderSnoozeCmd) Run(ctx *Context) error {
	mgr := ctx.Manager()
	id, err := resolveID(mgr, c.ID)
	if err != nil {
		return err
	}

	var r models.Reminder
	switch {
	case c.Tomorrow:
		r, err = mgr.SnoozeTomorrow(id)
	case c.Until != "":
		parts := strings.Fields(c.Until)
		if len(parts) != 2 {
			return fmt.Errorf("invalid --until value %q (expected 'YYYY-MM-DD HH:MM')", c.Until)
		}
		until, perr := utils.CombineDateAndTime(parts[0], parts[1], mgr.Now().Location())
		if perr != nil {
			return perr
		}
		r, err = mgr.SnoozeUntil(id, until)
	default:
		r, err = mgr.Snooze(id, c.For)
	}
	if err != nil {
		return err
	}

	ctx.printf("Snoozed %s until %s\n", r.Title, r.SnoozeUntil.Format("2006-01-02 15:04"))
	return nil
}

type ReminderEditCmd struct {
	ID          string  `arg:"" help:"Reminder ID or unique prefix."`
	Title       *string `help:"New title."`
	Description *string `short:"D" help:"New description."`
	Date        *string `short:"d" help:"New date (YYYY-MM-DD, empty to clear)."`
	Time        *string `short:"t" help:"New time (HH:MM, empty to clear)."`
	Priority    *string `short:"p" help:"New priority."`
	Category    *string `short:"c" help:"New category."`
	Assign      *string `short:"a" help:"New assignee."`
}

func (c *ReminderEditCmd) Run(ctx *Context) error {
	mgr := ctx.Manager()
	id, err := resolveID(mgr, c.ID)
	if err != nil {
		return err
	}

	patch := models.ReminderPatch{
		Title:       c.Title,
		Description: c.Description,
		Time:        c.Time,
		AssignedTo:  c.Assign,
	}
	if c.Date != nil {
		date, err := resolveDate(*c.Date, mgr.Now())
		if err != nil {
			return err
		}
		patch.Date = &date
	}
	if c.Priority != nil {
		p, err := models.ParsePriority(*c.Priority)
		if err != nil {
			return err
		}
		patch.Priority = &p
	}
	if c.Category != nil {
		cat, err := models.ParseCategory(*c.Category)
		if err != nil {
			return err
		}
		patch.Category = &cat
	}

	r, err := mgr.Update(id, patch)
	if err != nil {
		return err
	}
	ctx.printf("Updated reminder: %s\n", r.Title)
	return nil
}

type ReminderRecurCmd struct {
	ID     string `arg:"" help:"Reminder ID or unique prefix."`
	Repeat string `arg:"" help:"New schedule (daily|weekly|monthly)." enum:"daily,weekly,monthly"`
}

func (c *ReminderRecurCmd) Run(ctx *Context) error {
	mgr := ctx.Manager()
	id, err := resolveID(mgr, c.ID)
	if err != nil {
		return err
	}
	r, err := mgr.ConvertToRecurring(id, models.RepeatType(c.Repeat))
	if err != nil {
		return err
	}
	ctx.printf("%s now repeats %s\n", r.Title, strings.ToLower(r.FormatRepeat()))
	return nil
}

type ReminderDeleteCmd struct {
	ID string `arg:"" help:"Reminder ID or unique prefix."`
}

func (c *ReminderDeleteCmd) Run(ctx *Context) error {
	mgr := ctx.Manager()
	id, err := resolveID(mgr, c.ID)
	if err != nil {
		return err
	}
	r, err := mgr.Get(id)
	if err != nil {
		return err
	}
	if err := mgr.Delete(id); err != nil {
		return err
	}
	ctx.printf("Deleted reminder: %s\n", r.Title)
	return nil
}

// ReminderCmd groups the reminder subcommands.
type ReminderCmd struct {
	Add      ReminderAddCmd      `cmd:"" help:"Add a reminder."`
	List     ReminderListCmd     `cmd:"" help:"List reminders by bucket." default:"1"`
	Show     ReminderShowCmd     `cmd:"" help:"Show one reminder as JSON."`
	Complete ReminderCompleteCmd `cmd:"" help:"Mark a reminder done."`
	Snooze   ReminderSnoozeCmd   `cmd:"" help:"Snooze a reminder."`
	Edit     ReminderEditCmd     `cmd:"" help:"Edit a reminder."`
	Recur    ReminderRecurCmd    `cmd:"" help:"Convert a reminder to a recurring one."`
	Delete   ReminderDeleteCmd   `cmd:"" help:"Delete a reminder."`
}
