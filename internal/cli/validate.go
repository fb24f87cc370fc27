package cli

import "github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/validation"

type ValidateCmd struct {
	Fix bool `help:"Automatically fix duplicates, stale snoozes and completed recurring reminders."`
}

func (cmd *ValidateCmd) Run(ctx *Context) error {
	mgr := ctx.Manager()
	validator := validation.New()

	ctx.println("Validating reminders...")
	result := validator.ValidateReminders(mgr.List(), ctx.Clock.Now())

	ctx.println()
	ctx.println(result.FormatReport())

	if !cmd.Fix || !result.HasConflicts() {
		return nil
	}

	actions := validation.AutoFixDuplicateReminders(result.Conflicts, mgr.List(), mgr.Delete)
	actions = append(actions, validation.AutoFixReminders(result.Conflicts,
		func(id string) error {
			_, err := mgr.Reactivate(id)
			return err
		},
		func(id string) error {
			_, err := mgr.ClearSnooze(id)
			return err
		},
	)...)

	if len(actions) == 0 {
		ctx.println("No automatic fixes available; remaining conflicts need manual review.")
		return nil
	}

	ctx.printf("Applied %d fix(es):\n", len(actions))
	for _, a := range actions {
		ctx.printf("  - %s\n", a.Action)
	}

	after := validator.ValidateReminders(mgr.List(), ctx.Clock.Now())
	if after.HasConflicts() {
		ctx.printf("%d conflict(s) remain and need manual review.\n", len(after.Conflicts))
	}
	return nil
}
