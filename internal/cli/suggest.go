package cli

import "fmt"

type SuggestListCmd struct{}

func (c *SuggestListCmd) Run(ctx *Context) error {
	ss := ctx.Manager().Suggestions()
	if len(ss) == 0 {
		ctx.println("No suggestions right now.")
		return nil
	}
	for _, s := range ss {
		ctx.printf("%s %-22s %s\n", s.Icon, s.ID, s.Title)
		ctx.printf("    %s\n", s.Message)
	}
	return nil
}

type SuggestAcceptCmd struct {
	ID string `arg:"" help:"Suggestion ID."`
}

func (c *SuggestAcceptCmd) Run(ctx *Context) error {
	r, err := ctx.Manager().AcceptSuggestion(c.ID)
	if err != nil {
		return fmt.Errorf("failed to accept suggestion: %w", err)
	}
	ctx.printf("Added reminder: %s on %s (ID: %s)\n", r.Title, formatWhen(r), r.ID)
	return nil
}

type SuggestDismissCmd struct {
	ID string `arg:"" help:"Suggestion ID."`
}

func (c *SuggestDismissCmd) Run(ctx *Context) error {
	if err := ctx.Manager().DismissSuggestion(c.ID); err != nil {
		return fmt.Errorf("failed to dismiss suggestion: %w", err)
	}
	ctx.printf("Dismissed suggestion: %s\n", c.ID)
	return nil
}

type SuggestCmd struct {
	List    SuggestListCmd    `cmd:"" help:"List smart suggestions." default:"1"`
	Accept  SuggestAcceptCmd  `cmd:"" help:"Turn a suggestion into a reminder."`
	Dismiss SuggestDismissCmd `cmd:"" help:"Hide a suggestion."`
}
