package suggestions

import (
	"errors"
	"time"

	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/constants"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/models"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/utils"
)

var ErrNotFound = errors.New("suggestion not found")

type Kind string

const (
	KindInventory Kind = "inventory"
	KindStaff     Kind = "staff"
	KindPayment   Kind = "payment"
	KindTax       Kind = "tax"
	KindPromo     Kind = "promo"
	KindTasks     Kind = "tasks"
)

// Preset is the reminder a suggestion creates when accepted.
type Preset struct {
	Title       string
	Description string
	// Time defaults to 09:00.
	Time string
	// DaysAhead offsets the date from today. Zero means tomorrow; a
	// negative value means today.
	DaysAhead  int
	RepeatType models.RepeatType
	Priority   models.Priority
	Category   models.Category
}

type Suggestion struct {
	ID      string `json:"id"`
	Kind    Kind   `json:"kind"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Icon    string `json:"icon"`
	Preset  Preset `json:"-"`
}

// Source supplies candidate suggestions in display order.
type Source interface {
	Candidates() []Suggestion
}

type Catalog []Suggestion

func (c Catalog) Candidates() []Suggestion {
	out := make([]Suggestion, len(c))
	copy(out, c)
	return out
}

// Generate returns the candidates whose ids are not dismissed, in source order.
func Generate(src Source, dismissed []string) []Suggestion {
	skip := make(map[string]struct{}, len(dismissed))
	for _, id := range dismissed {
		skip[id] = struct{}{}
	}

	out := []Suggestion{}
	for _, s := range src.Candidates() {
		if _, ok := skip[s.ID]; ok {
			continue
		}
		out = append(out, s)
	}
	return out
}

func Find(src Source, id string) (Suggestion, error) {
	for _, s := range src.Candidates() {
		if s.ID == id {
			return s, nil
		}
	}
	return Suggestion{}, ErrNotFound
}

// Build turns the preset into creation input relative to now.
func (p Preset) Build(now time.Time) models.ReminderInput {
	days := p.DaysAhead
	switch {
	case days == 0:
		days = 1
	case days < 0:
		days = 0
	}

	at := p.Time
	if at == "" {
		at = constants.SuggestionTime
	}

	return models.ReminderInput{
		Title:       p.Title,
		Description: p.Description,
		Date:        utils.LocalDate(now.AddDate(0, 0, days)),
		Time:        at,
		RepeatType:  p.RepeatType,
		Priority:    p.Priority,
		Category:    p.Category,
	}
}
