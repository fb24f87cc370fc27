package suggestions

import "github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/models"

// DefaultCatalog is the built-in candidate table. A signal-driven Source
// (stock levels, payroll dates) can replace it without touching Generate.
var DefaultCatalog = Catalog{
	{
		ID:      "sug-low-stock-khari",
		Kind:    KindInventory,
		Title:   "Khari stock running low",
		Message: "Khari sold out twice this week. Reorder from the bakery supplier.",
		Icon:    "📦",
		Preset: Preset{
			Title:    "Reorder khari from supplier",
			Priority: models.PriorityHigh,
			Category: models.CategoryInventory,
		},
	},
	{
		ID:      "sug-salary-day",
		Kind:    KindStaff,
		Title:   "Set up salary day",
		Message: "Pay staff on the same day every month.",
		Icon:    "👥",
		Preset: Preset{
			Title:      "Pay staff salaries",
			RepeatType: models.RepeatMonthly,
			Priority:   models.PriorityHigh,
			Category:   models.CategoryStaff,
		},
	},
	{
		ID:      "sug-gst-filing",
		Kind:    KindTax,
		Title:   "GST return due soon",
		Message: "Monthly GST filing keeps late fees away.",
		Icon:    "🧾",
		Preset: Preset{
			Title:      "File GST return",
			RepeatType: models.RepeatMonthly,
			Priority:   models.PriorityHigh,
			Category:   models.CategoryTax,
		},
	},
	{
		ID:      "sug-supplier-payment",
		Kind:    KindPayment,
		Title:   "Supplier payment pending",
		Message: "Clear outstanding supplier bills before the weekend.",
		Icon:    "💰",
		Preset: Preset{
			Title:    "Pay pending supplier bills",
			Category: models.CategoryPayment,
		},
	},
	{
		ID:      "sug-weekend-offer",
		Kind:    KindPromo,
		Title:   "Plan a weekend offer",
		Message: "Weekend footfall is higher. Prepare a combo offer.",
		Icon:    "🏷️",
		Preset: Preset{
			Title:      "Prepare weekend combo offer",
			RepeatType: models.RepeatWeekly,
			Priority:   models.PriorityLow,
			Category:   models.CategoryPromo,
		},
	},
	{
		ID:      "sug-daily-closing",
		Kind:    KindTasks,
		Title:   "Daily closing checklist",
		Message: "Count cash and review the day's bills at closing time.",
		Icon:    "📋",
		Preset: Preset{
			Title:      "Closing: count cash and review bills",
			Time:       "21:30",
			DaysAhead:  -1,
			RepeatType: models.RepeatDaily,
			Category:   models.CategoryTasks,
		},
	},
}
