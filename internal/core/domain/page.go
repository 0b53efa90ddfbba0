package domain

import "time"

type PageCategory string

const (
	PageCategoryWork      PageCategory = "Work"
	PageCategoryPersonal  PageCategory = "Personal"
	PageCategoryEducation PageCategory = "Education"
	PageCategoryFinance   PageCategory = "Finance"
	PageCategoryHealth    PageCategory = "Health"
	PageCategoryOther     PageCategory = "Other"
)

func (c PageCategory) Valid() bool {
	switch c {
	case PageCategoryWork, PageCategoryPersonal, PageCategoryEducation,
		PageCategoryFinance, PageCategoryHealth, PageCategoryOther:
		return true
	}
	return false
}

// PageColors is the fixed palette a page color must come from.
var PageColors = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4",
	"#FFEAA7", "#DDA0DD", "#98D8C8", "#F7DC6F",
}

func ValidPageColor(color string) bool {
	for _, c := range PageColors {
		if c == color {
			return true
		}
	}
	return false
}

type Page struct {
	ID          string
	Title       string
	Description string
	Category    PageCategory
	URL         *string
	Color       string
	CreatedAt   time.Time
	Tasks       []Task
}

// PagePatch carries a partial page update.
type PagePatch struct {
	Title       *string
	Description *string
	Category    *PageCategory
	URL         *string
	URLSet      bool
	Color       *string
}

// AppState is the unit of reconciliation: a full reload replaces it
// atomically.
type AppState struct {
	Pages           []Page
	UnassignedTasks []Task
}
