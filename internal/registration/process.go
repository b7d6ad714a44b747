package registration

import (
	"fmt"

	"github.com/gocongress/congress-api/internal/models"
)

// Page identifiers in the multi-page edit flow. Plan pages are generated per
// category as "plans/<category id>".
const (
	PageBasics      = "basics"
	PageTournaments = "tournaments"
	PageActivities  = "activities"
	PageWrapUp      = "wrap_up"
)

// Process decides page-to-page navigation for one attendee's edit session.
// Categories must arrive in display order.
type Process struct {
	categories []models.PlanCategory
	playing    bool
}

func NewProcess(categories []models.PlanCategory, playing bool) *Process {
	return &Process{categories: categories, playing: playing}
}

// PlanPage is the page identifier for one category's plan-selection page.
func PlanPage(category models.PlanCategory) string {
	return fmt.Sprintf("plans/%d", category.ID)
}

func (p *Process) pages() []string {
	pages := []string{PageBasics}
	for _, cat := range p.categories {
		pages = append(pages, PlanPage(cat))
	}
	if p.playing {
		pages = append(pages, PageTournaments)
	}
	pages = append(pages, PageActivities, PageWrapUp)
	return pages
}

// NextPage returns the page that follows current. Unknown pages and the last
// page both land on wrap-up.
func (p *Process) NextPage(current string) string {
	pages := p.pages()
	for i, page := range pages {
		if page == current && i+1 < len(pages) {
			return pages[i+1]
		}
	}
	return PageWrapUp
}
