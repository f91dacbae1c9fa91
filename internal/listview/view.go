package listview

import (
	"context"
	"errors"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"jobboard/internal/domain"
	"jobboard/internal/jobstore"
	"jobboard/internal/logging"
	"jobboard/internal/ui"
)

const (
	EmptyMessage = "No job postings available at the moment."
	ErrorTitle   = "Error Loading Jobs"
	ErrorMessage = "Unable to load job listings. Please try again later."
)

// Slots are the output regions of the list page.
type Slots interface {
	ui.IconRefresher
	SetCards(cards []ui.Card)
	SetPagination(p Pagination)
	ShowEmpty(message string)
	ShowError(title, message string)
	ScrollToTop()
}

// ResultsCounter is implemented by slots that have a results-count display.
type ResultsCounter interface {
	SetResultsCount(text string)
}

// Loader is satisfied by *datasource.Service.
type Loader interface {
	Load(ctx context.Context, path string) (domain.Collection, error)
}

type PageLink struct {
	Number int    `json:"number"`
	Href   string `json:"href"`
	Active bool   `json:"active"`
}

// Pagination describes the controls for one rendered page.
type Pagination struct {
	Current  int        `json:"current"`
	Total    int        `json:"total"`
	PrevHref string     `json:"prevHref,omitempty"`
	NextHref string     `json:"nextHref,omitempty"`
	Pages    []PageLink `json:"pages"`
}

func (p Pagination) HasPrev() bool { return p.PrevHref != "" }
func (p Pagination) HasNext() bool { return p.NextHref != "" }

type State int

const (
	StateLoading State = iota
	StateEmpty
	StateRendered
	StateError
)

type View struct {
	Loader   Loader
	Source   string
	PageSize int
	Slots    Slots
	Actions  ui.Actions

	store   *jobstore.Store
	current int
	state   State
	log     *logrus.Entry
}

func (v *View) logger() *logrus.Entry {
	if v.log == nil {
		v.log = logging.Component("listview")
	}
	return v.log
}

func (v *View) State() State { return v.state }
func (v *View) CurrentPage() int { return v.current }
func (v *View) TotalPages() int {
	if v.store == nil {
		return 0
	}
	return v.store.TotalPages()
}

// Open loads the collection and renders page (clamped into range). A load
// failure renders the error panel and is returned for the caller to log or
// map to a status; an empty collection renders the empty message.
func (v *View) Open(ctx context.Context, page int) error {
	v.state = StateLoading
	jobs, err := v.Loader.Load(ctx, v.Source)
	if err != nil {
		v.logger().WithError(err).Error("failed to load jobs")
		v.Slots.ShowError(ErrorTitle, ErrorMessage)
		v.state = StateError
		var le *domain.LoadError
		if !errors.As(err, &le) {
			err = &domain.LoadError{Path: v.Source, Err: err}
		}
		return err
	}

	v.store = jobstore.New(jobs, v.PageSize)
	if v.store.Len() == 0 {
		v.Slots.ShowEmpty(EmptyMessage)
		v.state = StateEmpty
		return nil
	}

	v.current = v.store.ClampPage(page)
	v.render(ctx)
	v.state = StateRendered
	return nil
}

// ChangePage re-renders at page and resets the scroll position.
func (v *View) ChangePage(ctx context.Context, page int) {
	if v.state != StateRendered {
		return
	}
	v.current = v.store.ClampPage(page)
	v.render(ctx)
	v.Slots.ScrollToTop()
}

func (v *View) Prev(ctx context.Context) { v.ChangePage(ctx, v.current-1) }
func (v *View) Next(ctx context.Context) { v.ChangePage(ctx, v.current+1) }

// Click handles a click delegated from the card container.
func (v *View) Click(ctx context.Context, t ui.Target) (ui.ActionResult, error) {
	res, err := v.Actions.Handle(ctx, t)
	if err != nil {
		v.logger().WithField("id", res.ID).WithError(err).Error("card action failed")
	}
	return res, err
}

func (v *View) render(ctx context.Context) {
	v.Slots.SetCards(v.Actions.Cards(ctx, v.store.Page(v.current)))
	v.Slots.RefreshIcons()

	v.Slots.SetPagination(BuildPagination(v.current, v.store.TotalPages()))
	v.Slots.RefreshIcons()

	if rc, ok := v.Slots.(ResultsCounter); ok {
		rc.SetResultsCount(ResultsCount(v.current, v.store.PageSize(), v.store.Len()))
	}
}

// BuildPagination lays out previous/next and one link per page.
func BuildPagination(current, total int) Pagination {
	p := Pagination{Current: current, Total: total}
	if current > 1 {
		p.PrevHref = ui.PageHref(current - 1)
	}
	if current < total {
		p.NextHref = ui.PageHref(current + 1)
	}
	p.Pages = make([]PageLink, 0, total)
	for i := 1; i <= total; i++ {
		p.Pages = append(p.Pages, PageLink{Number: i, Href: ui.PageHref(i), Active: i == current})
	}
	return p
}

// ResultsCount is the "Showing a-b of n results" line for a page.
func ResultsCount(page, pageSize, total int) string {
	start := (page-1)*pageSize + 1
	end := page * pageSize
	if end > total {
		end = total
	}
	return "Showing " + humanize.Comma(int64(start)) + "-" + humanize.Comma(int64(end)) +
		" of " + humanize.Comma(int64(total)) + " results"
}
