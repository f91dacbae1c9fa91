package detailview

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"jobboard/internal/domain"
	"jobboard/internal/jobstore"
	"jobboard/internal/logging"
	"jobboard/internal/ui"
)

// Slot names one fixed display region of the details page.
type Slot string

const (
	SlotPageTitle   Slot = "page-title"
	SlotTitle       Slot = "job-title"
	SlotCompany     Slot = "job-company"
	SlotCategory    Slot = "job-category"
	SlotType        Slot = "job-type"
	SlotLocation    Slot = "job-location"
	SlotPosted      Slot = "job-posted"
	SlotSalary      Slot = "job-salary"
	SlotCompanyName Slot = "company-name"

	SlotLogo        Slot = "job-logo"
	SlotSidebarLogo Slot = "company-logo-sidebar"
)

const (
	NoRelatedMessage = "No related jobs found."
	NotFoundTitle    = "Job Not Found"
	NotFoundMessage  = "The job you're looking for doesn't exist or has been removed."
)

// Slots are the output regions of the details page.
type Slots interface {
	ui.IconRefresher
	SetDocumentTitle(title string)
	SetText(slot Slot, value string)
	SetImage(slot Slot, src, alt string)
	SetTags(tags []string)
	SetRelated(cards []ui.Card)
	ShowNoRelated(message string)
	ShowNotFound(backHref string)
}

type Loader interface {
	Load(ctx context.Context, path string) (domain.Collection, error)
}

// State follows Loading -> Found -> Rendered or Loading -> NotFound -> ErrorRendered.
type State int

const (
	StateLoading State = iota
	StateFound
	StateNotFound
	StateRendered
	StateErrorRendered
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateFound:
		return "found"
	case StateNotFound:
		return "not_found"
	case StateRendered:
		return "rendered"
	case StateErrorRendered:
		return "error_rendered"
	}
	return "unknown"
}

type View struct {
	Loader       Loader
	Source       string
	RelatedLimit int
	SiteName     string
	Skills       SkillsMap
	Slots        Slots
	Actions      ui.Actions

	state   State
	related domain.Collection
	log     *logrus.Entry
}

func (v *View) logger() *logrus.Entry {
	if v.log == nil {
		v.log = logging.Component("detailview")
	}
	return v.log
}

func (v *View) State() State { return v.state }
func (v *View) Related() domain.Collection { return v.related }

// ParseID reads the id navigation parameter. Blank, non-numeric and zero
// values are rejected.
func ParseID(raw string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// Open runs the view's state machine for the raw id parameter. A missing
// record and a failed load both end in ErrorRendered; the returned error is
// a *domain.NotFoundError or *domain.LoadError for logging.
func (v *View) Open(ctx context.Context, rawID string) error {
	v.state = StateLoading

	id, ok := ParseID(rawID)
	if !ok {
		return v.fail(&domain.NotFoundError{Raw: rawID})
	}

	jobs, err := v.Loader.Load(ctx, v.Source)
	if err != nil {
		var le *domain.LoadError
		if !errors.As(err, &le) {
			err = &domain.LoadError{Path: v.Source, Err: err}
		}
		return v.fail(err)
	}

	store := jobstore.New(jobs, 0)
	job, ok := store.Find(id)
	if !ok {
		return v.fail(&domain.NotFoundError{ID: id, Raw: rawID})
	}

	v.state = StateFound
	v.related = store.RelatedTo(job, v.relatedLimit())

	v.renderFields(job)
	v.renderRelated(ctx)
	v.Slots.RefreshIcons()
	v.state = StateRendered
	return nil
}

// Click handles a click delegated from the related-jobs container.
func (v *View) Click(ctx context.Context, t ui.Target) (ui.ActionResult, error) {
	res, err := v.Actions.Handle(ctx, t)
	if err != nil {
		v.logger().WithField("id", res.ID).WithError(err).Error("related card action failed")
	}
	return res, err
}

func (v *View) relatedLimit() int {
	if v.RelatedLimit <= 0 {
		return 3
	}
	return v.RelatedLimit
}

func (v *View) fail(err error) error {
	v.state = StateNotFound
	v.logger().WithError(err).Warn("job details unavailable")
	v.Slots.ShowNotFound(ui.ListHref)
	v.state = StateErrorRendered
	return err
}

func (v *View) renderFields(job domain.JobRecord) {
	s := v.Slots
	s.SetText(SlotPageTitle, job.Title)
	s.SetDocumentTitle(job.Title + " - " + v.SiteName)
	s.SetImage(SlotLogo, job.Logo, job.Company+" logo")
	s.SetText(SlotTitle, job.Title)
	s.SetText(SlotCompany, job.Company)
	s.SetText(SlotCategory, job.Category)
	s.SetText(SlotType, job.Type)
	s.SetText(SlotLocation, job.Location)
	s.SetText(SlotPosted, "Posted "+job.PostedTime)
	s.SetText(SlotSalary, job.Salary)
	s.SetImage(SlotSidebarLogo, job.Logo, job.Company+" logo")
	s.SetText(SlotCompanyName, job.Company)

	skills := v.Skills
	if skills == nil {
		skills = defaultSkills
	}
	s.SetTags(skills.For(job.Category))
}

func (v *View) renderRelated(ctx context.Context) {
	if len(v.related) == 0 {
		v.Slots.ShowNoRelated(NoRelatedMessage)
		return
	}
	v.Slots.SetRelated(v.Actions.Cards(ctx, v.related))
	v.Slots.RefreshIcons()
}
