package detailview

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"jobboard/internal/domain"
	"jobboard/internal/ui"
)

type fakeLoader struct {
	jobs domain.Collection
	err  error
}

func (f fakeLoader) Load(ctx context.Context, path string) (domain.Collection, error) {
	return f.jobs, f.err
}

type image struct{ src, alt string }

type recordingSlots struct {
	docTitle  string
	text      map[Slot]string
	images    map[Slot]image
	tags      []string
	related   []ui.Card
	noRelated string
	notFound  string
	icons     int
}

func newSlots() *recordingSlots {
	return &recordingSlots{text: map[Slot]string{}, images: map[Slot]image{}}
}

func (r *recordingSlots) SetDocumentTitle(t string) { r.docTitle = t }
func (r *recordingSlots) SetText(s Slot, v string) { r.text[s] = v }
func (r *recordingSlots) SetImage(s Slot, src, alt string) { r.images[s] = image{src, alt} }
func (r *recordingSlots) SetTags(tags []string) { r.tags = tags }
func (r *recordingSlots) SetRelated(c []ui.Card) { r.related = c }
func (r *recordingSlots) ShowNoRelated(msg string) { r.noRelated = msg }
func (r *recordingSlots) ShowNotFound(href string) { r.notFound = href }
func (r *recordingSlots) RefreshIcons() { r.icons++ }

var fiveJobs = domain.Collection{
	{ID: 1, Title: "Backend Engineer", Company: "Acme", Category: "Technology", Type: "Full Time", Location: "Lagos", Salary: "$4k", PostedTime: "2 days ago", Logo: "/img/acme.png"},
	{ID: 2, Title: "Store Manager", Company: "Shoprite", Category: "Commerce"},
	{ID: 3, Title: "Frontend Engineer", Company: "Acme", Category: "Technology"},
	{ID: 4, Title: "Farm Lead", Company: "Agro", Category: "Unknown"},
	{ID: 5, Title: "Data Engineer", Company: "Beta", Category: "Technology"},
}

func TestOpenRendersEveryField(t *testing.T) {
	slots := newSlots()
	v := &View{Loader: fakeLoader{jobs: fiveJobs}, SiteName: "TiroAfrica", Slots: slots}

	if err := v.Open(context.Background(), "1"); err != nil {
		t.Fatal(err)
	}
	if v.State() != StateRendered {
		t.Fatalf("state = %v", v.State())
	}

	wantText := map[Slot]string{
		SlotPageTitle:   "Backend Engineer",
		SlotTitle:       "Backend Engineer",
		SlotCompany:     "Acme",
		SlotCategory:    "Technology",
		SlotType:        "Full Time",
		SlotLocation:    "Lagos",
		SlotPosted:      "Posted 2 days ago",
		SlotSalary:      "$4k",
		SlotCompanyName: "Acme",
	}
	if !reflect.DeepEqual(slots.text, wantText) {
		t.Errorf("text slots = %v", slots.text)
	}
	if slots.docTitle != "Backend Engineer - TiroAfrica" {
		t.Errorf("doc title = %q", slots.docTitle)
	}
	for _, s := range []Slot{SlotLogo, SlotSidebarLogo} {
		if img := slots.images[s]; img.src != "/img/acme.png" || img.alt != "Acme logo" {
			t.Errorf("%s = %+v", s, img)
		}
	}

	wantTags := []string{"Programming", "Problem Solving", "Agile", "Team Collaboration", "Technical Skills"}
	if !reflect.DeepEqual(slots.tags, wantTags) {
		t.Errorf("tags = %v", slots.tags)
	}

	if len(slots.related) != 2 || slots.related[0].ID != 3 || slots.related[1].ID != 5 {
		t.Errorf("related = %v", slots.related)
	}
	if slots.icons == 0 {
		t.Error("icons never refreshed")
	}
}

func TestUnknownCategoryUsesGenericSkills(t *testing.T) {
	slots := newSlots()
	v := &View{Loader: fakeLoader{jobs: fiveJobs}, Slots: slots}
	_ = v.Open(context.Background(), "4")

	want := []string{"Leadership", "Management", "Communication", "Strategy", "Analytics"}
	if !reflect.DeepEqual(slots.tags, want) {
		t.Errorf("tags = %v", slots.tags)
	}
	if slots.noRelated != NoRelatedMessage || slots.related != nil {
		t.Errorf("expected no-related message, got %q %v", slots.noRelated, slots.related)
	}
}

func TestMissingIDRendersNotFoundWithoutFields(t *testing.T) {
	for _, raw := range []string{"99", "", "abc", "0", "12abc"} {
		slots := newSlots()
		v := &View{Loader: fakeLoader{jobs: fiveJobs}, Slots: slots}

		err := v.Open(context.Background(), raw)
		var nf *domain.NotFoundError
		if !errors.As(err, &nf) {
			t.Errorf("%q: expected NotFoundError, got %v", raw, err)
		}
		if v.State() != StateErrorRendered {
			t.Errorf("%q: state = %v", raw, v.State())
		}
		if slots.notFound != ui.ListHref {
			t.Errorf("%q: back link = %q", raw, slots.notFound)
		}
		if len(slots.text) != 0 || len(slots.images) != 0 || slots.tags != nil || slots.docTitle != "" {
			t.Errorf("%q: fields populated on not-found: %+v", raw, slots)
		}
	}
}

func TestLoadFailureLooksLikeNotFound(t *testing.T) {
	slots := newSlots()
	v := &View{Loader: fakeLoader{err: errors.New("503")}, Source: "jobs.json", Slots: slots}

	err := v.Open(context.Background(), "1")
	var le *domain.LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected LoadError, got %v", err)
	}
	if v.State() != StateErrorRendered || slots.notFound == "" {
		t.Errorf("state = %v notFound = %q", v.State(), slots.notFound)
	}
}

func TestRelatedLimit(t *testing.T) {
	var jobs domain.Collection
	for i := 1; i <= 8; i++ {
		jobs = append(jobs, domain.JobRecord{ID: i, Category: "Healthcare"})
	}
	slots := newSlots()
	v := &View{Loader: fakeLoader{jobs: jobs}, Slots: slots}
	_ = v.Open(context.Background(), "5")

	if len(slots.related) != 3 {
		t.Fatalf("related = %d", len(slots.related))
	}
	for i, want := range []int{1, 2, 3} {
		if slots.related[i].ID != want {
			t.Errorf("related[%d] = %d", i, slots.related[i].ID)
		}
	}
}

func TestSkillsOverrides(t *testing.T) {
	m := DefaultSkills().WithOverrides(map[string][]string{
		"Finance":    {"Accounting", "Excel", "Reporting", "Audit", "Compliance"},
		"Technology": {"Go", "SQL", "Linux", "Testing", "Review"},
	})
	if got := m.For("Finance"); got[0] != "Accounting" {
		t.Errorf("Finance = %v", got)
	}
	if got := m.For("Technology"); got[0] != "Go" {
		t.Errorf("Technology override = %v", got)
	}
	if got := DefaultSkills().For("Technology"); got[0] != "Programming" {
		t.Errorf("defaults mutated: %v", got)
	}
	got := m.For("Commerce")
	got[0] = "changed"
	if m.For("Commerce")[0] != "Sales" {
		t.Error("For must return a copy")
	}
}
