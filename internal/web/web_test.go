package web

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"jobboard/internal/datasource"
	"jobboard/internal/detailview"
	"jobboard/internal/domain"
	"jobboard/internal/forms"
	"jobboard/internal/listview"
)

func sampleJobs(n int) []domain.JobRecord {
	cats := []string{"Technology", "Healthcare"}
	out := make([]domain.JobRecord, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, domain.JobRecord{
			ID:         i,
			Title:      "Job " + string(rune('A'+i-1)),
			Company:    "Acme",
			Category:   cats[i%2],
			Type:       "Full time",
			Location:   "Lagos",
			Salary:     "$40k",
			PostedTime: "2 days ago",
			Logo:       "/img/acme.png",
		})
	}
	return out
}

func loader(t *testing.T, jobs []domain.JobRecord) *datasource.Service {
	t.Helper()
	mt := datasource.NewMemoryTransport()
	if err := mt.Put("jobs.json", jobs); err != nil {
		t.Fatal(err)
	}
	return datasource.New(mt, datasource.Options{})
}

func render(t *testing.T, name string, p Page) *goquery.Document {
	t.Helper()
	r, err := New("TiroAfrica")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var buf bytes.Buffer
	if err := r.Render(&buf, name, p); err != nil {
		t.Fatalf("Render: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestListPageRendersCardsAndPagination(t *testing.T) {
	page := NewListPage("TiroAfrica")
	v := listview.View{Loader: loader(t, sampleJobs(13)), Source: "jobs.json", PageSize: 6, Slots: page}
	if err := v.Open(context.Background(), 2); err != nil {
		t.Fatal(err)
	}

	doc := render(t, PageJobBoard, page)
	if n := doc.Find("#job-list .job-card").Length(); n != 6 {
		t.Fatalf("cards = %d", n)
	}
	if got := doc.Find("#job-list .job-card h5").First().Text(); got != "Job G" {
		t.Errorf("first card on page 2 = %q", got)
	}
	if got := doc.Find("#pagination .active-page").Text(); got != "2" {
		t.Errorf("active page = %q", got)
	}
	if href, _ := doc.Find("#pagination .prev-btn").Attr("href"); href != "/job-board?page=1" {
		t.Errorf("prev href = %q", href)
	}
	if href, _ := doc.Find("#pagination .next-btn").Attr("href"); href != "/job-board?page=3" {
		t.Errorf("next href = %q", href)
	}
	if n := doc.Find("#pagination .page-btn").Length(); n != 2 {
		t.Errorf("page links = %d", n)
	}
	if got := doc.Find("#results-count").Text(); got != "Showing 7-12 of 13 results" {
		t.Errorf("results count = %q", got)
	}
	if href, _ := doc.Find(".view-details-btn").First().Attr("href"); href != "/job-details?id=7" {
		t.Errorf("details href = %q", href)
	}
	if doc.Find("script#icons").Length() != 1 {
		t.Error("icon hook not emitted")
	}
	if !strings.HasPrefix(doc.Find("title").Text(), "Jobs - ") {
		t.Errorf("title = %q", doc.Find("title").Text())
	}
}

func TestListPageFirstAndLastPageControls(t *testing.T) {
	page := NewListPage("TiroAfrica")
	v := listview.View{Loader: loader(t, sampleJobs(3)), Source: "jobs.json", PageSize: 6, Slots: page}
	if err := v.Open(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	doc := render(t, PageJobBoard, page)
	if doc.Find(".prev-btn").Length() != 0 || doc.Find(".next-btn").Length() != 0 {
		t.Error("single page should have neither previous nor next")
	}
}

func TestListPageEmptyAndError(t *testing.T) {
	page := NewListPage("TiroAfrica")
	v := listview.View{Loader: loader(t, sampleJobs(0)), Source: "jobs.json", Slots: page}
	if err := v.Open(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	doc := render(t, PageJobBoard, page)
	if got := strings.TrimSpace(doc.Find("#job-list p.text-muted").Text()); got != listview.EmptyMessage {
		t.Errorf("empty message = %q", got)
	}
	if doc.Find("#pagination").Length() != 0 {
		t.Error("empty list rendered pagination")
	}

	page = NewListPage("TiroAfrica")
	v = listview.View{Loader: loader(t, sampleJobs(0)), Source: "missing.json", Slots: page}
	if err := v.Open(context.Background(), 1); err == nil {
		t.Fatal("expected load error")
	}
	doc = render(t, PageJobBoard, page)
	if got := doc.Find("#job-list .alert-heading").Text(); got != listview.ErrorTitle {
		t.Errorf("error title = %q", got)
	}
}

func TestDetailPageRendersFields(t *testing.T) {
	page := NewDetailPage("TiroAfrica")
	v := detailview.View{Loader: loader(t, sampleJobs(9)), Source: "jobs.json", SiteName: "TiroAfrica", Slots: page}
	if err := v.Open(context.Background(), "2"); err != nil {
		t.Fatal(err)
	}

	doc := render(t, PageJobDetails, page)
	if got := doc.Find("title").Text(); got != "Job B - TiroAfrica" {
		t.Errorf("title = %q", got)
	}
	checks := map[string]string{
		"#job-title":    "Job B",
		"#job-company":  "Acme",
		"#job-category": "Technology",
		"#job-posted":   "Posted 2 days ago",
		"#company-name": "Acme",
	}
	for sel, want := range checks {
		if got := doc.Find(sel).Text(); got != want {
			t.Errorf("%s = %q want %q", sel, got, want)
		}
	}
	if alt, _ := doc.Find("#job-logo").Attr("alt"); alt != "Acme logo" {
		t.Errorf("logo alt = %q", alt)
	}
	if n := doc.Find("#skills-tags .badge").Length(); n != 5 {
		t.Errorf("skills = %d", n)
	}
	if n := doc.Find("#related-jobs .view-related-btn").Length(); n != 3 {
		t.Errorf("related = %d", n)
	}
}

func TestDetailPageNotFound(t *testing.T) {
	page := NewDetailPage("TiroAfrica")
	v := detailview.View{Loader: loader(t, sampleJobs(2)), Source: "jobs.json", Slots: page}
	if err := v.Open(context.Background(), "99"); err == nil {
		t.Fatal("expected not found")
	}

	doc := render(t, PageJobDetails, page)
	if got := doc.Find("#not-found .alert-heading").Text(); got != detailview.NotFoundTitle {
		t.Errorf("heading = %q", got)
	}
	if href, _ := doc.Find("#not-found a").Attr("href"); href != "/job-board" {
		t.Errorf("back href = %q", href)
	}
	if doc.Find("#job-title").Length() != 0 {
		t.Error("fields rendered for a missing job")
	}
}

func TestDetailPageNoRelated(t *testing.T) {
	page := NewDetailPage("TiroAfrica")
	v := detailview.View{Loader: loader(t, sampleJobs(1)), Source: "jobs.json", Slots: page}
	if err := v.Open(context.Background(), "1"); err != nil {
		t.Fatal(err)
	}
	doc := render(t, PageJobDetails, page)
	if got := strings.TrimSpace(doc.Find("#related-jobs p").Text()); got != detailview.NoRelatedMessage {
		t.Errorf("no related = %q", got)
	}
}

func TestFormPageFeedback(t *testing.T) {
	page := ContactPage("TiroAfrica")
	form := forms.ContactForm{FirstName: "Ada", Email: "bad"}
	page.Apply(map[string]string{"firstName": "Ada", "email": "bad"}, forms.Check(&form))

	doc := render(t, PageForm, page)
	if cls, _ := doc.Find("#firstName").Attr("class"); !strings.Contains(cls, "is-valid") {
		t.Errorf("firstName class = %q", cls)
	}
	if cls, _ := doc.Find("#email").Attr("class"); !strings.Contains(cls, "is-invalid") {
		t.Errorf("email class = %q", cls)
	}
	if v, _ := doc.Find("#email").Attr("value"); v != "bad" {
		t.Errorf("email value = %q", v)
	}
	if got := doc.Find("#email + .invalid-feedback").Text(); got != "Please enter a valid email address" {
		t.Errorf("email feedback = %q", got)
	}
}

func TestFormPageDoesNotEchoPasswords(t *testing.T) {
	page := LoginPage("TiroAfrica")
	page.Apply(map[string]string{"email": "a@b.co", "password": "hunter22"}, forms.Feedback{})
	doc := render(t, PageForm, page)
	if v, _ := doc.Find("#password").Attr("value"); v != "" {
		t.Errorf("password echoed: %q", v)
	}
}
