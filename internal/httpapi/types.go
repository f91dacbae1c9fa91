package httpapi

import (
	"jobboard/internal/detailview"
	"jobboard/internal/listview"
	"jobboard/internal/ui"
)

// ListResponse is the JSON form of the list page. It is filled through the
// list view slots like the HTML page is.
type ListResponse struct {
	Cards        []ui.Card            `json:"cards"`
	Pagination   *listview.Pagination `json:"pagination,omitempty"`
	ResultsCount string               `json:"resultsCount,omitempty"`
	Message      string               `json:"message,omitempty"`
}

func (l *ListResponse) RefreshIcons()                       {}
func (l *ListResponse) ScrollToTop()                        {}
func (l *ListResponse) SetCards(cards []ui.Card)            { l.Cards = cards }
func (l *ListResponse) SetPagination(p listview.Pagination) { l.Pagination = &p }
func (l *ListResponse) SetResultsCount(text string)         { l.ResultsCount = text }
func (l *ListResponse) ShowError(title, message string)     { l.Message = title + ": " + message }

func (l *ListResponse) ShowEmpty(message string) {
	l.Cards = []ui.Card{}
	l.Message = message
}

// DetailResponse is the JSON form of the details page.
type DetailResponse struct {
	DocumentTitle string            `json:"documentTitle"`
	Fields        map[string]string `json:"fields"`
	Images        map[string]string `json:"images"`
	Skills        []string          `json:"skills"`
	Related       []ui.Card         `json:"related"`
	Message       string            `json:"message,omitempty"`
}

func newDetailResponse() *DetailResponse {
	return &DetailResponse{Fields: map[string]string{}, Images: map[string]string{}, Related: []ui.Card{}}
}

func (d *DetailResponse) RefreshIcons()                       {}
func (d *DetailResponse) SetDocumentTitle(title string)       { d.DocumentTitle = title }
func (d *DetailResponse) SetTags(tags []string)               { d.Skills = tags }
func (d *DetailResponse) SetRelated(cards []ui.Card)          { d.Related = cards }
func (d *DetailResponse) ShowNoRelated(message string)        { d.Message = message }
func (d *DetailResponse) ShowNotFound(backHref string)        {}
func (d *DetailResponse) SetText(s detailview.Slot, v string) { d.Fields[string(s)] = v }

func (d *DetailResponse) SetImage(s detailview.Slot, src, alt string) {
	d.Images[string(s)] = src
}

var (
	_ listview.Slots          = (*ListResponse)(nil)
	_ listview.ResultsCounter = (*ListResponse)(nil)
	_ detailview.Slots        = (*DetailResponse)(nil)
)

// BookmarkResponse reports the state of a job after a toggle.
type BookmarkResponse struct {
	ID         int    `json:"id"`
	Bookmarked bool   `json:"bookmarked"`
	View       string `json:"view"`
}
