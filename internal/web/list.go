package web

import (
	"jobboard/internal/listview"
	"jobboard/internal/ui"
)

// Panel is an alert with a heading.
type Panel struct {
	Title   string
	Message string
}

// ListPage collects what the list view writes to its slots.
type ListPage struct {
	icons

	Title        string
	Cards        []ui.Card
	Pagination   *listview.Pagination
	ResultsCount string
	Empty        string
	Error        *Panel
}

var (
	_ listview.Slots          = (*ListPage)(nil)
	_ listview.ResultsCounter = (*ListPage)(nil)
)

func NewListPage(siteName string) *ListPage {
	return &ListPage{Title: "Jobs - " + siteName}
}

func (p *ListPage) DocumentTitle() string { return p.Title }

func (p *ListPage) SetCards(cards []ui.Card) { p.Cards = cards }

func (p *ListPage) SetPagination(pg listview.Pagination) { p.Pagination = &pg }

func (p *ListPage) SetResultsCount(text string) { p.ResultsCount = text }

// ScrollToTop does nothing: page links load a new document.
func (p *ListPage) ScrollToTop() {}

func (p *ListPage) ShowEmpty(message string) {
	p.Cards = nil
	p.Pagination = nil
	p.Empty = message
}

func (p *ListPage) ShowError(title, message string) {
	p.Cards = nil
	p.Pagination = nil
	p.Error = &Panel{Title: title, Message: message}
}
