// Package ui holds the pieces the list and details views share: job cards,
// delegated click targets and the action dispatcher behind them.
package ui

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"jobboard/internal/bookmark"
	"jobboard/internal/domain"
	"jobboard/internal/logging"
)

const (
	ListHref   = "/job-board"
	DetailPath = "/job-details"
)

// DetailsHref is the details page for id.
func DetailsHref(id int) string {
	return DetailPath + "?" + url.Values{"id": {strconv.Itoa(id)}}.Encode()
}

// PageHref is the list page number n.
func PageHref(n int) string {
	return ListHref + "?" + url.Values{"page": {strconv.Itoa(n)}}.Encode()
}

// Card is the display form of a job in a list or related-jobs panel.
type Card struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Category    string `json:"category"`
	Type        string `json:"type"`
	Location    string `json:"location"`
	Salary      string `json:"salary"`
	PostedTime  string `json:"postedTime"`
	Logo        string `json:"logo"`
	DetailsHref string `json:"detailsHref"`
	Bookmarked  bool   `json:"bookmarked"`
}

func CardFrom(j domain.JobRecord) Card {
	return Card{
		ID:          j.ID,
		Title:       j.Title,
		Company:     j.Company,
		Category:    j.Category,
		Type:        j.Type,
		Location:    j.Location,
		Salary:      j.Salary,
		PostedTime:  j.PostedTime,
		Logo:        j.Logo,
		DetailsHref: DetailsHref(j.ID),
	}
}

// IconRefresher materializes icon placeholders after a slot is replaced.
type IconRefresher interface {
	RefreshIcons()
}

// Navigator moves the user to another page.
type Navigator interface {
	Navigate(href string)
}

// Target is the element a click inside a card container landed on: the
// nearest button's classes, aria-label, data-job-id and icon name.
type Target struct {
	Classes   []string
	AriaLabel string
	JobID     string
	Icon      string
}

func (t Target) hasClass(c string) bool {
	for _, x := range t.Classes {
		if x == c {
			return true
		}
	}
	return false
}

type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionViewDetails
	ActionBookmark
)

func (k ActionKind) String() string {
	switch k {
	case ActionViewDetails:
		return "view-details"
	case ActionBookmark:
		return "bookmark"
	default:
		return "none"
	}
}

// Classify resolves a click target to an action and job id. Targets without
// a numeric job id, or that are neither a details nor a bookmark button,
// resolve to ActionNone.
func Classify(t Target) (ActionKind, int) {
	id, err := strconv.Atoi(strings.TrimSpace(t.JobID))
	if err != nil {
		return ActionNone, 0
	}
	switch {
	case t.hasClass("view-details-btn") || t.hasClass("view-related-btn"):
		return ActionViewDetails, id
	case t.AriaLabel == "bookmark" || t.Icon == "bookmark":
		return ActionBookmark, id
	}
	return ActionNone, 0
}

// ActionResult reports what a click did.
type ActionResult struct {
	Kind       ActionKind `json:"-"`
	Action     string     `json:"action"`
	ID         int        `json:"id"`
	Href       string     `json:"href,omitempty"`
	Bookmarked bool       `json:"bookmarked"`
}

// Actions is the delegated click handler shared by card containers.
type Actions struct {
	Bookmarks bookmark.Store
	Nav       Navigator
}

func (a Actions) bookmarks() bookmark.Store {
	if a.Bookmarks == nil {
		return bookmark.Noop{}
	}
	return a.Bookmarks
}

func (a Actions) Handle(ctx context.Context, t Target) (ActionResult, error) {
	kind, id := Classify(t)
	res := ActionResult{Kind: kind, Action: kind.String(), ID: id}

	switch kind {
	case ActionViewDetails:
		res.Href = DetailsHref(id)
		if a.Nav != nil {
			a.Nav.Navigate(res.Href)
		}
	case ActionBookmark:
		on, err := a.bookmarks().Toggle(ctx, id)
		if err != nil {
			return res, err
		}
		res.Bookmarked = on
	}
	return res, nil
}

// Cards converts jobs to cards, marking the ones already bookmarked.
func (a Actions) Cards(ctx context.Context, jobs domain.Collection) []Card {
	out := make([]Card, 0, len(jobs))
	bm := a.bookmarks()
	for _, j := range jobs {
		c := CardFrom(j)
		on, err := bm.IsBookmarked(ctx, j.ID)
		if err != nil {
			logging.Component("ui").WithField("id", j.ID).WithError(err).Warn("bookmark lookup failed")
		}
		c.Bookmarked = on
		out = append(out, c)
	}
	return out
}
