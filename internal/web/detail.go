package web

import (
	"jobboard/internal/detailview"
	"jobboard/internal/ui"
)

type Image struct {
	Src string
	Alt string
}

// NotFoundPanel replaces the whole details page.
type NotFoundPanel struct {
	Title    string
	Message  string
	BackHref string
}

// DetailPage collects what the details view writes to its slots.
type DetailPage struct {
	icons

	Title     string
	Tags      []string
	Related   []ui.Card
	NoRelated string
	NotFound  *NotFoundPanel

	texts  map[detailview.Slot]string
	images map[detailview.Slot]Image
}

var _ detailview.Slots = (*DetailPage)(nil)

func NewDetailPage(siteName string) *DetailPage {
	return &DetailPage{
		Title:  "Job Details - " + siteName,
		texts:  map[detailview.Slot]string{},
		images: map[detailview.Slot]Image{},
	}
}

func (p *DetailPage) DocumentTitle() string { return p.Title }

func (p *DetailPage) SetDocumentTitle(title string) { p.Title = title }

func (p *DetailPage) SetText(slot detailview.Slot, value string) { p.texts[slot] = value }

func (p *DetailPage) SetImage(slot detailview.Slot, src, alt string) {
	p.images[slot] = Image{Src: src, Alt: alt}
}

func (p *DetailPage) SetTags(tags []string) { p.Tags = tags }

func (p *DetailPage) SetRelated(cards []ui.Card) { p.Related = cards }

func (p *DetailPage) ShowNoRelated(message string) { p.NoRelated = message }

func (p *DetailPage) ShowNotFound(backHref string) {
	p.NotFound = &NotFoundPanel{
		Title:    detailview.NotFoundTitle,
		Message:  detailview.NotFoundMessage,
		BackHref: backHref,
	}
}

// Text is the value written to a text slot.
func (p *DetailPage) Text(slot string) string { return p.texts[detailview.Slot(slot)] }

// Image is the image written to slot, or nil when none was.
func (p *DetailPage) Image(slot string) *Image {
	img, ok := p.images[detailview.Slot(slot)]
	if !ok {
		return nil
	}
	return &img
}
