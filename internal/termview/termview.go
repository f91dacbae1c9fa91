// Package termview prints the list and details views to a terminal.
package termview

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"jobboard/internal/detailview"
	"jobboard/internal/listview"
	"jobboard/internal/ui"
)

// List implements the list view slots. Nothing is printed until Flush.
type List struct {
	Out io.Writer

	cards   []ui.Card
	pages   *listview.Pagination
	counter string
	notice  string
	failure string
	turned  bool
}

var (
	_ listview.Slots          = (*List)(nil)
	_ listview.ResultsCounter = (*List)(nil)
)

func (l *List) RefreshIcons()                       {}
func (l *List) ScrollToTop()                        { l.turned = true }
func (l *List) SetCards(cards []ui.Card)            { l.cards = cards }
func (l *List) SetPagination(p listview.Pagination) { l.pages = &p }
func (l *List) SetResultsCount(text string)         { l.counter = text }
func (l *List) ShowEmpty(message string)            { l.notice = message }
func (l *List) ShowError(title, message string)     { l.failure = title + ": " + message }

func (l *List) Flush() error {
	switch {
	case l.failure != "":
		_, err := io.WriteString(l.Out, pterm.Error.Sprintln(l.failure))
		return err
	case l.notice != "":
		_, err := io.WriteString(l.Out, pterm.Info.Sprintln(l.notice))
		return err
	}

	data := pterm.TableData{{"ID", "Title", "Company", "Category", "Type", "Location", "Salary", "Posted", ""}}
	for _, c := range l.cards {
		mark := ""
		if c.Bookmarked {
			mark = "*"
		}
		data = append(data, []string{
			strconv.Itoa(c.ID), c.Title, c.Company, c.Category, c.Type, c.Location, c.Salary, c.PostedTime, mark,
		})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}

	var b strings.Builder
	if l.turned {
		// page turn: separate from the page printed before
		b.WriteString("\n")
		l.turned = false
	}
	b.WriteString(table)
	b.WriteString("\n")
	if l.counter != "" {
		b.WriteString(l.counter + "\n")
	}
	if l.pages != nil {
		fmt.Fprintf(&b, "Page %d of %d\n", l.pages.Current, l.pages.Total)
	}
	_, err = io.WriteString(l.Out, b.String())
	return err
}

// Detail implements the details view slots. Nothing is printed until Flush.
type Detail struct {
	Out io.Writer

	title    string
	texts    map[detailview.Slot]string
	logo     string
	tags     []string
	related  []ui.Card
	noRel    string
	notFound bool
}

var _ detailview.Slots = (*Detail)(nil)

func (d *Detail) RefreshIcons()                 {}
func (d *Detail) SetDocumentTitle(title string) { d.title = title }
func (d *Detail) SetTags(tags []string)         { d.tags = tags }
func (d *Detail) SetRelated(cards []ui.Card)    { d.related = cards }
func (d *Detail) ShowNoRelated(message string)  { d.noRel = message }
func (d *Detail) ShowNotFound(backHref string)  { d.notFound = true }

func (d *Detail) SetText(slot detailview.Slot, value string) {
	if d.texts == nil {
		d.texts = map[detailview.Slot]string{}
	}
	d.texts[slot] = value
}

func (d *Detail) SetImage(slot detailview.Slot, src, alt string) {
	if slot == detailview.SlotLogo {
		d.logo = src
	}
}

var detailRows = []struct {
	label string
	slot  detailview.Slot
}{
	{"Company", detailview.SlotCompany},
	{"Category", detailview.SlotCategory},
	{"Type", detailview.SlotType},
	{"Location", detailview.SlotLocation},
	{"Salary", detailview.SlotSalary},
	{"Posted", detailview.SlotPosted},
}

func (d *Detail) Flush() error {
	if d.notFound {
		_, err := io.WriteString(d.Out, pterm.Error.Sprintln(detailview.NotFoundTitle+": "+detailview.NotFoundMessage))
		return err
	}

	var b strings.Builder
	b.WriteString(pterm.Bold.Sprint(d.title) + "\n\n")

	data := pterm.TableData{}
	for _, r := range detailRows {
		data = append(data, []string{r.label, d.texts[r.slot]})
	}
	if d.logo != "" {
		data = append(data, []string{"Logo", d.logo})
	}
	data = append(data, []string{"Skills", strings.Join(d.tags, ", ")})
	table, err := pterm.DefaultTable.WithData(data).Srender()
	if err != nil {
		return err
	}
	b.WriteString(table + "\n\n")

	b.WriteString(pterm.Bold.Sprint("Related jobs") + "\n")
	if len(d.related) == 0 {
		b.WriteString(d.noRel + "\n")
	}
	for _, c := range d.related {
		fmt.Fprintf(&b, "  #%d  %s, %s (%s)\n", c.ID, c.Title, c.Company, c.Location)
	}
	_, err = io.WriteString(d.Out, b.String())
	return err
}
