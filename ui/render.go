// Package ui draws the screens on a terminal and runs the interactive shell.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rise-and-shine/userbook/domain"
	"github.com/rise-and-shine/userbook/viewstate"
	"github.com/samber/lo"
)

const (
	TitleUserList   = "Users"
	TitleUserDetail = "User Details"

	loadingText = "Loading..."
	retryHint   = "[r] Retry"
	emptyText   = "No users"
)

// Renderer writes screens to an io.Writer.
type Renderer struct {
	out io.Writer

	title   *color.Color
	section *color.Color
	label   *color.Color
	faint   *color.Color
	errText *color.Color
	accent  *color.Color
}

// NewRenderer creates a Renderer. With noColor set no escape sequences are written,
// whatever the terminal supports.
func NewRenderer(out io.Writer, noColor bool) *Renderer {
	r := &Renderer{
		out:     out,
		title:   color.New(color.Bold, color.Underline),
		section: color.New(color.Bold),
		label:   color.New(color.FgHiBlack),
		faint:   color.New(color.Faint),
		errText: color.New(color.FgRed),
		accent:  color.New(color.FgCyan),
	}

	if noColor {
		for _, c := range []*color.Color{r.title, r.section, r.label, r.faint, r.errText, r.accent} {
			c.DisableColor()
		}
	}

	return r
}

// UserList draws the list screen: one card per user with name, email and company.
func (r *Renderer) UserList(s viewstate.State[[]domain.User]) {
	r.header(TitleUserList)

	switch s.Kind() {
	case viewstate.KindSuccess:
		users, _ := s.Value()
		if len(users) == 0 {
			r.line(1, r.faint.Sprint(emptyText))
			return
		}

		width := len(fmt.Sprint(len(users)))
		lo.ForEach(users, func(u domain.User, i int) {
			num := fmt.Sprintf("%*d.", width, i+1)
			r.line(1, r.accent.Sprint(num)+" "+r.section.Sprint(u.Name))
			pad := strings.Repeat(" ", len(num)+1)
			r.line(1, pad+r.label.Sprint(u.Email))
			r.line(1, pad+r.faint.Sprint(u.Company.Name))
		})

	case viewstate.KindError:
		msg, _ := s.Message()
		r.line(1, r.errText.Sprint(msg))
		r.line(1, r.accent.Sprint(retryHint))

	default:
		r.line(1, r.faint.Sprint(loadingText))
	}
}

// UserDetail draws the detail screen.
func (r *Renderer) UserDetail(s viewstate.State[domain.User]) {
	r.header(TitleUserDetail)

	switch s.Kind() {
	case viewstate.KindSuccess:
		u, _ := s.Value()

		r.line(1, r.section.Sprint(u.Name))
		r.blank()

		r.card("Contact Information", [][2]string{
			{"Email", u.Email},
			{"Phone", u.Phone},
			{"Website", u.Website},
		})
		r.card("Company", [][2]string{
			{"Name", u.Company.Name},
			{"Slogan", u.Company.CatchPhrase},
		})
		r.card("Address", [][2]string{
			{"Street", u.Address.Street},
			{"City", u.Address.City},
			{"Zipcode", u.Address.Zipcode},
		})

	case viewstate.KindError:
		msg, _ := s.Message()
		r.line(1, r.errText.Sprint(msg))

	default:
		r.line(1, r.faint.Sprint(loadingText))
	}
}

// Notice writes a one-line message below the current screen.
func (r *Renderer) Notice(msg string) {
	r.line(0, r.faint.Sprint(msg))
}

func (r *Renderer) header(title string) {
	r.line(0, r.title.Sprint(title))
	r.blank()
}

func (r *Renderer) card(title string, rows [][2]string) {
	r.line(1, r.section.Sprint(title))

	width := lo.Max(lo.Map(rows, func(row [2]string, _ int) int { return len(row[0]) }))
	for _, row := range rows {
		r.line(2, r.label.Sprintf("%-*s", width+1, row[0]+":")+" "+row[1])
	}
	r.blank()
}

func (r *Renderer) line(indent int, text string) {
	_, _ = fmt.Fprintln(r.out, strings.Repeat("  ", indent)+text)
}

func (r *Renderer) blank() {
	_, _ = fmt.Fprintln(r.out)
}
