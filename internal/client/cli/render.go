package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/userdesk/internal/client/models"
	"github.com/dmitrijs2005/userdesk/internal/client/services"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	idStyle      = lipgloss.NewStyle().Width(5).Align(lipgloss.Right).PaddingRight(1)
	nameStyle    = lipgloss.NewStyle().Width(24)
	emailStyle   = lipgloss.NewStyle().Width(32)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	currentStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
)

func userRow(id, name, email string, style lipgloss.Style) string {
	return style.Render(lipgloss.JoinHorizontal(lipgloss.Top,
		idStyle.Render(id), nameStyle.Render(name), emailStyle.Render(email)))
}

// renderUsers writes the collection view: the filtered users of the held
// page, then the pagination bar.
func renderUsers(w io.Writer, s services.Snapshot) {
	if s.Err != "" {
		fmt.Fprintln(w, errorStyle.Render(s.Err))
		fmt.Fprintln(w, mutedStyle.Render("Type 'refresh' to try again."))
		return
	}

	title := fmt.Sprintf("Users: page %d of %d, %d total", s.Page.Page, s.Page.TotalPages, s.Page.Total)
	if s.Stale {
		title += " (before deletions, 'refresh' to update)"
	}
	fmt.Fprintln(w, headerStyle.Render(title))

	if strings.TrimSpace(s.Query) != "" {
		fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("Search %q: %d of %d on this page", s.Query, len(s.Filtered), len(s.Page.Users))))
	}

	if len(s.Filtered) == 0 {
		fmt.Fprintln(w, "No users found")
	} else {
		fmt.Fprintln(w, userRow("ID", "Name", "Email", headerStyle))
		for _, u := range s.Filtered {
			fmt.Fprintln(w, userRow(strconv.Itoa(u.ID), u.FullName(), u.Email, lipgloss.NewStyle()))
		}
	}

	if bar := pageBar(s.Page.Page, s.Page.TotalPages); bar != "" {
		fmt.Fprintln(w, bar)
	}
}

// pageBar renders the page-number window, marking the current page.
func pageBar(current, total int) string {
	pages := models.PageWindow(current, total, models.DefaultPageWindow)
	if len(pages) == 0 {
		return ""
	}

	parts := make([]string, 0, len(pages)+2)
	if current > 1 {
		parts = append(parts, "< prev")
	}
	for _, p := range pages {
		if p == current {
			parts = append(parts, currentStyle.Render("["+strconv.Itoa(p)+"]"))
			continue
		}
		parts = append(parts, strconv.Itoa(p))
	}
	if current < total {
		parts = append(parts, "next >")
	}
	return strings.Join(parts, " ")
}

// renderUser writes the read-only header of the edit view.
func renderUser(w io.Writer, u models.User) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Edit user #%d: %s", u.ID, u.FullName())))
	if u.Avatar != "" {
		fmt.Fprintln(w, mutedStyle.Render("Avatar: "+u.Avatar))
	}
}

func renderFieldErrors(w io.Writer, errs models.FieldErrors) {
	for _, f := range editFields {
		if msg, ok := errs[f.name]; ok {
			fmt.Fprintln(w, errorStyle.Render("  "+f.label+": "+msg))
		}
	}
}
