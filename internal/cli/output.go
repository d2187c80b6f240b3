package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vvka-141/userdb/internal/tui"
	"github.com/vvka-141/userdb/pkg/userdb"
)

// userView is the JSON shape for a user row.
type userView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toView(u *userdb.User) userView {
	return userView{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
	}
}

// printJSON writes indented JSON to w for pipeline consumption.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderUser writes a single user in the human-readable format.
func renderUser(w io.Writer, u *userdb.User) {
	fmt.Fprintf(w, "%s %s\n", tui.MutedStyle.Render("ID:   "), u.ID)
	fmt.Fprintf(w, "%s %s\n", tui.MutedStyle.Render("Name: "), u.Name)
	fmt.Fprintf(w, "%s %s\n", tui.MutedStyle.Render("Email:"), u.Email)
}

// renderUserTable writes users as an aligned table with a styled header.
func renderUserTable(w io.Writer, users []userdb.User) {
	if len(users) == 0 {
		fmt.Fprintln(w, tui.MutedStyle.Render("No users found."))
		return
	}

	nameWidth := len("NAME")
	for _, u := range users {
		if len(u.Name) > nameWidth {
			nameWidth = len(u.Name)
		}
	}

	header := fmt.Sprintf("%-36s  %-*s  %s", "ID", nameWidth, "NAME", "EMAIL")
	fmt.Fprintln(w, tui.HeaderStyle.Render(header))
	for _, u := range users {
		fmt.Fprintf(w, "%-36s  %-*s  %s\n", u.ID, nameWidth, u.Name, u.Email)
	}
	fmt.Fprintln(w, tui.MutedStyle.Render(fmt.Sprintf("%d user(s)", len(users))))
}

// success prints a check-marked confirmation line.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", tui.SuccessStyle.Render(tui.SymbolCheck), fmt.Sprintf(format, args...))
}
