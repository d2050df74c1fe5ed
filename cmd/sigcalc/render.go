// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"golang.org/x/term"

	"github.com/invowk/sigcli/internal/config"
	"github.com/invowk/sigcli/internal/issue"
)

// renderError writes err to w. Usage errors get a pointer to --help; in
// verbose mode the matching issue guidance is rendered below the message.
func renderError(w io.Writer, err error, verbose bool, scheme config.ColorScheme) {
	fmt.Fprintln(w, ErrorStyle.Render("Error:")+" "+formatErrorForDisplay(err, verbose))

	id, known := issue.ForError(err)
	if classify(err) == ExitUsage {
		fmt.Fprintln(w, HintStyle.Render("Run ")+CmdStyle.Render(config.AppName+" --help")+HintStyle.Render(" for usage."))
	}

	if !verbose {
		return
	}
	if !known {
		id = issue.HandlerFailedId
	}
	renderIssue(w, id, scheme)
}

// renderIssue writes the catalog guidance for id, styled for w.
func renderIssue(w io.Writer, id issue.Id, scheme config.ColorScheme) {
	entry := issue.Get(id)
	if entry == nil {
		return
	}
	out, err := entry.Render(glamourStyle(w, scheme))
	if err != nil {
		return
	}
	fmt.Fprint(w, out)
}

// glamourStyle returns "notty" unless w is a terminal, in which case the
// configured color scheme names the glamour style.
func glamourStyle(w io.Writer, scheme config.ColorScheme) string {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return "notty"
	}
	return string(scheme)
}
