package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	s := string(a.Mode())
	if a.study.Offline() {
		s += ", read-only"
	}
	if view := a.study.ViewDate(); view != a.study.Today() {
		s = fmt.Sprintf("%s, viewing %s", s, view)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) prompt() string {
	if !a.interactive {
		return ""
	}
	return fmt.Sprintf("mnemos %s> ", a.getStatus())
}

// Root prints the study list for today and runs the REPL until the user
// exits.
func (a *App) Root(ctx context.Context) {
	if a.interactive {
		fmt.Fprintln(a.out, "Welcome to Mnemos (type 'help' for commands)")
	}
	if err := a.Due(ctx, nil); err != nil {
		printlnFn("Error:", a.describeError(err))
	}
	runREPL(ctx, a, a.prompt, a.reader)
}
