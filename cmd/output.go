package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/eykd/dircompat-go/internal/domain"
	"github.com/eykd/dircompat-go/internal/report"
)

// printer writes human-readable results, coloured only when writing to a
// terminal on stdout.
type printer struct {
	w       io.Writer
	header  *color.Color
	problem *color.Color
	ok      *color.Color
}

func newPrinter(w io.Writer, noColor bool) *printer {
	p := &printer{
		w:       w,
		header:  color.New(color.Bold),
		problem: color.New(color.FgRed),
		ok:      color.New(color.FgGreen),
	}
	if noColor || color.NoColor || w != io.Writer(os.Stdout) {
		p.header.DisableColor()
		p.problem.DisableColor()
		p.ok.DisableColor()
	}
	return p
}

// formatCheckHuman writes the summary header, counts, and one line per violation.
func (p *printer) formatCheckHuman(res *CheckResult) {
	p.header.Fprintf(p.w, "Results of checking %s for compatibility issues with %s:\n",
		res.Directory, domain.JoinFilesystems(res.Filesystems))
	fmt.Fprintf(p.w, "Checked %d directories and %d files.\n", res.Walk.Directories, res.Walk.Files)
	for _, v := range res.Walk.Violations {
		p.problem.Fprintln(p.w, v.Message)
	}
	if len(res.Walk.Violations) == 0 {
		p.ok.Fprintln(p.w, "No issues found.")
	}
}

// formatCheckJSON writes the result as a JSON document, handling I/O errors at the boundary.
func formatCheckJSON(w io.Writer, res *CheckResult) {
	doc := report.New(res.Directory, res.Filesystems, res.Walk)
	if err := doc.Encode(w); err != nil {
		fmt.Fprintf(w, "{\"error\":%q}\n", err.Error())
	}
}
