package console

import (
	"os"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// Progress reports per-item advancement of a long running task. The
// indexer uses it while iterating over font files.
type Progress interface {
	// Add advances the indicator by n items.
	Add(n int)
	// Println writes a message without tearing the indicator.
	Println(args ...interface{})
	// Finish completes the indicator.
	Finish()
}

// NewProgress returns a terminal progress bar when stdout is attached to
// an interactive terminal and a silent no-op implementation otherwise.
func NewProgress(total int, description string) Progress {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return noProgress{}
	}
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWriter(os.Stdout),
		progressbar.OptionClearOnFinish(),
	)
	return &barProgress{bar: bar}
}

type barProgress struct {
	bar *progressbar.ProgressBar
}

func (p *barProgress) Add(n int) {
	p.bar.Add(n)
}

func (p *barProgress) Println(args ...interface{}) {
	progressbar.Bprintln(p.bar, args...)
}

func (p *barProgress) Finish() {
	p.bar.Finish()
}

type noProgress struct{}

func (noProgress) Add(n int) {}

func (noProgress) Println(args ...interface{}) {}

func (noProgress) Finish() {}
