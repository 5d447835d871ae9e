package kanjiset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/esimov/kanjiset/utils"
	"golang.org/x/term"
)

// Ops holds the locations the dataset is generated from and into.
type Ops struct {
	OutputDir   string
	DictPath    string
	StrokesPath string
}

// Validate checks that the output directory is set and the source files are regular files.
func (op *Ops) Validate() error {
	if op.OutputDir == "" {
		return errors.New("please provide an output directory")
	}
	for _, src := range []string{op.DictPath, op.StrokesPath} {
		fs, err := os.Stat(src)
		if err != nil {
			return fmt.Errorf("failed to load the source file: %w", err)
		}
		if !fs.Mode().IsRegular() {
			return fmt.Errorf("%s is not a regular file", src)
		}
	}
	return nil
}

// Execute loads both sources and generates the dataset into op.OutputDir,
// reporting the progress on w. The spinner is shown only when w is a terminal.
func (p *Processor) Execute(op *Ops, w io.Writer) (Stats, error) {
	if err := op.Validate(); err != nil {
		return Stats{}, err
	}
	p.OutputDir = op.OutputDir
	now := time.Now()

	meanings, err := LoadMeanings(op.DictPath)
	if err != nil {
		return Stats{}, err
	}
	strokes, err := LoadStrokes(op.StrokesPath)
	if err != nil {
		return Stats{}, err
	}
	fmt.Fprintln(w, utils.StatusLine(
		fmt.Sprintf("⇢ %d stroke entries, %d characters with meanings", strokes.Len(), meanings.Len()), utils.DefaultMessage,
	))

	if p.Spinner == nil && isTerminal(w) {
		msg := utils.StatusLine("⇢ rendering glyphs...", utils.DefaultMessage)
		p.Spinner = utils.NewSpinnerWriter(w, msg, time.Millisecond*80, true)
		defer func() { p.Spinner = nil }()
	}

	if spinner := p.Spinner; spinner != nil {
		// Capture CTRL-C signal and restores back the cursor visibility.
		signalChan := make(chan os.Signal, 1)
		signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
		done := make(chan struct{})
		defer func() {
			signal.Stop(signalChan)
			close(done)
		}()
		go watchInterrupt(spinner, signalChan, done)

		spinner.Start()
	}

	stats, err := p.Process(strokes, meanings)

	if p.Spinner != nil {
		if err != nil {
			p.Spinner.StopMsg = utils.StatusLine(
				"generating the dataset failed...", utils.DefaultMessage,
				"✘", utils.ErrorMessage,
			) + "\n"
		} else {
			p.Spinner.StopMsg = utils.StatusLine(
				"⇢", utils.DefaultMessage,
				"the dataset has been generated successfully ✔", utils.SuccessMessage,
			) + "\n"
		}
		p.Spinner.Stop()
	}
	if err != nil {
		return stats, err
	}

	fmt.Fprintf(w, "\nRendered %s characters (%d skipped) into: %s\n",
		utils.DecorateText(fmt.Sprintf("%d", stats.Rendered), utils.SuccessMessage),
		stats.Skipped,
		utils.DecorateText(op.OutputDir, utils.SuccessMessage),
	)
	fmt.Fprintf(w, "Execution time: %s\n", utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))

	return stats, nil
}

// watchInterrupt restores the cursor and exits on the first signal received.
// It returns once done is closed.
func watchInterrupt(spinner *utils.Spinner, signals <-chan os.Signal, done <-chan struct{}) {
	select {
	case <-signals:
		spinner.RestoreCursor()
		os.Exit(1)
	case <-done:
	}
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
