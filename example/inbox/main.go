// Command inbox demonstrates swipeable list rows on a generated mailbox.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"git.sr.ht/~gioverse/swipe/machine"
	"git.sr.ht/~gioverse/swipe/profile"
)

var (
	// profileOpt specifies what to profile.
	profileOpt string
	// profileDir is where runtime profiles are written.
	profileDir string
	// mails is how many messages to generate.
	mails int
	// reveal and commit are the row thresholds, as fractions of the
	// revealed width.
	reveal, commit float64
	thresholds     machine.Thresholds
)

func init() {
	flag.StringVar(&profileOpt, "profile", "none", fmt.Sprintf("create the provided kind of profile. Use one of %v", profile.Options()))
	flag.StringVar(&profileDir, "profile-dir", "", "directory to write runtime profiles into (default: a temporary directory)")
	flag.IntVar(&mails, "mails", 40, "number of messages to generate")
	flag.Float64Var(&reveal, "reveal", float64(machine.DefaultThresholds.Reveal), "fraction of the buttons' width a drag must pass to stay open")
	flag.Float64Var(&commit, "commit", float64(machine.DefaultThresholds.Commit), "fraction of the buttons' width a drag must pass to commit the outermost button")
}

func main() {
	flag.Parse()
	thresholds = machine.Thresholds{Reveal: float32(reveal), Commit: float32(commit)}
	opt, err := profile.Parse(profileOpt)
	if err != nil {
		log.Fatalf("parsing flags: %v", err)
	}
	if err := thresholds.Validate(); err != nil {
		log.Fatalf("parsing flags: %v", err)
	}
	if err := validateMails(mails); err != nil {
		log.Fatalf("parsing flags: %v", err)
	}
	go func() {
		w := app.NewWindow(
			app.Title("Inbox"),
			app.Size(unit.Dp(420), unit.Dp(720)),
		)
		if err := run(w, opt); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	// Surrender main thread to OS.
	// Necessary for certain platforms.
	app.Main()
}

func run(w *app.Window, opt profile.Opt) error {
	session, err := profile.Start(opt, profileDir)
	if err != nil {
		return fmt.Errorf("profiling: %w", err)
	}
	defer session.Stop()
	var (
		ops op.Ops
		ui  = NewUI(Generate(mails), w.Invalidate)
	)
	for event := range w.Events() {
		switch event := event.(type) {
		case system.DestroyEvent:
			if err := event.Err; err != nil {
				return fmt.Errorf("premature window close: %w", err)
			}
			return nil
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, event)
			session.Frame(gtx)
			ui.Layout(gtx)
			event.Frame(&ops)
		}
	}
	return nil
}

// validateMails rejects a message count Generate cannot produce.
func validateMails(n int) error {
	if n < 0 {
		return fmt.Errorf("-mails must not be negative, got %d", n)
	}
	return nil
}
