// Package profile starts and stops either a runtime profile from pkg/profile
// or a Gio frame timing recording behind one flag value.
package profile

import (
	"fmt"
	"log"
	"strings"

	"gioui.org/layout"
	"gioui.org/x/profiling"
	"github.com/pkg/profile"
)

// Opt names a kind of profile.
type Opt string

const (
	None      Opt = "none"
	CPU       Opt = "cpu"
	Memory    Opt = "mem"
	Block     Opt = "block"
	Goroutine Opt = "goroutine"
	Mutex     Opt = "mutex"
	Trace     Opt = "trace"
	Gio       Opt = "gio"
)

// modes maps the runtime profiles to their pkg/profile mode.
var modes = map[Opt]func(*profile.Profile){
	CPU:       profile.CPUProfile,
	Memory:    profile.MemProfile,
	Block:     profile.BlockProfile,
	Goroutine: profile.GoroutineProfile,
	Mutex:     profile.MutexProfile,
	Trace:     profile.TraceProfile,
}

// Options lists every accepted Opt, for flag usage strings.
func Options() []Opt {
	return []Opt{None, CPU, Memory, Block, Goroutine, Mutex, Trace, Gio}
}

// Parse an Opt from its name. The empty string means None.
func Parse(s string) (Opt, error) {
	opt := Opt(strings.ToLower(strings.TrimSpace(s)))
	if opt == "" {
		return None, nil
	}
	for _, known := range Options() {
		if opt == known {
			return opt, nil
		}
	}
	return None, fmt.Errorf("unknown profile %q", s)
}

// Session is a running profile. The zero value profiles nothing, and
// a nil *Session is safe to use.
type Session struct {
	Opt      Opt
	stop     func()
	recorder *profiling.CSVTimingRecorder
}

// Start profiling with opt, writing runtime profiles into dir. An empty dir
// lets pkg/profile pick a temporary directory.
func Start(opt Opt, dir string) (*Session, error) {
	s := &Session{Opt: opt}
	switch opt {
	case "", None:
	case Gio:
		recorder, err := profiling.NewRecorder(nil)
		if err != nil {
			return nil, fmt.Errorf("starting frame recorder: %w", err)
		}
		s.recorder = recorder
	default:
		mode, ok := modes[opt]
		if !ok {
			return nil, fmt.Errorf("unknown profile %q", opt)
		}
		options := []func(*profile.Profile){mode, profile.NoShutdownHook}
		if dir != "" {
			options = append(options, profile.ProfilePath(dir))
		}
		s.stop = profile.Start(options...).Stop
	}
	return s, nil
}

// Frame records the timings of the current frame when recording Gio profiles.
func (s *Session) Frame(gtx layout.Context) {
	if s == nil || s.recorder == nil {
		return
	}
	s.recorder.Profile(gtx)
}

// Stop the profile, flushing it to disk. Stop is idempotent.
func (s *Session) Stop() {
	if s == nil {
		return
	}
	if s.stop != nil {
		s.stop()
		s.stop = nil
	}
	if s.recorder != nil {
		if err := s.recorder.Stop(); err != nil {
			log.Printf("stopping frame recorder: %v", err)
		}
		s.recorder = nil
	}
}
