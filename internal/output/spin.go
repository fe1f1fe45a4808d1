package output

import (
	"time"

	"github.com/briandowns/spinner"
)

// Spin runs fn behind a progress spinner. The spinner only indicates that the
// external tool is still running; fn's result is reported by the caller. In
// quiet mode fn runs bare.
func Spin(msg string, quiet bool, fn func() error) error {
	if quiet {
		return fn()
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + msg
	s.Start()
	defer s.Stop()
	return fn()
}
