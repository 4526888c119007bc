package panicguard

import (
	"github.com/sourcegraph/conc/panics"
)

// Guard runs the callback with a double defer sandwich and recovers from panics.
// If the callback returns normally, it returns nil.
// If the callback panics, it returns the recovered panic value as a *panics.ErrRecovered.
// If the callback calls runtime.Goexit, it returns nil.
func Guard(f func()) (err error) {
	var (
		normalReturn bool
		recovered    bool
		panicValue   panics.Recovered
	)
	defer func() {
		switch {
		case normalReturn:
			return
		case recovered:
			err = panicValue.AsError()
		}
	}()
	func() {
		defer func() {
			panicValue = panics.NewRecovered(2, recover())
		}()
		f()
		normalReturn = true
	}()
	if !normalReturn {
		recovered = true
	}
	return
}
