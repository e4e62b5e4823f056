package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// Finalizer restores the display before a crash report is printed
type Finalizer interface {
	Close() error
}

var (
	crashMu        sync.Mutex
	crashFinalizer Finalizer
)

// SetCrashFinalizer registers the display to restore on a crash; nil clears it
func SetCrashFinalizer(f Finalizer) {
	crashMu.Lock()
	crashFinalizer = f
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler: restore the display, print the
// panic value with its stack trace and exit
func HandleCrash(r any) {
	if r == nil {
		return
	}
	crashReport(os.Stderr, r, debug.Stack())
	os.Exit(1)
}

func crashReport(w io.Writer, r any, stack []byte) {
	crashMu.Lock()
	f := crashFinalizer
	crashMu.Unlock()
	if f != nil {
		_ = f.Close()
	}

	fmt.Fprintf(w, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(w, "Stack Trace:\n%s\n", stack)
}

// Go runs fn in a new goroutine with panic recovery
// Use this instead of the 'go' keyword so the terminal is restored on crash
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
