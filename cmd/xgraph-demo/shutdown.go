package main

import (
	"sync"

	"github.com/xlab/closer"
)

// closeRequester is the part of *glfw.Window the interrupt path touches.
// glfw allows SetShouldClose and PostEmptyEvent from any thread.
type closeRequester interface {
	SetShouldClose(value bool)
}

// shutdown hands a close request from closer's signal goroutine to the main
// thread. GL and glfw objects are only released by teardown on the locked
// main thread; the interrupt hook just asks the loop to stop and waits.
type shutdown struct {
	mu       sync.Mutex
	window   closeRequester
	wake     func()
	quit     bool
	finished bool
	cleanups []func()
	done     chan struct{}
}

func newShutdown(wake func()) *shutdown {
	return &shutdown{wake: wake, done: make(chan struct{})}
}

// onTeardown registers f to run during teardown, last registered first.
func (s *shutdown) onTeardown(f func()) {
	s.mu.Lock()
	s.cleanups = append(s.cleanups, f)
	s.mu.Unlock()
}

func (s *shutdown) setWindow(w closeRequester) {
	s.mu.Lock()
	s.window = w
	s.mu.Unlock()
}

// requested reports whether an interrupt asked the loop to stop.
func (s *shutdown) requested() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quit
}

// interrupt is bound to closer. It runs on closer's goroutine and blocks
// until teardown has finished, so closer only exits the process afterwards.
func (s *shutdown) interrupt() {
	s.mu.Lock()
	s.quit = true
	if !s.finished && s.window != nil {
		s.window.SetShouldClose(true)
		if s.wake != nil {
			s.wake()
		}
	}
	s.mu.Unlock()
	<-s.done
}

// teardown runs the registered cleanups once, on the calling thread, and
// then releases any pending interrupt.
func (s *shutdown) teardown() {
	s.mu.Lock()
	if s.finished {
		s.mu.Unlock()
		return
	}
	s.finished = true
	s.window = nil
	cleanups := s.cleanups
	s.cleanups = nil
	s.mu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
	close(s.done)
}

// fatalf tears down on the main thread and then exits through closer.
func (s *shutdown) fatalf(format string, v ...any) {
	s.teardown()
	closer.Fatalf(format, v...)
}
