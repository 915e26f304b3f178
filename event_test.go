package fwatch

import (
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
)

func TestTransitionOp(t *testing.T) {
	assert.Equal(t, fsnotify.Create, TransitionCreated.Op())
	assert.Equal(t, fsnotify.Write, TransitionModified.Op())
	assert.Equal(t, fsnotify.Remove, TransitionDeleted.Op())
	assert.Equal(t, fsnotify.Op(0), TransitionNone.Op())
}

func TestWatcherEvents(t *testing.T) {
	w := NewWatcher[*stubTarget]()
	a := &stubTarget{path: "a", state: DoesNotExistState()}
	b := &stubTarget{path: "b", state: ExistsWith("1")}
	c := &stubTarget{path: "c", state: ExistsWith("1")}
	w.AddTarget(a)
	w.AddTarget(b)
	w.AddTarget(c)

	a.state = ExistsWith("1")
	c.state = DoesNotExistState()

	events := w.Events(w.Watch())
	assert.Equal(t, []fsnotify.Event{
		{Name: "a", Op: fsnotify.Create},
		{Name: "c", Op: fsnotify.Remove},
	}, events)

	assert.Empty(t, w.Events(w.Watch()))
	assert.Empty(t, w.Events([]Transition{TransitionNone, TransitionNone, TransitionNone, TransitionCreated}))
}
