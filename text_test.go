// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package nativeshell

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func visibleFixture(t *testing.T) *fixture {
	t.Helper()
	f := newFixture()
	f.shell.ViewLoaded()
	require.NoError(t, f.shell.BecomeVisible())
	return f
}

func TestInsertByteCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int32
	}{
		{"empty", "", 0},
		{"ascii", "hi", 2},
		{"two byte", "é", 2},
		{"three byte", "日本", 6},
		{"four byte", "🙂", 4},
		{"mixed", "aé🙂", 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := visibleFixture(t)
			require.NoError(t, f.shell.Text.Insert(tt.text))

			texts := f.engine.session.texts
			require.Len(t, texts, 1)
			assert.Equal(t, tt.want, texts[0].Count())
			assert.Equal(t, tt.text, string(texts[0].Bytes))
			assert.False(t, texts[0].Backspace)
		})
	}
}

func TestInsertRejectsInvalidUTF8(t *testing.T) {
	logs := captureLogs(t)
	f := visibleFixture(t)

	err := f.shell.Text.Insert("ok\xffno")
	var encErr *TextEncodingError
	require.True(t, errors.As(err, &encErr))
	assert.Equal(t, 2, encErr.Offset)
	assert.Empty(t, f.engine.session.Calls())
	assert.Contains(t, logs.String(), "text insertion dropped")

	require.NoError(t, f.shell.Text.Insert("next"))
	assert.Equal(t, []string{`text("next", 4)`}, f.engine.session.Calls())
}

func TestBackspacesThenCommit(t *testing.T) {
	f := visibleFixture(t)

	f.shell.Text.DeleteBackward()
	f.shell.Text.DeleteBackward()
	require.NoError(t, f.shell.Text.Insert("hi"))

	assert.Equal(t, []string{"backspace", "backspace", `text("hi", 2)`}, f.engine.session.Calls())
}

func TestTextDroppedWithoutSession(t *testing.T) {
	f := newFixture()
	assert.NoError(t, f.shell.Text.Insert("lost"))
	f.shell.Text.DeleteBackward()
	assert.Nil(t, f.engine.session)
}

func TestKeyboardRequestFromOtherGoroutineRunsOnLoop(t *testing.T) {
	f := newFixture()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- f.loop.Run(ctx) }()

	go f.shell.Text.RequestFocus()
	select {
	case onLoop := <-f.focus.changes:
		assert.True(t, onLoop, "focus change must run on the UI loop thread")
	case <-time.After(2 * time.Second):
		t.Fatal("focus request never reached the UI loop")
	}

	go f.shell.Text.ReleaseFocus()
	select {
	case onLoop := <-f.focus.changes:
		assert.True(t, onLoop)
	case <-time.After(2 * time.Second):
		t.Fatal("blur request never reached the UI loop")
	}

	assert.False(t, f.loop.OnLoop(), "the test goroutine is not the loop")
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestFocusFailureIsLogged(t *testing.T) {
	logs := captureLogs(t)
	f := newFixture()
	f.focus.fail = true

	f.shell.Text.RequestFocus()
	f.loop.Drain()

	assert.False(t, f.focus.Focused())
	assert.Contains(t, logs.String(), "keyboard focus failed")
	assert.Contains(t, logs.String(), errNoWindowFocus.Error())
}

func TestTextEventString(t *testing.T) {
	assert.Equal(t, "backspace", TextEvent{Backspace: true}.String())
	assert.Equal(t, `text("é", 2)`, TextEvent{Bytes: []byte("é")}.String())
}

func TestKeyboardShowSkippedWhenFocused(t *testing.T) {
	f := newFixture()
	f.shell.Text.RequestFocus()
	f.loop.Drain()
	require.True(t, f.focus.Focused())
	require.Len(t, f.focus.changes, 1)

	f.shell.Text.RequestFocus()
	f.loop.Drain()
	assert.Len(t, f.focus.changes, 1, "an already focused target is not refocused")
}
