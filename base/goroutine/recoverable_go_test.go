package goroutine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecoverableGoPanic(t *testing.T) {
	res := []string{}

	ev := <-RecoverableGo(
		func() {
			res = append(res, "run task")
			panic("boom")
		},
		WithName("test"),
		WithBeforeStart(func() {
			res = append(res, "before start")
		}),
		WithAfterEnded(func() {
			res = append(res, "after ended")
		}),
		WithAfterRecovered(func(p interface{}, stack []byte) {
			res = append(res, "after recovered", p.(string))
		}),
	)

	assert.Equal(t, []string{
		"before start",
		"run task",
		"after ended",
		"after recovered",
		"boom",
	}, res)
	if assert.NotNil(t, ev) {
		assert.Equal(t, "boom", ev.Panic)
		assert.NotEmpty(t, ev.Stack)
	}
}

func TestRecoverableGoNormalExit(t *testing.T) {
	done := false
	ev, ok := <-RecoverableGo(func() { done = true })
	assert.True(t, done)
	assert.False(t, ok)
	assert.Nil(t, ev)
}
