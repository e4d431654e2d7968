package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	scenarios := []struct {
		line     string
		expected command
	}{
		{"", command{}},
		{"   ", command{}},
		{"ls", command{name: "ls"}},
		{"V", command{name: "ls"}},
		{"p 3", command{name: "play", arg: "3"}},
		{"PLAY   12", command{name: "play", arg: "12"}},
		{"d", command{name: "draw"}},
		{"c Blue", command{name: "color", arg: "Blue"}},
		{"join 7", command{name: "join", arg: "7"}},
		{"hello there friends", command{name: "hello", arg: "there friends"}},
	}
	for _, scenario := range scenarios {
		t.Run(scenario.line, func(t *testing.T) {
			assert.Equal(t, scenario.expected, parseCommand(scenario.line))
		})
	}
}

func TestIntArg(t *testing.T) {
	n, ok := parseCommand("play 4").intArg()
	assert.True(t, ok)
	assert.Equal(t, 4, n)

	_, ok = parseCommand("play four").intArg()
	assert.False(t, ok)

	id, ok := parseCommand("join 42").int64Arg()
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)
}
