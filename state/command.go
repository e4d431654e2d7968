package state

import (
	"strconv"
	"strings"
)

type command struct {
	name string
	arg  string
}

var aliases = map[string]string{
	"v": "ls",
	"s": "start",
	"p": "play",
	"d": "draw",
	"c": "color",
	"e": "exit",
	"h": "hand",
}

// parseCommand splits a line into a lowercase command name and its argument.
func parseCommand(line string) command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return command{}
	}
	name := strings.ToLower(fields[0])
	if full, ok := aliases[name]; ok {
		name = full
	}
	return command{name: name, arg: strings.Join(fields[1:], " ")}
}

func (c command) intArg() (int, bool) {
	n, err := strconv.Atoi(c.arg)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (c command) int64Arg() (int64, bool) {
	n, err := strconv.ParseInt(c.arg, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
