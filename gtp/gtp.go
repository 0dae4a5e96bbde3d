// Package gtp speaks the Go Text Protocol (version 2), mapping its
// commands onto a game.State. It lets the engine talk to GUIs and
// referees like GoGui or gogame servers.
package gtp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jzhangbs/AlphaZero-1/game"
	"github.com/pkg/errors"
)

// Engine wires a game.State to a GTP command loop.
type Engine struct {
	g game.State

	known map[string]Command

	ch  chan string
	ret chan string

	// Generate produces the engine's move for genmove. Nil disables
	// genmove.
	Generate func(g game.State) game.PlayerMove

	// New makes a fresh game for the boardsize command.
	New func(size int) game.State

	name, version string
}

func New(g game.State, name, version string, known map[string]Command) *Engine {
	if known == nil {
		known = StandardLib()
	}
	return &Engine{
		g:       g,
		known:   known,
		name:    name,
		version: version,
	}
}

// Start spins up the command loop. Commands written to input get their
// responses, already formatted per the protocol, on output.
func (e *Engine) Start() (input, output chan string) {
	e.ch = make(chan string)
	e.ret = make(chan string)
	go e.start()
	return e.ch, e.ret
}

// State returns the game the engine is playing on.
func (e *Engine) State() game.State { return e.g }

func (e *Engine) start() {
	for cmd := range e.ch {
		id, x, args, err := e.parse(cmd)
		if x == nil && err == nil {
			continue
		}
		if err != nil {
			e.ret <- handleErr(id, err)
			continue
		}
		id, result, err := x.Do(id, args, e)
		e.ret <- handleResult(id, result, err)
	}
}

// parse splits a line into its optional numeric id, the command and
// its arguments, per the protocol grammar:
// https://www.lysator.liu.se/%7Egunnar/gtp/gtp2-spec-draft2/gtp2-spec.html#SECTION00030000000000000000
func (e *Engine) parse(cmd string) (id int, x Command, args []string, err error) {
	cmd = preprocess(cmd)
	tokens := strings.Fields(cmd)
	if len(tokens) == 0 {
		return -1, nil, nil, nil
	}
	if id, err = strconv.Atoi(tokens[0]); err == nil {
		tokens = tokens[1:]
	} else {
		// the id is optional
		err = nil
		id = -1
	}

	if len(tokens) == 0 {
		// a bare id gets no response, like an empty line
		return id, nil, nil, nil
	}

	var ok bool
	if x, ok = e.known[tokens[0]]; !ok {
		return id, nil, nil, errors.Errorf("Unknown command %q", tokens[0])
	}
	if len(tokens) > 1 {
		args = tokens[1:]
	}
	return
}

func preprocess(a string) string {
	return strings.ToLower(strings.TrimSpace(a))
}

func handleErr(id int, err error) string {
	if id != -1 {
		return fmt.Sprintf("? %d %v\n\n", id, err)
	}
	return fmt.Sprintf("? %v\n\n", err)
}

func handleResult(id int, result string, err error) string {
	if err != nil {
		return handleErr(id, err)
	}

	if id != -1 {
		return fmt.Sprintf("= %d %v\n\n", id, result)
	}
	return fmt.Sprintf("= %v\n\n", result)
}
