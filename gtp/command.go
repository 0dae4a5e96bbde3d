package gtp

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jzhangbs/AlphaZero-1/game"
	"github.com/pkg/errors"
)

type Command interface {
	Do(id int, args []string, e *Engine) (int, string, error)
}

type stdlib func(e *Engine) string

type stdlib2 func(e *Engine, args []string) (string, error)

func (f stdlib) Do(id int, args []string, e *Engine) (int, string, error) {
	str := f(e)
	return id, str, nil
}

func (f stdlib2) Do(id int, args []string, e *Engine) (int, string, error) {
	str, err := f(e, args)
	return id, str, err
}

// handicapPlacer is a State that supports handicap stones.
type handicapPlacer interface {
	PlaceHandicap([]game.Single) error
}

func protocolVersion(e *Engine) string { return "2" }
func name(e *Engine) string            { return e.name }
func version(e *Engine) string         { return e.version }

func listCommands(e *Engine) string {
	var buf bytes.Buffer
	for c := range e.known {
		fmt.Fprintf(&buf, "%v\n", c)
	}
	return buf.String()
}

func quit(e *Engine) string       { close(e.ch); return "QUIT" }
func clearBoard(e *Engine) string { e.g.Reset(); return "" }
func showboard(e *Engine) string  { return fmt.Sprintf("\n%s\n", e.g) }

func finalScore(e *Engine) string {
	black := e.g.Score(game.Player(game.Black))
	white := e.g.Score(game.Player(game.White))
	switch {
	case black > white:
		return fmt.Sprintf("B+%v", black-white)
	case white > black:
		return fmt.Sprintf("W+%v", white-black)
	}
	return "0"
}

func knownCommand(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"known_command\"")
	}
	if _, ok := e.known[args[0]]; ok {
		return "true", nil
	}
	return "false", nil
}

func boardSize(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"boardsize\"")
	}
	size, err := strconv.Atoi(args[0])
	if err != nil {
		return "", errors.WithMessage(err, "Unable to parse first argument of boardsize")
	}
	if e.New == nil {
		return "", errors.New("unacceptable size")
	}
	e.g = e.New(size)
	return "", nil
}

func komi(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"komi\"")
	}

	komi, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return "", errors.WithMessage(err, "Unable to parse komi argument")
	}

	if ks, ok := e.g.(game.KomiSetter); ok {
		ks.SetKomi(komi) // ignore errors because GTP says so. Accept komi even if ridiculous
	}
	return "", nil
}

func play(e *Engine, args []string) (string, error) {
	if len(args) < 2 {
		return "", errors.New("Not enough arguments for \"play\"")
	}
	p, err := parseColour(args[0])
	if err != nil {
		return "", err
	}
	size, _ := e.g.BoardSize()
	s, err := parseVertex(args[1], size)
	if err != nil {
		return "", err
	}
	m := game.PlayerMove{Player: p, Single: s}
	if !e.g.Check(m) {
		return "", errors.New("illegal move")
	}
	e.g = e.g.Apply(m)
	return "", nil
}

func genmove(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"genmove\"")
	}
	if e.Generate == nil {
		return "", errors.New("Unable to generate moves. No generator found")
	}
	p, err := parseColour(args[0])
	if err != nil {
		return "", err
	}
	e.g.SetToMove(p)
	m := e.Generate(e.g)
	m.Player = p
	if !m.Single.IsResignation() {
		e.g = e.g.Apply(m)
	}
	size, _ := e.g.BoardSize()
	return vertexString(m.Single, size), nil
}

func fixedHandicap(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"fixed_handicap\"")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return "", errors.WithMessage(err, "Unable to parse fixed_handicap argument")
	}
	hp, ok := e.g.(handicapPlacer)
	if !ok {
		return "", errors.New("the game does not support handicaps")
	}
	size, _ := e.g.BoardSize()
	stones, err := starPoints(n, size)
	if err != nil {
		return "", err
	}
	if err := hp.PlaceHandicap(stones); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	for i, s := range stones {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(vertexString(s, size))
	}
	return buf.String(), nil
}

// starPoints returns the conventional fixed handicap placement for n
// stones: corners first, then sides, then the centre.
func starPoints(n, size int) ([]game.Single, error) {
	if n < 2 || n > 9 {
		return nil, errors.Errorf("invalid number of stones: %d", n)
	}
	if size < 7 {
		return nil, errors.Errorf("board too small for handicap stones")
	}
	if (n == 5 || n == 7 || n == 9) && size%2 == 0 {
		return nil, errors.Errorf("no centre point on an even board")
	}
	edge := 2
	if size >= 13 {
		edge = 3
	}
	lo, hi, mid := edge, size-1-edge, size/2
	at := func(row, col int) game.Single { return game.Single(row*size + col) }

	corners := []game.Single{at(lo, hi), at(hi, lo), at(hi, hi), at(lo, lo)}
	sides := []game.Single{at(mid, lo), at(mid, hi), at(lo, mid), at(hi, mid)}
	centre := at(mid, mid)

	var retVal []game.Single
	switch n {
	case 2, 3, 4:
		retVal = corners[:n]
	case 5:
		retVal = append(append(retVal, corners...), centre)
	case 6:
		retVal = append(append(retVal, corners...), sides[:2]...)
	case 7:
		retVal = append(append(append(retVal, corners...), sides[:2]...), centre)
	case 8:
		retVal = append(append(retVal, corners...), sides...)
	case 9:
		retVal = append(append(append(retVal, corners...), sides...), centre)
	}
	return retVal, nil
}

func StandardLib() map[string]Command {
	return map[string]Command{
		"protocol_version": stdlib(protocolVersion),
		"name":             stdlib(name),
		"version":          stdlib(version),
		"list_commands":    stdlib(listCommands),
		"quit":             stdlib(quit),
		"clear_board":      stdlib(clearBoard),
		"showboard":        stdlib(showboard),
		"final_score":      stdlib(finalScore),

		"known_command":  stdlib2(knownCommand),
		"boardsize":      stdlib2(boardSize),
		"komi":           stdlib2(komi),
		"play":           stdlib2(play),
		"genmove":        stdlib2(genmove),
		"fixed_handicap": stdlib2(fixedHandicap),
	}
}
