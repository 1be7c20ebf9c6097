package ui

import (
	"fmt"
	"strings"

	"lifelike/internal/core"
)

// Line is one row of HUD text. Headers are drawn brighter than values.
type Line struct {
	Text   string
	Header bool
}

var keyHelp = []string{
	"space  start/pause",
	"n      step once",
	"r      randomize",
	"c      clear",
	"+ -    grid size",
	"e      edit neighbours",
	"[ ]    pattern size",
	"enter  apply pattern",
	"lmb    set alive",
	"rmb    set dead",
	"esc    cancel edit",
	"q      quit",
}

// BuildLines lays out a parameter snapshot followed by the running state and
// the key help.
func BuildLines(title string, snap core.ParameterSnapshot, running bool) []Line {
	lines := []Line{{Text: title, Header: true}}
	for _, g := range snap.Groups {
		lines = append(lines, Line{}, Line{Text: strings.ToUpper(g.Name), Header: true})
		for _, p := range g.Params {
			lines = append(lines, Line{Text: fmt.Sprintf("%-11s %s", p.Label, p.Value)})
		}
	}
	state := "paused"
	if running {
		state = "running"
	}
	lines = append(lines, Line{}, Line{Text: "STATE " + state, Header: true}, Line{})
	for _, h := range keyHelp {
		lines = append(lines, Line{Text: h})
	}
	return lines
}
