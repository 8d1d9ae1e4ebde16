package ui

import (
	"fmt"
	"strings"

	"colorlife/internal/core"
)

type hudLineKind int

const (
	lineTitle hudLineKind = iota
	lineGroup
	lineParam
)

type hudLine struct {
	kind  hudLineKind
	text  string
	value string
}

// hudLines flattens a parameter snapshot into the rows the HUD paints.
func hudLines(name string, snap core.ParameterSnapshot) []hudLine {
	title := "Parameters"
	if name != "" {
		title = fmt.Sprintf("%s%s Parameters", strings.ToUpper(name[:1]), name[1:])
	}
	lines := []hudLine{{kind: lineTitle, text: title}}
	for _, group := range snap.Groups {
		lines = append(lines, hudLine{kind: lineGroup, text: group.Name})
		for _, p := range group.Params {
			lines = append(lines, hudLine{kind: lineParam, text: p.Label, value: p.Value})
		}
	}
	return lines
}
