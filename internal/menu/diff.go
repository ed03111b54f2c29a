package menu

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// LineDiff computes a line based diff between two texts
func LineDiff(before, after string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	chars1, chars2, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(chars1, chars2, false)
	return dmp.DiffCharsToLines(diffs, lineArray)
}

// Render formats changes as a unified style diff, one file header per change
func Render(changes []Change) string {
	var b strings.Builder
	for _, c := range changes {
		if c.Before == c.After {
			continue
		}
		from, to := c.Target, c.Target
		if c.Before == "" {
			from = "/dev/null"
		}
		if c.Action == ActionRemove {
			to = "/dev/null"
		}
		fmt.Fprintf(&b, "--- %s\n+++ %s\n", from, to)

		for _, d := range LineDiff(c.Before, c.After) {
			prefix := " "
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				prefix = "+"
			case diffmatchpatch.DiffDelete:
				prefix = "-"
			}
			for _, line := range splitLines(d.Text) {
				b.WriteString(prefix + line + "\n")
			}
		}
	}
	return b.String()
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
