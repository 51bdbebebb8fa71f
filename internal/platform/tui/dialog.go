package tui

import (
	"fmt"

	"github.com/vovakirdan/tile-snake/internal/core"
)

// noticeLines returns the dialog body and the button hint for a notice.
func noticeLines(n *core.Notice) (body []string, buttons string) {
	switch n.Kind {
	case core.NoticePaused:
		return []string{"Paused!"}, "[ OK: Enter ]"
	case core.NoticeTampered:
		return []string{"Hacker!!!!"}, "[ OK: Enter ]"
	case core.NoticeGameOver:
		body = []string{fmt.Sprintf("Game Over! Final Score: %d", n.Score)}
		if n.Reason != "" {
			body = append(body, "("+n.Reason+")")
		}
		switch {
		case n.Rank > 0:
			body = append(body, fmt.Sprintf("New high score: #%d", n.Rank))
		case !n.Verified:
			body = append(body, "Score not recorded")
		}
		body = append(body, "Play again?")
		return body, "[ Yes: y ]  [ No: n ]"
	}
	return nil, ""
}

// drawNotice draws a centered dialog box for n onto s.
func drawNotice(s *core.Screen, n *core.Notice) {
	body, buttons := noticeLines(n)
	if body == nil {
		return
	}

	width := len([]rune(buttons))
	for _, line := range body {
		width = max(width, len([]rune(line)))
	}
	width += 4
	height := len(body) + 4

	box := core.NewRect((s.Width()-width)/2, (s.Height()-height)/2, width, height)
	s.DrawRect(box, ' ')
	s.DrawBox(box)

	color := core.ColorBrightWhite
	if n.Kind == core.NoticeTampered {
		color = core.ColorBrightRed
	}
	for i, line := range body {
		x := box.X + (width-len([]rune(line)))/2
		s.DrawColorText(x, box.Y+1+i, line, color)
	}
	x := box.X + (width-len([]rune(buttons)))/2
	s.DrawColorText(x, box.Bottom()-2, buttons, core.ColorBrightYellow)
}
