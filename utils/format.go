package utils

import (
	"fmt"
	"strings"
	"time"
)

// MessageType selects the color a message is printed with.
type MessageType int

// Message types printed by the command line tool.
const (
	DefaultMessage MessageType = iota
	SuccessMessage
	ErrorMessage
	StatusMessage
)

// ANSI escape sequences of the message colors.
const (
	DefaultColor = "\x1b[0m"
	StatusColor  = "\x1b[36m"
	SuccessColor = "\x1b[32m"
	ErrorColor   = "\x1b[31m"
)

// StatusPrefix opens every status line of the tool.
const StatusPrefix = "⚡ KANJISET"

var messageColors = map[MessageType]string{
	DefaultMessage: DefaultColor,
	SuccessMessage: SuccessColor,
	ErrorMessage:   ErrorColor,
	StatusMessage:  StatusColor,
}

// DecorateText wraps s in the color of the message type.
// Unknown message types are returned unchanged.
func DecorateText(s string, msgType MessageType) string {
	color, ok := messageColors[msgType]
	if !ok {
		return s
	}
	return color + s + DefaultColor
}

// StatusLine prefixes the colored parts with the tool's status prefix.
// Parts alternate between text and message type, e.g.
// StatusLine("⇢ done", DefaultMessage, "✔", SuccessMessage).
func StatusLine(parts ...any) string {
	line := []string{DecorateText(StatusPrefix, StatusMessage)}
	for i := 0; i+1 < len(parts); i += 2 {
		text, _ := parts[i].(string)
		msgType, _ := parts[i+1].(MessageType)
		line = append(line, DecorateText(text, msgType))
	}
	return strings.Join(line, " ")
}

// FormatTime formats a duration as days, hours, minutes and seconds,
// omitting the leading units which are zero.
func FormatTime(d time.Duration) string {
	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d.Seconds()

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm %.2fs", days, hours, minutes, seconds)
	case hours > 0:
		return fmt.Sprintf("%dh %dm %.2fs", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm %.2fs", minutes, seconds)
	}
	return fmt.Sprintf("%.2fs", seconds)
}

// FormatProgress formats the number of processed items out of total, together with the completion percentage.
func FormatProgress(done, total int) string {
	if total <= 0 {
		return fmt.Sprintf("%d", done)
	}
	perc := Clamp(done*100/total, 0, 100)
	return fmt.Sprintf("%d/%d (%d%%)", done, total, perc)
}
