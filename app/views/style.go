package views

import "taskboard/app/models"

// Style is the status icon of a task card.
type Style struct {
	Icon  string
	Glyph string
	Color string
}

// StyleFor maps a status to its icon. Unknown statuses, including
// "In Progress", get the default bullseye.
func StyleFor(status models.Status) Style {
	switch status {
	case models.StatusCompleted:
		return Style{Icon: "circle-check", Glyph: "✔", Color: "green"}
	case models.StatusNotStarted:
		return Style{Icon: "circle", Glyph: "○", Color: "amber"}
	default:
		return Style{Icon: "bullseye", Glyph: "◎", Color: "blue"}
	}
}

// badgeColor is the color of the status badge. It differs from the icon
// mapping: unknown statuses fall back to amber here.
func badgeColor(status models.Status) string {
	switch status {
	case models.StatusCompleted:
		return "green"
	case models.StatusInProgress:
		return "blue"
	default:
		return "amber"
	}
}
