package domain

// StatusLabel is the fixed display tuple for a booking status
type StatusLabel struct {
	Text       string `json:"text"`
	ColorClass string `json:"colorClass"`
	Icon       string `json:"icon"`
}

var statusLabels = map[BookingStatus]StatusLabel{
	StatusPending:   {Text: "Ausstehend", ColorClass: "yellow", Icon: "clock"},
	StatusConfirmed: {Text: "Bestätigt", ColorClass: "blue", Icon: "check-circle"},
	StatusActive:    {Text: "Aktiv", ColorClass: "green", Icon: "play-circle"},
	StatusCompleted: {Text: "Abgeschlossen", ColorClass: "gray", Icon: "flag"},
}

// unknownStatusLabel is rendered for any unrecognized status value. The UI
// must never hard-fail on an unexpected status string.
var unknownStatusLabel = StatusLabel{Text: "Unbekannt", ColorClass: "gray", Icon: "help-circle"}

// DeriveStatusLabel maps a booking status to its display tuple. For an
// unrecognized status it returns the neutral "Unbekannt" label and ok=false
// so the caller can log a warning.
func DeriveStatusLabel(status BookingStatus) (label StatusLabel, ok bool) {
	if l, exists := statusLabels[status]; exists {
		return l, true
	}
	return unknownStatusLabel, false
}
