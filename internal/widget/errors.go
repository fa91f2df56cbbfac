package widget

import (
	"errors"
	"fmt"
)

// ErrNoTableAvailable means no free table seats the party at the chosen time.
var ErrNoTableAvailable = errors.New("no suitable table available")

const (
	msgRequired    = "Bitte füllen Sie alle Pflichtfelder aus."
	msgEmail       = "Bitte geben Sie eine gültige E-Mail-Adresse ein."
	msgPrivacy     = "Bitte akzeptieren Sie die Datenschutzerklärung."
	msgGuests      = "Bitte wählen Sie die Anzahl der Personen."
	msgDate        = "Bitte wählen Sie ein gültiges Datum."
	msgPast        = "Reservierungen sind nur für heute oder später möglich."
	msgWindow      = "Reservierungen sind höchstens %d Monate im Voraus möglich."
	msgClosed      = "An diesem Tag haben wir leider geschlossen. Bitte wählen Sie Donnerstag bis Sonntag."
	msgTime        = "Bitte wählen Sie eine der angebotenen Uhrzeiten."
	MsgNoTable     = "Leider ist zu diesem Zeitpunkt kein passender Tisch verfügbar. Bitte wählen Sie eine andere Uhrzeit."
	MsgDemoWarning = "Ihre Reservierung konnte nicht übermittelt werden. Bitte kontaktieren Sie uns telefonisch oder per E-Mail."
)

// ValidationError names the offending form field and carries the message
// shown to the guest.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
