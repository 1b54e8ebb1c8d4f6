package email

import (
	"fmt"
	"time"
)

// DateLayout is the format of Record.Date.
const DateLayout = "2006-01-02"

// shortBodyLen is the number of body characters kept in ShortBody.
const shortBodyLen = 10

// Record is a single sent email with its derived display fields.
type Record struct {
	Sender       string
	Recipient    string
	Subject      string
	Body         string
	Date         string
	MaskedSender string
	ShortBody    string
	SentText     string
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// NewRecord creates a record with only the base fields set.
func NewRecord(sender, recipient, subject, body string) *Record {
	return &Record{
		Sender:    sender,
		Recipient: recipient,
		Subject:   subject,
		Body:      body,
	}
}

// StampDate sets rec.Date to the clock's current date and returns rec.
// A nil clock falls back to SystemClock.
func StampDate(rec *Record, clock Clock) *Record {
	if clock == nil {
		clock = SystemClock
	}
	rec.Date = clock.Now().Format(DateLayout)
	return rec
}

// AddShortBody sets rec.ShortBody to the first ten characters of the body
// followed by "..." and returns rec. Body is left as is.
func AddShortBody(rec *Record) *Record {
	runes := []rune(rec.Body)
	if len(runes) > shortBodyLen {
		runes = runes[:shortBodyLen]
	}
	rec.ShortBody = string(runes) + "..."
	return rec
}

// RenderSentText renders the three-line display text of rec:
//
//	To: {recipient}, from {sender}
//	Subject: {subject}, date {date}
//	{short body}
//
// Unset fields render as empty strings.
func RenderSentText(rec *Record) string {
	if rec == nil {
		rec = &Record{}
	}
	return fmt.Sprintf("To: %s, from %s\nSubject: %s, date %s\n%s",
		rec.Recipient, rec.Sender,
		rec.Subject, rec.Date,
		rec.ShortBody,
	)
}
