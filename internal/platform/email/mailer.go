package email

// Mailer delivers messages to users. Sends are synchronous; a failed send is
// reported to the caller, never retried here.
type Mailer interface {
	SendPlain(to []string, subject, body string) error
	SendHTML(to []string, subject, body string) error
}
