package domain

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// LineupEmailSet is one line of the shared schedule summary.
type LineupEmailSet struct {
	ArtistName string
	StartTime  string
	EndTime    string
}

// LineupEmailStage groups a stage's sets in running order.
type LineupEmailStage struct {
	Name string
	Sets []LineupEmailSet
}

// LineupEmailData holds data for the lineup summary email.
type LineupEmailData struct {
	EventName string
	EventDate string
	Stages    []LineupEmailStage
}

// LineupEmailRenderer renders the summary email from lineup data.
type LineupEmailRenderer interface {
	Render(data *LineupEmailData) (subject, htmlBody, textBody string, err error)
}
