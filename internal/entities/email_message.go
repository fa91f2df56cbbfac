package entities

type EmailMessage struct {
	ToAddress       string
	ToName          string
	Subject         string
	PlainBody       string
	HTMLBody        string
	SaveToSentItems bool
}
