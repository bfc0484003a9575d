package constvars

const (
	EmailBasicFormat = "To: %s\r\nSubject: %s\r\n\r\n%s\r\n"

	EmailDecisionSubjectFormat = "Your appointment request was %s"
)
