package events

// Event subjects
const (
	AnswersSubmitted = "answers.submitted"
)

// Stream settings for answer events
const (
	AnswersStream         = "ANSWERS"
	AnswersStreamSubjects = "answers.>"
)
