package entity

import (
	"time"
)

// Email Process Status
const (
	StatusPending    = "PENDING"
	StatusProcessing = "PROCESSING"
	StatusCompleted  = "COMPLETED"
	StatusFailed     = "FAILED"
	StatusSkipped    = "SKIPPED"
)

// Email represents an email message from Gmail
type Email struct {
	EmailID          string    `bson:"emailId"`
	From             string    `bson:"from"`
	To               string    `bson:"to"`
	Subject          string    `bson:"subject"`
	Body             string    `bson:"body"`
	HTMLBody         string    `bson:"htmlBody"`
	ReceivedAt       time.Time `bson:"receivedAt"`
	Labels           []string  `bson:"labels"`
	ProcessedAt      time.Time `bson:"processedAt"`
	ProcessStatus    string    `bson:"processStatus"`
	ProcessorType    string    `bson:"processorType"`
	ProcessStartedAt time.Time `bson:"processStartedAt"`
	ErrorDetail      string    `bson:"errorDetail"`
	QuoteID          string    `bson:"quoteId,omitempty"`
}

// Text returns the body the quotation parser should read. Plain text wins;
// an HTML-only message yields its raw HTML.
func (e *Email) Text() string {
	if e.Body != "" {
		return e.Body
	}
	return e.HTMLBody
}
