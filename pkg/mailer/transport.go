package mailer

// Message is a single composed notification awaiting dispatch
type Message struct {
	Recipient string
	Subject   string
	Body      string
}

// Transport defines the interface for sending a single mail message.
// Implementations are responsible for bounding the duration of a send;
// the batcher treats a timed-out send as a per-recipient failure.
type Transport interface {
	// Send delivers one message to one recipient
	Send(recipient, subject, body string) error

	// GetName returns the name of the transport implementation
	GetName() string
}
