package amqp

import (
	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"

	"github.com/hellofresh/goledger"
)

// EventNotification is published for every event that was committed to a stream
type EventNotification struct {
	EventID       string `json:"event_id"`
	EventType     string `json:"event_type"`
	Stream        string `json:"stream"`
	CorrelationID string `json:"correlation_id,omitempty"`
	Payload       []byte `json:"payload"`
}

// NewEventNotification returns the notification of an event that was committed to the stream
func NewEventNotification(streamName goledger.StreamName, event goledger.Event) *EventNotification {
	notification := &EventNotification{
		EventID:   event.ID.String(),
		EventType: event.Type,
		Stream:    string(streamName),
		Payload:   event.Payload,
	}
	if event.Metadata != nil {
		if correlationID, ok := event.Metadata.Value(goledger.CorrelationKey).(string); ok {
			notification.CorrelationID = correlationID
		}
	}

	return notification
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (n EventNotification) MarshalEasyJSON(out *jwriter.Writer) {
	out.RawString(`{"event_id":`)
	out.String(n.EventID)
	out.RawString(`,"event_type":`)
	out.String(n.EventType)
	out.RawString(`,"stream":`)
	out.String(n.Stream)
	if n.CorrelationID != "" {
		out.RawString(`,"correlation_id":`)
		out.String(n.CorrelationID)
	}
	out.RawString(`,"payload":`)
	if len(n.Payload) == 0 {
		out.RawString("null")
	} else {
		out.Raw(n.Payload, nil)
	}
	out.RawByte('}')
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (n *EventNotification) UnmarshalEasyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeString()
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "event_id":
			n.EventID = in.String()
		case "event_type":
			n.EventType = in.String()
		case "stream":
			n.Stream = in.String()
		case "correlation_id":
			n.CorrelationID = in.String()
		case "payload":
			n.Payload = append([]byte(nil), in.Raw()...)
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}
