package sql

import (
	"context"

	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

type (
	// Notification is sent by the database for every event inserted into an event table
	Notification struct {
		No        int64  `json:"no"`
		EventID   string `json:"event_id"`
		EventType string `json:"event_type"`
		Stream    string `json:"stream"`
	}

	// Trigger is called for every received Notification
	Trigger func(ctx context.Context, notification *Notification) error

	// Listener listens to the notifications of an event table
	Listener interface {
		Listen(ctx context.Context, trigger Trigger) error
	}
)

// MarshalEasyJSON supports easyjson.Marshaler interface
func (n Notification) MarshalEasyJSON(out *jwriter.Writer) {
	out.RawString(`{"no":`)
	out.Int64(n.No)
	out.RawString(`,"event_id":`)
	out.String(n.EventID)
	out.RawString(`,"event_type":`)
	out.String(n.EventType)
	out.RawString(`,"stream":`)
	out.String(n.Stream)
	out.RawByte('}')
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (n *Notification) UnmarshalEasyJSON(in *jlexer.Lexer) {
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
		case "no":
			n.No = in.Int64()
		case "event_id":
			n.EventID = in.String()
		case "event_type":
			n.EventType = in.String()
		case "stream":
			n.Stream = in.String()
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
