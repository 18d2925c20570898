package banking

import (
	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

var (
	// Ensure the events can be encoded and decoded by easyjson
	_ easyjson.Marshaler   = AccountOpened{}
	_ easyjson.Unmarshaler = &AccountOpened{}
	_ easyjson.Marshaler   = OverdraftLimitSet{}
	_ easyjson.Unmarshaler = &OverdraftLimitSet{}
	_ easyjson.Marshaler   = AccountBlocked{}
	_ easyjson.Unmarshaler = &AccountBlocked{}
	_ easyjson.Marshaler   = AccountUnblocked{}
	_ easyjson.Unmarshaler = &AccountUnblocked{}
	_ easyjson.Marshaler   = AccountClosed{}
	_ easyjson.Unmarshaler = &AccountClosed{}
	_ easyjson.Marshaler   = MoneyTransferred{}
	_ easyjson.Unmarshaler = &MoneyTransferred{}
)

// MarshalEasyJSON supports easyjson.Marshaler interface
func (e AccountOpened) MarshalEasyJSON(out *jwriter.Writer) {
	out.RawString(`{"accountNumber":`)
	out.String(string(e.AccountNumber))
	if e.Holder != nil {
		out.RawString(`,"holder":`)
		out.String(*e.Holder)
	}
	out.RawString(`,"date":`)
	out.Int64(int64(e.Date))
	out.RawByte('}')
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (e *AccountOpened) UnmarshalEasyJSON(in *jlexer.Lexer) {
	unmarshalObject(in, func(key string) {
		switch key {
		case "accountNumber":
			e.AccountNumber = AccountNumber(in.String())
		case "holder":
			holder := in.String()
			e.Holder = &holder
		case "date":
			e.Date = TransactionDate(in.Int64())
		default:
			in.SkipRecursive()
		}
	})
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (e OverdraftLimitSet) MarshalEasyJSON(out *jwriter.Writer) {
	out.RawString(`{"accountNumber":`)
	out.String(string(e.AccountNumber))
	out.RawString(`,"limit":`)
	marshalAmount(out, e.Limit.amount)
	out.RawString(`,"date":`)
	out.Int64(int64(e.Date))
	out.RawByte('}')
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (e *OverdraftLimitSet) UnmarshalEasyJSON(in *jlexer.Lexer) {
	unmarshalObject(in, func(key string) {
		switch key {
		case "accountNumber":
			e.AccountNumber = AccountNumber(in.String())
		case "limit":
			e.Limit = OverdraftLimit{amount: unmarshalAmount(in)}
		case "date":
			e.Date = TransactionDate(in.Int64())
		default:
			in.SkipRecursive()
		}
	})
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (e AccountBlocked) MarshalEasyJSON(out *jwriter.Writer) {
	marshalStateChange(out, e.AccountNumber, e.Date, e.Reason)
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (e *AccountBlocked) UnmarshalEasyJSON(in *jlexer.Lexer) {
	unmarshalStateChange(in, &e.AccountNumber, &e.Date, &e.Reason)
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (e AccountUnblocked) MarshalEasyJSON(out *jwriter.Writer) {
	marshalStateChange(out, e.AccountNumber, e.Date, e.Reason)
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (e *AccountUnblocked) UnmarshalEasyJSON(in *jlexer.Lexer) {
	unmarshalStateChange(in, &e.AccountNumber, &e.Date, &e.Reason)
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (e AccountClosed) MarshalEasyJSON(out *jwriter.Writer) {
	marshalStateChange(out, e.AccountNumber, e.Date, nil)
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (e *AccountClosed) UnmarshalEasyJSON(in *jlexer.Lexer) {
	var reason *string
	unmarshalStateChange(in, &e.AccountNumber, &e.Date, &reason)
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (e MoneyTransferred) MarshalEasyJSON(out *jwriter.Writer) {
	out.RawString(`{"from":`)
	out.String(string(e.From))
	out.RawString(`,"to":`)
	out.String(string(e.To))
	out.RawString(`,"amount":`)
	marshalAmount(out, e.Amount)
	out.RawString(`,"date":`)
	out.Int64(int64(e.Date))
	out.RawByte('}')
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (e *MoneyTransferred) UnmarshalEasyJSON(in *jlexer.Lexer) {
	unmarshalObject(in, func(key string) {
		switch key {
		case "from":
			e.From = AccountNumber(in.String())
		case "to":
			e.To = AccountNumber(in.String())
		case "amount":
			e.Amount = unmarshalAmount(in)
		case "date":
			e.Date = TransactionDate(in.Int64())
		default:
			in.SkipRecursive()
		}
	})
}

func marshalStateChange(out *jwriter.Writer, number AccountNumber, date TransactionDate, reason *string) {
	out.RawString(`{"accountNumber":`)
	out.String(string(number))
	out.RawString(`,"date":`)
	out.Int64(int64(date))
	if reason != nil {
		out.RawString(`,"reason":`)
		out.String(*reason)
	}
	out.RawByte('}')
}

func unmarshalStateChange(in *jlexer.Lexer, number *AccountNumber, date *TransactionDate, reason **string) {
	unmarshalObject(in, func(key string) {
		switch key {
		case "accountNumber":
			*number = AccountNumber(in.String())
		case "date":
			*date = TransactionDate(in.Int64())
		case "reason":
			r := in.String()
			*reason = &r
		default:
			in.SkipRecursive()
		}
	})
}

func marshalAmount(out *jwriter.Writer, amount MonetaryAmount) {
	out.RawString(`{"value":`)
	out.Int64(amount.value)
	out.RawString(`,"currency":`)
	out.String(string(amount.currency))
	out.RawByte('}')
}

func unmarshalAmount(in *jlexer.Lexer) MonetaryAmount {
	var amount MonetaryAmount
	unmarshalObject(in, func(key string) {
		switch key {
		case "value":
			amount.value = in.Int64()
		case "currency":
			amount.currency = Currency(in.String())
		default:
			in.SkipRecursive()
		}
	})

	return amount
}

// unmarshalObject iterates over the keys of a JSON object calling field for every non null value.
// field must consume the value.
func unmarshalObject(in *jlexer.Lexer, field func(key string)) {
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
		field(key)
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}
