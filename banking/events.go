package banking

// The wire names of the banking events.
// Changing one of these changes the meaning of already stored events.
const (
	AccountOpenedType     = "banking:AccountOpened"
	OverdraftLimitSetType = "banking:OverdraftLimitSet"
	AccountBlockedType    = "banking:AccountBlocked"
	AccountUnblockedType  = "banking:AccountUnblocked"
	AccountClosedType     = "banking:AccountClosed"
	MoneyTransferredType  = "banking:MoneyTransferred"
)

var (
	// Ensure all banking events implement the Event interface
	_ Event = AccountOpened{}
	_ Event = OverdraftLimitSet{}
	_ Event = AccountBlocked{}
	_ Event = AccountUnblocked{}
	_ Event = AccountClosed{}
	_ Event = MoneyTransferred{}
)

type (
	// Event is one of the six banking domain events
	Event interface {
		bankingEvent()
	}

	// AccountOpened a DomainEvent indicating that an account was opened
	AccountOpened struct {
		AccountNumber AccountNumber
		Holder        *string
		Date          TransactionDate
	}

	// OverdraftLimitSet a DomainEvent indicating that the overdraft limit of an account was replaced
	OverdraftLimitSet struct {
		AccountNumber AccountNumber
		Limit         OverdraftLimit
		Date          TransactionDate
	}

	// AccountBlocked a DomainEvent indicating that an account was blocked
	AccountBlocked struct {
		AccountNumber AccountNumber
		Date          TransactionDate
		Reason        *string
	}

	// AccountUnblocked a DomainEvent indicating that an account was unblocked
	AccountUnblocked struct {
		AccountNumber AccountNumber
		Date          TransactionDate
		Reason        *string
	}

	// AccountClosed a DomainEvent indicating that an account was closed
	AccountClosed struct {
		AccountNumber AccountNumber
		Date          TransactionDate
	}

	// MoneyTransferred a DomainEvent indicating that money was sent from one account to another.
	// The event is stored in the stream of both the sender and the recipient.
	MoneyTransferred struct {
		From   AccountNumber
		To     AccountNumber
		Amount MonetaryAmount
		Date   TransactionDate
	}
)

func (AccountOpened) bankingEvent()     {}
func (OverdraftLimitSet) bankingEvent() {}
func (AccountBlocked) bankingEvent()    {}
func (AccountUnblocked) bankingEvent()  {}
func (AccountClosed) bankingEvent()     {}
func (MoneyTransferred) bankingEvent()  {}

// optionalString returns nil for an empty value
func optionalString(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}
