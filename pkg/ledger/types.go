package ledger

import (
	"time"

	"github.com/Layr-Labs/txledger-go/pkg/contracts/transactions"
	"github.com/Layr-Labs/txledger-go/pkg/units"
	"github.com/Layr-Labs/txledger-go/pkg/util"
)

const (
	// PlaceholderAccount is shown before any wallet connects
	PlaceholderAccount = "pure for visual effects"

	// TimestampLayout renders record timestamps the way an en-US locale string does
	TimestampLayout = "1/2/2006, 3:04:05 PM"

	FieldAddressTo = "addressTo"
	FieldAmount    = "amount"
	FieldKeyword   = "keyword"
	FieldMessage   = "message"
)

// FormData is the user's pending transfer input.
type FormData struct {
	AddressTo string `json:"addressTo"`
	Amount    string `json:"amount"`
	Keyword   string `json:"keyword"`
	Message   string `json:"message"`
}

// Transaction is the display projection of one on-chain ledger record.
type Transaction struct {
	AddressTo   string  `json:"addressTo"`
	AddressFrom string  `json:"addressFrom"`
	Timestamp   string  `json:"timestamp"`
	Message     string  `json:"message"`
	Keyword     string  `json:"keyword"`
	Amount      float64 `json:"amount"`
}

// State is a point-in-time copy of everything the store exposes.
type State struct {
	CurrentAccount string        `json:"currentAccount"`
	FormData       FormData      `json:"formData"`
	IsLoading      bool          `json:"isLoading"`
	Transactions   []Transaction `json:"transactions"`
	// TransactionCount is only meaningful when TransactionCountKnown is set
	TransactionCount      uint64 `json:"transactionCount"`
	TransactionCountKnown bool   `json:"transactionCountKnown"`
}

// HasAccount reports whether a wallet account has replaced the placeholder.
func (s State) HasAccount() bool {
	return s.CurrentAccount != "" && s.CurrentAccount != PlaceholderAccount
}

// ProjectTransaction converts a raw record into its display form. The amount is
// rescaled from base units and the timestamp rendered in loc.
func ProjectTransaction(raw transactions.TransactionsTransferStruct, loc *time.Location) Transaction {
	var ts int64
	if raw.Timestamp != nil {
		ts = raw.Timestamp.Int64()
	}
	return Transaction{
		AddressTo:   raw.Receiver.Hex(),
		AddressFrom: raw.Sender.Hex(),
		Timestamp:   time.Unix(ts, 0).In(loc).Format(TimestampLayout),
		Message:     raw.Message,
		Keyword:     raw.Keyword,
		Amount:      units.FromBaseUnits(raw.Amount),
	}
}

// ProjectTransactions projects every record; the result is never nil.
func ProjectTransactions(raw []transactions.TransactionsTransferStruct, loc *time.Location) []Transaction {
	return util.Map(raw, func(r transactions.TransactionsTransferStruct, _ uint64) Transaction {
		return ProjectTransaction(r, loc)
	})
}
