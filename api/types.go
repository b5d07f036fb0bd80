package api

import (
	"github.com/shopspring/decimal"
)

// AddressResponseMap maps each queried address to its account summary.
type AddressResponseMap map[string]AddressResponse

// AddressResponse is the backend's summary of a single Ethereum account.
// Amounts are denominated in wei.
type AddressResponse struct {
	ID              int64            `json:"id"`
	TxnCount        int64            `json:"txn_count"`
	Account         string           `json:"account"`
	AccountType     int              `json:"accountType"`
	Balance         decimal.Decimal  `json:"balance"`
	Nonce           int64            `json:"nonce"`
	FirstTime       int64            `json:"firstTime"`
	NumNormalTxns   int64            `json:"numNormalTxns"`
	NumInternalTxns int64            `json:"numInternalTxns"`
	TotalReceived   decimal.Decimal  `json:"totalReceived"`
	TotalSent       decimal.Decimal  `json:"totalSent"`
	TotalFee        decimal.Decimal  `json:"totalFee"`
	CreatedBy       string           `json:"createdBy"`
	CreatedIn       string           `json:"createdIn"`
	Txns            []EthTransaction `json:"txns"`
}

// EthTransaction is one entry of an account's transaction history
type EthTransaction struct {
	BlockNumber      int64           `json:"blockNumber"`
	TimeStamp        int64           `json:"timeStamp"`
	Hash             string          `json:"hash"`
	FailFlag         bool            `json:"failFlag"`
	ErrorDescription string          `json:"errorDescription"`
	From             string          `json:"from"`
	To               string          `json:"to"`
	Value            decimal.Decimal `json:"value"`
	GasPrice         decimal.Decimal `json:"gasPrice"`
	GasLimit         decimal.Decimal `json:"gasLimit"`
	GasUsed          decimal.Decimal `json:"gasUsed"`
	Data             string          `json:"data"`
	InternalFlag     bool            `json:"internalFlag"`
	ContractAddress  string          `json:"contractAddress"`
}

// Fee returns gasUsed * gasPrice in wei.
func (t EthTransaction) Fee() decimal.Decimal {
	return t.GasUsed.Mul(t.GasPrice)
}

// PushTxRequest is the body sent to the push-tx endpoint
type PushTxRequest struct {
	RawTx string `json:"rawTx"`
}

// PriceData represents cryptocurrency price information
type PriceData struct {
	Symbol string          `json:"symbol"`
	USD    decimal.Decimal `json:"usd"`
}
