package api

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Response keys projected out of the contract-check and push-tx replies.
const (
	fieldContract = "contract"
	fieldTxHash   = "txHash"
)

// ErrMissingField is returned when a successful reply lacks the expected key
// or carries null (or, for the hash, an empty string) under it.
var ErrMissingField = errors.New("missing field in response")

// AccountAPI queries Ethereum account data and broadcasts signed
// transactions. It holds no key material and does no signing.
//
// The Endpoints binding is created on first use and kept for the lifetime
// of the AccountAPI. Methods are safe for concurrent use.
type AccountAPI struct {
	factory EndpointsFactory

	once      sync.Once
	endpoints Endpoints
}

// NewAccountAPI creates an AccountAPI obtaining its endpoints from factory.
func NewAccountAPI(factory EndpointsFactory) *AccountAPI {
	return &AccountAPI{factory: factory}
}

// GetEthAddress returns the account summaries (transactions and final
// balance) for the given addresses. Addresses are joined with "," and sent
// as-is; an empty list is sent as an empty string.
func (a *AccountAPI) GetEthAddress(ctx context.Context, addresses []string) (AddressResponseMap, error) {
	return a.getAPIInstance().GetEthAccount(ctx, strings.Join(addresses, ","))
}

// GetIfContract reports whether address belongs to a contract. A reply
// without a "contract" value yields ErrMissingField.
func (a *AccountAPI) GetIfContract(ctx context.Context, address string) (bool, error) {
	result, err := a.getAPIInstance().GetIfContract(ctx, address)
	if err != nil {
		return false, err
	}
	contract := result[fieldContract]
	if contract == nil {
		return false, fmt.Errorf("%w: %q", ErrMissingField, fieldContract)
	}
	return *contract, nil
}

// PushTx broadcasts a signed, hex encoded transaction and returns its hash.
// It is not idempotent and is never retried here.
func (a *AccountAPI) PushTx(ctx context.Context, rawTx string) (string, error) {
	result, err := a.getAPIInstance().PushTx(ctx, PushTxRequest{RawTx: rawTx})
	if err != nil {
		return "", err
	}
	txHash := result[fieldTxHash]
	if txHash == nil || *txHash == "" {
		return "", fmt.Errorf("%w: %q", ErrMissingField, fieldTxHash)
	}
	return *txHash, nil
}

func (a *AccountAPI) getAPIInstance() Endpoints {
	a.once.Do(func() {
		a.endpoints = a.factory.NewEndpoints()
	})
	return a.endpoints
}
