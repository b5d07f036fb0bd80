package api

import (
	"context"
	"net/url"
	"strings"
)

// Endpoints declares the remote operations of the account backend.
type Endpoints interface {
	// GetEthAccount returns summaries for a comma separated list of addresses.
	GetEthAccount(ctx context.Context, addressesCSV string) (AddressResponseMap, error)

	// GetIfContract reports the contract status of an address as {"contract": bool}.
	// A JSON null decodes to a nil entry.
	GetIfContract(ctx context.Context, address string) (map[string]*bool, error)

	// PushTx broadcasts a signed transaction and answers {"txHash": "..."}.
	// A JSON null decodes to a nil entry.
	PushTx(ctx context.Context, req PushTxRequest) (map[string]*string, error)
}

// EndpointsFactory hands out Endpoints bound to a configured backend.
type EndpointsFactory interface {
	NewEndpoints() Endpoints
}

type httpEndpoints struct {
	transport *Transport
}

func (e *httpEndpoints) GetEthAccount(ctx context.Context, addressesCSV string) (AddressResponseMap, error) {
	var result AddressResponseMap
	if err := e.transport.GetJSON(ctx, pathAccount+"/"+escapeCSV(addressesCSV), nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (e *httpEndpoints) GetIfContract(ctx context.Context, address string) (map[string]*bool, error) {
	var result map[string]*bool
	path := pathAccount + "/" + url.PathEscape(address) + "/" + pathIsContract
	if err := e.transport.GetJSON(ctx, path, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (e *httpEndpoints) PushTx(ctx context.Context, req PushTxRequest) (map[string]*string, error) {
	var result map[string]*string
	if err := e.transport.PostJSON(ctx, pathPushTx, req, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// escapeCSV path-escapes every element but keeps the comma separators literal.
func escapeCSV(csv string) string {
	parts := strings.Split(csv, ",")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, ",")
}
