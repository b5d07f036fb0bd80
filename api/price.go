package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ethereum/go-ethereum/params"
	"github.com/shopspring/decimal"
)

// PriceAPI fetches fiat prices for coins
type PriceAPI struct {
	transport *Transport
}

// NewPriceAPI creates a PriceAPI on top of a transport bound to CoinGeckoAPI.
func NewPriceAPI(transport *Transport) *PriceAPI {
	return &PriceAPI{transport: transport}
}

// GetPrice fetches the current USD price for a coin id (e.g. "ethereum")
func (p *PriceAPI) GetPrice(ctx context.Context, symbol string) (*PriceData, error) {
	query := url.Values{
		"ids":           {symbol},
		"vs_currencies": {"usd"},
	}

	var result map[string]map[string]decimal.Decimal
	if err := p.transport.GetJSON(ctx, pathPrice, query, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch price: %w", err)
	}

	if priceData, exists := result[symbol]; exists {
		if usdPrice, exists := priceData["usd"]; exists {
			return &PriceData{
				Symbol: symbol,
				USD:    usdPrice,
			}, nil
		}
	}

	return nil, fmt.Errorf("price not found for symbol: %s", symbol)
}

var weiPerEther = decimal.NewFromInt(params.Ether)

// WeiToEther converts a wei amount to ether.
func WeiToEther(wei decimal.Decimal) decimal.Decimal {
	return wei.Div(weiPerEther)
}
