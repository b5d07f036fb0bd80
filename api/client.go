package api

// Account backend client
//
// Files:
//   config.go     - network constants and backend URLs
//   types.go      - wire types (account summaries, push-tx request, prices)
//   base.go       - Transport: base URL bound HTTP/JSON plumbing, the endpoints factory
//   endpoints.go  - Endpoints descriptor and its HTTP binding
//   account.go    - AccountAPI: summaries, contract check, transaction broadcast
//   price.go      - PriceAPI: fiat price lookups
//
// Usage:
//   transport := api.NewTransport(api.BaseURL(api.NetworkMainnet))
//   accounts := api.NewAccountAPI(transport)
//   summary, err := accounts.GetEthAddress(ctx, []string{addr})
//   isContract, err := accounts.GetIfContract(ctx, addr)
//   txHash, err := accounts.PushTx(ctx, rawTx)
