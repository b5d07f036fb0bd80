package api

// network type constants
const (
	NetworkMainnet = "mainnet"
	NetworkTestnet = "testnet"
)

// Backend base URLs
const (
	MainnetAccountAPI = "https://api.blockchain.info/"
	TestnetAccountAPI = "https://api.staging.blockchain.info/"

	// price lookups are mainnet only
	CoinGeckoAPI = "https://api.coingecko.com/api/v3/"
)

// Endpoint paths, relative to the backend base URL
const (
	pathAccount    = "eth/account"
	pathIsContract = "isContract"
	pathPushTx     = "eth/pushtx"
	pathPrice      = "simple/price"
)

// BaseURL returns the account backend URL for a network, defaulting to mainnet.
func BaseURL(network string) string {
	if network == NetworkTestnet {
		return TestnetAccountAPI
	}
	return MainnetAccountAPI
}
