package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/chinmay1088/ethaccount/api"
	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var accountCmd = &cobra.Command{
	Use:   "account [address...]",
	Short: "Show account balances and transactions",
	Long: `Show the balance and recent transactions of one or more Ethereum accounts.
All addresses are looked up in a single request.

Examples:
  ethaccount account 0x742d35Cc6634C0532925a3b8D4C9db96C4b4d8b6
  ethaccount account 0x742d... 0x8ba1... --limit 5
  ethaccount account 0x742d... --usd
  ethaccount account 0x742d... --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAccount,
}

func init() {
	accountCmd.Flags().Bool("usd", false, "Show USD values")
	accountCmd.Flags().Bool("json", false, "Print the raw summaries as JSON")
	accountCmd.Flags().IntP("limit", "l", 10, "Transactions shown per account (0-50)")
}

func runAccount(cmd *cobra.Command, args []string) error {
	usdFlag, _ := cmd.Flags().GetBool("usd")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	limit, _ := cmd.Flags().GetInt("limit")
	if limit < 0 || limit > 50 {
		return fmt.Errorf("limit must be between 0 and 50")
	}

	addresses, err := parseAddresses(args)
	if err != nil {
		return err
	}

	summaries, err := newAccountAPI(cmd).GetEthAddress(cmd.Context(), addresses)
	if err != nil {
		return fmt.Errorf("failed to fetch account summary: %w", err)
	}

	if jsonOutput {
		data, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode summaries: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	var price *api.PriceData
	if usdFlag && !isTestnetActive() {
		price, err = newPriceAPI().GetPrice(cmd.Context(), "ethereum")
		if err != nil {
			fmt.Printf("💵 USD: Error fetching price - %v\n\n", err)
		}
	}

	fmt.Println("💰 Account Summaries")
	if isTestnetActive() {
		fmt.Println("🌐 Network: Testnet")
	} else {
		fmt.Println("🌐 Network: Mainnet")
	}
	fmt.Println()

	for _, address := range addresses {
		summary, ok := findSummary(summaries, address)
		if !ok {
			fmt.Printf("❌ %s: not found in response\n\n", address)
			continue
		}
		printSummary(address, summary, price, limit)
	}
	return nil
}

// parseAddresses checks every argument is a hex address and returns them trimmed.
func parseAddresses(args []string) ([]string, error) {
	addresses := make([]string, 0, len(args))
	for _, arg := range args {
		address := strings.TrimSpace(arg)
		if !common.IsHexAddress(address) {
			return nil, fmt.Errorf("invalid Ethereum address: %s", arg)
		}
		addresses = append(addresses, address)
	}
	return addresses, nil
}

// findSummary looks an address up exactly first, then ignoring case,
// since the backend may echo addresses lowercased.
func findSummary(summaries api.AddressResponseMap, address string) (api.AddressResponse, bool) {
	if summary, ok := summaries[address]; ok {
		return summary, true
	}
	for key, summary := range summaries {
		if strings.EqualFold(key, address) {
			return summary, true
		}
	}
	return api.AddressResponse{}, false
}

func printSummary(address string, summary api.AddressResponse, price *api.PriceData, limit int) {
	fmt.Printf("🔷 %s\n", common.HexToAddress(address).Hex())
	fmt.Printf("   Balance:  %s\n", formatEther(summary.Balance))
	if price != nil {
		fmt.Printf("   💵 USD:   %s\n", formatUSD(summary.Balance, price))
	}
	fmt.Printf("   Nonce:    %d\n", summary.Nonce)
	fmt.Printf("   Txns:     %d (%d normal, %d internal)\n", summary.TxnCount, summary.NumNormalTxns, summary.NumInternalTxns)
	fmt.Printf("   Received: %s\n", formatEther(summary.TotalReceived))
	fmt.Printf("   Sent:     %s\n", formatEther(summary.TotalSent))
	fmt.Printf("   Fees:     %s\n", formatEther(summary.TotalFee))

	txns := summary.Txns
	if len(txns) > limit {
		txns = txns[:limit]
	}
	if len(txns) > 0 {
		fmt.Println("   Recent transactions:")
	}
	for _, tx := range txns {
		direction := color.RedString("OUT")
		counterparty := tx.To
		if strings.EqualFold(tx.To, address) {
			direction = color.GreenString("IN ")
			counterparty = tx.From
		}
		status := ""
		if tx.FailFlag {
			status = " " + color.RedString("failed")
		}
		fmt.Printf("   %s %s %s %s%s\n",
			direction,
			formatTimestamp(tx.TimeStamp),
			truncateAddress(counterparty),
			formatEther(tx.Value),
			status,
		)
		fmt.Printf("       %s\n", tx.Hash)
	}
	fmt.Println()
}

func formatEther(wei decimal.Decimal) string {
	return api.WeiToEther(wei).StringFixed(6) + " ETH"
}

func formatUSD(wei decimal.Decimal, price *api.PriceData) string {
	return "$" + api.WeiToEther(wei).Mul(price.USD).StringFixed(2)
}

func formatTimestamp(unix int64) string {
	if unix <= 0 {
		return fmt.Sprintf("%-16s", "pending")
	}
	return time.Unix(unix, 0).UTC().Format("2006-01-02 15:04")
}

func truncateAddress(address string) string {
	if len(address) <= 16 {
		return address
	}
	return address[:8] + "..." + address[len(address)-6:]
}
