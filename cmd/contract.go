package cmd

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var contractCmd = &cobra.Command{
	Use:   "contract [address]",
	Short: "Check whether an address is a contract",
	Long: `Check whether an Ethereum address belongs to a contract or a regular account.
Use it to vet a destination address before sending funds to it.

Examples:
  ethaccount contract 0x742d35Cc6634C0532925a3b8D4C9db96C4b4d8b6`,
	Args: cobra.ExactArgs(1),
	RunE: runContract,
}

func runContract(cmd *cobra.Command, args []string) error {
	address := strings.TrimSpace(args[0])
	if !common.IsHexAddress(address) {
		return fmt.Errorf("invalid Ethereum address: %s", args[0])
	}

	isContract, err := newAccountAPI(cmd).GetIfContract(cmd.Context(), address)
	if err != nil {
		return fmt.Errorf("failed to check contract status: %w", err)
	}

	fmt.Printf("📍 Address: %s\n", common.HexToAddress(address).Hex())
	if isContract {
		fmt.Printf("📜 Type:    %s\n", color.YellowString("Contract"))
		fmt.Println("⚠️  Sending funds to contracts is not supported by this backend")
	} else {
		fmt.Printf("👤 Type:    %s\n", color.GreenString("Regular account"))
	}
	return nil
}
