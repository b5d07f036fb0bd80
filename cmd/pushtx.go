package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var pushTxCmd = &cobra.Command{
	Use:   "pushtx [raw-tx]",
	Short: "Broadcast a signed transaction",
	Long: `Broadcast a transaction that was signed elsewhere.

The raw transaction is hex encoded (legacy RLP or EIP-2718 typed envelope).
It is decoded locally to show what is about to be sent; nothing is signed here.
Broadcasting is not retried: if the request times out, check the explorer
before pushing the same transaction again.

Examples:
  ethaccount pushtx 0xf86c...
  ethaccount pushtx 0x02f8... --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runPushTx,
}

func init() {
	pushTxCmd.Flags().BoolP("yes", "y", false, "Broadcast without asking for confirmation")
}

func runPushTx(cmd *cobra.Command, args []string) error {
	yes, _ := cmd.Flags().GetBool("yes")

	rawTx := strings.TrimSpace(args[0])
	tx, err := decodeRawTx(rawTx)
	if err != nil {
		return fmt.Errorf("invalid raw transaction: %w", err)
	}

	printTxDetails(tx)

	if !yes {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("refusing to broadcast without confirmation on a non-interactive input; pass --yes")
		}
		if !getBroadcastConfirmation() {
			fmt.Println("❌ Broadcast cancelled by user")
			return nil
		}
	}

	txHash, err := newAccountAPI(cmd).PushTx(cmd.Context(), rawTx)
	if err != nil {
		return fmt.Errorf("failed to broadcast transaction: %w", err)
	}

	fmt.Println("✅ Transaction broadcast successfully!")
	fmt.Printf("📝 Transaction Hash: %s\n", txHash)
	if !strings.EqualFold(txHash, tx.Hash().Hex()) {
		fmt.Printf("⚠️  Backend hash differs from the locally computed %s\n", tx.Hash().Hex())
	}
	fmt.Printf("🔗 Explorer: %s\n", explorerTxURL(txHash))
	return nil
}

// decodeRawTx parses a hex encoded signed transaction. The 0x prefix is optional.
func decodeRawTx(rawTx string) (*types.Transaction, error) {
	if !strings.HasPrefix(rawTx, "0x") && !strings.HasPrefix(rawTx, "0X") {
		rawTx = "0x" + rawTx
	}
	data, err := hexutil.Decode(rawTx)
	if err != nil {
		return nil, err
	}

	tx := new(types.Transaction)
	if err := tx.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return tx, nil
}

func printTxDetails(tx *types.Transaction) {
	fmt.Printf("📊 Transaction Details:\n")
	fmt.Printf("   Hash:     %s\n", tx.Hash().Hex())

	signer := types.LatestSignerForChainID(tx.ChainId())
	if from, err := types.Sender(signer, tx); err == nil {
		fmt.Printf("   From:     %s\n", from.Hex())
	} else {
		fmt.Printf("   From:     %s\n", color.RedString("unrecoverable (%v)", err))
	}

	if to := tx.To(); to != nil {
		fmt.Printf("   To:       %s\n", to.Hex())
	} else {
		fmt.Printf("   To:       %s\n", color.YellowString("contract creation"))
	}

	fee := decimal.NewFromBigInt(tx.Cost(), 0).Sub(decimal.NewFromBigInt(tx.Value(), 0))
	fmt.Printf("   Amount:   %s\n", formatEther(decimal.NewFromBigInt(tx.Value(), 0)))
	fmt.Printf("   Max Fee:  ~%s\n", formatEther(fee))
	fmt.Printf("   Gas:      %d units\n", tx.Gas())
	fmt.Printf("   Nonce:    %d\n", tx.Nonce())
	if chainID := tx.ChainId(); chainID != nil && chainID.Sign() > 0 {
		fmt.Printf("   Chain ID: %s\n", chainID)
	}
	fmt.Println()
}

func getBroadcastConfirmation() bool {
	if isTestnetActive() {
		fmt.Printf("⚠️ You are on testnet. By confirming, this transaction is broadcast to the test network.\n")
	} else {
		fmt.Printf("🚨 You are on main network. By confirming, real funds will move and this cannot be undone.\n")
	}

	fmt.Printf("Press y to confirm or n to stop (y/n): ")

	var response string
	fmt.Scanln(&response)

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
