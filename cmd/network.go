package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chinmay1088/ethaccount/api"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const (
	configDirName   = ".ethaccount"
	networkFileName = "network.txt"
)

var networkCmd = &cobra.Command{
	Use:   "network [mainnet|testnet]",
	Short: "Show or change network",
	Long: `Show the current network or switch between mainnet and testnet.

The selected network decides which account backend is queried.
--api-url overrides it for a single invocation.

Examples:
  ethaccount network            # Show current network
  ethaccount network mainnet    # Switch to mainnet
  ethaccount network testnet    # Switch to testnet`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNetwork,
}

func runNetwork(cmd *cobra.Command, args []string) error {
	// If no arguments provided, show current network
	if len(args) == 0 {
		return showCurrentNetwork()
	}

	network := strings.ToLower(args[0])
	if network != api.NetworkMainnet && network != api.NetworkTestnet {
		return fmt.Errorf("invalid network: %s. Use 'mainnet' or 'testnet'", network)
	}

	if err := setNetwork(network); err != nil {
		return err
	}

	fmt.Printf("🌐 Switched to %s network\n", strings.ToUpper(network))
	fmt.Printf("   Backend: %s\n", api.BaseURL(network))
	if network == api.NetworkTestnet {
		fmt.Println()
		fmt.Println("⚠️  You are now on TESTNET mode")
		fmt.Println("   USD values are not shown in testnet mode")
	}
	return nil
}

func showCurrentNetwork() error {
	network, err := getCurrentNetwork()
	if err != nil {
		return err
	}

	if network == api.NetworkMainnet {
		fmt.Printf("🌐 Current network: %s\n", color.GreenString("Mainnet"))
	} else {
		fmt.Printf("🌐 Current network: %s\n", color.YellowString("Testnet"))
	}
	fmt.Printf("   Backend: %s\n", api.BaseURL(network))
	return nil
}

func networkFilePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, configDirName, networkFileName), nil
}

func setNetwork(network string) error {
	networkPath, err := networkFilePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(networkPath), 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(networkPath, []byte(network), 0600); err != nil {
		return fmt.Errorf("failed to write network file: %w", err)
	}
	return nil
}

// getCurrentNetwork returns the current network (mainnet or testnet).
// A missing, unreadable or invalid network file means mainnet.
func getCurrentNetwork() (string, error) {
	networkPath, err := networkFilePath()
	if err != nil {
		return api.NetworkMainnet, nil
	}

	data, err := os.ReadFile(networkPath)
	if err != nil {
		return api.NetworkMainnet, nil
	}

	network := strings.TrimSpace(string(data))
	if network != api.NetworkMainnet && network != api.NetworkTestnet {
		return api.NetworkMainnet, nil
	}

	return network, nil
}

// isTestnetActive returns true if the current network is testnet
func isTestnetActive() bool {
	network, _ := getCurrentNetwork()
	return network == api.NetworkTestnet
}

// explorerTxURL links a transaction hash on the current network's explorer.
func explorerTxURL(txHash string) string {
	if isTestnetActive() {
		return "https://sepolia.etherscan.io/tx/" + txHash
	}
	return "https://etherscan.io/tx/" + txHash
}
