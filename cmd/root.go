package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/chinmay1088/ethaccount/api"
	"github.com/ethereum/go-ethereum/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	version = "1.1.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "ethaccount",
	Aliases: []string{"etha"},
	Short:   "Query Ethereum accounts and broadcast signed transactions",
	Long: `ethaccount talks to the Ethereum account backend. It looks up account
summaries, checks whether an address is a contract, and broadcasts
transactions that were signed elsewhere.

It never holds or asks for private keys.

Examples:
  ethaccount account 0x742d...  0x8ba1...   # Balances and recent transactions
  ethaccount account 0x742d... --usd        # Include USD values
  ethaccount contract 0x742d...             # Contract or regular account?
  ethaccount pushtx 0xf86c...               # Broadcast a signed transaction
  ethaccount export 0x742d... --json        # Export summaries to disk
  ethaccount network testnet                # Switch to testnet mode`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "only log critical errors")
	rootCmd.PersistentFlags().String("api-url", "", "account backend URL; explorer links and mainnet/testnet warnings still follow 'ethaccount network'")

	// Add subcommands
	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(contractCmd)
	rootCmd.AddCommand(pushTxCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(networkCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ethaccount v%s\n", version)
	},
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")
	if verbose && quiet {
		return fmt.Errorf("--verbose and --quiet are mutually exclusive")
	}

	level := log.LevelWarn
	switch {
	case verbose:
		level = log.LevelDebug
	case quiet:
		level = log.LevelCrit
	}
	useColor := term.IsTerminal(int(os.Stderr.Fd()))
	log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(os.Stderr, level, useColor)))
	return nil
}

// newAccountAPI builds the account client for the selected backend.
func newAccountAPI(cmd *cobra.Command) *api.AccountAPI {
	return api.NewAccountAPI(api.NewTransport(resolveBaseURL(cmd), api.WithUserAgent("ethaccount/"+version)))
}

func newPriceAPI() *api.PriceAPI {
	return api.NewPriceAPI(api.NewTransport(api.CoinGeckoAPI, api.WithUserAgent("ethaccount/"+version)))
}

func resolveBaseURL(cmd *cobra.Command) string {
	if override, _ := cmd.Flags().GetString("api-url"); override != "" {
		return override
	}
	network, _ := getCurrentNetwork()
	return api.BaseURL(network)
}
