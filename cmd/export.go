package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/chinmay1088/ethaccount/api"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [address...]",
	Short: "Export account summaries",
	Long: `Export balances and transaction history of one or more accounts.

File formats:
  --csv        Export transactions to CSV format (default)
  --json       Export the full summaries to JSON format

Files are written to ~/.ethaccount/exports, or --dir if given.

Examples:
  ethaccount export 0x742d...                 # Export to CSV (default)
  ethaccount export 0x742d... 0x8ba1... --json
  ethaccount export 0x742d... --csv --json --dir ./out`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExport,
}

var (
	csvFlag   bool
	jsonFlag  bool
	exportDir string
)

func init() {
	exportCmd.Flags().BoolVar(&csvFlag, "csv", false, "Export to CSV format")
	exportCmd.Flags().BoolVar(&jsonFlag, "json", false, "Export to JSON format")
	exportCmd.Flags().StringVar(&exportDir, "dir", "", "Directory to write export files to")
}

// ExportData is the document written by the JSON export
type ExportData struct {
	ExportDate string                 `json:"export_date"`
	Network    string                 `json:"network"`
	Backend    string                 `json:"backend"`
	Accounts   api.AddressResponseMap `json:"accounts"`
}

func runExport(cmd *cobra.Command, args []string) error {
	writeCSV := csvFlag || !jsonFlag

	addresses, err := parseAddresses(args)
	if err != nil {
		return err
	}

	network, _ := getCurrentNetwork()
	fmt.Printf("🌐 Current Network: %s\n", strings.ToUpper(network))
	fmt.Printf("📊 Exporting %d account(s)...\n", len(addresses))
	fmt.Println()

	bar := progressbar.NewOptions(100,
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetDescription("[cyan][1/3][reset] Fetching summaries..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	bar.Set(0)
	summaries, err := newAccountAPI(cmd).GetEthAddress(cmd.Context(), addresses)
	if err != nil {
		return fmt.Errorf("failed to fetch account summary: %w", err)
	}

	bar.Set(60)
	bar.Describe("[cyan][2/3][reset] Preparing export directory...")
	dir, err := prepareExportDirectory(exportDir)
	if err != nil {
		return fmt.Errorf("failed to prepare export directory: %w", err)
	}

	bar.Set(80)
	bar.Describe("[cyan][3/3][reset] Writing export files...")
	exportData := &ExportData{
		ExportDate: time.Now().Format("2006-01-02 15:04:05"),
		Network:    network,
		Backend:    resolveBaseURL(cmd),
		Accounts:   summaries,
	}
	timestamp := time.Now().Format("20060102_150405")
	files, err := writeExportFiles(exportData, dir, timestamp, writeCSV, jsonFlag)
	if err != nil {
		return err
	}

	bar.Set(100)
	bar.Describe("[green][✓][reset] Export completed!")
	fmt.Println()
	fmt.Println()

	fmt.Println("📁 Export completed successfully!")
	for _, file := range files {
		fmt.Printf("📍 %s\n", file)
	}
	fmt.Println()
	fmt.Println("📊 Export Summary:")
	fmt.Printf("   Network:      %s\n", strings.ToUpper(network))
	fmt.Printf("   Accounts:     %d\n", len(summaries))
	fmt.Printf("   Transactions: %d\n", countTransactions(summaries))
	return nil
}

// prepareExportDirectory creates dir, or ~/.ethaccount/exports when dir is empty.
func prepareExportDirectory(dir string) (string, error) {
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(homeDir, configDirName, "exports")
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return dir, nil
}

func writeExportFiles(exportData *ExportData, dir, timestamp string, writeCSV, writeJSON bool) ([]string, error) {
	var files []string

	if writeCSV {
		filename := filepath.Join(dir, fmt.Sprintf("ethaccount_%s_%s.csv", exportData.Network, timestamp))
		if err := writeCSVFile(filename, exportData.Accounts); err != nil {
			return nil, fmt.Errorf("failed to write CSV export: %w", err)
		}
		files = append(files, filename)
	}

	if writeJSON {
		filename := filepath.Join(dir, fmt.Sprintf("ethaccount_%s_%s.json", exportData.Network, timestamp))
		if err := writeJSONFile(filename, exportData); err != nil {
			return nil, fmt.Errorf("failed to write JSON export: %w", err)
		}
		files = append(files, filename)
	}

	return files, nil
}

var csvHeader = []string{
	"Account", "Balance (ETH)", "Hash", "Block", "Time", "Direction",
	"From", "To", "Amount (ETH)", "Fee (ETH)", "Status",
}

// writeCSVFile writes one row per transaction, accounts in address order.
// Accounts without transactions still get a row carrying their balance.
func writeCSVFile(filename string, accounts api.AddressResponseMap) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}

	addresses := make([]string, 0, len(accounts))
	for address := range accounts {
		addresses = append(addresses, address)
	}
	sort.Strings(addresses)

	for _, address := range addresses {
		account := accounts[address]
		balance := api.WeiToEther(account.Balance).String()

		if len(account.Txns) == 0 {
			if err := writer.Write([]string{address, balance, "", "", "", "", "", "", "", "", ""}); err != nil {
				return err
			}
			continue
		}

		for _, tx := range account.Txns {
			direction := "out"
			if strings.EqualFold(tx.To, address) {
				direction = "in"
			}
			status := "ok"
			if tx.FailFlag {
				status = "failed"
			}
			if err := writer.Write([]string{
				address,
				balance,
				tx.Hash,
				strconv.FormatInt(tx.BlockNumber, 10),
				time.Unix(tx.TimeStamp, 0).UTC().Format(time.RFC3339),
				direction,
				tx.From,
				tx.To,
				api.WeiToEther(tx.Value).String(),
				api.WeiToEther(tx.Fee()).String(),
				status,
			}); err != nil {
				return err
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	return file.Close()
}

func writeJSONFile(filename string, exportData *ExportData) error {
	data, err := json.MarshalIndent(exportData, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0600)
}

func countTransactions(accounts api.AddressResponseMap) int {
	total := 0
	for _, account := range accounts {
		total += len(account.Txns)
	}
	return total
}
