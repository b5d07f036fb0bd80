package cmd

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/chinmay1088/ethaccount/api"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAccounts() api.AddressResponseMap {
	return api.AddressResponseMap{
		"0xbb": {
			Account: "0xbb",
			Balance: decimal.Zero,
		},
		"0xaa": {
			Account: "0xaa",
			Balance: decimal.RequireFromString("2000000000000000000"),
			Txns: []api.EthTransaction{
				{
					Hash:        "0x01",
					BlockNumber: 100,
					TimeStamp:   1609459200,
					From:        "0xcc",
					To:          "0xAA",
					Value:       decimal.RequireFromString("500000000000000000"),
					GasUsed:     decimal.NewFromInt(21000),
					GasPrice:    decimal.NewFromInt(1_000_000_000),
				},
				{
					Hash:     "0x02",
					From:     "0xaa",
					To:       "0xcc",
					Value:    decimal.Zero,
					FailFlag: true,
				},
			},
		},
	}
}

func TestWriteCSVFile(t *testing.T) {
	t.Parallel()

	filename := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, writeCSVFile(filename, testAccounts()))

	file, err := os.Open(filename)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, []string{
		"0xaa", "2", "0x01", "100", "2021-01-01T00:00:00Z", "in",
		"0xcc", "0xAA", "0.5", "0.000021", "ok",
	}, records[1])
	assert.Equal(t, "out", records[2][5])
	assert.Equal(t, "failed", records[2][10])
	assert.Equal(t, []string{"0xbb", "0", "", "", "", "", "", "", "", "", ""}, records[3])
}

func TestWriteJSONFile(t *testing.T) {
	t.Parallel()

	filename := filepath.Join(t.TempDir(), "export.json")
	exportData := &ExportData{
		ExportDate: "2021-01-01 00:00:00",
		Network:    api.NetworkMainnet,
		Backend:    api.MainnetAccountAPI,
		Accounts:   testAccounts(),
	}
	require.NoError(t, writeJSONFile(filename, exportData))

	data, err := os.ReadFile(filename)
	require.NoError(t, err)

	var got ExportData
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, api.NetworkMainnet, got.Network)
	require.Contains(t, got.Accounts, "0xaa")
	assert.True(t, got.Accounts["0xaa"].Balance.Equal(decimal.RequireFromString("2000000000000000000")))
	assert.Len(t, got.Accounts["0xaa"].Txns, 2)
}

func TestCountTransactions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, countTransactions(testAccounts()))
	assert.Equal(t, 0, countTransactions(nil))
}

func TestWriteExportFilesFormats(t *testing.T) {
	t.Parallel()

	exportData := &ExportData{Network: api.NetworkMainnet, Accounts: testAccounts()}

	dir := t.TempDir()
	files, err := writeExportFiles(exportData, dir, "20210101_000000", false, true)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "ethaccount_mainnet_20210101_000000.json")}, files)

	dir = t.TempDir()
	files, err = writeExportFiles(exportData, dir, "20210101_000000", true, true)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "ethaccount_mainnet_20210101_000000.csv"),
		filepath.Join(dir, "ethaccount_mainnet_20210101_000000.json"),
	}, files)
}
