package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := newRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bankledger-cli",
		Short: "BankLedger CLI tool",
		Long:  `A command line interface for interacting with the BankLedger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the BankLedger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(accountsCmd())
	rootCmd.AddCommand(depositCmd())
	rootCmd.AddCommand(withdrawCmd())
	rootCmd.AddCommand(transferCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(ledgerCmd())

	return rootCmd
}

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Account operations",
	}

	var holderName string
	var kycVerified bool
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Open a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON("/api/v1/accounts", map[string]any{
				"holder_name":     holderName,
				"is_kyc_verified": kycVerified,
			})
		},
	}
	createCmd.Flags().StringVar(&holderName, "name", "", "Account holder name")
	createCmd.Flags().BoolVar(&kycVerified, "kyc", false, "Mark the holder as KYC verified")
	_ = createCmd.MarkFlagRequired("name")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/accounts")
		},
	}

	getCmd := &cobra.Command{
		Use:   "get <account-no>",
		Short: "Show one account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/accounts/" + args[0])
		},
	}

	transactionsCmd := &cobra.Command{
		Use:   "transactions <account-no>",
		Short: "Show an account's transaction history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/accounts/" + args[0] + "/transactions")
		},
	}

	cmd.AddCommand(createCmd, listCmd, getCmd, transactionsCmd)

	return cmd
}

func depositCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deposit <account-no> <amount>",
		Short: "Deposit money into an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON("/api/v1/deposits", map[string]any{
				"account_no": args[0],
				"amount":     json.Number(args[1]),
			})
		},
	}
}

func withdrawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw <account-no> <amount>",
		Short: "Withdraw money from an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON("/api/v1/withdrawals", map[string]any{
				"account_no": args[0],
				"amount":     json.Number(args[1]),
			})
		},
	}
}

func transferCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transfer <sender-account-no> <receiver-account-no> <amount>",
		Short: "Transfer money between two accounts",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON("/api/v1/transfers", map[string]any{
				"sender_account_no":   args[0],
				"receiver_account_no": args[1],
				"amount":              json.Number(args[2]),
			})
		},
	}
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show ledger-wide statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/stats")
		},
	}
}

func ledgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "consistency",
		Short: "Check ledger consistency",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/ledger/consistency")
		},
	})

	return cmd
}

func getJSON(path string) error {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	return printResponse(resp)
}

func postJSON(path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	printJSON(decoded)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("request rejected (status %d)", resp.StatusCode)
	}

	return nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render output: %v\n", err)
		return
	}

	fmt.Println(string(out))
}
