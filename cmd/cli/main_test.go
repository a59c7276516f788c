package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read stdout: %v", err)
	}
	return buf.String()
}

func TestPrintJSON(t *testing.T) {
	out := captureOutput(t, func() {
		printJSON(struct {
			A int `json:"a"`
		}{A: 1})
	})

	expected := "{\n  \"a\": 1\n}\n"
	if out != expected {
		t.Fatalf("unexpected json output:\n%s", out)
	}
}

func TestStatsCmdPrintsResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/stats" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"total_accounts":2,"total_system_balance":"300"}`))
	}))
	defer srv.Close()

	root := newRootCmd()
	root.SetArgs([]string{"stats", "--url", srv.URL})

	out := captureOutput(t, func() {
		if err := root.Execute(); err != nil {
			t.Fatalf("command failed: %v", err)
		}
	})

	if !strings.Contains(out, "total_accounts") {
		t.Fatalf("expected stats in output, got %q", out)
	}
}

func TestDepositCmdSendsPayload(t *testing.T) {
	var received []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/deposits" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		received, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"account_no":"ACC-20260901-00001","new_balance":"150"}`))
	}))
	defer srv.Close()

	root := newRootCmd()
	root.SetArgs([]string{"deposit", "ACC-20260901-00001", "150", "--url", srv.URL})

	captureOutput(t, func() {
		if err := root.Execute(); err != nil {
			t.Fatalf("command failed: %v", err)
		}
	})

	if !strings.Contains(string(received), `"amount":150`) {
		t.Fatalf("expected numeric amount in payload, got %s", string(received))
	}
}

func TestTransferCmdReportsRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"transfer failed","message":"insufficient balance"}`))
	}))
	defer srv.Close()

	root := newRootCmd()
	root.SetArgs([]string{"transfer", "ACC-20260901-00001", "ACC-20260901-00002", "999", "--url", srv.URL})
	root.SilenceErrors = true
	root.SilenceUsage = true

	var execErr error
	out := captureOutput(t, func() {
		execErr = root.Execute()
	})

	if execErr == nil {
		t.Fatal("expected an error for a rejected transfer")
	}
	if !strings.Contains(out, "insufficient balance") {
		t.Fatalf("expected rejection detail in output, got %q", out)
	}
}
