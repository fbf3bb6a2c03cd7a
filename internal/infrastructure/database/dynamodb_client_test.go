package database

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"monopay/internal/infrastructure/config"
)

func TestNewDynamoDBConfig(t *testing.T) {
	cfg, err := NewDynamoDBConfig(context.Background(), config.AWSConfig{
		Region:          "eu-central-1",
		AccessKeyID:     "local",
		SecretAccessKey: "local",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Region != "eu-central-1" {
		t.Fatalf("expected region eu-central-1, got %s", cfg.Region)
	}
	creds, err := cfg.Credentials.Retrieve(context.Background())
	if err != nil || creds.AccessKeyID != "local" {
		t.Fatalf("unexpected credentials: %+v %v", creds, err)
	}
}

func TestConnectDynamoDB_Endpoint(t *testing.T) {
	client, err := ConnectDynamoDB(context.Background(), config.AWSConfig{
		Region:          "us-east-1",
		AccessKeyID:     "local",
		SecretAccessKey: "local",
		Endpoint:        "http://localhost:8000",
	})
	if err != nil || client == nil {
		t.Fatalf("unexpected result: %v", err)
	}
	if got := client.Options().BaseEndpoint; got == nil || *got != "http://localhost:8000" {
		t.Fatalf("expected base endpoint override, got %v", got)
	}
}

func localClient(t *testing.T, endpoint string) TableDescriber {
	t.Helper()
	client, err := ConnectDynamoDB(context.Background(), config.AWSConfig{
		Region:          "us-east-1",
		AccessKeyID:     "local",
		SecretAccessKey: "local",
		Endpoint:        endpoint,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return client
}

func TestPingTable_Reachable(t *testing.T) {
	var target string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		target = r.Header.Get("X-Amz-Target")
		w.Header().Set("Content-Type", "application/x-amz-json-1.0")
		_, _ = w.Write([]byte(`{"Table":{"TableName":"gateway_operations","TableStatus":"ACTIVE"}}`))
	}))
	defer srv.Close()

	if err := PingTable(context.Background(), localClient(t, srv.URL), "gateway_operations", time.Second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(target, ".DescribeTable") {
		t.Fatalf("expected DescribeTable call, got %q", target)
	}
}

func TestPingTable_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	start := time.Now()
	err := PingTable(context.Background(), localClient(t, endpoint), "gateway_operations", time.Second)
	if err == nil {
		t.Fatalf("expected error for unreachable endpoint")
	}
	if !strings.Contains(err.Error(), "gateway_operations") {
		t.Fatalf("expected table name in error, got %v", err)
	}
	if time.Since(start) > 2*time.Second {
		t.Fatalf("ping exceeded its timeout")
	}
}

func TestPingTable_MissingTable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/x-amz-json-1.0")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"__type":"com.amazonaws.dynamodb.v20120810#ResourceNotFoundException","message":"Requested resource not found"}`))
	}))
	defer srv.Close()

	if err := PingTable(context.Background(), localClient(t, srv.URL), "missing", time.Second); err == nil {
		t.Fatalf("expected error for missing table")
	}
}
