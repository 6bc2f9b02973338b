// Package client provides commands that call a running favor service
package client

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	v1alpha1 "github.com/KirkDiggler/rpg-pantheon/internal/handlers/favor/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	sessionID  string
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Call a running favor service",
	Long:  `Client commands drive a favor session on a running server by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&sessionID, "session", "", "Session ID")

	ClientCmd.AddCommand(startSessionCmd)
	ClientCmd.AddCommand(statusCmd)
	ClientCmd.AddCommand(joinCmd)
	ClientCmd.AddCommand(leaveCmd)
	ClientCmd.AddCommand(gainPietyCmd)
	ClientCmd.AddCommand(losePietyCmd)
	ClientCmd.AddCommand(dockPietyCmd)
	ClientCmd.AddCommand(penanceCmd)
	ClientCmd.AddCommand(passTimeCmd)
	ClientCmd.AddCommand(endTurnCmd)
	ClientCmd.AddCommand(giftCmd)
}

// createFavorClient creates a favor service client
func createFavorClient() (*v1alpha1.FavorServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewFavorServiceClient(conn), cleanup, nil
}

// call sends one request for the --session session and prints the result
func call(method string, fields map[string]any) error {
	if method != v1alpha1.MethodStartSession && sessionID == "" {
		return fmt.Errorf("--session is required")
	}

	client, cleanup, err := createFavorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if fields == nil {
		fields = map[string]any{}
	}
	if sessionID != "" {
		fields["session_id"] = sessionID
	}
	req, err := structpb.NewStruct(fields)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := client.Call(ctx, method, req)
	if err != nil {
		return fmt.Errorf("%s failed: %w", method, err)
	}

	fmt.Println(v1alpha1.Describe(resp))
	if extra := results(resp); extra != "" {
		fmt.Println(extra)
	}
	return nil
}

// results renders the method-specific fields of a response
func results(resp *structpb.Struct) string {
	var parts []string
	for k, v := range resp.AsMap() {
		switch k {
		case "session_id", "status", "messages":
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%v", k, v))
	}
	sort.Strings(parts)
	return strings.Join(parts, " ")
}
