//go:build integration

package client

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	v1alpha1 "github.com/KirkDiggler/rpg-pantheon/internal/handlers/favor/v1alpha1"
)

func TestJoinAndLeaveIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	grpcServerAddress := os.Getenv("GRPC_SERVER_ADDRESS")
	if grpcServerAddress == "" {
		grpcServerAddress = "localhost:50051"
	}
	conn, err := grpc.NewClient(grpcServerAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer func() {
		if err := conn.Close(); err != nil {
			t.Logf("Failed to close connection: %v", err)
		}
	}()

	client := v1alpha1.NewFavorServiceClient(conn)
	ctx := context.Background()

	request := func(fields map[string]any) *structpb.Struct {
		req, err := structpb.NewStruct(fields)
		require.NoError(t, err)
		return req
	}

	started, err := client.Call(ctx, v1alpha1.MethodStartSession, request(map[string]any{"species": "human"}))
	require.NoError(t, err)
	id := started.GetFields()["session_id"].GetStringValue()
	require.NotEmpty(t, id)

	joined, err := client.Call(ctx, v1alpha1.MethodJoin, request(map[string]any{"session_id": id, "patron": "trog"}))
	require.NoError(t, err)
	assert.True(t, joined.GetFields()["joined"].GetBoolValue())

	left, err := client.Call(ctx, v1alpha1.MethodLeave, request(map[string]any{"session_id": id}))
	require.NoError(t, err)
	assert.Equal(t, "trog", left.GetFields()["former"].GetStringValue())
	assert.Equal(t, float64(50), left.GetFields()["penance"].GetNumberValue())

	status, err := client.Call(ctx, v1alpha1.MethodGetStatus, request(map[string]any{"session_id": id}))
	require.NoError(t, err)
	assert.Equal(t, "none", status.GetFields()["status"].GetStructValue().GetFields()["patron"].GetStringValue())
}
