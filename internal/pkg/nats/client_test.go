package nats

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runServer(t *testing.T) string {
	opts := natsserver.DefaultTestOptions
	opts.Port = -1
	srv := natsserver.RunServer(&opts)
	t.Cleanup(srv.Shutdown)
	return fmt.Sprintf("nats://%s", srv.Addr().String())
}

func TestNewClient_InvalidAddress(t *testing.T) {
	client, err := NewClient("nats://127.0.0.1:1", nats.Timeout(200*time.Millisecond), nats.NoReconnect())

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to NATS server")
}

func TestPublishJSON(t *testing.T) {
	client, err := NewClient(runServer(t))
	require.NoError(t, err)
	defer client.Close()
	assert.True(t, client.IsConnected())

	received := make(chan *nats.Msg, 1)
	sub, err := client.Subscribe("orders.created", func(msg *nats.Msg) {
		received <- msg
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	require.NoError(t, client.PublishJSON("orders.created", map[string]string{"order_id": "42"}))

	select {
	case msg := <-received:
		var body map[string]string
		require.NoError(t, json.Unmarshal(msg.Data, &body))
		assert.Equal(t, "42", body["order_id"])
	case <-time.After(2 * time.Second):
		t.Fatal("message not received")
	}
}

func TestPublishJSON_MarshalError(t *testing.T) {
	client, err := NewClient(runServer(t))
	require.NoError(t, err)
	defer client.Close()

	err = client.PublishJSON("orders.created", make(chan int))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal message")
}
