package publisher

import (
	"context"
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	config "github.com/thirdweb-dev/watcher/configs"
	"github.com/thirdweb-dev/watcher/internal/common"
)

func testEntry() common.Log {
	return common.Log{
		ChainId:         big.NewInt(1337),
		BlockNumber:     4,
		BlockHash:       "0x04",
		TransactionHash: "0xabc",
		LogIndex:        2,
		Address:         "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		Data:            "0x",
		Topics:          []string{"0xd282f389399565f3671145f5916e51652b60eee8e5c759293a2f5771b8ddfd2e"},
	}
}

func TestCreateEventMessage(t *testing.T) {
	entry := testEntry()

	record, err := createEventMessage(entry, "contract-events")
	require.NoError(t, err)
	assert.Equal(t, "contract-events", record.Topic)
	assert.Equal(t, "event-new-1337-0xabc-2", string(record.Key))

	var msg PublishableMessage
	require.NoError(t, json.Unmarshal(record.Value, &msg))
	assert.Equal(t, "new", msg.Status)
	assert.Equal(t, entry, msg.Data)
}

func TestCreateEventMessage_Removed(t *testing.T) {
	entry := testEntry()
	entry.Removed = true

	record, err := createEventMessage(entry, "contract-events")
	require.NoError(t, err)
	assert.Equal(t, "event-reverted-1337-0xabc-2", string(record.Key))
}

func TestTopicName(t *testing.T) {
	defer func(cfg config.PublisherConfig, rpcCfg config.RPCConfig) {
		config.Cfg.Publisher = cfg
		config.Cfg.RPC = rpcCfg
	}(config.Cfg.Publisher, config.Cfg.RPC)

	config.Cfg.Publisher.Topic = ""
	config.Cfg.RPC.ChainID = ""
	assert.Equal(t, "watcher.events", topicName())

	config.Cfg.RPC.ChainID = "1337"
	assert.Equal(t, "watcher.events.1337", topicName())

	config.Cfg.Publisher.Topic = "contract-events"
	assert.Equal(t, "contract-events", topicName())
}

func TestPublishLogs_WithoutClientIsNoop(t *testing.T) {
	p := &Publisher{}

	assert.False(t, p.Enabled())
	assert.NoError(t, p.PublishLog(testEntry()))
	assert.NoError(t, p.PublishLogs(context.Background(), []common.Log{testEntry()}))
	assert.NoError(t, p.Close())
}
