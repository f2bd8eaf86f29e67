package app

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"stockroom/pkg/rabbitmq"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditEvents(t *testing.T) {
	logger, hook := test.NewNullLogger()

	body, err := rabbitmq.EncodeEvent("stock.added", map[string]int{"quantity": 4}, time.Now())
	require.NoError(t, err)

	var event rabbitmq.Event
	require.NoError(t, json.Unmarshal(body, &event))

	require.NoError(t, AuditEvents(logger)(context.Background(), event))
	require.Len(t, hook.AllEntries(), 1)

	entry := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "stock.added", entry.Data["event"])
	assert.JSONEq(t, `{"quantity":4}`, entry.Data["payload"].(string))
}
