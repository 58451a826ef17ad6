package jetstream_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stableflow/reserve-engine/internal/domain"
	"github.com/stableflow/reserve-engine/internal/logger"
	"github.com/stableflow/reserve-engine/internal/mocks"
	"github.com/stableflow/reserve-engine/internal/providers/jetstream"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func testConfig() jetstream.Config {
	return jetstream.Config{
		URL:            "nats://localhost:4222",
		StreamName:     "ENGINE_EVENTS",
		MaxReconnects:  3,
		ReconnectWait:  time.Second,
		ConnectionName: "reserve-engine-test",
	}
}

func TestNewPublisherConnects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	natsJS := mocks.NewMockNatsJetStream(ctrl)
	nc := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)
	natsJS.EXPECT().Connect("nats://localhost:4222", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nc, js, nil)

	pub, err := jetstream.NewPublisher(testConfig(), natsJS, mocks.NewMockJSON(ctrl))
	require.NoError(t, err)
	require.NotNil(t, pub)

	nc.EXPECT().Close()
	pub.Close()
}

func TestNewPublisherConnectError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	natsJS := mocks.NewMockNatsJetStream(ctrl)
	natsJS.EXPECT().Connect(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil, assert.AnError)

	pub, err := jetstream.NewPublisher(testConfig(), natsJS, mocks.NewMockJSON(ctrl))
	assert.Error(t, err)
	assert.Nil(t, pub)
}

func TestPublishEventSubject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	natsJS := mocks.NewMockNatsJetStream(ctrl)
	nc := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)
	jsonAdapter := mocks.NewMockJSON(ctrl)
	natsJS.EXPECT().Connect(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nc, js, nil)

	pub, err := jetstream.NewPublisher(testConfig(), natsJS, jsonAdapter)
	require.NoError(t, err)

	event := &domain.Event{
		ID:    "evt-1",
		Type:  domain.EventTypeExpansion,
		Value: "1000",
	}
	payload := []byte(`{"id":"evt-1"}`)
	jsonAdapter.EXPECT().Marshal(event).Return(payload, nil)
	// subject is derived from the event type
	js.EXPECT().Publish(gomock.Any(), "events.engine.expansion", payload).Return(nil, nil)

	assert.NoError(t, pub.PublishEvent(context.Background(), event))
}

func TestPublishEventMarshalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	natsJS := mocks.NewMockNatsJetStream(ctrl)
	jsonAdapter := mocks.NewMockJSON(ctrl)
	natsJS.EXPECT().Connect(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(mocks.NewMockNatsConn(ctrl), mocks.NewMockJetStream(ctrl), nil)

	pub, err := jetstream.NewPublisher(testConfig(), natsJS, jsonAdapter)
	require.NoError(t, err)

	jsonAdapter.EXPECT().Marshal(gomock.Any()).Return(nil, assert.AnError)
	assert.Error(t, pub.PublishEvent(context.Background(), &domain.Event{Type: domain.EventTypeMint}))
}

func TestPublishEventPublishError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	natsJS := mocks.NewMockNatsJetStream(ctrl)
	js := mocks.NewMockJetStream(ctrl)
	jsonAdapter := mocks.NewMockJSON(ctrl)
	natsJS.EXPECT().Connect(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(mocks.NewMockNatsConn(ctrl), js, nil)

	pub, err := jetstream.NewPublisher(testConfig(), natsJS, jsonAdapter)
	require.NoError(t, err)

	jsonAdapter.EXPECT().Marshal(gomock.Any()).Return([]byte("{}"), nil)
	js.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, assert.AnError)
	assert.Error(t, pub.PublishEvent(context.Background(), &domain.Event{Type: domain.EventTypeMint}))
}
