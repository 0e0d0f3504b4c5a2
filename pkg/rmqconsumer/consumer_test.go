package rmqconsumer

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"file-custody-api/config"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	defer func() { os.Stdout = old }()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	_ = w.Close()
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	_ = r.Close()
	return buf.String()
}

func Test_delivery_Table(t *testing.T) {
	type tc struct {
		name       string
		routingKey string
		body       string
		wantOut    string
	}
	cases := []tc{
		{"registered -> FileRegistered", "file.registered", `{"id":"a"}`, "Action=FileRegistered EventBody={\"id\":\"a\"}\n"},
		{"transferred -> FileTransferred", "file.transferred", `{"id":"b"}`, "Action=FileTransferred EventBody={\"id\":\"b\"}\n"},
		{"deleted -> FileDeleted", "file.deleted", `{"id":"c"}`, "Action=FileDeleted EventBody={\"id\":\"c\"}\n"},
		{"unknown -> empty", "file.renamed", `{"id":"d"}`, "Action= EventBody={\"id\":\"d\"}\n"},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			c := &Consumer{}
			out := captureStdout(t, func() {
				msg := amqp091.Delivery{RoutingKey: tt.routingKey, Body: []byte(tt.body)}
				err := c.delivery(msg)
				require.NoError(t, err)
			})
			require.Equal(t, tt.wantOut, out)
		})
	}
}

func TestConnect_InvalidDSN(t *testing.T) {
	l := zap.NewNop()
	c := New(config.MQ{}, l, nil)

	err := c.Connect("amqp://bad:://dsn")
	require.Error(t, err)
	require.Nil(t, c.chConsume)
	require.Nil(t, c.conn)
}
