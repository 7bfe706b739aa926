// Package messaging はNATS JetStreamへのイベント発行を提供します。
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// defaultPublishTimeout は1件の発行で受領確認を待つ上限です。
// 再接続中でもアラート操作がこれ以上待たされることはありません。
const defaultPublishTimeout = 2 * time.Second

// streamPublisher はjetstream.JetStreamのうち発行に使うメソッドだけを切り出したものです。
type streamPublisher interface {
	Publish(ctx context.Context, subject string, payload []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
}

// JetStreamPublisher はペイロードをJSONにしてJetStreamへ発行します。
type JetStreamPublisher struct {
	conn    *nats.Conn
	js      streamPublisher
	timeout time.Duration
}

// StreamConfig はアラートイベントを保持するストリームの設定を返します。
// subjectsは "<prefix>.*" です。
func StreamConfig(name, prefix string) jetstream.StreamConfig {
	return jetstream.StreamConfig{
		Name:        name,
		Subjects:    []string{prefix + ".*"},
		Description: "price alert lifecycle events",
		Retention:   jetstream.LimitsPolicy,
		MaxMsgs:     50000,
		MaxBytes:    50 * 1024 * 1024,
		MaxAge:      7 * 24 * time.Hour,
	}
}

// Connect はNATSに接続し、ストリームを作成または更新します。
func Connect(ctx context.Context, url string, stream jetstream.StreamConfig) (*JetStreamPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("stockwatch"),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			slog.Warn("NATS disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			slog.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("create JetStream context: %w", err)
	}
	if _, err := js.CreateOrUpdateStream(ctx, stream); err != nil {
		nc.Close()
		return nil, fmt.Errorf("create stream %s: %w", stream.Name, err)
	}

	slog.Info("NATS connection successful", "url", url, "stream", stream.Name)
	return &JetStreamPublisher{conn: nc, js: js, timeout: defaultPublishTimeout}, nil
}

// Publish はpayloadをJSONにしてsubjectへ発行し、サーバーの受領確認を待ちます。
// 待ち時間はctxの期限とは別にp.timeoutで打ち切ります。
func (p *JetStreamPublisher) Publish(ctx context.Context, subject string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", subject, err)
	}

	timeout := p.timeout
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if _, err := p.js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("publish to %s: %w", subject, err)
	}
	slog.Debug("event published", "subject", subject, "bytes", len(data))
	return nil
}

// Close はバッファ済みのメッセージを送り切ってから接続を閉じます。
func (p *JetStreamPublisher) Close() error {
	if p.conn == nil {
		return nil
	}
	return p.conn.Drain()
}

// NopPublisher はNATSが設定されていない場合に使う何もしない実装です。
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) error { return nil }
