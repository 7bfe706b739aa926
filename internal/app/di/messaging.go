package di

import (
	"context"
	"log/slog"

	alertusecase "stockwatch/internal/feature/pricealerts/usecase"
	"stockwatch/internal/platform/messaging"
)

// alertSubjectPrefix はアラートイベントのsubjectの接頭辞です。
const alertSubjectPrefix = "alerts"

// NewAlertPublisher はアラートイベントの発行先を生成します。
// urlが空、またはNATSに接続できない場合は何も発行しない実装を返します。
// 返されたclose関数は常に呼び出せます。
func NewAlertPublisher(ctx context.Context, url, stream string) (alertusecase.EventPublisher, func() error) {
	if url == "" {
		slog.Info("NATS_URL is not set. Alert events are not published.")
		return messaging.NopPublisher{}, func() error { return nil }
	}
	p, err := messaging.Connect(ctx, url, messaging.StreamConfig(stream, alertSubjectPrefix))
	if err != nil {
		slog.Warn("NATS unavailable. Alert events are not published.", "error", err)
		return messaging.NopPublisher{}, func() error { return nil }
	}
	return p, p.Close
}
