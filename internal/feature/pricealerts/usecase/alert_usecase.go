package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"stockwatch/internal/feature/pricealerts/domain/entity"
)

// Alert lifecycle event names. Each is published on subject "alerts.<name>".
const (
	EventCreated     = "created"
	EventActivated   = "activated"
	EventDeactivated = "deactivated"
	EventTriggered   = "triggered"
	EventDeleted     = "deleted"
)

// AlertRepository abstracts the persistence layer for price alerts.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type AlertRepository interface {
	// Create persists a and assigns its ID.
	Create(ctx context.Context, a *entity.PriceAlert) error
	// FindByID returns ErrAlertNotFound when absent.
	FindByID(ctx context.Context, id uint) (*entity.PriceAlert, error)
	// ListByUser returns the user's alerts, only the active ones when activeOnly is set.
	ListByUser(ctx context.Context, userID string, activeOnly bool) ([]entity.PriceAlert, error)
	ListActiveByStock(ctx context.Context, stockID uint) ([]entity.PriceAlert, error)
	// UpdateState writes IsActive and TriggeredAt. It returns ErrAlertNotFound when the row is gone.
	UpdateState(ctx context.Context, a *entity.PriceAlert) error
	// Delete returns ErrAlertNotFound when nothing was deleted.
	Delete(ctx context.Context, id uint) error
}

// UserLookup reports whether a user is registered.
type UserLookup interface {
	UserExists(ctx context.Context, userID string) (bool, error)
}

// StockLookup reports whether a stock is in the catalog.
type StockLookup interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// EventPublisher publishes a JSON payload on a subject.
type EventPublisher interface {
	Publish(ctx context.Context, subject string, payload any) error
}

// AlertEvent is the payload of an alert lifecycle event.
type AlertEvent struct {
	Event       string          `json:"event"`
	AlertID     uint            `json:"alertId"`
	UserID      string          `json:"userId"`
	StockID     uint            `json:"stockId"`
	TargetPrice decimal.Decimal `json:"targetPrice"`
	AlertType   string          `json:"alertType"`
	IsActive    bool            `json:"isActive"`
	TriggeredAt *time.Time      `json:"triggeredAt"`
	OccurredAt  time.Time       `json:"occurredAt"`
}

// AlertUsecase provides the price alert operations.
type AlertUsecase struct {
	repo   AlertRepository
	users  UserLookup
	stocks StockLookup
	events EventPublisher
	now    func() time.Time
}

// NewAlertUsecase creates a new AlertUsecase. events may be nil, in which case nothing is published.
func NewAlertUsecase(repo AlertRepository, users UserLookup, stocks StockLookup, events EventPublisher) *AlertUsecase {
	return &AlertUsecase{repo: repo, users: users, stocks: stocks, events: events, now: time.Now}
}

// Create registers a new active alert.
// References are checked before the values: user, then stock, then target price and type.
func (u *AlertUsecase) Create(ctx context.Context, in entity.NewAlert) (*entity.PriceAlert, error) {
	if err := u.requireUser(ctx, in.UserID); err != nil {
		return nil, err
	}
	if err := u.requireStock(ctx, in.StockID); err != nil {
		return nil, err
	}
	if !in.TargetPrice.IsPositive() {
		return nil, ErrInvalidTargetPrice
	}
	if !entity.FitsPriceScale(in.TargetPrice) {
		return nil, ErrTargetPriceScale
	}
	alertType, ok := entity.ParseAlertType(in.AlertType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAlertType, in.AlertType)
	}

	a := &entity.PriceAlert{
		UserID:      in.UserID,
		StockID:     in.StockID,
		TargetPrice: in.TargetPrice,
		AlertType:   alertType,
		IsActive:    true,
		CreatedAt:   u.now().UTC(),
	}
	if err := u.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	slog.Info("price alert created", "id", a.ID, "user_id", a.UserID, "stock_id", a.StockID, "type", a.AlertType)
	u.publish(ctx, EventCreated, a)
	return a, nil
}

// GetByID returns the alert with the given id.
func (u *AlertUsecase) GetByID(ctx context.Context, id uint) (*entity.PriceAlert, error) {
	return u.repo.FindByID(ctx, id)
}

// ListActiveForUser returns the active alerts of a registered user.
func (u *AlertUsecase) ListActiveForUser(ctx context.Context, userID string) ([]entity.PriceAlert, error) {
	if err := u.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return u.repo.ListByUser(ctx, userID, true)
}

// ListAllForUser returns every alert of a registered user.
func (u *AlertUsecase) ListAllForUser(ctx context.Context, userID string) ([]entity.PriceAlert, error) {
	if err := u.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return u.repo.ListByUser(ctx, userID, false)
}

// ListActiveForStock returns the active alerts on a stock in the catalog.
func (u *AlertUsecase) ListActiveForStock(ctx context.Context, stockID uint) ([]entity.PriceAlert, error) {
	if err := u.requireStock(ctx, stockID); err != nil {
		return nil, err
	}
	return u.repo.ListActiveByStock(ctx, stockID)
}

// SetActive switches the alert on or off. Switching off discards the trigger time.
func (u *AlertUsecase) SetActive(ctx context.Context, id uint, active bool) (*entity.PriceAlert, error) {
	a, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	a.SetActive(active)
	if err := u.repo.UpdateState(ctx, a); err != nil {
		return nil, err
	}

	event := EventDeactivated
	if active {
		event = EventActivated
	}
	slog.Info("price alert "+event, "id", id)
	u.publish(ctx, event, a)
	return a, nil
}

// MarkTriggered records that an active alert's condition was met at the given time.
// The price itself is not checked here.
func (u *AlertUsecase) MarkTriggered(ctx context.Context, id uint, at time.Time) (*entity.PriceAlert, error) {
	if at.IsZero() {
		return nil, ErrInvalidTriggerTime
	}
	a, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !a.IsActive {
		return nil, ErrAlertInactive
	}
	a.MarkTriggered(at.UTC())
	if err := u.repo.UpdateState(ctx, a); err != nil {
		return nil, err
	}
	slog.Info("price alert triggered", "id", id, "at", at)
	u.publish(ctx, EventTriggered, a)
	return a, nil
}

// Delete removes the alert.
func (u *AlertUsecase) Delete(ctx context.Context, id uint) error {
	a, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("price alert deleted", "id", id)
	u.publish(ctx, EventDeleted, a)
	return nil
}

func (u *AlertUsecase) requireUser(ctx context.Context, userID string) error {
	ok, err := u.users.UserExists(ctx, userID)
	if err != nil {
		return fmt.Errorf("check user %s: %w", userID, err)
	}
	if !ok {
		return ErrUserNotFound
	}
	return nil
}

func (u *AlertUsecase) requireStock(ctx context.Context, stockID uint) error {
	ok, err := u.stocks.Exists(ctx, stockID)
	if err != nil {
		return fmt.Errorf("check stock %d: %w", stockID, err)
	}
	if !ok {
		return ErrStockNotFound
	}
	return nil
}

// publish failures are logged and never fail the operation.
func (u *AlertUsecase) publish(ctx context.Context, event string, a *entity.PriceAlert) {
	if u.events == nil {
		return
	}
	ev := AlertEvent{
		Event:       event,
		AlertID:     a.ID,
		UserID:      a.UserID,
		StockID:     a.StockID,
		TargetPrice: a.TargetPrice,
		AlertType:   string(a.AlertType),
		IsActive:    a.IsActive,
		TriggeredAt: a.TriggeredAt,
		OccurredAt:  u.now().UTC(),
	}
	if err := u.events.Publish(ctx, "alerts."+event, ev); err != nil {
		slog.Warn("publish alert event failed", "error", err, "event", event, "id", a.ID)
	}
}
