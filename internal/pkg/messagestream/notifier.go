package messagestream

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const (
	VariantDefault     = "default"
	VariantDestructive = "destructive"
)

// Notification is the transient user-visible message shown by the dashboard.
type Notification struct {
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Variant       string    `json:"variant"`
	ReservationID string    `json:"reservation_id,omitempty"`
	SessionID     string    `json:"session_id,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

type publisherNotifier struct {
	publisher message.Publisher
	topic     string
	log       *otelzap.Logger
	now       func() time.Time
}

func NewNotifier(publisher message.Publisher, topic string, log *otelzap.Logger) Notifier {
	return &publisherNotifier{
		publisher: publisher,
		topic:     topic,
		log:       log,
		now:       time.Now,
	}
}

func (p *publisherNotifier) Notify(ctx context.Context, n Notification) error {
	if n.Variant == "" {
		n.Variant = VariantDefault
	}
	if n.OccurredAt.IsZero() {
		n.OccurredAt = p.now().UTC()
	}

	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	msg.Metadata.Set("variant", n.Variant)

	if err := p.publisher.Publish(p.topic, msg); err != nil {
		p.log.Ctx(ctx).Error(fmt.Sprintf("error publish notification %q: %v", n.Title, err))
		return err
	}

	return nil
}
