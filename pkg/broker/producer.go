package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/antoniocesar16/addon-api-mkauth/internal/entity"
)

const (
	EventInvoiceReceived = "invoice.received"
	EventInvoiceReversed = "invoice.reversed"
)

// InvoiceEvent is published after an invoice transition has been committed.
type InvoiceEvent struct {
	Type          string          `json:"type"`
	InvoiceRef    string          `json:"invoice_ref"`
	InvoiceID     int64           `json:"invoice_id"`
	CustomerLogin string          `json:"customer_login"`
	Amount        decimal.Decimal `json:"amount"`
	Actor         string          `json:"actor"`
	EntryUUID     string          `json:"entry_uuid"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Producer struct {
	l     *slog.Logger
	w     messageWriter
	topic string
}

// NewProducer builds a synchronous writer: WriteMessages returns once the
// brokers acknowledged the message or the write failed.
func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		Async:                  false,
		WriteTimeout:           5 * time.Second,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return newProducer(l, w, topic)
}

func newProducer(l *slog.Logger, w messageWriter, topic string) *Producer {
	return &Producer{
		l:     l,
		w:     w,
		topic: topic,
	}
}

func (p *Producer) InvoiceReceived(ctx context.Context, inv entity.Invoice, r entity.Receipt, at time.Time) {
	p.send(ctx, InvoiceEvent{
		Type:          EventInvoiceReceived,
		InvoiceRef:    inv.Ref,
		InvoiceID:     inv.ID,
		CustomerLogin: inv.CustomerLogin,
		Amount:        r.Amount,
		Actor:         r.Collector,
		EntryUUID:     r.EntryUUID,
		OccurredAt:    at,
	})
}

func (p *Producer) InvoiceReversed(ctx context.Context, inv entity.Invoice, r entity.Reversal, at time.Time) {
	p.send(ctx, InvoiceEvent{
		Type:          EventInvoiceReversed,
		InvoiceRef:    inv.Ref,
		InvoiceID:     inv.ID,
		CustomerLogin: inv.CustomerLogin,
		Amount:        r.Amount,
		Actor:         r.Actor,
		EntryUUID:     r.EntryUUID,
		OccurredAt:    at,
	})
}

func (p *Producer) send(ctx context.Context, event InvoiceEvent) {
	b, err := json.Marshal(event)
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.InvoiceRef),
		Value: b,
		Topic: p.topic,
	})
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("write kafka message: %s", err), "event", event.Type)
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}

// Nop drops every event. Used when no brokers are configured.
type Nop struct{}

func (Nop) InvoiceReceived(context.Context, entity.Invoice, entity.Receipt, time.Time) {}

func (Nop) InvoiceReversed(context.Context, entity.Invoice, entity.Reversal, time.Time) {}
