package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/salomebobokhidze/HotelManagement/internal/domain"
)

// Publisher emits reservation lifecycle events to Kafka without blocking
// the booking path. Messages are buffered in an inbox and flushed by a
// single writer goroutine; if the inbox fills up, new events are dropped
// with a warning rather than stalling a booking.
type Publisher struct {
	w        *kafka.Writer
	inbox    chan kafka.Message
	closed   chan struct{}
	producer string
}

func NewPublisher(brokers []string, producer string, buf int) *Publisher {
	return &Publisher{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        TopicReservations,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
		inbox:    make(chan kafka.Message, buf),
		closed:   make(chan struct{}),
		producer: producer,
	}
}

// Start launches the writer loop. Publish calls before Start queue into
// the inbox.
func (p *Publisher) Start() {
	go func() {
		defer close(p.closed)
		for m := range p.inbox {
			if err := p.w.WriteMessages(context.Background(), m); err != nil {
				log.Printf("WARN: publish event: %v", err)
			}
		}
		_ = p.w.Close()
	}()
}

// Close stops accepting events, flushes the inbox and waits for the
// writer loop to exit.
func (p *Publisher) Close() {
	close(p.inbox)
	<-p.closed
}

func (p *Publisher) ReservationCreated(ctx context.Context, res domain.Reservation) {
	p.publish(EventReservationCreated, res)
}

func (p *Publisher) ReservationCancelled(ctx context.Context, res domain.Reservation) {
	p.publish(EventReservationCancelled, res)
}

func (p *Publisher) publish(eventType string, res domain.Reservation) {
	payload, err := json.Marshal(ReservationPayload{
		ReservationID: res.ID,
		RoomID:        res.RoomID,
		HotelID:       res.HotelID,
		GuestID:       res.GuestID,
		CheckIn:       res.CheckIn.Format("2006-01-02"),
		CheckOut:      res.CheckOut.Format("2006-01-02"),
		Status:        string(res.Status),
	})
	if err != nil {
		log.Printf("WARN: marshal event payload: %v", err)
		return
	}

	envelope, err := json.Marshal(Envelope{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		OccurredAt: time.Now().UTC(),
		Producer:   p.producer,
		Payload:    payload,
	})
	if err != nil {
		log.Printf("WARN: marshal event envelope: %v", err)
		return
	}

	// Partition by room so events for one room keep their order.
	msg := kafka.Message{
		Key:   []byte(res.RoomID),
		Value: envelope,
		Time:  time.Now(),
	}

	select {
	case p.inbox <- msg:
	default:
		log.Printf("WARN: event inbox full, dropping %s for reservation %s", eventType, res.ID)
	}
}
