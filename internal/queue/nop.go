package queue

import "context"

// NopPublisher заглушка publisher'а для окружений без брокера
// (rabbitmq.enabled = false в конфигурации). События только логируются.
type NopPublisher struct {
	log Logger
}

// NewNopPublisher создает publisher-заглушку
func NewNopPublisher(log Logger) *NopPublisher {
	return &NopPublisher{log: log}
}

func (p *NopPublisher) PublishReservationConfirmed(_ context.Context, event ReservationConfirmedEvent) error {
	p.log.Info("queue: broker disabled, skipping %s for reservation id=%d", QueueReservationConfirmed, event.ReservationID)
	return nil
}

func (p *NopPublisher) PublishRequestApproved(_ context.Context, event RequestApprovedEvent) error {
	p.log.Info("queue: broker disabled, skipping %s for request id=%d", QueueRequestApproved, event.RequestID)
	return nil
}

func (p *NopPublisher) PublishRequestRejected(_ context.Context, event RequestRejectedEvent) error {
	p.log.Info("queue: broker disabled, skipping %s for request id=%d", QueueRequestRejected, event.RequestID)
	return nil
}
