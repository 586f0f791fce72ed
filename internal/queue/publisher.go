package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Publisher публикует доменные события в RabbitMQ.
// Ошибки публикации логируются и возвращаются, но вызывающий код
// их игнорирует: доставка уведомлений не должна ломать основной
// поток обработки запроса.
type Publisher struct {
	url string
	log Logger
}

// NewPublisher создает publisher для указанного AMQP URL
func NewPublisher(url string, log Logger) *Publisher {
	return &Publisher{url: url, log: log}
}

// PublishReservationConfirmed публикует событие подтверждения бронирования
func (p *Publisher) PublishReservationConfirmed(ctx context.Context, event ReservationConfirmedEvent) error {
	return p.publish(ctx, QueueReservationConfirmed, event)
}

// PublishRequestApproved публикует событие одобрения запроса
func (p *Publisher) PublishRequestApproved(ctx context.Context, event RequestApprovedEvent) error {
	return p.publish(ctx, QueueRequestApproved, event)
}

// PublishRequestRejected публикует событие отклонения запроса
func (p *Publisher) PublishRequestRejected(ctx context.Context, event RequestRejectedEvent) error {
	return p.publish(ctx, QueueRequestRejected, event)
}

// publish отправляет событие в durable-очередь default exchange.
// Соединение открывается на публикацию: событий мало (единицы в минуту),
// постоянный канал того не стоит.
func (p *Publisher) publish(ctx context.Context, queueName string, event interface{}) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Error("queue: dial failed for %s: %v", queueName, err)
		return fmt.Errorf("queue: dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Error("queue: channel open failed for %s: %v", queueName, err)
		return fmt.Errorf("queue: channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	// Декларация идемпотентна; durable - сообщения переживают рестарт брокера
	if _, err := ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	); err != nil {
		p.log.Error("queue: declare failed for %s: %v", queueName, err)
		return fmt.Errorf("queue: declare: %w", err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.log.Error("queue: marshal event failed for %s: %v", queueName, err)
		return fmt.Errorf("queue: marshal: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",        // default exchange
		queueName, // routing key = имя очереди
		false,     // mandatory
		false,     // immediate
		pub,
	); err != nil {
		p.log.Error("queue: publish failed for %s: %v", queueName, err)
		return fmt.Errorf("queue: publish: %w", err)
	}

	return nil
}
