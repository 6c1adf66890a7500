package tourguide

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	models "github.com/glkeru/tourguide/internal/models"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const queue = "rewards"

type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type RabbitPublisher struct {
	conn *amqp.Connection
	ch   publisher
}

func NewRabbitPublisher() (rabbit *RabbitPublisher, err error) {
	// config
	rabbiturl := os.Getenv("RABBIT_URL")
	if rabbiturl == "" {
		return nil, fmt.Errorf("env RABBIT_URL is not set")
	}
	rabbitport := os.Getenv("RABBIT_PORT")
	if rabbitport == "" {
		return nil, fmt.Errorf("env RABBIT_PORT is not set")
	}
	rabbituser := os.Getenv("RABBIT_USER")
	if rabbituser == "" {
		return nil, fmt.Errorf("env RABBIT_USER is not set")
	}
	rabbitpass := os.Getenv("RABBIT_PASSWORD")
	if rabbitpass == "" {
		return nil, fmt.Errorf("env RABBIT_PASSWORD is not set")
	}

	rabbitconn := "amqp://" + rabbituser + ":" + rabbitpass + "@" + rabbiturl + ":" + rabbitport + "/tourguide"
	conn, err := amqp.Dial(rabbitconn)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	_, err = ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &RabbitPublisher{conn, ch}, nil
}

func (r *RabbitPublisher) Close() {
	if ch, ok := r.ch.(*amqp.Channel); ok {
		ch.Close()
	}
	if r.conn != nil {
		r.conn.Close()
	}
}

type RewardMessage struct {
	UserId         uuid.UUID `json:"userId"`
	AttractionId   uuid.UUID `json:"attractionId"`
	AttractionName string    `json:"attractionName"`
	Points         int       `json:"points"`
}

// уведомление о начисленной награде
func (r *RabbitPublisher) RewardGranted(ctx context.Context, userId uuid.UUID, reward models.Reward) error {
	st := &RewardMessage{userId, reward.Attraction.ID, reward.Attraction.Name, reward.Points}
	msg, err := json.Marshal(st)
	if err != nil {
		return err
	}

	return r.ch.PublishWithContext(ctx,
		"",    // exchange
		queue, // routing key
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         msg,
		})
}
