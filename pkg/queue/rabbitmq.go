package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hello-madurai/pkg/config"
	"hello-madurai/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	NotificationQueueName = "notification_queue"
	NotificationExchange  = "notifications"
	ContentPublishedRoute = "content_published"
	DefaultPriority       = 5
	maxPriority           = 10
	publishTimeout        = 5 * time.Second
)

// NotificationTask is the message handed from the content service to the
// notification service when a record is published.
type NotificationTask struct {
	Kind      string   `json:"kind"`
	ContentID string   `json:"content_id"`
	Title     string   `json:"title"`
	TitleTa   string   `json:"title_ta,omitempty"`
	Body      string   `json:"body"`
	BodyTa    string   `json:"body_ta,omitempty"`
	ImageURL  string   `json:"image_url,omitempty"`
	Link      string   `json:"link,omitempty"`
	Tokens    []string `json:"tokens,omitempty"`
	Priority  int      `json:"priority,omitempty"`
}

func (t NotificationTask) Validate() error {
	if t.Kind == "" {
		return fmt.Errorf("task kind is required")
	}
	if t.ContentID == "" {
		return fmt.Errorf("task content_id is required")
	}
	if t.Title == "" && t.TitleTa == "" {
		return fmt.Errorf("task has no title")
	}
	return nil
}

// Publisher is what the content service needs from the queue.
type Publisher interface {
	PublishNotificationTask(ctx context.Context, task NotificationTask) error
}

// TaskHandler returning an error makes the message go back to the queue.
type TaskHandler func(ctx context.Context, task NotificationTask) error

type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *logger.Logger
}

func NewRabbitMQClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%s/",
		cfg.RabbitMQUser,
		cfg.RabbitMQPassword,
		cfg.RabbitMQHost,
		cfg.RabbitMQPort,
	)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		NotificationExchange, // name
		"direct",             // type
		true,                 // durable
		false,                // auto-deleted
		false,                // internal
		false,                // no-wait
		nil,                  // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	_, err = channel.QueueDeclare(
		NotificationQueueName, // name
		true,                  // durable
		false,                 // delete when unused
		false,                 // exclusive
		false,                 // no-wait
		amqp.Table{
			"x-max-priority": maxPriority,
		},
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	err = channel.QueueBind(
		NotificationQueueName, // queue name
		ContentPublishedRoute, // routing key
		NotificationExchange,  // exchange
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	// Prefetch one task per consumer.
	if err := channel.Qos(1, 0, false); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to set qos: %w", err)
	}

	log.Info("Connected to RabbitMQ at %s:%s", cfg.RabbitMQHost, cfg.RabbitMQPort)

	return &Client{
		conn:    conn,
		channel: channel,
		logger:  log,
	}, nil
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

func clampPriority(p int) uint8 {
	if p <= 0 {
		return DefaultPriority
	}
	if p > maxPriority {
		return maxPriority
	}
	return uint8(p)
}

// PublishNotificationTask publishes a persistent task with priority.
func (c *Client) PublishNotificationTask(ctx context.Context, task NotificationTask) error {
	body, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to marshal task: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = c.channel.PublishWithContext(ctx,
		NotificationExchange,  // exchange
		ContentPublishedRoute, // routing key
		false,                 // mandatory
		false,                 // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			Priority:     clampPriority(task.Priority),
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			MessageId:    task.Kind + ":" + task.ContentID,
		},
	)
	if err != nil {
		c.logger.Error("[RABBITMQ] Failed to publish task kind=%s content_id=%s: %v", task.Kind, task.ContentID, err)
		return fmt.Errorf("failed to publish message: %w", err)
	}

	c.logger.Info("[RABBITMQ] Published notification task kind=%s content_id=%s", task.Kind, task.ContentID)
	return nil
}

// DecodeTask parses a queue message body.
func DecodeTask(body []byte) (NotificationTask, error) {
	var task NotificationTask
	if err := json.Unmarshal(body, &task); err != nil {
		return task, fmt.Errorf("failed to unmarshal task: %w", err)
	}
	if err := task.Validate(); err != nil {
		return task, err
	}
	return task, nil
}

// ConsumeNotificationTasks runs handler for every delivery until ctx is done
// or the channel closes. Malformed tasks are dropped, handler errors requeue.
func (c *Client) ConsumeNotificationTasks(ctx context.Context, handler TaskHandler) error {
	msgs, err := c.channel.Consume(
		NotificationQueueName, // queue
		"",                    // consumer
		false,                 // auto-ack
		false,                 // exclusive
		false,                 // no-local
		false,                 // no-wait
		nil,                   // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	c.logger.Info("[RABBITMQ] Started consuming from notification queue: %s", NotificationQueueName)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					c.logger.Warn("[RABBITMQ] Delivery channel closed")
					return
				}
				c.handleDelivery(ctx, msg, handler)
			}
		}
	}()

	return nil
}

func (c *Client) handleDelivery(ctx context.Context, msg amqp.Delivery, handler TaskHandler) {
	task, err := DecodeTask(msg.Body)
	if err != nil {
		c.logger.Error("[RABBITMQ] Dropping malformed notification task: %v, body=%s", err, string(msg.Body))
		msg.Nack(false, false)
		return
	}

	if err := handler(ctx, task); err != nil {
		c.logger.Error("[RABBITMQ] Handler failed kind=%s content_id=%s: %v", task.Kind, task.ContentID, err)
		msg.Nack(false, true)
		return
	}

	msg.Ack(false)
}

// GetQueueLength returns the number of messages in the queue
func (c *Client) GetQueueLength() (int, error) {
	queue, err := c.channel.QueueInspect(NotificationQueueName)
	if err != nil {
		return 0, err
	}
	return queue.Messages, nil
}
