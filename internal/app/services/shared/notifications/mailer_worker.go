package notifications

import (
	"context"
	"fmt"
	"medidata-service/internal/app/drivers/mailer"
	"medidata-service/internal/pkg/constvars"
	"medidata-service/internal/pkg/dto/requests"
	"net/smtp"
	"strings"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// MailerWorker drains the decision queue and emails patients about provider
// decisions. Delivery is best effort: a failed send is logged and the
// message dropped rather than requeued, so a dead SMTP host cannot wedge the
// queue.
type MailerWorker struct {
	Channel *amqp.Channel
	Client  *mailer.SMTPClient
	Queue   string
	Log     *zap.Logger
}

func NewMailerWorker(conn *amqp.Connection, client *mailer.SMTPClient, queue string, logger *zap.Logger) (*MailerWorker, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}
	if err := channel.Qos(1, 0, false); err != nil {
		return nil, err
	}

	return &MailerWorker{
		Channel: channel,
		Client:  client,
		Queue:   queue,
		Log:     logger,
	}, nil
}

// Run consumes until ctx is cancelled or the channel closes.
func (w *MailerWorker) Run(ctx context.Context) error {
	deliveries, err := w.Channel.Consume(w.Queue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				return nil
			}
			w.handle(delivery)
		}
	}
}

func (w *MailerWorker) handle(delivery amqp.Delivery) {
	var notification requests.DecisionNotification
	if err := json.Unmarshal(delivery.Body, &notification); err != nil {
		w.Log.Error("mailerWorker failed to decode notification", zap.Error(err))
		_ = delivery.Nack(false, false)
		return
	}

	if err := w.send(&notification); err != nil {
		w.Log.Error("mailerWorker failed to send email",
			zap.String("recipient", notification.RecipientEmail),
			zap.Error(err),
		)
	}
	_ = delivery.Ack(false)
}

func (w *MailerWorker) send(notification *requests.DecisionNotification) error {
	if notification.RecipientEmail == "" {
		return nil
	}

	subject := fmt.Sprintf(constvars.EmailDecisionSubjectFormat, notification.Status)

	var body strings.Builder
	fmt.Fprintf(&body, "Hello %s,\n\n", notification.PatientName)
	fmt.Fprintf(&body, "Your appointment request with %s for %s at %s has been %s.\n",
		notification.ProviderName, notification.Date, notification.Time, notification.Status)
	if notification.Response != "" {
		fmt.Fprintf(&body, "\nMessage from the provider: %s\n", notification.Response)
	}

	msg := []byte(fmt.Sprintf(constvars.EmailBasicFormat, notification.RecipientEmail, subject, body.String()))
	addr := fmt.Sprintf("%s:%d", w.Client.Host, w.Client.Port)
	return smtp.SendMail(addr, w.Client.Auth, w.Client.EmailSender, []string{notification.RecipientEmail}, msg)
}
