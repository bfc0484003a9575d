package contracts

import (
	"context"
	"medidata-service/internal/pkg/dto/requests"
)

type NotificationPublisher interface {
	PublishDecision(ctx context.Context, notification *requests.DecisionNotification) error
}
