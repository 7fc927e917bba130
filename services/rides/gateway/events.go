package gateway

import (
	"context"
	"time"

	"github.com/minh-swinburne/ridelink/internal/pkg/constants"
	"github.com/minh-swinburne/ridelink/internal/pkg/models"
	nsqpkg "github.com/minh-swinburne/ridelink/internal/pkg/nsq"
)

// RideGateway publishes ride domain events to NSQ
type RideGateway struct {
	producer *nsqpkg.Producer
}

// NewRideGateway creates a new ride event gateway
func NewRideGateway(producer *nsqpkg.Producer) *RideGateway {
	return &RideGateway{producer: producer}
}

// PublishRideCreated publishes a ride.created event
func (g *RideGateway) PublishRideCreated(ctx context.Context, ride *models.Ride) error {
	return g.producer.Publish(constants.TopicRideCreated, models.RideEvent{
		Ride:      ride,
		Timestamp: time.Now(),
	})
}

// PublishRideUpdated publishes a ride.updated event
func (g *RideGateway) PublishRideUpdated(ctx context.Context, ride *models.Ride) error {
	return g.producer.Publish(constants.TopicRideUpdated, models.RideEvent{
		Ride:      ride,
		Timestamp: time.Now(),
	})
}

// PublishPaymentCreated publishes a payment.created event
func (g *RideGateway) PublishPaymentCreated(ctx context.Context, payment *models.Payment) error {
	return g.producer.Publish(constants.TopicPaymentCreated, models.PaymentEvent{
		Payment:   payment,
		Timestamp: time.Now(),
	})
}
