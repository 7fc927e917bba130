package gateway

import (
	"context"
	"time"

	"github.com/minh-swinburne/ridelink/internal/pkg/constants"
	"github.com/minh-swinburne/ridelink/internal/pkg/models"
	nsqpkg "github.com/minh-swinburne/ridelink/internal/pkg/nsq"
)

// MatchGateway publishes match events to NSQ
type MatchGateway struct {
	producer *nsqpkg.Producer
}

// NewMatchGateway creates a new match event gateway
func NewMatchGateway(producer *nsqpkg.Producer) *MatchGateway {
	return &MatchGateway{producer: producer}
}

// PublishRideMatched publishes a ride.matched event
func (g *MatchGateway) PublishRideMatched(ctx context.Context, ride *models.Ride) error {
	return g.producer.Publish(constants.TopicRideMatched, models.RideEvent{
		Ride:      ride,
		Timestamp: time.Now(),
	})
}
