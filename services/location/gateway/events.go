package gateway

import (
	"context"
	"time"

	"github.com/minh-swinburne/ridelink/internal/pkg/constants"
	"github.com/minh-swinburne/ridelink/internal/pkg/models"
	nsqpkg "github.com/minh-swinburne/ridelink/internal/pkg/nsq"
)

// LocationGateway publishes location domain events to NSQ
type LocationGateway struct {
	producer *nsqpkg.Producer
}

// NewLocationGateway creates a new location event gateway
func NewLocationGateway(producer *nsqpkg.Producer) *LocationGateway {
	return &LocationGateway{producer: producer}
}

// PublishLocationCreated publishes a location.created event
func (g *LocationGateway) PublishLocationCreated(ctx context.Context, location *models.Location) error {
	return g.producer.Publish(constants.TopicLocationCreated, models.LocationEvent{
		Location:  location,
		Timestamp: time.Now(),
	})
}
