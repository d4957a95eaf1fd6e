package messagestream

import (
	"reservation-dashboard/config"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-amqp/pkg/amqp"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Amqp struct {
	cfg    *config.MessageStreamConfig
	logger watermill.LoggerAdapter
}

func NewAmpq(cfg *config.MessageStreamConfig) *Amqp {
	return &Amqp{
		cfg:    cfg,
		logger: watermill.NewStdLogger(false, false),
	}
}

// NewPublisher returns an AMQP publisher, or an in-process gochannel publisher when no URI is configured.
func (a *Amqp) NewPublisher() (message.Publisher, error) {
	if a.cfg.URI == "" {
		return gochannel.NewGoChannel(gochannel.Config{}, a.logger), nil
	}

	amqpConfig := amqp.NewDurableQueueConfig(a.cfg.URI)
	publisher, err := amqp.NewPublisher(amqpConfig, a.logger)
	if err != nil {
		return nil, err
	}
	return publisher, nil
}
