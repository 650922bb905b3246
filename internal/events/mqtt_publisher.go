package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"supply-chain-viz/internal/logger"
	pkgmqtt "supply-chain-viz/pkg/mqtt"

	"go.uber.org/zap"
)

// MQTTPublisherConfig describes the broker connection and topic layout.
type MQTTPublisherConfig struct {
	ClientConfig *pkgmqtt.Config
	TopicPrefix  string
	QoS          byte
}

// mqttClient is the subset of pkg/mqtt.Client the publisher needs
type mqttClient interface {
	Connect() error
	Publish(topic string, qos byte, retained bool, payload []byte) error
	Disconnect()
}

// MQTTPublisher writes shipment events as JSON to MQTT topics.
type MQTTPublisher struct {
	client mqttClient
	prefix string
	qos    byte
}

// NewMQTTPublisher connects to the broker and returns a ready publisher.
func NewMQTTPublisher(cfg *MQTTPublisherConfig) (*MQTTPublisher, error) {
	if cfg == nil || cfg.ClientConfig == nil {
		return nil, fmt.Errorf("mqtt publisher config is not configured")
	}

	client := pkgmqtt.NewClient(cfg.ClientConfig)
	if err := client.Connect(); err != nil {
		return nil, err
	}

	return newMQTTPublisher(client, cfg.TopicPrefix, cfg.QoS), nil
}

func newMQTTPublisher(client mqttClient, prefix string, qos byte) *MQTTPublisher {
	return &MQTTPublisher{
		client: client,
		prefix: strings.Trim(prefix, "/"),
		qos:    qos,
	}
}

func (p *MQTTPublisher) Publish(ctx context.Context, event *ShipmentEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", event.Type, err)
	}

	topic := p.Topic(event.Type)
	if err := p.client.Publish(topic, p.qos, false, payload); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}

	logger.Debug("Shipment event published",
		zap.String("topic", topic),
		zap.Int64("shipment_id", event.ShipmentID),
		zap.String("event", "shipment_event_published"),
	)
	return nil
}

// Topic maps an event type to its MQTT topic.
func (p *MQTTPublisher) Topic(t Type) string {
	suffix := topicShipmentCreated
	if t == TypeShipmentStatusChanged {
		suffix = topicShipmentStatus
	}
	if p.prefix == "" {
		return suffix
	}
	return p.prefix + "/" + suffix
}

func (p *MQTTPublisher) Close() error {
	p.client.Disconnect()
	return nil
}
