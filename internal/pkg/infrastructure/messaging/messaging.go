package messaging

import (
	"encoding/json"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/andreclerigo/payload-api/internal/pkg/infrastructure/config"
	"github.com/andreclerigo/payload-api/internal/pkg/infrastructure/logging"
)

const connectTimeout = 5 * time.Second

//Publisher is an interface that allows mocking of the message bus in handler and datastore tests
type Publisher interface {
	//Publish sends payload to the given topic on a best effort basis.
	//It never blocks the caller and never reports failure to it; transport
	//errors are logged and dropped.
	Publish(topic string, payload interface{})
}

type mqttPublisher struct {
	client mqtt.Client
	log    logging.Logger
}

//Initialize connects to the message bus and returns a Publisher bound to
//that connection. If the initial connect fails the process keeps running in
//a degraded state where every publish attempt fails silently into the logs.
func Initialize(cfg config.Config, log logging.Logger) Publisher {
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.BrokerURI()).
		SetClientID("payload-api").
		SetConnectTimeout(connectTimeout).
		SetAutoReconnect(true)

	if cfg.MQTTUsername != "" {
		opts.SetUsername(cfg.MQTTUsername)
		opts.SetPassword(cfg.MQTTPassword)
	}

	opts.SetOnConnectHandler(func(mqtt.Client) {
		log.Infof("[BROKER] Connected to %s", cfg.BrokerURI())
	})

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Errorf("[BROKER] Failed to connect to %s: %s. Publishing is degraded.", cfg.BrokerURI(), token.Error().Error())
	}

	return NewPublisher(client, log)
}

//NewPublisher wraps an already constructed bus client in a Publisher
func NewPublisher(client mqtt.Client, log logging.Logger) Publisher {
	return &mqttPublisher{client: client, log: log}
}

func (p *mqttPublisher) Publish(topic string, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		p.log.Errorf("[BROKER] Failed to encode message for topic %s: %s", topic, err.Error())
		return
	}

	token := p.client.Publish(topic, 0, false, body)

	go func() {
		token.Wait()
		if err := token.Error(); err != nil {
			p.log.Errorf("[BROKER] Failed to publish message to topic %s: %s", topic, err.Error())
			return
		}
		p.log.Infof("[BROKER] Message published to topic %s", topic)
	}()
}
