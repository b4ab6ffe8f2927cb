// SPDX-License-Identifier: GPL-3.0-or-later

package bus

import (
	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// MQTTBus is a [Bus] that publishes each value to an MQTT broker, using
// key as the topic suffix appended to a fixed prefix. encode converts a
// value of T into the wire payload.
type MQTTBus[T any] struct {
	client mqtt.Client
	prefix string
	qos    byte
	encode func(T) ([]byte, error)
}

var _ Bus[int] = (*MQTTBus[int])(nil)

// NewMQTTBus returns an [MQTTBus] publishing through client, an
// already-connected [mqtt.Client]. topicPrefix is prepended to the key
// passed to Publish (joined with "/"); qos is the MQTT quality of
// service level used for every publish.
func NewMQTTBus[T any](client mqtt.Client, topicPrefix string, qos byte, encode func(T) ([]byte, error)) *MQTTBus[T] {
	return &MQTTBus[T]{client: client, prefix: topicPrefix, qos: qos, encode: encode}
}

// Publish implements [Bus] by publishing value, encoded via encode, to
// topicPrefix/key.
func (b *MQTTBus[T]) Publish(key string, value T) error {
	payload, err := b.encode(value)
	if err != nil {
		return err
	}
	topic := b.prefix
	if key != "" {
		topic = topic + "/" + key
	}
	token := b.client.Publish(topic, b.qos, false, payload)
	token.Wait()
	return token.Error()
}
