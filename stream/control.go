package stream

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/eclipse/paho.mqtt.golang"
)

// Commands accepted on the control topic.
const (
	CommandStart = "start"
	CommandStop  = "stop"
)

// ControlMessage is a command received on the control topic.
type ControlMessage struct {
	Type string `json:"type"`
}

// Subscribe listens for control messages. It is called on every (re)connect.
func (s *Streamer) Subscribe() error {
	if s.config.Mqtt.Topics.Control == "" {
		return nil
	}

	token := s.client.Subscribe(s.config.Mqtt.Topics.Control, 0, s.handleControlMessages)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("subscribe %s: %w", s.config.Mqtt.Topics.Control, token.Error())
	}
	return nil
}

func (s *Streamer) handleControlMessages(client mqtt.Client, msg mqtt.Message) {
	log.Printf("Received msg %d on %s: %s\n", msg.MessageID(), msg.Topic(), msg.Payload())

	if err := s.handleControl(msg.Payload()); err != nil {
		log.Printf("Control: %v", err)
	}
}

func (s *Streamer) handleControl(payload []byte) error {
	var message ControlMessage
	if err := json.Unmarshal(payload, &message); err != nil {
		return fmt.Errorf("decode control message: %w", err)
	}

	switch message.Type {
	case CommandStart:
		s.controller.Start()
	case CommandStop:
		s.controller.Stop()
	default:
		return fmt.Errorf("unknown command %q", message.Type)
	}
	return nil
}
