package stream

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/cube/anim"
)

const (
	frameTimeout    = 20 * time.Millisecond
	positionTimeout = time.Second
	outboxSize      = 4
)

type message struct {
	topic    string
	qos      byte
	retained bool
	payload  []byte
	timeout  time.Duration
}

// Streamer publishes the cube's frames over MQTT and relays control
// commands to the Controller. A nil client disables publishing.
//
// Publishing happens on a background goroutine so callers on the render
// loop never wait for the broker. Frames are dropped when the outbox is
// full; only the latest stopped position is kept.
type Streamer struct {
	config     Config
	client     mqtt.Client
	controller *anim.Controller

	frames    chan message
	positions chan message
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewStreamer creates an instance of a Streamer. Close releases the
// publisher goroutine.
func NewStreamer(config Config, client mqtt.Client, controller *anim.Controller) *Streamer {
	s := new(Streamer)
	s.config = config
	s.client = client
	s.controller = controller
	s.frames = make(chan message, outboxSize)
	s.positions = make(chan message, 1)
	s.done = make(chan struct{})

	if client != nil {
		s.wg.Add(1)
		go s.publish()
	}
	controller.OnStop(s.handleStop)

	return s
}

// Close stops the publisher. Queued messages are discarded.
func (s *Streamer) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
	s.wg.Wait()
}

func (s *Streamer) publish() {
	defer s.wg.Done()
	for {
		// Positions go first so a backlog of frames cannot delay them.
		select {
		case m := <-s.positions:
			s.send(m)
			continue
		default:
		}

		select {
		case <-s.done:
			return
		case m := <-s.positions:
			s.send(m)
		case m := <-s.frames:
			s.send(m)
		}
	}
}

func (s *Streamer) send(m message) {
	token := s.client.Publish(m.topic, m.qos, m.retained, m.payload)
	if !token.WaitTimeout(m.timeout) {
		log.Printf("Publish %s: timed out after %v", m.topic, m.timeout)
		return
	}
	if token.Error() != nil {
		log.Printf("Publish %s: %v", m.topic, token.Error())
	}
}

// SendFrame queues the current style as a binary Frame.
func (s *Streamer) SendFrame() {
	if s.client == nil {
		return
	}

	b, _ := NewFrame(s.controller.Style()).MarshalBinary()
	select {
	case s.frames <- message{s.config.Mqtt.Topics.Stream, 0, false, b, frameTimeout}:
	default:
	}
}

// PublishPosition queues p as retained JSON so late subscribers see the
// last recorded position. A position still waiting to be sent is replaced.
func (s *Streamer) PublishPosition(p anim.Position) {
	if s.client == nil || s.config.Mqtt.Topics.Position == "" {
		return
	}

	b, err := json.Marshal(p)
	if err != nil {
		log.Printf("Encode position: %v", err)
		return
	}

	m := message{s.config.Mqtt.Topics.Position, 1, true, b, positionTimeout}
	for {
		select {
		case s.positions <- m:
			return
		default:
		}
		select {
		case <-s.positions:
		default:
		}
	}
}

func (s *Streamer) handleStop(p anim.Position) {
	s.SendFrame()
	s.PublishPosition(p)
}

// Run ticks the Controller at the configured rate and streams frames while
// the animation is running. It returns when ctx is done.
func (s *Streamer) Run(ctx context.Context) {
	interval := time.Second / time.Duration(s.config.Display.TPS)
	publishTimer := time.NewTicker(interval)
	defer publishTimer.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-publishTimer.C:
			s.controller.Tick(now.Sub(last))
			last = now
			if s.controller.Running() {
				s.SendFrame()
			}
		}
	}
}
