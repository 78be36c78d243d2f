package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/matt-g-everett/cube/anim"
	"github.com/matt-g-everett/cube/api"
	"github.com/matt-g-everett/cube/screen"
	"github.com/matt-g-everett/cube/stream"
	"github.com/matt-g-everett/cube/term"
)

// Front-ends selectable with -frontend.
const (
	frontendEbiten   = "ebiten"
	frontendTerminal = "terminal"
	frontendHeadless = "headless"
)

func knownFrontend(name string) bool {
	switch name {
	case frontendEbiten, frontendTerminal, frontendHeadless:
		return true
	}
	return false
}

type app struct {
	Config     stream.Config
	Client     mqtt.Client
	Controller *anim.Controller
	Streamer   *stream.Streamer
}

func newApp(config stream.Config) *app {
	a := new(app)
	a.Config = config
	a.Controller = anim.NewController()
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
	if err := a.Streamer.Subscribe(); err != nil {
		log.Println(err)
	}
}

// connect sets up MQTT when a broker is configured. The Streamer is created
// either way so frames are dropped rather than checked for at every call site.
func (a *app) connect() error {
	if a.Config.Mqtt.URL != "" {
		options := mqtt.NewClientOptions().
			AddBroker(a.Config.Mqtt.URL).
			SetClientID(a.Config.Mqtt.ClientID).
			SetUsername(a.Config.Mqtt.Username).
			SetPassword(a.Config.Mqtt.Password).
			SetKeepAlive(30 * time.Second).
			SetPingTimeout(5 * time.Second).
			SetAutoReconnect(true).
			SetOnConnectHandler(a.handleOnConnect)
		a.Client = mqtt.NewClient(options)
	}

	a.Streamer = stream.NewStreamer(a.Config, a.Client, a.Controller)

	if a.Client == nil {
		return nil
	}
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("connect %s: %w", a.Config.Mqtt.URL, token.Error())
	}
	return nil
}

func (a *app) serveApi() {
	if a.Config.Api.Listen == "" {
		return
	}

	go func() {
		if err := api.NewApi(a.Controller).Serve(a.Config.Api.Listen); err != nil {
			log.Printf("Api: %v", err)
		}
	}()
}

func (a *app) runWindow() error {
	ebiten.SetWindowSize(a.Config.Display.Width, a.Config.Display.Height)
	ebiten.SetWindowTitle(screen.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(a.Config.Display.TPS)

	return ebiten.RunGame(screen.NewGame(a.Controller, a.Streamer))
}

func (a *app) runTerminal(ctx context.Context) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	// The terminal owns stdout while it runs.
	log.SetOutput(io.Discard)
	defer log.SetOutput(os.Stderr)

	return term.New(s, a.Controller, a.Streamer, a.Config.Display.TPS).Run(ctx)
}

func (a *app) runHeadless(ctx context.Context) {
	log.Println("Running headless")
	a.Streamer.Run(ctx)
}

func main() {
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	frontend := flag.String("frontend", frontendEbiten, "Front-end: ebiten, terminal or headless.")
	start := flag.Bool("start", false, "Start the animation immediately.")
	flag.Parse()
	if !knownFrontend(*frontend) {
		log.Fatalf("Unknown front-end %q", *frontend)
	}

	config, err := stream.ReadConfig(*configPath)
	if err != nil {
		log.Fatalf("Config: %v", err)
	}
	log.Printf("Config: %+v", config)

	a := newApp(config)
	if err := a.connect(); err != nil {
		log.Fatalf("Mqtt: %v", err)
	}
	a.serveApi()

	if *start {
		a.Controller.Start()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	switch *frontend {
	case frontendEbiten:
		err = a.runWindow()
	case frontendTerminal:
		err = a.runTerminal(ctx)
		if errors.Is(err, context.Canceled) {
			err = nil
		}
	case frontendHeadless:
		a.runHeadless(ctx)
	default:
		err = fmt.Errorf("unknown front-end %q", *frontend)
	}

	a.Streamer.Close()
	if a.Client != nil {
		a.Client.Disconnect(250)
	}
	if err != nil {
		log.Fatal(err)
	}
}
