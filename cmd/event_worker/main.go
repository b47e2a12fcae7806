package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/spotify-electron-api/config"
	app "github.com/oksasatya/spotify-electron-api/internal/application"
	"github.com/oksasatya/spotify-electron-api/pkg/helpers"
)

var errMalformedEvent = errors.New("malformed event")

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-event-worker", cfg.Env)

	if !cfg.EventsEnabled {
		logger.Info("EVENTS_ENABLED=false; event worker disabled")
		return
	}
	if cfg.RabbitMQURL == "" || cfg.RabbitMQEventsQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}

	consumer, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEventsQueue)
	if err != nil {
		log.Fatalf("amqp: %v", err)
	}

	// prefetch for fair dispatch
	msgs, err := consumer.Consume(16)
	if err != nil {
		consumer.Close()
		log.Fatalf("consume: %v", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := consume(logger, msgs)

	logger.Infof("event worker listening on queue=%s", cfg.RabbitMQEventsQueue)
	<-stop
	logger.Info("shutting down...")
	if !stopConsumer(consumer.Close, done, 2*time.Second) {
		logger.Warn("consumer did not drain before timeout")
	}
}

// consume acks handled deliveries and drops malformed ones until msgs is
// closed, then closes the returned channel.
func consume(logger *logrus.Logger, msgs <-chan amqp.Delivery) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range msgs {
			if err := handleEvent(logger, msg.Body); err != nil {
				helpers.LogError(logger, "dropping event", err, logrus.Fields{"delivery_tag": msg.DeliveryTag})
				_ = msg.Nack(false, false)
				continue
			}
			_ = msg.Ack(false)
		}
	}()
	return done
}

// stopConsumer closes the connection, which closes the delivery channel,
// and waits up to timeout for consume to finish.
func stopConsumer(closeConn func(), done <-chan struct{}, timeout time.Duration) bool {
	closeConn()
	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}

// handleEvent decodes one library event and records it in the log.
func handleEvent(logger *logrus.Logger, body []byte) error {
	var ev app.Event
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("%w: %v", errMalformedEvent, err)
	}
	if ev.Type == "" || ev.Name == "" {
		return fmt.Errorf("%w: type and name are required", errMalformedEvent)
	}
	fields := logrus.Fields{"type": ev.Type, "name": ev.Name, "at": ev.At}
	if ev.NewName != "" {
		fields["new_name"] = ev.NewName
	}
	helpers.LogInfo(logger, "library event", fields)
	return nil
}
