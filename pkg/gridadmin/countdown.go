package gridadmin

import (
	"fmt"
	"time"

	"github.com/nsyszr/gridadmin/pkg/client"
	log "github.com/sirupsen/logrus"
)

// DefaultCountdownSeconds is the warning window before a disruptive command.
const DefaultCountdownSeconds = 10

// Broadcaster sends in-world warning messages to all connected users
type Broadcaster struct {
	c        client.Interface
	password string
	log      *log.Entry

	// Sleep suspends the caller between two broadcasts.
	Sleep func(time.Duration)
}

func NewBroadcaster(c client.Interface, password string, logger *log.Entry) *Broadcaster {
	return &Broadcaster{
		c:        c,
		password: password,
		log:      logger,
		Sleep:    time.Sleep,
	}
}

// Broadcast sends a single message. The result is ignored.
func (b *Broadcaster) Broadcast(message string) error {
	_, err := b.c.InvokeCommand(MethodBroadcast, client.Params{
		"password": b.password,
		"message":  message,
	})
	return err
}

// WarnAndCountdown broadcasts template once per second, counting the
// remaining seconds down from totalSeconds to 1. template must contain a
// single %d verb. The first failed broadcast aborts the countdown.
func (b *Broadcaster) WarnAndCountdown(template string, totalSeconds int) error {
	if totalSeconds <= 0 {
		totalSeconds = DefaultCountdownSeconds
	}

	for remaining := totalSeconds; remaining > 0; remaining-- {
		if remaining < totalSeconds {
			b.Sleep(time.Second)
		}

		b.log.WithField("remaining", remaining).Debug("Broadcasting warning")
		if err := b.Broadcast(fmt.Sprintf(template, remaining)); err != nil {
			return NewCountdownError(remaining, err)
		}
	}
	return nil
}
