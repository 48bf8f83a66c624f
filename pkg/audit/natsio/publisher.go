package natsio

import (
	"encoding/json"
	"fmt"
	"time"

	nats "github.com/nats-io/nats.go"
	"github.com/nsyszr/gridadmin/pkg/audit"
	"github.com/pkg/errors"
)

const flushTimeout = 5 * time.Second

// Config holds the NATS settings of the audit publisher
type Config struct {
	url         string
	baseSubject string
}

func NewConfig(url, baseSubject string) *Config {
	return &Config{
		url:         url,
		baseSubject: baseSubject,
	}
}

type natsPublisher struct {
	cfg *Config
	nc  *nats.Conn
}

// New connects to NATS and returns a publisher that sends each event to
// <baseSubject>.<command>.
func New(cfg *Config) (audit.Publisher, error) {
	nc, err := nats.Connect(cfg.url,
		nats.Name("gridadmin"),
		nats.Timeout(flushTimeout))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to nats at %s", cfg.url)
	}
	return &natsPublisher{
		cfg: cfg,
		nc:  nc,
	}, nil
}

func (p *natsPublisher) Publish(ev *audit.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	if err := p.nc.Publish(Subject(p.cfg.baseSubject, ev.Command), data); err != nil {
		return err
	}
	// The process usually exits right after a command.
	return p.nc.FlushTimeout(flushTimeout)
}

func (p *natsPublisher) Close() error {
	if p.nc != nil {
		p.nc.Close()
	}
	return nil
}

// Subject returns the subject an event for command is published on.
func Subject(baseSubject, command string) string {
	return fmt.Sprintf("%s.%s", baseSubject, command)
}
