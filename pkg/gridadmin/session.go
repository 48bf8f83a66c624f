package gridadmin

import (
	"time"

	"github.com/nsyszr/gridadmin/config"
	"github.com/nsyszr/gridadmin/pkg/audit"
	"github.com/nsyszr/gridadmin/pkg/client"
	log "github.com/sirupsen/logrus"
)

// Outcome is the binary result of a session
type Outcome int

const (
	Failure Outcome = iota
	Success
)

func (o Outcome) String() string {
	if o == Success {
		return "success"
	}
	return "failure"
}

// ExitCode maps the outcome to the process exit convention.
func (o Outcome) ExitCode() int {
	if o == Success {
		return 0
	}
	return 1
}

// Session states, logged with the "state" field
const (
	stateValidating   = "validating"
	stateQuerying     = "querying"
	stateBroadcasting = "broadcasting"
	stateDone         = "done"
)

// Session performs exactly one admin operation against an endpoint and
// reduces every error to a failure outcome.
type Session struct {
	endpoint *Endpoint
	status   *StatusReader
	runner   *CommandRunner
	audit    audit.Publisher
	log      *log.Entry
}

// SessionOption configures a Session
type SessionOption func(*Session)

// WithAuditPublisher publishes the outcome of disruptive commands.
func WithAuditPublisher(p audit.Publisher) SessionOption {
	return func(s *Session) {
		s.audit = p
	}
}

// WithLogger replaces the default logger entry.
func WithLogger(entry *log.Entry) SessionOption {
	return func(s *Session) {
		s.log = entry
	}
}

// WithSleep replaces the wait between countdown broadcasts.
func WithSleep(sleep func(time.Duration)) SessionOption {
	return func(s *Session) {
		s.runner.Broadcaster().Sleep = sleep
	}
}

// WithCountdownSeconds changes the warning window.
func WithCountdownSeconds(n int) SessionOption {
	return func(s *Session) {
		s.runner.CountdownSeconds = n
	}
}

func NewSession(endpoint *Endpoint, c client.Interface, opts ...SessionOption) *Session {
	entry := log.WithField("server", endpoint.BaseURL())
	s := &Session{
		endpoint: endpoint,
		status:   NewStatusReader(c),
		runner:   NewCommandRunner(c, endpoint.Password(), entry),
		audit:    audit.Discard(),
		log:      entry,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.runner.log = s.log
	s.runner.broadcaster.log = s.log
	return s
}

// CountAvatars returns the number of avatars on the grid. Any error
// degrades to 0 with a failure outcome.
func (s *Session) CountAvatars() (int, Outcome) {
	logger := s.log.WithField("command", "avatars")
	logger.WithField("state", stateQuerying).Debug("Querying region info")

	n, err := s.status.TotalAvatars()
	if err != nil {
		s.logFailure(logger, err)
		return 0, Failure
	}

	logger.WithFields(log.Fields{"state": stateDone, "avatars": n}).Debug("Region info received")
	return n, Success
}

// Ping reports success if the grid hosts at least one region.
func (s *Session) Ping() Outcome {
	logger := s.log.WithField("command", "ping")
	logger.WithField("state", stateQuerying).Debug("Querying regions")

	regions, err := s.status.ListRegions()
	if err != nil {
		s.logFailure(logger, err)
		return Failure
	}
	if len(regions) == 0 {
		logger.WithField("state", stateDone).Info("Grid reports no regions")
		return Failure
	}

	logger.WithFields(log.Fields{"state": stateDone, "regions": len(regions)}).Debug("Regions present")
	return Success
}

// LoadArchive loads a saved-region archive into region after the
// countdown.
func (s *Session) LoadArchive(region, archive string) Outcome {
	logger := s.log.WithFields(log.Fields{
		"command": "load-oar",
		"region":  region,
		"archive": archive,
	})
	ev := &audit.Event{Command: "load-oar", Region: region, Archive: archive}

	var err error
	switch {
	case s.endpoint.Password() == "":
		err = config.NewConfigError("password")
	case archive == "":
		err = config.NewConfigError("oar")
	case region == "":
		err = config.NewConfigError("region")
	}

	return s.runCommand(logger, ev, err, func() (bool, error) {
		return s.runner.LoadArchive(region, archive)
	})
}

// ShutdownGrid shuts the grid down after the countdown.
func (s *Session) ShutdownGrid() Outcome {
	logger := s.log.WithField("command", "shutdown")
	ev := &audit.Event{Command: "shutdown"}

	var err error
	if s.endpoint.Password() == "" {
		err = config.NewConfigError("password")
	}

	return s.runCommand(logger, ev, err, s.runner.ShutdownGrid)
}

func (s *Session) runCommand(logger *log.Entry, ev *audit.Event, invalid error, run func() (bool, error)) Outcome {
	logger.WithField("state", stateValidating).Debug("Validating command")
	if invalid != nil {
		s.logFailure(logger, invalid)
		return Failure
	}

	logger.WithField("state", stateBroadcasting).Debug("Starting countdown")
	ok, err := run()

	outcome := Success
	switch {
	case err != nil:
		outcome = Failure
		ev.Kind = errorKind(err)
		ev.Error = err.Error()
		s.logFailure(logger, err)
	case !ok:
		outcome = Failure
		ev.Kind = kindDeclined
	default:
		logger.WithField("state", stateDone).Info("Command completed")
	}

	s.publish(logger, ev, outcome)
	return outcome
}

func (s *Session) publish(logger *log.Entry, ev *audit.Event, outcome Outcome) {
	ev.Server = s.endpoint.BaseURL()
	ev.Outcome = outcome.String()
	ev.Timestamp = time.Now().UTC()

	if err := s.audit.Publish(ev); err != nil {
		logger.WithError(err).Warn("Failed to publish audit event")
	}
}

func (s *Session) logFailure(logger *log.Entry, err error) {
	logger.WithFields(log.Fields{
		"state": stateDone,
		"kind":  errorKind(err),
	}).Error(err)
}

const (
	kindConfig    = "config"
	kindCountdown = "countdown"
	kindDeclined  = "declined"
	kindParse     = "parse"
	kindTransport = "transport"
	kindUnknown   = "unknown"
)

func errorKind(err error) string {
	switch {
	case config.IsConfigError(err):
		return kindConfig
	case IsCountdownError(err):
		return kindCountdown
	case IsDeclinedError(err):
		return kindDeclined
	case client.IsParseError(err):
		return kindParse
	case client.IsTransportError(err):
		return kindTransport
	}
	return kindUnknown
}
