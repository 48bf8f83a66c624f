package cli

import (
	"fmt"
	"io"
	"os"

	colorable "github.com/mattn/go-colorable"
	"github.com/nsyszr/gridadmin/config"
	"github.com/nsyszr/gridadmin/pkg/audit"
	"github.com/nsyszr/gridadmin/pkg/audit/natsio"
	"github.com/nsyszr/gridadmin/pkg/client"
	"github.com/nsyszr/gridadmin/pkg/client/remoteadmin"
	"github.com/nsyszr/gridadmin/pkg/gridadmin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Exit codes
const (
	exitSuccess = 0
	exitFailure = 1
	exitUsage   = 2
)

// Handler runs the operator tools, one admin session per invocation
type Handler struct {
	c    *config.Config
	out  io.Writer
	exit func(code int)

	newClient    func(e *gridadmin.Endpoint) (client.Interface, error)
	newPublisher func(c *config.Config) (audit.Publisher, error)
	sessionOpts  []gridadmin.SessionOption
}

func NewHandler(c *config.Config) *Handler {
	return &Handler{
		c:            c,
		out:          os.Stdout,
		exit:         os.Exit,
		newClient:    newRemoteAdminClient,
		newPublisher: newAuditPublisher,
	}
}

func newRemoteAdminClient(e *gridadmin.Endpoint) (client.Interface, error) {
	return remoteadmin.New(remoteadmin.NewConfig(e.BaseURL(), e.Timeout()))
}

func newAuditPublisher(c *config.Config) (audit.Publisher, error) {
	if c.NATSServerURL == "" {
		return audit.Discard(), nil
	}
	return natsio.New(natsio.NewConfig(c.NATSServerURL, c.AuditSubject))
}

// SetupLogging sends logs to stderr so that stdout only carries the
// tools' output.
func SetupLogging(level string) {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	log.SetOutput(colorable.NewColorableStderr())

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}
	log.SetLevel(lvl)
}

// usageError reports a missing input together with the command usage.
func (h *Handler) usageError(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err)
	fmt.Fprintln(cmd.ErrOrStderr(), cmd.UsageString())
	h.exit(exitUsage)
}

// newSession builds a session against the configured server. Only
// sessions that run admin commands get an audit publisher; the trail falls
// back to discarding events if NATS is unreachable. The caller closes the
// returned publisher.
func (h *Handler) newSession(password string, withAudit bool) (*gridadmin.Session, audit.Publisher, error) {
	e, err := gridadmin.NewEndpoint(h.c.Server, password)
	if err != nil {
		return nil, nil, err
	}

	c, err := h.newClient(e)
	if err != nil {
		return nil, nil, err
	}

	pub := audit.Discard()
	if withAudit {
		if pub, err = h.newPublisher(h.c); err != nil {
			log.WithError(err).Warn("Audit trail disabled")
			pub = audit.Discard()
		}
	}

	opts := append([]gridadmin.SessionOption{gridadmin.WithAuditPublisher(pub)}, h.sessionOpts...)
	return gridadmin.NewSession(e, c, opts...), pub, nil
}
