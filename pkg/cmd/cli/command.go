package cli

import (
	"github.com/nsyszr/gridadmin/pkg/gridadmin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// LoadOAR loads a saved-region archive into a region after warning its
// users.
func (h *Handler) LoadOAR(cmd *cobra.Command, args []string) {
	SetupLogging(h.c.LogLevel)

	if err := h.c.ValidateLoadArchive(); err != nil {
		h.usageError(cmd, err)
		return
	}

	h.runCommand(func(s *gridadmin.Session) gridadmin.Outcome {
		return s.LoadArchive(h.c.Region, h.c.Archive)
	})
}

// Shutdown shuts the grid down after warning all users.
func (h *Handler) Shutdown(cmd *cobra.Command, args []string) {
	SetupLogging(h.c.LogLevel)

	if err := h.c.ValidateShutdown(); err != nil {
		h.usageError(cmd, err)
		return
	}

	h.runCommand(func(s *gridadmin.Session) gridadmin.Outcome {
		return s.ShutdownGrid()
	})
}

func (h *Handler) runCommand(run func(s *gridadmin.Session) gridadmin.Outcome) {
	s, pub, err := h.newSession(h.c.Password, true)
	if err != nil {
		log.Error(err)
		h.exit(exitFailure)
		return
	}

	outcome := run(s)
	if err := pub.Close(); err != nil {
		log.WithError(err).Warn("Failed to close audit publisher")
	}
	h.exit(outcome.ExitCode())
}
