package cli

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Avatars prints the number of avatars on the grid, 0 if the grid could
// not be queried. It always exits with status 1; callers read stdout.
func (h *Handler) Avatars(cmd *cobra.Command, args []string) {
	SetupLogging(h.c.LogLevel)

	if err := h.c.ValidateStatus(); err != nil {
		h.usageError(cmd, err)
		return
	}

	total := 0
	s, _, err := h.newSession("", false)
	if err != nil {
		log.Error(err)
	} else {
		total, _ = s.CountAvatars()
	}

	fmt.Fprintf(h.out, "%d\n", total)
	h.exit(exitFailure)
}

// Ping exits with status 0 if the grid hosts at least one region.
func (h *Handler) Ping(cmd *cobra.Command, args []string) {
	SetupLogging(h.c.LogLevel)

	if err := h.c.ValidateStatus(); err != nil {
		h.usageError(cmd, err)
		return
	}

	s, _, err := h.newSession("", false)
	if err != nil {
		log.Error(err)
		h.exit(exitFailure)
		return
	}

	h.exit(s.Ping().ExitCode())
}
