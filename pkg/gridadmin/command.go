package gridadmin

import (
	"fmt"
	"strings"

	"github.com/nsyszr/gridadmin/pkg/client"
	log "github.com/sirupsen/logrus"
)

// Remote admin RPC methods
const (
	MethodBroadcast = "admin_broadcast"
	MethodLoadOAR   = "admin_load_oar"
	MethodShutdown  = "admin_shutdown"
)

// Result flags that signal success, holding the literal string "true"
const (
	ResultLoaded  = "loaded"
	ResultSuccess = "success"
)

const (
	loadArchiveTemplate = `This is your captain speaking: region "%s" will be updated in %%d sec, hold on tight if you are in that area, earthquakes will occur`
	shutdownTemplate    = "Shutting down grid for maintenance in %d secs. Please log off now."
)

// CommandRunner executes disruptive admin commands after a countdown
type CommandRunner struct {
	c           client.Interface
	password    string
	broadcaster *Broadcaster
	log         *log.Entry

	CountdownSeconds int
}

func NewCommandRunner(c client.Interface, password string, logger *log.Entry) *CommandRunner {
	return &CommandRunner{
		c:                c,
		password:         password,
		broadcaster:      NewBroadcaster(c, password, logger),
		log:              logger,
		CountdownSeconds: DefaultCountdownSeconds,
	}
}

// Broadcaster returns the broadcaster used for the countdown.
func (r *CommandRunner) Broadcaster() *Broadcaster {
	return r.broadcaster
}

// LoadArchive warns the users of region, then replaces its content with
// the saved-region archive. A declined load yields false without error;
// transport and countdown faults are returned.
func (r *CommandRunner) LoadArchive(region, archive string) (bool, error) {
	template := fmt.Sprintf(loadArchiveTemplate, strings.Replace(region, "%", "%%", -1))

	return r.run(template, MethodLoadOAR, client.Params{
		"region_name": region,
		"filename":    archive,
	}, ResultLoaded)
}

// ShutdownGrid warns all users, then shuts the grid down.
func (r *CommandRunner) ShutdownGrid() (bool, error) {
	return r.run(shutdownTemplate, MethodShutdown, client.Params{}, ResultSuccess)
}

func (r *CommandRunner) run(template, method string, params client.Params, flag string) (bool, error) {
	if err := r.broadcaster.WarnAndCountdown(template, r.CountdownSeconds); err != nil {
		return false, err
	}

	params["password"] = r.password
	res, err := r.c.InvokeCommand(method, params)
	if err != nil {
		return false, err
	}

	if err := checkFlag(method, res, flag); err != nil {
		r.log.WithField("kind", "declined").Warn(err)
		return false, nil
	}
	return true, nil
}

// checkFlag accepts nothing but the literal string "true".
func checkFlag(method string, res client.CommandResult, flag string) error {
	if v, ok := res.Flag(flag); !ok || v != "true" {
		return NewDeclinedError(method, flag, res[flag])
	}
	return nil
}
