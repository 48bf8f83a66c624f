package cli

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo"
	"github.com/nsyszr/gridadmin/config"
	"github.com/nsyszr/gridadmin/pkg/audit"
	"github.com/nsyszr/gridadmin/pkg/gridadmin"
	"github.com/nsyszr/gridadmin/pkg/mockgrid"
	"github.com/nsyszr/gridadmin/pkg/storage"
	"github.com/nsyszr/gridadmin/pkg/storage/memory"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	events []*audit.Event
	closed bool
}

func (p *recordingPublisher) Publish(ev *audit.Event) error {
	p.events = append(p.events, ev)
	return nil
}

func (p *recordingPublisher) Close() error {
	p.closed = true
	return nil
}

type harness struct {
	h      *Handler
	out    *bytes.Buffer
	errOut *bytes.Buffer
	cmd    *cobra.Command
	codes  []int
	pub    *recordingPublisher
}

func newHarness(c *config.Config) *harness {
	hs := &harness{
		out:    &bytes.Buffer{},
		errOut: &bytes.Buffer{},
		cmd:    &cobra.Command{Use: "test"},
		pub:    &recordingPublisher{},
	}
	hs.cmd.SetErr(hs.errOut)

	hs.h = NewHandler(c)
	hs.h.out = hs.out
	hs.h.exit = func(code int) { hs.codes = append(hs.codes, code) }
	hs.h.newPublisher = func(*config.Config) (audit.Publisher, error) { return hs.pub, nil }
	hs.h.sessionOpts = []gridadmin.SessionOption{gridadmin.WithSleep(func(time.Duration) {})}
	return hs
}

func startMockGrid(t *testing.T, regions ...string) (*httptest.Server, storage.Interface) {
	t.Helper()

	store := memory.NewStore()
	require.NoError(t, mockgrid.Seed(store, regions))

	e := echo.New()
	mockgrid.NewHandler(store, "secret").RegisterRoutes(e)

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv, store
}

func TestAvatarsPrintsSumAndExitsNonZero(t *testing.T) {
	srv, _ := startMockGrid(t, "Island=3", "Harbour=5")

	hs := newHarness(&config.Config{Server: srv.URL})
	hs.h.Avatars(hs.cmd, nil)

	assert.Equal(t, "8\n", hs.out.String())
	assert.Equal(t, []int{1}, hs.codes)
}

func TestAvatarsPrintsZeroWhenUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	hs := newHarness(&config.Config{Server: url})
	hs.h.Avatars(hs.cmd, nil)

	assert.Equal(t, "0\n", hs.out.String())
	assert.Equal(t, []int{1}, hs.codes)
}

func TestAvatarsRequiresServer(t *testing.T) {
	hs := newHarness(&config.Config{})
	hs.h.Avatars(hs.cmd, nil)

	assert.Empty(t, hs.out.String())
	assert.Equal(t, []int{2}, hs.codes)
	assert.Contains(t, hs.errOut.String(), "option --server is required")
}

func TestPing(t *testing.T) {
	srv, _ := startMockGrid(t, "Island")
	hs := newHarness(&config.Config{Server: srv.URL})
	hs.h.Ping(hs.cmd, nil)
	assert.Equal(t, []int{0}, hs.codes)

	empty, _ := startMockGrid(t)
	hs = newHarness(&config.Config{Server: empty.URL + "/"})
	hs.h.Ping(hs.cmd, nil)
	assert.Equal(t, []int{1}, hs.codes)
	assert.Empty(t, hs.out.String())
}

func TestLoadOAR(t *testing.T) {
	srv, store := startMockGrid(t, "Island")

	hs := newHarness(&config.Config{
		Server:   srv.URL,
		Password: "secret",
		Archive:  "/srv/oar/island.oar",
		Region:   "Island",
	})
	hs.h.LoadOAR(hs.cmd, nil)

	assert.Equal(t, []int{0}, hs.codes)
	assert.True(t, hs.pub.closed)
	require.Len(t, hs.pub.events, 1)
	assert.Equal(t, "success", hs.pub.events[0].Outcome)

	msgs, err := store.Broadcasts().FetchAll()
	require.NoError(t, err)
	assert.Len(t, msgs, 10)
}

func TestLoadOARMissingInputs(t *testing.T) {
	srv, store := startMockGrid(t, "Island")

	for _, c := range []*config.Config{
		{Server: srv.URL, Archive: "/srv/oar/island.oar", Region: "Island"},
		{Server: srv.URL, Password: "secret", Region: "Island"},
		{Server: srv.URL, Password: "secret", Archive: "/srv/oar/island.oar"},
	} {
		hs := newHarness(c)
		hs.h.LoadOAR(hs.cmd, nil)
		assert.Equal(t, []int{2}, hs.codes, fmt.Sprintf("%+v", c))
	}

	msgs, err := store.Broadcasts().FetchAll()
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestShutdown(t *testing.T) {
	srv, _ := startMockGrid(t, "Island")

	hs := newHarness(&config.Config{Server: srv.URL, Password: "guess"})
	hs.h.Shutdown(hs.cmd, nil)
	assert.Equal(t, []int{1}, hs.codes)

	hs = newHarness(&config.Config{Server: srv.URL, Password: "secret"})
	hs.h.Shutdown(hs.cmd, nil)
	assert.Equal(t, []int{0}, hs.codes)
	require.Len(t, hs.pub.events, 1)
	assert.Equal(t, "shutdown", hs.pub.events[0].Command)
}

func TestStatusToolsSkipAuditTrail(t *testing.T) {
	srv, _ := startMockGrid(t, "Island=2")

	hs := newHarness(&config.Config{Server: srv.URL, NATSServerURL: "nats://127.0.0.1:4222"})
	created := 0
	hs.h.newPublisher = func(*config.Config) (audit.Publisher, error) {
		created++
		return hs.pub, nil
	}

	hs.h.Ping(hs.cmd, nil)
	hs.h.Avatars(hs.cmd, nil)

	assert.Equal(t, 0, created)
	assert.Equal(t, []int{0, 1}, hs.codes)
	assert.Equal(t, "2\n", hs.out.String())
	assert.Empty(t, hs.pub.events)
}

func TestCommandToolsCloseAuditPublisher(t *testing.T) {
	srv, _ := startMockGrid(t, "Island")

	hs := newHarness(&config.Config{Server: srv.URL, Password: "guess", NATSServerURL: "nats://127.0.0.1:4222"})
	hs.h.Shutdown(hs.cmd, nil)

	assert.Equal(t, []int{1}, hs.codes)
	assert.True(t, hs.pub.closed)
	require.Len(t, hs.pub.events, 1)
	assert.Equal(t, "failure", hs.pub.events[0].Outcome)
}
