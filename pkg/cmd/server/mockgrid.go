package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"github.com/nsyszr/gridadmin/config"
	"github.com/nsyszr/gridadmin/pkg/cmd/cli"
	"github.com/nsyszr/gridadmin/pkg/mockgrid"
	"github.com/nsyszr/gridadmin/pkg/storage"
	"github.com/nsyszr/gridadmin/pkg/storage/memory"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type mockGridServer struct {
	c     *config.Config
	store storage.Interface

	quitCh chan bool
	doneCh chan bool
	errCh  chan error
}

func newMockGridServer(c *config.Config) (*mockGridServer, error) {
	store := memory.NewStore()
	if err := mockgrid.Seed(store, c.MockGridRegions); err != nil {
		return nil, err
	}

	return &mockGridServer{
		c:      c,
		store:  store,
		quitCh: make(chan bool),
		doneCh: make(chan bool),
		errCh:  make(chan error, 1),
	}, nil
}

func newEcho(store storage.Interface, password string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(logger())

	mockgrid.NewHandler(store, password).RegisterRoutes(e)
	return e
}

// Serve blocks until Shutdown is called or the server fails to listen.
func (s *mockGridServer) Serve() error {
	e := newEcho(s.store, s.c.Password)

	go func() {
		log.WithFields(log.Fields{
			"listen": s.c.MockGridListen,
		}).Info("Starting mock grid server")

		if err := e.Start(s.c.MockGridListen); err != nil && err != http.ErrServerClosed {
			s.errCh <- err
		}
	}()

	select {
	case err := <-s.errCh:
		log.WithError(err).WithField("listen", s.c.MockGridListen).Error("Mock grid server failed")
		e.Close()
		return err
	case <-s.quitCh:
	}
	log.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Failed to shut down mock grid server")
	}

	s.doneCh <- true
	return nil
}

// logger returns a middleware that logs HTTP requests.
func logger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()
			start := time.Now()

			var err error
			if err = next(c); err != nil {
				c.Error(err)
			}
			stop := time.Now()

			errMsg := ""
			if err != nil {
				errMsg = err.Error()
			}

			log.WithFields(log.Fields{
				"remote_ip":     c.RealIP(),
				"method":        req.Method,
				"uri":           req.RequestURI,
				"status":        res.Status,
				"status_text":   http.StatusText(res.Status),
				"error":         errMsg,
				"bytes_out":     res.Size,
				"latency_human": stop.Sub(start).String(),
			}).Infof("%s %s %s %d %s", req.Method, req.RequestURI, req.Proto,
				res.Status, strconv.FormatInt(res.Size, 10))

			return err
		}
	}
}

func (s *mockGridServer) Shutdown() {
	s.quitCh <- true

	// Wait up to 10 seconds
	select {
	case <-s.doneCh:
		log.Info("Shutdown server successful")
	case <-time.After(10 * time.Second):
		log.Error("Shutdown server failed")
	}
}

// RunServeMockGrid serves the remote admin endpoints of an in-memory grid
// until interrupted.
func RunServeMockGrid(c *config.Config) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		if c.LogLevel == "" {
			c.LogLevel = "info"
		}
		cli.SetupLogging(c.LogLevel)

		if err := c.ValidateMockGrid(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err)
			fmt.Fprintln(cmd.ErrOrStderr(), cmd.UsageString())
			os.Exit(2)
		}

		s, err := newMockGridServer(c)
		if err != nil {
			log.Error("failed to create new server instance: ", err)
			os.Exit(1)
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- s.Serve()
		}()

		// Wait for interrupt signal to gracefully shutdown the server
		quitCh := make(chan os.Signal, 1)
		signal.Notify(quitCh, os.Interrupt)

		select {
		case <-quitCh:
			s.Shutdown()
		case <-errCh:
			os.Exit(1)
		}
	}
}
