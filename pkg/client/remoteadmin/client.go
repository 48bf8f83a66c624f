package remoteadmin

import (
	"net/http"

	"github.com/beevik/etree"
	"github.com/kolo/xmlrpc"
	"github.com/nsyszr/gridadmin/pkg/client"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type remoteAdminClient struct {
	cfg *Config
	hc  *http.Client
	rpc *xmlrpc.Client
}

// New creates a client for the grid's remote admin endpoints: plain
// HTTP+XML for status documents and XML-RPC for commands.
func New(cfg *Config) (client.Interface, error) {
	rt := newDeadlineTransport(cfg.timeout)

	rpc, err := xmlrpc.NewClient(cfg.baseURL, rt)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create xml-rpc client for %s", cfg.baseURL)
	}

	return &remoteAdminClient{
		cfg: cfg,
		hc: &http.Client{
			Transport: rt,
			Timeout:   cfg.timeout,
		},
		rpc: rpc,
	}, nil
}

func (c *remoteAdminClient) FetchXML(path string) (*etree.Element, error) {
	url := c.cfg.url(path)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, client.NewTransportError("get", url, err)
	}
	req.Header.Set("Accept", "text/xml")

	log.WithField("url", url).Debug("Fetching status document")
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, client.NewTransportError("get", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, client.NewTransportError("get", url,
			errors.Errorf("unexpected status %s", resp.Status))
	}

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(resp.Body); err != nil {
		return nil, client.NewTransportError("parse", url, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, client.NewTransportError("parse", url,
			errors.New("document has no root element"))
	}

	return root, nil
}

func (c *remoteAdminClient) InvokeCommand(method string, params client.Params) (client.CommandResult, error) {
	log.WithFields(log.Fields{
		"url":    c.cfg.baseURL,
		"method": method,
	}).Debug("Invoking admin command")

	var reply interface{}
	if err := c.rpc.Call(method, map[string]interface{}(params), &reply); err != nil {
		return nil, client.NewTransportError(method, c.cfg.baseURL, err)
	}

	// Only struct results carry flags; anything else is an empty result.
	if m, ok := reply.(map[string]interface{}); ok {
		return client.CommandResult(m), nil
	}
	return client.CommandResult{}, nil
}
