package gridadmin

import (
	"time"

	"github.com/beevik/etree"
	"github.com/nsyszr/gridadmin/pkg/client"
	"github.com/pkg/errors"
)

type call struct {
	method string
	params client.Params
}

// fakeClient serves canned documents and scripted command results.
type fakeClient struct {
	documents map[string]string
	fetchErr  error

	results map[string]client.CommandResult
	// failAt makes the n-th command (1-based) fail with callErr.
	failAt  int
	callErr error

	fetches []string
	calls   []call
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		documents: make(map[string]string),
		results:   make(map[string]client.CommandResult),
	}
}

func (f *fakeClient) FetchXML(path string) (*etree.Element, error) {
	f.fetches = append(f.fetches, path)
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}

	data, ok := f.documents[path]
	if !ok {
		return nil, client.NewTransportError("get", path, errors.New("unexpected status 404 Not Found"))
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromString(data); err != nil {
		return nil, client.NewTransportError("parse", path, err)
	}
	return doc.Root(), nil
}

func (f *fakeClient) InvokeCommand(method string, params client.Params) (client.CommandResult, error) {
	copied := client.Params{}
	for k, v := range params {
		copied[k] = v
	}
	f.calls = append(f.calls, call{method: method, params: copied})

	if f.failAt > 0 && len(f.calls) == f.failAt {
		return nil, f.callErr
	}
	if res, ok := f.results[method]; ok {
		return res, nil
	}
	return client.CommandResult{}, nil
}

func (f *fakeClient) methods() []string {
	var methods []string
	for _, c := range f.calls {
		methods = append(methods, c.method)
	}
	return methods
}

type recordingSleeper struct {
	waits []time.Duration
}

func (r *recordingSleeper) sleep(d time.Duration) {
	r.waits = append(r.waits, d)
}
