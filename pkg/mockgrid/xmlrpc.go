package mockgrid

import (
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/pkg/errors"
)

// XML-RPC fault codes returned by the mock grid
const (
	faultParse         = -32700
	faultUnknownMethod = -32601
	faultAuth          = 401
	faultInternal      = -32603
)

// methodCall is a decoded XML-RPC request whose only parameter is a
// struct of scalar members.
type methodCall struct {
	Method string
	Params map[string]string
}

func parseMethodCall(r io.Reader) (*methodCall, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, errors.Wrap(err, "invalid xml-rpc request")
	}

	root := doc.Root()
	if root == nil || root.Tag != "methodCall" {
		return nil, errors.New("invalid xml-rpc request: missing methodCall")
	}

	name := root.SelectElement("methodName")
	if name == nil || strings.TrimSpace(name.Text()) == "" {
		return nil, errors.New("invalid xml-rpc request: missing methodName")
	}

	call := &methodCall{
		Method: strings.TrimSpace(name.Text()),
		Params: make(map[string]string),
	}

	st := root.FindElement("params/param/value/struct")
	if st == nil {
		return call, nil
	}
	for _, member := range st.SelectElements("member") {
		key := member.SelectElement("name")
		value := member.SelectElement("value")
		if key == nil || value == nil {
			return nil, errors.New("invalid xml-rpc request: incomplete struct member")
		}
		call.Params[strings.TrimSpace(key.Text())] = scalarText(value)
	}

	return call, nil
}

// scalarText returns the text of a <value>, typed or untyped.
func scalarText(value *etree.Element) string {
	if typed := value.ChildElements(); len(typed) > 0 {
		return typed[0].Text()
	}
	return value.Text()
}

func encodeResponse(values map[string]string) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0"`)

	st := doc.CreateElement("methodResponse").
		CreateElement("params").
		CreateElement("param").
		CreateElement("value").
		CreateElement("struct")

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		member := st.CreateElement("member")
		member.CreateElement("name").SetText(k)
		member.CreateElement("value").CreateElement("string").SetText(values[k])
	}

	return doc.WriteToBytes()
}

func encodeFault(code int, message string) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0"`)

	st := doc.CreateElement("methodResponse").
		CreateElement("fault").
		CreateElement("value").
		CreateElement("struct")

	member := st.CreateElement("member")
	member.CreateElement("name").SetText("faultCode")
	member.CreateElement("value").CreateElement("int").SetText(strconv.Itoa(code))

	member = st.CreateElement("member")
	member.CreateElement("name").SetText("faultString")
	member.CreateElement("value").CreateElement("string").SetText(message)

	return doc.WriteToBytes()
}
