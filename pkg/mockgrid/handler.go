package mockgrid

import (
	"net/http"
	"strconv"

	"github.com/beevik/etree"
	"github.com/labstack/echo"
	"github.com/nsyszr/gridadmin/pkg/model"
	"github.com/nsyszr/gridadmin/pkg/storage"
	log "github.com/sirupsen/logrus"
)

const (
	methodBroadcast = "admin_broadcast"
	methodLoadOAR   = "admin_load_oar"
	methodShutdown  = "admin_shutdown"
)

const mimeTextXML = "text/xml; charset=utf-8"

// Handler serves the remote admin endpoints of a grid backed by a store
type Handler struct {
	store    storage.Interface
	password string
}

// NewHandler create a new mock grid handler
func NewHandler(store storage.Interface, password string) *Handler {
	return &Handler{
		store:    store,
		password: password,
	}
}

// RegisterRoutes attaches the handlers to the echo web server
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	log.Debug("Register mock grid routes")
	admin := e.Group("/admin")
	admin.GET("/regions/", h.handleFetchRegions)
	admin.GET("/regioninfo/", h.handleFetchRegionInfo)

	e.POST("/", h.handleCommand)
}

func (h *Handler) handleFetchRegions(c echo.Context) error {
	return h.writeRegions(c, func(el *etree.Element, m model.Region) {
		el.CreateAttr("id", strconv.Itoa(int(m.ID)))
		el.CreateAttr("name", m.Name)
	})
}

func (h *Handler) handleFetchRegionInfo(c echo.Context) error {
	return h.writeRegions(c, func(el *etree.Element, m model.Region) {
		el.CreateAttr("name", m.Name)
		el.CreateAttr("avatars", strconv.Itoa(m.Avatars))
		if m.Archive != "" {
			el.CreateAttr("archive", m.Archive)
		}
	})
}

func (h *Handler) writeRegions(c echo.Context, attrs func(*etree.Element, model.Region)) error {
	regions, err := h.store.Regions().FetchAll()
	if err != nil {
		return c.String(http.StatusInternalServerError, err.Error())
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	root := doc.CreateElement("regions")
	for _, m := range regions {
		attrs(root.CreateElement("region"), m)
	}

	data, err := doc.WriteToBytes()
	if err != nil {
		return c.String(http.StatusInternalServerError, err.Error())
	}
	return c.Blob(http.StatusOK, mimeTextXML, data)
}

func (h *Handler) handleCommand(c echo.Context) error {
	call, err := parseMethodCall(c.Request().Body)
	if err != nil {
		return writeFault(c, faultParse, err.Error())
	}

	logger := log.WithField("method", call.Method)
	if call.Params["password"] != h.password {
		logger.Warn("Rejected admin command with wrong password")
		return writeFault(c, faultAuth, "wrong password")
	}

	switch call.Method {
	case methodBroadcast:
		logger.WithField("message", call.Params["message"]).Info("Broadcast")
		if err := h.store.Broadcasts().Create(&model.Broadcast{Message: call.Params["message"]}); err != nil {
			return writeFault(c, faultInternal, err.Error())
		}
		return writeResult(c, map[string]string{"success": "true"})

	case methodLoadOAR:
		region := call.Params["region_name"]
		m, err := h.store.Regions().FindByName(region)
		if err == storage.ErrNotFound {
			logger.WithField("region", region).Warn("Archive load for unknown region")
			return writeResult(c, map[string]string{"loaded": "false"})
		} else if err != nil {
			return writeFault(c, faultInternal, err.Error())
		}
		if err := h.store.Regions().LoadArchive(m.Name, call.Params["filename"]); err != nil {
			return writeFault(c, faultInternal, err.Error())
		}
		logger.WithFields(log.Fields{
			"region":   m.Name,
			"previous": m.Archive,
		}).Info("Archive loaded")
		return writeResult(c, map[string]string{"loaded": "true"})

	case methodShutdown:
		if err := h.store.Regions().DeleteAll(); err != nil {
			return writeFault(c, faultInternal, err.Error())
		}
		logger.Info("Grid shut down")
		return writeResult(c, map[string]string{"success": "true"})
	}

	return writeFault(c, faultUnknownMethod, "unknown method "+call.Method)
}

func writeResult(c echo.Context, values map[string]string) error {
	data, err := encodeResponse(values)
	if err != nil {
		return c.String(http.StatusInternalServerError, err.Error())
	}
	return c.Blob(http.StatusOK, mimeTextXML, data)
}

// writeFault answers with an XML-RPC fault. Faults travel with status 200.
func writeFault(c echo.Context, code int, message string) error {
	data, err := encodeFault(code, message)
	if err != nil {
		return c.String(http.StatusInternalServerError, err.Error())
	}
	return c.Blob(http.StatusOK, mimeTextXML, data)
}
