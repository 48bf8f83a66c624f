package gridadmin

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/nsyszr/gridadmin/pkg/client"
	"github.com/nsyszr/gridadmin/pkg/model"
)

// Status document paths, relative to the endpoint's base URL
const (
	RegionsPath    = "admin/regions/"
	RegionInfoPath = "admin/regioninfo/"
)

const avatarsAttr = "avatars"

// StatusReader runs the read-only status queries
type StatusReader struct {
	c client.Interface
}

func NewStatusReader(c client.Interface) *StatusReader {
	return &StatusReader{c: c}
}

// ListRegions returns one region per child of the regions document. Only
// the name is filled in.
func (r *StatusReader) ListRegions() ([]model.Region, error) {
	root, err := r.c.FetchXML(RegionsPath)
	if err != nil {
		return nil, err
	}

	children := root.ChildElements()
	regions := make([]model.Region, 0, len(children))
	for _, el := range children {
		regions = append(regions, model.Region{Name: regionName(el)})
	}
	return regions, nil
}

// RegionInfo returns the regions of the region info document together
// with their avatar counts. A missing or malformed count fails the whole
// query.
func (r *StatusReader) RegionInfo() ([]model.Region, error) {
	root, err := r.c.FetchXML(RegionInfoPath)
	if err != nil {
		return nil, err
	}

	children := root.ChildElements()
	regions := make([]model.Region, 0, len(children))
	for _, el := range children {
		n, err := avatarCount(el)
		if err != nil {
			return nil, err
		}
		regions = append(regions, model.Region{Name: regionName(el), Avatars: n})
	}
	return regions, nil
}

// TotalAvatars sums the avatar counts of all regions.
func (r *StatusReader) TotalAvatars() (int, error) {
	regions, err := r.RegionInfo()
	if err != nil {
		return 0, err
	}

	total := 0
	for _, m := range regions {
		total += m.Avatars
	}
	return total, nil
}

func avatarCount(el *etree.Element) (int, error) {
	attr := el.SelectAttr(avatarsAttr)
	if attr == nil {
		return 0, client.NewParseError(el.Tag, avatarsAttr, "", "attribute missing")
	}

	n, err := strconv.Atoi(strings.TrimSpace(attr.Value))
	if err != nil {
		return 0, client.NewParseError(el.Tag, avatarsAttr, attr.Value, "not an integer")
	}
	if n < 0 {
		return 0, client.NewParseError(el.Tag, avatarsAttr, attr.Value, "negative count")
	}
	return n, nil
}

// regionName picks the most descriptive identifier the element carries.
func regionName(el *etree.Element) string {
	for _, key := range []string{"name", "id", "uuid"} {
		if v := el.SelectAttrValue(key, ""); v != "" {
			return v
		}
	}
	if text := strings.TrimSpace(el.Text()); text != "" {
		return text
	}
	return el.Tag
}
