package mockgrid

import (
	"strconv"
	"strings"

	"github.com/nsyszr/gridadmin/pkg/model"
	"github.com/nsyszr/gridadmin/pkg/storage"
	"github.com/pkg/errors"
)

// ParseRegionSpec parses "name" or "name=avatars".
func ParseRegionSpec(spec string) (*model.Region, error) {
	name, count := spec, ""
	if i := strings.LastIndex(spec, "="); i >= 0 {
		name, count = spec[:i], spec[i+1:]
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.Errorf("invalid region %q: empty name", spec)
	}

	m := &model.Region{Name: name}
	if count != "" {
		n, err := strconv.Atoi(strings.TrimSpace(count))
		if err != nil || n < 0 {
			return nil, errors.Errorf("invalid region %q: avatar count must be a non-negative integer", spec)
		}
		m.Avatars = n
	}
	return m, nil
}

// Seed creates one region per spec.
func Seed(store storage.Interface, specs []string) error {
	for _, spec := range specs {
		m, err := ParseRegionSpec(spec)
		if err != nil {
			return err
		}
		if err := store.Regions().Create(m); err != nil {
			return errors.Wrapf(err, "failed to create region %q", m.Name)
		}
	}
	return nil
}
