package gridadmin

import (
	"testing"

	"github.com/nsyszr/gridadmin/pkg/client"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalAvatarsSumsAllRegions(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want int
	}{
		{"no regions", `<regions/>`, 0},
		{"single region", `<regions><r avatars="7"/></regions>`, 7},
		{"two regions", `<regions><r avatars="3"/><r avatars="5"/></regions>`, 8},
		{"zero counts", `<regions><r avatars="0"/><r avatars="0"/></regions>`, 0},
		{"padded value", `<regions><region name="a" avatars=" 12 "/><region name="b" avatars="30"/></regions>`, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := newFakeClient()
			fc.documents[RegionInfoPath] = tt.doc

			n, err := NewStatusReader(fc).TotalAvatars()
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
			assert.Equal(t, []string{RegionInfoPath}, fc.fetches)
		})
	}
}

func TestTotalAvatarsRejectsBadCounts(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing attribute", `<regions><r avatars="3"/><r/></regions>`},
		{"not a number", `<regions><r avatars="3"/><r avatars="many"/></regions>`},
		{"negative", `<regions><r avatars="-1"/></regions>`},
		{"empty", `<regions><r avatars=""/></regions>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := newFakeClient()
			fc.documents[RegionInfoPath] = tt.doc

			n, err := NewStatusReader(fc).TotalAvatars()
			require.Error(t, err)
			assert.True(t, client.IsParseError(err))
			assert.Equal(t, 0, n)
		})
	}
}

func TestTotalAvatarsPropagatesTransportError(t *testing.T) {
	fc := newFakeClient()
	fc.fetchErr = client.NewTransportError("get", "http://grid.example/admin/regioninfo/", errors.New("connection refused"))

	_, err := NewStatusReader(fc).TotalAvatars()
	require.Error(t, err)
	assert.True(t, client.IsTransportError(err))
}

func TestRegionInfoKeepsNames(t *testing.T) {
	fc := newFakeClient()
	fc.documents[RegionInfoPath] = `<regions><region name="Island" avatars="2"/><region id="r2" avatars="1"/></regions>`

	regions, err := NewStatusReader(fc).RegionInfo()
	require.NoError(t, err)
	require.Len(t, regions, 2)
	assert.Equal(t, "Island", regions[0].Name)
	assert.Equal(t, 2, regions[0].Avatars)
	assert.Equal(t, "r2", regions[1].Name)
}

func TestListRegions(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		names []string
	}{
		{"empty", `<regions/>`, []string{}},
		{"empty with whitespace", "<regions>\n  \n</regions>", []string{}},
		{"by attribute", `<regions><region name="Island"/><region uuid="0000-1"/></regions>`, []string{"Island", "0000-1"}},
		{"by text", `<regions><region>Harbour</region></regions>`, []string{"Harbour"}},
		{"content ignored", `<regions><a><b/></a><c x="1"/></regions>`, []string{"a", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := newFakeClient()
			fc.documents[RegionsPath] = tt.doc

			regions, err := NewStatusReader(fc).ListRegions()
			require.NoError(t, err)
			require.NotNil(t, regions)
			require.Len(t, regions, len(tt.names))
			for i, name := range tt.names {
				assert.Equal(t, name, regions[i].Name)
			}
		})
	}
}
