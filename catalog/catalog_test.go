package catalog

import (
	"errors"
	"testing"

	"github.com/poiesic/seokit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Sizes(t *testing.T) {
	c := Default()

	assert.Len(t, c.Services, 97)
	assert.Len(t, c.Locations, 372)
	assert.Len(t, c.Prefixes, 23)
	assert.Len(t, c.Suffixes, 26)
	assert.Len(t, c.HighValuePrefixes, 6)
	assert.Len(t, c.HighValueSuffixes, 6)
	assert.Equal(t, []string{"Booksy", "Fresha", "Treatwell", "StyleSeat"}, c.Competitors)
	assert.Len(t, c.Variations, 10)
	assert.Equal(t, "Stylr SA", c.Brand)
	assert.Equal(t, "South Africa", c.Market)
	assert.Equal(t, Cutoffs{HighValue: 50, Competitor: 30, Variation: 40}, c.Cutoffs)

	for _, v := range c.Variations {
		assert.GreaterOrEqual(t, len(v.Variants), 2, "variation %q", v.Service)
		assert.LessOrEqual(t, len(v.Variants), 4, "variation %q", v.Service)
	}
}

func TestDefault_LocationOrder(t *testing.T) {
	c := Default()

	assert.Equal(t, "Johannesburg", c.Locations[0])
	assert.Equal(t, "Houghton", c.Locations[49])
	assert.Equal(t, "Killarney", c.Locations[50])
	assert.Equal(t, "Three Sisters", c.Locations[len(c.Locations)-1])
}

func TestDefault_ReturnsCopies(t *testing.T) {
	a := Default()
	a.Services[0] = "changed"
	a.Variations[0].Variants[0] = "changed"

	b := Default()
	assert.Equal(t, "hair salon", b.Services[0])
	assert.Equal(t, "hairdresser", b.Variations[0].Variants[0])
}

func TestValidate_Default(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidate_Degenerate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Catalog)
		wantField string
	}{
		{
			name:      "no services",
			mutate:    func(c *Catalog) { c.Services = nil },
			wantField: "services",
		},
		{
			name:      "empty locations",
			mutate:    func(c *Catalog) { c.Locations = []string{} },
			wantField: "locations",
		},
		{
			name:      "blank prefix",
			mutate:    func(c *Catalog) { c.Prefixes[2] = "" },
			wantField: "prefixes[2]",
		},
		{
			name:      "variation without variants",
			mutate:    func(c *Catalog) { c.Variations[1].Variants = nil },
			wantField: "variations[1].variants",
		},
		{
			name:      "negative cutoff",
			mutate:    func(c *Catalog) { c.Cutoffs.Competitor = -1 },
			wantField: "cutoffs.competitor",
		},
		{
			name:      "missing brand",
			mutate:    func(c *Catalog) { c.Brand = "" },
			wantField: "brand",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)

			err := c.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, core.ErrDegenerateInput))

			var degenerate *core.DegenerateInputError
			require.True(t, errors.As(err, &degenerate))
			assert.Equal(t, tt.wantField, degenerate.Field)
		})
	}
}

func TestValidate_OptionalListsMayBeEmpty(t *testing.T) {
	c := Default()
	c.Prefixes = nil
	c.Suffixes = nil
	c.Competitors = nil
	c.Variations = nil

	assert.NoError(t, c.Validate())
}

func TestValidate_Nil(t *testing.T) {
	var c *Catalog
	assert.ErrorIs(t, c.Validate(), core.ErrDegenerateInput)
}

func TestTop(t *testing.T) {
	list := []string{"a", "b", "c"}

	assert.Equal(t, []string{"a", "b"}, Top(list, 2))
	assert.Equal(t, list, Top(list, 10))
	assert.Empty(t, Top(list, 0))
	assert.Empty(t, Top(list, -5))
}

func TestTopLocations(t *testing.T) {
	c := Default()
	top := c.TopLocations(30)

	require.Len(t, top, 30)
	assert.Equal(t, c.Locations[:30], top)
}
