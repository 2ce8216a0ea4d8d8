package locations

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/poiesic/seokit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		slug string
		want string
	}{
		{"rosebank", "Rosebank"},
		{"hyde-park", "Hyde Park"},
		{"kentucky-on-sea", "Kentucky On Sea"},
		{"va-waterfront", "Va Waterfront"},
		{"western-cape", "Western Cape"},
		{"kwazulu-natal", "Kwazulu Natal"},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayName(tt.slug))
		})
	}
}

func TestProvinces(t *testing.T) {
	ps := Provinces()

	require.Len(t, ps, 9)
	assert.Equal(t, "gauteng", ps[0].Slug)
	assert.Equal(t, "northern-cape", ps[8].Slug)
	assert.Equal(t, 410, TotalCities(ps))

	want := map[string]int{
		"gauteng": 68, "western-cape": 65, "kwazulu-natal": 55,
		"eastern-cape": 49, "free-state": 30, "mpumalanga": 30,
		"limpopo": 35, "north-west": 30, "northern-cape": 48,
	}
	for _, p := range ps {
		assert.Len(t, p.Cities, want[p.Slug], p.Slug)
	}

	// Callers get copies
	ps[0].Cities[0] = "changed"
	assert.Equal(t, "rosebank", Provinces()[0].Cities[0])
}

func TestDuplicates(t *testing.T) {
	dups := Duplicates(Provinces())

	slugs := make([]string, len(dups))
	for i, d := range dups {
		slugs[i] = d.Slug
	}
	assert.Equal(t, []string{"bronkhorstspruit", "amanzimtoti", "richmond", "port-shepstone", "vryburg"}, slugs)
	assert.Equal(t, []string{"gauteng", "mpumalanga"}, dups[0].Provinces)
	assert.Equal(t, []string{"kwazulu-natal", "kwazulu-natal"}, dups[1].Provinces)
}

func TestBuildEntry(t *testing.T) {
	entry := BuildEntry("camps-bay", "Western Cape", "Salons in {city}, {province}.")

	assert.Equal(t, "camps-bay", entry.Slug)
	assert.Equal(t, "Camps Bay", entry.Name)
	assert.Equal(t, "Western Cape", entry.Province)
	assert.Equal(t, "Salons in Camps Bay, Western Cape.", entry.Description)
	require.Len(t, entry.Keywords, 10)
	assert.Equal(t, "hair salon near me Camps Bay", entry.Keywords[0])
	assert.Equal(t, "facial near me Camps Bay", entry.Keywords[9])
}

func TestEntries(t *testing.T) {
	ps := []Province{
		{Slug: "free-state", Cities: []string{"parys", "clarens"}},
		{Slug: "limpopo", Cities: []string{"tzaneen"}},
	}

	entries := Entries(ps, DefaultDescriptionTemplate)
	require.Len(t, entries, 3)
	assert.Equal(t, "Parys", entries[0].Name)
	assert.Equal(t, "Free State", entries[0].Province)
	assert.Contains(t, entries[0].Description, "Parys, Free State")
	assert.Equal(t, "Limpopo", entries[2].Province)
}

func TestWriteEntries(t *testing.T) {
	entries := []core.CityEntry{BuildEntry("parys", "Free State", DefaultDescriptionTemplate)}

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteEntries(&buf, entries, "yaml"))

		var decoded []core.CityEntry
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, entries, decoded)
		assert.Contains(t, buf.String(), "slug: parys")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteEntries(&buf, entries, "JSON"))

		var decoded []core.CityEntry
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, entries, decoded)
	})

	t.Run("unknown", func(t *testing.T) {
		var buf bytes.Buffer
		err := WriteEntries(&buf, entries, "toml")
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	Report(&buf, Provinces())

	output := buf.String()
	assert.Contains(t, output, "Total cities to add: 410\n")
	assert.Contains(t, output, "gauteng: 68 cities\n")
	assert.Contains(t, output, "northern-cape: 48 cities\n")
	assert.Contains(t, output, "  richmond (kwazulu-natal, northern-cape)\n")
	assert.Contains(t, output, "2. Add them to frontend/src/lib/locationData.ts\n")
}
