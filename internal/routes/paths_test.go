package routes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seo-microservice/internal/domain"
	"github.com/seo-microservice/internal/routes"
)

func TestCanonicalPathShapes(t *testing.T) {
	assert.Equal(t, "/cazari/cabana", routes.TypePath("cabana"))
	assert.Equal(t, "/judet/brasov", routes.CountyPath("brasov"))
	assert.Equal(t, "/cazari/cabana/county-brasov",
		routes.TypeLocationPath("cabana", routes.PrefixCounty+"brasov"))
	assert.Equal(t, "/cazari/cabana/county-brasov/facility-sauna",
		routes.TypeFacilityCountyPath("cabana", "brasov", "sauna"))
	assert.Equal(t, "/cazare/casa-dintre-brazi", routes.ListingPath("casa-dintre-brazi"))
	assert.Equal(t, "/atractie/castelul-bran", routes.AttractionPath("castelul-bran"))
}

func TestRegionPath(t *testing.T) {
	touristic := domain.RegionDefinition{Name: "Bucovina", Slug: "bucovina", Kind: domain.RegionTouristic}
	metro := domain.RegionDefinition{Name: "Cluj-Napoca", Slug: "cluj-napoca", Kind: domain.RegionMetro}

	assert.Equal(t, "/regiune/bucovina", routes.RegionPath(touristic))
	assert.Equal(t, "/localitate/cluj-napoca", routes.RegionPath(metro))
}

func TestListingPreviewPath(t *testing.T) {
	slug := "casa-dintre-brazi"
	preview := routes.ListingPreviewPath(slug)
	assert.Equal(t, "/previzualizare/cazare/casa-dintre-brazi", preview)
	require.NotEqual(t, routes.ListingPath(slug), preview)
}

func TestStaticPages(t *testing.T) {
	require.Len(t, routes.StaticPages, 5)

	indexable := map[string]bool{}
	for _, static := range routes.StaticPages {
		indexable[static.Path] = static.Indexable
	}
	assert.True(t, indexable["/despre-noi"])
	assert.True(t, indexable["/servicii"])
	assert.True(t, indexable["/contact"])
	assert.False(t, indexable["/termeni-si-conditii"])
	assert.False(t, indexable["/politica-de-confidentialitate"])
}
