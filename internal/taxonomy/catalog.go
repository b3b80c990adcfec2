package taxonomy

import "github.com/seo-microservice/internal/domain"

// countyNames lists every administrative county of the marketplace plus the
// capital. Slugs are derived, never stored.
var countyNames = []string{
	"Alba",
	"Arad",
	"Argeș",
	"Bacău",
	"Bihor",
	"Bistrița-Năsăud",
	"Botoșani",
	"Brașov",
	"Brăila",
	"București",
	"Buzău",
	"Caraș-Severin",
	"Călărași",
	"Cluj",
	"Constanța",
	"Covasna",
	"Dâmbovița",
	"Dolj",
	"Galați",
	"Giurgiu",
	"Gorj",
	"Harghita",
	"Hunedoara",
	"Ialomița",
	"Iași",
	"Ilfov",
	"Maramureș",
	"Mehedinți",
	"Mureș",
	"Neamț",
	"Olt",
	"Prahova",
	"Satu Mare",
	"Sălaj",
	"Sibiu",
	"Suceava",
	"Teleorman",
	"Timiș",
	"Tulcea",
	"Vaslui",
	"Vâlcea",
	"Vrancea",
}

// regionCatalog holds the curated touristic and metro regions. Touristic
// regions claim whole counties; where counties overlap, the higher Priority
// wins. Metro regions are scoped to their core cities.
var regionCatalog = []domain.RegionDefinition{
	{
		Name:     "Transilvania",
		Kind:     domain.RegionTouristic,
		Counties: []string{"Alba", "Bistrița-Năsăud", "Brașov", "Cluj", "Covasna", "Harghita", "Hunedoara", "Mureș", "Sălaj", "Sibiu"},
		Priority: 10,
	},
	{
		Name:     "Maramureș",
		Kind:     domain.RegionTouristic,
		Counties: []string{"Maramureș", "Satu Mare"},
		Priority: 30,
	},
	{
		Name:     "Bucovina",
		Kind:     domain.RegionTouristic,
		Counties: []string{"Suceava", "Botoșani"},
		Priority: 40,
	},
	{
		Name:     "Moldova",
		Kind:     domain.RegionTouristic,
		Counties: []string{"Bacău", "Botoșani", "Galați", "Iași", "Neamț", "Suceava", "Vaslui", "Vrancea"},
		Priority: 10,
	},
	{
		Name:     "Dobrogea",
		Kind:     domain.RegionTouristic,
		Counties: []string{"Constanța", "Tulcea"},
		Priority: 20,
	},
	{
		Name:     "Litoral",
		Kind:     domain.RegionTouristic,
		Counties: []string{"Constanța"},
		Priority: 50,
	},
	{
		Name:     "Oltenia",
		Kind:     domain.RegionTouristic,
		Counties: []string{"Dolj", "Gorj", "Mehedinți", "Olt", "Vâlcea"},
		Priority: 10,
	},
	{
		Name:     "Muntenia",
		Kind:     domain.RegionTouristic,
		Counties: []string{"Argeș", "Brăila", "București", "Buzău", "Călărași", "Dâmbovița", "Giurgiu", "Ialomița", "Ilfov", "Prahova", "Teleorman"},
		Priority: 10,
	},
	{
		Name:     "Valea Prahovei",
		Kind:     domain.RegionTouristic,
		Counties: []string{"Prahova"},
		Priority: 50,
	},
	{
		Name:     "Banat",
		Kind:     domain.RegionTouristic,
		Counties: []string{"Timiș", "Caraș-Severin"},
		Priority: 20,
	},
	{
		Name:     "Crișana",
		Kind:     domain.RegionTouristic,
		Counties: []string{"Bihor", "Arad"},
		Priority: 10,
	},
	{
		Name:       "București",
		Kind:       domain.RegionMetro,
		Counties:   []string{"București", "Ilfov"},
		CoreCities: []string{"București", "Otopeni", "Voluntari", "Popești-Leordeni"},
	},
	{
		Name:       "Cluj-Napoca",
		Kind:       domain.RegionMetro,
		Counties:   []string{"Cluj"},
		CoreCities: []string{"Cluj-Napoca", "Florești", "Apahida", "Baciu"},
	},
	{
		Name:       "Brașov",
		Kind:       domain.RegionMetro,
		Counties:   []string{"Brașov"},
		CoreCities: []string{"Brașov", "Ghimbav", "Săcele", "Cristian"},
	},
	{
		Name:       "Alba Iulia",
		Kind:       domain.RegionMetro,
		Counties:   []string{"Alba"},
		CoreCities: []string{"Alba Iulia", "Sebeș", "Teiuș", "Vințu de Jos"},
	},
}

// listingTypeCatalog is the fixed property-type enumeration.
var listingTypeCatalog = []domain.ListingTypeOption{
	{Value: "cabana", Label: "Cabane", Slug: "cabana"},
	{Value: "pensiune", Label: "Pensiuni", Slug: "pensiune"},
	{Value: "vila", Label: "Vile", Slug: "vila"},
	{Value: "apartament", Label: "Apartamente", Slug: "apartament"},
	{Value: "hotel", Label: "Hoteluri", Slug: "hotel"},
	{Value: "camping", Label: "Campinguri", Slug: "camping"},
}
