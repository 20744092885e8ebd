package ledger

// catalogEntry is a product of the canonical bakery assortment.
type catalogEntry struct {
	Name  string
	Price float64
}

// defaultCatalog is seeded into an empty products table on first start.
var defaultCatalog = []catalogEntry{
	{"Ciasto pom.", 40},
	{"Forma przenno-żytnia", 17},
	{"Forma pszenno-orkiszowa", 17},
	{"Makowiec Austriacki", 60},
	{"Panettone 300", 50},
	{"Panettone 500", 70},
	{"Pszenno-orkiszowy", 12},
	{"Pszenno-żytni", 12},
	{"Pszenny czysty", 12},
	{"Pszenny z makiem", 12},
	{"Pszenny z sezamem", 12},
	{"Sernik nowojorski", 65},
	{"Stollen z wiśnią", 45},
	{"Strucla", 45},
	{"Zytni czysty", 17},
	{"Żytni z ziarnami", 17},
}

// DefaultProductNames lists the canonical product names.
func DefaultProductNames() []string {
	names := make([]string, 0, len(defaultCatalog))
	for _, entry := range defaultCatalog {
		names = append(names, entry.Name)
	}
	return names
}
