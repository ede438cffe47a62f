package place

// DefaultSeed is used when no seed file is configured.
func DefaultSeed() []Place {
	return []Place{
		{Title: "Paris", Description: "City of light", ImageRef: "paris"},
		{Title: "Rome", Description: "Eternal city", ImageRef: "rome"},
		{Title: "Kyoto", Description: "Temples, gardens and old wooden streets", ImageRef: "kyoto"},
		{Title: "Reykjavik", Description: "Northern capital between lava fields and the sea", ImageRef: "reykjavik"},
		{Title: "Marrakesh", Description: "Red city of souks and riads", ImageRef: "marrakesh"},
		{Title: "Cusco", Description: "Andean gateway to the Sacred Valley", ImageRef: "cusco"},
		{Title: "Hobart", Description: "Harbour town under kunanyi", ImageRef: "hobart"},
		{Title: "Istanbul", Description: "Two continents across the Bosphorus", ImageRef: "istanbul"},
	}
}
