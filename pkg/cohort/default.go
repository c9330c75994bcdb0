package cohort

// DefaultLists returns built-in country lists.
func DefaultLists() Lists {
	return Lists{
		CFAZone: []Country{
			// West African Economic and Monetary Union
			{Code: "BEN", Name: "Benin"},
			{Code: "BFA", Name: "Burkina Faso"},
			{Code: "CIV", Name: "Côte d'Ivoire"},
			{Code: "GNB", Name: "Guinea-Bissau", Joined: 1997},
			{Code: "MLI", Name: "Mali", Joined: 1984},
			{Code: "NER", Name: "Niger"},
			{Code: "SEN", Name: "Senegal"},
			{Code: "TGO", Name: "Togo"},
			// Central African Economic and Monetary Community
			{Code: "CMR", Name: "Cameroon"},
			{Code: "CAF", Name: "Central African Republic"},
			{Code: "TCD", Name: "Chad"},
			{Code: "COG", Name: "Republic of Congo"},
			{Code: "GNQ", Name: "Equatorial Guinea", Joined: 1985},
			{Code: "GAB", Name: "Gabon"},
		},
		WestAfrica: []Country{
			{Code: "CPV", Name: "Cabo Verde"},
			{Code: "GMB", Name: "The Gambia"},
			{Code: "GHA", Name: "Ghana"},
			{Code: "GIN", Name: "Guinea"},
			{Code: "LBR", Name: "Liberia"},
			{Code: "MRT", Name: "Mauritania"},
			{Code: "NGA", Name: "Nigeria"},
			{Code: "SLE", Name: "Sierra Leone"},
		},
		MiddleAfrica: []Country{
			{Code: "AGO", Name: "Angola"},
			{Code: "COD", Name: "Democratic Republic of the Congo"},
			{Code: "STP", Name: "São Tomé and Príncipe"},
		},
	}
}

// Default returns Membership built from DefaultLists.
func Default() *Membership {
	res, err := New(DefaultLists())
	if err != nil {
		// built-in lists are always valid
		panic(err)
	}
	return res
}
