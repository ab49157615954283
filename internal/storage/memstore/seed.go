package memstore

import "smarthjem/internal/domain"

// Curated portfolio data sourced from the operator's Booking.com listings.
// The channel manager exposes neither photos nor nightly prices, so this is
// the authoritative public-facing catalog; pricePerNight 0 renders as
// "price on request".
var seedProperties = []domain.Property{
	{
		ID:          "smolasen-tjorhom",
		Name:        "Flott hytte på Smølåsen Tjørhom",
		Description: "Flott hytte på Smølåsen Tjørhom i Fidjeland med tre soverom og ett bad. Eiendommen inkluderer et fullt utstyrt kjøkken med kjøleskap, ovn, komfyr, kaffetrakter og vaskemaskin. Gjester kan nyte hage og terrasse med hageutsikt. Hytta har gratis WiFi, balkong og gratis privat parkering. Perfekt for vintersport og naturopplevelser.",
		Location:    "Fidjeland, Sirdal",
		Beds:        4,
		Bathrooms:   1,
		MaxGuests:   6,
		Images: []string{
			"https://cf.bstatic.com/xdata/images/hotel/max1024x768/613901486.jpg",
			"https://cf.bstatic.com/xdata/images/hotel/max500/613901527.jpg",
			"https://cf.bstatic.com/xdata/images/hotel/max500/613901506.jpg",
		},
		Amenities: []string{"WiFi", "Gratis Parkering", "Balkong", "Terrasse", "Hage", "Kjøkken", "TV", "Grill", "Vaskemaskin"},
		Available: true,
	},
	{
		ID:          "monesstranda-mandal",
		Name:        "Monesstranda ved Mandal A07",
		Description: "Komfortabel feriebolig på Monesstranda med to soverom og ett bad. Gjester nyter gratis WiFi, balkong med hageutsikt, fullt utstyrt kjøkken og vaskemaskin. Eiendommen tilbyr gratis privat parkering og tillater kjæledyr.",
		Location:    "Rugland, Mandal",
		Beds:        3,
		Bathrooms:   1,
		MaxGuests:   6,
		Images: []string{
			"https://cf.bstatic.com/xdata/images/hotel/max1024x768/736507024.jpg",
			"https://cf.bstatic.com/xdata/images/hotel/max500/736507018.jpg",
		},
		Amenities: []string{"WiFi", "Gratis Parkering", "Balkong", "Kjøkken", "TV", "Vaskemaskin", "Kjæledyr Tillatt"},
		Available: true,
	},
	{
		ID:          "great-white-bygland",
		Name:        "Great white cottage in Bygland",
		Description: "Koselig feriebolig i Bygland med ett soverom og ett bad. Gjester kan slappe av på terrassen og nyte hageutsikt. Eiendommen har fullt utstyrt kjøkken, TV og gratis WiFi. Kjæledyr er velkomne uten ekstra kostnader.",
		Location:    "Bygland",
		Beds:        1,
		Bathrooms:   1,
		MaxGuests:   5,
		Images: []string{
			"https://cf.bstatic.com/xdata/images/hotel/max1024x768/719171922.jpg",
			"https://cf.bstatic.com/xdata/images/hotel/max500/719172389.jpg",
		},
		Amenities: []string{"WiFi", "Gratis Parkering", "Terrasse", "Kjøkken", "TV", "Kjæledyr Tillatt"},
		Available: true,
	},
	{
		ID:          "feriehus-sogne",
		Name:        "Flott feriehus Søgne",
		Description: "Feriebolig i Kristiansand med tre soverom og ett bad. Gjester kan nyte hage og terrasse med sjøutsikt. Boligen har fullt utstyrt kjøkken med kjøleskap, mikrobølgeovn, ovn, komfyr og vannkoker. 38 km fra Kristiansand Kjevik flyplass.",
		Location:    "Søgne, Kristiansand",
		Beds:        5,
		Bathrooms:   1,
		MaxGuests:   6,
		Images: []string{
			"https://cf.bstatic.com/xdata/images/hotel/max1024x768/585588418.jpg",
			"https://cf.bstatic.com/xdata/images/hotel/max500/585588707.jpg",
		},
		Amenities: []string{"WiFi", "Sjøutsikt", "Terrasse", "Hage", "Kjøkken", "TV", "Familievennlig", "Kjæledyr Tillatt"},
		Available: true,
	},
	{
		ID:          "koselig-oggevatn",
		Name:        "Koselig feriehus Oggevatn",
		Description: "Romslig feriebolig i Birkenes med fire soverom og stue. Eiendommen inkluderer fullt utstyrt kjøkken, vaskemaskin og koselig peis. Gjester kan nyte vakker hage og utendørs sitteområde. 27 km fra Kristiansand Kjevik flyplass.",
		Location:    "Birkenes",
		Beds:        4,
		Bathrooms:   1,
		MaxGuests:   8,
		Images: []string{
			"https://cf.bstatic.com/xdata/images/hotel/max1024x768/572699655.jpg",
			"https://cf.bstatic.com/xdata/images/hotel/max500/576208876.jpg",
		},
		Amenities: []string{"WiFi", "Gratis Parkering", "Flyplasstransport", "Hage", "Kjøkken", "TV", "Peis", "Vaskemaskin", "Familievennlig", "Grill"},
		Available: true,
	},
	// Listing returned 404 on Booking.com; kept for admin visibility only.
	{
		ID:          "flott-hytte-skjargard",
		Name:        "Flott hytte skjærgård Lindesnes",
		Description: "Vakker hytte i skjærgården i Lindesnes. Nyt freden og roen ved kysten med fantastisk utsikt over sjøen. Perfekt for familier som ønsker en avslappende ferie ved havet.",
		Location:    "Øverststranda, Lindesnes",
		Beds:        4,
		Bathrooms:   1,
		MaxGuests:   6,
		Images:      []string{},
		Amenities:   []string{"WiFi", "Gratis Parkering", "Sjøutsikt", "Kjøkken", "TV"},
		Available:   false,
	},
	{
		ID:          "dobbel-feriehus-bortelid",
		Name:        "Dobbel Feriehus - Bortelid/Åseral",
		Description: "Romslig feriehus på Bortelid i Åseral med fire soverom og to bad. Eiendommen inkluderer boblebad og spa. Gjester nyter gratis WiFi, solterrasse og hage. Perfekt for større grupper og familier.",
		Location:    "Tjaldal, Åseral",
		Beds:        5,
		Bathrooms:   2,
		MaxGuests:   8,
		Images: []string{
			"https://cf.bstatic.com/xdata/images/hotel/max1024x768/550165626.jpg",
			"https://cf.bstatic.com/xdata/images/hotel/max500/571448223.jpg",
		},
		Amenities: []string{"WiFi", "Gratis Parkering", "Boblebad", "Spa", "Solterrasse", "Hage", "Kjøkken", "TV", "Vaskemaskin", "Familievennlig"},
		Available: true,
	},
	{
		ID:          "flott-feriehus-tjorhom",
		Name:        "Flott Feriehus - Tjørhom",
		Description: "Romslig feriehus i Tjørhom, Sirdal med fire soverom og to bad. Gjester nyter gratis WiFi, hage og terrasse med fjell- og hageutsikt. Perfekt for vintersport og friluftsliv. 90 km fra Stavanger flyplass.",
		Location:    "Sinnes, Sirdal",
		Beds:        7,
		Bathrooms:   2,
		MaxGuests:   9,
		Images: []string{
			"https://cf.bstatic.com/xdata/images/hotel/max1024x768/526487530.jpg",
			"https://cf.bstatic.com/xdata/images/hotel/max500/526487640.jpg",
		},
		Amenities: []string{"WiFi", "Gratis Parkering", "Fjellutsikt", "Hage", "Terrasse", "Kjøkken", "TV", "Vaskemaskin", "Familievennlig", "Vintersport"},
		Available: true,
	},
}
