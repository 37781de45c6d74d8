// internal/domain/catalog/data.go
package catalog

// products is the static product table. In a real deployment this would
// come from a database; the site's inventory is small and fixed.
var products = map[string]Product{
	"safari-jeep": {
		ID:    "safari-jeep",
		Type:  TypeCar,
		Name:  "Safari Jeep",
		Price: 120,
		Image: "/images/safari-jeep.jpg",
	},
	"land-cruiser": {
		ID:    "land-cruiser",
		Type:  TypeCar,
		Name:  "Land Cruiser",
		Price: 150,
		Image: "/images/land-cruiser.jpg",
	},
	"safari-van": {
		ID:    "safari-van",
		Type:  TypeCar,
		Name:  "Safari Van",
		Price: 180,
		Image: "/images/safari-van.jpg",
	},
	"luxury-suv": {
		ID:    "luxury-suv",
		Type:  TypeCar,
		Name:  "Luxury SUV",
		Price: 220,
		Image: "/images/luxury-suv.jpg",
	},
	"luxury-lodge": {
		ID:    "luxury-lodge",
		Type:  TypeAccommodation,
		Name:  "Luxury Safari Lodge",
		Price: 350,
		Image: "/images/luxury-lodge.jpg",
	},
	"tented-camp": {
		ID:    "tented-camp",
		Type:  TypeAccommodation,
		Name:  "Tented Safari Camp",
		Price: 220,
		Image: "/images/tented-camp.jpg",
	},
	"eco-lodge": {
		ID:    "eco-lodge",
		Type:  TypeAccommodation,
		Name:  "Eco-Friendly Lodge",
		Price: 280,
		Image: "/images/eco-lodge.jpg",
	},
	"serengeti-tour": {
		ID:    "serengeti-tour",
		Type:  TypeTour,
		Name:  "Serengeti National Park Tour",
		Price: 500,
		Image: "/images/serengeti.jpg",
	},
	"maasai-mara-tour": {
		ID:    "maasai-mara-tour",
		Type:  TypeTour,
		Name:  "Maasai Mara Reserve Tour",
		Price: 450,
		Image: "/images/maasai-mara.jpg",
	},
	"kruger-tour": {
		ID:    "kruger-tour",
		Type:  TypeTour,
		Name:  "Kruger National Park Tour",
		Price: 480,
		Image: "/images/kruger.jpg",
	},
	"guide-james-kimathi": {
		ID:             "guide-james-kimathi",
		Type:           TypeGuide,
		Name:           "James Kimathi",
		Price:          120,
		Image:          "/images/guide-1.png",
		GuideSpecialty: "Wildlife Expert",
	},
	"guide-sarah-omondi": {
		ID:             "guide-sarah-omondi",
		Type:           TypeGuide,
		Name:           "Sarah Omondi",
		Price:          110,
		Image:          "/images/guide-2.png",
		GuideSpecialty: "Bird Specialist",
	},
	"guide-daniel-mwangi": {
		ID:             "guide-daniel-mwangi",
		Type:           TypeGuide,
		Name:           "Daniel Mwangi",
		Price:          100,
		Image:          "/images/guide-3.png",
		GuideSpecialty: "Cultural Expert",
	},
	"guide-lisa-njoroge": {
		ID:             "guide-lisa-njoroge",
		Type:           TypeGuide,
		Name:           "Lisa Njoroge",
		Price:          130,
		Image:          "/images/guide-4.png",
		GuideSpecialty: "Photography Guide",
	},
}

// productOrder fixes the listing order for List and ListByType
var productOrder = []string{
	"safari-jeep", "land-cruiser", "safari-van", "luxury-suv",
	"luxury-lodge", "tented-camp", "eco-lodge",
	"serengeti-tour", "maasai-mara-tour", "kruger-tour",
	"guide-james-kimathi", "guide-sarah-omondi", "guide-daniel-mwangi", "guide-lisa-njoroge",
}

var destinations = []Destination{
	{
		ID:          "serengeti",
		Name:        "Serengeti National Park",
		Location:    "Tanzania",
		Description: "Home to the great migration, with millions of wildebeest, zebra, and gazelle.",
		Image:       "/images/serengeti.jpg",
		Price:       500,
		Rating:      4.9,
		Reviews:     128,
	},
	{
		ID:          "maasai-mara",
		Name:        "Maasai Mara Reserve",
		Location:    "Kenya",
		Description: "Famous for its exceptional population of big cats and the annual wildebeest migration.",
		Image:       "/images/maasai-mara.jpg",
		Price:       450,
		Rating:      4.8,
		Reviews:     112,
	},
	{
		ID:          "kruger",
		Name:        "Kruger National Park",
		Location:    "South Africa",
		Description: "One of Africa's largest game reserves, home to the Big Five and hundreds of other species.",
		Image:       "/images/kruger.jpg",
		Price:       480,
		Rating:      4.7,
		Reviews:     98,
	},
	{
		ID:          "amboseli",
		Name:        "Amboseli National Park",
		Location:    "Kenya",
		Description: "Known for its large elephant herds and views of Mount Kilimanjaro.",
		Image:       "/images/serengeti.jpg",
		Price:       420,
		Rating:      4.6,
		Reviews:     86,
	},
	{
		ID:          "bwindi",
		Name:        "Bwindi Impenetrable Forest",
		Location:    "Uganda",
		Description: "Home to half the world's population of endangered mountain gorillas.",
		Image:       "/images/maasai-mara.jpg",
		Price:       550,
		Rating:      4.9,
		Reviews:     74,
	},
	{
		ID:          "chobe",
		Name:        "Chobe National Park",
		Location:    "Botswana",
		Description: "Famous for its large herds of elephants and abundant wildlife along the Chobe River.",
		Image:       "/images/kruger.jpg",
		Price:       470,
		Rating:      4.7,
		Reviews:     92,
	},
}

var guides = []Guide{
	{
		ID:         "james-kimathi",
		Name:       "James Kimathi",
		Specialty:  "Wildlife Expert",
		Location:   "Nairobi, Kenya",
		Image:      "/images/guide-1.png",
		Languages:  []string{"English", "Swahili", "Maasai"},
		Experience: 15,
		Rating:     4.9,
		Reviews:    124,
		Price:      120,
		Bio:        "James has been leading safari tours for over 15 years across East Africa. He specializes in tracking big cats and has extensive knowledge of the Serengeti and Maasai Mara ecosystems.",
	},
	{
		ID:         "sarah-omondi",
		Name:       "Sarah Omondi",
		Specialty:  "Bird Specialist",
		Location:   "Mombasa, Kenya",
		Image:      "/images/guide-2.png",
		Languages:  []string{"English", "Swahili", "French"},
		Experience: 12,
		Rating:     4.8,
		Reviews:    98,
		Price:      110,
		Bio:        "Sarah is an ornithologist with knowledge of over 500 bird species across East Africa. She specializes in bird photography and has contributed to several field guides on African birds.",
	},
	{
		ID:         "daniel-mwangi",
		Name:       "Daniel Mwangi",
		Specialty:  "Cultural Expert",
		Location:   "Arusha, Tanzania",
		Image:      "/images/guide-3.png",
		Languages:  []string{"English", "Swahili", "Maasai", "German"},
		Experience: 10,
		Rating:     4.7,
		Reviews:    87,
		Price:      100,
		Bio:        "Daniel comes from a Maasai background and specializes in cultural tours. He provides deep insights into local traditions, customs, and the relationship between communities and wildlife.",
	},
	{
		ID:         "lisa-njoroge",
		Name:       "Lisa Njoroge",
		Specialty:  "Photography Guide",
		Location:   "Nairobi, Kenya",
		Image:      "/images/guide-4.png",
		Languages:  []string{"English", "Swahili", "Italian"},
		Experience: 8,
		Rating:     4.9,
		Reviews:    76,
		Price:      130,
		Bio:        "Lisa is a professional wildlife photographer who has been published in National Geographic. She helps guests capture the perfect safari moments and offers photography workshops.",
	},
}
