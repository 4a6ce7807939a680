package usecase

import "github.com/ridenaija/ridenaija/internal/pkg/models"

// Static catalog data for the cities and corridors the marketplace serves.
// Prices are in kobo.
var supportedCities = []models.City{
	{ID: 1, Name: "Lagos", Slug: "lagos", Region: "south-west"},
	{ID: 2, Name: "Abuja", Slug: "abuja", Region: "north-central"},
	{ID: 3, Name: "Port Harcourt", Slug: "portharcourt", Region: "south-south"},
	{ID: 4, Name: "Ibadan", Slug: "ibadan", Region: "south-west"},
	{ID: 5, Name: "Kano", Slug: "kano", Region: "north-west"},
	{ID: 6, Name: "Enugu", Slug: "enugu", Region: "south-east"},
	{ID: 7, Name: "Benin City", Slug: "benin", Region: "south-south"},
	{ID: 8, Name: "Calabar", Slug: "calabar", Region: "south-south"},
	{ID: 9, Name: "Ilorin", Slug: "ilorin", Region: "north-central"},
	{ID: 10, Name: "Jos", Slug: "jos", Region: "north-central"},
	{ID: 11, Name: "Maiduguri", Slug: "maiduguri", Region: "north-east"},
	{ID: 12, Name: "Sokoto", Slug: "sokoto", Region: "north-west"},
	{ID: 13, Name: "Oyo", Slug: "oyo", Region: "south-west"},
	{ID: 14, Name: "Abeokuta", Slug: "abeokuta", Region: "south-west"},
	{ID: 15, Name: "Owerri", Slug: "owerri", Region: "south-east"},
	{ID: 16, Name: "Akure", Slug: "akure", Region: "south-west"},
	{ID: 17, Name: "Minna", Slug: "minna", Region: "north-central"},
	{ID: 18, Name: "Bauchi", Slug: "bauchi", Region: "north-east"},
}

var servedRoutes = []models.Route{
	{From: "Lagos", To: "Abuja", Distance: "700km", Duration: "10-12 hours", Price: 1500000, Region: "all"},
	{From: "Lagos", To: "Port Harcourt", Distance: "600km", Duration: "8-10 hours", Price: 1200000, Region: "all"},
	{From: "Lagos", To: "Ibadan", Distance: "150km", Duration: "2-3 hours", Price: 350000, Region: "south-west"},
	{From: "Lagos", To: "Kano", Distance: "1100km", Duration: "15-18 hours", Price: 1800000, Region: "all"},
	{From: "Lagos", To: "Enugu", Distance: "550km", Duration: "7-9 hours", Price: 1100000, Region: "all"},
	{From: "Lagos", To: "Calabar", Distance: "800km", Duration: "12-14 hours", Price: 1400000, Region: "all"},
	{From: "Lagos", To: "Abeokuta", Distance: "100km", Duration: "1.5-2 hours", Price: 250000, Region: "south-west"},
	{From: "Lagos", To: "Akure", Distance: "300km", Duration: "4-5 hours", Price: 550000, Region: "south-west"},
	{From: "Abuja", To: "Lagos", Distance: "700km", Duration: "10-12 hours", Price: 1500000, Region: "all"},
	{From: "Abuja", To: "Kano", Distance: "400km", Duration: "6-7 hours", Price: 800000, Region: "north-central"},
	{From: "Abuja", To: "Jos", Distance: "250km", Duration: "4-5 hours", Price: 600000, Region: "north-central"},
	{From: "Abuja", To: "Ilorin", Distance: "300km", Duration: "5-6 hours", Price: 700000, Region: "north-central"},
	{From: "Abuja", To: "Port Harcourt", Distance: "600km", Duration: "9-11 hours", Price: 1300000, Region: "all"},
	{From: "Ibadan", To: "Lagos", Distance: "150km", Duration: "2-3 hours", Price: 350000, Region: "south-west"},
	{From: "Ibadan", To: "Abuja", Distance: "600km", Duration: "9-11 hours", Price: 1350000, Region: "all"},
	{From: "Ibadan", To: "Enugu", Distance: "450km", Duration: "6-8 hours", Price: 950000, Region: "all"},
	{From: "Port Harcourt", To: "Lagos", Distance: "600km", Duration: "8-10 hours", Price: 1200000, Region: "all"},
	{From: "Port Harcourt", To: "Enugu", Distance: "250km", Duration: "4-5 hours", Price: 600000, Region: "south-east"},
	{From: "Kano", To: "Lagos", Distance: "1100km", Duration: "15-18 hours", Price: 1800000, Region: "all"},
	{From: "Kano", To: "Abuja", Distance: "400km", Duration: "6-7 hours", Price: 800000, Region: "north-central"},
}

// Cities returns the supported city catalog
func (u *TripUC) Cities() []models.City {
	return supportedCities
}

// Routes returns the served corridor catalog
func (u *TripUC) Routes() []models.Route {
	return servedRoutes
}
