package bootstrap

import (
	"lumen/internal/domains/maplocation/model"
	gModel "lumen/shared/model"
	"time"
)

type catalogEntry struct {
	name         string
	address      string
	customerName string
	serviceType  string
	status       string
	offsetDays   int
	value        int64
	latitude     float64
	longitude    float64
}

const (
	servicePremium     = "Premium Package"
	serviceResidential = "Residential"
	serviceCustom      = "Custom Design"
	serviceBasic       = "Basic Package"
	serviceCommercial  = "Commercial"
	serviceAreas       = "Service Areas"
)

var catalog = []catalogEntry{
	{"Johnson Residence", "123 Main St, Anytown, ST", "Sarah Johnson", servicePremium, model.StatusCompleted, -5, 750, 40.7128, -74.0060},
	{"Smith Estate", "456 Oak Ave, Anytown, ST", "John Smith", servicePremium, model.StatusCompleted, -10, 850, 40.7160, -74.0100},
	{"Williams Mansion", "789 Pine Rd, Anytown, ST", "Lisa Williams", servicePremium, model.StatusScheduled, 7, 1200, 40.7100, -74.0040},
	{"Brown Family Home", "321 Elm St, Anytown, ST", "Mike Brown", servicePremium, model.StatusPending, 3, 950, 40.7140, -74.0080},

	{"Davis Home", "654 Maple Dr, Anytown, ST", "Emily Davis", serviceResidential, model.StatusCompleted, -15, 350, 40.7080, -74.0020},
	{"Miller Residence", "987 Cedar Ln, Anytown, ST", "David Miller", serviceResidential, model.StatusCompleted, -8, 420, 40.7200, -74.0120},
	{"Wilson House", "147 Birch St, Anytown, ST", "Jennifer Wilson", serviceResidential, model.StatusScheduled, 5, 380, 40.7060, -74.0000},
	{"Taylor Family", "258 Spruce Ave, Anytown, ST", "Robert Taylor", serviceResidential, model.StatusPending, 10, 450, 40.7180, -74.0140},

	{"Anderson Estate", "369 Walnut Dr, Anytown, ST", "Patricia Anderson", serviceCustom, model.StatusCompleted, -20, 1800, 40.7220, -74.0160},
	{"Thomas Villa", "741 Poplar Rd, Anytown, ST", "Christopher Thomas", serviceCustom, model.StatusScheduled, 12, 2200, 40.7040, -74.0180},
	{"Jackson Mansion", "852 Hickory Ln, Anytown, ST", "Amanda Jackson", serviceCustom, model.StatusPending, 15, 1900, 40.7240, -74.0200},

	{"White Home", "963 Ash St, Anytown, ST", "Michael White", serviceBasic, model.StatusCompleted, -12, 280, 40.7020, -74.0220},
	{"Harris Residence", "159 Willow Ave, Anytown, ST", "Linda Harris", serviceBasic, model.StatusCompleted, -18, 320, 40.7260, -74.0240},
	{"Clark House", "357 Sycamore Dr, Anytown, ST", "James Clark", serviceBasic, model.StatusScheduled, 8, 290, 40.7000, -74.0260},
	{"Lewis Family", "468 Chestnut Rd, Anytown, ST", "Barbara Lewis", serviceBasic, model.StatusPending, 20, 310, 40.7280, -74.0280},

	{"Downtown Office", "123 Business Blvd, Anytown, ST", "ABC Corporation", serviceCommercial, model.StatusCompleted, -25, 3500, 40.7300, -74.0300},
	{"Shopping Center", "456 Retail Plaza, Anytown, ST", "Mall Management", serviceCommercial, model.StatusScheduled, 25, 4200, 40.6980, -74.0320},
	{"Hotel Complex", "789 Hospitality Way, Anytown, ST", "Grand Hotel", serviceCommercial, model.StatusPending, 30, 3800, 40.7320, -74.0340},

	{"North Service Area", "North District, Anytown, ST", "Service Area", serviceAreas, model.StatusCompleted, -30, 0, 40.7340, -74.0360},
	{"South Service Area", "South District, Anytown, ST", "Service Area", serviceAreas, model.StatusCompleted, -30, 0, 40.6960, -74.0380},
	{"East Service Area", "East District, Anytown, ST", "Service Area", serviceAreas, model.StatusCompleted, -30, 0, 40.7360, -74.0400},
	{"West Service Area", "West District, Anytown, ST", "Service Area", serviceAreas, model.StatusCompleted, -30, 0, 40.6940, -74.0420},

	{"Garcia Residence", "147 New Home Dr, Anytown, ST", "Maria Garcia", servicePremium, model.StatusScheduled, 35, 1100, 40.7380, -74.0440},
	{"Rodriguez Estate", "258 Luxury Ln, Anytown, ST", "Carlos Rodriguez", serviceCustom, model.StatusPending, 40, 2500, 40.6920, -74.0460},
}

// Catalog returns the demonstration locations dated relative to now.
func Catalog(now time.Time) []model.MapLocation {
	now = now.UTC()
	locations := make([]model.MapLocation, len(catalog))

	for i, entry := range catalog {
		locations[i] = model.MapLocation{
			Name:         entry.name,
			Address:      entry.address,
			CustomerName: entry.customerName,
			ServiceType:  entry.serviceType,
			Status:       entry.status,
			Date:         now.AddDate(0, 0, entry.offsetDays),
			Value:        entry.value,
			Latitude:     entry.latitude,
			Longitude:    entry.longitude,
			Metadata: gModel.Metadata{
				CreatedDate:  now,
				ModifiedDate: now,
			},
		}
	}

	return locations
}
