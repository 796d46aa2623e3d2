package repository

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/artbay/goapi/domain/listing"
)

type fixture struct {
	title       string
	artist      string
	agoSec      int
	description string
	category    string
	images      []string
	base        string
	increment   string
	current     string
	popularity  int
	rentalUnit  listing.RentalUnit
}

var goodsFixtures = []fixture{
	{"Sunset Dream", "Alice Lee", 3600, "A beautiful landscape painting with vibrant colors and deep emotion.", "Painting", []string{"photo", "photo.fill"}, "100", "10", "120", 87, ""},
	{"Second Life", "Bob", 7200, "Modern sculpture made from recycled materials. Unique and eco-friendly.", "Sculpture", []string{"cube", "cube.fill"}, "200", "20", "220", 64, ""},
	{"Edition of Ten", "Carol", 1800, "Limited edition digital artwork. Only 10 copies available!", "Digital", []string{"desktopcomputer", "desktopcomputer"}, "50", "5", "60", 91, ""},
	{"Bold Strokes", "David", 4000, "Abstract painting with bold strokes and vibrant colors.", "Painting", []string{"paintpalette", "scribble"}, "150", "15", "180", 45, ""},
	{"City in Monochrome", "Eve", 6000, "Black and white photography of city life.", "Photography", []string{"camera", "camera.fill"}, "80", "8", "96", 58, ""},
	{"Fern Lines", "Frank", 8000, "Digital illustration inspired by nature.", "Digital", []string{"leaf", "desktopcomputer"}, "60", "6", "72", 33, ""},
	{"Scrap Metal Figure", "Grace", 10000, "Sculpture made from recycled metal parts.", "Sculpture", []string{"cube", "hammer"}, "220", "22", "264", 27, ""},
	{"Street Mural", "Heidi", 12000, "Colorful mural painting for public spaces.", "Painting", []string{"paintbrush", "paintpalette"}, "300", "30", "360", 72, ""},
	{"Squares and Lines", "Ivan", 14000, "Minimalist digital art with geometric shapes.", "Digital", []string{"square", "desktopcomputer"}, "70", "7", "84", 39, ""},
	{"Portrait in Oil", "Judy", 16000, "Portrait painting in oil on canvas.", "Painting", []string{"person", "paintpalette"}, "180", "18", "216", 66, ""},
	{"Urban Moments", "Karl", 18000, "Street photography capturing urban moments.", "Photography", []string{"camera", "photo"}, "90", "9", "108", 52, ""},
	{"Paper and Paint", "Laura", 20000, "Mixed media artwork with paper and paint.", "Other", []string{"doc", "paintbrush"}, "110", "11", "132", 21, ""},
	{"Bronze Gallop", "Mallory", 22000, "Sculpture of a running horse in bronze.", "Sculpture", []string{"cube", "hare"}, "400", "40", "480", 80, ""},
	{"Dream Collage", "Niaj", 24000, "Digital collage with surreal elements.", "Digital", []string{"desktopcomputer", "sparkles"}, "95", "9.5", "114.5", 47, ""},
	{"Mountain Watercolor", "Olivia", 26000, "Watercolor painting of a mountain landscape.", "Painting", []string{"mountain", "paintpalette"}, "130", "13", "156", 74, ""},
	{"Wild Habitat", "Peggy", 28000, "Photography of wild animals in their habitat.", "Photography", []string{"camera", "pawprint"}, "120", "12", "144", 69, ""},
	{"Color Field", "Quentin", 30000, "Large abstract canvas with mixed colors.", "Painting", []string{"paintpalette", "scribble.variable"}, "210", "21", "252", 30, ""},
	{"Neon Portrait", "Rupert", 32000, "Digital portrait with vibrant lighting effects.", "Digital", []string{"person", "desktopcomputer"}, "75", "7.5", "90", 55, ""},
	{"Bird in Flight", "Sybil", 34000, "Sculpture of a bird in flight.", "Sculpture", []string{"cube", "bird"}, "250", "25", "300", 61, ""},
	{"Future Skyline", "Trent", 36000, "Digital painting of a futuristic cityscape.", "Digital", []string{"building.2", "desktopcomputer"}, "160", "16", "192", 43, ""},
}

var spacesFixtures = []fixture{
	{"Gallery One", "Gallery One", 3600, "Modern gallery in downtown, 100 sqm, lighting included.", "Gallery", []string{"building.columns", "photo"}, "500", "50", "600", 78, listing.RentalUnitWeek},
	{"Cafe Latte Art Wall", "Cafe Latte Art Wall", 7200, "Feature wall in a busy cafe, perfect for small exhibitions.", "Cafe Wall", []string{"cup.and.saucer", "photo"}, "100", "10", "120", 85, listing.RentalUnitMonth},
	{"Pop-up Space Central", "Pop-up Space Central", 1800, "Temporary pop-up space, high foot traffic, flexible terms.", "Pop-up", []string{"shippingbox", "photo"}, "300", "20", "340", 62, listing.RentalUnitDay},
	{"Riverside Park", "Riverside Park", 5400, "Outdoor park area for open-air exhibitions.", "Outdoor", []string{"leaf", "photo"}, "80", "8", "96", 70, listing.RentalUnitDay},
	{"Art Hub Gallery", "Art Hub Gallery", 36000, "Spacious gallery with professional lighting and security.", "Gallery", []string{"building.columns", "photo"}, "700", "70", "840", 90, listing.RentalUnitWeek},
	{"Urban Loft Space", "Urban Loft Space", 9000, "Trendy loft, ideal for pop-up exhibitions and events.", "Pop-up", []string{"house", "photo"}, "400", "40", "480", 57, listing.RentalUnitDay},
	{"Community Center Hall", "Community Center Hall", 12000, "Large hall, affordable rates for local artists.", "Other", []string{"person.3", "photo"}, "150", "15", "180", 41, listing.RentalUnitDay},
	{"Seaside Cafe Wall", "Seaside Cafe Wall", 15000, "Wall space in a seaside cafe, great for photography.", "Cafe Wall", []string{"cup.and.saucer", "photo"}, "90", "9", "108", 66, listing.RentalUnitMonth},
	{"Artisan Market Booth", "Artisan Market Booth", 18000, "Booth at weekend artisan market, high visibility.", "Pop-up", []string{"cart", "photo"}, "60", "6", "72", 49, listing.RentalUnitDay},
	{"Boutique Hotel Lobby", "Boutique Hotel Lobby", 21000, "Lobby wall in boutique hotel, upscale clientele.", "Other", []string{"bed.double", "photo"}, "200", "20", "240", 53, listing.RentalUnitMonth},
	{"City Library Atrium", "City Library Atrium", 24000, "Atrium space in city library, lots of natural light.", "Other", []string{"books.vertical", "photo"}, "120", "12", "144", 60, listing.RentalUnitWeek},
	{"Rooftop Garden Venue", "Rooftop Garden Venue", 27000, "Rooftop garden, perfect for summer exhibitions.", "Outdoor", []string{"leaf", "photo"}, "250", "25", "300", 74, listing.RentalUnitDay},
	{"Warehouse Studio", "Warehouse Studio", 30000, "Industrial studio, customizable layout.", "Other", []string{"shippingbox", "photo"}, "350", "35", "420", 38, listing.RentalUnitWeek},
	{"Bookstore Nook", "Bookstore Nook", 33000, "Cozy nook in independent bookstore.", "Other", []string{"books.vertical", "photo"}, "70", "7", "84", 35, listing.RentalUnitMonth},
	{"Hotel Conference Room", "Hotel Conference Room", 36000, "Conference room, suitable for group exhibitions.", "Other", []string{"bed.double", "photo"}, "300", "30", "360", 29, listing.RentalUnitHour},
	{"Outdoor Plaza", "Outdoor Plaza", 39000, "Open plaza, high pedestrian traffic.", "Outdoor", []string{"leaf", "photo"}, "180", "18", "216", 58, listing.RentalUnitDay},
	{"Gallery Two", "Gallery Two", 42000, "Contemporary gallery, central location.", "Gallery", []string{"building.columns", "photo"}, "600", "60", "720", 82, listing.RentalUnitWeek},
	{"Pop-up at Mall", "Pop-up at Mall", 45000, "Pop-up booth in shopping mall, great exposure.", "Pop-up", []string{"shippingbox", "photo"}, "220", "22", "264", 63, listing.RentalUnitDay},
	{"Art School Studio", "Art School Studio", 48000, "Studio space in art school, creative environment.", "Other", []string{"paintbrush", "photo"}, "130", "13", "156", 44, listing.RentalUnitHour},
	{"Cultural Center Gallery", "Cultural Center Gallery", 51000, "Gallery in cultural center, supportive staff.", "Gallery", []string{"building.columns", "photo"}, "400", "40", "480", 71, listing.RentalUnitWeek},
}

// fixtureId is stable across restarts so fixture urls keep working
func fixtureId(m listing.MarketType, idx int) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(fmt.Sprintf("artbay:%s:%d", m, idx))).String()
}

// FixtureListings builds the sample catalog with timestamps relative to now
func FixtureListings(now time.Time) ([]*listing.Listing, error) {
	res := make([]*listing.Listing, 0, len(goodsFixtures)+len(spacesFixtures))
	for _, set := range []struct {
		market   listing.MarketType
		fixtures []fixture
	}{
		{listing.MarketTypeGoods, goodsFixtures},
		{listing.MarketTypeSpaces, spacesFixtures},
	} {
		for i, f := range set.fixtures {
			l, err := listing.New(listing.Listing{
				Id:             fixtureId(set.market, i),
				MarketType:     set.market,
				Title:          f.title,
				Description:    f.description,
				Category:       f.category,
				BasePrice:      decimal.RequireFromString(f.base),
				PriceIncrement: decimal.RequireFromString(f.increment),
				CurrentPrice:   decimal.RequireFromString(f.current),
				Artist:         f.artist,
				Popularity:     f.popularity,
				IsAuction:      set.market == listing.MarketTypeGoods,
				Timestamp:      now.Add(-time.Duration(f.agoSec) * time.Second),
				RentalUnit:     f.rentalUnit,
				Images:         f.images,
			})
			if err != nil {
				return nil, xerrors.Errorf("fixture %s %d: %w", set.market, i, err)
			}
			res = append(res, l)
		}
	}
	return res, nil
}
