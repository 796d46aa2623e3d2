package listing

// CategoryAll disables the category filter
const CategoryAll = "All"

type Category struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

var (
	goodsCategories = []Category{
		{Name: "Painting", Icon: "paintpalette"},
		{Name: "Sculpture", Icon: "cube"},
		{Name: "Photography", Icon: "camera"},
		{Name: "Digital", Icon: "desktopcomputer"},
		{Name: "Other", Icon: "ellipsis"},
	}
	spacesCategories = []Category{
		{Name: "Gallery", Icon: "building.columns"},
		{Name: "Cafe Wall", Icon: "cup.and.saucer"},
		{Name: "Pop-up", Icon: "shippingbox"},
		{Name: "Outdoor", Icon: "leaf"},
		{Name: "Other", Icon: "ellipsis"},
	}
)

// Categories returns a copy of the closed category set of a market type
func Categories(m MarketType) []Category {
	var src []Category
	switch m {
	case MarketTypeGoods:
		src = goodsCategories
	case MarketTypeSpaces:
		src = spacesCategories
	default:
		return []Category{}
	}
	res := make([]Category, len(src))
	copy(res, src)
	return res
}

// IsValidCategory reports whether name belongs to the market's set.
// CategoryAll is a filter value, not a category.
func IsValidCategory(m MarketType, name string) bool {
	for _, c := range Categories(m) {
		if c.Name == name {
			return true
		}
	}
	return false
}
