package catalog

import "restaurant_storefront/internal/models"

// fixedItems is the menu the storefront ships with. Admins control only
// price and availability through the backend; names, descriptions and
// dietary flags live here.
var fixedItems = []models.CatalogItem{
	{
		FixedID:      "101",
		Name:         "Paneer Tikka",
		Description:  "Cottage cheese marinated in spices and grilled to perfection",
		Category:     "Starters & Tandoori Specialties",
		Spicy:        "Medium",
		IsVegetarian: true,
		Image:        "https://images.pexels.com/photos/3928854/pexels-photo-3928854.png?auto=compress&cs=tinysrgb&dpr=2&h=650&w=940",
	},
	{
		FixedID:     "102",
		Name:        "Tandoori Chicken",
		Description: "Classic tandoori chicken with authentic spices",
		Category:    "Starters & Tandoori Specialties",
		Spicy:       "High",
		Image:       "https://images.unsplash.com/photo-1705359573325-f2006d5e459f",
	},
	{
		FixedID:      "103",
		Name:         "Samosa Platter",
		Description:  "Crispy samosas served with mint and tamarind chutney",
		Category:     "Starters & Tandoori Specialties",
		Spicy:        "Low",
		IsVegetarian: true,
		Image:        "https://images.unsplash.com/photo-1601050690597-df0568f70950",
	},
	{
		FixedID:      "201",
		Name:         "Paneer Butter Masala",
		Description:  "Rich and creamy tomato-based curry with cottage cheese",
		Category:     "Main Course",
		Spicy:        "Medium",
		IsVegetarian: true,
		Image:        "https://images.unsplash.com/photo-1631452180519-c014fe946bc7",
	},
	{
		FixedID:     "202",
		Name:        "Chicken Biryani",
		Description: "Fragrant basmati rice layered with tender chicken and aromatic spices",
		Category:    "Main Course",
		Spicy:       "Medium",
		Image:       "https://images.unsplash.com/photo-1589302168068-964664d93dc0",
	},
	{
		FixedID:     "203",
		Name:        "Mutton Handi",
		Description: "Slow-cooked mutton in traditional handi with rich gravy",
		Category:    "Main Course",
		Spicy:       "High",
		Image:       "https://images.unsplash.com/photo-1567529854338-fc097b962123",
	},
	{
		FixedID:      "204",
		Name:         "Dal Tadka",
		Description:  "Yellow lentils tempered with cumin, garlic and aromatic spices",
		Category:     "Main Course",
		Spicy:        "Low",
		IsVegetarian: true,
		Image:        "https://images.pexels.com/photos/35267290/pexels-photo-35267290.jpeg",
	},
	{
		FixedID:      "205",
		Name:         "Mix Veg Curry",
		Description:  "Assorted vegetables in traditional Indian curry",
		Category:     "Main Course",
		Spicy:        "Medium",
		IsVegetarian: true,
		Image:        "https://images.unsplash.com/photo-1585937421612-70a008356fbe",
	},
	{
		FixedID:      "301",
		Name:         "Butter Naan",
		Description:  "Soft leavened bread brushed with butter",
		Category:     "Breads",
		Spicy:        "None",
		IsVegetarian: true,
		Image:        "https://images.unsplash.com/photo-1640625314547-aee9a7696589",
	},
	{
		FixedID:      "302",
		Name:         "Garlic Naan",
		Description:  "Naan topped with fresh garlic and coriander",
		Category:     "Breads",
		Spicy:        "None",
		IsVegetarian: true,
		Image:        "https://images.unsplash.com/photo-1640625314547-aee9a7696589",
	},
	{
		FixedID:      "303",
		Name:         "Tandoori Roti",
		Description:  "Whole wheat bread baked in clay oven",
		Category:     "Breads",
		Spicy:        "None",
		IsVegetarian: true,
		Image:        "https://images.unsplash.com/photo-1640625314547-aee9a7696589",
	},
	{
		FixedID:      "401",
		Name:         "Lassi",
		Description:  "Traditional yogurt-based drink (Sweet/Salted)",
		Category:     "Beverages",
		Spicy:        "None",
		IsVegetarian: true,
	},
	{
		FixedID:      "402",
		Name:         "Masala Chai",
		Description:  "Spiced Indian tea",
		Category:     "Beverages",
		Spicy:        "None",
		IsVegetarian: true,
	},
}

// FixedItems returns a copy of the shipped menu list.
func FixedItems() []models.CatalogItem {
	items := make([]models.CatalogItem, len(fixedItems))
	copy(items, fixedItems)
	return items
}
