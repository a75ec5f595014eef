package database

import (
	"log"

	"github.com/pacoyass/cantina/internal/models"
)

type seedItem struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Vegetarian  bool
	Vegan       bool
	Special     bool
}

var seedCategories = []models.Category{
	{Name: "Appetizers", Description: "Start your Mexican feast with these delicious starters", DisplayOrder: 1},
	{Name: "Tacos", Description: "Authentic street-style tacos on corn tortillas", DisplayOrder: 2},
	{Name: "Fajitas", Description: "Sizzling hot plates served with tortillas and fixings", DisplayOrder: 3},
	{Name: "Burritos", Description: "Large flour tortillas stuffed with your favorites", DisplayOrder: 4},
	{Name: "Flautas", Description: "Crispy rolled tortillas filled with savory ingredients", DisplayOrder: 5},
	{Name: "Chili con Carne", Description: "Hearty stews and chili dishes", DisplayOrder: 6},
	{Name: "Weekend Specials", Description: "Available Friday through Sunday", DisplayOrder: 7},
	{Name: "Desserts", Description: "Sweet endings to your Mexican meal", DisplayOrder: 8},
	{Name: "Beverages", Description: "Refreshing drinks to complement your meal", DisplayOrder: 9},
}

var seedItems = []seedItem{
	{Name: "Loaded Nachos", Description: "Crispy tortilla chips topped with melted cheese, jalapeños, sour cream, guacamole, and your choice of meat", Price: 85, Category: "Appetizers", Vegetarian: true},
	{Name: "Guacamole & Chips", Description: "Fresh avocado dip made daily with tomatoes, onions, cilantro, and lime, served with warm tortilla chips", Price: 55, Category: "Appetizers", Vegetarian: true, Vegan: true},
	{Name: "Jalapeño Poppers", Description: "Fresh jalapeños stuffed with cream cheese, breaded and fried to golden perfection", Price: 65, Category: "Appetizers", Vegetarian: true},
	{Name: "Quesadilla Suprema", Description: "Large flour tortilla filled with cheese, peppers, onions, and your choice of chicken or beef", Price: 75, Category: "Appetizers"},

	{Name: "Carnitas Tacos", Description: "Slow-cooked pork shoulder with onions, cilantro, and salsa verde on soft corn tortillas (3 pieces)", Price: 45, Category: "Tacos"},
	{Name: "Chicken Tinga Tacos", Description: "Shredded chicken in chipotle sauce with lettuce, tomato, and Mexican crema (3 pieces)", Price: 42, Category: "Tacos"},
	{Name: "Carne Asada Tacos", Description: "Grilled beef with onions, cilantro, and lime on corn tortillas (3 pieces)", Price: 48, Category: "Tacos"},
	{Name: "Fish Tacos", Description: "Battered and fried fish with cabbage slaw and chipotle mayo (3 pieces)", Price: 52, Category: "Tacos"},
	{Name: "Vegetarian Black Bean Tacos", Description: "Seasoned black beans with avocado, lettuce, tomato, and vegan cheese (3 pieces)", Price: 38, Category: "Tacos", Vegetarian: true, Vegan: true},

	{Name: "Chicken Fajitas", Description: "Grilled chicken breast with bell peppers and onions, served with warm tortillas, guacamole, sour cream, and salsa", Price: 120, Category: "Fajitas"},
	{Name: "Beef Fajitas", Description: "Tender beef strips with bell peppers and onions, served with warm tortillas and all the fixings", Price: 135, Category: "Fajitas"},
	{Name: "Shrimp Fajitas", Description: "Grilled shrimp with peppers and onions, served with tortillas and accompaniments", Price: 145, Category: "Fajitas"},
	{Name: "Mixed Fajitas", Description: "Combination of chicken, beef, and shrimp with peppers and onions", Price: 165, Category: "Fajitas"},
	{Name: "Vegetable Fajitas", Description: "Grilled bell peppers, onions, zucchini, and mushrooms served with vegan-friendly accompaniments", Price: 95, Category: "Fajitas", Vegetarian: true, Vegan: true},

	{Name: "California Burrito", Description: "Carne asada, french fries, cheese, guacamole, and sour cream wrapped in a large flour tortilla", Price: 95, Category: "Burritos"},
	{Name: "Chicken Burrito", Description: "Grilled chicken, rice, beans, cheese, lettuce, and salsa in a flour tortilla", Price: 85, Category: "Burritos"},
	{Name: "Bean & Rice Burrito", Description: "Refried beans, Spanish rice, cheese, lettuce, and salsa in a warm flour tortilla", Price: 65, Category: "Burritos", Vegetarian: true},
	{Name: "Veggie Burrito", Description: "Black beans, rice, grilled vegetables, avocado, and vegan cheese", Price: 72, Category: "Burritos", Vegetarian: true, Vegan: true},

	{Name: "Chicken Flautas", Description: "Crispy rolled tortillas filled with seasoned chicken, served with guacamole and sour cream (4 pieces)", Price: 68, Category: "Flautas"},
	{Name: "Beef Flautas", Description: "Crispy rolled tortillas filled with seasoned beef, served with salsa and Mexican crema (4 pieces)", Price: 72, Category: "Flautas"},

	{Name: "Traditional Chili con Carne", Description: "Hearty beef chili with beans, served with cornbread and cheese", Price: 78, Category: "Chili con Carne"},
	{Name: "Vegetarian Chili", Description: "Three-bean chili with vegetables and spices, served with cornbread", Price: 65, Category: "Chili con Carne", Vegetarian: true, Vegan: true},

	{Name: "Pollo a la Brasa", Description: "Peruvian-style rotisserie chicken marinated in special spices, served with fried yuca and aji verde sauce", Price: 150, Category: "Weekend Specials", Special: true},

	{Name: "Churros", Description: "Crispy fried dough sticks rolled in cinnamon sugar, served with chocolate dipping sauce (6 pieces)", Price: 35, Category: "Desserts", Vegetarian: true},
	{Name: "Flan", Description: "Traditional Mexican caramel custard dessert", Price: 40, Category: "Desserts", Vegetarian: true},
	{Name: "Tres Leches Cake", Description: "Sponge cake soaked in three kinds of milk with cinnamon", Price: 45, Category: "Desserts", Vegetarian: true},

	{Name: "Fresh Lime Agua Fresca", Description: "Refreshing lime-flavored water with mint", Price: 25, Category: "Beverages", Vegetarian: true, Vegan: true},
	{Name: "Horchata", Description: "Traditional rice and cinnamon drink", Price: 28, Category: "Beverages", Vegetarian: true},
	{Name: "Mexican Coca-Cola", Description: "Authentic Mexican Coke made with cane sugar", Price: 20, Category: "Beverages", Vegetarian: true, Vegan: true},
	{Name: "Jarritos (Various Flavors)", Description: "Traditional Mexican sodas - Lime, Orange, Pineapple, or Tamarind", Price: 22, Category: "Beverages", Vegetarian: true, Vegan: true},
}

// SeedMenu populates the catalog on first boot. Reruns are no-ops once any
// menu item exists.
func SeedMenu() {
	var count int64
	if err := DB.Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		log.Printf("Failed to check menu items: %v", err)
		return
	}
	if count > 0 {
		return
	}

	categoryIDs := make(map[string]uint, len(seedCategories))
	for _, c := range seedCategories {
		category := c
		if err := DB.FirstOrCreate(&category, models.Category{Name: c.Name}).Error; err != nil {
			log.Printf("Failed to seed category %s: %v", c.Name, err)
			continue
		}
		categoryIDs[category.Name] = category.ID
	}

	for _, s := range seedItems {
		categoryID, ok := categoryIDs[s.Category]
		if !ok {
			log.Printf("Skipping %s: category %s not seeded", s.Name, s.Category)
			continue
		}
		item := models.MenuItem{
			Name:         s.Name,
			Description:  s.Description,
			Price:        s.Price,
			CategoryID:   categoryID,
			IsAvailable:  true,
			IsVegetarian: s.Vegetarian,
			IsVegan:      s.Vegan,
			IsSpecial:    s.Special,
		}
		if err := DB.Create(&item).Error; err != nil {
			log.Printf("Failed to seed menu item %s: %v", s.Name, err)
		}
	}

	log.Println("Menu catalog seeded successfully.")
}
