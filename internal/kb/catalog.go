package kb

import "sync"

var (
	defaultOnce sync.Once
	defaultBase *Base
)

// Default returns the built-in cuisine catalog.
func Default() *Base {
	defaultOnce.Do(func() {
		defaultBase = MustNew(defaultProfiles()...)
	})
	return defaultBase
}

func defaultProfiles() []CuisineProfile {
	return []CuisineProfile{
		{
			ID:             "italian",
			Proteins:       []string{"chicken", "beef", "fish", "pork", "tofu", "shrimp", "mussels"},
			Carbs:          []string{"pasta", "risotto", "polenta", "bread", "gnocchi", "focaccia"},
			Vegetables:     []string{"tomatoes", "zucchini", "eggplant", "spinach", "mushrooms", "artichokes", "arugula"},
			Spices:         []string{"basil", "oregano", "rosemary", "garlic", "parsley", "thyme", "sage"},
			CookingMethods: []string{"saute", "bake", "simmer", "grill", "braise", "roast"},
			Signature:      []string{"olive oil", "parmesan cheese", "balsamic vinegar", "mozzarella", "prosciutto"},
			Image:          "https://images.unsplash.com/photo-1536304929831-ee1ca9d44906?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
			FleshProteins:  []string{"shrimp", "mussels"},
		},
		{
			ID:             "indian",
			Proteins:       []string{"chicken", "lamb", "fish", "chickpeas", "lentils", "paneer", "tofu"},
			Carbs:          []string{"rice", "naan", "roti", "puri", "dosa", "paratha"},
			Vegetables:     []string{"potatoes", "cauliflower", "spinach", "eggplant", "okra", "peas", "beans"},
			Spices:         []string{"cumin", "turmeric", "coriander", "garam masala", "chili", "cardamom", "mustard seeds"},
			CookingMethods: []string{"curry", "tandoori", "fry", "steam", "bhuna", "dum"},
			Signature:      []string{"ghee", "yogurt", "tamarind", "coconut milk", "mango powder"},
			Image:          "https://images.unsplash.com/photo-1585937421612-70a008356fbe?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
		},
		{
			ID:             "mexican",
			Proteins:       []string{"chicken", "beef", "pork", "beans", "tofu", "shrimp", "chorizo"},
			Carbs:          []string{"tortillas", "rice", "corn", "tacos", "tostadas", "tamales"},
			Vegetables:     []string{"peppers", "onions", "tomatoes", "avocado", "zucchini", "squash", "jalapenos"},
			Spices:         []string{"cumin", "chili powder", "paprika", "oregano", "cilantro", "epazote", "achiote"},
			CookingMethods: []string{"grill", "fry", "stew", "bake", "sear", "barbacoa"},
			Signature:      []string{"lime", "sour cream", "cheese", "avocado", "salsa verde"},
			Image:          "https://images.unsplash.com/photo-1513456852971-30c0b8199d4d?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
			FleshProteins:  []string{"shrimp", "chorizo"},
		},
		{
			ID:             "japanese",
			Proteins:       []string{"salmon", "tuna", "chicken", "tofu", "pork", "beef", "shrimp"},
			Carbs:          []string{"rice", "noodles", "udon", "soba", "ramen"},
			Vegetables:     []string{"seaweed", "daikon", "mushrooms", "cabbage", "spinach", "bamboo shoots"},
			Spices:         []string{"soy sauce", "mirin", "sake", "ginger", "wasabi", "sesame"},
			CookingMethods: []string{"stir-fry", "simmer", "grill", "deep-fry", "steam"},
			Signature:      []string{"miso paste", "dashi", "pickled ginger", "nori", "bonito flakes"},
			Image:          "https://images.unsplash.com/photo-1553621042-f6e147245754?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
			FleshProteins:  []string{"salmon", "tuna", "shrimp"},
		},
	}
}
