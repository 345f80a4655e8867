package suggestion

// Dish is a pool entry. IsWarm and IsCold are independent: a dish may suit
// both kinds of weather.
type Dish struct {
	Name        string
	Description string
	Price       float64
	Ingredients []string
	Allergens   []string
	IsWarm      bool
	IsCold      bool
}

type Pools struct {
	Starters []Dish
	Mains    []Dish
	Desserts []Dish
}

func (p Pools) byCourse(c Course) []Dish {
	switch c {
	case Starter:
		return p.Starters
	case Main:
		return p.Mains
	default:
		return p.Desserts
	}
}

var DefaultPools = Pools{
	Starters: []Dish{
		{
			Name:        "Velouté de potiron",
			Description: "Potiron rôti, crème légère et graines torréfiées",
			Price:       8,
			Ingredients: []string{"potiron", "oignon", "crème", "graines de courge"},
			Allergens:   []string{"lait"},
			IsWarm:      true,
		},
		{
			Name:        "Soupe à l'oignon gratinée",
			Description: "Bouillon de bœuf, oignons confits, croûton et comté",
			Price:       9,
			Ingredients: []string{"oignon", "bouillon de bœuf", "pain", "comté"},
			Allergens:   []string{"gluten", "lait"},
			IsWarm:      true,
		},
		{
			Name:        "Œuf parfait aux champignons",
			Description: "Œuf cuit à basse température, poêlée de champignons des bois",
			Price:       10,
			Ingredients: []string{"œuf", "champignons", "ail", "persil"},
			Allergens:   []string{"œuf"},
			IsWarm:      true,
		},
		{
			Name:        "Gaspacho andalou",
			Description: "Tomates, poivron et concombre mixés, huile d'olive",
			Price:       8,
			Ingredients: []string{"tomate", "poivron", "concombre", "huile d'olive"},
			IsCold:      true,
		},
		{
			Name:        "Salade de tomates anciennes",
			Description: "Tomates de saison, burrata et basilic",
			Price:       9,
			Ingredients: []string{"tomate", "burrata", "basilic", "huile d'olive"},
			Allergens:   []string{"lait"},
			IsCold:      true,
		},
		{
			Name:        "Carpaccio de bœuf",
			Description: "Bœuf finement tranché, roquette et copeaux de parmesan",
			Price:       11,
			Ingredients: []string{"bœuf", "roquette", "parmesan", "citron"},
			Allergens:   []string{"lait"},
			IsCold:      true,
		},
		{
			Name:        "Terrine de campagne",
			Description: "Terrine maison, cornichons et pain grillé",
			Price:       9,
			Ingredients: []string{"porc", "foie de volaille", "cornichons", "pain"},
			Allergens:   []string{"gluten"},
			IsWarm:      true,
			IsCold:      true,
		},
	},
	Mains: []Dish{
		{
			Name:        "Bœuf bourguignon",
			Description: "Bœuf mijoté au vin rouge, carottes et lardons",
			Price:       19,
			Ingredients: []string{"bœuf", "vin rouge", "carotte", "lardons", "oignon"},
			Allergens:   []string{"sulfites"},
			IsWarm:      true,
		},
		{
			Name:        "Blanquette de veau",
			Description: "Veau à la crème, champignons et riz pilaf",
			Price:       18,
			Ingredients: []string{"veau", "crème", "champignons", "riz"},
			Allergens:   []string{"lait"},
			IsWarm:      true,
		},
		{
			Name:        "Cassoulet",
			Description: "Haricots blancs, confit de canard et saucisse de Toulouse",
			Price:       20,
			Ingredients: []string{"haricots blancs", "canard", "saucisse", "tomate"},
			IsWarm:      true,
		},
		{
			Name:        "Risotto aux cèpes",
			Description: "Riz carnaroli, cèpes et parmesan",
			Price:       17,
			Ingredients: []string{"riz", "cèpes", "parmesan", "vin blanc"},
			Allergens:   []string{"lait", "sulfites"},
			IsWarm:      true,
		},
		{
			Name:        "Salade niçoise",
			Description: "Thon, œuf, olives, haricots verts et anchois",
			Price:       15,
			Ingredients: []string{"thon", "œuf", "olives", "haricots verts", "anchois"},
			Allergens:   []string{"poisson", "œuf"},
			IsCold:      true,
		},
		{
			Name:        "Tartare de saumon",
			Description: "Saumon frais, avocat, citron vert et herbes",
			Price:       17,
			Ingredients: []string{"saumon", "avocat", "citron vert", "coriandre"},
			Allergens:   []string{"poisson"},
			IsCold:      true,
		},
		{
			Name:        "Poulet rôti aux herbes",
			Description: "Volaille fermière, pommes grenaille et jus au thym",
			Price:       17,
			Ingredients: []string{"poulet", "pommes de terre", "thym", "ail"},
			IsWarm:      true,
			IsCold:      true,
		},
	},
	Desserts: []Dish{
		{
			Name:        "Tarte Tatin",
			Description: "Pommes caramélisées, crème fraîche",
			Price:       7,
			Ingredients: []string{"pomme", "beurre", "sucre", "pâte brisée"},
			Allergens:   []string{"gluten", "lait"},
			IsWarm:      true,
		},
		{
			Name:        "Fondant au chocolat",
			Description: "Cœur coulant, glace vanille",
			Price:       8,
			Ingredients: []string{"chocolat", "beurre", "œuf", "farine"},
			Allergens:   []string{"gluten", "lait", "œuf"},
			IsWarm:      true,
		},
		{
			Name:        "Sorbet citron basilic",
			Description: "Sorbet maison, zestes et basilic frais",
			Price:       6,
			Ingredients: []string{"citron", "basilic", "sucre"},
			IsCold:      true,
		},
		{
			Name:        "Panna cotta aux fruits rouges",
			Description: "Crème vanillée, coulis de fruits rouges",
			Price:       7,
			Ingredients: []string{"crème", "vanille", "fruits rouges"},
			Allergens:   []string{"lait"},
			IsCold:      true,
		},
		{
			Name:        "Crème brûlée",
			Description: "Crème vanillée, sucre caramélisé",
			Price:       7,
			Ingredients: []string{"crème", "œuf", "vanille", "sucre"},
			Allergens:   []string{"lait", "œuf"},
			IsWarm:      true,
			IsCold:      true,
		},
	},
}
