package llm

// menuResponse is the JSON document the model is asked to produce.
type menuResponse struct {
	Starters []menuItem `json:"starters"`
	Mains    []menuItem `json:"mains"`
	Desserts []menuItem `json:"desserts"`
	Price    *float64   `json:"price"`
}

type menuItem struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Ingredients []string `json:"ingredients"`
	Allergens   []string `json:"allergens"`
}
