package domain

var (
	MessageSuccessGetSelectionOptions = "selection options retrieved successfully"
	MessageFailedGetSelectionOptions  = "failed to retrieve selection options"
)

type (
	// SelectionOptionsResponse carries the valid next-level choices for a
	// partially filled taxonomy selection. Levels hidden by the category's
	// feature flags come back empty.
	SelectionOptionsResponse struct {
		FoodTypes      []FoodTypeResponse      `json:"food_types"`
		Specifications []SpecificationResponse `json:"specifications"`
		CookTypes      []CookTypeResponse      `json:"cook_types"`
	}
)
