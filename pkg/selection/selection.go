// Package selection holds the dependent-dropdown decision logic shared by the
// ingredient and menu item forms. It is pure: a Catalog snapshot plus a
// Selection value in, valid options or a new Selection out.
package selection

type (
	Category struct {
		ID                string
		Name              string
		ShowSpecification bool
		ShowCookType      bool
	}

	FoodType struct {
		ID         string
		CategoryID string
		Name       string
	}

	Specification struct {
		ID         string
		FoodTypeID string
		Name       string
	}

	CookType struct {
		ID         string
		CategoryID string
		Name       string
	}

	Catalog struct {
		Categories     []Category
		FoodTypes      []FoodType
		Specifications []Specification
		CookTypes      []CookType
	}

	Selection struct {
		CategoryID      string
		FoodTypeID      string
		SpecificationID string
		CookTypeID      string
	}
)

// WithCategory returns the selection with the category set and every
// downstream field cleared in the same value, so a stale food type can never
// be observed next to a new category.
func (s Selection) WithCategory(categoryID string) Selection {
	if categoryID == s.CategoryID {
		return s
	}
	return Selection{CategoryID: categoryID}
}

// WithFoodType clears the specification only; the cook type hangs off the
// category and stays valid.
func (s Selection) WithFoodType(foodTypeID string) Selection {
	if foodTypeID == s.FoodTypeID {
		return s
	}
	s.FoodTypeID = foodTypeID
	s.SpecificationID = ""
	return s
}

func (s Selection) WithSpecification(specificationID string) Selection {
	s.SpecificationID = specificationID
	return s
}

func (s Selection) WithCookType(cookTypeID string) Selection {
	s.CookTypeID = cookTypeID
	return s
}

func (c Catalog) category(id string) *Category {
	for i := range c.Categories {
		if c.Categories[i].ID == id {
			return &c.Categories[i]
		}
	}
	return nil
}

func (c Catalog) foodType(id string) *FoodType {
	for i := range c.FoodTypes {
		if c.FoodTypes[i].ID == id {
			return &c.FoodTypes[i]
		}
	}
	return nil
}

// FoodTypeOptions lists the food types of the selected category. Empty when no
// category is selected.
func (c Catalog) FoodTypeOptions(s Selection) []FoodType {
	if s.CategoryID == "" {
		return nil
	}
	var out []FoodType
	for _, ft := range c.FoodTypes {
		if ft.CategoryID == s.CategoryID {
			out = append(out, ft)
		}
	}
	return out
}

// SpecificationOptions lists the specifications of the selected food type.
// Empty when no food type is selected or when the owning category does not
// offer specifications.
func (c Catalog) SpecificationOptions(s Selection) []Specification {
	if s.FoodTypeID == "" {
		return nil
	}
	categoryID := s.CategoryID
	if ft := c.foodType(s.FoodTypeID); ft != nil {
		categoryID = ft.CategoryID
	}
	cat := c.category(categoryID)
	if cat == nil || !cat.ShowSpecification {
		return nil
	}
	var out []Specification
	for _, sp := range c.Specifications {
		if sp.FoodTypeID == s.FoodTypeID {
			out = append(out, sp)
		}
	}
	return out
}

// CookTypeOptions lists the cook types of the selected category. Empty when no
// category is selected or when the category does not offer cook types.
func (c Catalog) CookTypeOptions(s Selection) []CookType {
	if s.CategoryID == "" {
		return nil
	}
	cat := c.category(s.CategoryID)
	if cat == nil || !cat.ShowCookType {
		return nil
	}
	var out []CookType
	for _, ct := range c.CookTypes {
		if ct.CategoryID == s.CategoryID {
			out = append(out, ct)
		}
	}
	return out
}
