package core

// Category is one of the fixed expense categories.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryEntertainment Category = "entertainment"
	CategoryShopping      Category = "shopping"
	CategoryBills         Category = "bills"
	CategoryHealthcare    Category = "healthcare"
	CategoryOther         Category = "other"
)

// CategoryInfo carries display metadata for a category.
type CategoryInfo struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var categoryInfo = map[Category]CategoryInfo{
	CategoryFood:          {Name: "Food & Dining", Icon: "🍔", Color: "#ef4444"},
	CategoryTransport:     {Name: "Transport", Icon: "🚗", Color: "#3b82f6"},
	CategoryEntertainment: {Name: "Entertainment", Icon: "🎬", Color: "#8b5cf6"},
	CategoryShopping:      {Name: "Shopping", Icon: "🛍️", Color: "#f59e0b"},
	CategoryBills:         {Name: "Bills & Utilities", Icon: "💡", Color: "#06b6d4"},
	CategoryHealthcare:    {Name: "Healthcare", Icon: "🏥", Color: "#10b981"},
	CategoryOther:         {Name: "Other", Icon: "📦", Color: "#6b7280"},
}

var categoryOrder = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryEntertainment,
	CategoryShopping,
	CategoryBills,
	CategoryHealthcare,
	CategoryOther,
}

// Categories returns all categories in their canonical display order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Valid reports whether c is a member of the fixed category set.
func (c Category) Valid() bool {
	_, ok := categoryInfo[c]
	return ok
}

// Info returns display metadata for the category. Unknown categories map to
// the "other" metadata so rendering never breaks on stale data.
func (c Category) Info() CategoryInfo {
	if info, ok := categoryInfo[c]; ok {
		return info
	}
	return categoryInfo[CategoryOther]
}
