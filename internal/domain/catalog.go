package domain

// CategoryID selects one of the Vitibrasil datasets (the opcao parameter).
type CategoryID string

func (c CategoryID) String() string {
	return string(c)
}

const (
	CategoryProduction        CategoryID = "opt_02" // Produção
	CategoryProcessing        CategoryID = "opt_03" // Processamento
	CategoryCommercialization CategoryID = "opt_04" // Comercialização
	CategoryImport            CategoryID = "opt_05" // Importação
	CategoryExport            CategoryID = "opt_06" // Exportação
)

// SubcategoryID refines a category into one of its sub-datasets (the
// subopcao parameter). Only meaningful for categories that define one.
type SubcategoryID string

func (s SubcategoryID) String() string {
	return string(s)
}

// Years covered by the upstream site.
const (
	MinYear = 1970
	MaxYear = 2024
)

// Subcategory pairs a subcategory identifier with its display label.
// Labels are informational only and never used for validation.
type Subcategory struct {
	ID    SubcategoryID `json:"id"`
	Label string        `json:"label"`
}

// Category describes one dataset: whether it accepts a subcategory and,
// if so, which ones, in display order.
type Category struct {
	ID                 CategoryID    `json:"id"`
	Name               string        `json:"name"`
	AcceptsSubcategory bool          `json:"accepts_subcategory"`
	Subcategories      []Subcategory `json:"subcategories,omitempty"`
}

// HasSubcategory reports whether id is one of the category's subcategories.
func (c Category) HasSubcategory(id SubcategoryID) bool {
	for _, sub := range c.Subcategories {
		if sub.ID == id {
			return true
		}
	}
	return false
}

// SubcategoryIDs returns the category's subcategory identifiers in display order.
func (c Category) SubcategoryIDs() []SubcategoryID {
	ids := make([]SubcategoryID, 0, len(c.Subcategories))
	for _, sub := range c.Subcategories {
		ids = append(ids, sub.ID)
	}
	return ids
}

// Catalog is the registry of valid category/subcategory combinations.
// It mirrors the option table published by the Vitibrasil site: fixed
// business data, built once at startup and never mutated, so it is safe
// to share across requests without locking.
type Catalog struct {
	order      []CategoryID
	categories map[CategoryID]Category
}

// NewCatalog builds the full registry.
func NewCatalog() *Catalog {
	categories := []Category{
		{ID: CategoryProduction, Name: "Produção"},
		{ID: CategoryProcessing, Name: "Processamento", AcceptsSubcategory: true, Subcategories: []Subcategory{
			{ID: "subopt_01", Label: "Processamento - Viníferas"},
			{ID: "subopt_02", Label: "Processamento - Americanas e Híbridas"},
			{ID: "subopt_03", Label: "Processamento - Uvas de Mesa"},
			{ID: "subopt_04", Label: "Processamento - Sem Classificação"},
		}},
		{ID: CategoryCommercialization, Name: "Comercialização"},
		{ID: CategoryImport, Name: "Importação", AcceptsSubcategory: true, Subcategories: []Subcategory{
			{ID: "subopt_01", Label: "Importação - Vinhos de Mesa"},
			{ID: "subopt_02", Label: "Importação - Espumantes"},
			{ID: "subopt_03", Label: "Importação - Uvas Frescas"},
			{ID: "subopt_04", Label: "Importação - Uvas Passas"},
			{ID: "subopt_05", Label: "Importação - Suco de Uva"},
		}},
		{ID: CategoryExport, Name: "Exportação", AcceptsSubcategory: true, Subcategories: []Subcategory{
			{ID: "subopt_01", Label: "Exportação - Vinhos de Mesa"},
			{ID: "subopt_02", Label: "Exportação - Espumantes"},
			{ID: "subopt_03", Label: "Exportação - Uvas Frescas"},
			{ID: "subopt_04", Label: "Exportação - Suco de Uva"},
		}},
	}

	c := &Catalog{
		order:      make([]CategoryID, 0, len(categories)),
		categories: make(map[CategoryID]Category, len(categories)),
	}
	for _, category := range categories {
		c.order = append(c.order, category.ID)
		c.categories[category.ID] = category
	}
	return c
}

// Categories returns all categories in display order.
func (c *Catalog) Categories() []Category {
	categories := make([]Category, 0, len(c.order))
	for _, id := range c.order {
		categories = append(categories, c.categories[id])
	}
	return categories
}

// CategoryIDs returns the valid category identifiers in display order.
func (c *Catalog) CategoryIDs() []CategoryID {
	ids := make([]CategoryID, len(c.order))
	copy(ids, c.order)
	return ids
}

// Get looks up a category. Callers must check ok before using the result.
func (c *Catalog) Get(id CategoryID) (Category, bool) {
	category, ok := c.categories[id]
	return category, ok
}

// IsValidSubcategory reports whether sub is a valid subcategory of cat.
// False when the category is unknown or accepts no subcategory.
func (c *Catalog) IsValidSubcategory(cat CategoryID, sub SubcategoryID) bool {
	category, ok := c.categories[cat]
	if !ok || !category.AcceptsSubcategory {
		return false
	}
	return category.HasSubcategory(sub)
}
