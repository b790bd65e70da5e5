package domain

// FilterOptions - значения для построения формы фильтров.
type FilterOptions struct {
	PropertyTypes []string
	MinPrice      int64
	MaxPrice      int64
	Bedrooms      []int
	Count         int
}
