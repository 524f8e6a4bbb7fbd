package entities

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// OrderFilter: пустые поля не фильтруют
type OrderFilter struct {
	UserID string
	Status Status
	Page   int
	Limit  int
}

func (f OrderFilter) Normalize() OrderFilter {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
	return f
}

func (f OrderFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
