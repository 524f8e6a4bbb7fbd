package entities

type Product struct {
	ID       string
	Name     string
	Price    float64
	Quantity int
}
