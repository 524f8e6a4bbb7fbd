package entities

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Identity уже разрешена провайдером аутентификации, сервис токены не разбирает
type Identity struct {
	ID   string
	Role Role
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// CanAccess: владелец или админ, гостевые заказы видит только админ
func (i Identity) CanAccess(o Order) bool {
	if i.IsAdmin() {
		return true
	}
	return o.UserID != "" && o.UserID == i.ID
}
