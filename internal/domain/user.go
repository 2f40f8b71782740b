package domain

// Role is the closed set of account roles known to the user service.
type Role string

const (
	RoleUser            Role = "USER"
	RoleRestaurantOwner Role = "RESTAURANT_OWNER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleRestaurantOwner:
		return true
	}
	return false
}

// UserProfile is the read model served by the user service. The wallet
// balance is owned and mutated remotely, never here.
type UserProfile struct {
	ID            int
	Name          string
	Role          Role
	WalletBalance float64
}

type Address struct {
	ID     int
	UserID int
	Street string
	City   string
}
