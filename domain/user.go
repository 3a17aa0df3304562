package domain

// User is a registered account. Accounts are append-only: they are never
// mutated or deleted, so IDs assigned as len(users)+1 stay dense and unique.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"password"`
	AvatarURL    string `json:"avatar"`
	Channels     []int  `json:"channels"`
}
