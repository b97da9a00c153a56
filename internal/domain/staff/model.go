package staff

import (
	"time"

	"github.com/google/uuid"
)

// Staff maps to the staff table. A staff account logs in and is attributed
// to the visit records it writes. The password hash never serializes.
type Staff struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
