package domain

// User is an account record. Token holds the base64-encoded client-side
// credential hash, never a plaintext password.
type User struct {
	UID   uint    `gorm:"primaryKey;autoIncrement" json:"uid"`
	Name  string  `gorm:"size:128;uniqueIndex;not null" json:"name"`
	Email *string `gorm:"size:256;uniqueIndex" json:"email"`
	Token string  `gorm:"size:1024;not null" json:"-"`
}
