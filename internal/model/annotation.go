package model

import "time"

// Favorite marks one supplier as favorited by one user. The composite unique
// index is what makes adding the same favorite twice a no-op.
type Favorite struct {
	ID         uint      `json:"-" gorm:"primaryKey"`
	UserID     string    `json:"user_id" gorm:"type:varchar(100);uniqueIndex:idx_fav_user_supplier;not null"`
	SupplierID int       `json:"supplier_id" gorm:"uniqueIndex:idx_fav_user_supplier;not null"`
	CreatedAt  time.Time `json:"-"`
}

// Note is a free-text note a user attached to a supplier. At most one note
// per (user, supplier) pair; saving again overwrites the text.
type Note struct {
	ID         uint      `json:"-" gorm:"primaryKey"`
	UserID     string    `json:"user_id" gorm:"type:varchar(100);uniqueIndex:idx_note_user_supplier;not null"`
	SupplierID int       `json:"supplier_id" gorm:"uniqueIndex:idx_note_user_supplier;not null"`
	Text       string    `json:"text" gorm:"type:text"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

// InboxMessage is one message in a user's inbox. Seq is a per-user sequence
// starting at 1 in append order.
type InboxMessage struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	UserID    string    `json:"-" gorm:"type:varchar(100);index;not null"`
	Seq       int       `json:"id" gorm:"not null"`
	Message   string    `json:"message" gorm:"type:text"`
	Read      bool      `json:"read" gorm:"default:false"`
	CreatedAt time.Time `json:"timestamp"`
}

// UserAnnotations is the full per-user annotation record returned by the
// profile endpoint. Favorites keeps insertion order; Notes is keyed by
// supplier id.
type UserAnnotations struct {
	Favorites   []int             `json:"favorites"`
	Notes       map[int]string    `json:"notes"`
	Inbox       []InboxMessage    `json:"inbox"`
	Preferences map[string]string `json:"preferences"`
}
