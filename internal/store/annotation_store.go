package store

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"supplier-portal/internal/model"
)

// AnnotationStore holds per-user favorites, notes and inbox messages. It is
// backed by the process-scoped annotation database: user records come into
// existence with their first row and disappear with the process.
type AnnotationStore struct {
	db *gorm.DB
}

// NewAnnotationStore creates an annotation store on the given database
func NewAnnotationStore(db *gorm.DB) *AnnotationStore {
	return &AnnotationStore{db: db}
}

// Models returns the models the store needs migrated
func Models() []interface{} {
	return []interface{}{&model.Favorite{}, &model.Note{}, &model.InboxMessage{}}
}

// AddFavorite marks a supplier as favorited. Adding an id that is already
// favorited is a no-op.
func (s *AnnotationStore) AddFavorite(userID string, supplierID int) error {
	result := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&model.Favorite{
		UserID:     userID,
		SupplierID: supplierID,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to add favorite: %w", result.Error)
	}
	return nil
}

// RemoveFavorite unmarks a supplier. Removing an id that was never favorited
// is a no-op.
func (s *AnnotationStore) RemoveFavorite(userID string, supplierID int) error {
	result := s.db.Where("user_id = ? AND supplier_id = ?", userID, supplierID).
		Delete(&model.Favorite{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove favorite: %w", result.Error)
	}
	return nil
}

// Favorites returns the user's favorited supplier ids in insertion order
func (s *AnnotationStore) Favorites(userID string) ([]int, error) {
	var ids []int
	result := s.db.Model(&model.Favorite{}).
		Where("user_id = ?", userID).
		Order("id").
		Pluck("supplier_id", &ids)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", result.Error)
	}
	if ids == nil {
		ids = []int{}
	}
	return ids, nil
}

// SaveNote stores a note for a (user, supplier) pair, replacing any prior one
func (s *AnnotationStore) SaveNote(userID string, supplierID int, text string) error {
	result := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "supplier_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"text", "updated_at"}),
	}).Create(&model.Note{
		UserID:     userID,
		SupplierID: supplierID,
		Text:       text,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to save note: %w", result.Error)
	}
	return nil
}

// Notes returns the user's notes keyed by supplier id
func (s *AnnotationStore) Notes(userID string) (map[int]string, error) {
	var notes []model.Note
	result := s.db.Where("user_id = ?", userID).Find(&notes)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list notes: %w", result.Error)
	}
	byID := make(map[int]string, len(notes))
	for _, n := range notes {
		byID[n.SupplierID] = n.Text
	}
	return byID, nil
}

// AppendInboxMessage appends an unread message with the next per-user
// sequence id. The count and insert run in one transaction so concurrent
// appends cannot claim the same sequence number.
func (s *AnnotationStore) AppendInboxMessage(userID, message string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.InboxMessage{}).
			Where("user_id = ?", userID).
			Count(&count).Error; err != nil {
			return err
		}
		return tx.Create(&model.InboxMessage{
			UserID:  userID,
			Seq:     int(count) + 1,
			Message: message,
			Read:    false,
		}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to append inbox message: %w", err)
	}
	return nil
}

// Inbox returns the user's messages in sequence order
func (s *AnnotationStore) Inbox(userID string) ([]model.InboxMessage, error) {
	var messages []model.InboxMessage
	result := s.db.Where("user_id = ?", userID).Order("seq").Find(&messages)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list inbox: %w", result.Error)
	}
	if messages == nil {
		messages = []model.InboxMessage{}
	}
	return messages, nil
}

// Profile returns the user's full annotation record. Unknown users get a
// default-empty record; this never fails for lack of data.
func (s *AnnotationStore) Profile(userID string) (*model.UserAnnotations, error) {
	favorites, err := s.Favorites(userID)
	if err != nil {
		return nil, err
	}
	notes, err := s.Notes(userID)
	if err != nil {
		return nil, err
	}
	inbox, err := s.Inbox(userID)
	if err != nil {
		return nil, err
	}
	return &model.UserAnnotations{
		Favorites:   favorites,
		Notes:       notes,
		Inbox:       inbox,
		Preferences: map[string]string{"theme": "light"},
	}, nil
}
