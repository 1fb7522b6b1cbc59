package notify

import (
	"gorm.io/gorm"

	"github.com/veloura/salon-scheduler/internal/models"
)

// MaxPerUser caps stored notifications; older ones are pruned on every
// push.
const MaxPerUser = 100

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Push(userID uint, title, message string) error {
	n := models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
	}

	if err := s.db.Create(&n).Error; err != nil {
		return err
	}

	return s.db.Exec(`
        DELETE FROM notifications
        WHERE user_id = ?
          AND id NOT IN (
            SELECT id FROM notifications
            WHERE user_id = ?
            ORDER BY created_at DESC, id DESC
            LIMIT ?
          )
    `, userID, userID, MaxPerUser).Error
}

func (s *Store) ActiveAdminIDs() ([]uint, error) {
	var ids []uint
	err := s.db.
		Model(&models.User{}).
		Where("role = ? AND active = true", models.RoleAdmin).
		Pluck("id", &ids).Error
	return ids, err
}

func (s *Store) ListForUser(userID uint, page, pageSize int) ([]models.Notification, int64, error) {
	q := s.db.Model(&models.Notification{}).Where("user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.Notification
	if err := q.
		Order("created_at DESC, id DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *Store) MarkRead(userID, notificationID uint) (int64, error) {
	res := s.db.
		Model(&models.Notification{}).
		Where("id = ? AND user_id = ? AND read_at IS NULL", notificationID, userID).
		Update("read_at", gorm.Expr("CURRENT_TIMESTAMP"))
	return res.RowsAffected, res.Error
}
