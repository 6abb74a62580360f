package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tajrubatahsin16/LanguageShala-server/models"
)

// GormStore implements every store interface on top of one shared
// connection. It is created once at startup and shared by all handlers.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

func (s *GormStore) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("id asc").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *GormStore) ListUsersByRole(ctx context.Context, role string) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Where("role = ?", role).Order("id asc").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users by role: %w", err)
	}
	return users, nil
}

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *GormStore) SetUserRole(ctx context.Context, id uint, role string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if err := s.db.WithContext(ctx).Model(&user).Update("role", role).Error; err != nil {
		return nil, fmt.Errorf("set user role: %w", err)
	}
	return &user, nil
}

func (s *GormStore) ListClasses(ctx context.Context) ([]models.Class, error) {
	var classes []models.Class
	if err := s.db.WithContext(ctx).Order("id asc").Find(&classes).Error; err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	return classes, nil
}

func (s *GormStore) ListClassesByStatus(ctx context.Context, status string) ([]models.Class, error) {
	var classes []models.Class
	if err := s.db.WithContext(ctx).Where("status = ?", status).Order("id asc").Find(&classes).Error; err != nil {
		return nil, fmt.Errorf("list classes by status: %w", err)
	}
	return classes, nil
}

func (s *GormStore) ListClassesByEmail(ctx context.Context, email string) ([]models.Class, error) {
	var classes []models.Class
	if err := s.db.WithContext(ctx).Where("email = ?", email).Order("id asc").Find(&classes).Error; err != nil {
		return nil, fmt.Errorf("list classes by email: %w", err)
	}
	return classes, nil
}

func (s *GormStore) FindClassByID(ctx context.Context, id uint) (*models.Class, error) {
	var class models.Class
	if err := s.db.WithContext(ctx).First(&class, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find class: %w", err)
	}
	return &class, nil
}

func (s *GormStore) CreateClass(ctx context.Context, class *models.Class) error {
	if err := s.db.WithContext(ctx).Create(class).Error; err != nil {
		return fmt.Errorf("create class: %w", err)
	}
	return nil
}

func (s *GormStore) UpdateClass(ctx context.Context, class *models.Class) error {
	if err := s.db.WithContext(ctx).Save(class).Error; err != nil {
		return fmt.Errorf("update class: %w", err)
	}
	return nil
}

func (s *GormStore) SetClassStatus(ctx context.Context, id uint, status string) (*models.Class, error) {
	return s.patchClass(ctx, id, map[string]interface{}{"status": status})
}

func (s *GormStore) SetClassFeedback(ctx context.Context, id uint, feedback string) (*models.Class, error) {
	return s.patchClass(ctx, id, map[string]interface{}{"feedback": feedback})
}

func (s *GormStore) patchClass(ctx context.Context, id uint, fields map[string]interface{}) (*models.Class, error) {
	var class models.Class
	if err := s.db.WithContext(ctx).First(&class, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find class: %w", err)
	}
	if err := s.db.WithContext(ctx).Model(&class).Updates(fields).Error; err != nil {
		return nil, fmt.Errorf("update class: %w", err)
	}
	return &class, nil
}

func (s *GormStore) ListSelections(ctx context.Context) ([]models.SelectedClass, error) {
	var sels []models.SelectedClass
	if err := s.db.WithContext(ctx).Order("id asc").Find(&sels).Error; err != nil {
		return nil, fmt.Errorf("list selections: %w", err)
	}
	return sels, nil
}

func (s *GormStore) ListSelectionsByStudent(ctx context.Context, email string) ([]models.SelectedClass, error) {
	var sels []models.SelectedClass
	if err := s.db.WithContext(ctx).Where("student_email = ?", email).Order("id asc").Find(&sels).Error; err != nil {
		return nil, fmt.Errorf("list selections by student: %w", err)
	}
	return sels, nil
}

func (s *GormStore) FindSelectionByID(ctx context.Context, id uint) (*models.SelectedClass, error) {
	var sel models.SelectedClass
	if err := s.db.WithContext(ctx).First(&sel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find selection: %w", err)
	}
	return &sel, nil
}

func (s *GormStore) CreateSelection(ctx context.Context, sel *models.SelectedClass) error {
	if err := s.db.WithContext(ctx).Create(sel).Error; err != nil {
		// The composite unique index on (student_email, class_id) turns a
		// concurrent duplicate select into a constraint violation here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("create selection: %w", err)
	}
	return nil
}

func (s *GormStore) DeleteSelection(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.SelectedClass{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete selection: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) HasLiveSelection(ctx context.Context, email string, classID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.SelectedClass{}).
		Where("student_email = ? AND class_id = ?", email, classID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("count selections: %w", err)
	}
	return count > 0, nil
}

func (s *GormStore) ListPayments(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}

func (s *GormStore) ListPaymentsByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.db.WithContext(ctx).Where("student_email = ?", email).Order("created_at desc").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("list payments by email: %w", err)
	}
	return payments, nil
}

// FinalizeEnrollment settles a selection. Inside one transaction it
// inserts the payment row, deletes the selection and bumps the class
// enrollment counter; all three commit or none do. The unique index on
// payments.selection_id makes the whole operation idempotent: a retry,
// concurrent or not, finds (or collides into) the existing row and leaves
// the store untouched.
func (s *GormStore) FinalizeEnrollment(ctx context.Context, payment *models.Payment) (*models.Payment, bool, error) {
	fresh := false
	var settled models.Payment

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("selection_id = ?", payment.SelectionID).First(&settled).Error
		if err == nil {
			return nil // already applied, nothing to do
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("check existing payment: %w", err)
		}

		var sel models.SelectedClass
		if err := tx.First(&sel, payment.SelectionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("find selection: %w", err)
		}

		if err := tx.Create(payment).Error; err != nil {
			// Lost a race against a concurrent retry that committed first.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicate
			}
			return fmt.Errorf("create payment: %w", err)
		}
		if err := tx.Delete(&models.SelectedClass{}, sel.ID).Error; err != nil {
			return fmt.Errorf("delete selection: %w", err)
		}
		if err := tx.Model(&models.Class{}).Where("id = ?", payment.ClassID).
			Update("enrolled", gorm.Expr("enrolled + 1")).Error; err != nil {
			return fmt.Errorf("bump enrolled count: %w", err)
		}

		settled = *payment
		fresh = true
		return nil
	})

	if errors.Is(err, ErrDuplicate) {
		// The competing transaction won; report its row as the outcome.
		if err := s.db.WithContext(ctx).Where("selection_id = ?", payment.SelectionID).First(&settled).Error; err != nil {
			return nil, false, fmt.Errorf("reload settled payment: %w", err)
		}
		return &settled, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &settled, fresh, nil
}
