package usersgorm

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func New(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Create(ctx context.Context, op *OperatorRecord) error {
	return r.db.WithContext(ctx).Create(op).Error
}

func (r *Repo) GetByUsername(ctx context.Context, username string) (*OperatorRecord, error) {
	var op OperatorRecord
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&op).Error; err != nil {
		return nil, err
	}
	return &op, nil
}

func (r *Repo) List(ctx context.Context) ([]*OperatorRecord, error) {
	var arr []*OperatorRecord
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&arr).Error; err != nil {
		return nil, err
	}
	return arr, nil
}

func (r *Repo) SetPassword(ctx context.Context, operatorID uint, plain string) error {
	if strings.TrimSpace(plain) == "" {
		return errors.New("empty password")
	}
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(&OperatorRecord{}).
		Where("id = ?", operatorID).Update("password_hash", string(h)).Error
}

// Verify checks credentials and returns the account. The error is the same
// for a missing user, a wrong password and a disabled account so login
// responses do not leak which usernames exist.
func (r *Repo) Verify(ctx context.Context, username, plain string) (*OperatorRecord, error) {
	op, err := r.GetByUsername(ctx, username)
	if err != nil {
		return nil, errors.New("invalid credentials")
	}
	if op.PasswordHash == "" {
		return nil, errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(plain)); err != nil {
		return nil, errors.New("invalid credentials")
	}
	if !op.Active {
		return nil, errors.New("invalid credentials")
	}
	return op, nil
}

// EnsureAdmin creates the bootstrap admin account when no operator exists.
func (r *Repo) EnsureAdmin(ctx context.Context, username, password string) error {
	var n int64
	if err := r.db.WithContext(ctx).Model(&OperatorRecord{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&OperatorRecord{
		Username:     username,
		DisplayName:  "Administrator",
		PasswordHash: string(h),
		Role:         RoleAdmin,
		Active:       true,
	}).Error
}
