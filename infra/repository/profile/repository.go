package profile

import (
	"context"
	"errors"
	"strings"

	"github.com/gibraltarbank/gibraltar/pkg/dto"
	"github.com/gibraltarbank/gibraltar/pkg/repository/profile"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New returns a GORM-backed profile repository.
func New(db *gorm.DB) profile.Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	create *dto.ProfileCreate,
) error {
	p := &Profile{
		ID:         create.ID,
		UserID:     create.UserID,
		FirstName:  create.FirstName,
		LastName:   create.LastName,
		FullName:   create.FullName,
		Email:      create.Email,
		Phone:      create.Phone,
		Address:    create.Address,
		City:       create.City,
		State:      create.State,
		ZipCode:    create.ZipCode,
		Country:    create.Country,
		AccessCode: create.AccessCode,
	}
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*dto.ProfileRead, error) {
	var p Profile
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&p), nil
}

func (r *repository) GetByUserID(
	ctx context.Context,
	userID uuid.UUID,
) (*dto.ProfileRead, error) {
	var p Profile
	if err := r.db.WithContext(
		ctx,
	).Where("user_id = ?", userID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&p), nil
}

func (r *repository) ExistsByAccessCode(
	ctx context.Context,
	code string,
) (bool, error) {
	var count int64
	err := r.db.WithContext(
		ctx,
	).Model(&Profile{}).Where("access_code = ?", code).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Search matches the update utility's lookup: a case-insensitive substring
// match on the owning user id or the profile email. The CAST keeps the query
// portable across Postgres and SQLite.
func (r *repository) Search(
	ctx context.Context,
	query string,
) ([]*dto.ProfileRead, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var profiles []Profile
	err := r.db.WithContext(ctx).
		Where(
			"LOWER(CAST(user_id AS TEXT)) LIKE ? OR LOWER(email) LIKE ?",
			pattern, pattern,
		).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ProfileRead, 0, len(profiles))
	for i := range profiles {
		result = append(result, mapModelToDTO(&profiles[i]))
	}
	return result, nil
}

func (r *repository) List(
	ctx context.Context,
) ([]*dto.ProfileRead, error) {
	var profiles []Profile
	if err := r.db.WithContext(ctx).Find(&profiles).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.ProfileRead, 0, len(profiles))
	for i := range profiles {
		result = append(result, mapModelToDTO(&profiles[i]))
	}
	return result, nil
}

func (r *repository) Update(
	ctx context.Context,
	id uuid.UUID,
	update *dto.ProfileUpdate,
) error {
	updates := make(map[string]interface{})
	if update.FullName != nil {
		updates["full_name"] = *update.FullName
	}
	if update.Email != nil {
		updates["email"] = *update.Email
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&Profile{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func mapModelToDTO(p *Profile) *dto.ProfileRead {
	return &dto.ProfileRead{
		ID:         p.ID,
		UserID:     p.UserID,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		FullName:   p.FullName,
		Email:      p.Email,
		Phone:      p.Phone,
		Address:    p.Address,
		City:       p.City,
		State:      p.State,
		ZipCode:    p.ZipCode,
		Country:    p.Country,
		AccessCode: p.AccessCode,
		CreatedAt:  p.CreatedAt,
	}
}
