package reporting

import (
	"strings"

	"gorm.io/gorm"
)

// Gorm scopes composing the row-set a report needs. Handlers chain these with
// db.Scopes(...) so every report shares the same filter semantics.

func StatusIs(status string) func(tx *gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if status == "" {
			return tx
		}
		return tx.Where("status = ?", status)
	}
}

func UserTypeIs(userType string) func(tx *gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("user_type = ?", userType)
	}
}

func DepartmentIs(department string) func(tx *gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("department = ?", department)
	}
}

// CreatedWithin filters on created_at, inclusive on both ends.
func CreatedWithin(r Range) func(tx *gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("created_at BETWEEN ? AND ?", r.Start, r.End)
	}
}

// ColumnWithin filters an arbitrary timestamp column, inclusive on both ends.
func ColumnWithin(column string, r Range) func(tx *gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where(column+" BETWEEN ? AND ?", r.Start, r.End)
	}
}

// NewestFirst is the default ordering for collection reports.
func NewestFirst(tx *gorm.DB) *gorm.DB {
	return tx.Order("created_at DESC")
}

// SoonestDueFirst orders "due soon" views ascending by their due column.
func SoonestDueFirst(column string) func(tx *gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Order(column + " ASC")
	}
}

// MatchesName does a case-insensitive substring match over a user's name and
// email fields.
func MatchesName(term string) func(tx *gorm.DB) *gorm.DB {
	pattern := "%" + strings.ToLower(term) + "%"
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?",
			pattern, pattern, pattern,
		)
	}
}

// MatchesTitle does a case-insensitive substring match over a property's
// title and location fields.
func MatchesTitle(term string) func(tx *gorm.DB) *gorm.DB {
	pattern := "%" + strings.ToLower(term) + "%"
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where(
			"LOWER(title) LIKE ? OR LOWER(city) LIKE ? OR LOWER(address) LIKE ?",
			pattern, pattern, pattern,
		)
	}
}
