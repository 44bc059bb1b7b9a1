package repository

import "gorm.io/gorm"

// paginate applies the page window to the query
func paginate(query *gorm.DB, page Page) *gorm.DB {
	if page.Skip > 0 {
		query = query.Offset(page.Skip)
	}
	if page.Limit > 0 {
		query = query.Limit(page.Limit)
	}
	return query
}
