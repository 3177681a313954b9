package tenant

import "gorm.io/gorm"

// Scope restricts a query to one company (tenant).
func Scope(companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}

// BranchOrCompanyWide keeps rows of one branch plus rows flagged company-wide.
func BranchOrCompanyWide(branchID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("(branch_id = ? OR is_company_wide = ?)", branchID, true)
	}
}
