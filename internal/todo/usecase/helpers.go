package usecase

import "github.com/google/uuid"

// coalesce returns the new value when set, otherwise the existing one.
func coalesce(newVal *string, existing string) string {
	if newVal != nil {
		return *newVal
	}
	return existing
}

func coalesceBool(newVal *bool, existing bool) bool {
	if newVal != nil {
		return *newVal
	}
	return existing
}

// normalizePage clamps page to >= 1 and limit to (0, maxLimit].
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

// isValidID rejects ids the store could never hold, so they surface as
// not found instead of a query error.
func isValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
