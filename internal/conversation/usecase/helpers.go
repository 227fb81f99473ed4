package usecase

import "github.com/google/uuid"

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

func isValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
