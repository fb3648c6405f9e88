package errors

import (
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// MaxRecords caps the total number of records a single --levels value may
// request. Each level multiplies the count of the one above it, so short
// inputs like "1000,1000,1000" would otherwise exhaust memory.
const MaxRecords = 5_000_000

// ParseLevels parses a comma-separated list of level sizes such as
// "100000" or "10,5". Whitespace around entries is ignored. An empty
// string yields an empty list.
func ParseLevels(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []int{}, nil
	}

	parts := strings.Split(s, ",")
	lens := make([]int, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, New(ErrCodeInvalidLevels, "level size %q is not a number", part)
		}
		lens[i] = n
	}

	if err := ValidateLevels(lens); err != nil {
		return nil, err
	}
	return lens, nil
}

// ValidateLevels checks that every level size is non-negative and that the
// resulting tree stays within [MaxRecords].
func ValidateLevels(lens []int) error {
	total, width := 0, 1
	for depth, n := range lens {
		if n < 0 {
			return New(ErrCodeInvalidLevels, "level %d size must be non-negative, got %d", depth, n)
		}
		if n > 0 && width > MaxRecords/n {
			return New(ErrCodeInvalidLevels, "levels %v exceed %d records", lens, MaxRecords)
		}
		width *= n
		total += width
		if total > MaxRecords {
			return New(ErrCodeInvalidLevels, "levels %v exceed %d records", lens, MaxRecords)
		}
	}
	return nil
}

// ValidatePageSize checks size against the allowed page sizes.
func ValidatePageSize(size int, allowed []int) error {
	if !slices.Contains(allowed, size) {
		return New(ErrCodeInvalidPageSize, "page size %d not one of %v", size, allowed)
	}
	return nil
}

// ValidatePage checks a one-based page number against pageCount.
func ValidatePage(page, pageCount int) error {
	if page < 1 || page > max(pageCount, 1) {
		return New(ErrCodeInvalidPage, "page %d out of range [1, %d]", page, max(pageCount, 1))
	}
	return nil
}

// ValidatePath validates a config file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
