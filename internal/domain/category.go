package domain

import (
	"fmt"
	"strings"
	"time"
)

type Category struct {
	ID        int64
	Name      string
	Color     string
	SortOrder int
	CreatedAt time.Time
}

func (c *Category) Validate() error {
	if c == nil || strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidCategory)
	}
	if c.SortOrder < 0 {
		return fmt.Errorf("%w: sort order must not be negative", ErrInvalidCategory)
	}
	return nil
}
