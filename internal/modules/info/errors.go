package info

import "fmt"

// UnknownCategoryError reports a category the catalog cannot answer,
// with guidance the agent can read back to the guest.
type UnknownCategoryError struct {
	Category string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf(
		"I don't have specific information for '%s'. I can help you with: amenities, check-in/check-out times, policies (cancellation, pets, smoking), location, directions, contact information, or room types. What would you like to know?",
		e.Category,
	)
}
