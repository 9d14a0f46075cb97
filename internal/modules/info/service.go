// Package info answers informational queries ("what time is check-in",
// "tell me about the pool") by resolving a spoken category against the
// catalog. Pure retrieval and formatting; no verification, no state.
package info

import (
	"fmt"
	"strings"

	"grandhorizon/internal/catalog"
)

type Service struct {
	catalog *catalog.Catalog
}

func NewService(cat *catalog.Catalog) *Service {
	return &Service{catalog: cat}
}

type CategoryInfo struct {
	Category    string `json:"category"`
	Information string `json:"information"`
}

// Spoken policy phrasings mapped to catalog policy keys.
var policyAliases = map[string]string{
	"cancellation_policy": "cancellation",
	"cancellation":        "cancellation",
	"pet_policy":          "pets",
	"pets":                "pets",
	"smoking_policy":      "smoking",
	"smoking":             "smoking",
	"age_requirement":     "age_requirement",
	"payment":             "payment",
	"quiet_hours":         "quiet_hours",
}

// Get resolves a category in priority order: direct field, single amenity,
// amenity roll-up, policy alias, room types. Unknown categories come back
// as UnknownCategoryError carrying guidance for the caller.
func (s *Service) Get(category string) (*CategoryInfo, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(category)), " ", "_")

	if v, ok := s.catalog.Field(normalized); ok {
		return &CategoryInfo{Category: normalized, Information: v}, nil
	}

	if v, ok := s.catalog.Amenity(normalized); ok {
		return &CategoryInfo{Category: normalized, Information: v}, nil
	}

	if normalized == "amenities" || normalized == "all_amenities" {
		return &CategoryInfo{Category: "amenities", Information: s.amenitySummary()}, nil
	}

	if key, ok := policyAliases[normalized]; ok {
		policy, _ := s.catalog.Policy(key)
		return &CategoryInfo{Category: normalized, Information: policy}, nil
	}

	if normalized == "room_types" || normalized == "rooms" {
		return &CategoryInfo{Category: "room_types", Information: s.roomTypeSummary()}, nil
	}

	return nil, &UnknownCategoryError{Category: normalized}
}

func (s *Service) amenitySummary() string {
	var parts []string
	s.catalog.Amenities(func(name, description string) {
		parts = append(parts, fmt.Sprintf("%s: %s", titleCase(name), description))
	})
	return "Our hotel amenities include: " + strings.Join(parts, "; ")
}

func (s *Service) roomTypeSummary() string {
	var parts []string
	for _, rt := range s.catalog.RoomTypes() {
		parts = append(parts, fmt.Sprintf(
			"%s - $%.0f per night, up to %d guests. %s",
			rt.Name, rt.PricePerNight, rt.MaxGuests, rt.Description,
		))
	}
	return "We offer the following room types: " + strings.Join(parts, " | ")
}

// titleCase renders an amenity key for speech ("room_service" -> "Room Service").
func titleCase(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
