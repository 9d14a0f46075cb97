// Package catalog holds the hotel's static reference data: identity and
// contact fields, amenities, policies, and the room-type table with
// per-night pricing and guest capacity. The catalog is immutable and
// shared read-only by every service.
package catalog

type RoomType struct {
	Key           string  `json:"key"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	PricePerNight float64 `json:"price_per_night"`
	MaxGuests     int     `json:"max_guests"`
}

type Catalog struct {
	fields    map[string]string
	amenities map[string]string
	policies  map[string]string

	amenityOrder []string
	roomTypes    []RoomType
	roomIndex    map[string]int
}

// RoomType looks up a room type by its lowercase key.
func (c *Catalog) RoomType(key string) (RoomType, bool) {
	i, ok := c.roomIndex[key]
	if !ok {
		return RoomType{}, false
	}
	return c.roomTypes[i], true
}

// RoomTypes returns all room types in catalog order (cheapest first).
func (c *Catalog) RoomTypes() []RoomType {
	out := make([]RoomType, len(c.roomTypes))
	copy(out, c.roomTypes)
	return out
}

// RoomTypeNames returns the display names of all room types, in order.
func (c *Catalog) RoomTypeNames() []string {
	names := make([]string, 0, len(c.roomTypes))
	for _, rt := range c.roomTypes {
		names = append(names, rt.Name)
	}
	return names
}

// RoomTypeName maps a room-type key to its display name, falling back to
// the key itself for unknown values.
func (c *Catalog) RoomTypeName(key string) string {
	if rt, ok := c.RoomType(key); ok {
		return rt.Name
	}
	return key
}

// Field returns a direct informational field such as "address" or
// "check_in_time".
func (c *Catalog) Field(key string) (string, bool) {
	v, ok := c.fields[key]
	return v, ok
}

// Amenity returns the description of a single amenity.
func (c *Catalog) Amenity(key string) (string, bool) {
	v, ok := c.amenities[key]
	return v, ok
}

// Amenities iterates amenity (name, description) pairs in a stable order.
func (c *Catalog) Amenities(fn func(name, description string)) {
	for _, k := range c.amenityOrder {
		fn(k, c.amenities[k])
	}
}

// Policy returns the text of a hotel policy ("cancellation", "pets", ...).
func (c *Catalog) Policy(key string) (string, bool) {
	v, ok := c.policies[key]
	return v, ok
}
