package domain

// Theme represents the UI theme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// DefaultTheme is used when an owner has never saved preferences.
const DefaultTheme = ThemeSystem

// IsValid checks if the theme is one of the known values.
func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// SortOrder represents how an owner wants their task list ordered.
type SortOrder string

const (
	SortOrderCreated  SortOrder = "created"
	SortOrderUpdated  SortOrder = "updated"
	SortOrderPriority SortOrder = "priority"
)

// DefaultSortOrder is used when an owner has never saved preferences.
const DefaultSortOrder = SortOrderCreated

// IsValid checks if the sort order is one of the known values.
func (s SortOrder) IsValid() bool {
	switch s {
	case SortOrderCreated, SortOrderUpdated, SortOrderPriority:
		return true
	}
	return false
}

// Preferences is the singleton per-owner settings record.
// Timestamps are store-assigned epoch milliseconds; a zero ID means the
// record has never been persisted (defaults returned on read).
type Preferences struct {
	ID              string
	OwnerID         string
	Theme           Theme
	DefaultPriority Priority
	SortOrder       SortOrder
	CreatedAt       int64
	UpdatedAt       int64
}

// DefaultPreferences returns the unpersisted default preferences for an owner.
func DefaultPreferences(ownerID string) Preferences {
	return Preferences{
		OwnerID:         ownerID,
		Theme:           DefaultTheme,
		DefaultPriority: DefaultPriority,
		SortOrder:       DefaultSortOrder,
	}
}

// PreferencesPatch carries the mutable preference fields for a partial update.
// A nil slot leaves the stored field untouched.
type PreferencesPatch struct {
	Theme           *Theme
	DefaultPriority *Priority
	SortOrder       *SortOrder
}

// IsEmpty returns true when the patch would change nothing.
func (p PreferencesPatch) IsEmpty() bool {
	return p.Theme == nil && p.DefaultPriority == nil && p.SortOrder == nil
}
