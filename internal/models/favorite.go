package models

// Category selects which favorite table a request targets.
type Category string

const (
	CategoryPlanet    Category = "planet"
	CategoryCharacter Category = "character"
)

func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryPlanet, CategoryCharacter:
		return Category(s), true
	}
	return "", false
}

// FavPlanet marks a user's interest in a planet. (user_id, planet_id) is unique.
type FavPlanet struct {
	ID       int64 `gorm:"primaryKey" json:"id"`
	UserID   int64 `gorm:"not null;uniqueIndex:uq_fav_planets_user_planet" json:"user_id"`
	PlanetID int64 `gorm:"not null;uniqueIndex:uq_fav_planets_user_planet" json:"planet_id"`
}

func (FavPlanet) TableName() string {
	return "fav_planets"
}

// FavCharacter marks a user's interest in a character. (user_id, character_id) is unique.
type FavCharacter struct {
	ID          int64 `gorm:"primaryKey" json:"id"`
	UserID      int64 `gorm:"not null;uniqueIndex:uq_fav_characters_user_character" json:"user_id"`
	CharacterID int64 `gorm:"not null;uniqueIndex:uq_fav_characters_user_character" json:"character_id"`
}

func (FavCharacter) TableName() string {
	return "fav_characters"
}
