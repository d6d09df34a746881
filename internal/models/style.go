package models

import "dailydose/pkg/listfield"

// Style is a read-mostly lifestyle aesthetic. The list-valued fields are
// stored as text columns; older rows carry comma-separated values while
// newer ones carry JSON arrays, so they go through listfield on read.
type Style struct {
	ID                  uint                 `json:"id" gorm:"primaryKey"`
	Name                string               `json:"name" gorm:"type:varchar(255)"`
	Description         string               `json:"description"`
	Image               string               `json:"image"`
	ColorPalette        listfield.StringList `json:"colorPalette" gorm:"column:color_palette;type:text"`
	OutfitIdeas         listfield.StringList `json:"outfitIdeas" gorm:"column:outfit_ideas;type:text"`
	BookRecommendations listfield.StringList `json:"bookRecommendations" gorm:"column:book_recommendations;type:text"`
	RecipePairings      listfield.StringList `json:"recipePairings" gorm:"column:recipe_pairings;type:text"`
	Mood                string               `json:"mood" gorm:"type:varchar(100)"`
	Season              string               `json:"season" gorm:"type:varchar(100)"`
}
