package models

import "strings"

type Planet struct {
	ID     int64   `gorm:"primaryKey" json:"id"`
	Name   string  `gorm:"type:varchar(250);not null" json:"name"`
	ImgURL *string `gorm:"column:img_url;type:varchar(500)" json:"img_url"`
}

func (Planet) TableName() string {
	return "planets"
}

func (p *Planet) Prepare() {
	p.Name = strings.TrimSpace(p.Name)
}

type Character struct {
	ID     int64   `gorm:"primaryKey" json:"id"`
	Name   string  `gorm:"type:varchar(250);not null" json:"name"`
	ImgURL *string `gorm:"column:img_url;type:varchar(500)" json:"img_url"`
}

func (Character) TableName() string {
	return "characters"
}

func (c *Character) Prepare() {
	c.Name = strings.TrimSpace(c.Name)
}
