package models

import "time"

type Post struct {
	ID      uint      `json:"id" gorm:"primaryKey"`
	Text    string    `json:"text" gorm:"not null"`
	PubDate time.Time `json:"pub_date" gorm:"index"`

	AuthorID uint `json:"author_id" gorm:"not null;index"`
	Author   User `json:"author" gorm:"constraint:OnDelete:CASCADE"`

	GroupID *uint  `json:"group_id" gorm:"index"`
	Group   *Group `json:"group" gorm:"constraint:OnDelete:SET NULL"`
}
