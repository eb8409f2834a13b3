package models

import "github.com/samber/lo"

// GroupKind is one entry of the closed group catalog.
// Titles and slugs are paired one to one.
type GroupKind struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

var GroupKinds = []GroupKind{
	{Title: "Humor", Slug: "humor"},
	{Title: "Animals", Slug: "animals"},
	{Title: "Auto", Slug: "auto"},
	{Title: "Books", Slug: "books"},
	{Title: "Serials", Slug: "serials"},
	{Title: "Biography", Slug: "biography"},
}

// LookupGroupKind returns the catalog entry for slug.
func LookupGroupKind(slug string) (GroupKind, bool) {
	return lo.Find(GroupKinds, func(item GroupKind) bool {
		return item.Slug == slug
	})
}

type Group struct {
	BaseModel

	Title       string `json:"title" gorm:"size:200;not null"`
	Slug        string `json:"slug" gorm:"size:50;uniqueIndex;not null"`
	Description string `json:"description"`
}
