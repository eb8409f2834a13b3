package models

type User struct {
	BaseModel

	Name     string `json:"name" gorm:"size:150;uniqueIndex;not null"`
	Nick     string `json:"nick"`
	Email    string `json:"-"`
	Password string `json:"-"`
}

// DisplayName prefers the nick and falls back to the username.
func (v User) DisplayName() string {
	if len(v.Nick) > 0 {
		return v.Nick
	}
	return v.Name
}
