package models

// Template is a reusable form definition published by an author.
// Labels and Questions are free-form JSON documents whose internal
// shape the service never inspects.
type Template struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"type:varchar(255)"`
	Description string    `json:"description" gorm:"type:text"`
	Topic       string    `json:"topic" gorm:"type:varchar(255)"`
	IsPublic    bool      `json:"isPublic"`
	Labels      JSONValue `json:"labels"`
	Questions   JSONValue `json:"questions"`
	AuthorName  string    `json:"authorName" gorm:"type:varchar(255)"`
}
