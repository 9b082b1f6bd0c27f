package models

// Response is one respondent's answer set for a template. Answers is a
// JSON mapping from question identifier to answer value. Referential
// integrity of UserID and TemplateID is enforced by the database
// foreign keys, not pre-checked here.
type Response struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"userId" gorm:"index"`
	TemplateID uint      `json:"templateId" gorm:"index"`
	Answers    JSONValue `json:"answers"`

	User     User     `json:"-" gorm:"foreignKey:UserID"`
	Template Template `json:"-" gorm:"foreignKey:TemplateID"`
}
