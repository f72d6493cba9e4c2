package models

type User struct {
	BaseModel
	Name         string     `gorm:"size:255" json:"name"`
	Email        string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	UserType     UserType   `gorm:"type:varchar(20);not null;index" json:"userType"`
	Bio          string     `gorm:"type:text" json:"bio"`
	Skills       string     `gorm:"type:text" json:"skills"`
	Experience   Experience `gorm:"type:varchar(20);default:'BEGINNER';index" json:"experience"`
	ProfileImage string     `json:"profileImage,omitempty"`

	// Relations
	Posts              []Post    `gorm:"foreignKey:CreatorID" json:"posts,omitempty"`
	FreelancerProjects []Project `gorm:"foreignKey:FreelancerID" json:"-"`
}

func (u *User) IsFreelancer() bool {
	return u.UserType == UserTypeFreelancer
}
