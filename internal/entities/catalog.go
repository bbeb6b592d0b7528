package entities

import "time"

type Author struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	FullName string `gorm:"column:full_name;size:255;not null" json:"full_name"`
}

type Genre struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;not null" json:"name"`
}

type Book struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:512;not null" json:"title"`
	AuthorID  uint      `gorm:"index;not null" json:"author_id"`
	Author    Author    `gorm:"foreignKey:AuthorID" json:"author"`
	Genres    []Genre   `gorm:"many2many:books_genres;" json:"genres"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GenreIDs returns the ids of the book's genres in their stored order.
func (b Book) GenreIDs() []uint {
	ids := make([]uint, 0, len(b.Genres))
	for _, g := range b.Genres {
		ids = append(ids, g.ID)
	}
	return ids
}

type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	BookID    uint      `gorm:"index;not null" json:"book_id"`
	Book      *Book     `gorm:"foreignKey:BookID" json:"book,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
