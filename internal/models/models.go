package models

import (
	"math"
	"time"
)

// VideoRecord represents one analyzed video.
//
// SavedAt is nil until the record is first persisted to a user's saved list.
type VideoRecord struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Channel     string     `json:"channel"`
	Description string     `json:"description"`
	Views       uint64     `json:"views"`
	Likes       uint64     `json:"likes"`
	Comments    uint64     `json:"comments"`
	Duration    string     `json:"duration"`
	UploadDate  string     `json:"uploadDate"`
	Thumbnail   string     `json:"thumbnail"`
	SavedAt     *time.Time `json:"savedAt,omitempty"`
}

// IsSaved reports whether the record has been persisted.
func (v VideoRecord) IsSaved() bool {
	return v.SavedAt != nil
}

// Engagement derives like and comment rates, as percentages of views.
func (v VideoRecord) Engagement() Engagement {
	return Engagement{
		LikeRate:    rate(v.Likes, v.Views),
		CommentRate: rate(v.Comments, v.Views),
	}
}

// Engagement holds percentages rounded to two decimals; both are 0 for a video with no views.
type Engagement struct {
	LikeRate    float64 `json:"likeRate"`
	CommentRate float64 `json:"commentRate"`
}

func rate(n, views uint64) float64 {
	if views == 0 {
		return 0
	}
	return math.Round(float64(n)/float64(views)*100*100) / 100
}

// Account is a registered account as persisted under the users key.
//
// Password holds a bcrypt hash, never the plaintext.
type Account struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Public returns the projection of the account without its password.
func (a Account) Public() User {
	return User{ID: a.ID, Name: a.Name, Email: a.Email}
}

// User is the public projection of an [Account].
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
