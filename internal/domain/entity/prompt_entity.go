package entity

import "time"

// Prompt is a user-submitted text snippet plus a classification tag.
// Creator is populated on every read path; ownership never changes after
// creation.
type Prompt struct {
	ID        string    `json:"id"`
	Creator   *User     `json:"creator"`
	Prompt    string    `json:"prompt"`
	Tag       string    `json:"tag"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreatorID returns the owning user's id, tolerating an unpopulated
// creator on freshly constructed values.
func (p *Prompt) CreatorID() string {
	if p.Creator == nil {
		return ""
	}
	return p.Creator.ID
}
