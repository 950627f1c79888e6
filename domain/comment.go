package domain

type Comment struct {
	ID         int        `json:"id" yaml:"id"`
	Content    string     `json:"content" yaml:"content"`
	IsInternal bool       `json:"is_internal" yaml:"is_internal"`
	UserID     int        `json:"user_id" yaml:"user_id"`
	User       *User      `json:"user,omitempty" yaml:"user,omitempty"`
	CreatedAt  Timestamp  `json:"created_at" yaml:"created_at"`
	UpdatedAt  *Timestamp `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

func (c *Comment) Clone() *Comment {
	if c == nil {
		return nil
	}
	clone := *c
	clone.User = c.User.Clone()
	clone.UpdatedAt = c.UpdatedAt.clone()
	return &clone
}

// CommentResult is what the remote service answers when a comment is added.
type CommentResult struct {
	Message   string `json:"message" yaml:"message"`
	CommentID int    `json:"comment_id" yaml:"comment_id"`
}
