package model

// UserPeer defines interactions with the user data.
type UserPeer interface {
	GetByID(id string) (*User, error)
	GetByLikedPost(postID string) ([]*User, error)
	NewUser(id string) *User
	SaveNew(user *User) error
	UpdatePosts(id string, posts []string) error
	UpdateLikedPosts(id string, likedPosts []string) error
}

// User represents an account in the model. The ID is the username chosen
// at registration time.
type User struct {
	ID         string
	Posts      []string
	LikedPosts []string
	Peer       UserPeer
}

// SaveNew saves a new user to the model.
func (u *User) SaveNew() error {
	return u.Peer.SaveNew(u)
}

// HasPost reports whether the user authored the given post.
func (u *User) HasPost(postID string) bool {
	for _, id := range u.Posts {
		if id == postID {
			return true
		}
	}
	return false
}

// HasLiked reports whether the given post is in the user's liked list.
func (u *User) HasLiked(postID string) bool {
	for _, id := range u.LikedPosts {
		if id == postID {
			return true
		}
	}
	return false
}

// RemoveID removes the first occurrence of id from the given list.
func RemoveID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
