package model

import "time"

type PostPeer interface {
	GetByID(id string) (*Post, error)
	GetByTitle(title string) (*Post, error)
	NewPost(owner string) *Post
	SaveNew(p *Post) error
	UpdateTitle(id string, title string, ts time.Time) error
	AddUpvotes(id string, n int64) error
	Remove(p *Post) error
}

type Post struct {
	ID          string
	Title       string
	Owner       string
	URL         string
	Time        time.Time
	Upvotes     int64
	Comments    []string
	NumComments int64
	IsNew       bool
	Peer        PostPeer
}

func (p *Post) SaveNew() error {
	return p.Peer.SaveNew(p)
}
