package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/adamromayor/HackerNews/model"

	log "github.com/sirupsen/logrus"
)

// PostUserData defines the needed user model interactions
type PostUserData interface {
	GetByID(id string) (*model.User, error)
	GetByLikedPost(postID string) ([]*model.User, error)
	UpdatePosts(id string, posts []string) error
	UpdateLikedPosts(id string, likedPosts []string) error
}

// PostData defines the needed post model interactions
type PostData interface {
	GetByTitle(title string) (*model.Post, error)
	NewPost(owner string) *model.Post
	SaveNew(p *model.Post) error
	UpdateTitle(id string, title string, ts time.Time) error
	Remove(p *model.Post) error
}

// PostController handles creating, renaming and deleting posts.
type PostController struct {
	Users PostUserData
	Posts PostData
}

type EditPostRequest struct {
	UserID       string `json:"userID"`
	OldPostTitle string `json:"oldPostTitle"`
	NewPostTitle string `json:"newPostTitle"`
}

type DeletePostRequest struct {
	UserID    string `json:"userID"`
	PostTitle string `json:"postTitle"`
}

type CreatePostRequest struct {
	UserID    string `json:"userID"`
	PostTitle string `json:"postTitle"`
	URL       string `json:"url"`
}

// EditPost renames a post. It rejects the rename if the old title cannot
// be resolved, the new title is already taken by any post, or the acting
// user does not own the post.
func (c *PostController) EditPost(ctx context.Context, req EditPostRequest) (string, error) {
	log.Info("Handler: EditPost")
	oldPost, err := c.Posts.GetByTitle(req.OldPostTitle)
	if err != nil {
		return "", fmt.Errorf("Could not query post %q: %s", req.OldPostTitle, err)
	}
	if oldPost == nil {
		return resultFalse, nil
	}
	newPost, err := c.Posts.GetByTitle(req.NewPostTitle)
	if err != nil {
		return "", fmt.Errorf("Could not query post %q: %s", req.NewPostTitle, err)
	}
	if newPost != nil {
		return resultFalse, nil
	}
	user, err := c.Users.GetByID(req.UserID)
	if err != nil {
		return "", fmt.Errorf("Could not load user %q: %s", req.UserID, err)
	}
	if user == nil {
		return "", fmt.Errorf("User %q not found", req.UserID)
	}
	if !user.HasPost(oldPost.ID) {
		return resultFalse, nil
	}
	// The user's posts list stores ids, not titles, so only the post
	// document changes on a rename.
	err = c.Posts.UpdateTitle(oldPost.ID, req.NewPostTitle, time.Now())
	if err != nil {
		return "", fmt.Errorf("Could not update post %q: %s", oldPost.ID, err)
	}
	return resultTrue, nil
}

// DeletePost removes a post owned by the acting user: the id is dropped
// from the owner's posts list, the document is deleted and the id is
// scrubbed from every user's liked list.
func (c *PostController) DeletePost(ctx context.Context, req DeletePostRequest) (string, error) {
	log.Info("Handler: DeletePost")
	post, err := c.Posts.GetByTitle(req.PostTitle)
	if err != nil {
		return "", fmt.Errorf("Could not query post %q: %s", req.PostTitle, err)
	}
	if post == nil {
		return resultFalse, nil
	}
	user, err := c.Users.GetByID(req.UserID)
	if err != nil {
		return "", fmt.Errorf("Could not load user %q: %s", req.UserID, err)
	}
	if user == nil {
		return "", fmt.Errorf("User %q not found", req.UserID)
	}
	if !user.HasPost(post.ID) {
		return resultFalse, nil
	}
	err = c.Users.UpdatePosts(user.ID, model.RemoveID(user.Posts, post.ID))
	if err != nil {
		return "", fmt.Errorf("Could not update posts of %q: %s", user.ID, err)
	}
	err = c.Posts.Remove(post)
	if err != nil {
		return "", fmt.Errorf("Could not remove post %q: %s", post.ID, err)
	}
	if err := c.scrubLikedPosts(post.ID); err != nil {
		return "", err
	}
	return resultTrue, nil
}

// scrubLikedPosts removes the given post id from the liked list of every
// user still referencing it.
func (c *PostController) scrubLikedPosts(postID string) error {
	likers, err := c.Users.GetByLikedPost(postID)
	if err != nil {
		return fmt.Errorf("Could not query likers of %q: %s", postID, err)
	}
	for _, liker := range likers {
		err = c.Users.UpdateLikedPosts(liker.ID, model.RemoveID(liker.LikedPosts, postID))
		if err != nil {
			return fmt.Errorf("Could not scrub %q from liked posts of %q: %s", postID, liker.ID, err)
		}
	}
	return nil
}

// CreatePost creates a post if its title is not taken yet and appends the
// generated id to the creator's posts list.
func (c *PostController) CreatePost(ctx context.Context, req CreatePostRequest) (string, error) {
	log.Info("Handler: CreatePost")
	existing, err := c.Posts.GetByTitle(req.PostTitle)
	if err != nil {
		return "", fmt.Errorf("Could not query post %q: %s", req.PostTitle, err)
	}
	if existing != nil {
		return resultFalse, nil
	}
	post := c.Posts.NewPost(req.UserID)
	post.Title = req.PostTitle
	post.URL = req.URL
	err = c.Posts.SaveNew(post)
	if err != nil {
		return "", fmt.Errorf("Could not save post: %s", err)
	}
	user, err := c.Users.GetByID(req.UserID)
	if err != nil {
		return "", fmt.Errorf("Could not load user %q: %s", req.UserID, err)
	}
	if user == nil {
		return "", fmt.Errorf("User %q not found", req.UserID)
	}
	err = c.Users.UpdatePosts(user.ID, append(user.Posts, post.ID))
	if err != nil {
		return "", fmt.Errorf("Could not update posts of %q: %s", user.ID, err)
	}
	return resultTrue, nil
}
