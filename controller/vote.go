package controller

import (
	"context"
	"fmt"

	"github.com/adamromayor/HackerNews/model"

	log "github.com/sirupsen/logrus"
)

// VoteUserData defines the needed user model interactions
type VoteUserData interface {
	GetByID(id string) (*model.User, error)
	UpdateLikedPosts(id string, likedPosts []string) error
}

// VotePostData defines the needed post model interactions
type VotePostData interface {
	GetByTitle(title string) (*model.Post, error)
	AddUpvotes(id string, n int64) error
}

// VoteController handles upvote state checks and toggles.
type VoteController struct {
	Users VoteUserData
	Posts VotePostData
}

type CheckUpvotedRequest struct {
	UserID    string `json:"userID"`
	PostTitle string `json:"postTitle"`
}

type ToggleUpvoteRequest struct {
	UserID    string `json:"userID"`
	PostTitle string `json:"postTitle"`
	Method    string `json:"method"`
}

// CheckUpvoted reports whether the user has an active upvote on the post.
// An unresolvable title behaves like a post the user never liked.
func (c *VoteController) CheckUpvoted(ctx context.Context, req CheckUpvotedRequest) (string, error) {
	log.Info("Handler: CheckUpvoted")
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
	if user.HasLiked(post.ID) {
		return resultTrue, nil
	}
	return resultFalse, nil
}

// ToggleUpvote adjusts the post's vote counter and the user's liked list.
// The counter uses the store's atomic increment, the liked list is a plain
// read-modify-write. Methods other than increment and decrement are a no-op.
func (c *VoteController) ToggleUpvote(ctx context.Context, req ToggleUpvoteRequest) (string, error) {
	log.Info("Handler: ToggleUpvote")
	switch req.Method {
	case "increment":
		return c.increment(req)
	case "decrement":
		return c.decrement(req)
	}
	return resultTrue, nil
}

func (c *VoteController) increment(req ToggleUpvoteRequest) (string, error) {
	user, post, err := c.load(req)
	if err != nil {
		return "", err
	}
	err = c.Posts.AddUpvotes(post.ID, 1)
	if err != nil {
		return "", fmt.Errorf("Could not increment upvotes on %q: %s", post.ID, err)
	}
	err = c.Users.UpdateLikedPosts(user.ID, append(user.LikedPosts, post.ID))
	if err != nil {
		return "", fmt.Errorf("Could not update liked posts of %q: %s", user.ID, err)
	}
	return resultTrue, nil
}

func (c *VoteController) decrement(req ToggleUpvoteRequest) (string, error) {
	user, post, err := c.load(req)
	if err != nil {
		return "", err
	}
	// A vote the user never cast leaves both the list and the counter
	// untouched.
	if !user.HasLiked(post.ID) {
		return resultTrue, nil
	}
	err = c.Users.UpdateLikedPosts(user.ID, model.RemoveID(user.LikedPosts, post.ID))
	if err != nil {
		return "", fmt.Errorf("Could not update liked posts of %q: %s", user.ID, err)
	}
	err = c.Posts.AddUpvotes(post.ID, -1)
	if err != nil {
		return "", fmt.Errorf("Could not decrement upvotes on %q: %s", post.ID, err)
	}
	return resultTrue, nil
}

func (c *VoteController) load(req ToggleUpvoteRequest) (*model.User, *model.Post, error) {
	user, err := c.Users.GetByID(req.UserID)
	if err != nil {
		return nil, nil, fmt.Errorf("Could not load user %q: %s", req.UserID, err)
	}
	if user == nil {
		return nil, nil, fmt.Errorf("User %q not found", req.UserID)
	}
	post, err := c.Posts.GetByTitle(req.PostTitle)
	if err != nil {
		return nil, nil, fmt.Errorf("Could not query post %q: %s", req.PostTitle, err)
	}
	if post == nil {
		return nil, nil, fmt.Errorf("Post %q not found", req.PostTitle)
	}
	return user, post, nil
}
