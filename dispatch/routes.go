package dispatch

import (
	"context"
	"encoding/json"

	"github.com/adamromayor/HackerNews/controller"
)

// NewApp builds a dispatcher with the six handlers registered under their
// wire names.
func NewApp(pc *controller.PostController, vc *controller.VoteController, ac *controller.AccountController) *Dispatcher {
	d := New()
	d.Register("editPost", func(ctx context.Context, data json.RawMessage) (interface{}, error) {
		var req controller.EditPostRequest
		if err := Decode(data, &req); err != nil {
			return nil, err
		}
		return pc.EditPost(ctx, req)
	})
	d.Register("deletePost", func(ctx context.Context, data json.RawMessage) (interface{}, error) {
		var req controller.DeletePostRequest
		if err := Decode(data, &req); err != nil {
			return nil, err
		}
		return pc.DeletePost(ctx, req)
	})
	d.Register("verifyPost", func(ctx context.Context, data json.RawMessage) (interface{}, error) {
		var req controller.CreatePostRequest
		if err := Decode(data, &req); err != nil {
			return nil, err
		}
		return pc.CreatePost(ctx, req)
	})
	d.Register("verifyUpVote", func(ctx context.Context, data json.RawMessage) (interface{}, error) {
		var req controller.CheckUpvotedRequest
		if err := Decode(data, &req); err != nil {
			return nil, err
		}
		return vc.CheckUpvoted(ctx, req)
	})
	d.Register("updateUpVote", func(ctx context.Context, data json.RawMessage) (interface{}, error) {
		var req controller.ToggleUpvoteRequest
		if err := Decode(data, &req); err != nil {
			return nil, err
		}
		return vc.ToggleUpvote(ctx, req)
	})
	d.Register("register", func(ctx context.Context, data json.RawMessage) (interface{}, error) {
		var req controller.RegisterRequest
		if err := Decode(data, &req); err != nil {
			return nil, err
		}
		return ac.Register(ctx, req)
	})
	return d
}
