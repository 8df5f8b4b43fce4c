package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/adamromayor/HackerNews/controller"

	"github.com/stretchr/testify/assert"
)

func TestHandle(t *testing.T) {
	assert := assert.New(t)
	d := New()
	var gotData string
	d.Register("echo", func(ctx context.Context, data json.RawMessage) (interface{}, error) {
		gotData = string(data)
		return "true", nil
	})

	res, err := d.Handle(context.Background(), Request{
		Function: "echo",
		Data:     json.RawMessage(`{"userID":"alice"}`),
	})
	if err != nil {
		t.Fatalf("Error: %s", err)
	}
	assert.Equal("true", res)
	assert.Equal(`{"userID":"alice"}`, gotData)
}

func TestHandleUnknownFunction(t *testing.T) {
	assert := assert.New(t)
	d := New()

	res, err := d.Handle(context.Background(), Request{Function: "nope"})
	assert.Nil(res)
	assert.Error(err)
}

func TestHandleError(t *testing.T) {
	assert := assert.New(t)
	d := New()
	d.Register("fail", func(ctx context.Context, data json.RawMessage) (interface{}, error) {
		return nil, fmt.Errorf("store unreachable")
	})

	res, err := d.Handle(context.Background(), Request{Function: "fail"})
	assert.Nil(res)
	assert.Error(err)
}

func TestDecode(t *testing.T) {
	assert := assert.New(t)
	var req controller.EditPostRequest
	err := Decode(json.RawMessage(`{"userID":"alice","oldPostTitle":"a","newPostTitle":"b"}`), &req)
	if err != nil {
		t.Fatalf("Error: %s", err)
	}
	assert.Equal("alice", req.UserID)
	assert.Equal("a", req.OldPostTitle)
	assert.Equal("b", req.NewPostTitle)

	err = Decode(json.RawMessage(`{not json`), &req)
	assert.Error(err)

	var zero controller.EditPostRequest
	err = Decode(nil, &zero)
	if err != nil {
		t.Fatalf("Error: %s", err)
	}
	assert.Equal("", zero.UserID)
}

func TestNewAppRegistersWireNames(t *testing.T) {
	assert := assert.New(t)
	d := NewApp(&controller.PostController{}, &controller.VoteController{}, &controller.AccountController{})
	for _, name := range []string{"editPost", "deletePost", "verifyPost", "verifyUpVote", "updateUpVote", "register"} {
		_, ok := d.handlers[name]
		assert.True(ok, fmt.Sprintf("Function %q not registered", name))
	}
	assert.Len(d.handlers, 6)
}
