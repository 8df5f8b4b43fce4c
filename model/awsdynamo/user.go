package awsdynamo

import (
	"errors"

	"github.com/adamromayor/HackerNews/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/sirupsen/logrus"
)

var ulog *logrus.Entry

func init() {
	ulog = logrus.New().WithFields(logrus.Fields{
		"env": "DynamoUserPeer",
	})
}

type DynamoUserPeer struct {
	model *DynamoModel
}

// GetByID fetches the user document keyed by username.
// A missing document is not an error, the returned user is nil.
func (p *DynamoUserPeer) GetByID(id string) (*model.User, error) {
	params := &dynamodb.GetItemInput{
		Key: map[string]*dynamodb.AttributeValue{
			"id": { // Required
				S: aws.String(id),
			},
		},
		TableName:      aws.String("users"),
		ConsistentRead: aws.Bool(true),
	}
	resp, err := p.model.db.GetItem(params)

	if err != nil {
		return nil, err
	}
	if len(resp.Item) == 0 {
		return nil, nil
	}

	u := &model.User{
		Peer: p,
	}
	err = unmarshalUser(u, resp.Item)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// GetByLikedPost returns every user whose liked_posts list contains the
// given post id. The users table has no index on list membership, so this
// is a filtered scan.
func (p *DynamoUserPeer) GetByLikedPost(postID string) ([]*model.User, error) {
	return p.getByLikedPost(postID, nil)
}

func (p *DynamoUserPeer) getByLikedPost(postID string, lastKey map[string]*dynamodb.AttributeValue) ([]*model.User, error) {
	params := &dynamodb.ScanInput{
		TableName:        aws.String("users"),
		FilterExpression: aws.String("contains(liked_posts, :pid)"),
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":pid": {
				S: aws.String(postID),
			},
		},
	}
	if lastKey != nil {
		params.ExclusiveStartKey = lastKey
	}
	resp, err := p.model.db.Scan(params)
	if err != nil {
		return nil, err
	}
	users := make([]*model.User, 0, len(resp.Items))
	for _, item := range resp.Items {
		u := &model.User{
			Peer: p,
		}
		if err := unmarshalUser(u, item); err != nil {
			ulog.Warnf("Error unmarshal user: %#v", item)
			continue
		}
		users = append(users, u)
	}
	if resp.LastEvaluatedKey != nil {
		newusers, err := p.getByLikedPost(postID, resp.LastEvaluatedKey)
		if err != nil {
			return nil, err
		}
		users = append(users, newusers...)
	}
	return users, nil
}

func (p *DynamoUserPeer) NewUser(id string) *model.User {
	return &model.User{
		Peer:       p,
		ID:         id,
		Posts:      []string{},
		LikedPosts: []string{},
	}
}

func (p *DynamoUserPeer) SaveNew(u *model.User) error {
	if u == nil {
		return errors.New("User is nil")
	}
	items := make(map[string]*dynamodb.AttributeValue)
	err := marshalUser(u, items)
	if err != nil {
		return err
	}
	params := &dynamodb.PutItemInput{
		Item:      items,
		TableName: aws.String("users"),
	}
	_, err = p.model.db.PutItem(params)

	if err != nil {
		return err
	}

	return nil
}

func (p *DynamoUserPeer) UpdatePosts(id string, posts []string) error {
	return p.updateList(id, "posts", posts)
}

func (p *DynamoUserPeer) UpdateLikedPosts(id string, likedPosts []string) error {
	return p.updateList(id, "liked_posts", likedPosts)
}

func (p *DynamoUserPeer) updateList(id, field string, ids []string) error {
	params := &dynamodb.UpdateItemInput{
		TableName: aws.String("users"),
		Key: map[string]*dynamodb.AttributeValue{
			"id": {
				S: aws.String(id),
			},
		},
		UpdateExpression: aws.String("SET #f = :ids"),
		ExpressionAttributeNames: map[string]*string{
			"#f": aws.String(field),
		},
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":ids": {
				L: marshalStringList(ids),
			},
		},
	}

	_, err := p.model.db.UpdateItem(params)
	if err != nil {
		return err
	}
	return nil
}

func marshalUser(u *model.User, items map[string]*dynamodb.AttributeValue) error {
	if u == nil {
		return errors.New("Undefined user")
	}
	items["id"] = &dynamodb.AttributeValue{S: aws.String(u.ID)}
	items["posts"] = &dynamodb.AttributeValue{L: marshalStringList(u.Posts)}
	items["liked_posts"] = &dynamodb.AttributeValue{L: marshalStringList(u.LikedPosts)}

	return nil
}

func unmarshalUser(u *model.User, items map[string]*dynamodb.AttributeValue) error {
	if u == nil {
		return errors.New("Undefined user")
	}
	if v, ok := items["id"]; ok {
		if v.S != nil {
			u.ID = *v.S
		}
	}
	if v, ok := items["posts"]; ok {
		u.Posts = unmarshalStringList(v.L)
	}
	if v, ok := items["liked_posts"]; ok {
		u.LikedPosts = unmarshalStringList(v.L)
	}
	return nil
}

func marshalStringList(ids []string) []*dynamodb.AttributeValue {
	list := make([]*dynamodb.AttributeValue, 0, len(ids))
	for _, id := range ids {
		list = append(list, &dynamodb.AttributeValue{S: aws.String(id)})
	}
	return list
}

func unmarshalStringList(list []*dynamodb.AttributeValue) []string {
	ids := make([]string, 0, len(list))
	for _, v := range list {
		if v.S != nil {
			ids = append(ids, *v.S)
		}
	}
	return ids
}
