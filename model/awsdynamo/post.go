package awsdynamo

import (
	"errors"
	"strconv"
	"time"

	"github.com/adamromayor/HackerNews/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
)

var plog *logrus.Entry

func init() {
	plog = logrus.New().WithFields(logrus.Fields{
		"env": "DynamoPostPeer",
	})
}

type DynamoPostPeer struct {
	model *DynamoModel
}

func (pp *DynamoPostPeer) GetByID(id string) (*model.Post, error) {
	params := &dynamodb.GetItemInput{
		Key: map[string]*dynamodb.AttributeValue{
			"id": { // Required
				S: aws.String(id),
			},
		},
		TableName:      aws.String("posts"),
		ConsistentRead: aws.Bool(true),
	}
	resp, err := pp.model.db.GetItem(params)

	if err != nil {
		return nil, err
	}
	if len(resp.Item) == 0 {
		return nil, nil
	}

	p := &model.Post{
		Peer: pp,
	}
	err = unmarshalPost(p, resp.Item)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetByTitle resolves a post through the TitleIndex. Titles are unique by
// convention, if the index holds more than one match the first is taken.
// A missing title is not an error, the returned post is nil.
func (pp *DynamoPostPeer) GetByTitle(title string) (*model.Post, error) {
	params := &dynamodb.QueryInput{
		TableName:              aws.String("posts"),
		IndexName:              aws.String("TitleIndex"),
		KeyConditionExpression: aws.String("#title = :title"),
		ExpressionAttributeNames: map[string]*string{
			"#title": aws.String("title"),
		},
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":title": {
				S: aws.String(title),
			},
		},
		Limit: aws.Int64(1),
	}
	resp, err := pp.model.db.Query(params)
	if err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 {
		return nil, nil
	}
	item := resp.Items[0]
	if item["id"] == nil || item["id"].S == nil {
		return nil, errors.New("Field 'id' nil on TitleIndex item")
	}
	// The index projects keys only, fetch the full document.
	return pp.GetByID(*item["id"].S)
}

func (pp *DynamoPostPeer) NewPost(owner string) *model.Post {
	return &model.Post{
		Peer:     pp,
		ID:       uuid.NewV4().String(),
		Owner:    owner,
		Time:     time.Now(),
		Comments: []string{},
		IsNew:    true,
	}
}

func (pp *DynamoPostPeer) SaveNew(p *model.Post) error {
	if p == nil {
		return errors.New("Post is nil")
	}
	items := make(map[string]*dynamodb.AttributeValue)
	err := marshalPost(p, items)
	if err != nil {
		return err
	}
	params := &dynamodb.PutItemInput{
		Item:      items,
		TableName: aws.String("posts"),
	}
	_, err = pp.model.db.PutItem(params)

	if err != nil {
		return err
	}
	p.IsNew = false

	return nil
}

func (pp *DynamoPostPeer) UpdateTitle(id string, title string, ts time.Time) error {
	params := &dynamodb.UpdateItemInput{
		TableName: aws.String("posts"),
		Key: map[string]*dynamodb.AttributeValue{
			"id": {
				S: aws.String(id),
			},
		},
		UpdateExpression: aws.String("SET #title = :title, #time = :time"),
		ExpressionAttributeNames: map[string]*string{
			"#title": aws.String("title"),
			"#time":  aws.String("time"),
		},
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":title": {
				S: aws.String(title),
			},
			":time": {
				N: aws.String(strconv.FormatInt(ts.UnixNano(), 10)),
			},
		},
	}

	_, err := pp.model.db.UpdateItem(params)
	if err != nil {
		return err
	}
	return nil
}

// AddUpvotes adjusts the vote counter by n using the store's atomic ADD,
// the only field mutation here that is safe under concurrent callers.
func (pp *DynamoPostPeer) AddUpvotes(id string, n int64) error {
	params := &dynamodb.UpdateItemInput{
		TableName: aws.String("posts"),
		Key: map[string]*dynamodb.AttributeValue{
			"id": {
				S: aws.String(id),
			},
		},
		UpdateExpression: aws.String("ADD upvotes :n"),
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":n": {
				N: aws.String(strconv.FormatInt(n, 10)),
			},
		},
	}

	_, err := pp.model.db.UpdateItem(params)
	if err != nil {
		return err
	}
	return nil
}

func (pp *DynamoPostPeer) Remove(p *model.Post) error {
	if p == nil {
		return errors.New("Post is nil")
	}
	params := &dynamodb.DeleteItemInput{
		Key: map[string]*dynamodb.AttributeValue{
			"id": {
				S: aws.String(p.ID),
			},
		},
		TableName: aws.String("posts"),
	}
	_, err := pp.model.db.DeleteItem(params)
	if err != nil {
		return err
	}
	return nil
}

func marshalPost(p *model.Post, items map[string]*dynamodb.AttributeValue) error {
	if p == nil {
		return errors.New("Undefined post")
	}
	items["id"] = &dynamodb.AttributeValue{S: aws.String(p.ID)}
	items["owner"] = &dynamodb.AttributeValue{S: aws.String(p.Owner)}
	if p.Title != "" {
		items["title"] = &dynamodb.AttributeValue{S: aws.String(p.Title)}
	}
	if p.URL != "" {
		items["url"] = &dynamodb.AttributeValue{S: aws.String(p.URL)}
	}
	items["time"] = &dynamodb.AttributeValue{N: aws.String(strconv.FormatInt(p.Time.UnixNano(), 10))}
	items["upvotes"] = &dynamodb.AttributeValue{N: aws.String(strconv.FormatInt(p.Upvotes, 10))}
	items["comments"] = &dynamodb.AttributeValue{L: marshalStringList(p.Comments)}
	items["num_comments"] = &dynamodb.AttributeValue{N: aws.String(strconv.FormatInt(p.NumComments, 10))}

	return nil
}

func unmarshalPost(p *model.Post, items map[string]*dynamodb.AttributeValue) error {
	if p == nil {
		return errors.New("Undefined post")
	}
	if v, ok := items["id"]; ok {
		if v.S != nil {
			p.ID = *v.S
		}
	}
	if v, ok := items["owner"]; ok {
		if v.S != nil {
			p.Owner = *v.S
		}
	}
	if v, ok := items["title"]; ok {
		if v.S != nil {
			p.Title = *v.S
		}
	}
	if v, ok := items["url"]; ok {
		if v.S != nil {
			p.URL = *v.S
		}
	}
	if v, ok := items["time"]; ok {
		if v.N != nil {
			ts64, err := strconv.ParseInt(*v.N, 10, 64)
			if err == nil {
				p.Time = time.Unix(0, ts64)
			} else {
				plog.Warnf("Unable to parse 'time' on %s: %s", items["id"], err)
			}
		}
	}
	if v, ok := items["upvotes"]; ok {
		if v.N != nil {
			n, err := strconv.ParseInt(*v.N, 10, 64)
			if err == nil {
				p.Upvotes = n
			} else {
				plog.Warnf("Unable to parse 'upvotes' on %s: %s", items["id"], err)
			}
		}
	}
	if v, ok := items["comments"]; ok {
		p.Comments = unmarshalStringList(v.L)
	}
	if v, ok := items["num_comments"]; ok {
		if v.N != nil {
			n, err := strconv.ParseInt(*v.N, 10, 64)
			if err == nil {
				p.NumComments = n
			} else {
				plog.Warnf("Unable to parse 'num_comments' on %s: %s", items["id"], err)
			}
		}
	}
	return nil
}
