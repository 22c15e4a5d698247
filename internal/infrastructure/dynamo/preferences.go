package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/MightyBhargava/LegalChain-sub001/internal/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// PreferenceRepo persists per-user client settings (dark mode, language).
type PreferenceRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewPreferenceRepo(client *dynamodb.Client, tableName string) *PreferenceRepo {
	return &PreferenceRepo{client: client, tableName: tableName}
}

func (r *PreferenceRepo) Put(ctx context.Context, p *domain.Preferences) error {
	p.UpdatedAt = time.Now().UTC()
	item, err := attributevalue.MarshalMap(p)
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// Get returns the stored preferences for userID, or ErrNotFound when the
// user has never saved any.
func (r *PreferenceRepo) Get(ctx context.Context, userID string) (*domain.Preferences, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("user_id", userID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("preferences not found: %w", domain.ErrNotFound)
	}
	var p domain.Preferences
	if err := attributevalue.UnmarshalMap(out.Item, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
