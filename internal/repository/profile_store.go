// Package repository persists per-sender user profiles in DynamoDB.
// Every caller treats failures here as best-effort: a profile that
// cannot be read or written degrades personalization, never replies.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"oyunlag-bot/internal/domain"
)

const (
	skProfile         = "META#"
	maxInquiryHistory = 20
)

// dynamodbAPI is the minimal DynamoDB interface required by Store.
// Defined here for testability.
type dynamodbAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

// Store wraps a DynamoDB table of user profiles.
type Store struct {
	api       dynamodbAPI
	tableName string
	now       func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock injects a clock for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a profile Store.
func New(api dynamodbAPI, tableName string, opts ...Option) (*Store, error) {
	if api == nil {
		return nil, errors.New("repository: api must not be nil")
	}
	if strings.TrimSpace(tableName) == "" {
		return nil, errors.New("repository: table name must not be empty")
	}
	s := &Store{api: api, tableName: tableName, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// profilePK returns the DynamoDB partition key for a sender.
func profilePK(senderID string) string {
	return "PROFILE#" + senderID
}

// GetProfile loads a sender's profile. The second return is false when
// the sender has never been stored.
func (s *Store) GetProfile(ctx context.Context, senderID string) (domain.UserProfile, bool, error) {
	out, err := s.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key:       profileKey(senderID),
	})
	if err != nil {
		return domain.UserProfile{}, false, fmt.Errorf("repository: GetProfile get item: %w", err)
	}
	if out == nil || len(out.Item) == 0 {
		return domain.UserProfile{}, false, nil
	}
	profile, err := itemToProfile(out.Item)
	if err != nil {
		return domain.UserProfile{}, false, fmt.Errorf("repository: GetProfile decode: %w", err)
	}
	return profile, true, nil
}

// RecordInquiry appends a topic lookup to the sender's history and
// refreshes the name and activity fields. The read-modify-write is not
// atomic; concurrent events for one sender can lose an inquiry, which
// is acceptable for best-effort personalization data.
func (s *Store) RecordInquiry(ctx context.Context, senderID, name, topic string) error {
	profile, found, err := s.GetProfile(ctx, senderID)
	if err != nil {
		return fmt.Errorf("repository: RecordInquiry: %w", err)
	}

	nowStr := s.now().UTC().Format(time.RFC3339)
	if !found {
		profile = domain.UserProfile{
			PK:        profilePK(senderID),
			SK:        skProfile,
			SenderID:  senderID,
			FirstSeen: nowStr,
		}
	}
	if name != "" {
		profile.Name = name
	}
	profile.LastSeen = nowStr
	profile.LastTopic = topic
	profile.MessageCount++
	profile.Inquiries = append(profile.Inquiries, domain.Inquiry{Topic: topic, At: nowStr})
	if len(profile.Inquiries) > maxInquiryHistory {
		profile.Inquiries = profile.Inquiries[len(profile.Inquiries)-maxInquiryHistory:]
	}

	_, err = s.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      profileItem(profile),
	})
	if err != nil {
		return fmt.Errorf("repository: RecordInquiry put item: %w", err)
	}
	return nil
}

// SetEventNews flips the sender's event-news subscription flag.
func (s *Store) SetEventNews(ctx context.Context, senderID string, enabled bool) error {
	_, err := s.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(s.tableName),
		Key:              profileKey(senderID),
		UpdateExpression: aws.String("SET senderId = :sid, eventNews = :flag"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid":  &types.AttributeValueMemberS{Value: senderID},
			":flag": &types.AttributeValueMemberBOOL{Value: enabled},
		},
	})
	if err != nil {
		return fmt.Errorf("repository: SetEventNews: %w", err)
	}
	return nil
}

// RecordFAQFeedback increments the helpful or unhelpful counter for one
// FAQ entry on the sender's profile. UpdateExpression's ADD action only
// targets top-level attributes, not paths inside a map, so this uses
// the same read-modify-write flow as RecordInquiry.
func (s *Store) RecordFAQFeedback(ctx context.Context, senderID, faqID string, helpful bool) error {
	if strings.TrimSpace(faqID) == "" {
		return errors.New("repository: RecordFAQFeedback: faq id is required")
	}

	profile, found, err := s.GetProfile(ctx, senderID)
	if err != nil {
		return fmt.Errorf("repository: RecordFAQFeedback: %w", err)
	}

	nowStr := s.now().UTC().Format(time.RFC3339)
	if !found {
		profile = domain.UserProfile{
			PK:        profilePK(senderID),
			SK:        skProfile,
			SenderID:  senderID,
			FirstSeen: nowStr,
		}
	}
	profile.LastSeen = nowStr
	if helpful {
		if profile.FAQHelpful == nil {
			profile.FAQHelpful = make(map[string]int)
		}
		profile.FAQHelpful[faqID]++
	} else {
		if profile.FAQUnhelpful == nil {
			profile.FAQUnhelpful = make(map[string]int)
		}
		profile.FAQUnhelpful[faqID]++
	}

	_, err = s.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      profileItem(profile),
	})
	if err != nil {
		return fmt.Errorf("repository: RecordFAQFeedback put item: %w", err)
	}
	return nil
}

func profileKey(senderID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: profilePK(senderID)},
		"SK": &types.AttributeValueMemberS{Value: skProfile},
	}
}

func profileItem(p domain.UserProfile) map[string]types.AttributeValue {
	inquiries := make([]types.AttributeValue, 0, len(p.Inquiries))
	for _, inq := range p.Inquiries {
		inquiries = append(inquiries, &types.AttributeValueMemberM{
			Value: map[string]types.AttributeValue{
				"topic": &types.AttributeValueMemberS{Value: inq.Topic},
				"at":    &types.AttributeValueMemberS{Value: inq.At},
			},
		})
	}
	item := map[string]types.AttributeValue{
		"PK":           &types.AttributeValueMemberS{Value: p.PK},
		"SK":           &types.AttributeValueMemberS{Value: p.SK},
		"senderId":     &types.AttributeValueMemberS{Value: p.SenderID},
		"name":         &types.AttributeValueMemberS{Value: p.Name},
		"firstSeen":    &types.AttributeValueMemberS{Value: p.FirstSeen},
		"lastSeen":     &types.AttributeValueMemberS{Value: p.LastSeen},
		"lastTopic":    &types.AttributeValueMemberS{Value: p.LastTopic},
		"eventNews":    &types.AttributeValueMemberBOOL{Value: p.EventNews},
		"messageCount": &types.AttributeValueMemberN{Value: strconv.Itoa(p.MessageCount)},
		"inquiries":    &types.AttributeValueMemberL{Value: inquiries},
	}
	if len(p.FAQHelpful) > 0 {
		item["faqHelpful"] = counterMap(p.FAQHelpful)
	}
	if len(p.FAQUnhelpful) > 0 {
		item["faqUnhelpful"] = counterMap(p.FAQUnhelpful)
	}
	return item
}

func counterMap(counters map[string]int) types.AttributeValue {
	m := make(map[string]types.AttributeValue, len(counters))
	for id, n := range counters {
		m[id] = &types.AttributeValueMemberN{Value: strconv.Itoa(n)}
	}
	return &types.AttributeValueMemberM{Value: m}
}

func itemToProfile(item map[string]types.AttributeValue) (domain.UserProfile, error) {
	pk, err := strAttr(item, "PK")
	if err != nil {
		return domain.UserProfile{}, err
	}
	sk, err := strAttr(item, "SK")
	if err != nil {
		return domain.UserProfile{}, err
	}
	senderID, err := strAttr(item, "senderId")
	if err != nil {
		return domain.UserProfile{}, err
	}

	profile := domain.UserProfile{
		PK:       pk,
		SK:       sk,
		SenderID: senderID,
	}
	profile.Name, _ = strAttr(item, "name")           // allow empty
	profile.FirstSeen, _ = strAttr(item, "firstSeen") // allow empty
	profile.LastSeen, _ = strAttr(item, "lastSeen")   // allow empty
	profile.LastTopic, _ = strAttr(item, "lastTopic") // allow empty
	profile.MessageCount, _ = intAttr(item, "messageCount")

	if v, ok := item["eventNews"].(*types.AttributeValueMemberBOOL); ok {
		profile.EventNews = v.Value
	}
	if v, ok := item["inquiries"].(*types.AttributeValueMemberL); ok {
		for _, raw := range v.Value {
			m, ok := raw.(*types.AttributeValueMemberM)
			if !ok {
				continue
			}
			topic, _ := strAttr(m.Value, "topic")
			at, _ := strAttr(m.Value, "at")
			profile.Inquiries = append(profile.Inquiries, domain.Inquiry{Topic: topic, At: at})
		}
	}
	profile.FAQHelpful = decodeCounters(item, "faqHelpful")
	profile.FAQUnhelpful = decodeCounters(item, "faqUnhelpful")
	return profile, nil
}

func decodeCounters(item map[string]types.AttributeValue, key string) map[string]int {
	v, ok := item[key].(*types.AttributeValueMemberM)
	if !ok || len(v.Value) == 0 {
		return nil
	}
	counters := make(map[string]int, len(v.Value))
	for id, raw := range v.Value {
		n, ok := raw.(*types.AttributeValueMemberN)
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(n.Value)
		if err != nil {
			continue
		}
		counters[id] = parsed
	}
	return counters
}

func strAttr(item map[string]types.AttributeValue, key string) (string, error) {
	v, ok := item[key]
	if !ok {
		return "", fmt.Errorf("repository: missing attribute %q", key)
	}
	s, ok := v.(*types.AttributeValueMemberS)
	if !ok {
		return "", fmt.Errorf("repository: attribute %q is not a string", key)
	}
	return s.Value, nil
}

func intAttr(item map[string]types.AttributeValue, key string) (int, error) {
	v, ok := item[key]
	if !ok {
		return 0, fmt.Errorf("repository: missing attribute %q", key)
	}
	n, ok := v.(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("repository: attribute %q is not a number", key)
	}
	parsed, err := strconv.Atoi(n.Value)
	if err != nil {
		return 0, fmt.Errorf("repository: parse attribute %q: %w", key, err)
	}
	return parsed, nil
}
