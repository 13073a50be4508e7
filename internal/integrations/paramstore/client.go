// Package paramstore resolves secrets from AWS SSM Parameter Store.
// Every secret can also arrive via environment variable; the env value
// always wins so local runs never need AWS credentials.
package paramstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// ssmAPI is the minimal AWS SSM interface required by Client.
// *ssm.Client from aws-sdk-go-v2 satisfies this interface.
type ssmAPI interface {
	GetParameter(ctx context.Context, in *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// Getter is the interface that wraps GetParameter. Consumers should
// depend on this interface rather than the concrete *Client so they
// remain testable without real AWS calls.
type Getter interface {
	GetParameter(ctx context.Context, name string) (string, error)
}

// Client wraps an AWS SSM API for parameter retrieval under one prefix.
type Client struct {
	api    ssmAPI
	prefix string
}

// New creates a Client reading parameters under the given prefix.
func New(api ssmAPI, prefix string) (*Client, error) {
	if api == nil {
		return nil, errors.New("paramstore: api must not be nil")
	}
	prefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return nil, errors.New("paramstore: prefix must not be empty")
	}
	return &Client{api: api, prefix: prefix}, nil
}

// GetParameter fetches one decrypted parameter by name relative to the
// configured prefix.
func (c *Client) GetParameter(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("paramstore: name is required")
	}
	full := c.prefix + "/" + strings.TrimLeft(name, "/")

	withDecryption := true
	out, err := c.api.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           &full,
		WithDecryption: &withDecryption,
	})
	if err != nil {
		return "", fmt.Errorf("paramstore: get parameter %q: %w", full, err)
	}
	if out == nil || out.Parameter == nil || out.Parameter.Value == nil {
		return "", errors.New("paramstore: parameter missing value")
	}
	return *out.Parameter.Value, nil
}

// Resolve returns envValue when set, otherwise fetches the named
// parameter. With a nil Getter and an empty envValue it yields "", nil
// so optional secrets remain optional.
func Resolve(ctx context.Context, getter Getter, envValue, name string) (string, error) {
	if strings.TrimSpace(envValue) != "" {
		return envValue, nil
	}
	if getter == nil {
		return "", nil
	}
	return getter.GetParameter(ctx, name)
}
