package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/smithy-go/logging"
	"github.com/go-logr/logr"
)

// credentialSource tags credentials handed to the SDK.
const credentialSource = "LaunchpadVault"

// Session is an SDK configuration backed by validated credentials. The
// secret key stays sealed until the SDK asks for it.
type Session struct {
	Region      string
	AccessKeyID string

	vault *Vault
	cfg   aws.Config
}

// NewSession seals the secret key and builds an aws.Config for the region.
// Loading the config only reads local files and environment.
func NewSession(ctx context.Context, creds Credentials) (*Session, error) {
	if err := creds.Check(); err != nil {
		return nil, err
	}

	vault, err := Seal(creds.SecretAccessKey)
	if err != nil {
		return nil, err
	}

	s := &Session{
		Region:      creds.Region,
		AccessKeyID: creds.AccessKeyID,
		vault:       vault,
	}

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(creds.Region),
		config.WithCredentialsProvider(aws.NewCredentialsCache(aws.CredentialsProviderFunc(s.retrieve))),
		config.WithLogger(sdkLogger(logr.FromContextOrDiscard(ctx))),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	s.cfg = cfg

	return s, nil
}

// Config returns the SDK configuration.
func (s *Session) Config() aws.Config {
	return s.cfg
}

// retrieve unseals the secret and hands the pair to a static provider,
// which rejects an empty key.
func (s *Session) retrieve(ctx context.Context) (aws.Credentials, error) {
	secret, err := s.vault.Open()
	if err != nil {
		return aws.Credentials{}, err
	}
	creds, err := credentials.NewStaticCredentialsProvider(s.AccessKeyID, secret, "").Retrieve(ctx)
	if err != nil {
		return aws.Credentials{}, fmt.Errorf("failed to resolve credentials: %w", err)
	}
	creds.Source = credentialSource
	return creds, nil
}

// sdkLogger forwards SDK log output to log. Debug output goes to V(1).
func sdkLogger(log logr.Logger) logging.Logger {
	log = log.WithName("aws-sdk")
	return logging.LoggerFunc(func(classification logging.Classification, format string, v ...interface{}) {
		msg := fmt.Sprintf(format, v...)
		if classification == logging.Warn {
			log.Info(msg, "classification", string(classification))
			return
		}
		log.V(1).Info(msg, "classification", string(classification))
	})
}
