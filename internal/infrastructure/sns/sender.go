package sns

import (
	"context"

	"github.com/MightyBhargava/LegalChain-sub001/internal/config"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// PushSender publishes hearing reminders to mobile devices via AWS SNS.
// A device's push token is the SNS platform endpoint ARN registered by the
// client at sign-in.
type PushSender interface {
	SendPush(ctx context.Context, endpointARN, message string) error
	SendSMS(ctx context.Context, phone, message string) error
}

type sender struct {
	client *sns.Client
}

func NewSender(cfg *config.Config) (PushSender, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.SNSRegion),
	)
	if err != nil {
		return nil, err
	}
	return &sender{client: sns.NewFromConfig(awsCfg)}, nil
}

func (s *sender) SendPush(ctx context.Context, endpointARN, message string) error {
	_, err := s.client.Publish(ctx, &sns.PublishInput{
		TargetArn: &endpointARN,
		Message:   &message,
	})
	return err
}

func (s *sender) SendSMS(ctx context.Context, phone, message string) error {
	_, err := s.client.Publish(ctx, &sns.PublishInput{
		PhoneNumber: &phone,
		Message:     &message,
	})
	return err
}
