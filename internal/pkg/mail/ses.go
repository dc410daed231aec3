package mail

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

type sesAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SES is a Mail implementation backed by Amazon SES v2.
type SES struct {
	client           sesAPI
	defaultFrom      string
	configurationSet string
}

// SESConfig configures SES client initialization.
type SESConfig struct {
	// Region is the AWS region.
	Region string
	// Endpoint overrides the AWS endpoint.
	Endpoint string
	// AccessKey is the static access key ID.
	AccessKey string
	// SecretKey is the static secret access key.
	SecretKey string
	// SessionToken is the optional session token.
	SessionToken string
	// ConfigurationSet is the optional SES configuration set name.
	ConfigurationSet string
	// From is the default sender when Message.From is empty.
	From string
}

// NewSES constructs an SES mail sender. Without static keys the default AWS
// credential chain is used.
func NewSES(ctx context.Context, opts SESConfig) (*SES, error) {
	cfgOpts := []func(*config.LoadOptions) error{}
	if opts.Region != "" {
		cfgOpts = append(cfgOpts, config.WithRegion(opts.Region))
	} else if opts.Endpoint != "" {
		cfgOpts = append(cfgOpts, config.WithRegion("us-east-1"))
	}
	if opts.AccessKey != "" || opts.SecretKey != "" {
		cfgOpts = append(cfgOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, opts.SessionToken),
		))
	}
	cfg, err := config.LoadDefaultConfig(ctx, cfgOpts...)
	if err != nil {
		return nil, err
	}
	client := sesv2.NewFromConfig(cfg, func(o *sesv2.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	})

	return newSESWithClient(client, opts.From, opts.ConfigurationSet), nil
}

func newSESWithClient(client sesAPI, defaultFrom, configurationSet string) *SES {
	return &SES{
		client:           client,
		defaultFrom:      defaultFrom,
		configurationSet: configurationSet,
	}
}

// Provider implements Mail.
func (*SES) Provider() Provider {
	return ProviderSES
}

// Send delivers the message through SES and returns the SES message id.
//
// With a TemplateID the stored SES template is rendered with the subject and
// bodies as template data instead of sending simple content.
func (s *SES) Send(ctx context.Context, msg Message) (string, error) {
	if len(msg.recipients()) == 0 {
		return "", providerError(ProviderSES, ErrNoRecipients)
	}

	from := resolveFrom(msg, s.defaultFrom)
	if from == "" {
		return "", providerError(ProviderSES, ErrNoSender)
	}

	content, err := sesContent(msg)
	if err != nil {
		return "", providerError(ProviderSES, err)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(from),
		Destination: &types.Destination{
			ToAddresses:  msg.To,
			CcAddresses:  msg.Cc,
			BccAddresses: msg.Bcc,
		},
		Content: content,
	}
	if s.configurationSet != "" {
		input.ConfigurationSetName = aws.String(s.configurationSet)
	}

	out, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return "", providerError(ProviderSES, err)
	}

	return aws.ToString(out.MessageId), nil
}

func sesContent(msg Message) (*types.EmailContent, error) {
	if msg.TemplateID != "" {
		data, err := json.Marshal(map[string]string{
			"subject": msg.Subject,
			"body":    msg.TextBody,
			"html":    msg.HTMLBody,
		})
		if err != nil {
			return nil, err
		}

		return &types.EmailContent{
			Template: &types.Template{
				TemplateName: aws.String(msg.TemplateID),
				TemplateData: aws.String(string(data)),
			},
		}, nil
	}

	body := &types.Body{}
	if msg.TextBody != "" {
		body.Text = &types.Content{Data: aws.String(msg.TextBody), Charset: aws.String("UTF-8")}
	}
	if msg.HTMLBody != "" {
		body.Html = &types.Content{Data: aws.String(msg.HTMLBody), Charset: aws.String("UTF-8")}
	}

	return &types.EmailContent{
		Simple: &types.Message{
			Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
			Body:    body,
		},
	}, nil
}

// Close implements io.Closer for interface compatibility.
func (*SES) Close() error {
	return nil
}
