package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/labstack/gommon/log"
)

func loadProdEnv(ctx context.Context) error {
	region := envOr("AWS_REGION", defaultRegion)
	prefix := envOr("SSM_PREFIX", defaultSSMPrefix)

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return fmt.Errorf("unable to load SDK config: %w", err)
	}

	count, err := ExportParameters(ctx, ssm.NewFromConfig(cfg), prefix)
	if err != nil {
		return err
	}

	log.Debugf("loaded %d prod environment variables", count)
	return nil
}

// ExportParameters sets one environment variable per parameter under prefix,
// named after the parameter path relative to prefix.
func ExportParameters(ctx context.Context, client ssm.GetParametersByPathAPIClient, prefix string) (int, error) {
	pages := ssm.NewGetParametersByPathPaginator(client, &ssm.GetParametersByPathInput{
		Path:           aws.String(prefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})

	count := 0
	for pages.HasMorePages() {
		out, err := pages.NextPage(ctx)
		if err != nil {
			return count, fmt.Errorf("unable to load prod environment: %w", err)
		}

		for _, param := range out.Parameters {
			key := strings.TrimPrefix(aws.ToString(param.Name), prefix)
			if err = os.Setenv(key, aws.ToString(param.Value)); err != nil {
				return count, fmt.Errorf("unable to set environment variable %s: %w", key, err)
			}
			count++
		}
	}
	return count, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
