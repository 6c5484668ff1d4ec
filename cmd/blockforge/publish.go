package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/blockforge-dev/blockforge/pkg/publish"
)

func publishCmd() *cobra.Command {
	var (
		bucket       string
		prefix       string
		key          string
		region       string
		cacheControl string
		page         bool
		title        string
		useBlocks    bool
	)

	cmd := &cobra.Command{
		Use:   "publish [file]",
		Short: "Render a document and upload it to S3",
		Long: `Render a document and upload the markup to an S3 bucket.
Credentials are read from the standard AWS environment variables
(AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, AWS_SESSION_TOKEN).

Examples:
  blockforge publish --bucket=site --key=about.html page.json
  blockforge publish --bucket=site --prefix=posts/ --key=hello.html --blocks post.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args)
			if err != nil {
				return err
			}

			node, err := decodeInput(input, useBlocks)
			if err != nil {
				return err
			}

			markup, err := renderMarkup(node, false, page, title)
			if err != nil {
				return err
			}

			publisher := publish.New(newS3Client(region), publish.Config{
				Bucket:       bucket,
				Prefix:       prefix,
				CacheControl: cacheControl,
			})

			fullKey, err := publisher.Publish(cmd.Context(), key, markup)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "published s3://%s/%s\n", bucket, fullKey)
			return nil
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "Destination S3 bucket (required)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix for published objects")
	cmd.Flags().StringVar(&key, "key", "index.html", "Object key for the document")
	cmd.Flags().StringVar(&region, "region", "us-east-1", "AWS region")
	cmd.Flags().StringVar(&cacheControl, "cache-control", "", "Cache-Control header for the object")
	cmd.Flags().BoolVar(&page, "page", false, "Wrap the fragment in a full HTML document")
	cmd.Flags().StringVar(&title, "title", "", "Document title (with --page)")
	cmd.Flags().BoolVar(&useBlocks, "blocks", false, "Treat input as a block document")

	return cmd
}

// newS3Client builds an S3 client from the standard AWS environment
// variables.
func newS3Client(region string) *s3.Client {
	return s3.New(s3.Options{
		Region: region,
		Credentials: aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
			return aws.Credentials{
				AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
				SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
				SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
			}, nil
		}),
	})
}
