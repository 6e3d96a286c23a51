package main

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/danielnarey/modular-ui/internal/config"
	"github.com/danielnarey/modular-ui/pkg/publish"
)

func publishCmd() *cobra.Command {
	var (
		bucket string
		prefix string
		region string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish the demo page to S3",
		Long: `Render the built-in demo page and upload it to an S3 bucket.

Credentials are resolved the standard AWS way (environment,
shared config, instance role).

Examples:
  modui publish --bucket=my-site
  modui publish --bucket=my-site --prefix=preview/ --region=us-west-2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(cmd.Context(), bucket, prefix, region)
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "S3 bucket (default from modui.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Object key prefix (default from modui.json)")
	cmd.Flags().StringVar(&region, "region", "", "AWS region (default from modui.json)")

	return cmd
}

func runPublish(ctx context.Context, bucket, prefix, region string) error {
	cfg, err := config.LoadDir(".")
	if err != nil {
		return err
	}
	if bucket != "" {
		cfg.Publish.Bucket = bucket
	}
	if prefix != "" {
		cfg.Publish.Prefix = prefix
	}
	if region != "" {
		cfg.Publish.Region = region
	}

	if cfg.Publish.Bucket == "" {
		return errors.New("no bucket configured; pass --bucket or set publish.bucket in modui.json")
	}

	store, err := publish.OpenS3Store(ctx, cfg.Publish.Bucket, cfg.Publish.Prefix, cfg.Publish.Region)
	if err != nil {
		return err
	}

	program := demoProgram()
	page := program.View(program.Init())

	publisher := publish.New(store)
	if err := publisher.Page(ctx, "index.html", page); err != nil {
		return err
	}

	success("published to s3://%s/%sindex.html", cfg.Publish.Bucket, cfg.Publish.Prefix)
	return nil
}
