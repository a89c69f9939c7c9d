package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/htmlsmith-dev/htmlsmith/internal/config"
	"github.com/htmlsmith-dev/htmlsmith/internal/publish"
)

func publishCmd() *cobra.Command {
	var (
		bucket string
		region string
		prefix string
	)

	cmd := &cobra.Command{
		Use:   "publish [dir]",
		Short: "Upload the output directory to an S3 bucket",
		Long: `Upload every file in the output directory to a bucket.

Credentials are read from the conventional AWS environment variables.
Every object is tagged with a deploy ID so a run can be identified in
the bucket afterwards. An explicit directory argument overrides the
configured output directory.

Examples:
  htmlsmith publish
  htmlsmith publish build --bucket my-site
  htmlsmith publish --bucket my-site --region eu-west-1`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) > 0 {
				dir = args[0]
			}
			return runPublish(dir, bucket, region, prefix)
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "Destination bucket (default from htmlsmith.yaml)")
	cmd.Flags().StringVarP(&region, "region", "r", "", "Bucket region (default from htmlsmith.yaml)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Object key prefix (default from htmlsmith.yaml)")

	return cmd
}

func runPublish(dir, bucket, region, prefix string) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	if bucket != "" {
		cfg.Publish.Bucket = bucket
	}
	if region != "" {
		cfg.Publish.Region = region
	}
	if prefix != "" {
		cfg.Publish.Prefix = prefix
	}

	if cfg.Publish.Bucket == "" {
		return fmt.Errorf("no bucket configured; set publish.bucket or pass --bucket")
	}
	if cfg.Publish.Region == "" {
		cfg.Publish.Region = "us-east-1"
	}

	if dir == "" {
		dir = cfg.OutputPath()
	} else if !filepath.IsAbs(dir) {
		if abs, err := filepath.Abs(dir); err == nil {
			dir = abs
		}
	}
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("output directory %s not found; generate pages first", dir)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := publish.NewClient(cfg.Publish.Region)
	pub := publish.New(client, publish.Options{
		Bucket:       cfg.Publish.Bucket,
		Prefix:       cfg.Publish.Prefix,
		CacheControl: cfg.Publish.CacheControl,
		Logger:       slog.Default(),
	})

	info("Publishing %s to s3://%s", dir, cfg.Publish.Bucket)
	result, err := pub.Publish(ctx, dir)
	if err != nil {
		return err
	}

	success("Published %d files (%d bytes) in %s", result.Files, result.Bytes, result.Duration.Round(time.Millisecond))
	info("Deploy ID: %s", result.DeployID)
	return nil
}
