package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/woby-dev/woby/pkg/export"
	"github.com/woby-dev/woby/pkg/render"
)

func exportCmd(opts *options) *cobra.Command {
	var (
		bucket string
		prefix string
		region string
		name   string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Upload a rendered snapshot to S3",
		Long: `Render the demo application and upload the page to an S3 bucket.

The snapshot is stored under <prefix>/<name>/<timestamp>.html and
<prefix>/<name>/index.html. Credentials are read from
AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN.

Examples:
  woby export --bucket my-site
  woby export --bucket my-site --prefix snapshots --region eu-west-1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if bucket != "" {
				cfg.Export.Bucket = bucket
			}
			if prefix != "" {
				cfg.Export.Prefix = prefix
			}
			if region != "" {
				cfg.Export.Region = region
			}
			if cfg.Export.Bucket == "" {
				return fmt.Errorf("export: no bucket, pass --bucket or set export.bucket")
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg)

			pub, err := export.New(export.NewS3Client(cfg.Export.Region), cfg.Export.Bucket,
				export.WithPrefix(cfg.Export.Prefix),
				export.WithPretty(pretty || cfg.Render.Pretty),
				export.WithLogger(logger),
			)
			if err != nil {
				return err
			}

			doc, dispose, err := mountDemo(cfg, logger)
			if err != nil {
				return err
			}
			defer dispose()

			key, err := pub.Publish(cmd.Context(), name, render.PageData{Title: "woby", Body: doc.Body()})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "s3://%s/%s\n", cfg.Export.Bucket, key)
			return nil
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "Destination bucket (default from woby.yaml)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix")
	cmd.Flags().StringVar(&region, "region", "", "AWS region")
	cmd.Flags().StringVar(&name, "name", "demo", "Snapshot name")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the uploaded HTML")

	return cmd
}
