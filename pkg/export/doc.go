// Package export publishes rendered snapshots of a woby document to S3.
//
// A snapshot is written twice: under a timestamped key and as the index of
// its name, so the latest version has a stable URL.
//
//	client := export.NewS3Client("eu-west-1")
//	pub, err := export.New(client, "my-site", export.WithPrefix("snapshots"))
//	key, err := pub.Publish(ctx, "counter", render.PageData{Title: "Counter", Body: doc.Body()})
package export
