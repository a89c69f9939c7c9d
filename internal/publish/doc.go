// Package publish uploads a directory of rendered pages to an S3 bucket.
//
// Every object in a run is tagged with a deploy ID and timestamp so a
// deployment can be identified in the bucket afterwards. Content types are
// derived from file extensions.
//
// # Usage
//
//	client := publish.NewClient("us-east-1")
//	pub := publish.New(client, publish.Options{Bucket: "my-site"})
//	result, err := pub.Publish(ctx, "dist")
package publish
