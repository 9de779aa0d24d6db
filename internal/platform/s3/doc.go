// Package s3 produces links to deployment assets stored in S3.
//
// Links are presigned locally from the session credentials; no request is
// sent to AWS.
package s3
