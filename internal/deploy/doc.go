// Package deploy simulates provisioning an application on AWS.
//
// [Plan] turns a [config.DeployConfig] into ordered phases. Phases for
// disabled services are marked skipped. A [Runner] walks the plan,
// provisioning the resources of each phase in parallel with
// [async.Run] and reporting [Event] values on a channel. Each resource
// takes a fixed, context-cancellable delay; nothing is sent to AWS.
//
// On success the runner returns [Details]: endpoints, resource names and
// a presigned asset link for the bucket.
package deploy
