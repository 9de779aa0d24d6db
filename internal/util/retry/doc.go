// Package retry retries operations that fail transiently.
//
// [Do] runs an operation with exponential backoff between attempts. Errors
// marked with [Fatal] and context cancellation stop it immediately. The
// deploy runner uses it for each simulated resource.
package retry
