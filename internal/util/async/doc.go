// Package async provides utilities for parallel task execution with
// error collection.
//
// The [Run] function executes multiple operations concurrently, stops the
// rest once one fails and returns the failures. The deploy runner uses it to provision the
// independent services of a phase side by side.
package async
