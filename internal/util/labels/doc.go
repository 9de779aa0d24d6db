// Package labels builds the tags applied to AWS resources of a deploy.
//
// All keys use the launchpad.dev prefix. A builder starts from the app
// slug and adds the repository and phase of each resource.
package labels
