package labels

// Tag keys.
const (
	// KeyApp identifies which application a resource belongs to
	KeyApp = "launchpad.dev/app"

	// KeyEnvironment is the deployment stage
	KeyEnvironment = "launchpad.dev/environment"

	// KeyPhase is the deploy phase that created the resource
	KeyPhase = "launchpad.dev/phase"

	// KeyRepository is the source repository as owner/name
	KeyRepository = "launchpad.dev/repository"

	// KeyManagedBy identifies the management system
	KeyManagedBy = "launchpad.dev/managed-by"
)

// Tag values.
const (
	ManagedByLaunchpad    = "launchpad"
	EnvironmentProduction = "production"
)

// TagBuilder provides a fluent interface for building resource tags.
type TagBuilder struct {
	tags map[string]string
}

// NewTagBuilder creates a builder with the app, manager and environment set.
func NewTagBuilder(app string) *TagBuilder {
	return &TagBuilder{
		tags: map[string]string{
			KeyApp:         app,
			KeyManagedBy:   ManagedByLaunchpad,
			KeyEnvironment: EnvironmentProduction,
		},
	}
}

// WithPhase adds the deploy phase.
func (tb *TagBuilder) WithPhase(phase string) *TagBuilder {
	tb.tags[KeyPhase] = phase
	return tb
}

// WithRepository adds the repository when it is known.
func (tb *TagBuilder) WithRepository(repo string) *TagBuilder {
	if repo != "" {
		tb.tags[KeyRepository] = repo
	}
	return tb
}

// Merge adds all tags from extra, overriding existing keys.
func (tb *TagBuilder) Merge(extra map[string]string) *TagBuilder {
	for k, v := range extra {
		tb.tags[k] = v
	}
	return tb
}

// Build returns a copy of the tags.
func (tb *TagBuilder) Build() map[string]string {
	result := make(map[string]string, len(tb.tags))
	for k, v := range tb.tags {
		result[k] = v
	}
	return result
}

// FilterForApp returns the tag filter matching every resource of app.
func FilterForApp(app string) string {
	return "tag:" + KeyApp + "=" + app
}
