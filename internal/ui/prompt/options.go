package prompt

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/imamik/launchpad/internal/config"
	"github.com/imamik/launchpad/internal/flow"
	awsInternal "github.com/imamik/launchpad/internal/platform/aws"
	githubInternal "github.com/imamik/launchpad/internal/platform/github"
)

// DBEngineOptions lists the database engines offered in the deploy step.
var DBEngineOptions = []huh.Option[config.DBEngine]{
	huh.NewOption("PostgreSQL", config.DBEnginePostgreSQL),
	huh.NewOption("MySQL", config.DBEngineMySQL),
}

// RegionOptions converts the supported regions to huh options.
func RegionOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(awsInternal.Regions))
	for _, r := range awsInternal.Regions {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s (%s)", r.Name, r.Code), r.Code))
	}
	return opts
}

// ChoiceOptions converts flow choices to options keyed by their index.
func ChoiceOptions(choices []flow.Choice) []huh.Option[int] {
	opts := make([]huh.Option[int], 0, len(choices))
	for i, c := range choices {
		opts = append(opts, huh.NewOption(c.Label, i))
	}
	return opts
}

// RepositoryOptions converts catalog entries to options keyed by id.
func RepositoryOptions(repos []githubInternal.Repository) []huh.Option[int64] {
	opts := make([]huh.Option[int64], 0, len(repos))
	for _, r := range repos {
		label := fmt.Sprintf("%s  %s · %s · %d stars · %s",
			r.GetName(), r.Visibility(), r.GetLanguage(), r.GetStargazersCount(), r.LastUpdated)
		opts = append(opts, huh.NewOption(label, r.GetID()))
	}
	return opts
}

// searchOptions runs search for the select's options. An empty result
// or a search error yields a single placeholder with id 0.
func searchOptions(search flow.SearchFunc, term string) []huh.Option[int64] {
	repos, err := search(term)
	if err != nil {
		return []huh.Option[int64]{huh.NewOption(err.Error(), int64(0))}
	}
	if len(repos) == 0 {
		return []huh.Option[int64]{huh.NewOption(fmt.Sprintf("No repositories match %q", term), int64(0))}
	}
	return RepositoryOptions(repos)
}
