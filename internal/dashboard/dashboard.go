// Package dashboard provides the deployment overview: deployments, stats
// cards and the recent activity feed. The data is fixed.
package dashboard

// Status is the state of a deployment.
type Status string

// Deployment statuses.
const (
	StatusSuccess    Status = "success"
	StatusFailed     Status = "failed"
	StatusInProgress Status = "in-progress"
	StatusPending    Status = "pending"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusSuccess, StatusInProgress, StatusPending, StatusFailed}

// Deployment is an application deployed through launchpad.
type Deployment struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Status     Status `json:"status"`
	TechStack  string `json:"techStack"`
	URL        string `json:"url"`
	LastDeploy string `json:"lastDeploy"`
	Region     string `json:"region"`

	// Progress is the completion percentage of an in-progress deploy.
	Progress int `json:"progress,omitempty"`
}

// Trend is the direction of a stat change.
type Trend string

// Trends.
const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// Stat is a dashboard card.
type Stat struct {
	Title       string `json:"title"`
	Value       string `json:"value"`
	Change      string `json:"change"`
	Trend       Trend  `json:"trend"`
	Description string `json:"description"`
}

// Activity is an entry of the recent activity feed.
type Activity struct {
	Action  string `json:"action"`
	Project string `json:"project"`
	Time    string `json:"time"`
	Status  Status `json:"status"`
}

// Summary counts deployments per status.
type Summary struct {
	Total    int            `json:"total"`
	ByStatus map[Status]int `json:"byStatus"`
}

// Count returns the number of deployments with status s.
func (s Summary) Count(status Status) int {
	return s.ByStatus[status]
}

// Snapshot is everything the dashboard shows.
type Snapshot struct {
	Deployments []Deployment `json:"deployments"`
	Stats       []Stat       `json:"stats"`
	Activity    []Activity   `json:"activity"`
	Summary     Summary      `json:"summary"`
}

// Load returns the current dashboard.
func Load() Snapshot {
	deployments := Deployments()
	return Snapshot{
		Deployments: deployments,
		Stats:       Stats(),
		Activity:    RecentActivity(),
		Summary:     Summarize(deployments),
	}
}

// Summarize counts deployments per status. Every known status is present in
// the result, with zero if unused.
func Summarize(deployments []Deployment) Summary {
	s := Summary{ByStatus: make(map[Status]int, len(Statuses))}
	for _, st := range Statuses {
		s.ByStatus[st] = 0
	}
	for _, d := range deployments {
		s.ByStatus[d.Status]++
		s.Total++
	}
	return s
}

// Deployments returns the deployments list.
func Deployments() []Deployment {
	return []Deployment{
		{
			ID:         1,
			Name:       "my-react-app",
			Status:     StatusSuccess,
			TechStack:  "React.js",
			URL:        "https://my-react-app.aws.com",
			LastDeploy: "2 hours ago",
			Region:     "us-east-1",
		},
		{
			ID:         2,
			Name:       "api-service",
			Status:     StatusInProgress,
			TechStack:  "Node.js",
			URL:        "Deploying...",
			LastDeploy: "Deploying now",
			Region:     "us-west-2",
			Progress:   75,
		},
		{
			ID:         3,
			Name:       "vue-dashboard",
			Status:     StatusFailed,
			TechStack:  "Vue.js",
			URL:        "Deployment failed",
			LastDeploy: "1 day ago",
			Region:     "eu-west-1",
		},
	}
}

// Stats returns the stats cards.
func Stats() []Stat {
	return []Stat{
		{Title: "Total Deployments", Value: "24", Change: "+12%", Trend: TrendUp, Description: "from last month"},
		{Title: "Success Rate", Value: "96.8%", Change: "+2.4%", Trend: TrendUp, Description: "from last month"},
		{Title: "Avg Deploy Time", Value: "4.2min", Change: "-0.8min", Trend: TrendUp, Description: "faster than last month"},
		{Title: "Active Projects", Value: "8", Change: "+2", Trend: TrendUp, Description: "new this month"},
	}
}

// RecentActivity returns the activity feed, newest first.
func RecentActivity() []Activity {
	return []Activity{
		{Action: "Deployment completed", Project: "my-react-app", Time: "2 hours ago", Status: StatusSuccess},
		{Action: "Deployment started", Project: "api-service", Time: "3 hours ago", Status: StatusInProgress},
		{Action: "GitHub repository connected", Project: "vue-dashboard", Time: "1 day ago", Status: StatusSuccess},
		{Action: "AWS credentials validated", Project: "my-react-app", Time: "2 days ago", Status: StatusSuccess},
	}
}
