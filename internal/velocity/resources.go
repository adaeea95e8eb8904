package velocity

import (
	"fmt"
	"net/url"

	"github.com/jonathan/gap-analyzer/internal/types"
)

// Catalog maps canonical skill names to curated learning resources.
// Lookup never fails: skills absent from the catalog get a generic
// search-link pair.
type Catalog map[string][]types.Resource

// Lookup returns the curated resources for a skill, or the generic
// fallback pair when the skill is not in the catalog.
func (c Catalog) Lookup(skill string) []types.Resource {
	if resources, ok := c[skill]; ok {
		return resources
	}
	return fallbackResources(skill)
}

// fallbackResources builds the two-entry search-link fallback for skills
// without curated entries.
func fallbackResources(skill string) []types.Resource {
	q := url.QueryEscape(skill)
	return []types.Resource{
		{
			Title:    fmt.Sprintf("%s tutorials and guides", skill),
			URL:      "https://www.google.com/search?q=learn+" + q,
			Type:     types.ResourceArticle,
			Duration: "self-paced",
		},
		{
			Title:    fmt.Sprintf("%s video courses", skill),
			URL:      "https://www.youtube.com/results?search_query=" + q + "+tutorial",
			Type:     types.ResourceVideo,
			Duration: "self-paced",
		},
	}
}

// builtinCatalog covers the skills that show up most often in gap analyses.
// Everything else falls through to the search-link pair.
var builtinCatalog = Catalog{
	"python": {
		{Title: "Official Python Tutorial", URL: "https://docs.python.org/3/tutorial/", Type: types.ResourceDocs, Duration: "10h"},
		{Title: "Automate the Boring Stuff", URL: "https://automatetheboringstuff.com/", Type: types.ResourceCourse, Duration: "20h"},
		{Title: "Build a CLI tool in Python", URL: "https://realpython.com/command-line-interfaces-python-argparse/", Type: types.ResourceProject, Duration: "6h"},
	},
	"go": {
		{Title: "A Tour of Go", URL: "https://go.dev/tour/", Type: types.ResourceDocs, Duration: "6h"},
		{Title: "Go by Example", URL: "https://gobyexample.com/", Type: types.ResourceArticle, Duration: "8h"},
		{Title: "Build a REST API in Go", URL: "https://go.dev/doc/tutorial/web-service-gin", Type: types.ResourceProject, Duration: "5h"},
	},
	"javascript": {
		{Title: "MDN JavaScript Guide", URL: "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Guide", Type: types.ResourceDocs, Duration: "12h"},
		{Title: "JavaScript.info", URL: "https://javascript.info/", Type: types.ResourceCourse, Duration: "25h"},
	},
	"typescript": {
		{Title: "TypeScript Handbook", URL: "https://www.typescriptlang.org/docs/handbook/intro.html", Type: types.ResourceDocs, Duration: "8h"},
		{Title: "Total TypeScript tutorials", URL: "https://www.totaltypescript.com/tutorials", Type: types.ResourceCourse, Duration: "12h"},
	},
	"react": {
		{Title: "React Docs: Learn React", URL: "https://react.dev/learn", Type: types.ResourceDocs, Duration: "10h"},
		{Title: "Build a tic-tac-toe game", URL: "https://react.dev/learn/tutorial-tic-tac-toe", Type: types.ResourceProject, Duration: "3h"},
	},
	"nodejs": {
		{Title: "Node.js Guides", URL: "https://nodejs.org/en/learn", Type: types.ResourceDocs, Duration: "8h"},
		{Title: "Node.js API design course", URL: "https://frontendmasters.com/courses/api-design-nodejs-v4/", Type: types.ResourceCourse, Duration: "6h"},
	},
	"docker": {
		{Title: "Docker Get Started", URL: "https://docs.docker.com/get-started/", Type: types.ResourceDocs, Duration: "4h"},
		{Title: "Containerize an application", URL: "https://docs.docker.com/get-started/workshop/", Type: types.ResourceProject, Duration: "3h"},
	},
	"kubernetes": {
		{Title: "Kubernetes Basics", URL: "https://kubernetes.io/docs/tutorials/kubernetes-basics/", Type: types.ResourceDocs, Duration: "5h"},
		{Title: "Kubernetes the Hard Way", URL: "https://github.com/kelseyhightower/kubernetes-the-hard-way", Type: types.ResourceProject, Duration: "10h"},
	},
	"terraform": {
		{Title: "Terraform tutorials", URL: "https://developer.hashicorp.com/terraform/tutorials", Type: types.ResourceDocs, Duration: "6h"},
	},
	"aws": {
		{Title: "AWS Skill Builder", URL: "https://skillbuilder.aws/", Type: types.ResourceCourse, Duration: "15h"},
		{Title: "AWS Well-Architected labs", URL: "https://www.wellarchitectedlabs.com/", Type: types.ResourceProject, Duration: "8h"},
	},
	"gcp": {
		{Title: "Google Cloud Skills Boost", URL: "https://www.cloudskillsboost.google/", Type: types.ResourceCourse, Duration: "15h"},
	},
	"azure": {
		{Title: "Microsoft Learn: Azure fundamentals", URL: "https://learn.microsoft.com/en-us/training/paths/azure-fundamentals/", Type: types.ResourceCourse, Duration: "12h"},
	},
	"postgresql": {
		{Title: "PostgreSQL Tutorial", URL: "https://www.postgresqltutorial.com/", Type: types.ResourceArticle, Duration: "10h"},
		{Title: "PostgreSQL official docs", URL: "https://www.postgresql.org/docs/current/tutorial.html", Type: types.ResourceDocs, Duration: "6h"},
	},
	"mongodb": {
		{Title: "MongoDB University", URL: "https://learn.mongodb.com/", Type: types.ResourceCourse, Duration: "10h"},
	},
	"redis": {
		{Title: "Redis University", URL: "https://university.redis.io/", Type: types.ResourceCourse, Duration: "8h"},
	},
	"sql": {
		{Title: "SQLBolt interactive lessons", URL: "https://sqlbolt.com/", Type: types.ResourceCourse, Duration: "6h"},
		{Title: "Mode SQL tutorial", URL: "https://mode.com/sql-tutorial/", Type: types.ResourceArticle, Duration: "8h"},
	},
	"graphql": {
		{Title: "Introduction to GraphQL", URL: "https://graphql.org/learn/", Type: types.ResourceDocs, Duration: "4h"},
	},
	"kafka": {
		{Title: "Kafka quickstart", URL: "https://kafka.apache.org/quickstart", Type: types.ResourceDocs, Duration: "3h"},
		{Title: "Confluent Kafka 101", URL: "https://developer.confluent.io/courses/apache-kafka/events/", Type: types.ResourceVideo, Duration: "5h"},
	},
	"django": {
		{Title: "Django official tutorial", URL: "https://docs.djangoproject.com/en/stable/intro/tutorial01/", Type: types.ResourceDocs, Duration: "8h"},
	},
	"spring boot": {
		{Title: "Spring Boot guides", URL: "https://spring.io/guides", Type: types.ResourceDocs, Duration: "10h"},
	},
	"git": {
		{Title: "Pro Git book", URL: "https://git-scm.com/book/en/v2", Type: types.ResourceDocs, Duration: "8h"},
		{Title: "Learn Git Branching", URL: "https://learngitbranching.js.org/", Type: types.ResourceCourse, Duration: "4h"},
	},
	"rust": {
		{Title: "The Rust Book", URL: "https://doc.rust-lang.org/book/", Type: types.ResourceDocs, Duration: "20h"},
		{Title: "Rustlings exercises", URL: "https://github.com/rust-lang/rustlings", Type: types.ResourceProject, Duration: "10h"},
	},
	"pytorch": {
		{Title: "PyTorch tutorials", URL: "https://pytorch.org/tutorials/", Type: types.ResourceDocs, Duration: "12h"},
	},
	"tensorflow": {
		{Title: "TensorFlow tutorials", URL: "https://www.tensorflow.org/tutorials", Type: types.ResourceDocs, Duration: "12h"},
	},
}
