package taxonomy

// builtinSkills is the canonical skill list grouped by category.
// All names are lowercase; multi-word names are matched by the extraction
// engine's n-gram scan, so keep phrases at three words or fewer.
var builtinSkills = map[Category][]string{
	CategoryLanguage: {
		"python", "javascript", "typescript", "java", "c++", "c#", "go", "golang",
		"rust", "ruby", "php", "swift", "kotlin", "scala", "r", "matlab", "dart",
		"perl", "bash", "shell", "powershell", "sql", "html", "css", "sass", "less",
		"objective-c", "groovy", "lua", "haskell", "erlang", "elixir", "clojure",
		"f#", "cobol", "fortran", "solidity", "assembly",
	},
	CategoryFramework: {
		// Frontend
		"react", "angular", "vue", "svelte", "nextjs", "nuxtjs", "gatsby",
		"remix", "astro", "react native", "flutter", "ionic", "electron",
		// Backend
		"nodejs", "django", "flask", "fastapi", "spring", "spring boot", "express", "nestjs",
		"koa", "hapi", "laravel", "rails", "ruby on rails", "asp.net", ".net core",
		"blazor", "quarkus", "micronaut", "ktor",
		// ML / Data science
		"pytorch", "tensorflow", "keras", "jax", "scikit-learn", "xgboost",
		"lightgbm", "catboost", "huggingface", "transformers", "langchain",
		"llamaindex", "pandas", "numpy", "scipy", "matplotlib", "seaborn",
		"plotly", "bokeh", "streamlit", "gradio",
		// CSS / UI
		"bootstrap", "tailwind", "material ui", "chakra ui", "ant design", "shadcn",
		// State / API
		"redux", "zustand", "mobx", "graphql", "apollo", "trpc",
		// ORM / DB adapters
		"sqlalchemy", "alembic", "prisma", "mongoose", "typeorm", "hibernate",
		// Testing
		"junit", "pytest", "jest", "vitest", "cypress", "playwright", "selenium",
		"mocha", "chai", "storybook",
		// Async / Messaging
		"celery", "grpc", "opentelemetry",
	},
	CategoryTool: {
		// Version control
		"git", "github", "gitlab", "bitbucket",
		// Containers / Orchestration
		"docker", "kubernetes", "k8s", "helm",
		// CI/CD
		"jenkins", "github actions", "circleci", "travis ci", "teamcity",
		"argocd", "flux",
		// IaC / Config management
		"terraform", "pulumi", "ansible", "puppet", "chef", "vagrant",
		// Web servers
		"nginx", "apache",
		// OS
		"linux", "ubuntu", "centos", "debian",
		// Project management / Design
		"jira", "confluence", "notion", "figma",
		// API tooling
		"postman", "swagger", "openapi",
		// Bundlers / Linters
		"webpack", "vite", "babel", "eslint", "prettier",
		// Observability
		"sonarqube", "sentry", "grafana", "prometheus", "datadog", "splunk",
		"elasticsearch", "logstash", "kibana", "new relic",
		// Data / ML ops
		"airflow", "dbt", "mlflow", "wandb", "dvc", "ray",
		// Messaging
		"kafka", "rabbitmq", "nats", "socket.io", "websockets",
		// Auth / Security
		"oauth", "jwt", "keycloak", "vault",
		// Service mesh
		"istio", "envoy", "linkerd",
	},
	CategoryDatabase: {
		"mysql", "postgresql", "postgres", "sqlite", "mongodb", "cassandra",
		"couchdb", "dynamodb", "firestore", "firebase", "oracle", "mssql",
		"sql server", "mariadb", "neo4j", "influxdb", "clickhouse", "snowflake",
		"bigquery", "hive", "redis",
		// Vector DBs
		"pinecone", "weaviate", "chroma", "qdrant",
		// Managed / BaaS
		"supabase", "planetscale", "neon", "fauna",
	},
	CategoryCloud: {
		// Providers
		"aws", "azure", "gcp", "google cloud", "heroku", "digitalocean",
		"vercel", "netlify", "cloudflare", "linode", "vultr",
		// AWS services
		"ec2", "s3", "lambda", "rds", "eks", "ecs", "fargate", "sqs", "sns",
		"api gateway", "amplify",
		// Azure services
		"azure functions", "azure devops", "azure aks",
		// GCP services
		"cloud run", "app engine", "gke", "cloud functions", "firebase hosting",
	},
}

// builtinAliases maps common surface variants to canonical taxonomy names.
// Keys and values are lowercase.
var builtinAliases = map[string]string{
	// JavaScript ecosystem
	"react.js": "react", "reactjs": "react", "react js": "react",
	"vue.js": "vue", "vuejs": "vue", "vue js": "vue",
	"next.js": "nextjs", "next js": "nextjs",
	"nuxt.js": "nuxtjs", "nuxt js": "nuxtjs",
	"nest.js": "nestjs",
	"node.js": "nodejs", "nodejs": "nodejs", "node js": "nodejs",
	"express.js": "express", "expressjs": "express",
	// Python / ML
	"scikit learn": "scikit-learn", "sklearn": "scikit-learn",
	"tf":    "tensorflow",
	"torch": "pytorch",
	// Databases
	"postgres": "postgresql", "pg": "postgresql",
	"mongo": "mongodb", "mongo db": "mongodb",
	"ms sql": "mssql", "microsoft sql server": "sql server",
	// Cloud shorthands
	"amazon web services":   "aws",
	"google cloud platform": "gcp",
	"microsoft azure":       "azure",
	// Kubernetes
	"k8s": "kubernetes",
	// Languages
	"js": "javascript", "ts": "typescript",
	"py":      "python",
	"c sharp": "c#", "c plus plus": "c++",
	// CSS
	"tailwindcss": "tailwind", "tailwind css": "tailwind",
	"material-ui": "material ui", "mui": "material ui",
	// DevOps
	"gh actions": "github actions",
	"ci cd":      "ci/cd", "cicd": "ci/cd",
	// REST
	"rest api": "rest", "restful": "rest", "rest apis": "rest",
	// Spring
	"spring-boot": "spring boot",
}
