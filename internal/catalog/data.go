package catalog

// technologies is the catalog itself. Entries mirror the portfolio content;
// editing this file is the only way the catalog changes.
var technologies = []Technology{
	{
		Name:        "Python",
		Category:    CategoryLanguages,
		Color:       "#3776AB",
		Proficiency: 95,
		Experience:  "8+ years across services, data pipelines, and tooling",
		BestPractices: []string{
			"Pin dependencies with a lock file and build inside virtual environments",
			"Type-annotate public interfaces and run mypy in CI",
			"Prefer dataclasses or pydantic models over bare dicts at boundaries",
			"Profile before optimizing; most slow Python is slow I/O",
		},
		Documentation: []Documentation{
			{Title: "Python Docs", URL: "https://docs.python.org/3/", Description: "Official language and stdlib reference"},
			{Title: "Packaging Guide", URL: "https://packaging.python.org", Description: "Modern packaging workflows"},
		},
		QuickStart: "python -m venv .venv && source .venv/bin/activate && pip install -r requirements.txt",
		ProTips: []string{
			"uv/pip-tools style compiled requirements keep prod and dev environments honest",
			"functools.lru_cache is the cheapest speedup you will ever ship",
		},
	},
	{
		Name:        "PostgreSQL",
		Category:    CategoryDatabases,
		Color:       "#336791",
		Proficiency: 90,
		Experience:  "7+ years as the default system of record",
		BestPractices: []string{
			"Design indexes from real query plans, not guesses; EXPLAIN ANALYZE everything hot",
			"Use connection pooling (pgbouncer) before scaling hardware",
			"Prefer migrations over manual schema edits, always reversible",
			"Keep transactions short; long idle-in-transaction sessions bloat vacuum",
		},
		Documentation: []Documentation{
			{Title: "PostgreSQL Docs", URL: "https://www.postgresql.org/docs/", Description: "Official documentation"},
			{Title: "Use The Index, Luke", URL: "https://use-the-index-luke.com", Description: "SQL indexing and tuning guide"},
		},
		QuickStart: "docker run -e POSTGRES_PASSWORD=dev -p 5432:5432 postgres:16",
		InitSteps: []string{
			"Create a role per service with least privilege",
			"Enable pg_stat_statements from day one",
			"Set up automated backups and actually test a restore",
		},
	},
	{
		Name:        "Redis",
		Category:    CategoryDatabases,
		Color:       "#DC382D",
		Proficiency: 85,
		Experience:  "5+ years for caching, queues, and rate limiting",
		BestPractices: []string{
			"Set TTLs on everything; an unbounded keyspace is an outage waiting",
			"Use SCAN, never KEYS, against production data",
			"Model data around access patterns, not relational habits",
		},
		Documentation: []Documentation{
			{Title: "Redis Docs", URL: "https://redis.io/docs/", Description: "Commands and data type reference"},
		},
		QuickStart: "docker run -p 6379:6379 redis:7-alpine",
		ProTips: []string{
			"Sliding-window rate limiting fits a sorted set of timestamps per key",
		},
	},
	{
		Name:        "AWS",
		Category:    CategoryCloud,
		Color:       "#FF9900",
		Proficiency: 85,
		Experience:  "6+ years running production workloads",
		BestPractices: []string{
			"Everything through IaC; console changes drift and disappear",
			"Scope IAM policies to the action and resource, review quarterly",
			"Tag resources for cost attribution before the bill forces you to",
			"Budget alarms on day one of every account",
		},
		Documentation: []Documentation{
			{Title: "AWS Docs", URL: "https://docs.aws.amazon.com", Description: "Service documentation"},
			{Title: "Well-Architected", URL: "https://aws.amazon.com/architecture/well-architected/", Description: "Design framework"},
		},
		QuickStart: "aws configure && aws sts get-caller-identity",
	},
	{
		Name:        "Docker",
		Category:    CategoryCloud,
		Color:       "#2496ED",
		Proficiency: 90,
		Experience:  "7+ years containerizing everything",
		BestPractices: []string{
			"Multi-stage builds; ship the binary, not the toolchain",
			"Run as a non-root user and pin base image digests",
			"One process per container; compose for local orchestration",
		},
		Documentation: []Documentation{
			{Title: "Docker Docs", URL: "https://docs.docker.com", Description: "Official documentation"},
			{Title: "Dockerfile Best Practices", URL: "https://docs.docker.com/develop/develop-images/dockerfile_best-practices/", Description: "Image building guide"},
		},
		QuickStart: "docker build -t app . && docker run --rm -p 8080:8080 app",
	},
	{
		Name:        "Kubernetes",
		Category:    CategoryCloud,
		Color:       "#326CE5",
		Proficiency: 75,
		Experience:  "4+ years operating clusters",
		BestPractices: []string{
			"Set resource requests and limits on every workload",
			"Liveness and readiness probes are not optional",
			"Use namespaces and network policies as the default isolation unit",
		},
		Documentation: []Documentation{
			{Title: "Kubernetes Docs", URL: "https://kubernetes.io/docs/", Description: "Concepts and reference"},
		},
		QuickStart: "kind create cluster && kubectl apply -f deploy/",
	},
	{
		Name:        "OpenAI API",
		Category:    CategoryAI,
		Color:       "#412991",
		Proficiency: 88,
		Experience:  "3+ years building LLM-backed products",
		BestPractices: []string{
			"Version prompts like code and eval changes before shipping them",
			"Stream responses; perceived latency is the product",
			"Set max_tokens and timeouts defensively on every call",
			"Log token usage per feature for cost attribution",
		},
		Documentation: []Documentation{
			{Title: "API Reference", URL: "https://platform.openai.com/docs", Description: "Official API documentation"},
			{Title: "Cookbook", URL: "https://cookbook.openai.com", Description: "Worked examples and patterns"},
		},
		QuickStart: "export OPENAI_API_KEY=sk-... && pip install openai",
		ProTips: []string{
			"Structured outputs beat regex-parsing completions every time",
		},
	},
	{
		Name:        "Pinecone",
		Category:    CategoryAI,
		Color:       "#430098",
		Proficiency: 85,
		Experience:  "2+ years building RAG systems",
		BestPractices: []string{
			"Separate namespaces per data source or environment",
			"Batch upserts and filter on metadata before vector search",
			"Match index dimension to the embedding model, not the other way around",
		},
		Documentation: []Documentation{
			{Title: "Pinecone Docs", URL: "https://docs.pinecone.io", Description: "Official documentation"},
			{Title: "RAG Guide", URL: "https://docs.pinecone.io/guides/rag", Description: "Building RAG applications"},
		},
		QuickStart: "pip install pinecone-client",
		ProTips: []string{
			"Cosine for normalized embeddings, dot product for unnormalized",
		},
	},
	{
		Name:        "React",
		Category:    CategoryFrontend,
		Color:       "#61DAFB",
		Proficiency: 80,
		Experience:  "5+ years of product UIs",
		BestPractices: []string{
			"Colocate state with the component that owns it; lift only when forced",
			"Derive state, don't duplicate it",
			"Memoize by measurement, not by habit",
		},
		Documentation: []Documentation{
			{Title: "React Docs", URL: "https://react.dev", Description: "Official documentation"},
		},
		QuickStart: "npm create vite@latest app -- --template react-ts",
	},
	{
		Name:        "Next.js",
		Category:    CategoryFrontend,
		Color:       "#000000",
		Proficiency: 82,
		Experience:  "4+ years, including this site",
		BestPractices: []string{
			"Default to server components; reach for client components at interaction boundaries",
			"Validate and rate limit server actions like any public endpoint",
			"Cache deliberately: understand revalidate before trusting it",
		},
		Documentation: []Documentation{
			{Title: "Next.js Docs", URL: "https://nextjs.org/docs", Description: "Official documentation"},
		},
		QuickStart: "npx create-next-app@latest",
	},
	{
		Name:        "Prometheus",
		Category:    CategoryObservability,
		Color:       "#E6522C",
		Proficiency: 78,
		Experience:  "4+ years instrumenting services",
		BestPractices: []string{
			"Keep label cardinality bounded; user IDs do not belong in labels",
			"Alert on symptoms (latency, errors), page on user impact only",
			"Record rules for anything a dashboard queries repeatedly",
		},
		Documentation: []Documentation{
			{Title: "Prometheus Docs", URL: "https://prometheus.io/docs/", Description: "Official documentation"},
		},
		QuickStart: "docker run -p 9090:9090 prom/prometheus",
	},
	{
		Name:        "Grafana",
		Category:    CategoryObservability,
		Color:       "#F46800",
		Proficiency: 76,
		Experience:  "4+ years of dashboards and alerting",
		BestPractices: []string{
			"Provision dashboards as code; hand-edited dashboards rot",
			"One overview dashboard per service, drill-downs behind links",
		},
		Documentation: []Documentation{
			{Title: "Grafana Docs", URL: "https://grafana.com/docs/", Description: "Official documentation"},
		},
		QuickStart: "docker run -p 3000:3000 grafana/grafana",
	},
}
