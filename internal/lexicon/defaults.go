package lexicon

import "regexp"

// defaultSkills is the canonical skill bank searched during extraction.
var defaultSkills = []string{
	// Languages
	"python", "javascript", "typescript", "java", "c++", "c#", "go", "rust", "scala", "kotlin",
	// Frontend / frameworks
	"react", "angular", "vue", "svelte", "nodejs", "express", "django", "flask", "fastapi",
	"spring", "hibernate", "laravel", "rails", "dotnet", "nextjs", "nuxtjs",
	// Data stores
	"sql", "postgresql", "mysql", "mongodb", "redis", "elasticsearch", "cassandra",
	// Infra / DevOps
	"docker", "kubernetes", "jenkins", "gitlab", "github", "terraform", "ansible",
	"aws", "azure", "gcp", "heroku", "vercel", "netlify", "cloudflare",
	// Web fundamentals
	"html", "css", "sass", "less", "bootstrap", "tailwind", "material-ui",
	"git", "linux", "bash", "powershell", "nginx", "apache", "graphql", "rest",
	"json", "xml", "yaml", "api", "microservices", "serverless", "websockets",
	// Testing
	"testing", "jest", "pytest", "junit", "selenium", "cypress", "mocha",
	// Process
	"cicd", "devops", "agile", "scrum", "jira", "confluence", "slack",
	"ml", "ai", "dl",
}

// defaultSynonyms maps common aliases onto canonical skills.
var defaultSynonyms = map[string]string{
	"js":       "javascript",
	"ts":       "typescript",
	"node":     "nodejs",
	"node.js":  "nodejs",
	"postgres": "postgresql",
	"k8s":      "kubernetes",

	// AWS service names imply AWS itself
	"eks":    "aws",
	"ec2":    "aws",
	"s3":     "aws",
	"lambda": "aws",
	"rds":    "aws",

	"continuous integration": "cicd",
	"continuous deployment":  "cicd",

	".net":    "dotnet",
	"asp.net": "dotnet",
	"dot net": "dotnet",
	"c sharp": "c#",

	"reactjs":   "react",
	"react.js":  "react",
	"vuejs":     "vue",
	"vue.js":    "vue",
	"angularjs": "angular",

	"material ui": "material-ui",
	"mui":         "material-ui",
	"tailwindcss": "tailwind",

	"machine learning":        "ml",
	"artificial intelligence": "ai",
	"deep learning":           "dl",
}

// defaultCompounds handles irregular spellings and phrases that standard
// word-boundary matching misses, checked independently of the skill and
// synonym tables. "rest apis" contributes two canonical skills.
var defaultCompounds = []CompoundPattern{
	{Pattern: regexp.MustCompile(`(?i)\breact\.?js\b`), Skills: []string{"react"}},
	{Pattern: regexp.MustCompile(`(?i)\bnode\.?js\b`), Skills: []string{"nodejs"}},
	{Pattern: regexp.MustCompile(`(?i)\bvue\.?js\b`), Skills: []string{"vue"}},
	{Pattern: regexp.MustCompile(`(?i)\bangular\.?js\b`), Skills: []string{"angular"}},
	{Pattern: regexp.MustCompile(`(?i)c\+\+`), Skills: []string{"c++"}},
	{Pattern: regexp.MustCompile(`(?i)\bc#`), Skills: []string{"c#"}},
	{Pattern: regexp.MustCompile(`(?i)\.net\b`), Skills: []string{"dotnet"}},
	{Pattern: regexp.MustCompile(`(?i)\brest\s+apis?\b`), Skills: []string{"rest", "api"}},
	{Pattern: regexp.MustCompile(`(?i)\bapi\s+rest\b`), Skills: []string{"rest"}},
	{Pattern: regexp.MustCompile(`(?i)\bmachine\s+learning\b`), Skills: []string{"ml"}},
	{Pattern: regexp.MustCompile(`(?i)\bartificial\s+intelligence\b`), Skills: []string{"ai"}},
	{Pattern: regexp.MustCompile(`(?i)\bci/cd\b`), Skills: []string{"cicd"}},
	{Pattern: regexp.MustCompile(`(?i)\bcontinuous\s+integration\b`), Skills: []string{"cicd"}},
	{Pattern: regexp.MustCompile(`(?i)\bmaterial\s*ui\b`), Skills: []string{"material-ui"}},
	{Pattern: regexp.MustCompile(`(?i)\btailwind\s*css\b`), Skills: []string{"tailwind"}},
}

// Default returns the built-in lexicon. The tables are static; compilation
// cannot fail, so any error here is a programming bug.
func Default() *Lexicon {
	lex, err := New(defaultSkills, defaultSynonyms, defaultCompounds)
	if err != nil {
		panic(err)
	}
	return lex
}
