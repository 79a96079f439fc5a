// Package config holds the run configuration for mediumpress: directories,
// export metadata, image settings, and the taxonomy keyword tables. Defaults
// reproduce a sensible tech-blog setup; a YAML file can override any part of
// them, including the full keyword tables.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/lukasmeier/mediumpress/core/taxonomy"
)

// Config is the full run configuration.
type Config struct {
	Author   string `yaml:"author"`
	Language string `yaml:"language"`

	InputDir    string `yaml:"input_dir"`
	ImagesDir   string `yaml:"images_dir"`
	UploadsRoot string `yaml:"uploads_root"`

	ImageTimeoutSec int `yaml:"image_timeout_sec"`

	Taxonomy taxonomy.Tables `yaml:"taxonomy"`
}

// ImageTimeout returns the image download timeout as a duration.
func (c *Config) ImageTimeout() time.Duration {
	return time.Duration(c.ImageTimeoutSec) * time.Second
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Author:          "Admin",
		Language:        "en-US",
		InputDir:        "export_htmls",
		ImagesDir:       "wordpress_images",
		UploadsRoot:     "wp-content/uploads",
		ImageTimeoutSec: 30,
		Taxonomy:        defaultTables(),
	}
}

// Load reads a YAML file over the defaults. Fields absent from the file keep
// their default values; taxonomy lists given in the file replace the
// corresponding built-in lists.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Taxonomy.DefaultCategory == "" {
		cfg.Taxonomy.DefaultCategory = defaultTables().DefaultCategory
	}
	return cfg, nil
}

// defaultTables is the built-in category/tag keyword mapping. Order matters:
// category rules are evaluated and reported in this order.
func defaultTables() taxonomy.Tables {
	return taxonomy.Tables{
		Categories: []taxonomy.CategoryRule{
			{Name: "WEB DEVELOPMENT", Keywords: []string{
				"angular", "react", "vue", "javascript", "typescript", "html", "css",
				"web", "frontend", "backend",
			}},
			{Name: ".NET", Keywords: []string{
				".net", "c#", "csharp", "asp.net", "entity framework", "blazor",
				"mvc", "web api", "dotnet",
			}},
			{Name: "DEVOPS", Keywords: []string{
				"docker", "kubernetes", "azure", "aws", "deployment", "ci/cd",
				"pipeline", "devops", "terraform",
			}},
			{Name: "PROGRAMMING", Keywords: []string{
				"code", "programming", "development", "software", "algorithm",
				"design pattern",
			}},
			{Name: "CLOUD", Keywords: []string{
				"azure", "aws", "cloud", "serverless", "microservices", "container",
			}},
			{Name: "MOBILE", Keywords: []string{
				"ionic", "xamarin", "mobile", "android", "ios", "app development",
			}},
			{Name: "TUTORIAL", Keywords: []string{
				"tutorial", "guide", "how to", "step by step", "getting started",
				"introduction",
			}},
		},
		DefaultCategory: "PROGRAMMING",
		Tags: []string{
			"angular", "react", "vue", "javascript", "typescript", "html", "css", "sass",
			".net", "c#", "asp.net", "blazor", "mvc", "web api", "entity framework",
			"docker", "kubernetes", "azure", "aws", "git", "github", "visual studio",
			"npm", "node.js", "webpack", "vite", "ionic", "xamarin", "sql", "database",
			"api", "rest", "graphql", "json", "microservices", "architecture",
			"testing", "unit testing", "debugging", "performance", "security",
		},
	}
}
