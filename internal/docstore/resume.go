package docstore

import (
	"fmt"
	"os"

	"github.com/gofrs/flock"

	"github.com/anixlabs/profilectl/internal/logging"
)

// LoadResume loads the resume document at path. When the file does not
// exist, a default resume is synthesized and persisted back to path so
// later runs see the same data. Persist failures are logged and ignored;
// the in-memory default still serves.
func LoadResume(path string, log logging.Logger) Document {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		doc := DefaultResume()
		if err := persistDefault(path, doc); err != nil {
			log.Error("cannot persist default resume", "path", path, "err", err)
		} else {
			log.Info("created default resume", "path", path)
		}
		return doc
	}
	return Load(path, log)
}

// persistDefault writes doc to path under a sibling lock file, re-checking
// existence once the lock is held so two racing processes write at most one
// resume.
func persistDefault(path string, doc Document) error {
	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("cannot lock %s: %w", path, err)
	}
	if !locked {
		return fmt.Errorf("another process is writing %s", path)
	}
	defer os.Remove(lock.Path())
	defer lock.Unlock()

	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return Save(path, doc)
}

// DefaultResume returns the fixed fallback resume used when no resume file
// exists.
func DefaultResume() Document {
	return Document{
		"personal_info": map[string]any{
			"name":     "Anix Lynch",
			"title":    "AI Engineer & Data Scientist",
			"email":    "anix@example.com",
			"linkedin": "linkedin.com/in/anixlynch",
			"github":   "github.com/anix-lynch",
		},
		"summary": "AI Engineer specializing in machine learning pipelines, data engineering, and automation systems.",
		"skills": []any{
			"Python", "Machine Learning", "Data Engineering",
			"ETL", "Open Source", "AI", "Marketing", "Dashboard",
			"APIs", "Automation", "Cloud Computing",
		},
		"experience": []any{
			map[string]any{
				"title":       "AI Engineer",
				"company":     "Tech Company",
				"duration":    "2022-Present",
				"description": "Built ML pipelines and automated data systems",
			},
		},
		"projects": []any{
			map[string]any{
				"name":        "AI Agent System",
				"tech":        []any{"Python", "ML", "APIs"},
				"description": "Automated decision-making system",
			},
		},
	}
}
