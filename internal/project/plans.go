// Package project manages stowage plans persisted under the user's home
// directory, so a computed plan can be re-analyzed or exported later
// without rerunning the placement engine.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/piwi3910/cargoforge/internal/export"
)

// DefaultPlanDir returns the default directory for saved stowage plans.
// This is located at ~/.cargoforge/plans.
func DefaultPlanDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cargoforge", "plans"), nil
}

// PlanPath resolves a plan name to its file path in the default plan
// directory. Names must be plain filenames without path separators.
func PlanPath(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("plan name is empty")
	}
	if strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("plan name %q must not contain path separators", name)
	}
	dir, err := DefaultPlanDir()
	if err != nil {
		return "", err
	}
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	return filepath.Join(dir, name), nil
}

// SavePlan writes a stowage plan document to the named plan in the
// default plan directory, creating it if needed.
func SavePlan(name string, doc export.Document) (string, error) {
	path, err := PlanPath(name)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := export.WriteDocument(f, doc); err != nil {
		return "", err
	}
	return path, nil
}

// LoadPlan reads a previously saved plan by name.
func LoadPlan(name string) (export.Document, error) {
	path, err := PlanPath(name)
	if err != nil {
		return export.Document{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return export.Document{}, fmt.Errorf("plan %q not found", name)
		}
		return export.Document{}, err
	}
	defer f.Close()
	return export.ReadDocument(f)
}

// PlanInfo describes one saved plan.
type PlanInfo struct {
	Name     string
	Path     string
	Modified time.Time
}

// ListPlans returns the saved plans sorted by name. A missing plan
// directory yields an empty list.
func ListPlans() ([]PlanInfo, error) {
	dir, err := DefaultPlanDir()
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var plans []PlanInfo
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		plans = append(plans, PlanInfo{
			Name:     strings.TrimSuffix(e.Name(), ".json"),
			Path:     filepath.Join(dir, e.Name()),
			Modified: info.ModTime(),
		})
	}
	sort.Slice(plans, func(i, j int) bool { return plans[i].Name < plans[j].Name })
	return plans, nil
}

// DeletePlan removes a saved plan by name.
func DeletePlan(name string) error {
	path, err := PlanPath(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("plan %q not found", name)
		}
		return err
	}
	return nil
}
