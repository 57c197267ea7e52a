// Package report builds the persistable health report document and writes
// it to disk as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/cloudpulse/cloudpulse/pkg/types"
)

const (
	// Tool and Author identify the generator in report_metadata.
	Tool   = "cloudpulse"
	Author = "cloudpulse contributors"
)

// Metadata describes one report run.
type Metadata struct {
	GeneratedAt time.Time `json:"generated_at"`
	Region      string    `json:"region"`
	Tool        string    `json:"tool"`
	Author      string    `json:"author"`
}

// Document is the persisted report: metadata, the raw record lists, and the
// derived summary.
type Document struct {
	Metadata  Metadata         `json:"report_metadata"`
	Instances []types.Instance `json:"instances"`
	Alarms    []types.Alarm    `json:"alarms"`
	Summary   types.Summary    `json:"summary"`
}

// New assembles a report document for the given region. Nil record lists
// are normalized to empty so the document always carries arrays.
func New(region string, instances []types.Instance, alarms []types.Alarm, summary types.Summary) *Document {
	if instances == nil {
		instances = []types.Instance{}
	}
	if alarms == nil {
		alarms = []types.Alarm{}
	}

	return &Document{
		Metadata: Metadata{
			GeneratedAt: time.Now(),
			Region:      region,
			Tool:        Tool,
			Author:      Author,
		},
		Instances: instances,
		Alarms:    alarms,
		Summary:   summary,
	}
}

// Save writes the document to path as indented JSON.
func (d *Document) Save(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}

	return nil
}

// Load reads a previously saved report document from path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report file: %w", err)
	}

	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse report file: %w", err)
	}

	return &d, nil
}
