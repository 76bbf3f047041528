package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/example/vocabcli/pkg/models"
)

// Manager handles persistence of vocabulary items, one JSON file per topic
type Manager struct {
	dir string
}

// New creates a manager that stores topic files under dir
func New(dir string) *Manager {
	return &Manager{dir: dir}
}

// topicPath returns the backing file path for a topic
func (m *Manager) topicPath(topic string) string {
	return filepath.Join(m.dir, topic+".json")
}

// TopicExists reports whether the backing file for a topic is present
func (m *Manager) TopicExists(topic string) bool {
	_, err := os.Stat(m.topicPath(topic))
	return err == nil
}

// Load returns the items of a topic sorted by memorization score, highest
// first; ties keep their stored order. The second return value is false when
// the topic does not exist. A corrupt or unreadable backing file for an
// existing topic is treated as an empty topic.
func (m *Manager) Load(topic string) ([]models.VocabularyItem, bool) {
	if !m.TopicExists(topic) {
		return nil, false
	}

	items := []models.VocabularyItem{}
	data, err := os.ReadFile(m.topicPath(topic))
	if err == nil {
		if err := json.Unmarshal(data, &items); err != nil {
			items = []models.VocabularyItem{}
		}
	}

	for i := range items {
		items[i].Memorization = clamp(items[i].Memorization)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Memorization > items[j].Memorization
	})

	return items, true
}

// Save overwrites the backing file of an existing topic with items. Saving
// to a topic that does not exist is a silent no-op.
func (m *Manager) Save(topic string, items []models.VocabularyItem) error {
	if !m.TopicExists(topic) {
		return nil
	}
	if items == nil {
		items = []models.VocabularyItem{}
	}

	data, err := json.MarshalIndent(items, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode vocabulary items: %v", err)
	}

	if err := os.WriteFile(m.topicPath(topic), data, 0644); err != nil {
		return fmt.Errorf("failed to write topic file: %v", err)
	}
	return nil
}

// CreateTopic creates an empty backing file for a topic, creating the
// topics directory on first use
func (m *Manager) CreateTopic(topic string) error {
	if err := os.MkdirAll(m.dir, 0755); err != nil {
		return fmt.Errorf("failed to create topics directory: %v", err)
	}
	if err := os.WriteFile(m.topicPath(topic), []byte("[]"), 0644); err != nil {
		return fmt.Errorf("failed to create topic file: %v", err)
	}
	return nil
}

// Append adds a single item to a topic
func (m *Manager) Append(topic string, item models.VocabularyItem) error {
	items, _ := m.Load(topic)
	return m.Save(topic, append(items, item))
}

// Topics returns the names of all topics found in the storage directory
func (m *Manager) Topics() ([]string, error) {
	entries, err := os.ReadDir(m.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read topics directory: %v", err)
	}

	var topics []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		topics = append(topics, strings.TrimSuffix(entry.Name(), ".json"))
	}
	return topics, nil
}

// clamp keeps a memorization score inside [0, 1]
func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
