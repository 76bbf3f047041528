package excel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/example/vocabcli/pkg/models"
)

// memStore is an in-memory TopicStore double
type memStore struct {
	topics map[string][]models.VocabularyItem
}

func newMemStore(topics ...string) *memStore {
	s := &memStore{topics: make(map[string][]models.VocabularyItem)}
	for _, topic := range topics {
		s.topics[topic] = []models.VocabularyItem{}
	}
	return s
}

func (s *memStore) TopicExists(topic string) bool {
	_, ok := s.topics[topic]
	return ok
}

func (s *memStore) Append(topic string, item models.VocabularyItem) error {
	s.topics[topic] = append(s.topics[topic], item)
	return nil
}

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestImportCSV(t *testing.T) {
	store := newMemStore("food")

	csv := "Word,Translation,Contexts\n" +
		"bread,pan,I eat bread; Bread is cheap\n" +
		"milk,leche,\n" +
		"egg,,no translation here\n"

	config := DefaultImportConfig()
	config.FilePath = writeTempCSV(t, csv)

	result, err := ImportWords(store, "food", config)
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalProcessed)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "row 4")

	items := store.topics["food"]
	require.Len(t, items, 2)
	assert.Equal(t, "bread", items[0].Word)
	assert.Equal(t, "pan", items[0].Translation)
	assert.Equal(t, []string{"I eat bread", "Bread is cheap"}, items[0].Contexts)
	assert.Equal(t, 0.0, items[0].Memorization)
	assert.Equal(t, "milk", items[1].Word)
	assert.Empty(t, items[1].Contexts)
}

func TestImportXLSX(t *testing.T) {
	store := newMemStore("food")

	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Word"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", "Translation"))
	require.NoError(t, f.SetCellValue("Sheet1", "C1", "Contexts"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "bread"))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", "pan"))
	require.NoError(t, f.SetCellValue("Sheet1", "C2", "I eat bread"))
	require.NoError(t, f.SetCellValue("Sheet1", "A3", "milk"))
	require.NoError(t, f.SetCellValue("Sheet1", "B3", "leche"))

	path := filepath.Join(t.TempDir(), "words.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	config := DefaultImportConfig()
	config.FilePath = path

	result, err := ImportWords(store, "food", config)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 0, result.Skipped)

	items := store.topics["food"]
	require.Len(t, items, 2)
	assert.Equal(t, []string{"I eat bread"}, items[0].Contexts)
}

func TestImportMissingTopic(t *testing.T) {
	config := DefaultImportConfig()
	config.FilePath = writeTempCSV(t, "Word,Translation\nbread,pan\n")

	_, err := ImportWords(newMemStore(), "food", config)
	assert.ErrorContains(t, err, "does not exist")
}

func TestImportUnsupportedFormat(t *testing.T) {
	config := DefaultImportConfig()
	config.FilePath = "words.txt"

	_, err := ImportWords(newMemStore("food"), "food", config)
	assert.ErrorContains(t, err, "unsupported file format")
}
