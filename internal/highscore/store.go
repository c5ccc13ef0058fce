// Package highscore хранит лучший счёт между запусками.
package highscore

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Store — хранилище рекорда.
type Store interface {
	Load() (int, error)
	Save(score int) error
}

// FileStore хранит рекорд одним числом в текстовом файле.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (s *FileStore) Load() (int, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return 0, fmt.Errorf("read high score: %w", err)
	}
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0, fmt.Errorf("read high score: %s is empty", s.Path)
	}
	score, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("parse high score: %w", err)
	}
	if score < 0 {
		return 0, fmt.Errorf("parse high score: negative value %d", score)
	}
	return score, nil
}

func (s *FileStore) Save(score int) error {
	if err := os.WriteFile(s.Path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return fmt.Errorf("write high score: %w", err)
	}
	return nil
}
