// Copyright 2025 Greenmask
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package directory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/pighand/codebuilder/internal/common/models"
	"github.com/pighand/codebuilder/internal/storages"
)

const (
	dirMode  os.FileMode = 0750
	fileMode os.FileMode = 0644
)

type Storage struct {
	dirMode  os.FileMode
	fileMode os.FileMode
	cwd      string
	mx       *sync.Mutex
}

// NewStorage - returns the storage rooted at path. The root is not created here, the first
// PutObject creates it together with the object parents.
func NewStorage(path string) (*Storage, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path \"%s\": %w: %w", path, models.ErrFileSystem, err)
	}
	fileInfo, err := os.Stat(absPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("get directory stat \"%s\": %w: %w", absPath, models.ErrFileSystem, err)
	case !fileInfo.IsDir():
		return nil, fmt.Errorf("received directory path \"%s\" is file: %w", absPath, models.ErrFileSystem)
	}
	return &Storage{
		dirMode:  dirMode,
		fileMode: fileMode,
		cwd:      absPath,
		mx:       &sync.Mutex{},
	}, nil
}

func (s *Storage) GetCwd() string {
	return s.cwd
}

func (s *Storage) GetObject(_ context.Context, filePath string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.cwd, filePath))
	if err != nil {
		return nil, fmt.Errorf("open file: %w: %w", models.ErrFileSystem, err)
	}
	return f, nil
}

func (s *Storage) PutObject(ctx context.Context, filePath string, body io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fullPath := filepath.Join(s.cwd, filePath)
	s.mx.Lock()
	err := os.MkdirAll(filepath.Dir(fullPath), s.dirMode)
	s.mx.Unlock()
	if err != nil {
		return fmt.Errorf("create directory: %w: %w", models.ErrFileSystem, err)
	}

	f, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, s.fileMode)
	if err != nil {
		return fmt.Errorf("unable to create file: %w: %w", models.ErrFileSystem, err)
	}
	if _, err = io.Copy(f, body); err != nil {
		_ = f.Close()
		return fmt.Errorf("error writing data: %w: %w", models.ErrFileSystem, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close file: %w: %w", models.ErrFileSystem, err)
	}
	return nil
}

func (s *Storage) SubStorage(dp string, relative bool) storages.Storager {
	dirPath := dp
	if relative {
		dirPath = filepath.Join(s.cwd, dp)
	}
	return &Storage{
		cwd:      dirPath,
		dirMode:  s.dirMode,
		fileMode: s.fileMode,
		mx:       s.mx,
	}
}

func (s *Storage) Stat(fileName string) (*storages.ObjectStat, error) {
	fullPath := filepath.Join(s.cwd, fileName)
	fileInfo, err := os.Stat(fullPath)
	if errors.Is(err, fs.ErrNotExist) {
		return &storages.ObjectStat{
			Name:  fullPath,
			Exist: false,
		}, nil
	} else if err != nil {
		return nil, fmt.Errorf("error getting file stat: %w: %w", models.ErrFileSystem, err)
	}

	return &storages.ObjectStat{
		Name:         fullPath,
		LastModified: fileInfo.ModTime(),
		Exist:        true,
		IsDir:        fileInfo.IsDir(),
	}, nil
}
