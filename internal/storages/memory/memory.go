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

package memory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/pighand/codebuilder/internal/common/models"
	"github.com/pighand/codebuilder/internal/storages"
)

type object struct {
	data         []byte
	lastModified time.Time
}

// Storage - in-memory storage. Sub storages share the same objects and differ only by cwd.
type Storage struct {
	mu      *sync.RWMutex
	cwd     string
	objects map[string]*object
}

func NewStorage(cwd string) *Storage {
	return &Storage{
		mu:      &sync.RWMutex{},
		cwd:     path.Clean("/" + cwd),
		objects: make(map[string]*object),
	}
}

func (s *Storage) GetCwd() string {
	return s.cwd
}

func (s *Storage) key(filePath string) string {
	if path.IsAbs(filePath) {
		return path.Clean(filePath)
	}
	return path.Join(s.cwd, filePath)
}

func (s *Storage) GetObject(_ context.Context, filePath string) (io.ReadCloser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, ok := s.objects[s.key(filePath)]
	if !ok {
		return nil, fmt.Errorf("object %s is not found: %w", filePath, models.ErrFileSystem)
	}
	return io.NopCloser(bytes.NewReader(obj.data)), nil
}

func (s *Storage) PutObject(ctx context.Context, filePath string, body io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("read object body: %w: %w", models.ErrFileSystem, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[s.key(filePath)] = &object{
		data:         data,
		lastModified: time.Now(),
	}
	return nil
}

func (s *Storage) SubStorage(subPath string, relative bool) storages.Storager {
	cwd := path.Clean("/" + subPath)
	if relative {
		cwd = path.Join(s.cwd, subPath)
	}
	return &Storage{
		mu:      s.mu,
		cwd:     cwd,
		objects: s.objects,
	}
}

func (s *Storage) Stat(fileName string) (*storages.ObjectStat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key := s.key(fileName)
	obj, ok := s.objects[key]
	if !ok {
		// Directories are implicit: a key is a directory when some object lives under it.
		for k := range s.objects {
			if strings.HasPrefix(k, key+"/") {
				return &storages.ObjectStat{Name: key, Exist: true, IsDir: true}, nil
			}
		}
		return &storages.ObjectStat{Name: key}, nil
	}
	return &storages.ObjectStat{
		Name:         key,
		LastModified: obj.lastModified,
		Exist:        true,
	}, nil
}
